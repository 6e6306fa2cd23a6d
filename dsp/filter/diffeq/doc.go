// Package diffeq evaluates the second-order linear difference equation
//
//	y[n] = B0*x[n] + B1*x[n-1] - A1*y[n-1] - A2*y[n-2]
//
// over a fixed probe signal and reveals the result one prefix per frame.
//
// [Evaluate] is a pure function of the [Coefficients]. The probe is
// x[n] = sin(2*pi*0.1*n) for n = 0..49, and y[0], y[1] are left at zero: the
// recurrence runs only for n >= 2. Coefficients are never validated, so
// unstable filters produce diverging (possibly infinite) output, which is
// returned as-is.
//
// [Reveal] sequences the presentation of a result: Idle -> Computing ->
// Revealing -> Idle. Starting a new reveal bumps a generation counter and
// abandons the sequence in flight. [RevealNext] is the value form for callers
// that keep the state themselves.
//
// Coefficients also expose their z-domain view (transfer function, poles,
// zeros, stability, frequency response).
package diffeq
