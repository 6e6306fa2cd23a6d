package diffeq

import "github.com/cwbudde/algo-zexplorer/dsp/signal"

const (
	// SignalLength is the number of samples in the probe and output signals.
	SignalLength = 50

	// ProbeFrequency is the probe frequency in cycles per sample.
	ProbeFrequency = 0.1
)

var probe = signal.NewGenerator()

// Result holds one evaluation: the probe input X and the output Y.
// Both always have SignalLength samples and must be treated as read-only.
type Result struct {
	X []float64
	Y []float64
}

// Len returns the number of samples.
func (r Result) Len() int {
	return len(r.X)
}

// Prefix returns the frame holding samples 0..i of both signals.
// The returned slices are capped so appending to them cannot clobber r.
func (r Result) Prefix(i int) Frame {
	return Frame{
		Index: i,
		X:     r.X[: i+1 : i+1],
		Y:     r.Y[: i+1 : i+1],
	}
}

// Probe returns a fresh copy of the probe signal x[n] = sin(2*pi*0.1*n).
func Probe() []float64 {
	x := make([]float64, SignalLength)
	probe.SineInto(x, ProbeFrequency, 1)
	return x
}

// Evaluate generates the probe and runs the recurrence over it.
//
// y[0] and y[1] stay zero; the recurrence starts at n = 2.
func Evaluate(c Coefficients) Result {
	x := Probe()
	y := make([]float64, len(x))

	for n := 2; n < len(x); n++ {
		y[n] = c.B0*x[n] + c.B1*x[n-1] - c.A1*y[n-1] - c.A2*y[n-2]
	}

	return Result{X: x, Y: y}
}
