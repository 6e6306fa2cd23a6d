// Package oscillator samples a continuous sinusoid against wall-clock time.
//
// A [Sampler] keeps the running time t and a [Window] of the most recent
// [Point] values. Each call to [Sampler.Advance] moves t forward by the
// elapsed frame time and appends amplitude*sin(2*pi*frequency*t). The window
// holds at most [WindowCap] points and evicts the oldest first.
//
// The sampler does not validate frequency or amplitude; hosts clamp those
// before calling in. Play and pause are host state: a paused host simply does
// not call Advance.
//
// [Advance] and [Reset] are value-based equivalents for callers that keep
// their own copy of the state.
package oscillator
