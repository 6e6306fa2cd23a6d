package oscillator

import "github.com/cwbudde/algo-zexplorer/dsp/signal"

// Sampler owns the running time and the sample window.
type Sampler struct {
	t      float64
	window Window
}

// NewSampler returns a sampler at t=0 with an empty window.
func NewSampler() *Sampler {
	return &Sampler{}
}

// Advance moves time forward by elapsedSeconds, samples the sinusoid at the
// new time and appends the point to the window. It returns the new point.
//
// Inputs are not validated: elapsedSeconds is expected to be > 0 and
// frequency/amplitude pre-clamped by the caller.
func (s *Sampler) Advance(elapsedSeconds, frequency, amplitude float64) Point {
	s.t += elapsedSeconds
	p := Point{T: s.t, Y: signal.SineAt(frequency, amplitude, s.t)}
	s.window.Push(p)
	return p
}

// Reset clears the window and rewinds time to 0.
func (s *Sampler) Reset() {
	s.t = 0
	s.window.Reset()
}

// Time returns the current time in seconds.
func (s *Sampler) Time() float64 {
	return s.t
}

// Window returns the sample window. Callers must not mutate it.
func (s *Sampler) Window() *Window {
	return &s.window
}

// State returns a detached copy of the sampler state.
func (s *Sampler) State() State {
	return State{T: s.t, Points: s.window.Points()}
}

// State is a value snapshot of a sampler: current time and window contents,
// oldest first.
type State struct {
	T      float64
	Points []Point
}

// Advance is the value form of [Sampler.Advance]. The returned state never
// shares its backing array with st, so st stays valid.
func Advance(st State, elapsedSeconds, frequency, amplitude float64) State {
	t := st.T + elapsedSeconds

	keep := st.Points
	if len(keep) >= WindowCap {
		keep = keep[len(keep)-WindowCap+1:]
	}

	points := make([]Point, len(keep), len(keep)+1)
	copy(points, keep)
	points = append(points, Point{T: t, Y: signal.SineAt(frequency, amplitude, t)})

	return State{T: t, Points: points}
}

// Reset returns the initial state: t=0 and no points.
func Reset() State {
	return State{}
}
