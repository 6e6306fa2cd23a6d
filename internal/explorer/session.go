// Package explorer drives the oscillator sampler and the difference-equation
// reveal for a frame-driven host.
//
// A host creates one [Session], forwards control changes to it and calls
// [Session.Tick] once per frame with the elapsed time. Everything a host
// needs to draw comes back from [Session.Snapshot]. Sessions are not safe for
// concurrent use; call them from the host's frame loop only.
package explorer

import (
	"github.com/cwbudde/algo-zexplorer/dsp/core"
	"github.com/cwbudde/algo-zexplorer/dsp/filter/diffeq"
	"github.com/cwbudde/algo-zexplorer/dsp/oscillator"
)

// Control ranges of the oscillator sliders.
const (
	MinFrequency  = 0.1
	MaxFrequency  = 5.0
	FrequencyStep = 0.1

	MinAmplitude  = 0.1
	MaxAmplitude  = 2.0
	AmplitudeStep = 0.1

	// CoefficientStep is the increment hosts use when nudging a coefficient.
	CoefficientStep = 0.1
)

// Session is the per-user state of the explorer.
type Session struct {
	frequency float64
	amplitude float64
	playing   bool

	sampler *oscillator.Sampler
	reveal  *diffeq.Reveal
	coeffs  diffeq.Coefficients

	questions []Question

	analysis    Analysis
	analysisGen uint64
}

// NewSession returns a paused session at t=0 whose first reveal is already
// started, so the first Tick draws the first output frame.
func NewSession(opts ...Option) *Session {
	cfg := applyOptions(opts...)

	s := &Session{
		frequency: clampFrequency(cfg.frequency),
		amplitude: clampAmplitude(cfg.amplitude),
		playing:   cfg.playing,
		sampler:   oscillator.NewSampler(),
		reveal:    diffeq.NewReveal(),
		coeffs:    cfg.coefficients,
		questions: seededQuestions(),
	}
	s.reveal.Start(s.coeffs)
	return s
}

// SetFrequency clamps f to [MinFrequency, MaxFrequency], snaps it to
// FrequencyStep and returns the value applied.
func (s *Session) SetFrequency(f float64) float64 {
	s.frequency = clampFrequency(f)
	return s.frequency
}

// SetAmplitude clamps a to [MinAmplitude, MaxAmplitude], snaps it to
// AmplitudeStep and returns the value applied.
func (s *Session) SetAmplitude(a float64) float64 {
	s.amplitude = clampAmplitude(a)
	return s.amplitude
}

// Frequency returns the oscillator frequency in Hz.
func (s *Session) Frequency() float64 { return s.frequency }

// Amplitude returns the oscillator amplitude.
func (s *Session) Amplitude() float64 { return s.amplitude }

// SetCoefficients replaces the filter coefficients and restarts the reveal,
// abandoning any reveal in flight. It returns the new reveal generation.
// Coefficients are not validated.
func (s *Session) SetCoefficients(c diffeq.Coefficients) uint64 {
	s.coeffs = c
	return s.reveal.Start(c)
}

// SetCoefficient replaces one coefficient by name (a1, a2, b0 or b1) and
// restarts the reveal.
func (s *Session) SetCoefficient(name string, value float64) (uint64, error) {
	c, err := s.coeffs.With(name, value)
	if err != nil {
		return 0, err
	}
	return s.SetCoefficients(c), nil
}

// NudgeCoefficient adds steps*CoefficientStep to the named coefficient.
func (s *Session) NudgeCoefficient(name string, steps int) (uint64, error) {
	v, err := s.coeffs.Get(name)
	if err != nil {
		return 0, err
	}
	return s.SetCoefficient(name, core.Snap(v+float64(steps)*CoefficientStep, 0, CoefficientStep/10))
}

// Coefficients returns the current filter coefficients.
func (s *Session) Coefficients() diffeq.Coefficients { return s.coeffs }

// Play starts advancing the oscillator on each Tick.
func (s *Session) Play() { s.playing = true }

// Pause stops advancing the oscillator. The window and time are kept.
func (s *Session) Pause() { s.playing = false }

// Toggle flips between playing and paused and returns the new state.
func (s *Session) Toggle() bool {
	s.playing = !s.playing
	return s.playing
}

// Playing reports whether the oscillator advances on Tick.
func (s *Session) Playing() bool { return s.playing }

// Reset rewinds the oscillator to t=0 with an empty window, pauses, and
// restarts the output reveal for the current coefficients.
func (s *Session) Reset() uint64 {
	s.sampler.Reset()
	s.playing = false
	return s.reveal.Start(s.coeffs)
}

// Tick advances one frame. While playing and for dt > 0 the oscillator is
// sampled at t+dt; the reveal then emits its next frame if one is pending.
func (s *Session) Tick(dt float64) {
	if s.playing && dt > 0 {
		s.sampler.Advance(dt, s.frequency, s.amplitude)
	}
	s.reveal.Next()
}

// TickFor is Tick for hosts that schedule reveal frames as callbacks tagged
// with the generation that scheduled them. A stale generation only moves the
// oscillator.
func (s *Session) TickFor(gen uint64, dt float64) bool {
	if s.playing && dt > 0 {
		s.sampler.Advance(dt, s.frequency, s.amplitude)
	}
	_, ok := s.reveal.NextFor(gen)
	return ok
}

// Generation returns the generation of the reveal in progress.
func (s *Session) Generation() uint64 { return s.reveal.Generation() }

// Snapshot is a detached copy of everything a host draws.
type Snapshot struct {
	Time      float64
	Points    []oscillator.Point
	Playing   bool
	Frequency float64
	Amplitude float64

	Coefficients diffeq.Coefficients
	Frame        diffeq.Frame // last revealed prefix; empty before the first frame
	RevealState  diffeq.State
	Generation   uint64
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	frame, _ := s.reveal.Current()
	return Snapshot{
		Time:         s.sampler.Time(),
		Points:       s.sampler.Window().Points(),
		Playing:      s.playing,
		Frequency:    s.frequency,
		Amplitude:    s.amplitude,
		Coefficients: s.coeffs,
		Frame:        frame,
		RevealState:  s.reveal.State(),
		Generation:   s.reveal.Generation(),
	}
}

func clampFrequency(f float64) float64 {
	return core.ClampSnap(f, MinFrequency, MaxFrequency, FrequencyStep)
}

func clampAmplitude(a float64) float64 {
	return core.ClampSnap(a, MinAmplitude, MaxAmplitude, AmplitudeStep)
}
