package explorer

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-zexplorer/dsp/core"
	"github.com/cwbudde/algo-zexplorer/dsp/filter/diffeq"
	"github.com/cwbudde/algo-zexplorer/dsp/signal"
	"github.com/cwbudde/algo-zexplorer/dsp/spectrum"
	"github.com/cwbudde/algo-zexplorer/dsp/window"
	timestats "github.com/cwbudde/algo-zexplorer/stats/time"
)

// Analysis is the z-domain view of the current coefficients together with
// measurements of the full output signal.
type Analysis struct {
	Equation         string
	TransferFunction string
	Poles            [2]complex128
	Zeros            [2]complex128
	PoleRadius       float64
	Stable           bool

	// ProbeGain is |H(e^jw)| at the probe frequency.
	ProbeGain   float64
	ProbeGainDB float64
	ProbePhase  float64

	// Impulse is h[n] from rest for the first diffeq.SignalLength samples.
	Impulse []float64

	// Response samples H(e^jw) from 0 to 0.5 cycles/sample.
	Response Response

	// OutputTone is the amplitude of the probe frequency measured in the
	// output signal.
	OutputTone float64
	InputPeak  float64
	Output     timestats.Stats

	// Spectrum is the windowed magnitude spectrum of the output.
	Window   window.Type
	Spectrum spectrum.Result

	// SpectrumTone is the amplitude read from the strongest spectrum bin,
	// corrected for the coherent gain of Window.
	SpectrumTone float64
}

// ResponsePoints is the number of frequencies sampled into Analysis.Response.
const ResponsePoints = 65

// Response is the frequency response on an even grid of frequencies.
type Response struct {
	Frequency []float64 // cycles/sample
	Magnitude []float64
	Phase     []float64 // radians
}

type analysisConfig struct {
	window window.Type
}

// AnalysisOption configures Analyze.
type AnalysisOption func(*analysisConfig)

// WithSpectrumWindow selects the window applied before the output spectrum.
// The default is Hann.
func WithSpectrumWindow(t window.Type) AnalysisOption {
	return func(cfg *analysisConfig) {
		cfg.window = t
	}
}

// Analysis returns the analysis of the current coefficients. The result is
// cached until the coefficients change or the session is reset.
func (s *Session) Analysis() (Analysis, error) {
	gen := s.reveal.Generation()
	if gen == s.analysisGen && gen != 0 {
		return s.analysis, nil
	}

	a, err := Analyze(s.coeffs)
	if err != nil {
		return Analysis{}, err
	}

	s.analysis = a
	s.analysisGen = gen
	return a, nil
}

// Analyze evaluates c over the probe signal and measures the result.
func Analyze(c diffeq.Coefficients, opts ...AnalysisOption) (Analysis, error) {
	cfg := analysisConfig{window: window.TypeHann}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	res := diffeq.Evaluate(c)
	w := 2 * math.Pi * diffeq.ProbeFrequency
	gain := cmplx.Abs(c.Response(w))

	a := Analysis{
		Equation:         c.String(),
		TransferFunction: c.TransferFunction(),
		Poles:            c.Poles(),
		Zeros:            c.Zeros(),
		PoleRadius:       c.PoleRadius(),
		Stable:           c.Stable(),
		ProbeGain:        gain,
		ProbeGainDB:      core.LinearToDB(gain),
		ProbePhase:       c.Phase(w),
		Impulse:          c.ImpulseResponse(diffeq.SignalLength),
		Response:         frequencyResponse(c),
		InputPeak:        signal.Peak(res.X),
		Output:           timestats.Calculate(res.Y),
		Window:           cfg.window,
	}

	tone, err := spectrum.ToneAmplitude(res.Y, diffeq.ProbeFrequency)
	if err != nil {
		return Analysis{}, fmt.Errorf("output tone: %w", err)
	}
	a.OutputTone = tone

	sp, err := spectrum.MagnitudeSpectrum(res.Y, spectrum.WithWindow(cfg.window))
	if err != nil {
		return Analysis{}, fmt.Errorf("output spectrum: %w", err)
	}
	a.Spectrum = sp

	cg, err := window.CoherentGain(window.Generate(cfg.window, len(res.Y), window.WithPeriodic()))
	if err != nil {
		return Analysis{}, fmt.Errorf("window gain: %w", err)
	}
	if k := sp.PeakBin(); k >= 0 && cg > 0 {
		a.SpectrumTone = 2 * sp.Magnitude[k] / cg
	}

	return a, nil
}

func frequencyResponse(c diffeq.Coefficients) Response {
	freqs := make([]float64, ResponsePoints)
	h := make([]complex128, ResponsePoints)
	for i := range h {
		freqs[i] = 0.5 * float64(i) / float64(ResponsePoints-1)
		h[i] = c.Response(2 * math.Pi * freqs[i])
	}
	return Response{
		Frequency: freqs,
		Magnitude: spectrum.Magnitude(h),
		Phase:     spectrum.Phase(h),
	}
}
