package explorer

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-zexplorer/dsp/filter/diffeq"
	"github.com/cwbudde/algo-zexplorer/dsp/window"
	"github.com/cwbudde/algo-zexplorer/internal/testutil"
)

func TestAnalyzeDefaultCoefficients(t *testing.T) {
	a, err := Analyze(diffeq.DefaultCoefficients())
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if a.Stable {
		t.Fatal("pole on the unit circle reported stable")
	}
	testutil.RequireNearlyEqual(t, "pole radius", a.PoleRadius, 1, 1e-12)
	if a.Equation == "" || a.TransferFunction == "" {
		t.Fatal("missing equation text")
	}

	want := cmplx.Abs(diffeq.DefaultCoefficients().Response(2 * math.Pi * diffeq.ProbeFrequency))
	testutil.RequireNearlyEqual(t, "probe gain", a.ProbeGain, want, 1e-12)
	if a.Output.Peak <= 0 || a.Output.Diverged() {
		t.Fatalf("output stats = %+v", a.Output)
	}
	if len(a.Spectrum.Magnitude) != a.Spectrum.FFTSize/2+1 {
		t.Fatalf("spectrum bins = %d for fft size %d", len(a.Spectrum.Magnitude), a.Spectrum.FFTSize)
	}
}

func TestAnalyzePassThrough(t *testing.T) {
	a, err := Analyze(diffeq.Coefficients{B0: 1})
	if err != nil {
		t.Fatal(err)
	}

	if !a.Stable {
		t.Fatal("FIR pass-through reported unstable")
	}
	testutil.RequireNearlyEqual(t, "probe gain", a.ProbeGain, 1, 1e-12)
	testutil.RequireNearlyEqual(t, "gain dB", a.ProbeGainDB, 0, 1e-9)

	// y[0] and y[1] are held at zero, so the tone reads slightly low.
	if a.OutputTone < 0.85 || a.OutputTone > 1.05 {
		t.Fatalf("output tone = %v, want about 1", a.OutputTone)
	}

	peak := a.Spectrum.BinFrequency(a.Spectrum.PeakBin())
	if math.Abs(peak-diffeq.ProbeFrequency) > 1.0/float64(a.Spectrum.FFTSize) {
		t.Fatalf("spectrum peak at %v, want near %v", peak, diffeq.ProbeFrequency)
	}
}

func TestAnalyzeSpectrumWindows(t *testing.T) {
	for _, typ := range []window.Type{window.TypeRectangular, window.TypeHann, window.TypeHamming, window.TypeBlackman} {
		t.Run(typ.String(), func(t *testing.T) {
			a, err := Analyze(diffeq.Coefficients{B0: 1}, WithSpectrumWindow(typ))
			if err != nil {
				t.Fatal(err)
			}
			if a.Window != typ {
				t.Fatalf("Window = %v, want %v", a.Window, typ)
			}
			// Scalloping and the zeroed first samples keep the reading under 1.
			if a.SpectrumTone < 0.8 || a.SpectrumTone > 1 {
				t.Fatalf("spectrum tone = %v, want about 1", a.SpectrumTone)
			}
		})
	}

	a, err := Analyze(diffeq.Coefficients{B0: 1})
	if err != nil {
		t.Fatal(err)
	}
	if a.Window != window.TypeHann {
		t.Fatalf("default window = %v, want hann", a.Window)
	}
}

func TestAnalyzeImpulseAndResponse(t *testing.T) {
	// One pole at z = 0.5.
	c := diffeq.Coefficients{A1: -0.5, B0: 1}
	a, err := Analyze(c)
	if err != nil {
		t.Fatal(err)
	}

	if len(a.Impulse) != diffeq.SignalLength {
		t.Fatalf("impulse length = %d, want %d", len(a.Impulse), diffeq.SignalLength)
	}
	for n, want := range []float64{1, 0.5, 0.25, 0.125} {
		testutil.RequireNearlyEqual(t, "h[n]", a.Impulse[n], want, 1e-12)
	}

	r := a.Response
	if len(r.Frequency) != ResponsePoints || len(r.Magnitude) != ResponsePoints || len(r.Phase) != ResponsePoints {
		t.Fatalf("response lengths = %d/%d/%d", len(r.Frequency), len(r.Magnitude), len(r.Phase))
	}
	testutil.RequireNearlyEqual(t, "last frequency", r.Frequency[ResponsePoints-1], 0.5, 1e-12)
	// H(1) = 1/(1-0.5) and H(-1) = 1/(1+0.5).
	testutil.RequireNearlyEqual(t, "dc gain", r.Magnitude[0], 2, 1e-9)
	testutil.RequireNearlyEqual(t, "nyquist gain", r.Magnitude[ResponsePoints-1], 2.0/3, 1e-9)
	testutil.RequireNearlyEqual(t, "dc phase", r.Phase[0], 0, 1e-12)

	testutil.RequireNearlyEqual(t, "probe phase", a.ProbePhase, cmplx.Phase(c.Response(2*math.Pi*diffeq.ProbeFrequency)), 1e-12)
	// The probe peaks at n = 2 and n = 3 with sin(0.4*pi).
	testutil.RequireNearlyEqual(t, "input peak", a.InputPeak, math.Sin(0.4*math.Pi), 1e-12)
}

func TestAnalyzeUnstableGrowth(t *testing.T) {
	// Poles at z = ±1.1.
	a, err := Analyze(diffeq.Coefficients{A2: -1.21, B0: 1})
	if err != nil {
		t.Fatal(err)
	}
	if a.Stable {
		t.Fatal("poles outside the unit circle reported stable")
	}
	if a.Output.Growth < 2 {
		t.Fatalf("output growth = %v, want a diverging response", a.Output.Growth)
	}
}

func TestSessionAnalysisCache(t *testing.T) {
	s := NewSession()

	first, err := s.Analysis()
	if err != nil {
		t.Fatal(err)
	}
	again, _ := s.Analysis()
	if &first.Spectrum.Magnitude[0] != &again.Spectrum.Magnitude[0] {
		t.Fatal("analysis recomputed without a coefficient change")
	}

	if _, err := s.SetCoefficient("a1", 0); err != nil {
		t.Fatal(err)
	}
	updated, err := s.Analysis()
	if err != nil {
		t.Fatal(err)
	}
	if updated.PoleRadius == first.PoleRadius {
		t.Fatal("analysis not refreshed after coefficient change")
	}
}
