package signal

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-zexplorer/dsp/core"
)

func TestSineLength(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(48000))
	s, err := g.Sine(1000, 1, 64)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}
	if len(s) != 64 {
		t.Fatalf("len = %d, want 64", len(s))
	}
}

func TestSineRejectsEmpty(t *testing.T) {
	g := NewGenerator()
	if _, err := g.Sine(0.1, 1, 0); err == nil {
		t.Fatal("expected error for zero samples")
	}
}

func TestSineIntoNormalized(t *testing.T) {
	g := NewGenerator()
	out := make([]float64, 50)
	g.SineInto(out, 0.1, 1)

	for n, v := range out {
		want := math.Sin(2 * math.Pi * 0.1 * float64(n))
		if math.Abs(v-want) > 1e-12 {
			t.Fatalf("out[%d] = %v, want %v", n, v, want)
		}
	}
}

func TestSineAt(t *testing.T) {
	got := SineAt(1, 2, 0.25)
	if !core.NearlyEqual(got, 2, 1e-12) {
		t.Fatalf("SineAt(1, 2, 0.25) = %v, want 2", got)
	}
	if SineAt(3, 1.5, 0) != 0 {
		t.Fatal("SineAt at t=0 must be 0")
	}
}

func TestPeak(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		want float64
	}{
		{name: "empty", in: nil, want: 0},
		{name: "negative", in: []float64{0.5, -2, 1}, want: 2},
		{name: "inf", in: []float64{1, math.Inf(-1)}, want: math.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Peak(tt.in); got != tt.want {
				t.Fatalf("Peak() = %v, want %v", got, tt.want)
			}
		})
	}

	if !math.IsNaN(Peak([]float64{1, math.NaN()})) {
		t.Fatal("expected NaN peak")
	}
}
