package spectrum

import (
	"fmt"
	"math"
)

// Goertzel evaluates a single DFT term at a normalized frequency (cycles per
// sample) over all samples processed since the last Reset.
type Goertzel struct {
	frequency float64
	coeff     float64
	s0, s1    float64
	n         int
}

// NewGoertzel creates an analyzer for frequency in [0, 0.5] cycles per sample.
func NewGoertzel(frequency float64) (*Goertzel, error) {
	if frequency < 0 || frequency > 0.5 || math.IsNaN(frequency) {
		return nil, fmt.Errorf("goertzel: frequency must be between 0 and 0.5 cycles/sample: %v", frequency)
	}

	return &Goertzel{
		frequency: frequency,
		coeff:     2 * math.Cos(2*math.Pi*frequency),
	}, nil
}

// Frequency returns the target frequency in cycles per sample.
func (g *Goertzel) Frequency() float64 { return g.frequency }

// Reset clears the internal state.
func (g *Goertzel) Reset() {
	g.s0 = 0
	g.s1 = 0
	g.n = 0
}

// ProcessBlock updates the internal state with a block of samples.
func (g *Goertzel) ProcessBlock(input []float64) {
	s0, s1 := g.s0, g.s1

	coeff := g.coeff
	for _, x := range input {
		s := x + coeff*s0 - s1
		s1 = s0
		s0 = s
	}

	g.s0, g.s1 = s0, s1
	g.n += len(input)
}

// Power returns |X(f)|^2 for the processed samples.
func (g *Goertzel) Power() float64 {
	return g.s0*g.s0 + g.s1*g.s1 - g.coeff*g.s0*g.s1
}

// Magnitude returns |X(f)|.
func (g *Goertzel) Magnitude() float64 {
	p := g.Power()
	if p <= 0 {
		return 0
	}

	return math.Sqrt(p)
}

// Amplitude returns the peak amplitude of a sinusoid at the target frequency
// implied by the processed samples: 2*|X(f)|/N, or |X(0)|/N at DC.
func (g *Goertzel) Amplitude() float64 {
	if g.n == 0 {
		return 0
	}
	scale := 2.0
	if g.frequency == 0 || g.frequency == 0.5 {
		scale = 1
	}
	return scale * g.Magnitude() / float64(g.n)
}

// ToneAmplitude measures the amplitude of the frequency component of x at
// frequency cycles per sample.
func ToneAmplitude(x []float64, frequency float64) (float64, error) {
	if len(x) == 0 {
		return 0, ErrEmptyInput
	}
	g, err := NewGoertzel(frequency)
	if err != nil {
		return 0, err
	}

	g.ProcessBlock(x)

	return g.Amplitude(), nil
}
