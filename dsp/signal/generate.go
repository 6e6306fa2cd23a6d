package signal

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-zexplorer/dsp/core"
)

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	cfg core.ProcessorConfig
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return &Generator{
		cfg: core.ApplyProcessorOptions(opts...),
	}
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Sine generates a sine wave of the given length.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("sine samples must be > 0: %d", samples)
	}
	out := make([]float64, samples)
	g.SineInto(out, freqHz, amplitude)
	return out, nil
}

// SineInto fills dst with amplitude*sin(2*pi*freqHz*n/sampleRate) for n = 0..len(dst)-1.
// Zero-alloc.
func (g *Generator) SineInto(dst []float64, freqHz, amplitude float64) {
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for i := range dst {
		dst[i] = amplitude * math.Sin(step*float64(i))
	}
}

// SineAt evaluates amplitude*sin(2*pi*freqHz*t) at continuous time t in seconds.
func SineAt(freqHz, amplitude, t float64) float64 {
	return amplitude * math.Sin(2*math.Pi*freqHz*t)
}

// Peak returns the largest absolute value in data, or 0 for empty input.
// NaN samples are reported as NaN so diverging output is never hidden.
func Peak(data []float64) float64 {
	peak := 0.0
	for _, v := range data {
		if math.IsNaN(v) {
			return math.NaN()
		}
		if av := math.Abs(v); av > peak {
			peak = av
		}
	}
	return peak
}
