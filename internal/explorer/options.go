package explorer

import "github.com/cwbudde/algo-zexplorer/dsp/filter/diffeq"

type config struct {
	frequency    float64
	amplitude    float64
	coefficients diffeq.Coefficients
	playing      bool
}

// Option configures a Session.
type Option func(*config)

// WithFrequency sets the initial oscillator frequency in Hz.
// The value is clamped and snapped like SetFrequency.
func WithFrequency(f float64) Option {
	return func(cfg *config) {
		cfg.frequency = f
	}
}

// WithAmplitude sets the initial oscillator amplitude.
// The value is clamped and snapped like SetAmplitude.
func WithAmplitude(a float64) Option {
	return func(cfg *config) {
		cfg.amplitude = a
	}
}

// WithCoefficients sets the initial filter coefficients.
func WithCoefficients(c diffeq.Coefficients) Option {
	return func(cfg *config) {
		cfg.coefficients = c
	}
}

// WithPlaying starts the session already playing.
func WithPlaying() Option {
	return func(cfg *config) {
		cfg.playing = true
	}
}

func applyOptions(opts ...Option) config {
	cfg := config{
		frequency:    1,
		amplitude:    1,
		coefficients: diffeq.DefaultCoefficients(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
