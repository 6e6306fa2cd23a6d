// Package window generates the analysis windows applied before a spectrum
// of the difference-equation output is taken.
package window

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrEmptyCoefficients is returned for an empty coefficient slice.
	ErrEmptyCoefficients = errors.New("window: empty coefficients")
	// ErrUnknownType is returned by ParseType for an unrecognized name.
	ErrUnknownType = errors.New("window: unknown type")
)

// Type selects a window shape.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
)

// String returns the window name.
func (t Type) String() string {
	switch t {
	case TypeRectangular:
		return "rectangular"
	case TypeHann:
		return "hann"
	case TypeHamming:
		return "hamming"
	case TypeBlackman:
		return "blackman"
	default:
		return "unknown"
	}
}

// ParseType returns the Type whose String form is name, ignoring case.
// "rect" is accepted for TypeRectangular.
func ParseType(name string) (Type, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "rect" {
		return TypeRectangular, nil
	}
	for t := TypeRectangular; t <= TypeBlackman; t++ {
		if t.String() == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownType, name)
}

type config struct {
	periodic bool
}

// Option configures Generate.
type Option func(*config)

// WithPeriodic generates the periodic (DFT-even) form, which repeats
// seamlessly with period length. The default is the symmetric form.
func WithPeriodic() Option {
	return func(cfg *config) {
		cfg.periodic = true
	}
}

// Generate returns length coefficients of window t.
// A non-positive length returns nil.
func Generate(t Type, length int, opts ...Option) []float64 {
	if length <= 0 {
		return nil
	}

	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	out := make([]float64, length)
	for n := range out {
		out[n] = evalWindow(t, samplePosition(n, length, cfg.periodic))
	}
	return out
}

// CoherentGain returns the mean of the coefficients: the factor by which the
// window scales the amplitude of a bin-centred sinusoid.
func CoherentGain(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, ErrEmptyCoefficients
	}
	var sum float64
	for _, c := range coeffs {
		sum += c
	}
	return sum / float64(len(coeffs)), nil
}

// samplePosition maps sample n to x in [0, 1] (symmetric) or [0, 1) (periodic).
func samplePosition(n, size int, periodic bool) float64 {
	denom := size - 1
	if periodic {
		denom = size
	}
	if denom <= 0 {
		return 0.5
	}
	return float64(n) / float64(denom)
}

func evalWindow(t Type, x float64) float64 {
	switch t {
	case TypeHann:
		return cosineSum(x, 0.5, 0.5, 0)
	case TypeHamming:
		return cosineSum(x, 0.54, 0.46, 0)
	case TypeBlackman:
		return cosineSum(x, 0.42, 0.5, 0.08)
	default:
		return 1
	}
}

func cosineSum(x, a0, a1, a2 float64) float64 {
	p := 2 * math.Pi * x
	return a0 - a1*math.Cos(p) + a2*math.Cos(2*p)
}
