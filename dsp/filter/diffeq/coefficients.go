package diffeq

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"strconv"
)

// Coefficients of y[n] = B0*x[n] + B1*x[n-1] - A1*y[n-1] - A2*y[n-2].
//
// In the z-domain this is
//
//	H(z) = (B0 + B1*z^-1) / (1 + A1*z^-1 + A2*z^-2)
type Coefficients struct {
	A1, A2 float64 // feedback
	B0, B1 float64 // feedforward
}

// DefaultCoefficients returns the coefficients the explorer starts with:
// a pole at z=1 and one at z=0.5 driven by a plain feedforward tap.
func DefaultCoefficients() Coefficients {
	return Coefficients{A1: -1.5, A2: 0.5, B0: 1, B1: 0}
}

// ErrUnknownCoefficient is returned for a coefficient name other than a1, a2,
// b0 or b1.
var ErrUnknownCoefficient = errors.New("diffeq: unknown coefficient")

// Names lists the coefficient names in display order.
var Names = [...]string{"a1", "a2", "b0", "b1"}

// Get returns the coefficient with the given name (a1, a2, b0 or b1).
func (c Coefficients) Get(name string) (float64, error) {
	switch name {
	case "a1":
		return c.A1, nil
	case "a2":
		return c.A2, nil
	case "b0":
		return c.B0, nil
	case "b1":
		return c.B1, nil
	default:
		return 0, fmt.Errorf("%w %q", ErrUnknownCoefficient, name)
	}
}

// With returns a copy of c with the named coefficient replaced.
func (c Coefficients) With(name string, value float64) (Coefficients, error) {
	switch name {
	case "a1":
		c.A1 = value
	case "a2":
		c.A2 = value
	case "b0":
		c.B0 = value
	case "b1":
		c.B1 = value
	default:
		return c, fmt.Errorf("%w %q", ErrUnknownCoefficient, name)
	}
	return c, nil
}

// String renders the difference equation.
func (c Coefficients) String() string {
	return "y[n] = " + fmtCoef(c.B0) + "·x[n] + " + fmtCoef(c.B1) + "·x[n-1] - " +
		fmtCoef(c.A1) + "·y[n-1] - " + fmtCoef(c.A2) + "·y[n-2]"
}

// TransferFunction renders H(z) with the coefficients substituted.
func (c Coefficients) TransferFunction() string {
	return "H(z) = (" + fmtCoef(c.B0) + " + " + fmtCoef(c.B1) + "z⁻¹) / (1 + " +
		fmtCoef(c.A1) + "z⁻¹ + " + fmtCoef(c.A2) + "z⁻²)"
}

// Numerator returns [B0, B1], the coefficients of the numerator in powers of z^-1.
func (c Coefficients) Numerator() [2]float64 {
	return [2]float64{c.B0, c.B1}
}

// Denominator returns [1, A1, A2], the coefficients of the denominator in powers of z^-1.
func (c Coefficients) Denominator() [3]float64 {
	return [3]float64{1, c.A1, c.A2}
}

// Poles returns the z-plane roots of 1 + A1*z^-1 + A2*z^-2 = 0.
func (c Coefficients) Poles() [2]complex128 {
	return quadraticRoots(1, c.A1, c.A2)
}

// Zeros returns the z-plane roots of B0 + B1*z^-1 = 0 written over z^2,
// so one zero always sits at the origin.
func (c Coefficients) Zeros() [2]complex128 {
	return quadraticRoots(c.B0, c.B1, 0)
}

// PoleRadius returns the largest pole magnitude.
func (c Coefficients) PoleRadius() float64 {
	p := c.Poles()
	return math.Max(cmplx.Abs(p[0]), cmplx.Abs(p[1]))
}

// Stable reports whether every pole lies strictly inside the unit circle.
// Poles on the circle (marginal stability) are reported as not stable.
func (c Coefficients) Stable() bool {
	return c.PoleRadius() < 1
}

// Response computes H(e^jw) at the normalized angular frequency w in
// radians per sample.
func (c Coefficients) Response(w float64) complex128 {
	ejw := cmplx.Exp(complex(0, -w))
	ej2w := cmplx.Exp(complex(0, -2*w))

	num := complex(c.B0, 0) + complex(c.B1, 0)*ejw
	den := complex(1, 0) + complex(c.A1, 0)*ejw + complex(c.A2, 0)*ej2w
	return num / den
}

// MagnitudeDB returns 20*log10(|H(e^jw)|).
func (c Coefficients) MagnitudeDB(w float64) float64 {
	return 20 * math.Log10(cmplx.Abs(c.Response(w)))
}

// Phase returns arg(H(e^jw)) in [-pi, pi].
func (c Coefficients) Phase(w float64) float64 {
	return cmplx.Phase(c.Response(w))
}

// ImpulseResponse runs the recurrence from rest (y[-1] = y[-2] = 0, x[-1] = 0)
// on a unit impulse and returns n samples. Unlike Evaluate it starts at n = 0.
func (c Coefficients) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}
	h := make([]float64, n)
	var x1, y1, y2 float64
	for i := range h {
		x0 := 0.0
		if i == 0 {
			x0 = 1
		}
		y0 := c.B0*x0 + c.B1*x1 - c.A1*y1 - c.A2*y2
		h[i] = y0
		x1 = x0
		y2, y1 = y1, y0
	}
	return h
}

func quadraticRoots(a, b, c float64) [2]complex128 {
	if a == 0 {
		if b == 0 {
			return [2]complex128{}
		}
		return [2]complex128{complex(-c/b, 0), 0}
	}

	discriminant := complex(b*b-4*a*c, 0)
	sqrtDiscriminant := cmplx.Sqrt(discriminant)
	den := complex(2*a, 0)
	return [2]complex128{
		(-complex(b, 0) + sqrtDiscriminant) / den,
		(-complex(b, 0) - sqrtDiscriminant) / den,
	}
}

func fmtCoef(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
