package core

import "math"

const defaultEpsilon = 1e-12

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// Snap rounds value to the nearest multiple of step measured from origin.
// A non-positive step returns value unchanged.
//
// The result is rounded to the decimal precision of step so that slider
// values such as 0.1*3 come out as 0.3 rather than 0.30000000000000004.
func Snap(value, origin, step float64) float64 {
	if step <= 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return value
	}

	n := math.Round((value - origin) / step)
	snapped := origin + n*step

	scale := math.Pow(10, float64(stepDecimals(step)))
	return math.Round(snapped*scale) / scale
}

// ClampSnap clamps value to [min, max] and then snaps it to step from min.
// NaN maps to min so a slider never leaves its range.
func ClampSnap(value, min, max, step float64) float64 {
	if math.IsNaN(value) {
		value = min
	}
	return Clamp(Snap(Clamp(value, min, max), min, step), min, max)
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}

func stepDecimals(step float64) int {
	const maxDecimals = 9
	for d := 0; d < maxDecimals; d++ {
		scaled := step * math.Pow(10, float64(d))
		if math.Abs(scaled-math.Round(scaled)) < 1e-9 {
			return d
		}
	}
	return maxDecimals
}
