// Package time summarizes discrete-time signals such as the output of a
// difference equation.
//
// Output of an unstable recurrence may overflow to ±Inf and then NaN, so the
// summary tracks where the signal stops being finite and computes the other
// figures over the finite prefix only.
package time

import "math"

// Stats holds time-domain statistics of a signal.
type Stats struct {
	Length int

	// Finite is the length of the prefix before the first NaN or ±Inf sample.
	// It equals Length for a fully finite signal.
	Finite int

	DC            float64 // mean
	RMS           float64
	Peak          float64 // max |x|
	PeakPos       int
	ZeroCrossings int

	// Growth is the RMS of the second half of the finite prefix over the RMS
	// of the first half. Values well above 1 indicate a diverging response.
	Growth float64
}

// Diverged reports whether the signal contains non-finite samples.
func (s Stats) Diverged() bool {
	return s.Finite < s.Length
}

// PeakDB returns the peak in dB (20*log10), or -Inf for silence.
func (s Stats) PeakDB() float64 {
	return ampTodB(s.Peak)
}

func ampTodB(value float64) float64 {
	a := math.Abs(value)
	if a == 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(a)
}

// Calculate computes the statistics in one pass over the finite prefix.
func Calculate(signal []float64) Stats {
	s := Stats{Length: len(signal), Finite: finitePrefix(signal)}
	x := signal[:s.Finite]
	if len(x) == 0 {
		return s
	}

	var sum, sumSq float64
	for i, v := range x {
		sum += v
		sumSq += v * v
		if a := math.Abs(v); a > s.Peak {
			s.Peak = a
			s.PeakPos = i
		}
		if i > 0 && x[i-1]*v < 0 {
			s.ZeroCrossings++
		}
	}

	n := float64(len(x))
	s.DC = sum / n
	s.RMS = math.Sqrt(sumSq / n)

	if len(x) >= 2 {
		half := len(x) / 2
		if first := RMS(x[:half]); first > 0 {
			s.Growth = RMS(x[half:]) / first
		}
	}

	return s
}

// RMS returns the root-mean-square of the signal, or 0 when empty.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	var sumSq float64
	for _, x := range signal {
		sumSq += x * x
	}

	return math.Sqrt(sumSq / float64(len(signal)))
}

// ZeroCrossings returns the number of sign changes between consecutive samples.
// Zero samples do not count as a change.
func ZeroCrossings(signal []float64) int {
	var count int
	for i := 1; i < len(signal); i++ {
		if signal[i-1]*signal[i] < 0 {
			count++
		}
	}
	return count
}

func finitePrefix(signal []float64) int {
	for i, v := range signal {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return i
		}
	}
	return len(signal)
}
