package spectrum

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-zexplorer/dsp/window"
)

// ErrEmptyInput is returned when a spectrum is requested for an empty signal.
var ErrEmptyInput = errors.New("spectrum: empty input")

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Magnitude returns |X[k]| for each complex spectrum bin.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)
	putScratch(buf)
	return out
}

// Phase returns arg(X[k]) for each complex spectrum bin in radians.
func Phase(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float64, len(in))
	for i, c := range in {
		out[i] = cmplx.Phase(c)
	}
	return out
}

type config struct {
	window  window.Type
	fftSize int
}

// Option configures MagnitudeSpectrum.
type Option func(*config)

// WithWindow applies the periodic form of window t before the transform.
func WithWindow(t window.Type) Option {
	return func(cfg *config) {
		cfg.window = t
	}
}

// WithHann applies a periodic Hann window before the transform.
func WithHann() Option {
	return WithWindow(window.TypeHann)
}

// WithFFTSize sets the transform size. It is rounded up to a power of two
// and never smaller than the input length.
func WithFFTSize(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.fftSize = n
		}
	}
}

// Result is a one-sided magnitude spectrum.
type Result struct {
	FFTSize   int
	Magnitude []float64 // bins 0..FFTSize/2
}

// PeakBin returns the index of the largest magnitude bin, or -1 if empty.
func (r Result) PeakBin() int {
	peak := -1
	best := math.Inf(-1)
	for k, v := range r.Magnitude {
		if v > best {
			best = v
			peak = k
		}
	}
	return peak
}

// BinFrequency returns the frequency of bin k in cycles per sample.
func (r Result) BinFrequency(k int) float64 {
	return BinFrequency(k, r.FFTSize)
}

// BinFrequency returns the frequency of bin k of an fftSize transform in
// cycles per sample.
func BinFrequency(k, fftSize int) float64 {
	if fftSize <= 0 {
		return 0
	}
	return float64(k) / float64(fftSize)
}

// MagnitudeSpectrum returns the one-sided magnitude spectrum of x.
// Magnitudes are normalized by the input length so a full-scale sine that
// lands on a bin reads about 0.5 (0.25 with a Hann window).
func MagnitudeSpectrum(x []float64, opts ...Option) (Result, error) {
	if len(x) == 0 {
		return Result{}, ErrEmptyInput
	}

	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	fftSize := nextPowerOf2(max(cfg.fftSize, len(x)))

	frame := make([]float64, len(x))
	copy(frame, x)
	if cfg.window != window.TypeRectangular {
		vecmath.MulBlockInPlace(frame, window.Generate(cfg.window, len(x), window.WithPeriodic()))
	}

	in := make([]complex128, fftSize)
	for i, v := range frame {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Result{}, fmt.Errorf("spectrum fft plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return Result{}, fmt.Errorf("spectrum forward fft: %w", err)
	}

	mag := Magnitude(out[:fftSize/2+1])
	norm := 1 / float64(len(x))
	for k := range mag {
		mag[k] *= norm
	}

	return Result{FFTSize: fftSize, Magnitude: mag}, nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
