// Command zinfo evaluates the second-order difference equation
//
//	y[n] = b0*x[n] + b1*x[n-1] - a1*y[n-1] - a2*y[n-2]
//
// over the explorer's probe signal and prints the result.
//
// Usage:
//
//	zinfo [flags]
//
// Examples:
//
//	zinfo
//	zinfo -a1 -0.9 -a2 0.2
//	zinfo -format csv > out.csv
//	zinfo -format svg -width 400 -height 100 > out.svg
//	zinfo -format response -a1 -0.5 -a2 0
//	zinfo -window blackman
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/cmplx"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-zexplorer/dsp/filter/diffeq"
	"github.com/cwbudde/algo-zexplorer/dsp/window"
	"github.com/cwbudde/algo-zexplorer/internal/explorer"
	"github.com/cwbudde/algo-zexplorer/internal/plot"
)

var errUnknownFormat = errors.New("unknown format")

type options struct {
	coeffs diffeq.Coefficients
	format string
	window window.Type
	width  float64
	height float64
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	res := diffeq.Evaluate(opts.coeffs)

	switch opts.format {
	case "table":
		err = printTable(stdout, opts, res)
	case "csv":
		err = printCSV(stdout, res)
	case "svg":
		err = printSVG(stdout, res, plot.Chart{Width: opts.width, Height: opts.height})
	case "response":
		err = printResponse(stdout, opts)
	default:
		err = fmt.Errorf("%w %q (want table, csv, svg or response)", errUnknownFormat, opts.format)
	}
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	def := diffeq.DefaultCoefficients()
	opts := options{}
	var windowName string

	fs := flag.NewFlagSet("zinfo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Float64Var(&opts.coeffs.A1, "a1", def.A1, "feedback coefficient on y[n-1]")
	fs.Float64Var(&opts.coeffs.A2, "a2", def.A2, "feedback coefficient on y[n-2]")
	fs.Float64Var(&opts.coeffs.B0, "b0", def.B0, "feedforward coefficient on x[n]")
	fs.Float64Var(&opts.coeffs.B1, "b1", def.B1, "feedforward coefficient on x[n-1]")
	fs.StringVar(&opts.format, "format", "table", "output format: table, csv, svg or response")
	fs.StringVar(&windowName, "window", window.TypeHann.String(), "spectrum window: rect, hann, hamming or blackman")
	fs.Float64Var(&opts.width, "width", plot.SignalChart.Width, "svg width")
	fs.Float64Var(&opts.height, "height", plot.SignalChart.Height, "svg height")
	fs.Usage = func() {
		_, _ = fmt.Fprintf(stderr, "Usage: zinfo [flags]\n\n")
		_, _ = fmt.Fprintf(stderr, "Evaluates y[n] = b0*x[n] + b1*x[n-1] - a1*y[n-1] - a2*y[n-2]\n")
		_, _ = fmt.Fprintf(stderr, "over %d samples of x[n] = sin(2*pi*%g*n).\n\n", diffeq.SignalLength, diffeq.ProbeFrequency)
		_, _ = fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(stderr, "\nExamples:\n")
		_, _ = fmt.Fprintf(stderr, "  zinfo -a1 -0.9 -a2 0.2\n")
		_, _ = fmt.Fprintf(stderr, "  zinfo -format svg > out.svg\n")
	}

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	opts.format = strings.ToLower(strings.TrimSpace(opts.format))

	t, err := window.ParseType(windowName)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "invalid -window: %v\n", err)
		fs.Usage()
		return options{}, err
	}
	opts.window = t
	return opts, nil
}

func printTable(w io.Writer, opts options, res diffeq.Result) error {
	a, err := explorer.Analyze(opts.coeffs, explorer.WithSpectrumWindow(opts.window))
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	stability := "unstable"
	if a.Stable {
		stability = "stable"
	}

	header := []string{
		a.Equation,
		a.TransferFunction,
		fmt.Sprintf("poles: %s, %s (radius %.4f, %s)", fmtComplex(a.Poles[0]), fmtComplex(a.Poles[1]), a.PoleRadius, stability),
		fmt.Sprintf("zeros: %s, %s", fmtComplex(a.Zeros[0]), fmtComplex(a.Zeros[1])),
		fmt.Sprintf("|H| at %g cycles/sample: %.4f (%.2f dB, phase %.4f rad), measured %.4f",
			diffeq.ProbeFrequency, a.ProbeGain, a.ProbeGainDB, a.ProbePhase, a.OutputTone),
		fmt.Sprintf("impulse: %s", fmtSamples(a.Impulse, 6)),
		fmt.Sprintf("input peak %.4f; output: peak %.4f at n=%d, rms %.4f, growth %.2f, finite %d/%d",
			a.InputPeak, a.Output.Peak, a.Output.PeakPos, a.Output.RMS, a.Output.Growth, a.Output.Finite, a.Output.Length),
		fmt.Sprintf("spectrum (%s, %d-point): peak at %.4f cycles/sample, tone %.4f",
			a.Window, a.Spectrum.FFTSize, a.Spectrum.BinFrequency(a.Spectrum.PeakBin()), a.SpectrumTone),
		"",
	}
	for _, line := range header {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	if _, err := fmt.Fprintf(tw, "n\tx[n]\ty[n]\t\n"); err != nil {
		return fmt.Errorf("write table header: %w", err)
	}
	for n := range res.Len() {
		if _, err := fmt.Fprintf(tw, "%d\t%.6f\t%.6f\t\n", n, res.X[n], res.Y[n]); err != nil {
			return fmt.Errorf("write row %d: %w", n, err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}

func printCSV(w io.Writer, res diffeq.Result) error {
	if _, err := fmt.Fprintln(w, "n,x,y"); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for n := range res.Len() {
		if _, err := fmt.Fprintf(w, "%d,%g,%g\n", n, res.X[n], res.Y[n]); err != nil {
			return fmt.Errorf("write row %d: %w", n, err)
		}
	}
	return nil
}

func printResponse(w io.Writer, opts options) error {
	a, err := explorer.Analyze(opts.coeffs, explorer.WithSpectrumWindow(opts.window))
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	if _, err := fmt.Fprintln(w, "f,magnitude,phase"); err != nil {
		return fmt.Errorf("write response header: %w", err)
	}
	r := a.Response
	for i := range r.Frequency {
		if _, err := fmt.Fprintf(w, "%g,%g,%g\n", r.Frequency[i], r.Magnitude[i], r.Phase[i]); err != nil {
			return fmt.Errorf("write response row %d: %w", i, err)
		}
	}
	return nil
}

func printSVG(w io.Writer, res diffeq.Result, c plot.Chart) error {
	in := plot.SVGPath(plot.SignalVertices(res.X, c))
	out := plot.SVGPath(plot.SignalVertices(res.Y, c))

	_, err := fmt.Fprintf(w, `<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="0 0 %g %g">
  <rect width="100%%" height="100%%" fill="#1f2937"/>
  <path d="%s" fill="none" stroke="#60a5fa" stroke-width="2"/>
  <path d="%s" fill="none" stroke="#f472b6" stroke-width="2"/>
</svg>
`, c.Width, c.Height, c.Width, c.Height, in, out)
	if err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}

func fmtComplex(z complex128) string {
	if imag(z) == 0 {
		return fmt.Sprintf("%.4f", real(z))
	}
	return fmt.Sprintf("%.4f%+.4fj (|z|=%.4f)", real(z), imag(z), cmplx.Abs(z))
}

func fmtSamples(v []float64, n int) string {
	parts := make([]string, 0, n+1)
	for i := 0; i < n && i < len(v); i++ {
		parts = append(parts, fmt.Sprintf("%.4g", v[i]))
	}
	if len(v) > n {
		parts = append(parts, "...")
	}
	return strings.Join(parts, " ")
}
