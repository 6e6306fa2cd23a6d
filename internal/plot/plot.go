// Package plot maps oscillator windows and discrete signals onto chart
// coordinates and renders them as SVG paths or character rasters.
//
// Coordinates follow SVG conventions: the origin is the top-left corner and
// y grows downward, so positive samples are drawn below the midline exactly as
// the browser charts do.
package plot

import (
	"math"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-zexplorer/dsp/oscillator"
)

// TimeSpan is the number of seconds shown across the oscillator chart before
// the trace wraps to the left edge.
const TimeSpan = 4.0

// Chart is a drawing area in chart units.
type Chart struct {
	Width  float64
	Height float64
}

// Default chart sizes used by the browser views.
var (
	OscillatorChart = Chart{Width: 800, Height: 300}
	SignalChart     = Chart{Width: 800, Height: 150}
)

// y maps a sample to the vertical axis: a quarter of the height per unit.
func (c Chart) y(v float64) float64 {
	return c.Height/2 + v*(c.Height/4)
}

// Vertex is a point in chart coordinates.
type Vertex struct {
	X, Y float64
}

// OscillatorVertices maps window points onto c. Time wraps every TimeSpan seconds.
func OscillatorVertices(points []oscillator.Point, c Chart) []Vertex {
	out := make([]Vertex, len(points))
	for i, p := range points {
		out[i] = Vertex{
			X: (math.Mod(p.T, TimeSpan) / TimeSpan) * c.Width,
			Y: c.y(p.Y),
		}
	}
	return out
}

// SignalVertices maps sample n of signal to x = n/len(signal) of the width.
// A partially revealed prefix is therefore spread over the full width.
func SignalVertices(signal []float64, c Chart) []Vertex {
	out := make([]Vertex, len(signal))
	n := float64(len(signal))
	for i, v := range signal {
		out[i] = Vertex{
			X: (float64(i) / n) * c.Width,
			Y: c.y(v),
		}
	}
	return out
}

// SVGPath renders vertices as an SVG path: "M x y L x y ...".
// It returns an empty string for no vertices.
func SVGPath(vs []Vertex) string {
	var b strings.Builder
	for i, v := range vs {
		if i == 0 {
			b.WriteString("M ")
		} else {
			b.WriteString(" L ")
		}
		b.WriteString(formatCoord(v.X))
		b.WriteByte(' ')
		b.WriteString(formatCoord(v.Y))
	}
	return b.String()
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
