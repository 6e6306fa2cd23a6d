package plot

import (
	"math"
	"strings"
)

// Raster draws vertices of chart c into a cols x rows character grid.
// Each vertex marks one cell with mark; consecutive vertices are joined by
// marking the cells between them so steep segments stay connected. Vertices
// outside the chart, including ±Inf from diverging filter output, are clipped
// at the edge they left through. NaN vertices break the trace.
func Raster(vs []Vertex, c Chart, cols, rows int, mark rune) []string {
	if cols <= 0 || rows <= 0 {
		return nil
	}

	grid := make([][]rune, rows)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", cols))
	}

	mid := rows / 2
	for col := range grid[mid] {
		grid[mid][col] = '·'
	}

	cell := func(v Vertex) (int, int, bool) {
		if c.Width <= 0 || c.Height <= 0 || math.IsNaN(v.X) || math.IsNaN(v.Y) {
			return 0, 0, false
		}
		return cellIndex(v.X/c.Width, cols), cellIndex(v.Y/c.Height, rows), true
	}

	set := func(col, row int) {
		if col >= 0 && col < cols && row >= 0 && row < rows {
			grid[row][col] = mark
		}
	}

	prevCol, prevRow, havePrev := 0, 0, false
	for _, v := range vs {
		col, row, ok := cell(v)
		if !ok {
			havePrev = false
			continue
		}
		// Only join neighbouring columns; a wrap to the left edge starts a new trace.
		if havePrev && (col == prevCol || col == prevCol+1) {
			lo, hi := min(prevRow, row), max(prevRow, row)
			lo = max(lo, 0)
			hi = min(hi, rows-1)
			for r := lo; r <= hi; r++ {
				set(col, r)
			}
		}
		set(col, row)
		prevCol, prevRow, havePrev = col, row, true
	}

	out := make([]string, rows)
	for r := range grid {
		out[r] = string(grid[r])
	}
	return out
}

// cellIndex maps a chart fraction to a cell in [-1, n]. Out-of-range values
// stop one cell past the grid so the sign survives the int conversion.
func cellIndex(frac float64, n int) int {
	f := frac * float64(n)
	switch {
	case f < -1:
		return -1
	case f > float64(n):
		return n
	}
	return int(f)
}
