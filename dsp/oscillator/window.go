package oscillator

// WindowCap is the maximum number of points held by a Window.
const WindowCap = 100

// Point is one evaluated instant of the oscillator.
type Point struct {
	T float64 // seconds since the last reset
	Y float64
}

// Window is a fixed-capacity FIFO of points stored in a circular buffer.
// Iteration order is insertion order, oldest first.
type Window struct {
	buffer [WindowCap]Point
	start  int
	n      int
}

// Len returns the number of stored points.
func (w *Window) Len() int {
	return w.n
}

// Cap returns the window capacity.
func (w *Window) Cap() int {
	return WindowCap
}

// Push appends p, evicting the oldest point if the window is full.
// It reports whether a point was evicted.
func (w *Window) Push(p Point) bool {
	if w.n < WindowCap {
		w.buffer[(w.start+w.n)%WindowCap] = p
		w.n++
		return false
	}
	w.buffer[w.start] = p
	w.start++
	if w.start >= WindowCap {
		w.start = 0
	}
	return true
}

// At returns the i-th point, oldest first. It panics if i is out of range.
func (w *Window) At(i int) Point {
	if i < 0 || i >= w.n {
		panic("oscillator: window index out of range")
	}
	return w.buffer[(w.start+i)%WindowCap]
}

// Last returns the newest point and false if the window is empty.
func (w *Window) Last() (Point, bool) {
	if w.n == 0 {
		return Point{}, false
	}
	return w.At(w.n - 1), true
}

// Points returns a copy of the stored points, oldest first.
func (w *Window) Points() []Point {
	return w.AppendPoints(make([]Point, 0, w.n))
}

// AppendPoints appends the stored points to dst, oldest first.
func (w *Window) AppendPoints(dst []Point) []Point {
	for i := 0; i < w.n; i++ {
		dst = append(dst, w.buffer[(w.start+i)%WindowCap])
	}
	return dst
}

// Reset empties the window.
func (w *Window) Reset() {
	w.buffer = [WindowCap]Point{}
	w.start = 0
	w.n = 0
}
