package oscillator

import (
	"math"
	"testing"
)

func wantY(frequency, amplitude, t float64) float64 {
	return amplitude * math.Sin(2*math.Pi*frequency*t)
}

func TestSamplerAdvance(t *testing.T) {
	s := NewSampler()

	tests := []struct {
		dt, freq, amp float64
	}{
		{dt: 1.0 / 60, freq: 1, amp: 1},
		{dt: 0.02, freq: 0.1, amp: 2},
		{dt: 0.5, freq: 5, amp: 0.1},
		{dt: 1e-3, freq: 2.3, amp: 0.7},
	}

	prevT := 0.0
	for i, tt := range tests {
		p := s.Advance(tt.dt, tt.freq, tt.amp)
		wantT := prevT + tt.dt
		if p.T != wantT {
			t.Fatalf("step %d: T = %v, want %v", i, p.T, wantT)
		}
		if y := wantY(tt.freq, tt.amp, wantT); p.Y != y {
			t.Fatalf("step %d: Y = %v, want %v", i, p.Y, y)
		}
		if s.Time() != wantT {
			t.Fatalf("step %d: Time() = %v, want %v", i, s.Time(), wantT)
		}
		if got := s.Window().Len(); got != i+1 {
			t.Fatalf("step %d: window len = %d, want %d", i, got, i+1)
		}
		prevT = wantT
	}
}

func TestSamplerWindowCap(t *testing.T) {
	s := NewSampler()
	const dt = 0.01

	for i := 0; i < WindowCap+25; i++ {
		s.Advance(dt, 1, 1)
		want := min(i+1, WindowCap)
		if got := s.Window().Len(); got != want {
			t.Fatalf("after %d advances: len = %d, want %d", i+1, got, want)
		}
	}

	pts := s.Window().Points()
	if len(pts) != WindowCap {
		t.Fatalf("len(Points()) = %d, want %d", len(pts), WindowCap)
	}
	for i := 1; i < len(pts); i++ {
		if !(pts[i].T > pts[i-1].T) {
			t.Fatalf("points not in increasing time order at %d: %v <= %v", i, pts[i].T, pts[i-1].T)
		}
	}

	// The 25 oldest points were evicted, so the oldest surviving point is the 26th sample.
	last, ok := s.Window().Last()
	if !ok {
		t.Fatal("Last() on full window returned false")
	}
	if last.T != s.Time() {
		t.Fatalf("Last().T = %v, want %v", last.T, s.Time())
	}
	if d := math.Abs(pts[0].T - 26*dt); d > 1e-12 {
		t.Fatalf("oldest T = %v, want %v", pts[0].T, 26*dt)
	}
}

func TestSamplerReset(t *testing.T) {
	s := NewSampler()
	for range 150 {
		s.Advance(0.016, 3, 1.5)
	}

	s.Reset()

	if s.Time() != 0 {
		t.Fatalf("Time() = %v, want 0", s.Time())
	}
	if s.Window().Len() != 0 {
		t.Fatalf("window len = %d, want 0", s.Window().Len())
	}
	if _, ok := s.Window().Last(); ok {
		t.Fatal("Last() on empty window returned true")
	}

	p := s.Advance(0.25, 1, 1)
	if p.T != 0.25 {
		t.Fatalf("first point after reset T = %v, want 0.25", p.T)
	}
}

func TestSamplerStateIsDetached(t *testing.T) {
	s := NewSampler()
	s.Advance(0.1, 1, 1)

	st := s.State()
	st.Points[0].Y = 42

	if s.Window().At(0).Y == 42 {
		t.Fatal("State() shares memory with the sampler window")
	}
}

func TestAdvanceValueForm(t *testing.T) {
	st := Reset()
	if st.T != 0 || len(st.Points) != 0 {
		t.Fatalf("Reset() = %+v, want zero state", st)
	}

	for i := 0; i < WindowCap+3; i++ {
		prev := st
		st = Advance(st, 0.05, 2, 0.5)

		if want := min(len(prev.Points)+1, WindowCap); len(st.Points) != want {
			t.Fatalf("step %d: len = %d, want %d", i, len(st.Points), want)
		}
		last := st.Points[len(st.Points)-1]
		if last.T != prev.T+0.05 || last.Y != wantY(2, 0.5, prev.T+0.05) {
			t.Fatalf("step %d: last point = %+v", i, last)
		}
		if len(prev.Points) == WindowCap && st.Points[0] != prev.Points[1] {
			t.Fatalf("step %d: oldest point not evicted", i)
		}
	}
}

func TestAdvanceValueFormDoesNotAlias(t *testing.T) {
	base := Advance(Reset(), 0.1, 1, 1)
	a := Advance(base, 0.1, 1, 1)
	b := Advance(base, 0.2, 1, 1)

	if len(base.Points) != 1 {
		t.Fatalf("base mutated: len = %d", len(base.Points))
	}
	if a.Points[1].T == b.Points[1].T {
		t.Fatal("successor states share their newest point")
	}
}

func TestSamplerMatchesValueForm(t *testing.T) {
	s := NewSampler()
	st := Reset()

	for i := 0; i < 2*WindowCap; i++ {
		dt := 0.001 * float64(i%7+1)
		s.Advance(dt, 1.7, 0.9)
		st = Advance(st, dt, 1.7, 0.9)
	}

	got := s.State()
	if got.T != st.T {
		t.Fatalf("T mismatch: %v != %v", got.T, st.T)
	}
	if len(got.Points) != len(st.Points) {
		t.Fatalf("len mismatch: %d != %d", len(got.Points), len(st.Points))
	}
	for i := range got.Points {
		if got.Points[i] != st.Points[i] {
			t.Fatalf("point %d mismatch: %+v != %+v", i, got.Points[i], st.Points[i])
		}
	}
}
