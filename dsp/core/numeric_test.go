package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min      float64
		max      float64
		expected float64
	}{
		{name: "inside", value: 0.5, min: 0, max: 1, expected: 0.5},
		{name: "below", value: -1, min: 0, max: 1, expected: 0},
		{name: "above", value: 2, min: 0, max: 1, expected: 1},
		{name: "swapped", value: 2, min: 1, max: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.value, tt.min, tt.max)
			if got != tt.expected {
				t.Fatalf("Clamp() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestSnap(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		origin float64
		step   float64
		want   float64
	}{
		{name: "exact", value: 0.3, origin: 0.1, step: 0.1, want: 0.3},
		{name: "round down", value: 1.04, origin: 0.1, step: 0.1, want: 1.0},
		{name: "round up", value: 1.06, origin: 0.1, step: 0.1, want: 1.1},
		{name: "accumulated", value: 0.1 * 3, origin: 0, step: 0.1, want: 0.3},
		{name: "integer step", value: 7.4, origin: 0, step: 2, want: 8},
		{name: "zero step", value: 1.2345, origin: 0, step: 0, want: 1.2345},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Snap(tt.value, tt.origin, tt.step)
			if got != tt.want {
				t.Fatalf("Snap(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestClampSnap(t *testing.T) {
	if got := ClampSnap(9, 0.1, 5, 0.1); got != 5 {
		t.Fatalf("ClampSnap(9) = %v, want 5", got)
	}
	if got := ClampSnap(-3, 0.1, 2, 0.1); got != 0.1 {
		t.Fatalf("ClampSnap(-3) = %v, want 0.1", got)
	}
	if got := ClampSnap(1.23, 0.1, 2, 0.1); got != 1.2 {
		t.Fatalf("ClampSnap(1.23) = %v, want 1.2", got)
	}
	if got := ClampSnap(math.NaN(), 0.1, 2, 0.1); got != 0.1 {
		t.Fatalf("ClampSnap(NaN) = %v, want 0.1", got)
	}
	if got := ClampSnap(math.Inf(1), 0.1, 2, 0.1); got != 2 {
		t.Fatalf("ClampSnap(+Inf) = %v, want 2", got)
	}
	if got := ClampSnap(math.Inf(-1), 0.1, 2, 0.1); got != 0.1 {
		t.Fatalf("ClampSnap(-Inf) = %v, want 0.1", got)
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values to be nearly equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-3) {
		t.Fatal("expected values to differ")
	}
}

func TestLinearToDB(t *testing.T) {
	if got := LinearToDB(10); !NearlyEqual(got, 20, 1e-12) {
		t.Fatalf("LinearToDB(10) = %v, want 20", got)
	}
	if !math.IsInf(LinearToDB(0), -1) {
		t.Fatal("expected -Inf for zero")
	}
	if !math.IsNaN(LinearToDB(-1)) {
		t.Fatal("expected NaN for negative amplitude")
	}
}
