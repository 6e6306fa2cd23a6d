package time_test

import (
	"fmt"
	"math"

	timestats "github.com/cwbudde/algo-zexplorer/stats/time"
)

func ExampleCalculate() {
	s := timestats.Calculate([]float64{1, -1, 1, -1})
	fmt.Printf("rms=%.1f zc=%d\n", s.RMS, s.ZeroCrossings)

	// Output:
	// rms=1.0 zc=3
}

func ExampleStats_Diverged() {
	s := timestats.Calculate([]float64{1, 10, 100, math.Inf(1)})
	fmt.Printf("finite=%d/%d diverged=%v\n", s.Finite, s.Length, s.Diverged())

	// Output:
	// finite=3/4 diverged=true
}
