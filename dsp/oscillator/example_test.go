package oscillator_test

import (
	"fmt"

	"github.com/cwbudde/algo-zexplorer/dsp/oscillator"
)

func ExampleSampler_Advance() {
	s := oscillator.NewSampler()

	// Four frames of 1/8 s at 1 Hz cover half a period.
	for range 4 {
		p := s.Advance(0.125, 1, 2)
		fmt.Printf("t=%.3f y=%+.3f\n", p.T, p.Y)
	}
	fmt.Println("points:", s.Window().Len())

	// Output:
	// t=0.125 y=+1.414
	// t=0.250 y=+2.000
	// t=0.375 y=+1.414
	// t=0.500 y=+0.000
	// points: 4
}
