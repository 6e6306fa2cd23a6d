package diffeq_test

import (
	"fmt"

	"github.com/cwbudde/algo-zexplorer/dsp/filter/diffeq"
)

func ExampleEvaluate() {
	r := diffeq.Evaluate(diffeq.DefaultCoefficients())

	for n := 0; n < 5; n++ {
		fmt.Printf("n=%d x=%+.4f y=%+.4f\n", n, r.X[n], r.Y[n])
	}

	// Output:
	// n=0 x=+0.0000 y=+0.0000
	// n=1 x=+0.5878 y=+0.0000
	// n=2 x=+0.9511 y=+0.9511
	// n=3 x=+0.9511 y=+2.3776
	// n=4 x=+0.5878 y=+3.6787
}

func ExampleReveal() {
	r := diffeq.NewReveal()
	r.Start(diffeq.DefaultCoefficients())

	frames := 0
	for {
		f, ok := r.Next()
		if !ok {
			break
		}
		frames++
		if f.Final() {
			fmt.Println("final frame has", f.Len(), "samples")
		}
	}
	fmt.Println("frames:", frames, "state:", r.State())

	// Output:
	// final frame has 50 samples
	// frames: 50 state: idle
}
