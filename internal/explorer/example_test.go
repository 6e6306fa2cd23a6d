package explorer_test

import (
	"fmt"

	"github.com/cwbudde/algo-zexplorer/internal/explorer"
)

func ExampleSession() {
	s := explorer.NewSession()
	s.Play()

	for range 3 {
		s.Tick(0.25)
	}

	snap := s.Snapshot()
	for _, p := range snap.Points {
		fmt.Printf("t=%.2f y=%+.3f\n", p.T, p.Y)
	}
	fmt.Println("revealed:", snap.Frame.Len())
	// Output:
	// t=0.25 y=+1.000
	// t=0.50 y=+0.000
	// t=0.75 y=-1.000
	// revealed: 3
}

func ExampleSession_Ask() {
	s := explorer.NewSession()

	if _, err := s.Ask("   "); err != nil {
		fmt.Println(err)
	}
	q, _ := s.Ask("What is a pole?")
	fmt.Println(q.Answer)
	// Output:
	// explorer: empty question
	// Thank you for your question! Our team will respond shortly.
}
