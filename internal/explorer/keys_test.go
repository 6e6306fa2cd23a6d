package explorer

import "testing"

func TestControllerKeys(t *testing.T) {
	c := NewController(NewSession())

	steps := []struct {
		key   string
		check func() bool
	}{
		{" ", func() bool { return c.Playing() }},
		{"+", func() bool { return c.Frequency() == 1.1 }},
		{"-", func() bool { return c.Frequency() == 1 }},
		{"]", func() bool { return c.Amplitude() == 1.1 }},
		{"[", func() bool { return c.Amplitude() == 1 }},
		{"3", func() bool { return c.SelectedName() == "b0" }},
		{"up", func() bool { return c.Coefficients().B0 == 1.1 }},
		{"down", func() bool { return c.Coefficients().B0 == 1 }},
		{"f", func() bool { return c.ShowFAQ }},
		{"x", func() bool { return c.Playing() }},
		{"r", func() bool { return !c.Playing() }},
	}
	for _, st := range steps {
		quit, err := c.Key(st.key)
		if err != nil || quit {
			t.Fatalf("Key(%q) = (%v, %v)", st.key, quit, err)
		}
		if !st.check() {
			t.Fatalf("Key(%q) had no effect", st.key)
		}
	}

	for _, k := range []string{"q", "ctrl+c"} {
		if quit, _ := c.Key(k); !quit {
			t.Fatalf("Key(%q) did not quit", k)
		}
	}
}

func TestControllerNudgeRestartsReveal(t *testing.T) {
	c := NewController(NewSession())
	gen := c.Generation()

	if _, err := c.Key("up"); err != nil {
		t.Fatal(err)
	}
	if c.Generation() != gen+1 {
		t.Fatalf("generation = %d, want %d", c.Generation(), gen+1)
	}
	if got := c.Coefficients().A1; got != -1.4 {
		t.Fatalf("a1 = %v, want -1.4", got)
	}
}
