package explorer

import (
	"fmt"

	"github.com/cwbudde/algo-zexplorer/dsp/filter/diffeq"
)

// Controller maps host key presses onto a Session. Both the terminal and the
// window host feed it the same key names.
type Controller struct {
	*Session

	// Selected indexes diffeq.Names; up/down nudge that coefficient.
	Selected int
	ShowFAQ  bool
}

// NewController wraps s with the first coefficient selected.
func NewController(s *Session) *Controller {
	return &Controller{Session: s}
}

// SelectedName returns the name of the selected coefficient.
func (c *Controller) SelectedName() string {
	return diffeq.Names[c.Selected]
}

// Key applies one key press. Key names follow bubbletea's KeyMsg.String():
// " " toggles playback, "r" resets, "+"/"-" step the frequency, "]"/"["
// step the amplitude, "1".."4" select a coefficient, "up"/"down" nudge it,
// "f" toggles the FAQ and "q" or "ctrl+c" quits. Unknown keys are ignored.
func (c *Controller) Key(key string) (quit bool, err error) {
	switch key {
	case "q", "ctrl+c":
		return true, nil
	case " ", "space":
		c.Toggle()
	case "r":
		c.Reset()
	case "+", "=":
		c.SetFrequency(c.Frequency() + FrequencyStep)
	case "-", "_":
		c.SetFrequency(c.Frequency() - FrequencyStep)
	case "]":
		c.SetAmplitude(c.Amplitude() + AmplitudeStep)
	case "[":
		c.SetAmplitude(c.Amplitude() - AmplitudeStep)
	case "1", "2", "3", "4":
		c.Selected = int(key[0] - '1')
	case "up", "k":
		_, err = c.NudgeCoefficient(c.SelectedName(), 1)
	case "down", "j":
		_, err = c.NudgeCoefficient(c.SelectedName(), -1)
	case "f":
		c.ShowFAQ = !c.ShowFAQ
	}
	if err != nil {
		return false, fmt.Errorf("key %q: %w", key, err)
	}
	return false, nil
}
