// Command zexplorer runs the Z-transform explorer in the terminal.
//
// The top chart follows a sinusoid sampled in real time; the bottom chart
// reveals the response of a second-order difference equation to a fixed
// probe signal, one sample per frame.
//
// Keys:
//
//	space  play/pause          r      reset
//	+ / -  frequency           [ / ]  amplitude
//	1-4    select a1 a2 b0 b1  up/dn  nudge selected coefficient
//	f      FAQ                 q      quit
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cwbudde/algo-zexplorer/internal/explorer"
)

var (
	frequency = flag.Float64("frequency", 1, "initial oscillator frequency in Hz")
	amplitude = flag.Float64("amplitude", 1, "initial oscillator amplitude")
	fps       = flag.Int("fps", 60, "frames per second")
	logFile   = flag.String("log-file", "zexplorer.log", "log file path")
	play      = flag.Bool("play", false, "start playing immediately")
)

func main() {
	flag.Parse()

	// The TUI owns the terminal, so logs go to a file.
	f, err := os.OpenFile(*logFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: opening log file: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = f.Close() }()
	log.SetOutput(f)

	if *fps <= 0 {
		fmt.Fprintf(os.Stderr, "error: fps must be positive: %d\n", *fps)
		os.Exit(1)
	}

	opts := []explorer.Option{
		explorer.WithFrequency(*frequency),
		explorer.WithAmplitude(*amplitude),
	}
	if *play {
		opts = append(opts, explorer.WithPlaying())
	}

	m := newModel(explorer.NewSession(opts...), time.Second/time.Duration(*fps))
	log.Printf("starting explorer: frequency=%.1f amplitude=%.1f fps=%d", m.ctl.Frequency(), m.ctl.Amplitude(), *fps)

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Printf("tui: %v", err)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	log.Printf("explorer stopped")
}
