// Command zexplorer-window runs the Z-transform explorer in a desktop window.
//
// It uses the same keys as the terminal explorer.
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/cwbudde/algo-zexplorer/internal/explorer"
)

func main() {
	frequency := flag.Float64("frequency", 1, "initial oscillator frequency in Hz")
	amplitude := flag.Float64("amplitude", 1, "initial oscillator amplitude")
	play := flag.Bool("play", false, "start playing immediately")
	flag.Parse()

	opts := []explorer.Option{
		explorer.WithFrequency(*frequency),
		explorer.WithAmplitude(*amplitude),
	}
	if *play {
		opts = append(opts, explorer.WithPlaying())
	}

	g := newGame(explorer.NewSession(opts...))

	ebiten.SetWindowTitle("Z-Transform Explorer")
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetTPS(tps)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("window: %v", err)
	}
}
