package main

import (
	"fmt"
	"image/color"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/cwbudde/algo-zexplorer/dsp/filter/diffeq"
	"github.com/cwbudde/algo-zexplorer/internal/explorer"
	"github.com/cwbudde/algo-zexplorer/internal/plot"
)

const (
	tps = 60

	margin      = 16
	textLine    = 16
	oscTop      = margin + 2*textLine
	signalTop   = oscTop + 300 + margin + 2*textLine
	screenWidth = 800 + 2*margin
	// Room below the signal chart for the analysis lines and help.
	screenHeight = signalTop + 150 + margin + 4*textLine
)

var (
	background = color.RGBA{0x11, 0x18, 0x27, 0xff}
	panel      = color.RGBA{0x1f, 0x29, 0x37, 0xff}
	axis       = color.RGBA{0x4b, 0x55, 0x63, 0xff}
	oscColor   = color.RGBA{0x60, 0xa5, 0xfa, 0xff}
	inColor    = color.RGBA{0x6b, 0x72, 0x80, 0xff}
	outColor   = color.RGBA{0xf4, 0x72, 0xb6, 0xff}
)

type game struct {
	ctl  *explorer.Controller
	keys []rune
}

func newGame(s *explorer.Session) *game {
	return &game{ctl: explorer.NewController(s)}
}

func (g *game) Update() error {
	for _, name := range g.pressedKeys() {
		quit, err := g.ctl.Key(name)
		if err != nil {
			log.Printf("key: %v", err)
		}
		if quit {
			return ebiten.Termination
		}
	}

	// Update runs at a fixed rate, so every frame advances by one tick.
	g.ctl.Tick(1.0 / float64(ebiten.TPS()))
	return nil
}

func (g *game) pressedKeys() []string {
	g.keys = ebiten.AppendInputChars(g.keys[:0])

	var names []string
	for _, r := range g.keys {
		names = append(names, string(r))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		names = append(names, "up")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		names = append(names, "down")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		names = append(names, "q")
	}
	return names
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	snap := g.ctl.Snapshot()

	if g.ctl.ShowFAQ {
		g.drawFAQ(screen)
		return
	}

	state := "paused"
	if snap.Playing {
		state = "playing"
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Frequency: %.1f Hz   Amplitude: %.1f   Time: %.2fs   %s",
		snap.Frequency, snap.Amplitude, snap.Time, state), margin, margin)

	osc := plot.OscillatorChart
	drawPanel(screen, margin, oscTop, osc)
	drawTrace(screen, margin, oscTop, plot.OscillatorVertices(snap.Points, osc), oscColor, true)

	ebitenutil.DebugPrintAt(screen, g.coefficientLine(snap), margin, signalTop-2*textLine)
	ebitenutil.DebugPrintAt(screen, snap.Coefficients.String(), margin, signalTop-textLine)

	sig := plot.SignalChart
	drawPanel(screen, margin, signalTop, sig)
	drawTrace(screen, margin, signalTop, plot.SignalVertices(snap.Frame.X, sig), inColor, false)
	drawTrace(screen, margin, signalTop, plot.SignalVertices(snap.Frame.Y, sig), outColor, false)

	y := signalTop + int(sig.Height) + margin/2
	if a, err := g.ctl.Analysis(); err == nil {
		stability := "stable"
		if !a.Stable {
			stability = "unstable"
		}
		ebitenutil.DebugPrintAt(screen, a.TransferFunction, margin, y)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("pole radius %.3f (%s)   |H| at probe %.3f   %s %d/%d",
			a.PoleRadius, stability, a.ProbeGain, snap.RevealState, snap.Frame.Len(), diffeq.SignalLength), margin, y+textLine)
	}
	ebitenutil.DebugPrintAt(screen,
		"space play/pause  r reset  +/- frequency  [/] amplitude  1-4 select  up/down nudge  f FAQ  q quit",
		margin, y+3*textLine)
}

func (g *game) coefficientLine(snap explorer.Snapshot) string {
	parts := make([]string, len(diffeq.Names))
	for i, name := range diffeq.Names {
		v, _ := snap.Coefficients.Get(name)
		if i == g.ctl.Selected {
			parts[i] = fmt.Sprintf("[%d:%s=%g]", i+1, name, v)
		} else {
			parts[i] = fmt.Sprintf(" %d:%s=%g ", i+1, name, v)
		}
	}
	return "Coefficients: " + strings.Join(parts, " ")
}

func (g *game) drawFAQ(screen *ebiten.Image) {
	var b strings.Builder
	for _, q := range explorer.FAQ() {
		b.WriteString(q.Question + "\n")
		b.WriteString(wrap(q.Answer, 120) + "\n\n")
	}
	b.WriteString("Understanding the demo\n")
	b.WriteString(wrap(explorer.Overview, 120) + "\n")
	for _, c := range explorer.KeyConcepts() {
		b.WriteString("  - " + c + "\n")
	}
	b.WriteString("\nf back  q quit")
	ebitenutil.DebugPrintAt(screen, b.String(), margin, margin)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func drawPanel(screen *ebiten.Image, left, top int, c plot.Chart) {
	x, y := float32(left), float32(top)
	vector.DrawFilledRect(screen, x, y, float32(c.Width), float32(c.Height), panel, false)
	mid := y + float32(c.Height/2)
	vector.StrokeLine(screen, x, mid, x+float32(c.Width), mid, 1, axis, false)
}

// drawTrace strokes consecutive vertices. With wrapped set, a step back to the
// left edge starts a new segment instead of drawing across the chart.
func drawTrace(screen *ebiten.Image, left, top int, vs []plot.Vertex, clr color.Color, wrapped bool) {
	ox, oy := float32(left), float32(top)
	for i := 1; i < len(vs); i++ {
		p, q := vs[i-1], vs[i]
		if wrapped && q.X < p.X {
			continue
		}
		vector.StrokeLine(screen,
			ox+float32(p.X), oy+float32(p.Y),
			ox+float32(q.X), oy+float32(q.Y),
			2, clr, true)
	}
}

func wrap(s string, width int) string {
	var b strings.Builder
	n := 0
	for _, w := range strings.Fields(s) {
		if n > 0 && n+1+len(w) > width {
			b.WriteByte('\n')
			n = 0
		} else if n > 0 {
			b.WriteByte(' ')
			n++
		}
		b.WriteString(w)
		n += len(w)
	}
	return b.String()
}
