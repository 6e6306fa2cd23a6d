package main

import (
	"fmt"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cwbudde/algo-zexplorer/dsp/filter/diffeq"
	"github.com/cwbudde/algo-zexplorer/internal/explorer"
	"github.com/cwbudde/algo-zexplorer/internal/plot"
)

const (
	minCols = 20
	maxCols = 120
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	selStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	oscStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	outStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	helpStyle   = lipgloss.NewStyle().Faint(true)
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

type tickMsg time.Time

type model struct {
	ctl   *explorer.Controller
	clock explorer.FrameClock
	frame time.Duration

	width  int
	height int

	quitting bool
}

func newModel(s *explorer.Session, frame time.Duration) model {
	return model{
		ctl:   explorer.NewController(s),
		frame: frame,
	}
}

func tickEvery(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Init() tea.Cmd {
	return tickEvery(m.frame)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tickMsg:
		m.ctl.Tick(m.clock.Delta(time.Time(msg)))
		return m, tickEvery(m.frame)
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	quit, err := m.ctl.Key(key)
	if err != nil {
		log.Printf("key: %v", err)
	}
	if quit {
		m.quitting = true
		return m, tea.Quit
	}
	if key == "r" {
		log.Printf("reset: generation %d", m.ctl.Generation())
	}
	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	cols := min(max(m.width-4, minCols), maxCols)
	snap := m.ctl.Snapshot()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Z-Transform Explorer"))
	b.WriteString("\n\n")

	if m.ctl.ShowFAQ {
		b.WriteString(m.renderFAQ(cols))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("f: back  q: quit"))
		return b.String()
	}

	b.WriteString(m.renderControls(snap))
	b.WriteString("\n")
	b.WriteString(m.renderOscillator(snap, cols))
	b.WriteString("\n")
	b.WriteString(m.renderCoefficients(snap))
	b.WriteString("\n")
	b.WriteString(m.renderOutput(snap, cols))
	b.WriteString("\n")
	b.WriteString(m.renderAnalysis())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("space: play/pause  r: reset  +/-: frequency  [/]: amplitude  1-4: select  up/down: nudge  f: FAQ  q: quit"))

	return b.String()
}

func (m model) renderControls(snap explorer.Snapshot) string {
	state := "paused"
	if snap.Playing {
		state = "playing"
	}
	return fmt.Sprintf("%s %s  %s %s  %s %s  %s %s\n",
		headerStyle.Render("Frequency:"), valueStyle.Render(fmt.Sprintf("%.1f Hz", snap.Frequency)),
		headerStyle.Render("Amplitude:"), valueStyle.Render(fmt.Sprintf("%.1f", snap.Amplitude)),
		headerStyle.Render("Time:"), valueStyle.Render(fmt.Sprintf("%.2fs", snap.Time)),
		headerStyle.Render("State:"), valueStyle.Render(state),
	)
}

func (m model) renderOscillator(snap explorer.Snapshot, cols int) string {
	rows := 12
	c := plot.OscillatorChart
	vs := plot.OscillatorVertices(snap.Points, c)
	return panelStyle.Render(oscStyle.Render(strings.Join(plot.Raster(vs, c, cols, rows, '•'), "\n")))
}

func (m model) renderCoefficients(snap explorer.Snapshot) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Coefficients: "))
	for i, name := range diffeq.Names {
		v, _ := snap.Coefficients.Get(name)
		label := fmt.Sprintf("%d:%s=%g", i+1, name, v)
		if i == m.ctl.Selected {
			b.WriteString(selStyle.Render("[" + label + "]"))
		} else {
			b.WriteString(valueStyle.Render(" " + label + " "))
		}
		b.WriteString(" ")
	}
	b.WriteString("\n")
	b.WriteString(valueStyle.Render(snap.Coefficients.String()))
	b.WriteString("\n")
	return b.String()
}

func (m model) renderOutput(snap explorer.Snapshot, cols int) string {
	rows := 8
	c := plot.SignalChart
	vs := plot.SignalVertices(snap.Frame.Y, c)
	chart := outStyle.Render(strings.Join(plot.Raster(vs, c, cols, rows, '•'), "\n"))

	status := fmt.Sprintf("%s  %d/%d", snap.RevealState, snap.Frame.Len(), diffeq.SignalLength)
	return panelStyle.Render(chart + "\n" + helpStyle.Render(status))
}

func (m model) renderAnalysis() string {
	a, err := m.ctl.Analysis()
	if err != nil {
		log.Printf("analysis: %v", err)
		return warnStyle.Render("analysis unavailable")
	}

	stability := valueStyle.Render("stable")
	if !a.Stable {
		stability = warnStyle.Render("unstable")
	}
	return fmt.Sprintf("%s %s\n%s %.3f (%s)  %s %.3f (%.1f dB)",
		headerStyle.Render("Transfer function:"), valueStyle.Render(a.TransferFunction),
		headerStyle.Render("Pole radius:"), a.PoleRadius, stability,
		headerStyle.Render("|H| at probe:"), a.ProbeGain, a.ProbeGainDB,
	)
}

func (m model) renderFAQ(cols int) string {
	var b strings.Builder
	for _, q := range explorer.FAQ() {
		b.WriteString(headerStyle.Render(q.Question))
		b.WriteString("\n")
		b.WriteString(valueStyle.Width(cols).Render(q.Answer))
		b.WriteString("\n\n")
	}
	b.WriteString(headerStyle.Render("Understanding the demo"))
	b.WriteString("\n")
	b.WriteString(valueStyle.Width(cols).Render(explorer.Overview))
	b.WriteString("\n")
	for _, c := range explorer.KeyConcepts() {
		b.WriteString(valueStyle.Render("  • " + c))
		b.WriteString("\n")
	}
	return panelStyle.Render(b.String())
}
