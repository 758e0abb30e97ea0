package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/asciibrot/internal/animation"
	"github.com/san-kum/asciibrot/internal/fractal"
)

const (
	panFraction    = 0.1
	zoomFactor     = 0.8
	iterationStep  = 10
	statusLines    = 1
	helpLines      = 3
	minFrameDelay  = time.Second / 60
	defaultColumns = 80
	defaultRows    = 24
)

var (
	statusStyle = lipgloss.NewStyle().Reverse(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	keyStyle    = lipgloss.NewStyle().Bold(true)
)

// TickMsg drives the animation. Ticks from an older generation belong to
// a stopped animation and are dropped.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// Model is the interactive explorer: the fractal fills the terminal and the
// last line shows the current view.
type Model struct {
	cfg       fractal.Config
	initial   fractal.Config
	anim      animation.State
	animating bool
	tickGen   int
	showHelp  bool
	cols      int
	rows      int
}

// NewModel starts the explorer on cfg. anim is used when animation is
// toggled on.
func NewModel(cfg fractal.Config, anim animation.State) Model {
	m := Model{
		cfg:     cfg.Clone(),
		initial: cfg.Clone(),
		anim:    anim,
		cols:    cfg.Width,
		rows:    cfg.Height,
	}
	if m.cols <= 0 {
		m.cols = defaultColumns
	}
	if m.rows <= 0 {
		m.rows = defaultRows
	}
	if cfg.Animate {
		m.animating = true
		m.cfg.Kind = fractal.Julia
	}
	m.resize()
	return m
}

// Config returns the view currently shown.
func (m Model) Config() fractal.Config { return m.cfg }

// Animating reports whether the Julia parameter is orbiting.
func (m Model) Animating() bool { return m.animating }

func (m Model) Init() tea.Cmd {
	if m.animating {
		return tick(m.tickGen, 0)
	}
	return nil
}

func tick(gen int, d time.Duration) tea.Cmd {
	if d < minFrameDelay {
		d = minFrameDelay
	}
	return tea.Tick(d, func(t time.Time) tea.Msg { return TickMsg{Gen: gen, Time: t} })
}

// Update handles keys, resizes and animation ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.cols, m.rows = msg.Width, msg.Height
		m.resize()
	case TickMsg:
		if !m.animating || msg.Gen != m.tickGen {
			return m, nil
		}
		m.anim.Apply(&m.cfg)
		m.anim.Advance()
		return m, tick(m.tickGen, m.cfg.FrameDelay)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	step := panFraction * m.cfg.Zoom

	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "left", "h":
		m.cfg.Center.Re -= step
	case "right", "l":
		m.cfg.Center.Re += step
	case "up", "k":
		m.cfg.Center.Im += step
	case "down", "j":
		m.cfg.Center.Im -= step
	case "+", "=":
		m.cfg.Zoom *= zoomFactor
	case "-", "_":
		m.cfg.Zoom /= zoomFactor
	case "]":
		m.cfg.Iterations += iterationStep
	case "[":
		m.cfg.Iterations -= iterationStep
		if m.cfg.Iterations < 1 {
			m.cfg.Iterations = 1
		}
	case "m":
		if m.cfg.Kind == fractal.Julia {
			m.cfg.Kind = fractal.Mandelbrot
		} else {
			m.cfg.Kind = fractal.Julia
		}
	case "b":
		m.cfg.Bounce = !m.cfg.Bounce
	case "a":
		m.animating = !m.animating
		m.tickGen++
		if m.animating {
			m.cfg.Kind = fractal.Julia
			return m, tick(m.tickGen, 0)
		}
	case "r":
		w, h := m.cfg.Width, m.cfg.Height
		m.cfg = m.initial.Clone()
		m.cfg.Width, m.cfg.Height = w, h
		m.animating = false
		m.tickGen++
	case "?":
		m.showHelp = !m.showHelp
		m.resize()
	}
	return m, nil
}

// resize fits the fractal into the terminal minus the status and help lines.
func (m *Model) resize() {
	reserved := statusLines
	if m.showHelp {
		reserved += helpLines
	}
	m.cfg.Width = max(m.cols, 1)
	m.cfg.Height = max(m.rows-reserved, 1)
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(fractal.Render(&m.cfg))
	b.WriteByte('\n')

	if m.showHelp {
		b.WriteString(m.help())
		b.WriteByte('\n')
	}
	b.WriteString(statusStyle.Width(m.cols).MaxHeight(statusLines).Render(m.status()))
	return b.String()
}

func (m Model) status() string {
	mode := m.cfg.Kind.String()
	if m.animating {
		mode += " (animating)"
	}
	s := fmt.Sprintf(" %s  center %.6g:%.6g  zoom %.4g  iter %d",
		mode, m.cfg.Center.Re, m.cfg.Center.Im, m.cfg.Zoom, m.cfg.Iterations)
	if m.cfg.Kind == fractal.Julia {
		s += fmt.Sprintf("  c %.4f:%.4f", m.cfg.Julia.Re, m.cfg.Julia.Im)
	}
	return s + "  ? help"
}

func (m Model) help() string {
	keys := []struct{ key, desc string }{
		{"arrows/hjkl", "pan"}, {"+/-", "zoom"}, {"[/]", "iterations"},
		{"m", "mandelbrot/julia"}, {"a", "animate"}, {"b", "bounce"},
		{"r", "reset"}, {"q", "quit"},
	}
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = keyStyle.Render(k.key) + " " + k.desc
	}
	return helpStyle.Width(m.cols).MaxHeight(helpLines).Render(strings.Join(parts, "   "))
}

// Run starts the explorer in the alternate screen and blocks until it quits.
func Run(cfg fractal.Config, anim animation.State) error {
	_, err := tea.NewProgram(NewModel(cfg, anim), tea.WithAltScreen()).Run()
	return err
}
