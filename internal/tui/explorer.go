// Package tui provides an interactive corner explorer: adjust the
// curvature and longitudinal demand from the keyboard and watch the
// cornering limit move.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/lapdoer/lapdoer/internal/car"
	"github.com/lapdoer/lapdoer/internal/vehicle"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	red    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

const (
	curvatureStep = 0.002
	demandStep    = 500.0
	historyLen    = 120
)

type Model struct {
	car       *car.Car
	name      string
	opts      car.SolverOptions
	curvature float64
	sol       vehicle.CorneringSolution
	err       error
	history   []float64
	width     int
}

func New(c *car.Car, name string, opts car.SolverOptions) Model {
	m := Model{
		car:       c,
		name:      name,
		opts:      opts,
		curvature: 0.02,
		width:     80,
	}
	m.solve()
	return m
}

// Run starts the explorer and blocks until the user quits.
func Run(c *car.Car, name string, opts car.SolverOptions) error {
	p := tea.NewProgram(New(c, name, opts))
	_, err := p.Run()
	return err
}

func (m *Model) solve() {
	m.sol, m.err = m.car.MaxSpeedOverCurvature(m.curvature, m.opts)
	speed := 0.0
	if m.err == nil {
		speed = m.sol.Speed
	}
	m.history = append(m.history, speed)
	if len(m.history) > historyLen {
		m.history = m.history[1:]
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "right", "l":
			m.curvature += curvatureStep
			m.solve()
		case "left", "h":
			m.curvature -= curvatureStep
			if m.curvature < 0 {
				m.curvature = 0
			}
			m.solve()
		case "up", "k":
			m.opts.LongitudinalForce += demandStep
			m.solve()
		case "down", "j":
			m.opts.LongitudinalForce -= demandStep
			if m.opts.LongitudinalForce < 0 {
				m.opts.LongitudinalForce = 0
			}
			m.solve()
		case "r":
			m.curvature = 0.02
			m.opts.LongitudinalForce = 0
			m.solve()
		}
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(cyan.Render(fmt.Sprintf("corner explorer — %s", m.name)))
	b.WriteString("\n\n")

	radius := "∞"
	if m.curvature > 0 {
		radius = fmt.Sprintf("%.1f m", 1/m.curvature)
	}
	b.WriteString(fmt.Sprintf("  curvature     %s   (radius %s)\n",
		cyan.Render(fmt.Sprintf("%.4f 1/m", m.curvature)), radius))
	b.WriteString(fmt.Sprintf("  long. demand  %s\n\n",
		cyan.Render(fmt.Sprintf("%.0f N", m.opts.LongitudinalForce))))

	switch {
	case m.err != nil:
		b.WriteString(red.Render(fmt.Sprintf("  %v", m.err)))
		b.WriteString("\n")
	case m.sol.Unbounded:
		b.WriteString(yellow.Render(fmt.Sprintf("  unbounded — no lateral demand below the %.0f m/s cap", m.opts.SpeedCap)))
		b.WriteString("\n")
	default:
		b.WriteString(fmt.Sprintf("  max speed     %s  (%.1f km/h)\n",
			green.Render(fmt.Sprintf("%.2f m/s", m.sol.Speed)), m.sol.Speed*3.6))
		b.WriteString(fmt.Sprintf("  lateral accel %.2f m/s²  (%.2f g)\n", m.sol.LateralAccel, m.sol.LateralAccel/9.81))
		b.WriteString(fmt.Sprintf("  axle loads    F %.0f N / R %.0f N\n", m.sol.FrontLoad, m.sol.RearLoad))
		b.WriteString(dim.Render(fmt.Sprintf("  residual %.2e N in %d iterations", m.sol.Residual, m.sol.Iterations)))
		b.WriteString("\n")
	}

	if len(m.history) > 1 {
		b.WriteString("\n")
		b.WriteString(asciigraph.Plot(m.history,
			asciigraph.Height(8),
			asciigraph.Width(min(m.width-10, 70)),
			asciigraph.Caption("max speed (m/s)"),
		))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("  ←/→ curvature  ↑/↓ long. demand  r reset  q quit"))
	b.WriteString("\n")

	return b.String()
}
