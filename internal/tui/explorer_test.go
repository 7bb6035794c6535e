package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lapdoer/lapdoer/internal/aero"
	"github.com/lapdoer/lapdoer/internal/car"
	"github.com/lapdoer/lapdoer/internal/chassis"
	"github.com/lapdoer/lapdoer/internal/tyre"
)

func explorerModel(t *testing.T) Model {
	t.Helper()
	geom, err := chassis.NewGeometry(2.5, 1.2, 1.2, 0.4, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	tm, err := tyre.NewLinear(10)
	if err != nil {
		t.Fatal(err)
	}
	c, err := car.New(tm, aero.None{}, geom, 1200)
	if err != nil {
		t.Fatal(err)
	}
	return New(c, "test", car.DefaultSolverOptions())
}

func key(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestExplorerCurvatureKeys(t *testing.T) {
	m := explorerModel(t)
	start := m.curvature

	next, _ := m.Update(key("right"))
	m = next.(Model)
	if m.curvature <= start {
		t.Fatalf("right arrow did not increase curvature: %v -> %v", start, m.curvature)
	}
	if m.err != nil {
		t.Fatalf("solve after key press: %v", m.err)
	}

	for i := 0; i < 50; i++ {
		next, _ = m.Update(key("left"))
		m = next.(Model)
	}
	if m.curvature != 0 {
		t.Fatalf("curvature should clamp at zero, got %v", m.curvature)
	}
	if !m.sol.Unbounded {
		t.Fatal("straight line with no drivetrain should be unbounded")
	}
}

func TestExplorerQuit(t *testing.T) {
	m := explorerModel(t)
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("q should produce a quit command")
	}
}

func TestExplorerViewShowsSolution(t *testing.T) {
	m := explorerModel(t)
	out := m.View()
	if !strings.Contains(out, "max speed") {
		t.Fatalf("view missing solution panel:\n%s", out)
	}
	if !strings.Contains(out, "curvature") {
		t.Fatalf("view missing parameters:\n%s", out)
	}
}
