package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func gridModel(t *testing.T) *Model {
	m := testModel(t)
	press(m, "v")
	if m.viewMode != "2d" {
		t.Fatal("not in 2d mode")
	}
	return m
}

func TestMoveGridSkipsGap(t *testing.T) {
	m := gridModel(t)
	m.gridX, m.gridY = 1, 1 // hydrogen

	press(m, "right")
	if m.gridX != 18 || m.gridY != 1 {
		t.Errorf("cursor at (%d,%d), want helium at (18,1)", m.gridX, m.gridY)
	}

	press(m, "left")
	if m.gridX != 1 || m.gridY != 1 {
		t.Errorf("cursor at (%d,%d), want hydrogen at (1,1)", m.gridX, m.gridY)
	}
}

func TestMoveGridStopsAtEdge(t *testing.T) {
	m := gridModel(t)
	m.gridX, m.gridY = 1, 1
	press(m, "left")
	if m.gridX != 1 || m.gridY != 1 {
		t.Errorf("cursor left the table: (%d,%d)", m.gridX, m.gridY)
	}
	press(m, "up")
	if m.gridY != 1 {
		t.Errorf("cursor above row 1: (%d,%d)", m.gridX, m.gridY)
	}
}

func TestMoveGridVerticalSlides(t *testing.T) {
	m := gridModel(t)
	m.gridX, m.gridY = 13, 2 // boron

	press(m, "up")
	if m.gridY != 1 {
		t.Fatalf("cursor row %d, want 1", m.gridY)
	}
	if m.gridX != 18 {
		t.Errorf("cursor slid to column %d, want helium at 18", m.gridX)
	}
}

func TestMoveGridCrossesSeriesGap(t *testing.T) {
	m := gridModel(t)
	m.gridX, m.gridY = 4, 7 // thorium's column, actinide main row

	press(m, "down")
	if m.gridY != 9 {
		t.Errorf("cursor row %d, want the lanthanide row 9", m.gridY)
	}
}

func TestGridSelectAtCursor(t *testing.T) {
	m := gridModel(t)
	m.gridX, m.gridY = 18, 1
	press(m, "enter")
	if m.selected.Number != 2 {
		t.Errorf("selected #%d, want helium", m.selected.Number)
	}
}

func TestGridHit(t *testing.T) {
	m := gridModel(t)

	el, ok := m.gridHit(2, 2)
	if !ok || el.Number != 1 {
		t.Errorf("hit at (2,2) = %v, want hydrogen", el)
	}

	el, ok = m.gridHit(2+17*cellW, 2)
	if !ok || el.Number != 2 {
		t.Errorf("hit at helium cell = %v", el)
	}

	if _, ok := m.gridHit(0, 0); ok {
		t.Error("hit outside the table")
	}
	if _, ok := m.gridHit(2+5*cellW, 2); ok {
		t.Error("hit in the empty middle of row 1")
	}
}

func TestMouseClickSelects(t *testing.T) {
	m := gridModel(t)
	m.Update(tea.MouseMsg{X: 2, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.selected.Number != 1 {
		t.Errorf("selected #%d, want hydrogen", m.selected.Number)
	}
}

func TestMouseHover(t *testing.T) {
	m := gridModel(t)
	m.Update(tea.MouseMsg{X: 2 + 17*cellW, Y: 2, Action: tea.MouseActionMotion})
	if m.hovered == nil || m.hovered.Number != 2 {
		t.Errorf("hovered = %v, want helium", m.hovered)
	}

	m.Update(tea.MouseMsg{X: 2 + 5*cellW, Y: 2, Action: tea.MouseActionMotion})
	if m.hovered != nil {
		t.Errorf("hovered = %v over an empty cell", m.hovered)
	}
}

func TestMouseIgnoredIn3D(t *testing.T) {
	m := testModel(t)
	before := m.selected
	m.Update(tea.MouseMsg{X: 2, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.selected != before {
		t.Error("mouse click selected in 3d mode")
	}
}

func TestGridViewShowsDimmedFilter(t *testing.T) {
	m := gridModel(t)
	press(m, "/")
	typeText(m, "fe")
	press(m, "esc")

	v := m.gridView()
	if !strings.Contains(v, "Fe") {
		t.Error("grid lost its cells under a filter")
	}
	if len(m.filtered) == 0 {
		t.Error("filter fe matched nothing")
	}
}

func TestGridFooterNamesCursorElement(t *testing.T) {
	m := gridModel(t)
	m.gridX, m.gridY = 1, 1
	f := m.gridFooter()
	if !strings.Contains(f, "Hydrogen") {
		t.Errorf("footer %q missing element name", f)
	}
}
