package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yarbel/yesodot/internal/elements"
	"github.com/yarbel/yesodot/internal/viz"
)

const (
	gridCols = 18
	gridRows = 10 // rows 1-7 plus the lanthanide/actinide rows at 9-10
	cellW    = 4
)

// gridView renders the periodic table. Cells are colored by chemical
// family; the selection is inverted, the keyboard cursor underlined, and
// elements outside the current filter are dimmed.
func (m *Model) gridView() string {
	inFilter := make(map[int]bool, len(m.filtered))
	for _, el := range m.filtered {
		inFilter[el.Number] = true
	}

	var b strings.Builder
	for y := 1; y <= gridRows; y++ {
		if y > 1 {
			b.WriteString("\n")
		}
		if y == 8 {
			continue // visual gap before the detached series rows
		}
		for x := 1; x <= gridCols; x++ {
			el, ok := elements.AtGrid(x, y)
			if !ok {
				b.WriteString(strings.Repeat(" ", cellW))
				continue
			}
			st := viz.CategoryStyle(el.Category)
			if !inFilter[el.Number] {
				st = st.Faint(true)
			}
			if el == m.selected {
				st = st.Reverse(true)
			}
			if x == m.gridX && y == m.gridY {
				st = st.Bold(true).Underline(true)
			}
			b.WriteString(st.Render(fmt.Sprintf(" %-3s", el.Symbol)))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(m.gridFooter())
	return b.String()
}

func (m *Model) gridFooter() string {
	el := m.hovered
	if el == nil {
		if at, ok := elements.AtGrid(m.gridX, m.gridY); ok {
			el = at
		}
	}
	if el == nil {
		return viz.Subtle.Render("click or move the cursor to pick an element")
	}
	label := fmt.Sprintf("%s  %s (%s) #%d · %s",
		m.vis(el.HebrewName), el.Name, el.Symbol, el.Number,
		m.vis(el.Category.HebrewLabel()))
	return lipgloss.NewStyle().Foreground(viz.CategoryColor(el.Category)).Render(label)
}

// moveGrid walks the keyboard cursor to the next occupied cell in the
// given direction, scanning past gaps. It stays put when the walk leaves
// the table.
func (m *Model) moveGrid(dx, dy int) {
	x, y := m.gridX, m.gridY
	for {
		x += dx
		y += dy
		if x < 1 || x > gridCols || y < 1 || y > gridRows {
			return
		}
		if _, ok := elements.AtGrid(x, y); ok {
			m.gridX, m.gridY = x, y
			return
		}
		if dx == 0 {
			// Vertical moves slide horizontally to the nearest element
			// in the target row, so columns with gaps stay reachable.
			if nx, ok := nearestInRow(x, y); ok {
				m.gridX, m.gridY = nx, y
				return
			}
		}
	}
}

func nearestInRow(x, y int) (int, bool) {
	for d := 1; d < gridCols; d++ {
		if _, ok := elements.AtGrid(x-d, y); ok {
			return x - d, true
		}
		if _, ok := elements.AtGrid(x+d, y); ok {
			return x + d, true
		}
	}
	return 0, false
}

// handleMouse maps terminal coordinates onto grid cells in 2D mode.
// Motion hovers, a left press selects.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	if m.viewMode != "2d" {
		return
	}
	el, ok := m.gridHit(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionMotion:
		if ok {
			m.hovered = el
		} else {
			m.hovered = nil
		}
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && ok {
			m.choose(el)
			m.gridX, m.gridY = el.GridX, el.GridY
		}
	}
}

// gridHit inverts the layout arithmetic of gridView: one header line and
// the canvas padding sit above the table, two pad columns to its left.
func (m *Model) gridHit(sx, sy int) (*elements.Element, bool) {
	x := (sx-2)/cellW + 1
	y := sy - 1
	if x < 1 || x > gridCols || y < 1 || y > gridRows {
		return nil, false
	}
	return elements.AtGrid(x, y)
}
