package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yarbel/yesodot/internal/hebrew"
	"github.com/yarbel/yesodot/internal/viz"
)

const stripLines = 3

// stripView renders the filtered elements as a single scrolling row. The
// window slides to keep the cursor visible; the selected element stays
// marked even when the cursor is elsewhere.
func (m *Model) stripView() string {
	if len(m.filtered) == 0 {
		return searchStyle.Render(viz.Subtle.Render("no elements match the filter")) + "\n" +
			searchStyle.Render(viz.Separator(m.width - 4))
	}

	avail := m.width - 4
	if avail < 12 {
		avail = 12
	}

	start := m.stripStart(avail)
	var cells []string
	used := 0
	for i := start; i < len(m.filtered); i++ {
		cell := m.stripCell(i)
		w := lipgloss.Width(cell)
		if used+w > avail && len(cells) > 0 {
			break
		}
		cells = append(cells, cell)
		used += w
	}

	row := strings.Join(cells, "")
	count := viz.Subtle.Render(fmt.Sprintf("%d/%d", m.cursor+1, len(m.filtered)))
	return searchStyle.Render(viz.Separator(avail)) + "\n" +
		searchStyle.Render(row) + "\n" +
		searchStyle.Render(count)
}

// stripStart picks the first visible entry so the cursor never scrolls
// off the right edge.
func (m *Model) stripStart(avail int) int {
	start := 0
	used := 0
	for i := m.cursor; i >= 0; i-- {
		w := lipgloss.Width(m.stripCell(i))
		if used+w > avail {
			break
		}
		used += w
		start = i
	}
	return start
}

func (m *Model) stripCell(i int) string {
	el := m.filtered[i]
	name := hebrew.Truncate(el.HebrewName, 10)
	text := fmt.Sprintf(" %s %s ", el.Symbol, m.vis(name))

	st := lipgloss.NewStyle().Foreground(viz.CategoryColor(el.Category))
	if el == m.selected {
		st = st.Bold(true).Reverse(true)
	} else if i == m.cursor {
		st = st.Bold(true).Underline(true)
	}
	return st.Render(text)
}
