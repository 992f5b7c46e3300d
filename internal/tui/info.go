package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/yarbel/yesodot/internal/viz"
)

const infoInner = 36 // panelStyle width minus its padding

var rtlLine = lipgloss.NewStyle().Width(infoInner).Align(lipgloss.Right)

// shellLetters are the spectroscopic shell names, innermost first.
const shellLetters = "KLMNOPQ"

// infoView renders the element panel. Hebrew text is laid out
// right-to-left: labels sit at the right edge with values to their left.
func (m *Model) infoView() string {
	el := m.selected
	var rows []string

	name := lipgloss.NewStyle().Bold(true).Foreground(m.theme.Primary).
		Render(m.vis(el.HebrewName))
	rows = append(rows, rtlLine.Render(name))
	rows = append(rows, rtlLine.Render(labelStyle.Render(fmt.Sprintf("%s · %s", el.Name, el.Symbol))))
	rows = append(rows, "")

	rows = append(rows,
		m.row("מספר אטומי", fmt.Sprintf("%d", el.Number)),
		m.row("מסה אטומית", el.AtomicMass),
		m.row("משפחה", m.vis(el.Category.HebrewLabel())),
		m.row("מצב צבירה", m.vis(el.Phase.HebrewLabel())),
		"",
		m.row("פרוטונים", fmt.Sprintf("%d", m.atom.Protons())),
		m.row("נייטרונים", fmt.Sprintf("%d", m.atom.Neutrons())),
		m.row("אלקטרונים", fmt.Sprintf("%d", m.atom.Electrons())),
		"",
	)

	rows = append(rows, rtlLine.Render(labelStyle.Render(m.vis("קליפות"))))
	for i, c := range el.Shells {
		letter := "?"
		if i < len(shellLetters) {
			letter = string(shellLetters[i])
		}
		bar := viz.ProgressBar(float64(c)/float64(shellCapacity(i)), 12)
		rows = append(rows, rtlLine.Render(fmt.Sprintf("%s %2d  %s", bar, c, letter)))
	}

	if el.HebrewSummary != "" {
		rows = append(rows, "", rtlLine.Render(labelStyle.Render(m.vis("תקציר"))))
		for _, l := range strings.Split(wordwrap.String(el.HebrewSummary, infoInner-2), "\n") {
			rows = append(rows, rtlLine.Render(m.vis(l)))
		}
	}

	if m.sound != nil {
		bass, mid, high := m.sound.Levels()
		rows = append(rows, "", rtlLine.Render(labelStyle.Render(m.vis("צליל"))))
		rows = append(rows,
			rtlLine.Render(viz.ProgressBar(bass, 10)+"  "+labelStyle.Render(m.vis("בס"))),
			rtlLine.Render(viz.ProgressBar(mid, 10)+"  "+labelStyle.Render(m.vis("אמצע"))),
			rtlLine.Render(viz.ProgressBar(high, 10)+"  "+labelStyle.Render(m.vis("גבוה"))),
		)
	}

	return panelStyle.Render(strings.Join(rows, "\n"))
}

func (m *Model) row(label, value string) string {
	return rtlLine.Render(valueStyle.Render(value) + "  " + labelStyle.Render(m.vis(label)))
}

// shellCapacity is the nominal electron capacity of shell i, used only to
// scale the occupancy bars.
func shellCapacity(i int) int {
	c := 2 * (i + 1) * (i + 1)
	if c > 32 {
		c = 32
	}
	return c
}
