package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yarbel/yesodot/internal/elements"
)

// Shared panel and status styles.
var (
	// Glass panel effect with subtle border
	GlassPanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(1, 2)

	// Subtle muted text
	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	// Status indicators
	StatusRunning = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ff88"))

	StatusPaused = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffaa00"))

	StatusRecording = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff4444")).
			Blink(true)

	// Key hint style
	KeyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688")).
		Italic(true)
)

// categoryColors is the fixed chemical-family palette. It stays constant
// across backgrounds so the 2D grid reads the same in every theme.
var categoryColors = map[elements.Category]lipgloss.Color{
	elements.AlkaliMetal:     lipgloss.Color("#ff7070"),
	elements.AlkalineEarth:   lipgloss.Color("#ffb86c"),
	elements.TransitionMetal: lipgloss.Color("#ffd866"),
	elements.PostTransition:  lipgloss.Color("#9fd6c2"),
	elements.Metalloid:       lipgloss.Color("#7ec699"),
	elements.Nonmetal:        lipgloss.Color("#78dce8"),
	elements.Halogen:         lipgloss.Color("#a9dc76"),
	elements.NobleGas:        lipgloss.Color("#ab9df2"),
	elements.Lanthanide:      lipgloss.Color("#f48fb1"),
	elements.Actinide:        lipgloss.Color("#ce93d8"),
	elements.UnknownCategory: lipgloss.Color("#9e9e9e"),
}

// CategoryColor returns the display color of a chemical family.
func CategoryColor(c elements.Category) lipgloss.Color {
	if col, ok := categoryColors[c]; ok {
		return col
	}
	return categoryColors[elements.UnknownCategory]
}

// CategoryStyle returns a foreground style in the family's color.
func CategoryStyle(c elements.Category) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CategoryColor(c))
}

// GradientText creates a gradient effect on text using color interpolation
func GradientText(text string, startColor, endColor lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	if len(runes) == 1 {
		return lipgloss.NewStyle().Foreground(startColor).Render(text)
	}

	sr, sg, sb := parseHex(string(startColor))
	er, eg, eb := parseHex(string(endColor))

	var result strings.Builder
	n := len(runes)

	for i, c := range runes {
		t := float64(i) / float64(n-1)
		r := int(float64(sr) + t*float64(er-sr))
		g := int(float64(sg) + t*float64(eg-sg))
		b := int(float64(sb) + t*float64(eb-sb))

		color := lipgloss.Color(hexColor(r, g, b))
		style := lipgloss.NewStyle().Foreground(color)
		result.WriteString(style.Render(string(c)))
	}

	return result.String()
}

// ProgressBar renders a filled bar, used for shell occupancy meters.
func ProgressBar(percent float64, width int) string {
	filled := int(percent * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	if percent > 0.8 {
		return StatusRunning.Render(bar)
	} else if percent > 0.4 {
		return StatusPaused.Render(bar)
	}
	return Subtle.Render(bar)
}

// Decorative separator
func Separator(width int) string {
	if width < 7 {
		return Subtle.Render(strings.Repeat("─", maxInt(width, 0)))
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return Subtle.Render(left + " ◆ " + right)
}

// Helper functions
func parseHex(hex string) (r, g, b int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 255, 255, 255
	}
	r = parseHexByte(hex[1:3])
	g = parseHexByte(hex[3:5])
	b = parseHexByte(hex[5:7])
	return
}

func parseHexByte(s string) int {
	val := 0
	for _, c := range s {
		val *= 16
		if c >= '0' && c <= '9' {
			val += int(c - '0')
		} else if c >= 'a' && c <= 'f' {
			val += int(c - 'a' + 10)
		} else if c >= 'A' && c <= 'F' {
			val += int(c - 'A' + 10)
		}
	}
	return val
}

func hexColor(r, g, b int) string {
	return "#" + hexByte(r) + hexByte(g) + hexByte(b)
}

func hexByte(v int) string {
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	const hex = "0123456789abcdef"
	return string(hex[v/16]) + string(hex[v%16])
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
