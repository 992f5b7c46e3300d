package viz

import "github.com/charmbracelet/lipgloss"

// Background selects a render theme. The atom view keeps its geometry; only
// colors and backdrop change.
type Background string

const (
	BackgroundSpace    Background = "space"
	BackgroundDark     Background = "dark"
	BackgroundGradient Background = "gradient"
	BackgroundMinimal  Background = "minimal"
)

// Theme defines the color scheme for one background.
type Theme struct {
	Background Background

	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Border    lipgloss.Color

	// Per-ink canvas colors.
	Star     lipgloss.Color
	Orbit    lipgloss.Color
	Proton   lipgloss.Color
	Neutron  lipgloss.Color
	Electron lipgloss.Color

	// Backdrop fills exported images; the terminal keeps its own background.
	Backdrop lipgloss.Color

	// Stars reports whether the backdrop scatters a starfield.
	Stars bool

	// GradientTitle renders the header through a two-color gradient.
	GradientTitle bool
}

var (
	ThemeSpace = Theme{
		Background: BackgroundSpace,
		Primary:    lipgloss.Color("#7aa2ff"),
		Secondary:  lipgloss.Color("#00e5ff"),
		Accent:     lipgloss.Color("#ffd866"),
		Text:       lipgloss.Color("#e6ecff"),
		Muted:      lipgloss.Color("#5a6a99"),
		Border:     lipgloss.Color("#31406e"),
		Star:       lipgloss.Color("#55608a"),
		Orbit:      lipgloss.Color("#33446a"),
		Proton:     lipgloss.Color("#ff6b6b"),
		Neutron:    lipgloss.Color("#8a99b0"),
		Electron:   lipgloss.Color("#00e5ff"),
		Backdrop:   lipgloss.Color("#05070f"),
		Stars:      true,
	}

	ThemeDark = Theme{
		Background: BackgroundDark,
		Primary:    lipgloss.Color("#cccccc"),
		Secondary:  lipgloss.Color("#999999"),
		Accent:     lipgloss.Color("#ffaa00"),
		Text:       lipgloss.Color("#eeeeee"),
		Muted:      lipgloss.Color("#666666"),
		Border:     lipgloss.Color("#3a3a3a"),
		Star:       lipgloss.Color("#444444"),
		Orbit:      lipgloss.Color("#3a3a44"),
		Proton:     lipgloss.Color("#ff5555"),
		Neutron:    lipgloss.Color("#888899"),
		Electron:   lipgloss.Color("#55ffff"),
		Backdrop:   lipgloss.Color("#0a0a0a"),
	}

	ThemeGradient = Theme{
		Background:    BackgroundGradient,
		Primary:       lipgloss.Color("#ff00ff"),
		Secondary:     lipgloss.Color("#00ffff"),
		Accent:        lipgloss.Color("#ffff00"),
		Text:          lipgloss.Color("#ffffff"),
		Muted:         lipgloss.Color("#8866aa"),
		Border:        lipgloss.Color("#663399"),
		Star:          lipgloss.Color("#553377"),
		Orbit:         lipgloss.Color("#663366"),
		Proton:        lipgloss.Color("#ff4488"),
		Neutron:       lipgloss.Color("#aa88cc"),
		Electron:      lipgloss.Color("#00ffff"),
		Backdrop:      lipgloss.Color("#12001a"),
		GradientTitle: true,
	}

	ThemeMinimal = Theme{
		Background: BackgroundMinimal,
		Primary:    lipgloss.Color("#ffffff"),
		Secondary:  lipgloss.Color("#cccccc"),
		Accent:     lipgloss.Color("#0088ff"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#888888"),
		Border:     lipgloss.Color("#555555"),
		Star:       lipgloss.Color("#555555"),
		Orbit:      lipgloss.Color("#666666"),
		Proton:     lipgloss.Color("#bbbbbb"),
		Neutron:    lipgloss.Color("#777777"),
		Electron:   lipgloss.Color("#0088ff"),
		Backdrop:   lipgloss.Color("#101010"),
	}

	// Themes lists every background's theme, in cycle order.
	Themes = []Theme{ThemeSpace, ThemeDark, ThemeGradient, ThemeMinimal}
)

// GetTheme returns the theme for a background, defaulting to space.
func GetTheme(bg Background) Theme {
	for _, t := range Themes {
		if t.Background == bg {
			return t
		}
	}
	return ThemeSpace
}

// Next returns the background after b in cycle order.
func (b Background) Next() Background {
	for i, t := range Themes {
		if t.Background == b {
			return Themes[(i+1)%len(Themes)].Background
		}
	}
	return BackgroundSpace
}

// Valid reports whether b names a known background.
func (b Background) Valid() bool {
	for _, t := range Themes {
		if t.Background == b {
			return true
		}
	}
	return false
}

// Backgrounds returns the available background names in cycle order.
func Backgrounds() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = string(t.Background)
	}
	return names
}

// inkStyles maps each ink to its foreground style for canvas rendering.
func (t Theme) inkStyles() [6]lipgloss.Style {
	return [6]lipgloss.Style{
		InkNone:     lipgloss.NewStyle().Foreground(t.Muted),
		InkStar:     lipgloss.NewStyle().Foreground(t.Star),
		InkOrbit:    lipgloss.NewStyle().Foreground(t.Orbit),
		InkNeutron:  lipgloss.NewStyle().Foreground(t.Neutron),
		InkProton:   lipgloss.NewStyle().Foreground(t.Proton),
		InkElectron: lipgloss.NewStyle().Foreground(t.Electron),
	}
}
