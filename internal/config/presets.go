package config

// Preset is a named layout: view mode, panel visibility, background, and
// animation speed bundled under one name.
type Preset struct {
	Name        string
	Description string
	Background  string
	ViewMode    string
	ShowInfo    bool
	ShowList    bool
	Speed       float64
}

var presets = []Preset{
	{
		Name:        "default",
		Description: "3D atom with info panel and element strip",
		Background:  "space",
		ViewMode:    "3d",
		ShowInfo:    true,
		ShowList:    true,
		Speed:       1.0,
	},
	{
		Name:        "focus",
		Description: "full-screen atom, no panels",
		Background:  "dark",
		ViewMode:    "3d",
		ShowInfo:    false,
		ShowList:    false,
		Speed:       1.0,
	},
	{
		Name:        "table",
		Description: "2D periodic grid with the element strip",
		Background:  "minimal",
		ViewMode:    "2d",
		ShowInfo:    true,
		ShowList:    true,
		Speed:       1.0,
	},
	{
		Name:        "presentation",
		Description: "slow orbit with info panel, for screen sharing",
		Background:  "gradient",
		ViewMode:    "3d",
		ShowInfo:    true,
		ShowList:    false,
		Speed:       0.4,
	},
}

// Presets returns the built-in layouts in display order.
func Presets() []Preset {
	return presets
}

// GetPreset looks a preset up by name.
func GetPreset(name string) (Preset, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// Apply copies the preset's layout into the config.
func (c *Config) Apply(p Preset) {
	c.Background = p.Background
	c.ViewMode = p.ViewMode
	c.ShowInfo = p.ShowInfo
	c.ShowList = p.ShowList
	c.Speed = p.Speed
}
