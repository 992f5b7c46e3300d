package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap collects every binding the viewer responds to. Camera spin and
// zoom keys are handled raw in Update so shifted variants reverse
// direction without doubling the map.
type KeyMap struct {
	Quit       key.Binding
	Pause      key.Binding
	Search     key.Binding
	View       key.Binding
	Info       key.Binding
	List       key.Binding
	Full       key.Binding
	Reset      key.Binding
	Background key.Binding
	Sound      key.Binding
	Record     key.Binding
	Snapshot   key.Binding
	Copy       key.Binding
	Help       key.Binding
	Left       key.Binding
	Right      key.Binding
	Up         key.Binding
	Down       key.Binding
	Select     key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Pause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "pause"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		View: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "3d/2d"),
		),
		Info: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "info panel"),
		),
		List: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "element strip"),
		),
		Full: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "full view"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset layout"),
		),
		Background: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "background"),
		),
		Sound: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "sound"),
		),
		Record: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "record gif"),
		),
		Snapshot: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save svg"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy summary"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←", "previous"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "tab"),
			key.WithHelp("→", "next"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑", "row up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "row down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
	}
}
