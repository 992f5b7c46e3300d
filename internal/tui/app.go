package tui

import (
	"fmt"
	"image"
	"image/color"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yarbel/yesodot/internal/atom"
	"github.com/yarbel/yesodot/internal/audio"
	"github.com/yarbel/yesodot/internal/config"
	"github.com/yarbel/yesodot/internal/elements"
	"github.com/yarbel/yesodot/internal/hebrew"
	"github.com/yarbel/yesodot/internal/viz"
)

var (
	canvasStyle = lipgloss.NewStyle().
			Padding(1, 2)

	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(1, 2).
			Width(40)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 2)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8888aa"))

	valueStyle = lipgloss.NewStyle().
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Padding(0, 2)

	searchStyle = lipgloss.NewStyle().
			Padding(0, 2)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899"))
)

const (
	panelWidth    = 42 // panelStyle width plus its border column
	maxGIFFrames  = 600
	statusSeconds = 3
)

// TickMsg drives the animation clock.
type TickMsg time.Time

// Model is the top level viewer state. One instance owns everything: the
// selected element and its atom geometry, the animation clock, panel
// visibility, the search filter, and the render surfaces.
type Model struct {
	cfg  *config.Config
	keys KeyMap
	rng  *rand.Rand

	selected *elements.Element
	atom     *atom.Atom
	clock    float64
	speed    float64
	fps      int
	paused   bool

	viewMode   string
	showInfo   bool
	showList   bool
	background viz.Background
	theme      viz.Theme

	search    textinput.Model
	searching bool
	filtered  []*elements.Element
	cursor    int
	gridX     int
	gridY     int
	hovered   *elements.Element

	canvas *viz.Canvas
	camera *viz.Camera
	stars  [][2]int

	width  int
	height int

	sound *audio.Engine

	recording bool
	frames    []*image.Paletted
	delays    []int
	palette   color.Palette

	status    string
	statusTTL int

	showHelp bool
}

// NewModel builds the viewer from a normalized config. The random source
// seeds shell tilts and the starfield; a zero config seed means every run
// looks different.
func NewModel(cfg *config.Config) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	cfg.Normalize()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	si := textinput.New()
	si.Placeholder = "iron / ברזל / Fe / 26"
	si.Prompt = "/ "
	si.CharLimit = 32
	si.Width = 28

	m := &Model{
		cfg:        cfg,
		keys:       DefaultKeyMap(),
		rng:        rand.New(rand.NewSource(seed)),
		speed:      cfg.Speed,
		fps:        cfg.FPS,
		viewMode:   cfg.ViewMode,
		showInfo:   cfg.ShowInfo,
		showList:   cfg.ShowList,
		background: viz.Background(cfg.Background),
		search:     si,
		filtered:   elements.All(),
		camera:     viz.NewCamera(),
	}
	m.theme = viz.GetTheme(m.background)

	sel := elements.First()
	if cfg.Element != "" {
		if el, err := elements.Find(cfg.Element); err == nil {
			sel = el
		}
	}
	m.choose(sel)
	m.layout(96, 32)
	return m
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.tick(), textinput.Blink)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if !m.paused {
			m.clock += m.speed / float64(m.fps)
			// Idle orbit, suspended while the user steers the camera.
			if m.camera.RotX == 0 && m.camera.RotZ == 0 {
				m.camera.RotY += 0.005
			}
		}
		m.draw()
		if m.recording {
			m.captureFrame()
			if len(m.frames) >= maxGIFFrames {
				m.stopRecording()
			}
		}
		if m.statusTTL > 0 {
			m.statusTTL--
			if m.statusTTL == 0 {
				m.status = ""
			}
		}
		return m, m.tick()

	case tea.WindowSizeMsg:
		m.layout(msg.Width, msg.Height)
		m.draw()
		return m, nil

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.searching {
		switch msg.String() {
		case "esc":
			m.searching = false
			m.search.Blur()
		case "enter":
			if len(m.filtered) > 0 {
				m.choose(m.filtered[0])
			}
			m.searching = false
			m.search.Blur()
		default:
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			m.refilter()
			return m, cmd
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
		if m.paused {
			m.flash("paused")
		} else {
			m.flash("running")
		}

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.View):
		if m.viewMode == "3d" {
			m.viewMode = "2d"
		} else {
			m.viewMode = "3d"
		}

	case key.Matches(msg, m.keys.Info):
		m.showInfo = !m.showInfo
		m.layout(m.width, m.height)

	case key.Matches(msg, m.keys.List):
		m.showList = !m.showList
		m.layout(m.width, m.height)

	case key.Matches(msg, m.keys.Full):
		m.showInfo = false
		m.showList = false
		m.layout(m.width, m.height)
		m.flash("full view, r restores panels")

	case key.Matches(msg, m.keys.Reset):
		m.showInfo = true
		m.showList = true
		m.camera.Reset()
		m.camera.Fit(m.atom.Radius())
		m.layout(m.width, m.height)
		m.flash("layout reset")

	case key.Matches(msg, m.keys.Background):
		m.background = m.background.Next()
		m.theme = viz.GetTheme(m.background)
		m.retheme()
		m.flash("background: " + string(m.background))

	case key.Matches(msg, m.keys.Sound):
		if m.sound == nil {
			m.flash("no audio device")
		} else if m.sound.Toggle() {
			m.flash("sound off")
		} else {
			m.flash("sound on")
		}

	case key.Matches(msg, m.keys.Record):
		if m.recording {
			m.stopRecording()
		} else {
			m.startRecording()
		}

	case key.Matches(msg, m.keys.Snapshot):
		m.flash(m.saveSVG())

	case key.Matches(msg, m.keys.Copy):
		m.flash(m.copySummary())

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.Left):
		m.move(-1, 0)

	case key.Matches(msg, m.keys.Right):
		m.move(1, 0)

	case key.Matches(msg, m.keys.Up):
		m.move(0, -1)

	case key.Matches(msg, m.keys.Down):
		m.move(0, 1)

	case key.Matches(msg, m.keys.Select):
		m.selectAtCursor()

	default:
		m.handleCameraKey(msg.String())
	}
	return m, nil
}

// handleCameraKey mirrors the spin and zoom controls: lowercase spins one
// way, uppercase the other.
func (m *Model) handleCameraKey(k string) {
	switch k {
	case "x":
		m.camera.RotateX(0.1)
	case "X":
		m.camera.RotateX(-0.1)
	case "y":
		m.camera.RotateY(0.1)
	case "Y":
		m.camera.RotateY(-0.1)
	case "z":
		m.camera.RotateZ(0.1)
	case "Z":
		m.camera.RotateZ(-0.1)
	case "+", "=":
		m.camera.ZoomIn()
	case "-", "_":
		m.camera.ZoomOut()
	}
}

// move advances the strip cursor in 3D mode and walks the grid in 2D mode.
func (m *Model) move(dx, dy int) {
	if m.viewMode == "2d" {
		m.moveGrid(dx, dy)
		return
	}
	if dx == 0 || len(m.filtered) == 0 {
		return
	}
	m.cursor += dx
	if m.cursor < 0 {
		m.cursor = len(m.filtered) - 1
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = 0
	}
}

func (m *Model) selectAtCursor() {
	if m.viewMode == "2d" {
		if el, ok := elements.AtGrid(m.gridX, m.gridY); ok {
			m.choose(el)
		}
		return
	}
	if m.cursor >= 0 && m.cursor < len(m.filtered) {
		m.choose(m.filtered[m.cursor])
	}
}

// choose switches the selection. The atom is rebuilt from scratch so each
// selection draws fresh shell tilts; filtering state is left alone.
func (m *Model) choose(el *elements.Element) {
	if el == nil {
		return
	}
	m.selected = el
	m.atom = atom.New(el, m.rng)
	m.camera.Fit(m.atom.Radius())
	m.gridX, m.gridY = el.GridX, el.GridY
	for i, f := range m.filtered {
		if f == el {
			m.cursor = i
			break
		}
	}
	if m.sound != nil {
		m.sound.SetElement(el)
	}
}

// refilter recomputes the visible element list from the search term. The
// selection is never touched here.
func (m *Model) refilter() {
	m.filtered = elements.Search(m.search.Value())
	if m.cursor >= len(m.filtered) {
		m.cursor = 0
	}
}

// layout resizes the canvas and starfield for the terminal and the panels
// currently shown.
func (m *Model) layout(w, h int) {
	m.width, m.height = w, h

	cw := w - 4 // canvasStyle horizontal padding
	if m.showInfo {
		cw -= panelWidth
	}
	ch := h - 4 // header, canvas padding, status
	if m.showList {
		ch -= stripLines
	}
	if cw < 20 {
		cw = 20
	}
	if ch < 8 {
		ch = 8
	}

	m.canvas = viz.NewCanvas(cw, ch)
	m.stars = viz.Starfield(cw, ch, cw*ch/12, m.rng)
	m.retheme()
}

// draw renders the current frame into the canvas.
func (m *Model) draw() {
	m.canvas.Clear()
	if m.theme.Stars {
		m.canvas.Scatter(m.stars, viz.InkStar)
	}
	viz.Render3D(m.canvas, viz.BuildAtomScene(m.atom, m.clock), m.camera)
}

func (m *Model) flash(s string) {
	m.status = s
	m.statusTTL = statusSeconds * m.fps
}

// vis lays Hebrew out for the terminal. Logical mode leaves the text
// as-is for emulators that run their own bidi pass.
func (m *Model) vis(s string) string {
	if m.cfg.RTL == "logical" {
		return s
	}
	return hebrew.Visual(s)
}

func (m *Model) View() string {
	if m.showHelp {
		return m.helpView()
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n")

	var body string
	if m.viewMode == "2d" {
		body = canvasStyle.Render(m.gridView())
	} else {
		body = canvasStyle.Render(m.canvas.Render(m.theme))
	}
	if m.showInfo {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, m.infoView())
	}
	b.WriteString(body)
	b.WriteString("\n")

	if m.searching || m.search.Value() != "" {
		b.WriteString(m.searchView())
		b.WriteString("\n")
	}
	if m.showList {
		b.WriteString(m.stripView())
		b.WriteString("\n")
	}
	b.WriteString(m.statusView())
	return b.String()
}

func (m *Model) headerView() string {
	title := m.vis("היסודות")
	if m.theme.GradientTitle {
		title = viz.GradientText(title, m.theme.Primary, m.theme.Accent)
	} else {
		title = lipgloss.NewStyle().Foreground(m.theme.Primary).Render(title)
	}

	el := fmt.Sprintf("%s · %s (%s) #%d",
		m.vis(m.selected.HebrewName), m.selected.Name, m.selected.Symbol, m.selected.Number)

	return headerStyle.Render(title + "  " + lipgloss.NewStyle().Foreground(m.theme.Text).Render(el))
}

func (m *Model) searchView() string {
	if m.searching {
		return searchStyle.Render(m.search.View())
	}
	return searchStyle.Render(viz.Subtle.Render(fmt.Sprintf("filter %q · %d elements · / to edit", m.search.Value(), len(m.filtered))))
}

func (m *Model) statusView() string {
	var parts []string

	if m.paused {
		parts = append(parts, viz.StatusPaused.Render("⏸ paused"))
	} else {
		parts = append(parts, viz.StatusRunning.Render("▶ "+fmt.Sprintf("%.1fx", m.speed)))
	}
	if m.recording {
		parts = append(parts, viz.StatusRecording.Render(fmt.Sprintf("● rec %d", len(m.frames))))
	}
	parts = append(parts, viz.Subtle.Render(string(m.background)))

	if m.status != "" {
		parts = append(parts, m.status)
	}

	parts = append(parts, viz.KeyHint.Render("? help · / search · v view · q quit"))
	return statusStyle.Render(strings.Join(parts, "  "))
}

func (m *Model) helpView() string {
	rows := []string{
		"╔══════════════════════════════════════════╗",
		"║                controls                  ║",
		"╠══════════════════════════════════════════╣",
		line("space", "pause / resume"),
		line("/", "search (enter picks first hit)"),
		line("v", "3d atom / 2d table"),
		line("i", "toggle info panel"),
		line("l", "toggle element strip"),
		line("f", "hide both panels"),
		line("r", "show panels, reset camera"),
		line("b", "cycle background"),
		line("m", "element sound on/off"),
		line("g", "record gif (again to save)"),
		line("s", "save svg snapshot"),
		line("c", "copy element summary"),
		line("←→↑↓", "move cursor, enter selects"),
		line("x/X y/Y z/Z", "spin camera"),
		line("+ / -", "zoom"),
		line("q", "quit"),
		"╚══════════════════════════════════════════╝",
	}
	return helpStyle.Render(strings.Join(rows, "\n"))
}

func line(k, desc string) string {
	return fmt.Sprintf("║  %-12s %-27s ║", k, desc)
}

// Run opens the viewer. Audio is best effort: with no output device the
// viewer runs silent.
func Run(cfg *config.Config) error {
	m := NewModel(cfg)
	if eng, err := audio.NewEngine(); err == nil {
		eng.SetMuted(true)
		eng.SetElement(m.selected)
		m.sound = eng
		defer eng.Close()
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
