package gui

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/yarbel/yesodot/internal/atom"
	"github.com/yarbel/yesodot/internal/audio"
	"github.com/yarbel/yesodot/internal/config"
	"github.com/yarbel/yesodot/internal/elements"
	"github.com/yarbel/yesodot/internal/hebrew"
	"github.com/yarbel/yesodot/internal/viz"
)

// palette is the GUI color set for one background theme. Values track the
// terminal themes so both front ends read the same.
type palette struct {
	Bg       rl.Color
	Accent   rl.Color
	Select   rl.Color
	Text     rl.Color
	TextDim  rl.Color
	Proton   rl.Color
	Neutron  rl.Color
	Electron rl.Color
	Orbit    rl.Color
	Star     rl.Color
	Gradient rl.Color // second stop for the gradient backdrop
	Stars    bool
}

func themePalette(bg viz.Background) palette {
	switch bg {
	case viz.BackgroundDark:
		return palette{
			Bg:       rl.NewColor(10, 10, 10, 255),
			Accent:   rl.NewColor(180, 180, 180, 255),
			Select:   rl.NewColor(255, 255, 255, 255),
			Text:     rl.NewColor(140, 140, 140, 255),
			TextDim:  rl.NewColor(60, 60, 60, 255),
			Proton:   rl.NewColor(230, 230, 230, 255),
			Neutron:  rl.NewColor(120, 120, 120, 255),
			Electron: rl.NewColor(255, 255, 255, 255),
			Orbit:    rl.NewColor(50, 50, 50, 255),
		}
	case viz.BackgroundGradient:
		return palette{
			Bg:       rl.NewColor(18, 0, 26, 255),
			Gradient: rl.NewColor(40, 8, 60, 255),
			Accent:   rl.NewColor(255, 121, 198, 255),
			Select:   rl.NewColor(255, 255, 255, 255),
			Text:     rl.NewColor(200, 180, 220, 255),
			TextDim:  rl.NewColor(90, 70, 110, 255),
			Proton:   rl.NewColor(255, 121, 198, 255),
			Neutron:  rl.NewColor(189, 147, 249, 255),
			Electron: rl.NewColor(139, 233, 253, 255),
			Orbit:    rl.NewColor(68, 50, 90, 255),
		}
	case viz.BackgroundMinimal:
		return palette{
			Bg:       rl.NewColor(16, 16, 16, 255),
			Accent:   rl.NewColor(160, 160, 160, 255),
			Select:   rl.NewColor(240, 240, 240, 255),
			Text:     rl.NewColor(150, 150, 150, 255),
			TextDim:  rl.NewColor(70, 70, 70, 255),
			Proton:   rl.NewColor(200, 200, 200, 255),
			Neutron:  rl.NewColor(110, 110, 110, 255),
			Electron: rl.NewColor(255, 255, 255, 255),
			Orbit:    rl.NewColor(45, 45, 45, 255),
		}
	default: // space
		return palette{
			Bg:       rl.NewColor(5, 7, 15, 255),
			Accent:   rl.NewColor(100, 200, 255, 255),
			Select:   rl.NewColor(255, 255, 255, 255),
			Text:     rl.NewColor(150, 170, 200, 255),
			TextDim:  rl.NewColor(60, 70, 95, 255),
			Proton:   rl.NewColor(255, 140, 120, 255),
			Neutron:  rl.NewColor(170, 180, 200, 255),
			Electron: rl.NewColor(120, 220, 255, 255),
			Orbit:    rl.NewColor(40, 55, 85, 255),
			Star:     rl.NewColor(200, 210, 235, 255),
			Stars:    true,
		}
	}
}

type App struct {
	Element *elements.Element
	Atom    *atom.Atom
	Clock   float64
	Speed   float64
	Running bool

	Background viz.Background
	Pal        palette
	ShowOrbits bool

	Camera       rl.Camera3D
	CamPosTarget rl.Vector3
	CamTgtTarget rl.Vector3

	InMenu   bool
	Selected int

	Stars       []float64 // background stars [x, y, z]
	ParticleTex rl.Texture2D
	Font        rl.Font

	Audio *audio.Engine

	rng *rand.Rand
}

func initWindow() {
	rl.InitWindow(1280, 720, "yesodot")
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
}

// loadFont loads a mono font with ASCII plus the Hebrew block, so element
// names render in both scripts.
func loadFont() rl.Font {
	chars := make([]rune, 0, 256)
	for r := rune(32); r <= 126; r++ {
		chars = append(chars, r)
	}
	for r := rune(0x0590); r <= 0x05F4; r++ {
		chars = append(chars, r)
	}
	chars = append(chars, '…', '·', '°')

	font := rl.LoadFontEx("/usr/share/fonts/liberation/LiberationMono-Regular.ttf", 32, chars)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

// NewApp builds the viewer from config. Audio is best effort: with no
// output device the app runs silent.
func NewApp(cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	cfg.Normalize()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	app := &App{
		Speed:      cfg.Speed,
		Running:    true,
		Background: viz.Background(cfg.Background),
		ShowOrbits: true,
		Camera: rl.NewCamera3D(
			rl.NewVector3(0, 2, 10),
			rl.NewVector3(0, 0, 0),
			rl.NewVector3(0, 1, 0),
			45.0,
			rl.CameraPerspective,
		),
		Font: loadFont(),
		rng:  rand.New(rand.NewSource(seed)),
	}
	app.Pal = themePalette(app.Background)

	if eng, err := audio.NewEngine(); err == nil {
		eng.SetMuted(true)
		app.Audio = eng
	}

	// Soft radial glow for electron billboards.
	img := rl.GenImageGradientRadial(32, 32, 0.0, rl.White, rl.NewColor(0, 0, 0, 0))
	app.ParticleTex = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)

	numStars := 2000
	app.Stars = make([]float64, numStars*3)
	for i := 0; i < numStars; i++ {
		app.Stars[i*3] = (app.rng.Float64() - 0.5) * 1000
		app.Stars[i*3+1] = (app.rng.Float64() - 0.5) * 1000
		app.Stars[i*3+2] = -300 - app.rng.Float64()*500
	}

	sel := elements.First()
	if cfg.Element != "" {
		if el, err := elements.Find(cfg.Element); err == nil {
			sel = el
		}
	}
	app.loadElement(sel)
	return app
}

// Run opens the window and blocks until it closes.
func Run(cfg *config.Config) {
	initWindow()
	defer rl.CloseWindow()
	app := NewApp(cfg)
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
	if a.Audio != nil {
		a.Audio.Close()
	}
}

// loadElement rebuilds the atom for an element. Every call draws fresh
// shell tilts, so revisiting an element gives a new pose.
func (a *App) loadElement(el *elements.Element) {
	if el == nil {
		return
	}
	a.Element = el
	a.Atom = atom.New(el, a.rng)
	a.Selected = el.Number - 1

	// Pull the camera back far enough for the outermost shell.
	dist := float32(a.Atom.Radius()*2.6 + 2.5)
	a.CamPosTarget = rl.NewVector3(0, dist*0.25, dist)
	a.CamTgtTarget = rl.NewVector3(0, 0, 0)

	if a.Audio != nil {
		a.Audio.SetElement(el)
	}
}

func (a *App) Update() {
	if rl.IsKeyPressed(rl.KeyQ) {
		if a.Audio != nil {
			a.Audio.Close()
		}
		os.Exit(0)
	}

	if a.InMenu {
		a.updateMenu()
		return
	}

	if rl.IsKeyPressed(rl.KeyEscape) || rl.IsKeyPressed(rl.KeySlash) {
		a.InMenu = true
		return
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		a.Running = !a.Running
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.loadElement(a.Element) // same element, new tilt
	}
	if rl.IsKeyPressed(rl.KeyB) {
		a.Background = a.Background.Next()
		a.Pal = themePalette(a.Background)
	}
	if rl.IsKeyPressed(rl.KeyV) {
		a.ShowOrbits = !a.ShowOrbits
	}
	if rl.IsKeyPressed(rl.KeyM) && a.Audio != nil {
		a.Audio.Toggle()
	}

	if rl.IsKeyPressed(rl.KeyRight) || rl.IsKeyPressed(rl.KeyL) {
		if el, err := elements.ByNumber(a.Element.Number + 1); err == nil {
			a.loadElement(el)
		}
	}
	if rl.IsKeyPressed(rl.KeyLeft) || rl.IsKeyPressed(rl.KeyH) {
		if el, err := elements.ByNumber(a.Element.Number - 1); err == nil {
			a.loadElement(el)
		}
	}

	dt := float64(rl.GetFrameTime())
	if a.Running {
		a.Clock += a.Speed * dt
	}

	// Camera input moves the target; the camera itself follows with
	// inertia below.
	if rl.IsKeyDown(rl.KeyW) {
		a.CamPosTarget.Y += 0.1
	}
	if rl.IsKeyDown(rl.KeyS) {
		a.CamPosTarget.Y -= 0.1
	}
	if rl.IsKeyDown(rl.KeyA) {
		a.CamPosTarget.X -= 0.1
	}
	if rl.IsKeyDown(rl.KeyD) {
		a.CamPosTarget.X += 0.1
	}

	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		delta := rl.GetMouseDelta()
		a.CamPosTarget.X -= delta.X * 0.05
		a.CamPosTarget.Y += delta.Y * 0.05
	}

	wheel := rl.GetMouseWheelMove()
	if wheel != 0 {
		zoom := float32(wheel) * 0.8
		diff := rl.Vector3Subtract(a.CamTgtTarget, a.CamPosTarget)
		dist := rl.Vector3Length(diff)
		if dist > 1.5 || zoom < 0 {
			dir := rl.Vector3Normalize(diff)
			a.CamPosTarget = rl.Vector3Add(a.CamPosTarget, rl.Vector3Scale(dir, zoom))
		}
	}

	lerp := float32(5.0 * dt)
	if lerp > 1.0 {
		lerp = 1.0
	}
	a.Camera.Position = rl.Vector3Lerp(a.Camera.Position, a.CamPosTarget, lerp)
	a.Camera.Target = rl.Vector3Lerp(a.Camera.Target, a.CamTgtTarget, lerp)
}

func (a *App) updateMenu() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		a.InMenu = false
		return
	}
	if rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyJ) {
		a.Selected++
	}
	if rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyK) {
		a.Selected--
	}
	if a.Selected >= elements.Count() {
		a.Selected = 0
	}
	if a.Selected < 0 {
		a.Selected = elements.Count() - 1
	}

	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeySpace) {
		if el, err := elements.ByNumber(a.Selected + 1); err == nil {
			a.loadElement(el)
		}
		a.InMenu = false
	}
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(a.Pal.Bg)

	if a.Background == viz.BackgroundGradient {
		rl.DrawRectangleGradientV(0, 0, 1280, 720, a.Pal.Bg, a.Pal.Gradient)
	}

	if a.InMenu {
		a.drawMenu()
	} else {
		a.drawAtom()
		a.DrawHUD()
	}

	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	a.drawText("yesodot", 30, 30, 24, a.Pal.Select)
	a.drawText(fmt.Sprintf(":: %s (%s) #%d", a.Element.Name, a.Element.Symbol, a.Element.Number), 160, 34, 16, a.Pal.Text)
	a.drawText(hebrew.Visual(a.Element.HebrewName), 30, 62, 20, a.Pal.Accent)

	status := "RUNNING"
	col := a.Pal.Select
	if !a.Running {
		status = "PAUSED"
		col = a.Pal.TextDim
	}
	a.drawText(status, 1150, 30, 16, col)

	a.drawText(fmt.Sprintf("P %d  N %d  E %d  shells %d",
		a.Atom.Protons(), a.Atom.Neutrons(), a.Atom.Electrons(), len(a.Atom.Shells)),
		30, 92, 14, a.Pal.Text)

	a.drawText("[SPACE] PAUSE  [←→] ELEMENT  [/] PICK  [R] RETILT  [B] THEME  [M] SOUND  [Q] QUIT", 520, 680, 14, a.Pal.TextDim)
	a.drawText(fmt.Sprintf("%d FPS", int32(rl.GetFPS())), 30, 680, 14, a.Pal.TextDim)

	if a.Audio != nil {
		bass, mid, high := a.Audio.Levels()
		sum := (bass + mid + high) / 3.0
		bars := int(sum * 20)
		if bars > 20 {
			bars = 20
		}
		barStr := ""
		for i := 0; i < bars; i++ {
			barStr += "|"
		}
		a.drawText(fmt.Sprintf("SND [%-20s]", barStr), 30, 650, 14, a.Pal.Accent)
	} else {
		a.drawText("SND [OFF]", 30, 650, 14, a.Pal.TextDim)
	}
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}

func (a *App) drawMenu() {
	a.drawText("yesodot", 50, 50, 40, a.Pal.Select)
	a.drawText("Select Element", 50, 100, 16, a.Pal.TextDim)

	limit := 18
	startIdx := 0
	if a.Selected >= limit {
		startIdx = a.Selected - limit + 1
	}

	all := elements.All()
	y := 160
	for i := startIdx; i < len(all) && i < startIdx+limit; i++ {
		el := all[i]
		label := fmt.Sprintf("%3d %-3s %-14s %s", el.Number, el.Symbol, el.Name, hebrew.Visual(el.HebrewName))
		if i == a.Selected {
			a.drawText("> "+label, 50, y, 20, a.Pal.Select)
		} else {
			a.drawText("  "+label, 50, y, 20, a.Pal.Text)
		}
		y += 28
	}

	a.drawText("ARROWS: NAVIGATE  ENTER: SELECT  ESC: BACK  Q: QUIT", 820, 680, 14, a.Pal.TextDim)
}
