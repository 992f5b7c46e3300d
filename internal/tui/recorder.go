package tui

import (
	"fmt"
	"image/gif"
	"os"

	"github.com/atotto/clipboard"

	"github.com/yarbel/yesodot/internal/export"
)

func (m *Model) retheme() {
	m.palette = export.Palette(m.theme)
}

func (m *Model) startRecording() {
	m.recording = true
	m.frames = m.frames[:0]
	m.delays = m.delays[:0]
	m.flash("recording, g saves")
}

func (m *Model) stopRecording() {
	m.recording = false
	m.flash(m.saveGIF())
}

// captureFrame rasterizes the current canvas into the recording buffer.
// Delays are per frame so a speed change mid-recording plays back as seen.
func (m *Model) captureFrame() {
	m.frames = append(m.frames, export.FramePaletted(m.canvas, m.palette))
	d := 100 / m.fps
	if d < 2 {
		d = 2
	}
	m.delays = append(m.delays, d)
}

func (m *Model) saveGIF() string {
	if len(m.frames) == 0 {
		return "nothing recorded"
	}
	name := fmt.Sprintf("atom-%s.gif", m.selected.Symbol)
	f, err := os.Create(name)
	if err != nil {
		return "gif: " + err.Error()
	}
	defer f.Close()

	g := &gif.GIF{Image: m.frames, Delay: m.delays, LoopCount: 0}
	if err := export.WriteGIF(f, g); err != nil {
		return "gif: " + err.Error()
	}
	return fmt.Sprintf("saved %s (%d frames)", name, len(m.frames))
}

func (m *Model) saveSVG() string {
	name := fmt.Sprintf("atom-%s.svg", m.selected.Symbol)
	svg := export.CanvasSVG(m.canvas, m.theme, 4)
	if err := os.WriteFile(name, []byte(svg), 0o644); err != nil {
		return "svg: " + err.Error()
	}
	return "saved " + name
}

func (m *Model) copySummary() string {
	if err := clipboard.WriteAll(m.summaryText()); err != nil {
		return "clipboard: " + err.Error()
	}
	return "copied " + m.selected.Symbol + " summary"
}

// summaryText is plain logical-order text, so pasting into an editor that
// does its own bidi layout renders correctly.
func (m *Model) summaryText() string {
	el := m.selected
	return fmt.Sprintf("%s (%s) · %s · #%d\nמשפחה: %s · מצב צבירה: %s\nמסה אטומית: %s · קליפות: %v\n%s\n",
		el.HebrewName, el.Symbol, el.Name, el.Number,
		el.Category.HebrewLabel(), el.Phase.HebrewLabel(),
		el.AtomicMass, el.Shells, el.HebrewSummary)
}
