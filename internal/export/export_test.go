package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/yarbel/yesodot/internal/elements"
	"github.com/yarbel/yesodot/internal/viz"
)

func TestCanvasSVG(t *testing.T) {
	c := viz.NewCanvas(4, 2)
	c.Set(0, 0, viz.InkProton)
	c.Set(2, 0, viz.InkElectron)

	th := viz.GetTheme(viz.BackgroundSpace)
	svg := CanvasSVG(c, th, 4.0)

	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("missing XML header")
	}
	if got := strings.Count(svg, "<circle"); got != 2 {
		t.Errorf("expected 2 dots, got %d", got)
	}
	if !strings.Contains(svg, string(th.Proton)) {
		t.Error("proton dot lost its color group")
	}
	if !strings.Contains(svg, string(th.Electron)) {
		t.Error("electron dot lost its color group")
	}
	if !strings.Contains(svg, string(th.Backdrop)) {
		t.Error("missing backdrop fill")
	}
}

func TestCanvasSVGNil(t *testing.T) {
	if CanvasSVG(nil, viz.GetTheme(viz.BackgroundDark), 4.0) != "" {
		t.Error("nil canvas should give an empty string")
	}
}

func TestPathSVG(t *testing.T) {
	points := []Point{{1, 1}, {2, 4}, {3, 9}}
	svg := PathSVG(points, 300, 200, "#00ff88")

	if !strings.Contains(svg, `stroke="#00ff88"`) {
		t.Error("missing stroke color")
	}
	if got := strings.Count(svg, " L"); got != 2 {
		t.Errorf("expected 2 line segments, got %d", got)
	}

	if PathSVG([]Point{{1, 1}}, 300, 200, "#fff") != "" {
		t.Error("single point should give an empty string")
	}
}

func TestRecordsWholeTable(t *testing.T) {
	recs := Records(nil)
	if len(recs) != elements.Count() {
		t.Fatalf("expected %d records, got %d", elements.Count(), len(recs))
	}
	if recs[0].Symbol != "H" {
		t.Errorf("expected hydrogen first, got %s", recs[0].Symbol)
	}
	if recs[25].Neutrons != 30 {
		t.Errorf("iron should export 30 neutrons, got %d", recs[25].Neutrons)
	}
}

func TestWriteJSON(t *testing.T) {
	fe, err := elements.BySymbol("Fe")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, []*elements.Element{fe}); err != nil {
		t.Fatal(err)
	}

	var recs []Record
	if err := json.Unmarshal(buf.Bytes(), &recs); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(recs) != 1 || recs[0].Number != 26 {
		t.Errorf("unexpected record: %+v", recs)
	}
	if recs[0].HebrewName != "ברזל" {
		t.Errorf("expected Hebrew name to survive, got %q", recs[0].HebrewName)
	}
}

func TestWriteCSV(t *testing.T) {
	h, err := elements.BySymbol("H")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, []*elements.Element{h}); err != nil {
		t.Fatal(err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header plus one row, got %d rows", len(rows))
	}
	if rows[1][1] != "H" || rows[1][8] != "0" {
		t.Errorf("unexpected hydrogen row: %v", rows[1])
	}
}

func TestWriteYAML(t *testing.T) {
	he, err := elements.BySymbol("He")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteYAML(&buf, []*elements.Element{he}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "symbol: He") {
		t.Errorf("missing symbol field:\n%s", out)
	}
	if !strings.Contains(out, "shells: [2]") {
		t.Errorf("expected flow-style shells:\n%s", out)
	}
}

func TestAtomGIF(t *testing.T) {
	ne, err := elements.BySymbol("Ne")
	if err != nil {
		t.Fatal(err)
	}

	opts := GIFOptions{Width: 20, Height: 10, Frames: 5, FPS: 10, Seed: 9}
	anim := AtomGIF(ne, viz.GetTheme(viz.BackgroundDark), opts)

	if len(anim.Image) != 5 {
		t.Fatalf("expected 5 frames, got %d", len(anim.Image))
	}
	if len(anim.Delay) != 5 || anim.Delay[0] != 10 {
		t.Errorf("expected uniform delay 10, got %v", anim.Delay)
	}
	bounds := anim.Image[0].Bounds()
	if bounds.Dx() != 160 || bounds.Dy() != 160 {
		t.Errorf("expected 160x160 frames, got %dx%d", bounds.Dx(), bounds.Dy())
	}

	lit := 0
	for _, px := range anim.Image[0].Pix {
		if px != 0 {
			lit++
		}
	}
	if lit == 0 {
		t.Error("first frame is blank")
	}
}

func TestAtomGIFDeterministicForSeed(t *testing.T) {
	fe, _ := elements.BySymbol("Fe")
	opts := GIFOptions{Width: 16, Height: 8, Frames: 4, FPS: 10, Seed: 3}
	th := viz.GetTheme(viz.BackgroundDark)

	first := AtomGIF(fe, th, opts)
	second := AtomGIF(fe, th, opts)

	for i := range first.Image {
		if !bytes.Equal(first.Image[i].Pix, second.Image[i].Pix) {
			t.Fatalf("frame %d differs between identical renders", i)
		}
	}
}

func TestWriteGIF(t *testing.T) {
	h, _ := elements.BySymbol("H")
	anim := AtomGIF(h, viz.GetTheme(viz.BackgroundMinimal), GIFOptions{Width: 10, Height: 5, Frames: 2, FPS: 10})

	var buf bytes.Buffer
	if err := WriteGIF(&buf, anim); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("GIF89a")) {
		t.Error("output does not look like a GIF")
	}
}
