package viz

import (
	"strings"
	"testing"

	"github.com/yarbel/yesodot/internal/elements"
)

func TestCategoryColor(t *testing.T) {
	if CategoryColor(elements.AlkaliMetal) == CategoryColor(elements.NobleGas) {
		t.Error("families should not share a color")
	}
	if CategoryColor(elements.Category("weird")) != CategoryColor(elements.UnknownCategory) {
		t.Error("unknown family should use the fallback color")
	}
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		name    string
		percent float64
		width   int
		filled  int
	}{
		{"half", 0.5, 10, 5},
		{"full", 1.0, 10, 10},
		{"empty", 0.0, 10, 0},
		{"over", 2.0, 10, 10},
		{"negative", -1.0, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := ProgressBar(tt.percent, tt.width)
			if got := strings.Count(bar, "█"); got != tt.filled {
				t.Errorf("expected %d filled cells, got %d", tt.filled, got)
			}
			if got := strings.Count(bar, "░"); got != tt.width-tt.filled {
				t.Errorf("expected %d empty cells, got %d", tt.width-tt.filled, got)
			}
		})
	}
}

func TestSeparator(t *testing.T) {
	if !strings.Contains(Separator(20), "◆") {
		t.Error("wide separator should carry the diamond")
	}
	if strings.Contains(Separator(3), "◆") {
		t.Error("narrow separator should not carry the diamond")
	}
	if got := strings.Count(Separator(3), "─"); got != 3 {
		t.Errorf("expected 3 dashes, got %d", got)
	}
	Separator(0)
	Separator(-1)
}

func TestGradientText(t *testing.T) {
	if GradientText("", "#ff0000", "#0000ff") != "" {
		t.Error("empty input should stay empty")
	}

	out := GradientText("abc", "#ff0000", "#0000ff")
	for _, r := range "abc" {
		if !strings.ContainsRune(out, r) {
			t.Errorf("gradient output lost rune %q", r)
		}
	}
}

func TestParseHex(t *testing.T) {
	r, g, b := parseHex("#ff00aa")
	if r != 255 || g != 0 || b != 170 {
		t.Errorf("expected (255,0,170), got (%d,%d,%d)", r, g, b)
	}

	r, g, b = parseHex("junk")
	if r != 255 || g != 255 || b != 255 {
		t.Error("bad input should fall back to white")
	}
}

func TestHexColorRoundTrip(t *testing.T) {
	if got := hexColor(parseHex("#aabbcc")); got != "#aabbcc" {
		t.Errorf("expected #aabbcc, got %s", got)
	}
}
