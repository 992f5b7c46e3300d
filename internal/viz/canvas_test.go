package viz

import (
	"strings"
	"testing"
)

func TestNewCanvas(t *testing.T) {
	c := NewCanvas(10, 5)

	if c.Width != 10 || c.Height != 5 {
		t.Errorf("expected 10x5 canvas, got %dx%d", c.Width, c.Height)
	}
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			if c.Grid[y][x] != 0x2800 {
				t.Fatalf("cell (%d,%d) not empty braille", x, y)
			}
			if c.Ink[y][x] != InkNone {
				t.Fatalf("cell (%d,%d) has ink before any draw", x, y)
			}
		}
	}
}

func TestSetPixel(t *testing.T) {
	c := NewCanvas(4, 4)

	c.Set(0, 0, InkProton)
	if c.Grid[0][0] != 0x2801 {
		t.Errorf("expected 0x2801, got %#x", c.Grid[0][0])
	}
	if c.Ink[0][0] != InkProton {
		t.Errorf("expected proton ink, got %d", c.Ink[0][0])
	}

	c.Set(1, 0, InkProton)
	if c.Grid[0][0] != 0x2809 {
		t.Errorf("expected 0x2809 after second dot, got %#x", c.Grid[0][0])
	}

	c.Set(2, 4, InkOrbit)
	if c.Grid[1][1] != 0x2801 {
		t.Errorf("expected dot in cell (1,1), got %#x", c.Grid[1][1])
	}
}

func TestSetIgnoresOutOfBounds(t *testing.T) {
	c := NewCanvas(2, 2)

	c.Set(-1, 0, InkProton)
	c.Set(0, -1, InkProton)
	c.Set(4, 0, InkProton)
	c.Set(0, 8, InkProton)

	for y := range c.Grid {
		for x := range c.Grid[y] {
			if c.Grid[y][x] != 0x2800 {
				t.Errorf("out-of-bounds set leaked into cell (%d,%d)", x, y)
			}
		}
	}
}

func TestInkPriority(t *testing.T) {
	c := NewCanvas(2, 2)

	c.Set(0, 0, InkOrbit)
	c.Set(1, 0, InkElectron)
	if c.Ink[0][0] != InkElectron {
		t.Errorf("expected electron to win the cell, got %d", c.Ink[0][0])
	}

	c.Set(0, 1, InkOrbit)
	if c.Ink[0][0] != InkElectron {
		t.Errorf("orbit ink downgraded an electron cell to %d", c.Ink[0][0])
	}
}

func TestUnset(t *testing.T) {
	c := NewCanvas(2, 2)

	c.Set(0, 0, InkElectron)
	c.Set(1, 0, InkElectron)

	c.Unset(0, 0)
	if c.Grid[0][0] != 0x2808 {
		t.Errorf("expected one dot left, got %#x", c.Grid[0][0])
	}
	if c.Ink[0][0] != InkElectron {
		t.Error("ink dropped while the cell still has dots")
	}

	c.Unset(1, 0)
	if c.Grid[0][0] != 0x2800 {
		t.Errorf("expected empty cell, got %#x", c.Grid[0][0])
	}
	if c.Ink[0][0] != InkNone {
		t.Error("ink survived an empty cell")
	}
}

func TestClear(t *testing.T) {
	c := NewCanvas(3, 3)
	c.DrawLine(0, 0, 5, 11, InkProton)

	c.Clear()
	for y := range c.Grid {
		for x := range c.Grid[y] {
			if c.Grid[y][x] != 0x2800 || c.Ink[y][x] != InkNone {
				t.Fatalf("cell (%d,%d) survived Clear", x, y)
			}
		}
	}
}

func TestDrawLineHorizontal(t *testing.T) {
	c := NewCanvas(4, 1)

	c.DrawLine(0, 0, 7, 0, InkOrbit)
	for col := 0; col < 4; col++ {
		if c.Grid[0][col] != 0x2809 {
			t.Errorf("cell %d: expected 0x2809, got %#x", col, c.Grid[0][col])
		}
		if c.Ink[0][col] != InkOrbit {
			t.Errorf("cell %d: expected orbit ink", col)
		}
	}
}

func TestScatter(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Scatter([][2]int{{0, 0}, {2, 0}, {100, 100}}, InkStar)

	if c.Grid[0][0] != 0x2801 || c.Grid[0][1] != 0x2801 {
		t.Error("scatter missed in-bounds points")
	}
	if c.Ink[0][0] != InkStar {
		t.Errorf("expected star ink, got %d", c.Ink[0][0])
	}
}

func TestStringShape(t *testing.T) {
	c := NewCanvas(6, 3)
	s := c.String()

	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if len([]rune(line)) != 6 {
			t.Errorf("line %d: expected 6 runes, got %d", i, len([]rune(line)))
		}
	}
}

func TestRenderShape(t *testing.T) {
	c := NewCanvas(6, 3)
	c.Set(0, 0, InkElectron)

	out := c.Render(GetTheme(BackgroundMinimal))
	if n := strings.Count(out, "\n"); n != 2 {
		t.Errorf("expected 2 newlines, got %d", n)
	}
	if !strings.ContainsRune(out, 0x2801) {
		t.Error("rendered output lost the set cell")
	}
}
