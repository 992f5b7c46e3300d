package viz

import (
	"strings"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Ink tags a pixel with what it belongs to so cells can be colored at
// render time. Cells keep one ink; higher values win, so the order below
// is the draw priority (electrons over nucleons over guides over stars).
type Ink uint8

const (
	InkNone Ink = iota
	InkStar
	InkOrbit
	InkNeutron
	InkProton
	InkElectron
)

// Canvas is a braille pixel canvas. Each character cell holds 2x4 dots, so
// the drawable area is (Width*2) x (Height*4) sub-pixels, plus a per-cell
// ink tag for coloring.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Ink           [][]Ink
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Ink:    make([][]Ink, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Ink[i] = make([]Ink, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800 // Empty braille char
		}
	}
	return c
}

// Set turns on the pixel at sub-pixel coordinates (x, y) and tags its cell.
func (c *Canvas) Set(x, y int, ink Ink) {
	// Early bounds check for negative coordinates
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	subX := x % 2
	subY := y % 4

	c.Grid[row][col] |= rune(pixelMap[subY][subX])
	if ink > c.Ink[row][col] {
		c.Ink[row][col] = ink
	}
}

// Unset clears a pixel. The cell keeps its ink until fully cleared.
func (c *Canvas) Unset(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	subX := x % 2
	subY := y % 4

	mask := ^rune(pixelMap[subY][subX])
	c.Grid[row][col] &= mask
	if c.Grid[row][col] < 0x2800 {
		c.Grid[row][col] = 0x2800
	}
	if c.Grid[row][col] == 0x2800 {
		c.Ink[row][col] = InkNone
	}
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
			c.Ink[i][j] = InkNone
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, ink Ink) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0, ink)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Scatter sets a batch of sub-pixel points, used for starfield backdrops.
func (c *Canvas) Scatter(points [][2]int, ink Ink) {
	for _, p := range points {
		c.Set(p[0], p[1], ink)
	}
}

// String renders the canvas without color, one line per row.
func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Render colors the canvas through a theme, coalescing runs of same-ink
// cells so each row emits a handful of escape sequences, not one per cell.
func (c *Canvas) Render(th Theme) string {
	styles := th.inkStyles()

	var b strings.Builder
	for i, row := range c.Grid {
		start := 0
		cur := c.Ink[i][0]
		for j := 1; j <= c.Width; j++ {
			if j < c.Width && c.Ink[i][j] == cur {
				continue
			}
			b.WriteString(styles[cur].Render(string(row[start:j])))
			if j < c.Width {
				start, cur = j, c.Ink[i][j]
			}
		}
		if i < len(c.Grid)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
