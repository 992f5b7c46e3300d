package export

import (
	"fmt"
	"strings"

	"github.com/yarbel/yesodot/internal/viz"
)

// CanvasSVG converts a Braille canvas to SVG, one circle per lit dot. Dots
// take their cell's ink color from the theme, so the snapshot matches what
// the terminal showed.
func CanvasSVG(canvas *viz.Canvas, th viz.Theme, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2   // 2 sub-pixels per char
	height := float64(canvas.Height) * scale * 4 // 4 sub-pixels per char

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, string(th.Backdrop)))

	// Braille dot-to-bit mapping
	pixelMap := [4][2]int{
		{0x01, 0x08},
		{0x02, 0x10},
		{0x04, 0x20},
		{0x40, 0x80},
	}

	inks := []struct {
		ink  viz.Ink
		fill string
	}{
		{viz.InkStar, string(th.Star)},
		{viz.InkOrbit, string(th.Orbit)},
		{viz.InkNeutron, string(th.Neutron)},
		{viz.InkProton, string(th.Proton)},
		{viz.InkElectron, string(th.Electron)},
	}

	dotRadius := scale * 0.4

	for _, group := range inks {
		var dots strings.Builder
		for row := 0; row < canvas.Height; row++ {
			for col := 0; col < canvas.Width; col++ {
				if canvas.Ink[row][col] != group.ink {
					continue
				}
				r := canvas.Grid[row][col]
				if r < 0x2800 {
					continue
				}
				pattern := int(r - 0x2800)

				baseX := float64(col) * scale * 2
				baseY := float64(row) * scale * 4

				for dy := 0; dy < 4; dy++ {
					for dx := 0; dx < 2; dx++ {
						if pattern&pixelMap[dy][dx] != 0 {
							cx := baseX + float64(dx)*scale + scale/2
							cy := baseY + float64(dy)*scale + scale/2
							dots.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, cx, cy, dotRadius))
						}
					}
				}
			}
		}
		if dots.Len() > 0 {
			sb.WriteString(fmt.Sprintf("<g fill=\"%s\">\n", group.fill))
			sb.WriteString(dots.String())
			sb.WriteString("</g>\n")
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// Point is a sample on a property curve.
type Point struct{ X, Y float64 }

// PathSVG renders a sequence of points as a single SVG polyline, scaled to
// fit the viewport with 10% padding. Used for property curves across the
// periodic table.
func PathSVG(points []Point, width, height int, strokeColor string) string {
	if len(points) < 2 {
		return ""
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, p := range points {
		x := (p.X - minX) / rangeX * float64(width)
		y := float64(height) - (p.Y-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
