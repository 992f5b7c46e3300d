package viz

import (
	"math"
	"sort"

	"github.com/yarbel/yesodot/internal/atom"
)

// Camera manages 3D projection to a 2D plane.
type Camera struct {
	Position, Target, Up atom.Vec3
	FOV, Near, Far       float64
	RotX, RotY, RotZ     float64
	Zoom                 float64
}

func NewCamera() *Camera {
	return &Camera{Position: atom.Vec3{Z: 50}, Up: atom.Vec3{Y: 1}, FOV: math.Pi / 4, Near: 0.1, Far: 1000, Zoom: 1.0}
}

func (c *Camera) RotateX(a float64) { c.RotX += a }
func (c *Camera) RotateY(a float64) { c.RotY += a }
func (c *Camera) RotateZ(a float64) { c.RotZ += a }
func (c *Camera) ZoomIn()           { c.Zoom = math.Min(10, c.Zoom*1.2) }
func (c *Camera) ZoomOut()          { c.Zoom = math.Max(0.1, c.Zoom/1.2) }

// Reset restores rotation and leaves zoom to the next Fit call.
func (c *Camera) Reset() {
	c.RotX, c.RotY, c.RotZ = 0, 0, 0
	c.Zoom = 1.0
}

// Fit sets the zoom so a model of the given radius spans most of the
// viewport. Callers refit when the modeled atom changes, so hydrogen and
// oganesson both fill the frame.
func (c *Camera) Fit(radius float64) {
	if radius <= 0 {
		return
	}
	c.Zoom = 1.35 / radius
}

// RotatePoint rotates a point around the camera's axes.
func (c *Camera) RotatePoint(p atom.Vec3) atom.Vec3 {
	cx, sx := math.Cos(c.RotX), math.Sin(c.RotX)
	p.Y, p.Z = p.Y*cx-p.Z*sx, p.Y*sx+p.Z*cx
	cy, sy := math.Cos(c.RotY), math.Sin(c.RotY)
	p.X, p.Z = p.X*cy+p.Z*sy, -p.X*sy+p.Z*cy
	cz, sz := math.Cos(c.RotZ), math.Sin(c.RotZ)
	p.X, p.Y = p.X*cz-p.Y*sz, p.X*sz+p.Y*cz
	return p
}

// Project converts 3D world coordinates to 2D screen coordinates.
// Returns x, y, depth, and visibility.
func (c *Camera) Project(p atom.Vec3, sw, sh int) (int, int, float64, bool) {
	rot := c.RotatePoint(p).Scale(c.Zoom)
	dist := c.Position.Z
	if rot.Z >= dist-c.Near {
		return 0, 0, 0, false
	}
	scale := dist / (dist - rot.Z)
	minDim := float64(sh)
	if float64(sw) < minDim {
		minDim = float64(sw)
	}
	pScale := minDim / 3.0
	sx := int(rot.X*scale*pScale) + sw/2
	sy := int(-rot.Y*scale*pScale) + sh/2
	return sx, sy, rot.Z, sx >= 0 && sx < sw && sy >= 0 && sy < sh
}

type Edge struct {
	Start, End atom.Vec3
	Ink        Ink
}

type Wireframe struct{ Edges []Edge }

func NewWireframe() *Wireframe                      { return &Wireframe{Edges: make([]Edge, 0)} }
func (w *Wireframe) AddEdge(s, e atom.Vec3, ink Ink) { w.Edges = append(w.Edges, Edge{s, e, ink}) }
func (w *Wireframe) AddPoint(p atom.Vec3, ink Ink)   { w.Edges = append(w.Edges, Edge{p, p, ink}) }
func (w *Wireframe) Clear()                          { w.Edges = w.Edges[:0] }

type ProjectedEdge struct {
	X1, Y1, X2, Y2 int
	Depth          float64
	Ink            Ink
	Visible        bool
}

// Render3D draws the wireframe to the canvas, farthest edges first.
// Contested cells go to the higher-priority ink, so electrons stay visible
// crossing in front of orbit rings.
func Render3D(c *Canvas, w *Wireframe, cam *Camera) {
	if c == nil || w == nil || cam == nil {
		return
	}
	cw, ch := c.Width*2, c.Height*4
	proj := make([]ProjectedEdge, 0, len(w.Edges))
	for _, e := range w.Edges {
		x1, y1, d1, v1 := cam.Project(e.Start, cw, ch)
		x2, y2, d2, v2 := cam.Project(e.End, cw, ch)
		if v1 || v2 {
			proj = append(proj, ProjectedEdge{x1, y1, x2, y2, (d1 + d2) / 2, e.Ink, true})
		}
	}
	sort.Slice(proj, func(i, j int) bool { return proj[i].Depth < proj[j].Depth })
	for _, e := range proj {
		if e.X1 == e.X2 && e.Y1 == e.Y2 {
			c.Set(e.X1, e.Y1, e.Ink)
			// Electrons get a 2x2 dot so they read against orbit lines.
			if e.Ink == InkElectron {
				c.Set(e.X1+1, e.Y1, e.Ink)
				c.Set(e.X1, e.Y1+1, e.Ink)
				c.Set(e.X1+1, e.Y1+1, e.Ink)
			}
		} else {
			c.DrawLine(e.X1, e.Y1, e.X2, e.Y2, e.Ink)
		}
	}
}
