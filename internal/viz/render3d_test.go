package viz

import (
	"math"
	"testing"

	"github.com/yarbel/yesodot/internal/atom"
)

func TestProjectCenter(t *testing.T) {
	cam := NewCamera()

	x, y, depth, visible := cam.Project(atom.Vec3{}, 100, 100)
	if !visible {
		t.Fatal("origin should be visible")
	}
	if x != 50 || y != 50 {
		t.Errorf("expected origin at screen center (50,50), got (%d,%d)", x, y)
	}
	if depth != 0 {
		t.Errorf("expected zero depth at origin, got %f", depth)
	}
}

func TestProjectBehindCamera(t *testing.T) {
	cam := NewCamera()

	_, _, _, visible := cam.Project(atom.Vec3{Z: 60}, 100, 100)
	if visible {
		t.Error("point behind the near plane should not be visible")
	}
}

func TestZoomClamps(t *testing.T) {
	cam := NewCamera()

	for i := 0; i < 30; i++ {
		cam.ZoomIn()
	}
	if cam.Zoom > 10 {
		t.Errorf("zoom exceeded cap: %f", cam.Zoom)
	}

	for i := 0; i < 60; i++ {
		cam.ZoomOut()
	}
	if cam.Zoom < 0.1 {
		t.Errorf("zoom under floor: %f", cam.Zoom)
	}
}

func TestFit(t *testing.T) {
	cam := NewCamera()

	cam.Fit(2.7)
	if math.Abs(cam.Zoom-0.5) > 1e-10 {
		t.Errorf("expected zoom 0.5 for radius 2.7, got %f", cam.Zoom)
	}

	cam.Fit(0)
	if math.Abs(cam.Zoom-0.5) > 1e-10 {
		t.Error("fit with zero radius should be a no-op")
	}
	cam.Fit(-1)
	if math.Abs(cam.Zoom-0.5) > 1e-10 {
		t.Error("fit with negative radius should be a no-op")
	}
}

func TestReset(t *testing.T) {
	cam := NewCamera()
	cam.RotateX(1)
	cam.RotateY(2)
	cam.RotateZ(3)
	cam.ZoomIn()

	cam.Reset()
	if cam.RotX != 0 || cam.RotY != 0 || cam.RotZ != 0 {
		t.Error("reset left rotation behind")
	}
	if cam.Zoom != 1.0 {
		t.Errorf("expected zoom 1.0 after reset, got %f", cam.Zoom)
	}
}

func TestRotatePoint(t *testing.T) {
	cam := NewCamera()

	p := cam.RotatePoint(atom.Vec3{X: 1, Y: 2, Z: 3})
	if p.X != 1 || p.Y != 2 || p.Z != 3 {
		t.Error("identity rotation moved the point")
	}

	cam.RotateY(math.Pi / 2)
	p = cam.RotatePoint(atom.Vec3{X: 1})
	if math.Abs(p.X) > 1e-9 || math.Abs(p.Y) > 1e-9 || math.Abs(p.Z+1) > 1e-9 {
		t.Errorf("quarter turn about Y: expected (0,0,-1), got (%f,%f,%f)", p.X, p.Y, p.Z)
	}
}

func TestRender3DPoint(t *testing.T) {
	c := NewCanvas(20, 10)
	w := NewWireframe()
	w.AddPoint(atom.Vec3{}, InkProton)

	Render3D(c, w, NewCamera())
	if c.Grid[5][10] == 0x2800 {
		t.Fatal("origin point left the center cell empty")
	}
	if c.Ink[5][10] != InkProton {
		t.Errorf("expected proton ink at center, got %d", c.Ink[5][10])
	}
}

func TestRender3DElectronDot(t *testing.T) {
	c := NewCanvas(20, 10)
	w := NewWireframe()
	w.AddPoint(atom.Vec3{}, InkElectron)

	Render3D(c, w, NewCamera())
	if c.Grid[5][10] != 0x281b {
		t.Errorf("expected a 2x2 dot (0x281b) at center, got %#x", c.Grid[5][10])
	}
}

func TestRender3DInkPriorityOverDepth(t *testing.T) {
	c := NewCanvas(20, 10)
	w := NewWireframe()
	w.AddPoint(atom.Vec3{Z: 5}, InkProton)
	w.AddPoint(atom.Vec3{Z: -5}, InkElectron)

	Render3D(c, w, NewCamera())
	if c.Ink[5][10] != InkElectron {
		t.Errorf("electron should keep the shared cell, got ink %d", c.Ink[5][10])
	}
}

func TestRender3DNilArgs(t *testing.T) {
	Render3D(nil, NewWireframe(), NewCamera())
	Render3D(NewCanvas(2, 2), nil, NewCamera())
	Render3D(NewCanvas(2, 2), NewWireframe(), nil)
}

func TestWireframeClear(t *testing.T) {
	w := NewWireframe()
	w.AddPoint(atom.Vec3{}, InkProton)
	w.AddEdge(atom.Vec3{}, atom.Vec3{X: 1}, InkOrbit)

	if len(w.Edges) != 2 {
		t.Fatalf("expected 2 edges, got %d", len(w.Edges))
	}
	w.Clear()
	if len(w.Edges) != 0 {
		t.Error("clear left edges behind")
	}
}
