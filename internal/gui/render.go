package gui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/yarbel/yesodot/internal/atom"
)

// sceneScale blows the atom model up to comfortable world units.
const sceneScale = 1.6

const orbitSegments = 96

func vec(p atom.Vec3) rl.Vector3 {
	return rl.NewVector3(
		float32(p.X*sceneScale),
		float32(p.Y*sceneScale),
		float32(p.Z*sceneScale),
	)
}

func (a *App) drawAtom() {
	rl.BeginMode3D(a.Camera)

	if a.Pal.Stars {
		a.drawStars()
	}
	a.drawNucleus()
	if a.ShowOrbits {
		a.drawOrbits()
	}
	a.drawElectrons()

	rl.EndMode3D()
}

func (a *App) drawStars() {
	n := len(a.Stars) / 3
	for i := 0; i < n; i++ {
		pos := rl.NewVector3(
			float32(a.Stars[i*3]),
			float32(a.Stars[i*3+1]),
			float32(a.Stars[i*3+2]),
		)
		rl.DrawPoint3D(pos, a.Pal.Star)
	}
}

func (a *App) drawNucleus() {
	for _, p := range a.Atom.Nucleus {
		col := a.Pal.Neutron
		if p.Kind == atom.Proton {
			col = a.Pal.Proton
		}
		rl.DrawSphere(vec(p.Pos), float32(0.14*sceneScale), col)
	}
}

// drawOrbits traces each shell's tilted ring with line segments, the same
// parametric circle the electrons ride.
func (a *App) drawOrbits() {
	for i := range a.Atom.Shells {
		s := &a.Atom.Shells[i]
		prev := vec(s.OrbitPoint(0))
		for seg := 1; seg <= orbitSegments; seg++ {
			angle := float64(seg) / float64(orbitSegments) * 2 * math.Pi
			next := vec(s.OrbitPoint(angle))
			rl.DrawLine3D(prev, next, a.Pal.Orbit)
			prev = next
		}
	}
}

func (a *App) drawElectrons() {
	for i := range a.Atom.Shells {
		s := &a.Atom.Shells[i]
		for e := 0; e < s.Count; e++ {
			pos := vec(s.ElectronAt(e, a.Clock))
			rl.DrawBillboard(a.Camera, a.ParticleTex, pos, float32(0.5*sceneScale), a.Pal.Electron)
			rl.DrawSphere(pos, float32(0.06*sceneScale), rl.White)
		}
	}
}
