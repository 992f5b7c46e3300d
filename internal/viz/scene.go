package viz

import (
	"math"
	"math/rand"

	"github.com/yarbel/yesodot/internal/atom"
)

// orbitSegments is the sampling density of each shell's guide ring.
const orbitSegments = 64

// BuildAtomScene composes the wireframe for one animation frame: nucleus
// particles, a guide ring per shell, and every electron at its clock
// position. The wireframe is rebuilt per frame; geometry comes entirely
// from the atom model and the clock, so a frozen clock yields an
// identical scene.
func BuildAtomScene(a *atom.Atom, clock float64) *Wireframe {
	w := NewWireframe()
	if a == nil {
		return w
	}

	for _, p := range a.Nucleus {
		ink := InkNeutron
		if p.Kind == atom.Proton {
			ink = InkProton
		}
		w.AddPoint(p.Pos, ink)
	}

	for i := range a.Shells {
		s := &a.Shells[i]

		prev := s.OrbitPoint(0)
		for k := 1; k <= orbitSegments; k++ {
			cur := s.OrbitPoint(float64(k) / orbitSegments * 2 * math.Pi)
			w.AddEdge(prev, cur, InkOrbit)
			prev = cur
		}

		for e := 0; e < s.Count; e++ {
			w.AddPoint(s.ElectronAt(e, clock), InkElectron)
		}
	}
	return w
}

// Starfield scatters count stars across a w x h cell canvas, in sub-pixel
// coordinates. Regenerate on resize; the field is a static backdrop, so it
// keeps its own rand source and never touches atom tilts.
func Starfield(w, h, count int, rng *rand.Rand) [][2]int {
	if w <= 0 || h <= 0 || count <= 0 {
		return nil
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	pts := make([][2]int, count)
	for i := range pts {
		pts[i] = [2]int{rng.Intn(w * 2), rng.Intn(h * 4)}
	}
	return pts
}
