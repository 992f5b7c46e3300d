package atom

import (
	"math/rand"

	"github.com/yarbel/yesodot/internal/elements"
)

// Atom is the renderable model of one element: nucleus geometry plus shell
// orbit parameters. Build it once per selection and keep it until the
// selection changes; per-frame electron positions come from
// [Shell.ElectronAt] so nothing here mutates during animation.
type Atom struct {
	Element *elements.Element
	Nucleus []Particle
	Shells  []Shell
}

// New builds the model for an element. The neutron count is estimated from
// the atomic mass (see elements.Element.Neutrons); shell tilts are drawn
// from rng. A nil element yields an empty model that renders nothing.
func New(el *elements.Element, rng *rand.Rand) *Atom {
	if el == nil {
		return &Atom{}
	}
	return &Atom{
		Element: el,
		Nucleus: PlaceNucleus(el.Number, el.Neutrons()),
		Shells:  BuildShells(el.Shells, rng),
	}
}

// Radius returns the extent of the model: the outermost shell radius, or
// the nucleus radius when there are no shells. Cameras use it to fit the
// whole atom in view.
func (a *Atom) Radius() float64 {
	if n := len(a.Shells); n > 0 {
		return a.Shells[n-1].Radius
	}
	return NucleusRadius
}

// Protons counts the proton particles in the nucleus.
func (a *Atom) Protons() int {
	n := 0
	for _, p := range a.Nucleus {
		if p.Kind == Proton {
			n++
		}
	}
	return n
}

// Neutrons counts the neutron particles in the nucleus.
func (a *Atom) Neutrons() int {
	return len(a.Nucleus) - a.Protons()
}

// Electrons counts the electrons across all shells.
func (a *Atom) Electrons() int {
	n := 0
	for _, s := range a.Shells {
		n += s.Count
	}
	return n
}
