package atom

import "math"

// Geometry constants, in world units. The camera fits the outermost shell
// to the viewport, so only the ratios matter.
const (
	// NucleusRadius is the radius of the Fibonacci sphere nucleons sit on.
	NucleusRadius = 0.35

	// ShellSpacing separates consecutive electron shells.
	ShellSpacing = 0.55

	// BaseSpeed is the angular speed of the innermost shell, rad/s.
	BaseSpeed = 1.2

	// wobble scales the out-of-plane oscillation of orbiting electrons.
	wobble = 0.2
)

// ParticleKind distinguishes nucleons.
type ParticleKind uint8

const (
	Proton ParticleKind = iota
	Neutron
)

// Particle is one nucleon with its fixed position on the nucleus sphere.
type Particle struct {
	Pos  Vec3
	Kind ParticleKind
}

// PlaceNucleus distributes protons+neutrons nucleons over a sphere of
// radius NucleusRadius using the Fibonacci lattice. Protons fill the
// leading indices. Zero particles yields nil.
func PlaceNucleus(protons, neutrons int) []Particle {
	if protons < 0 {
		protons = 0
	}
	if neutrons < 0 {
		neutrons = 0
	}
	total := protons + neutrons
	if total == 0 {
		return nil
	}

	parts := make([]Particle, 0, total)
	for i := 0; i < total; i++ {
		phi := math.Acos(-1 + 2*float64(i)/float64(total))
		theta := math.Sqrt(float64(total)*math.Pi) * phi

		kind := Neutron
		if i < protons {
			kind = Proton
		}
		parts = append(parts, Particle{
			Pos: Vec3{
				X: NucleusRadius * math.Cos(theta) * math.Sin(phi),
				Y: NucleusRadius * math.Sin(theta) * math.Sin(phi),
				Z: NucleusRadius * math.Cos(phi),
			},
			Kind: kind,
		})
	}
	return parts
}
