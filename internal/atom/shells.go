package atom

import (
	"math"
	"math/rand"
)

// Shell is one electron shell. Radius, speed, and offsets are fixed by the
// shell index and occupancy; the tilt is drawn once at build time. Electron
// positions are derived from these values and the caller's clock, never
// stored.
type Shell struct {
	Index   int
	Count   int
	Radius  float64
	Speed   float64
	Offsets []float64
	Tilt    Tilt
}

// BuildShells converts shell occupancies (innermost first) into orbit
// parameters. Shell s orbits at (s+1)*ShellSpacing with speed
// BaseSpeed/(s+1); electrons are phase-shifted evenly around the orbit.
// Each shell gets a random tilt from rng; a nil rng leaves shells flat.
func BuildShells(counts []int, rng *rand.Rand) []Shell {
	if len(counts) == 0 {
		return nil
	}

	shells := make([]Shell, 0, len(counts))
	for s, count := range counts {
		if count <= 0 {
			continue
		}
		sh := Shell{
			Index:   s,
			Count:   count,
			Radius:  float64(s+1) * ShellSpacing,
			Speed:   BaseSpeed / float64(s+1),
			Offsets: make([]float64, count),
		}
		for e := 0; e < count; e++ {
			sh.Offsets[e] = float64(e) / float64(count) * 2 * math.Pi
		}
		if rng != nil {
			sh.Tilt = Tilt{
				X: rng.Float64() * 2 * math.Pi,
				Y: rng.Float64() * 2 * math.Pi,
				Z: rng.Float64() * 2 * math.Pi,
			}
		}
		shells = append(shells, sh)
	}
	return shells
}

// ElectronAt returns the position of electron e at clock time t. The orbit
// runs in the shell's tilted plane with a slow out-of-plane wobble at half
// the orbital frequency.
func (s *Shell) ElectronAt(e int, t float64) Vec3 {
	a := t*s.Speed + s.Offsets[e]
	sin, cos := FastSinCos(a)
	p := Vec3{
		X: s.Radius * cos,
		Y: FastSin(a*0.5) * s.Radius * wobble,
		Z: s.Radius * sin,
	}
	return s.Tilt.Apply(p)
}

// OrbitPoint returns the point at angle a on the shell's guide ring (the
// flat orbit circle before wobble), in the tilted plane. Renderers sample
// it to draw the ring.
func (s *Shell) OrbitPoint(a float64) Vec3 {
	sin, cos := FastSinCos(a)
	return s.Tilt.Apply(Vec3{X: s.Radius * cos, Z: s.Radius * sin})
}
