// Package atom builds the geometric model of a single atom for rendering.
//
// The model is derived, not simulated: nucleus positions are fixed at build
// time and every electron position is a pure function of the animation
// clock, so renderers stay stateless between frames:
//
//   - [PlaceNucleus]: protons and neutrons on a Fibonacci sphere
//   - [Shell]: one electron shell with radius, speed, phase offsets, and tilt
//   - [Atom]: the per-element aggregate, rebuilt on each selection
//   - [TrigTable]: interpolated sin/cos lookups for the per-frame path
//
// # Nucleus placement
//
// Particles are distributed over a sphere of radius [NucleusRadius] using
// the Fibonacci lattice: for particle i of n,
//
//	phi   = acos(-1 + 2i/n)
//	theta = sqrt(n*π) * phi
//
// Protons occupy the leading indices, so small atoms read as proton-heavy
// at a glance. A zero-particle nucleus produces no geometry.
//
// # Electron motion
//
// Shell s orbits at radius (s+1)·[ShellSpacing] with angular speed
// [BaseSpeed]/(s+1); inner shells visibly outrun outer ones. Electrons on a
// shell share the orbit with evenly spaced phase offsets, and each shell is
// tilted by three Euler angles drawn once from the caller's rand source
// when the atom is built. Passing the same source rebuilds the same pose.
package atom
