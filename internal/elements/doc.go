// Package elements provides the periodic table dataset and element lookups.
//
// The package holds a static table of all 118 chemical elements with Hebrew
// localization (names and one-line summaries), electron shell occupancies,
// and 2D layout coordinates for the standard 18-column periodic grid:
//
//   - [Element]: a single element record
//   - [Category]: chemical family (alkali metal, halogen, noble gas, ...)
//   - [Phase]: standard-state phase (solid, liquid, gas, unknown)
//   - [Search]: substring filtering over symbol, names, and atomic number
//
// # Derived quantities
//
// Neutron counts are not stored; they are estimated from the atomic mass:
//
//	n := el.Neutrons() // round(mass) - Z, clamped at zero
//
// Records with an unparseable mass degrade to zero neutrons rather than
// failing, so rendering code never has to handle a dataset error.
package elements
