// Package viz renders atoms to the terminal.
//
// The pipeline runs in three stages:
//
//   - [BuildAtomScene]: turns an atom into a [Wireframe] of nucleus points,
//     orbit rings, and electron positions for a given clock value
//   - [Render3D]: projects the wireframe through a [Camera] onto a [Canvas]
//   - [Canvas.Render]: rasterizes Braille cells into styled terminal output
//
// Every cell carries an [Ink] tag so a [Theme] can color protons, neutrons,
// electrons, orbits, and background stars independently. When two dots land
// in the same cell the higher-priority ink wins.
//
// # Backgrounds
//
// Four backgrounds ship with the package: space, dark, gradient, and
// minimal. [GetTheme] resolves a [Background] to its [Theme] and
// [Background.Next] cycles through them in order.
package viz
