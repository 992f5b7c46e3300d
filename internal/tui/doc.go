// Package tui is the interactive terminal viewer: a 3D atom rendered to a
// braille canvas, a 2D periodic grid, substring search over the element
// table, and Hebrew panels laid out right-to-left.
//
// All state lives in [Model] and is mutated only from the bubbletea update
// loop. A [TickMsg] arrives at the configured frame rate and advances the
// animation clock unless the viewer is paused; electron positions are a
// pure function of that clock, so pausing freezes the scene exactly and
// resuming continues from the same pose.
package tui
