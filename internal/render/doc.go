// Package render maps a data array and the current step to drawable
// primitives. Nothing here owns state: every function is a pure mapping of
// its arguments, so the front end can redraw from scratch on each frame.
//
// Coordinates are terminal cells. Bar heights are measured in eighths of a
// cell row so a front end can draw partial blocks (▁ through █).
package render
