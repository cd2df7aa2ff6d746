// Package viz renders iteration spaces for the terminal.
//
//   - [RenderGrid]: the flat offset of every cell, slice by slice
//   - [PlotComponent] / [PlotCoords]: one coordinate component against the
//     flat index, drawn with asciigraph
//
// Styles are lipgloss; they degrade to plain text when stdout is not a
// terminal.
package viz
