// Package display renders transit maps and planned routes for
// terminals.
//
// Coloring is a pure mapping from line label to ANSI attribute, owned
// by a Palette value — the graph and planner packages never see or
// produce display formatting, and there is no global formatting state.
// Lines absent from the palette render unstyled.
//
// All rendering goes through an io.Writer, so output is as testable as
// it is printable.
package display
