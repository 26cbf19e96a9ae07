package display

import (
	"fmt"
	"io"

	"github.com/metronav/metronav/planner"
	"github.com/metronav/metronav/transit"
)

// ANSI terminal attributes used by palettes.
const (
	Reset   = "\033[0m"
	Red     = "\033[31m"
	Green   = "\033[32m"
	Blue    = "\033[34m"
	Magenta = "\033[35m"
)

// Palette maps a line label to the ANSI attribute used to render it.
// It is a plain value: copy it, extend it, or build your own.
type Palette map[string]string

// DefaultPalette colors the sample network's lines: 1=red, 2=green,
// 3=blue, Interchange=magenta.
func DefaultPalette() Palette {
	return Palette{
		"1":           Red,
		"2":           Green,
		"3":           Blue,
		"Interchange": Magenta,
	}
}

// Colorize wraps text in the attribute registered for line, or returns
// it unchanged for lines the palette does not know.
func (p Palette) Colorize(line, text string) string {
	attr, ok := p[line]
	if !ok {
		return text
	}

	return attr + text + Reset
}

// WriteMap renders the adjacency of g station by station, sorted
// lexicographically for reproducible output.
func WriteMap(w io.Writer, g *transit.Graph, p Palette) {
	fmt.Fprintf(w, "\nTransit Map:\n")
	for _, station := range g.Stations() {
		fmt.Fprintf(w, "%s:\n", station)
		for _, e := range g.Neighbors(station) {
			fmt.Fprintf(w, "    -> %s (%s, cost %d)\n",
				e.To, p.Colorize(e.Line, "Line "+e.Line), e.Cost)
		}
		fmt.Fprintln(w)
	}
}

// WriteRoute renders step-by-step instructions for a reachable route:
// where to start, which line to take, where to transfer, and each
// arrival in order. Unreachable routes render a single notice line;
// deciding what that means is the caller's business.
func WriteRoute(w io.Writer, r planner.Route, p Palette) {
	if !r.Reachable || len(r.Hops) == 0 {
		fmt.Fprintln(w, "No available path")
		return
	}

	fmt.Fprintf(w, "Start at %s\n", r.Hops[0].Station)
	currentLine := ""
	for i := 1; i < len(r.Hops); i++ {
		hop := r.Hops[i]
		if hop.Line != currentLine {
			if currentLine == "" {
				fmt.Fprintf(w, "  -> Take %s\n", p.Colorize(hop.Line, "Line "+hop.Line))
			} else {
				fmt.Fprintf(w, "  -> At %s, transfer to %s\n",
					r.Hops[i-1].Station, p.Colorize(hop.Line, "Line "+hop.Line))
			}
			currentLine = hop.Line
		}
		fmt.Fprintf(w, "  -> Arrive at %s\n", hop.Station)
	}
}
