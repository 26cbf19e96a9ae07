// Package planner declares the result types, sentinel errors, and
// configuration options for transfer-aware route planning.
package planner

import (
	"errors"
	"math"
)

// CostUnreachable is the sentinel cost reported for routes where no
// path exists between source and destination.
const CostUnreachable int64 = -1

// Sentinel errors returned by Plan.
var (
	// ErrNilGraph indicates that a nil *transit.Graph was passed to Plan.
	ErrNilGraph = errors.New("planner: graph is nil")

	// ErrEmptyStation indicates that the source or destination name is empty.
	ErrEmptyStation = errors.New("planner: station name is empty")
)

// Hop is one step of a computed route: a station and the line used on
// the edge that reached it. The first hop of every route is the source
// itself and carries an empty Line, since no line is used to "arrive"
// at the start.
type Hop struct {
	Station string
	Line    string
}

// Route is the result of a single planning query. It is a fresh value
// owned by the caller; queries share no mutable state.
//
// When Reachable is false, Cost is CostUnreachable and Hops is empty.
// When Reachable is true, consecutive hops correspond to actual graph
// edges labeled with the stated line, and Cost equals the sum of those
// edge costs plus one transfer penalty per line change.
type Route struct {
	Reachable bool
	Cost      int64
	Hops      []Hop
}

// Transfers counts the line changes along the route. The synthetic
// first hop (empty line) does not count as a change.
func (r Route) Transfers() int {
	var n int
	current := ""
	for _, h := range r.Hops {
		if h.Line == "" {
			continue // synthetic source hop
		}
		if current != "" && h.Line != current {
			n++
		}
		current = h.Line
	}

	return n
}

// Options configures a planning query beyond its required arguments.
//
// MaxCost – cap on accumulated cost; states beyond it are not explored.
// Must be ≥ 0. Default is math.MaxInt64 (no cap).
type Options struct {
	MaxCost int64
}

// Option is a functional option for configuring Plan.
type Option func(*Options)

// ErrBadMaxCost reports a negative MaxCost passed to WithMaxCost.
var ErrBadMaxCost = errors.New("planner: MaxCost must be non-negative")

// WithMaxCost stops the search from exploring states whose accumulated
// cost (including transfer penalties) exceeds max. Destinations beyond
// the cap are reported unreachable.
// Must pass a non-negative value; negative values panic with ErrBadMaxCost.
func WithMaxCost(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// DefaultOptions returns the Options used when no functional options
// are supplied: no cost cap.
func DefaultOptions() Options {
	return Options{MaxCost: math.MaxInt64}
}
