// Package transit declares the Edge and Graph types and the NewGraph
// constructor. Mutating and querying methods live in graph.go.
package transit

import "sync"

// Edge is one directed connection out of a station.
//
// To is the destination station name, Cost the non-negative travel
// cost, and Line the label of the service that runs this segment.
// Line labels are compared verbatim by the planner to detect transfers.
type Edge struct {
	// To is the destination station name.
	To string

	// Cost is the travel cost of traversing this edge.
	Cost int64

	// Line identifies the service ("1", "2", "Interchange", …).
	Line string
}

// Graph is an adjacency-list transit network: station name → outgoing
// edges, in insertion order.
//
// The zero value is not usable; construct with NewGraph.
type Graph struct {
	mu  sync.RWMutex // guards adj
	adj map[string][]Edge
}

// NewGraph creates an empty transit network.
//
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{adj: make(map[string][]Edge)}
}
