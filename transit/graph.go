package transit

import "sort"

// AddEdge inserts a single directed edge from one station to another.
// The origin station is created if absent; the destination may exist
// only as a target until edges out of it are added.
// Thread-safe: acquires a write lock.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, cost int64, line string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.adj[from] = append(g.adj[from], Edge{To: to, Cost: cost, Line: line})
}

// AddBidirectionalEdge inserts two independent directed edges, a→b and
// b→a, with the same cost and line. There is no single logical
// bidirectional edge record: a caller may later add a conflicting
// directed edge and make the costs asymmetric.
// Thread-safe: acquires a write lock (twice, via AddEdge).
//
// Complexity: O(1) amortized.
func (g *Graph) AddBidirectionalEdge(a, b string, cost int64, line string) {
	g.AddEdge(a, b, cost, line)
	g.AddEdge(b, a, cost, line)
}

// Neighbors returns a copy of the outgoing edges of the given station,
// in insertion order. Stations that only appear as destinations, and
// stations the graph has never seen, both yield an empty slice.
// Thread-safe: acquires a read lock.
//
// Complexity: O(d) where d is the out-degree.
func (g *Graph) Neighbors(station string) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	edges := g.adj[station]
	out := make([]Edge, len(edges))
	copy(out, edges)

	return out
}

// HasStation reports whether the station has at least one outgoing
// edge. A station known only as a destination is not reported here;
// the planner treats such stations as reachable dead ends.
// Thread-safe: acquires a read lock.
//
// Complexity: O(1)
func (g *Graph) HasStation(station string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adj[station]

	return ok
}

// Stations returns every station that has outgoing edges, sorted
// lexicographically ascending. Sorted output keeps enumeration (and
// anything rendered from it) reproducible across runs.
// Thread-safe: acquires a read lock.
//
// Complexity: O(V log V)
func (g *Graph) Stations() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, 0, len(g.adj))
	for id := range g.adj {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// EdgeCount returns the total number of directed edge records.
// A bidirectional insertion counts as two.
// Thread-safe: acquires a read lock.
//
// Complexity: O(V)
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var n int
	for _, edges := range g.adj {
		n += len(edges)
	}

	return n
}
