// Package planner implements the transfer-aware shortest-path search.
//
// See doc.go for the algorithm contract and complexity notes.
package planner

import (
	"container/heap"

	"github.com/metronav/metronav/transit"
)

// Plan computes the minimum-cost route from source to destination in g,
// charging transferCost once for every line change along the way.
//
// Returns:
//
//   - Route: the planning outcome. Reachable=false (with Cost=-1 and no
//     hops) is a normal result, not an error — many queries legitimately
//     have no path. Unknown source or destination names are treated the
//     same way rather than as a distinct error kind.
//   - err: ErrNilGraph or ErrEmptyStation for malformed calls.
//
// source == destination short-circuits to a zero-cost single-hop route
// regardless of transferCost, even for names the graph has never seen.
//
// Options customization:
//
//   - WithMaxCost(x): states costing more than x are not explored.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Plan(g *transit.Graph, source, destination string, transferCost int64, opts ...Option) (Route, error) {
	// 1) Build Options from functional arguments.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the call shape. Unreachable queries are results, but a
	//    nil graph or an unnamed station is a programming error.
	if source == "" || destination == "" {
		return Route{}, ErrEmptyStation
	}
	if g == nil {
		return Route{}, ErrNilGraph
	}

	// 3) Trivial route: already there. No line is ever boarded.
	if source == destination {
		return Route{
			Reachable: true,
			Cost:      0,
			Hops:      []Hop{{Station: source}},
		}, nil
	}

	// 4) Run the search and reconstruct.
	r := &runner{
		g:    g,
		cfg:  cfg,
		fare: transferCost,
		dist: make(map[string]int64),
		prev: make(map[string]backlink),
	}
	r.search(source, destination)

	return r.route(source, destination), nil
}

// backlink records, per station, the predecessor on the best-known path
// and the line used on the edge that achieved it. It is a
// back-reference, not ownership: many stations may share a predecessor.
type backlink struct {
	station string
	line    string
}

// state is one frontier entry: a station, the accumulated cost of
// reaching it, and the line just used to arrive (empty at the source).
type state struct {
	cost    int64
	station string
	line    string
}

// runner holds the mutable state of a single Plan execution.
type runner struct {
	g    *transit.Graph
	cfg  Options
	fare int64 // transfer penalty per line change

	// dist maps station → best-known cost. Absence means +∞; stations
	// are only materialized once discovered, so destination-only
	// stations behave correctly without pre-seeding.
	dist map[string]int64
	prev map[string]backlink
	pq   frontier
}

// search runs the main Dijkstra loop from source, stopping early once
// destination is finalized. Early termination is safe because every
// edge cost and the transfer penalty are non-negative by contract.
func (r *runner) search(source, destination string) {
	r.dist[source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &state{cost: 0, station: source, line: ""})

	for r.pq.Len() > 0 {
		cur := heap.Pop(&r.pq).(*state)

		// Lazy decrease-key: a cheaper entry for this station was already
		// processed, so this one is stale.
		if cur.cost > r.dist[cur.station] {
			continue
		}
		if cur.station == destination {
			break
		}

		r.relax(cur)
	}
}

// relax examines each outgoing edge of the current state and attempts
// to improve its destination's best-known cost. The transfer penalty is
// charged here, based on the line the state arrived on — not a static
// edge property.
func (r *runner) relax(cur *state) {
	for _, e := range r.g.Neighbors(cur.station) {
		var extra int64
		if cur.line != "" && cur.line != e.Line {
			extra = r.fare
		}
		candidate := cur.cost + e.Cost + extra

		if candidate > r.cfg.MaxCost {
			continue
		}
		if best, seen := r.dist[e.To]; seen && candidate >= best {
			continue
		}

		r.dist[e.To] = candidate
		r.prev[e.To] = backlink{station: cur.station, line: e.Line}
		heap.Push(&r.pq, &state{cost: candidate, station: e.To, line: e.Line})
	}
}

// route reconstructs the final Route by walking predecessor links from
// destination back to source, then reversing into travel order.
func (r *runner) route(source, destination string) Route {
	best, ok := r.dist[destination]
	if !ok {
		return Route{Reachable: false, Cost: CostUnreachable, Hops: []Hop{}}
	}

	var hops []Hop
	for cur := destination; cur != source; {
		link := r.prev[cur]
		hops = append(hops, Hop{Station: cur, Line: link.line})
		cur = link.station
	}
	hops = append(hops, Hop{Station: source}) // no incoming line at the source
	for i, j := 0, len(hops)-1; i < j; i, j = i+1, j-1 {
		hops[i], hops[j] = hops[j], hops[i]
	}

	return Route{Reachable: true, Cost: best, Hops: hops}
}

// frontier is a min-heap of *state ordered by cost ascending, with ties
// broken by station then line so equal-cost plans are reproducible.
// Lazy decrease-key: improvements push duplicates; stale entries are
// discarded on pop against the dist map.
type frontier []*state

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].cost != f[j].cost {
		return f[i].cost < f[j].cost
	}
	if f[i].station != f[j].station {
		return f[i].station < f[j].station
	}

	return f[i].line < f[j].line
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push appends x; called by heap.Push, x must be *state.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(*state)) }

// Pop removes and returns the last element; called by heap.Pop.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}
