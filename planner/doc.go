// Package planner computes minimum-cost routes through a transit.Graph
// using a transfer-aware variant of Dijkstra's algorithm.
//
// Every frontier state carries, alongside the accumulated cost and the
// current station, the line just used to arrive there. When a relaxed
// edge belongs to a different line than the one the state arrived on, a
// fixed transfer penalty is added to the candidate cost. The penalty is
// charged lazily at relaxation time — the same edge contributes
// different effective costs depending on the path's history, which a
// plain static-weight shortest path cannot express.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each frontier pop either finalizes a station or is discarded as
//     stale; up to E pushes under lazy decrease-key.
//   - Space: O(V + E)
//   - O(V) for the best-cost and predecessor maps, O(E) worst case in
//     the frontier.
//
// Determinism:
//
//   - Frontier ties are broken by (cost, station, line) ascending, so
//     equal-cost route queries return the same route on every run.
//
// Unreachable destinations are a normal outcome, not an error: the
// returned Route reports Reachable=false with the CostUnreachable
// sentinel and an empty hop list. Errors are reserved for malformed
// calls (nil graph, empty station names).
//
// Preconditions: edge costs and the transfer penalty must be
// non-negative. The planner does not validate them; negative values
// break the early-termination guarantee and may silently yield
// non-minimal routes.
package planner
