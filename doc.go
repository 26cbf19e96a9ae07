// Package metronav is an in-memory route-planning toolkit for labeled
// transit networks — stations, lines, and transfer-aware shortest paths.
//
// What metronav provides:
//
//   - transit/  — the network itself: stations and directed weighted
//     edges, each carrying the line that serves it
//   - planner/  — transfer-aware Dijkstra: minimum-cost routes where
//     switching lines mid-journey costs extra
//   - mapfile/  — YAML network definitions, validated and buildable,
//     plus an embedded NYC-flavored sample map
//   - display/  — colored terminal rendering of maps and route
//     instructions (pure line→attribute mapping, no global state)
//   - server/   — a small JSON API over the planner with Prometheus
//     request metrics
//
// The network is built once and treated as read-only by the planner, so
// any number of route queries may run concurrently against the same
// graph. The transfer penalty is charged lazily during the search,
// based on the line used to reach each station: the same track segment
// can cost different amounts depending on how you arrived.
//
// Quick ASCII sketch of the embedded sample map:
//
//	Times Sq ──4── 42nd St ──3── Grand Central
//	                  │5               │4 (interchange)
//	               34th St ──4──── Union Sq
//
// See cmd/metronav for the interactive navigator and cmd/metronavd for
// the HTTP daemon.
package metronav
