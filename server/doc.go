// Package server exposes a transit network and its route planner over a
// small JSON API.
//
// Endpoints:
//
//	GET /api/stations              – sorted station list
//	GET /api/stations/{name}       – outgoing edges of one station
//	GET /api/route?from=&to=       – plan a route; optional transfer_cost
//	                                 overrides the server default
//	GET /health                    – liveness probe
//	GET /metrics                   – Prometheus metrics
//
// An unreachable route is a successful response with reachable=false,
// matching the planner's contract that "no path" is a result, not an
// error. Only malformed requests produce non-200 statuses.
//
// The server holds the graph read-only, so handlers serve concurrent
// requests without locking beyond what transit.Graph already does.
package server
