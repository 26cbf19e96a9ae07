// Package transit defines the labeled, weighted transit network that
// the planner package searches.
//
// A Graph maps each station name to its ordered list of outgoing Edges.
// Every Edge carries a travel cost and the line that serves it; parallel
// edges between the same pair of stations are allowed and model
// interchange stations served by several lines.
//
// Stations have no intrinsic attributes beyond their name: they come
// into existence the first time they appear as an edge endpoint. Edges
// are immutable once added.
//
// Construction is guarded by a read/write mutex so a graph may be
// assembled from several goroutines, but the intended lifecycle is
// simpler: build the network once, then treat it as read-only while any
// number of route queries run against it concurrently.
//
// Costs are not validated. Negative costs violate the non-negative
// weight precondition of the planner and silently produce non-minimal
// routes; supplying sane costs is the caller's contract.
package transit
