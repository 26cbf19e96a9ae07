// Package mapfile loads transit network definitions from YAML and
// builds transit.Graph values from them.
//
// A network file names the network, sets the transfer penalty, and
// lists edges:
//
//	name: NYC Subway (sample)
//	transfer_cost: 2
//	edges:
//	  - from: Times Sq
//	    to: 42nd St
//	    cost: 4
//	    line: "1"
//	  - from: Grand Central
//	    to: Union Sq
//	    cost: 4
//	    line: Interchange
//	    one_way: false
//
// Edges are bidirectional unless one_way is set. Definitions are
// validated after unmarshalling (required names, non-negative costs);
// a failed validation surfaces as ErrInvalidNetwork with the offending
// field in the wrapped message.
//
// Sample returns the embedded NYC-flavored demo network used by the
// cmd/ binaries and throughout the test suites.
package mapfile
