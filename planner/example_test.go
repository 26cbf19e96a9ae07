// File: planner/example_test.go
package planner_test

import (
	"fmt"
	"log"

	"github.com/metronav/metronav/planner"
	"github.com/metronav/metronav/transit"
)

// ExamplePlan demonstrates a route where the transfer penalty changes
// the answer: with a fare of 2, staying on one line beats the shorter
// two-line shortcut.
//
// Scenario:
//
//	A ──2(red)── B ──2(red)── D
//	A ──1(blue)─ C ──2(red)── D
//
// Edge costs alone favor A→C→D (3), but arriving at C on blue makes the
// C→D red edge cost 2+fare.
func ExamplePlan() {
	g := transit.NewGraph()
	g.AddEdge("A", "B", 2, "red")
	g.AddEdge("B", "D", 2, "red")
	g.AddEdge("A", "C", 1, "blue")
	g.AddEdge("C", "D", 2, "red")

	route, err := planner.Plan(g, "A", "D", 2)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("cost:", route.Cost)
	fmt.Println("transfers:", route.Transfers())
	for _, hop := range route.Hops {
		if hop.Line == "" {
			fmt.Println("start at", hop.Station)
			continue
		}
		fmt.Printf("%s (line %s)\n", hop.Station, hop.Line)
	}

	// Output:
	// cost: 4
	// transfers: 0
	// start at A
	// B (line red)
	// D (line red)
}

// ExamplePlan_unreachable shows that "no path" is a regular result.
func ExamplePlan_unreachable() {
	g := transit.NewGraph()
	g.AddEdge("A", "B", 1, "red")
	g.AddEdge("X", "Y", 1, "ferry")

	route, _ := planner.Plan(g, "A", "Y", 0)
	fmt.Println("reachable:", route.Reachable)
	fmt.Println("cost:", route.Cost)

	// Output:
	// reachable: false
	// cost: -1
}
