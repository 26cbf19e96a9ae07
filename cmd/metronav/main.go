// Command metronav is an interactive terminal navigator: it prints the
// transit map, lets you pick a source and destination by number, and
// prints the cheapest route with transfer instructions.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/metronav/metronav/display"
	"github.com/metronav/metronav/mapfile"
	"github.com/metronav/metronav/planner"
)

var (
	mapPath = flag.String("map", "",
		"YAML network definition to load (defaults to the embedded sample map)")
	transferCost = flag.Int64("transfer", -1,
		"transfer penalty override; -1 keeps the network file's value")
)

func main() {
	flag.Parse()

	network := mapfile.Sample()
	if *mapPath != "" {
		loaded, err := mapfile.Load(*mapPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		network = loaded
	}

	fare := network.TransferCost
	if *transferCost >= 0 {
		fare = *transferCost
	}

	graph := network.Graph()
	palette := display.DefaultPalette()
	display.WriteMap(os.Stdout, graph, palette)

	stations := graph.Stations()
	fmt.Printf("Welcome to %s\n", network.Name)
	fmt.Println("Available stations:")
	for i, name := range stations {
		fmt.Printf("%d. %s\n", i+1, name)
	}

	var srcIndex, destIndex int
	fmt.Print("\nEnter source station number: ")
	fmt.Fscan(os.Stdin, &srcIndex)
	fmt.Print("Enter destination station number: ")
	fmt.Fscan(os.Stdin, &destIndex)

	if srcIndex < 1 || srcIndex > len(stations) ||
		destIndex < 1 || destIndex > len(stations) {
		fmt.Println("Invalid station number(s) entered.")
		os.Exit(1)
	}

	src := stations[srcIndex-1]
	dest := stations[destIndex-1]

	route, err := planner.Plan(graph, src, dest, fare)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if !route.Reachable {
		fmt.Printf("No available path from %s to %s\n", src, dest)
		return
	}

	fmt.Printf("\nMinimum cost: %d\nRoute Instructions:\n", route.Cost)
	display.WriteRoute(os.Stdout, route, palette)
}
