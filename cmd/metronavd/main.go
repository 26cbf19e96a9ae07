// Command metronavd serves a transit network over HTTP: station
// enumeration, route planning, and Prometheus metrics.
//
// Configuration comes from flags, with METRONAV_ADDR (optionally via a
// .env file) as the fallback listen address.
package main

import (
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/metronav/metronav/mapfile"
	"github.com/metronav/metronav/server"
)

var (
	addr = flag.String("addr", "",
		"listen address (defaults to METRONAV_ADDR or :8080)")
	mapPath = flag.String("map", "",
		"YAML network definition to serve (defaults to the embedded sample map)")
)

func main() {
	flag.Parse()

	// A missing .env is fine; explicit environment still applies.
	_ = godotenv.Load()

	listen := *addr
	if listen == "" {
		listen = os.Getenv("METRONAV_ADDR")
	}
	if listen == "" {
		listen = ":8080"
	}

	network := mapfile.Sample()
	if *mapPath != "" {
		loaded, err := mapfile.Load(*mapPath)
		if err != nil {
			log.Fatal(err)
		}
		network = loaded
	}

	graph := network.Graph()
	srv := server.New(graph, network.TransferCost)

	log.Printf("metronavd: serving %q (%d stations, transfer cost %d) on %s",
		network.Name, len(graph.Stations()), network.TransferCost, listen)
	log.Fatal(http.ListenAndServe(listen, srv))
}
