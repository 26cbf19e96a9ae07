package mapfile

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/metronav/metronav/transit"
)

// Parse unmarshals and validates a YAML network definition.
func Parse(data []byte) (*Network, error) {
	var n Network
	if err := yaml.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("mapfile: parse: %w", err)
	}

	v := validator.New()
	if err := v.Struct(n); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidNetwork, err)
	}

	return &n, nil
}

// Load reads and parses a network definition from path.
func Load(path string) (*Network, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mapfile: read %s: %w", path, err)
	}

	return Parse(data)
}

// MustParse is Parse for definitions known to be valid, such as
// embedded assets. It panics on error.
func MustParse(data []byte) *Network {
	n, err := Parse(data)
	if err != nil {
		panic(err)
	}

	return n
}

// Graph builds a fresh transit.Graph from the definition. Each call
// returns an independent graph; the Network itself is never mutated.
func (n *Network) Graph() *transit.Graph {
	g := transit.NewGraph()
	for _, e := range n.Edges {
		if e.OneWay {
			g.AddEdge(e.From, e.To, e.Cost, e.Line)
			continue
		}
		g.AddBidirectionalEdge(e.From, e.To, e.Cost, e.Line)
	}

	return g
}
