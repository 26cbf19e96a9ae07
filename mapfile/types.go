// Package mapfile types for YAML network definitions.
package mapfile

import "errors"

// Sentinel errors for network-definition loading.
var (
	// ErrInvalidNetwork indicates a definition that unmarshalled but
	// failed validation (missing station names, negative costs, …).
	ErrInvalidNetwork = errors.New("mapfile: network definition is invalid")
)

// EdgeDef is one connection in a network file. Unless OneWay is set it
// produces two directed edge records, one per direction.
type EdgeDef struct {
	From   string `yaml:"from" validate:"required"`
	To     string `yaml:"to" validate:"required"`
	Cost   int64  `yaml:"cost" validate:"gte=0"`
	Line   string `yaml:"line" validate:"required"`
	OneWay bool   `yaml:"one_way"`
}

// Network is a complete transit network definition: a display name, the
// penalty charged per line change, and the edge list.
type Network struct {
	Name         string    `yaml:"name"`
	TransferCost int64     `yaml:"transfer_cost" validate:"gte=0"`
	Edges        []EdgeDef `yaml:"edges" validate:"required,min=1,dive"`
}
