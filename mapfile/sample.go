package mapfile

import _ "embed"

//go:embed sample.yml
var sampleYML []byte

// Sample returns the embedded demo network: three lines of NYC subway
// stations plus a Grand Central ↔ Union Sq interchange, transfer cost 2.
// Each call parses a fresh copy, so callers may modify the result.
func Sample() *Network {
	return MustParse(sampleYML)
}
