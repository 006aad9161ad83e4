// Package parser defines the parsed Input and the sentinel errors of the
// city/warehouse input readers.
package parser

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/supplynet/core"
)

// Sentinel errors for input parsing.
var (
	// ErrNilRecord indicates an empty entry in a YAML city or warehouse list.
	ErrNilRecord = errors.New("parser: empty record")

	// ErrBadNumber indicates a numeric field that does not fit an int.
	ErrBadNumber = errors.New("parser: malformed number")
)

// Format selects the input syntax.
type Format int

const (
	// FormatText is the line-oriented "City X: ID = ..." syntax.
	FormatText Format = iota
	// FormatYAML is a YAML document with cities and warehouses lists.
	FormatYAML
)

// String implements fmt.Stringer.
func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}

	return "text"
}

// DetectFormat picks FormatYAML for .yaml and .yml paths, FormatText otherwise.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatText
	}
}

// Input is one parsed network, in file order. Every warehouse starts with
// Remaining equal to Capacity.
type Input struct {
	Cities     []*core.City      `yaml:"cities"`
	Warehouses []*core.Warehouse `yaml:"warehouses"`
}
