package parser_test

import (
	"os"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/supplynet/core"
	"github.com/katalvlaran/supplynet/parser"
)

const textInput = `Some preamble that is ignored
Cities:
  City A: ID = 1, Coordinates = (2, 3), Demand = 50 units, Priority = High
City B: ID = 2, Coordinates = (10, 0), Demand = 20 units, Priority = low
this line is not a record

Warehouses:
Warehouse X: ID = 1, Coordinates = (0, 0), Capacity = 100 units
Warehouse Y: ID = 2, Coordinates = (30, 40), Capacity = 80 units
City C: ID = 3, Coordinates = (1, 1), Demand = 5 units, Priority = HIGH
`

const yamlInput = `
cities:
  - {id: 1, name: A, location: {x: 2, y: 3}, demand: 50, priority: HIGH}
  - {id: 2, name: B, location: {x: 10, y: 0}, demand: 20, priority: low}
warehouses:
  - {id: 1, name: X, location: {x: 0, y: 0}, capacity: 100}
  - {id: 2, name: Y, location: {x: 30, y: 40}, capacity: 80}
`

func wantInput() *parser.Input {
	return &parser.Input{
		Cities: []*core.City{
			{ID: 1, Name: "A", Location: core.Point{X: 2, Y: 3}, Demand: 50, Priority: core.High},
			{ID: 2, Name: "B", Location: core.Point{X: 10, Y: 0}, Demand: 20, Priority: core.Low},
		},
		Warehouses: []*core.Warehouse{
			core.NewWarehouse(1, "X", core.Point{}, 100),
			core.NewWarehouse(2, "Y", core.Point{X: 30, Y: 40}, 80),
		},
	}
}

// TestParse_Text reads both sections and skips everything else, including
// a city line inside the warehouse section.
func TestParse_Text(t *testing.T) {
	in, err := parser.Parse(strings.NewReader(textInput))
	require.NoError(t, err)
	assert.Equal(t, wantInput(), in)
}

// TestParse_YAML decodes the same network from YAML.
func TestParse_YAML(t *testing.T) {
	in, err := parser.ParseYAML(strings.NewReader(yamlInput))
	require.NoError(t, err)
	assert.Equal(t, wantInput(), in)
}

// TestParse_Errors covers priority, duplicate and overflow failures.
func TestParse_Errors(t *testing.T) {
	_, err := parser.Parse(strings.NewReader(
		"Cities:\nCity A: ID = 1, Coordinates = (0, 0), Demand = 5 units, Priority = Urgent\n"))
	assert.ErrorIs(t, err, core.ErrUnknownPriority)
	assert.Contains(t, err.Error(), "line 2")

	_, err = parser.Parse(strings.NewReader(
		"Warehouses:\nWarehouse X: ID = 1, Coordinates = (0, 0), Capacity = 5 units\n" +
			"Warehouse Y: ID = 1, Coordinates = (1, 1), Capacity = 5 units\n"))
	assert.ErrorIs(t, err, core.ErrDuplicateID)

	_, err = parser.Parse(strings.NewReader(
		"Warehouses:\nWarehouse X: ID = 99999999999999999999999, Coordinates = (0, 0), Capacity = 5 units\n"))
	assert.ErrorIs(t, err, parser.ErrBadNumber)

	_, err = parser.ParseYAML(strings.NewReader("cities:\n  - null\n"))
	assert.ErrorIs(t, err, parser.ErrNilRecord)

	_, err = parser.ParseYAML(strings.NewReader("cities:\n  - {id: 1, demand: 5, priority: LOW, color: red}\n"))
	assert.Error(t, err)

	_, err = parser.ParseYAML(strings.NewReader("warehouses:\n  - {id: 1, capacity: -3}\n"))
	assert.ErrorIs(t, err, core.ErrNegativeQuantity)
}

// TestParse_Empty accepts input without any record.
func TestParse_Empty(t *testing.T) {
	in, err := parser.Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, in.Cities)
	assert.Empty(t, in.Warehouses)
}

// TestParseFile picks the syntax from the extension.
func TestParseFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/in/network.txt", []byte(textInput), 0644))
	require.NoError(t, afero.WriteFile(fs, "/in/network.YML", []byte(yamlInput), 0644))

	fromText, err := parser.ParseFile(fs, "/in/network.txt")
	require.NoError(t, err)
	fromYAML, err := parser.ParseFile(fs, "/in/network.YML")
	require.NoError(t, err)
	assert.Equal(t, fromText, fromYAML)

	_, err = parser.ParseFile(fs, "/in/missing.txt")
	assert.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, afero.WriteFile(fs, "/in/bad.yaml", []byte("cities: {"), 0644))
	_, err = parser.ParseFile(fs, "/in/bad.yaml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "/in/bad.yaml")
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, parser.FormatYAML, parser.DetectFormat("a/b.yaml"))
	assert.Equal(t, parser.FormatYAML, parser.DetectFormat("b.yml"))
	assert.Equal(t, parser.FormatText, parser.DetectFormat("TestCase0.txt"))
	assert.Equal(t, parser.FormatText, parser.DetectFormat("noext"))
	assert.Equal(t, "yaml", parser.FormatYAML.String())
}
