package parser

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v2"

	"github.com/katalvlaran/supplynet/core"
)

var (
	cityLine = regexp.MustCompile(
		`^City (\w+): ID = (\d+), Coordinates = \((\d+), (\d+)\), Demand = (\d+) units, Priority = (\w+)$`)
	warehouseLine = regexp.MustCompile(
		`^Warehouse (\w+): ID = (\d+), Coordinates = \((\d+), (\d+)\), Capacity = (\d+) units$`)
)

type section int

const (
	sectionNone section = iota
	sectionCities
	sectionWarehouses
)

// ParseFile reads path from fs, choosing the syntax with DetectFormat.
func ParseFile(fs afero.Fs, path string) (*Input, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, errors.WithMessage(err, "opening input")
	}
	defer f.Close()

	var in *Input
	switch DetectFormat(path) {
	case FormatYAML:
		in, err = ParseYAML(f)
	default:
		in, err = Parse(f)
	}
	if err != nil {
		return nil, errors.WithMessagef(err, "parsing %s", path)
	}

	return in, nil
}

// Parse reads the line-oriented text syntax:
//
//	Cities:
//	City A: ID = 1, Coordinates = (2, 3), Demand = 50 units, Priority = High
//	Warehouses:
//	Warehouse X: ID = 1, Coordinates = (10, 20), Capacity = 100 units
//
// Lines are trimmed. A line starting with "Cities:" or "Warehouses:" opens
// that section; inside a section, lines that do not match the record
// syntax are skipped, as is everything before the first section. Priority
// names are case-insensitive and an unknown one fails the parse.
func Parse(r io.Reader) (*Input, error) {
	in := &Input{}
	sc := bufio.NewScanner(r)

	var (
		sec    = sectionNone
		lineNo int
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())

		switch {
		case strings.HasPrefix(line, "Cities:"):
			sec = sectionCities
			continue
		case strings.HasPrefix(line, "Warehouses:"):
			sec = sectionWarehouses
			continue
		}

		switch sec {
		case sectionCities:
			m := cityLine.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			c, err := cityFromMatch(m)
			if err != nil {
				return nil, errors.WithMessagef(err, "line %d", lineNo)
			}
			in.Cities = append(in.Cities, c)

		case sectionWarehouses:
			m := warehouseLine.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			w, err := warehouseFromMatch(m)
			if err != nil {
				return nil, errors.WithMessagef(err, "line %d", lineNo)
			}
			in.Warehouses = append(in.Warehouses, w)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.WithMessage(err, "reading input")
	}

	if err := core.ValidateInput(in.Cities, in.Warehouses); err != nil {
		return nil, err
	}

	return in, nil
}

// ParseYAML decodes a YAML document strictly: unknown keys are errors.
//
//	cities:
//	  - {id: 1, name: A, location: {x: 2, y: 3}, demand: 50, priority: HIGH}
//	warehouses:
//	  - {id: 1, name: X, location: {x: 10, y: 20}, capacity: 100}
func ParseYAML(r io.Reader) (*Input, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.WithMessage(err, "reading input")
	}
	in := &Input{}
	if err = yaml.UnmarshalStrict(b, in); err != nil {
		return nil, errors.WithMessage(err, "decoding YAML")
	}

	for i, c := range in.Cities {
		if c == nil {
			return nil, errors.Wrapf(ErrNilRecord, "cities[%d]", i)
		}
	}
	for i, w := range in.Warehouses {
		if w == nil {
			return nil, errors.Wrapf(ErrNilRecord, "warehouses[%d]", i)
		}
		w.Remaining = w.Capacity
	}

	if err := core.ValidateInput(in.Cities, in.Warehouses); err != nil {
		return nil, err
	}

	return in, nil
}

func cityFromMatch(m []string) (*core.City, error) {
	nums, err := atoiAll(m[2:6])
	if err != nil {
		return nil, err
	}
	p, err := core.ParsePriority(m[6])
	if err != nil {
		return nil, err
	}

	return &core.City{
		ID:       nums[0],
		Name:     m[1],
		Location: core.Point{X: nums[1], Y: nums[2]},
		Demand:   nums[3],
		Priority: p,
	}, nil
}

func warehouseFromMatch(m []string) (*core.Warehouse, error) {
	nums, err := atoiAll(m[2:6])
	if err != nil {
		return nil, err
	}

	return core.NewWarehouse(nums[0], m[1], core.Point{X: nums[1], Y: nums[2]}, nums[3]), nil
}

// atoiAll converts digit-only fields; it fails only on overflow.
func atoiAll(fields []string) ([]int, error) {
	out := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Wrapf(ErrBadNumber, "%q", f)
		}
		out[i] = n
	}

	return out, nil
}
