package core

import "fmt"

// ValidateInput checks the shape of a parsed run before it reaches any engine:
// every city and warehouse must pass Validate and identifiers must be unique
// within their kind. Cities and warehouses may share numeric identifiers.
//
// Complexity: O(|cities| + |warehouses|).
func ValidateInput(cities []*City, warehouses []*Warehouse) error {
	seenCities := make(map[int]struct{}, len(cities))
	for _, c := range cities {
		if err := c.Validate(); err != nil {
			return err
		}
		if _, dup := seenCities[c.ID]; dup {
			return fmt.Errorf("%w: city %d", ErrDuplicateID, c.ID)
		}
		seenCities[c.ID] = struct{}{}
	}

	seenWarehouses := make(map[int]struct{}, len(warehouses))
	for _, w := range warehouses {
		if err := w.Validate(); err != nil {
			return err
		}
		if _, dup := seenWarehouses[w.ID]; dup {
			return fmt.Errorf("%w: warehouse %d", ErrDuplicateID, w.ID)
		}
		seenWarehouses[w.ID] = struct{}{}
	}

	return nil
}

// CloneCities returns deep copies of cities, preserving order.
func CloneCities(cities []*City) []*City {
	out := make([]*City, len(cities))
	for i, c := range cities {
		cp := *c
		out[i] = &cp
	}

	return out
}

// CloneWarehouses returns deep copies of warehouses, preserving order.
func CloneWarehouses(warehouses []*Warehouse) []*Warehouse {
	out := make([]*Warehouse, len(warehouses))
	for i, w := range warehouses {
		cp := *w
		out[i] = &cp
	}

	return out
}

// TotalRemaining sums Remaining over warehouses.
func TotalRemaining(warehouses []*Warehouse) int {
	var total int
	for _, w := range warehouses {
		total += w.Remaining
	}

	return total
}
