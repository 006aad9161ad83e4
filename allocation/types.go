// Package allocation defines options, sentinel errors and the Result of the
// priority-greedy allocation engine.
package allocation

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/supplynet/core"
)

// ErrCostShape indicates that the cost matrix is nil or its shape is not
// |cities|×|warehouses|.
var ErrCostShape = errors.New("allocation: cost matrix shape does not match inputs")

// Options configures Allocate.
type Options struct {
	// Logger receives per-city and per-grant debug events.
	Logger logrus.FieldLogger
}

// Option configures Options.
type Option func(*Options)

// WithLogger routes allocation events to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions logs to the logrus standard logger.
func DefaultOptions() Options {
	return Options{Logger: logrus.StandardLogger()}
}

// CityAllocation is the outcome for one city.
type CityAllocation struct {
	// CityID identifies the city.
	CityID int
	// Name is the city display name.
	Name string
	// Priority the city was served with.
	Priority core.Priority
	// Requested is the demand the city had when allocation started.
	Requested int
	// Allocations are the grants in the order they were made
	// (cheapest warehouse first).
	Allocations []core.ResourceAllocation
	// Unmet is the demand left after every warehouse was tried.
	Unmet int
}

// Allocated sums the units granted to the city.
func (c CityAllocation) Allocated() int {
	var total int
	for _, a := range c.Allocations {
		total += a.Units
	}

	return total
}

// Result holds one CityAllocation per input city, ordered by city id ascending.
type Result struct {
	Cities []CityAllocation

	index map[int]int // city id → position in Cities
}

// For returns the allocation of cityID and whether the city is known.
func (r *Result) For(cityID int) (CityAllocation, bool) {
	i, ok := r.index[cityID]
	if !ok {
		return CityAllocation{}, false
	}

	return r.Cities[i], true
}

// CityWarehouses maps every city that received at least one grant to the
// ids of the warehouses that served it, in grant order. Cities without any
// grant are absent: they have no recorded warehouse assignment.
func (r *Result) CityWarehouses() map[int][]int {
	out := make(map[int][]int, len(r.Cities))
	for _, c := range r.Cities {
		if len(c.Allocations) == 0 {
			continue
		}
		ids := make([]int, len(c.Allocations))
		for i, a := range c.Allocations {
			ids[i] = a.WarehouseID
		}
		out[c.CityID] = ids
	}

	return out
}

// TotalAllocated sums granted units across all cities.
func (r *Result) TotalAllocated() int {
	var total int
	for _, c := range r.Cities {
		total += c.Allocated()
	}

	return total
}

// TotalUnmet sums unmet demand across all cities.
func (r *Result) TotalUnmet() int {
	var total int
	for _, c := range r.Cities {
		total += c.Unmet
	}

	return total
}
