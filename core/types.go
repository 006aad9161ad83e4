// Package core defines the central City, Warehouse, ResourceAllocation and
// Transfer types shared by every engine of supplynet, together with the
// sentinel errors raised when input records are malformed.
//
// This file declares Priority, Point, City, Warehouse, ResourceAllocation,
// Transfer, CapacitySnapshot and the package sentinel errors.
//
// Errors:
//
//	ErrUnknownPriority   - priority name is not LOW, MEDIUM or HIGH.
//	ErrNegativeQuantity  - demand, capacity or remaining capacity below zero.
//	ErrRemainingOverflow - remaining capacity above total capacity.
//	ErrDuplicateID       - two cities (or two warehouses) share an identifier.
package core

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for core record validation.
var (
	// ErrUnknownPriority indicates that a priority name could not be parsed.
	ErrUnknownPriority = errors.New("core: unknown priority")

	// ErrNegativeQuantity indicates a negative demand or capacity.
	ErrNegativeQuantity = errors.New("core: quantity must be non-negative")

	// ErrRemainingOverflow indicates Remaining > Capacity on a warehouse.
	ErrRemainingOverflow = errors.New("core: remaining capacity exceeds total capacity")

	// ErrDuplicateID indicates that an identifier was used twice within one record kind.
	ErrDuplicateID = errors.New("core: duplicate identifier")
)

// Priority orders cities for allocation. Higher values are served first.
type Priority int

const (
	// Low is the least urgent priority.
	Low Priority = iota
	// Medium sits between Low and High.
	Medium
	// High cities are served before all others.
	High
)

var priorityNames = [...]string{"LOW", "MEDIUM", "HIGH"}

// String returns the upper-case name of p, e.g. "HIGH".
func (p Priority) String() string {
	if p < Low || p > High {
		return fmt.Sprintf("Priority(%d)", int(p))
	}

	return priorityNames[p]
}

// ParsePriority converts a case-insensitive name into a Priority.
func ParsePriority(s string) (Priority, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range priorityNames {
		if n == name {
			return Priority(i), nil
		}
	}

	return Low, fmt.Errorf("%w: %q", ErrUnknownPriority, s)
}

// UnmarshalYAML lets YAML documents spell priorities by name.
func (p *Priority) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParsePriority(s)
	if err != nil {
		return err
	}
	*p = parsed

	return nil
}

// MarshalYAML writes the priority name.
func (p Priority) MarshalYAML() (interface{}, error) {
	return p.String(), nil
}

// Point is an integer 2D coordinate.
type Point struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
}

// City is a demand site.
//
// Demand is the remaining demand: it starts at the requested amount and is
// decreased only by the allocation engine.
type City struct {
	// ID uniquely identifies the city within one run.
	ID int `yaml:"id"`

	// Name is a display name.
	Name string `yaml:"name"`

	// Location of the city.
	Location Point `yaml:"location"`

	// Demand is the remaining (unserved) demand in units.
	Demand int `yaml:"demand"`

	// Priority decides the service order.
	Priority Priority `yaml:"priority"`
}

// Validate reports whether c carries non-negative demand.
func (c *City) Validate() error {
	if c.Demand < 0 {
		return fmt.Errorf("%w: city %d demand %d", ErrNegativeQuantity, c.ID, c.Demand)
	}

	return nil
}

// String implements fmt.Stringer.
func (c *City) String() string {
	return fmt.Sprintf("City{name=%q, id=%d, x=%d, y=%d, demand=%d, priority=%s}",
		c.Name, c.ID, c.Location.X, c.Location.Y, c.Demand, c.Priority)
}

// Warehouse is a supply site with a fixed total Capacity and a mutable
// Remaining capacity bounded by [0, Capacity].
type Warehouse struct {
	// ID uniquely identifies the warehouse within one run.
	ID int `yaml:"id"`

	// Name is a display name.
	Name string `yaml:"name"`

	// Location of the warehouse.
	Location Point `yaml:"location"`

	// Capacity is the fixed total capacity in units.
	Capacity int `yaml:"capacity"`

	// Remaining is the capacity not yet granted. It is reset to Capacity at
	// the start of allocation.
	Remaining int `yaml:"-"`
}

// NewWarehouse returns a warehouse whose Remaining equals capacity.
func NewWarehouse(id int, name string, at Point, capacity int) *Warehouse {
	return &Warehouse{ID: id, Name: name, Location: at, Capacity: capacity, Remaining: capacity}
}

// Validate reports whether w has consistent quantities.
func (w *Warehouse) Validate() error {
	if w.Capacity < 0 || w.Remaining < 0 {
		return fmt.Errorf("%w: warehouse %d capacity %d remaining %d",
			ErrNegativeQuantity, w.ID, w.Capacity, w.Remaining)
	}
	if w.Remaining > w.Capacity {
		return fmt.Errorf("%w: warehouse %d capacity %d remaining %d",
			ErrRemainingOverflow, w.ID, w.Capacity, w.Remaining)
	}

	return nil
}

// String implements fmt.Stringer.
func (w *Warehouse) String() string {
	return fmt.Sprintf("Warehouse{name=%q, id=%d, x=%d, y=%d, capacity=%d, remainingCapacity=%d}",
		w.Name, w.ID, w.Location.X, w.Location.Y, w.Capacity, w.Remaining)
}

// ResourceAllocation is one grant of Units from a warehouse to a city.
// Units is always > 0.
type ResourceAllocation struct {
	WarehouseID int
	Units       int
}

// String implements fmt.Stringer.
func (a ResourceAllocation) String() string {
	return fmt.Sprintf("ResourceAllocation{warehouseId=%d, units=%d}", a.WarehouseID, a.Units)
}

// Transfer is one rebalancing move between two warehouses.
type Transfer struct {
	FromID   int
	ToID     int
	FromName string
	ToName   string
	Units    int
}

// String renders the transfer as a report line.
func (t Transfer) String() string {
	return fmt.Sprintf("Transferred %d units from Warehouse %s to Warehouse %s.", t.Units, t.FromName, t.ToName)
}

// CapacitySnapshot records the remaining capacity of one warehouse at a
// point in time.
type CapacitySnapshot struct {
	WarehouseID int
	Name        string
	Remaining   int
}

// Snapshot captures Remaining for every warehouse, in input order.
func Snapshot(warehouses []*Warehouse) []CapacitySnapshot {
	out := make([]CapacitySnapshot, len(warehouses))
	for i, w := range warehouses {
		out[i] = CapacitySnapshot{WarehouseID: w.ID, Name: w.Name, Remaining: w.Remaining}
	}

	return out
}
