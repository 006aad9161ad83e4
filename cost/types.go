// Package cost defines the transport tiers and the lazily-built cost Model.
package cost

import (
	"fmt"

	"github.com/katalvlaran/supplynet/core"
	"github.com/katalvlaran/supplynet/matrix"
)

// Tier is the discrete distance multiplier (1, 2 or 3) applied to raw
// Euclidean distance.
type Tier int

const (
	// TierDrone covers distances up to DroneRange inclusive.
	TierDrone Tier = 1
	// TierTruck covers distances up to TruckRange inclusive.
	TierTruck Tier = 2
	// TierRail covers everything beyond TruckRange.
	TierRail Tier = 3
)

const (
	// DroneRange is the largest distance served by TierDrone.
	DroneRange = 10.0
	// TruckRange is the largest distance served by TierTruck.
	TruckRange = 20.0
)

// String names the transport mode of t.
func (t Tier) String() string {
	switch t {
	case TierDrone:
		return "drone"
	case TierTruck:
		return "truck"
	case TierRail:
		return "rail"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}

// Model binds an ordered city list and warehouse list to their cost matrix.
// The matrix is built on first use and reused afterwards; row i is
// Cities[i], column j is Warehouses[j].
//
// Model is not safe for concurrent use.
type Model struct {
	cities     []*core.City
	warehouses []*core.Warehouse
	costs      *matrix.Dense
}

// NewModel returns a Model over cities and warehouses. The slices are
// retained, not copied: positions define matrix indices.
func NewModel(cities []*core.City, warehouses []*core.Warehouse) *Model {
	return &Model{cities: cities, warehouses: warehouses}
}

// Cities returns the ordered cities the rows refer to.
func (m *Model) Cities() []*core.City { return m.cities }

// Warehouses returns the ordered warehouses the columns refer to.
func (m *Model) Warehouses() []*core.Warehouse { return m.warehouses }

// Matrix returns the cost matrix, building it on the first call.
// Repeated calls return the same *matrix.Dense.
func (m *Model) Matrix() *matrix.Dense {
	if m.costs == nil {
		m.costs = BuildMatrix(m.cities, m.warehouses)
	}

	return m.costs
}
