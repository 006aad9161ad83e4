package cost

import (
	"math"

	"github.com/katalvlaran/supplynet/core"
	"github.com/katalvlaran/supplynet/matrix"
)

// Distance returns the Euclidean distance between a and b.
func Distance(a, b core.Point) float64 {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)

	return math.Sqrt(dx*dx + dy*dy)
}

// TransportTier maps a distance to its tier. Boundaries are inclusive on
// the lower tier: exactly 10 is TierDrone, exactly 20 is TierTruck.
func TransportTier(distance float64) Tier {
	switch {
	case distance <= DroneRange:
		return TierDrone
	case distance <= TruckRange:
		return TierTruck
	default:
		return TierRail
	}
}

// Cost returns the transportation cost between city and warehouse:
// distance multiplied by its tier coefficient.
func Cost(city *core.City, warehouse *core.Warehouse) float64 {
	d := Distance(city.Location, warehouse.Location)

	return d * float64(TransportTier(d))
}

// BuildMatrix computes Cost for every (city, warehouse) pair.
//
// Steps:
//  1. Allocate a |cities|×|warehouses| Dense (either may be zero).
//  2. Fill row i, column j with Cost(cities[i], warehouses[j]).
//
// Deterministic and side-effect free: the same inputs always yield an
// Equal matrix.
// Complexity: O(|cities|·|warehouses|).
func BuildMatrix(cities []*core.City, warehouses []*core.Warehouse) *matrix.Dense {
	// 1. Shape is never negative, so NewDense cannot fail here.
	m, err := matrix.NewDense(len(cities), len(warehouses))
	if err != nil {
		panic(err)
	}

	// 2. Row-major fill; costs are finite for integer coordinates.
	for i, c := range cities {
		for j, w := range warehouses {
			if err = m.Set(i, j, Cost(c, w)); err != nil {
				panic(err)
			}
		}
	}

	return m
}
