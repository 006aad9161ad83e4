package allocation

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/supplynet/core"
	"github.com/katalvlaran/supplynet/matrix"
)

// Allocate greedily grants warehouse capacity to cities, highest priority
// first and cheapest warehouse first.
//
// Error Conditions:
//   - ErrCostShape : costs is nil or not |cities|×|warehouses|.
//
// Unmet demand is not an error: such cities keep a positive Demand and a
// positive CityAllocation.Unmet.
//
// Steps:
//  1. Validate the cost matrix shape.
//  2. Order city positions by priority descending (stable: ties keep input order).
//  3. Reset every warehouse's Remaining to its Capacity.
//  4. For each city in that order, stable-sort warehouse positions by ascending
//     costs[city][warehouse] (ties keep input order).
//  5. Walk the sorted warehouses: grant min(demand, remaining) from every
//     warehouse with capacity left, stop once demand reaches zero.
//  6. Assemble the Result ordered by city id ascending.
//
// Side effects: mutates City.Demand and Warehouse.Remaining in place.
// Complexity: O(C·W log W) time, O(C + W) extra memory.
func Allocate(cities []*core.City, warehouses []*core.Warehouse, costs *matrix.Dense, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 1. The matrix must index cities by row and warehouses by column.
	if costs == nil || costs.Rows() != len(cities) || costs.Cols() != len(warehouses) {
		return nil, fmt.Errorf("%w: want %dx%d", ErrCostShape, len(cities), len(warehouses))
	}

	// 2. Priority order over positions, never over pointers.
	order := make([]int, len(cities))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return cities[order[a]].Priority > cities[order[b]].Priority
	})

	// 3. Every run starts from full warehouses.
	for _, w := range warehouses {
		w.Remaining = w.Capacity
	}

	grants := make([][]core.ResourceAllocation, len(cities))
	requested := make([]int, len(cities))
	for i, c := range cities {
		requested[i] = c.Demand
	}

	var totalUnits, totalGrants, unmet int
	for _, ci := range order {
		city := cities[ci]
		log := o.Logger.WithFields(logrus.Fields{"city": city.ID, "priority": city.Priority})
		log.Debug("allocating resources for city")

		// 4. Cheapest warehouses first, looked up in the precomputed matrix.
		row, err := costs.Row(ci)
		if err != nil {
			return nil, err
		}
		byCost := make([]int, len(warehouses))
		for j := range byCost {
			byCost[j] = j
		}
		sort.SliceStable(byCost, func(a, b int) bool {
			return row[byCost[a]] < row[byCost[b]]
		})

		// 5. Greedy walk.
		for _, wj := range byCost {
			if city.Demand == 0 {
				break
			}
			w := warehouses[wj]
			if w.Remaining <= 0 {
				continue
			}
			units := min(city.Demand, w.Remaining)
			grants[ci] = append(grants[ci], core.ResourceAllocation{WarehouseID: w.ID, Units: units})
			w.Remaining -= units
			city.Demand -= units
			totalUnits += units
			totalGrants++

			log.WithFields(logrus.Fields{"warehouse": w.ID, "units": units}).Debug("allocated units from warehouse")
		}

		if city.Demand > 0 {
			unmet += city.Demand
			log.WithField("unmet", city.Demand).Info("city demand not fully met")
		}
	}

	allocationUnitsTotal.Add(float64(totalUnits))
	allocationGrantsTotal.Add(float64(totalGrants))
	allocationUnmetUnits.Set(float64(unmet))

	// 6. Deterministic output order for downstream consumers.
	return assemble(cities, requested, grants), nil
}

// assemble builds the id-ordered Result.
func assemble(cities []*core.City, requested []int, grants [][]core.ResourceAllocation) *Result {
	byID := make([]int, len(cities))
	for i := range byID {
		byID[i] = i
	}
	sort.Slice(byID, func(a, b int) bool { return cities[byID[a]].ID < cities[byID[b]].ID })

	res := &Result{
		Cities: make([]CityAllocation, 0, len(cities)),
		index:  make(map[int]int, len(cities)),
	}
	for _, i := range byID {
		c := cities[i]
		res.index[c.ID] = len(res.Cities)
		res.Cities = append(res.Cities, CityAllocation{
			CityID:      c.ID,
			Name:        c.Name,
			Priority:    c.Priority,
			Requested:   requested[i],
			Allocations: grants[i],
			Unmet:       c.Demand,
		})
	}

	return res
}
