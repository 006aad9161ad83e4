// Package allocation implements the priority-greedy allocation engine: it
// hands warehouse capacity to cities, serving HIGH priority cities before
// MEDIUM before LOW, and each city from its cheapest warehouse outwards.
//
// Algorithm
//
//	Allocate(cities, warehouses, costs)
//	  order cities by priority desc (stable)
//	  reset warehouse.Remaining = warehouse.Capacity
//	  for city in order:
//	    for warehouse in warehouses sorted by costs[city][warehouse] (stable):
//	      if city.Demand == 0: break
//	      if warehouse.Remaining > 0:
//	        grant min(city.Demand, warehouse.Remaining)
//
// Determinism
//
//   - Cities of equal priority are served in input order.
//   - Warehouses of equal cost are tried in input order.
//   - Costs come from the precomputed matrix (see package cost), so the order
//     matches the reported table exactly.
//   - The Result lists cities by id ascending regardless of service order.
//
// Unmet demand
//
//	A city that exhausts every warehouse keeps its remaining Demand. This is a
//	normal terminal state reported through CityAllocation.Unmet, not an error.
//
// Metrics
//
//	supplynet_allocation_units_total, supplynet_allocation_grants_total and
//	the supplynet_allocation_unmet_units gauge are registered with the
//	default Prometheus registry.
package allocation

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	allocationUnitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "supplynet_allocation_units_total",
		Help: "Cumulative number of units granted from warehouses to cities.",
	})
	allocationGrantsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "supplynet_allocation_grants_total",
		Help: "Cumulative number of (city, warehouse) grants made.",
	})
	allocationUnmetUnits = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "supplynet_allocation_unmet_units",
		Help: "Demand left unserved by the most recent allocation run.",
	})
)
