// Package redistribution rebalances warehouse stock after allocation.
//
// What & Why
//
//	Allocation drains the cheapest warehouses first and leaves others full.
//	Redistribute pulls every warehouse towards a target level (50 units by
//	default) by repeatedly pairing the warehouse with the largest surplus
//	with the warehouse in deepest need and moving the feasible amount:
//
//	  units = min(surplus.Remaining - target, target - need.Remaining)
//
// Data structures
//
//   - surplus: max-heap of warehouses with Remaining > target.
//   - need:    min-heap of warehouses with Remaining < target.
//
// Both heaps hold value records (input position, remaining) rather than
// pointers, and break ties by input position, so the transfer sequence is
// reproducible for identical input.
//
// Invariants
//
//   - Total Remaining across all warehouses is conserved.
//   - Every Transfer moves at least one unit. A non-positive amount can only
//     come from a defect and panics.
//   - Warehouses exactly at target never take part.
//   - When supply and need differ in aggregate some warehouses end away from
//     target; Imbalance reports the residue.
//
// Metrics
//
//	supplynet_redistribution_transfers_total and
//	supplynet_redistribution_units_total are registered with the default
//	Prometheus registry.
package redistribution

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	redistributionTransfersTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "supplynet_redistribution_transfers_total",
		Help: "Cumulative number of warehouse-to-warehouse transfers performed.",
	})
	redistributionUnitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "supplynet_redistribution_units_total",
		Help: "Cumulative number of units moved between warehouses.",
	})
)
