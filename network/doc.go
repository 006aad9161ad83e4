// Package network wires the cost model, the allocation engine, the
// redistribution engine and the cluster engine into one planning run.
//
// Data flow
//
//	cities, warehouses
//	  → cost.Model.Matrix
//	  → allocation.Allocate         (AfterAllocation snapshot)
//	  → redistribution.Redistribute (AfterRedistribution snapshot)
//	  → cluster.New(Result.CityWarehouses(), city ids...)
//	  → ClustersBefore → MergeSharing → ClustersAfter → Queries
//
// Plan works on clones, so one set of parsed records can be planned many
// times (for example with different target levels).
//
// Error Conditions
//
//	Validation failures surface the core sentinel errors, engine failures
//	their own sentinels and unknown query ids cluster.ErrUnknownCity, each
//	annotated with github.com/pkg/errors. Match with errors.Is.
//
// Metrics
//
//	supplynet_plan_duration_seconds observes every Plan call.
package network

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var planDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "supplynet_plan_duration_seconds",
	Help:    "Wall time of one planning run.",
	Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
})
