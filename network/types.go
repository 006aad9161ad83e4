// Package network defines the options, query types and Outcome of one
// planning run over an emergency supply network.
package network

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/supplynet/allocation"
	"github.com/katalvlaran/supplynet/cluster"
	"github.com/katalvlaran/supplynet/core"
	"github.com/katalvlaran/supplynet/matrix"
	"github.com/katalvlaran/supplynet/redistribution"
)

// Query asks how two cities relate once clusters have been merged.
type Query struct {
	A int `yaml:"a"`
	B int `yaml:"b"`
}

// QueryResult answers one Query.
type QueryResult struct {
	Query
	// SameCluster reports whether A and B share a root after merging.
	SameCluster bool
	// ShareResources reports whether A and B were served by the same set of
	// warehouses.
	ShareResources bool
}

// Options configures Plan.
type Options struct {
	// TargetLevel is handed to the redistribution engine.
	TargetLevel int
	// Queries are answered against the merged clusters, in order.
	Queries []Query
	// Logger receives pipeline events and is passed on to every engine.
	Logger logrus.FieldLogger
}

// Option configures Options.
type Option func(*Options)

// WithTargetLevel overrides redistribution.DefaultTargetLevel.
func WithTargetLevel(level int) Option {
	return func(o *Options) { o.TargetLevel = level }
}

// WithQueries appends connectivity queries.
func WithQueries(qs ...Query) Option {
	return func(o *Options) { o.Queries = append(o.Queries, qs...) }
}

// WithLogger routes every pipeline and engine event to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns the default target level, no queries and the
// logrus standard logger.
func DefaultOptions() Options {
	return Options{
		TargetLevel: redistribution.DefaultTargetLevel,
		Logger:      logrus.StandardLogger(),
	}
}

// Outcome is everything one Plan run produced.
type Outcome struct {
	// Cities are the planned copies of the input cities; Demand holds the
	// unmet remainder.
	Cities []*core.City
	// Warehouses are the planned copies of the input warehouses; Remaining
	// holds the level after redistribution.
	Warehouses []*core.Warehouse

	// CostMatrix is indexed [city position][warehouse position].
	CostMatrix *matrix.Dense
	// Allocation is the allocation engine's result.
	Allocation *allocation.Result

	// AfterAllocation are the warehouse levels once allocation finished.
	AfterAllocation []core.CapacitySnapshot
	// Transfers are the redistribution moves in the order performed.
	Transfers []core.Transfer
	// AfterRedistribution are the final warehouse levels.
	AfterRedistribution []core.CapacitySnapshot

	// ClustersBefore is the partition before any merge (all singletons).
	ClustersBefore []cluster.Cluster
	// ClustersAfter is the partition after merging resource-sharing cities.
	ClustersAfter []cluster.Cluster
	// Merges counts the unions that joined two distinct clusters.
	Merges int

	// Queries answer Options.Queries in order.
	Queries []QueryResult
}

// WarehouseName returns the display name of warehouse id, or "" when the
// id is unknown.
func (o *Outcome) WarehouseName(id int) string {
	for _, w := range o.Warehouses {
		if w.ID == id {
			return w.Name
		}
	}

	return ""
}
