package network

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/supplynet/allocation"
	"github.com/katalvlaran/supplynet/cluster"
	"github.com/katalvlaran/supplynet/core"
	"github.com/katalvlaran/supplynet/cost"
	"github.com/katalvlaran/supplynet/redistribution"
)

// Plan runs the three engines in order over copies of cities and
// warehouses. The caller's records are never mutated.
//
// Steps:
//  1. Validate and clone the inputs.
//  2. Build the cost matrix once.
//  3. Allocate against that matrix and snapshot warehouse levels.
//  4. Redistribute towards the target level and snapshot again.
//  5. Register every city in a cluster engine seeded with the
//     city → warehouses mapping of the allocation.
//  6. Snapshot clusters, merge every sharing pair, snapshot again.
//  7. Answer the queries.
//
// Any error aborts the run; no partial Outcome is returned.
func Plan(cities []*core.City, warehouses []*core.Warehouse, opts ...Option) (*Outcome, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	start := time.Now()
	defer func() { planDuration.Observe(time.Since(start).Seconds()) }()

	// 1. Reject malformed input before any engine sees it.
	if err := core.ValidateInput(cities, warehouses); err != nil {
		return nil, errors.WithMessage(err, "validating input")
	}
	out := &Outcome{
		Cities:     core.CloneCities(cities),
		Warehouses: core.CloneWarehouses(warehouses),
	}
	o.Logger.WithFields(logrus.Fields{
		"cities":     len(out.Cities),
		"warehouses": len(out.Warehouses),
	}).Debug("planning supply network")

	// 2. Costs are computed once and shared with the allocator.
	out.CostMatrix = cost.NewModel(out.Cities, out.Warehouses).Matrix()

	// 3. Allocation.
	var err error
	if out.Allocation, err = allocation.Allocate(out.Cities, out.Warehouses, out.CostMatrix,
		allocation.WithLogger(o.Logger)); err != nil {
		return nil, errors.WithMessage(err, "allocating")
	}
	out.AfterAllocation = core.Snapshot(out.Warehouses)

	// 4. Redistribution.
	if out.Transfers, err = redistribution.Redistribute(out.Warehouses,
		redistribution.WithTargetLevel(o.TargetLevel),
		redistribution.WithLogger(o.Logger)); err != nil {
		return nil, errors.WithMessage(err, "redistributing")
	}
	out.AfterRedistribution = core.Snapshot(out.Warehouses)

	// 5. Every city is a member, with or without a grant.
	ids := make([]int, len(out.Cities))
	for i, c := range out.Cities {
		ids[i] = c.ID
	}
	uf := cluster.New(out.Allocation.CityWarehouses(), ids...)

	// 6. Merge cities drawing from identical warehouse sets.
	out.ClustersBefore = uf.Snapshot()
	if out.Merges, err = uf.MergeSharing(); err != nil {
		return nil, errors.WithMessage(err, "merging clusters")
	}
	out.ClustersAfter = uf.Snapshot()

	// 7. Queries see the merged state.
	for _, q := range o.Queries {
		res, err := answer(uf, q)
		if err != nil {
			return nil, err
		}
		out.Queries = append(out.Queries, res)
	}

	o.Logger.WithFields(logrus.Fields{
		"allocated": out.Allocation.TotalAllocated(),
		"unmet":     out.Allocation.TotalUnmet(),
		"transfers": len(out.Transfers),
		"clusters":  len(out.ClustersAfter),
	}).Info("supply network planned")

	return out, nil
}

// answer evaluates q against uf.
func answer(uf *cluster.UnionFind, q Query) (QueryResult, error) {
	same, err := uf.AreInSameCluster(q.A, q.B)
	if err != nil {
		return QueryResult{}, errors.WithMessagef(err, "query %d/%d", q.A, q.B)
	}
	share, err := uf.ShareResources(q.A, q.B)
	if err != nil {
		return QueryResult{}, errors.WithMessagef(err, "query %d/%d", q.A, q.B)
	}

	return QueryResult{Query: q, SameCluster: same, ShareResources: share}, nil
}
