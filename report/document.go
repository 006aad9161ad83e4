package report

import (
	"github.com/katalvlaran/supplynet/cluster"
	"github.com/katalvlaran/supplynet/core"
	"github.com/katalvlaran/supplynet/network"
)

// Document is the serialised form of a network.Outcome. Section keys follow
// the stages of the run: allocation, redistribution, then resource sharing.
type Document struct {
	Allocation     AllocationSection     `json:"task_1_and_2"`
	Redistribution RedistributionSection `json:"task_3"`
	Sharing        SharingSection        `json:"task_4"`
}

// AllocationSection reports costs, grants and the levels left after allocation.
type AllocationSection struct {
	CostMatrix          [][]float64      `json:"cost_matrix"`
	Allocations         []CityEntry      `json:"allocations"`
	RemainingCapacities []WarehouseLevel `json:"remaining_capacities"`
}

// CityEntry is one city's grants.
type CityEntry struct {
	City          string  `json:"city"`
	Priority      string  `json:"priority"`
	AllocatedFrom []Grant `json:"allocated_from"`
	Unmet         int     `json:"unmet,omitempty"`
}

// Grant names the warehouse a city was served from.
type Grant struct {
	Warehouse string `json:"warehouse"`
	Units     int    `json:"units"`
}

// WarehouseLevel is the remaining capacity of one warehouse.
type WarehouseLevel struct {
	Warehouse string `json:"warehouse"`
	Remaining int    `json:"remaining"`
}

// RedistributionSection reports transfers and final levels.
type RedistributionSection struct {
	Transfers           []TransferEntry  `json:"resource_transfers"`
	FinalResourceLevels []WarehouseLevel `json:"final_resource_levels"`
}

// TransferEntry is one move between warehouses.
type TransferEntry struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Units int    `json:"units"`
}

// SharingSection reports clusters before and after merging, and query answers.
type SharingSection struct {
	InitialClusters      []ClusterEntry `json:"initial_clusters"`
	ClustersAfterMerging []ClusterEntry `json:"clusters_after_merging"`
	Queries              []QueryEntry   `json:"queries"`
}

// ClusterEntry is one cluster keyed by its root city id.
type ClusterEntry struct {
	Root   int   `json:"root"`
	Cities []int `json:"cities"`
}

// QueryEntry answers one connectivity query.
type QueryEntry struct {
	CityA          int  `json:"city_a"`
	CityB          int  `json:"city_b"`
	SameCluster    bool `json:"same_cluster"`
	ShareResources bool `json:"share_resources"`
}

// NewDocument converts out into a Document. Every list is non-nil so empty
// runs still serialise to [] rather than null.
func NewDocument(out *network.Outcome) *Document {
	doc := &Document{
		Allocation: AllocationSection{
			CostMatrix:          out.CostMatrix.ToRows(),
			Allocations:         make([]CityEntry, 0, len(out.Allocation.Cities)),
			RemainingCapacities: levels(out.AfterAllocation),
		},
		Redistribution: RedistributionSection{
			Transfers:           make([]TransferEntry, 0, len(out.Transfers)),
			FinalResourceLevels: levels(out.AfterRedistribution),
		},
		Sharing: SharingSection{
			InitialClusters:      clusters(out.ClustersBefore),
			ClustersAfterMerging: clusters(out.ClustersAfter),
			Queries:              make([]QueryEntry, 0, len(out.Queries)),
		},
	}

	for _, c := range out.Allocation.Cities {
		entry := CityEntry{
			City:          c.Name,
			Priority:      c.Priority.String(),
			AllocatedFrom: make([]Grant, 0, len(c.Allocations)),
			Unmet:         c.Unmet,
		}
		for _, a := range c.Allocations {
			entry.AllocatedFrom = append(entry.AllocatedFrom, Grant{Warehouse: out.WarehouseName(a.WarehouseID), Units: a.Units})
		}
		doc.Allocation.Allocations = append(doc.Allocation.Allocations, entry)
	}
	for _, t := range out.Transfers {
		doc.Redistribution.Transfers = append(doc.Redistribution.Transfers, TransferEntry{From: t.FromName, To: t.ToName, Units: t.Units})
	}
	for _, q := range out.Queries {
		doc.Sharing.Queries = append(doc.Sharing.Queries, QueryEntry{
			CityA: q.A, CityB: q.B,
			SameCluster: q.SameCluster, ShareResources: q.ShareResources,
		})
	}

	return doc
}

func levels(snaps []core.CapacitySnapshot) []WarehouseLevel {
	out := make([]WarehouseLevel, len(snaps))
	for i, s := range snaps {
		out[i] = WarehouseLevel{Warehouse: s.Name, Remaining: s.Remaining}
	}

	return out
}

func clusters(cs []cluster.Cluster) []ClusterEntry {
	out := make([]ClusterEntry, len(cs))
	for i, c := range cs {
		out[i] = ClusterEntry{Root: c.Root, Cities: c.Members}
	}

	return out
}
