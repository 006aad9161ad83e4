package cluster

import (
	"sort"

	"github.com/pkg/errors"
)

// UnionFind is a disjoint-set forest over city identifiers with path
// compression and union by rank. It also answers whether two cities draw
// from the same set of warehouses.
//
// Every id registered at construction starts as its own root with rank 0.
// Sets only ever merge. Unknown ids are rejected with ErrUnknownCity.
//
// UnionFind is not safe for concurrent use.
type UnionFind struct {
	parent map[int]int
	rank   map[int]int

	// cityWarehouses is read, never written.
	cityWarehouses map[int][]int
}

// New registers every key of cityWarehouses plus any extra ids as a
// singleton cluster. cityWarehouses may be nil; ids without an entry simply
// have no recorded warehouse assignment.
//
// Complexity: O(n) for n registered ids.
func New(cityWarehouses map[int][]int, ids ...int) *UnionFind {
	uf := &UnionFind{
		parent:         make(map[int]int, len(cityWarehouses)+len(ids)),
		rank:           make(map[int]int, len(cityWarehouses)+len(ids)),
		cityWarehouses: cityWarehouses,
	}
	for id := range cityWarehouses {
		uf.add(id)
	}
	for _, id := range ids {
		uf.add(id)
	}

	return uf
}

// add registers id as a singleton unless it is already known.
func (uf *UnionFind) add(id int) {
	if _, ok := uf.parent[id]; ok {
		return
	}
	uf.parent[id] = id
	uf.rank[id] = 0
}

// Len returns the number of registered ids.
func (uf *UnionFind) Len() int { return len(uf.parent) }

// IDs returns every registered id in ascending order.
func (uf *UnionFind) IDs() []int {
	ids := make([]int, 0, len(uf.parent))
	for id := range uf.parent {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// Find returns the root of id's cluster.
//
// Steps:
//  1. Walk parent links up to the root (parent[root] == root).
//  2. Walk the same path again, pointing every visited node straight at the root.
//
// Complexity: amortized O(α(n)).
func (uf *UnionFind) Find(id int) (int, error) {
	if _, ok := uf.parent[id]; !ok {
		return 0, errors.Wrapf(ErrUnknownCity, "find(%d)", id)
	}

	// 1. Locate the root.
	root := id
	for uf.parent[root] != root {
		root = uf.parent[root]
	}

	// 2. Full path compression.
	for id != root {
		next := uf.parent[id]
		uf.parent[id] = root
		id = next
	}

	return root, nil
}

// Union merges the clusters of a and b. It is a no-op when they already
// share a root. The lower-rank root is attached under the higher-rank one;
// on equal ranks b's root goes under a's root and a's root gains one rank.
func (uf *UnionFind) Union(a, b int) error {
	rootA, err := uf.Find(a)
	if err != nil {
		return err
	}
	rootB, err := uf.Find(b)
	if err != nil {
		return err
	}
	if rootA == rootB {
		return nil
	}

	switch {
	case uf.rank[rootA] > uf.rank[rootB]:
		uf.parent[rootB] = rootA
	case uf.rank[rootA] < uf.rank[rootB]:
		uf.parent[rootA] = rootB
	default:
		uf.parent[rootB] = rootA
		uf.rank[rootA]++
	}

	return nil
}

// AreInSameCluster reports whether a and b share a root.
func (uf *UnionFind) AreInSameCluster(a, b int) (bool, error) {
	rootA, err := uf.Find(a)
	if err != nil {
		return false, err
	}
	rootB, err := uf.Find(b)
	if err != nil {
		return false, err
	}

	return rootA == rootB, nil
}

// ShareResources reports whether a and b were served by exactly the same
// set of warehouses, regardless of order. It is false when either city has
// no recorded assignment. It never changes cluster state; callers decide
// whether a true result should lead to Union.
func (uf *UnionFind) ShareResources(a, b int) (bool, error) {
	for _, id := range [2]int{a, b} {
		if _, ok := uf.parent[id]; !ok {
			return false, errors.Wrapf(ErrUnknownCity, "shareResources(%d)", id)
		}
	}

	wa, okA := uf.cityWarehouses[a]
	wb, okB := uf.cityWarehouses[b]
	if !okA || !okB || wa == nil || wb == nil {
		return false, nil
	}
	if len(wa) != len(wb) {
		return false, nil
	}

	setA := make(map[int]struct{}, len(wa))
	for _, w := range wa {
		setA[w] = struct{}{}
	}
	setB := make(map[int]struct{}, len(wb))
	for _, w := range wb {
		if _, ok := setA[w]; !ok {
			return false, nil
		}
		setB[w] = struct{}{}
	}

	return len(setA) == len(setB), nil
}

// Clusters groups every registered id by its root. Member lists are
// ascending. The grouping is recomputed on every call.
func (uf *UnionFind) Clusters() map[int][]int {
	out := make(map[int][]int)
	for _, id := range uf.IDs() {
		root, _ := uf.Find(id) // registered ids always resolve
		out[root] = append(out[root], id)
	}

	return out
}

// Snapshot returns Clusters as a slice ordered by root id, convenient for
// reporting and comparison.
func (uf *UnionFind) Snapshot() []Cluster {
	groups := uf.Clusters()
	out := make([]Cluster, 0, len(groups))
	for root, members := range groups {
		out = append(out, Cluster{Root: root, Members: members})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Root < out[j].Root })

	return out
}

// MergeSharing unions every pair of registered cities (in ascending id
// order) for which ShareResources holds, and returns the number of unions
// that actually merged two clusters.
//
// Complexity: O(n²·w) for n cities with w warehouses each.
func (uf *UnionFind) MergeSharing() (int, error) {
	ids := uf.IDs()
	var merged int
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			share, err := uf.ShareResources(ids[i], ids[j])
			if err != nil {
				return merged, err
			}
			if !share {
				continue
			}
			same, err := uf.AreInSameCluster(ids[i], ids[j])
			if err != nil {
				return merged, err
			}
			if same {
				continue
			}
			if err = uf.Union(ids[i], ids[j]); err != nil {
				return merged, err
			}
			merged++
		}
	}

	return merged, nil
}
