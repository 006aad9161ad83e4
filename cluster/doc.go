// Package cluster tracks which cities end up grouped because they draw from
// the same warehouses, using a disjoint-set (union-find) forest.
//
// Operations
//
//   - Find(id)              root of id's cluster, with full path compression.
//   - Union(a, b)           union by rank; equal ranks root b under a.
//   - AreInSameCluster(a,b) Find(a) == Find(b).
//   - ShareResources(a,b)   set equality of the warehouses that served a and b.
//   - Clusters()/Snapshot() current partition, recomputed on demand.
//   - MergeSharing()        Union every pair for which ShareResources holds.
//
// ShareResources is a trigger condition: it only reads the city → warehouses
// mapping handed to New and never merges anything by itself.
//
// Find is iterative (locate root, then compress the walked path), so very
// deep forests cannot exhaust the stack.
//
// Error Conditions
//
//	Every operation taking an id returns ErrUnknownCity (wrapped with the
//	operation and id via github.com/pkg/errors) when the id was never
//	registered. Nothing else fails.
//
// Complexity: near-constant amortized time per operation, O(n) memory.
package cluster
