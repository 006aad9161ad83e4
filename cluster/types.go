// Package cluster defines the sentinel errors and snapshot types of the
// union-find cluster engine.
package cluster

import "errors"

// ErrUnknownCity indicates an id that was not registered at construction.
// It is returned wrapped with the failing operation and id; match it with
// errors.Is or errors.Cause.
var ErrUnknownCity = errors.New("cluster: unknown city id")

// Cluster is one group of city ids sharing a root.
type Cluster struct {
	// Root is the canonical representative, parent(Root) == Root.
	Root int
	// Members are the ids of the cluster in ascending order (Root included).
	Members []int
}
