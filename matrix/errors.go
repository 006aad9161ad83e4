// Package matrix: sentinel error set.
// All Dense methods return these sentinels (possibly wrapped with method
// context via fmt.Errorf("...: %w")); callers match with errors.Is.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape is negative.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set/Row) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrRaggedRows indicates rows of differing lengths passed to FromRows.
	ErrRaggedRows = errors.New("matrix: rows have differing lengths")

	// ErrNaNInf signals a NaN or ±Inf value passed to Set.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
