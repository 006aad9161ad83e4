// Package matrix offers the dense numeric table used for transportation costs.
//
// The matrix package provides:
//
//   - Dense: a row-major r×c float64 matrix with bounds-checked At/Set,
//     row export, deep Clone and exact Equal.
//   - FromRows / ToRows: conversions to and from [][]float64 for reporting.
//
// Unlike general linear-algebra matrices, shapes with zero rows or zero
// columns are valid: a run with no warehouses produces a |cities|×0 table.
//
// Errors:
//
//	ErrBadShape    - negative dimensions.
//	ErrOutOfRange  - row/column index outside the matrix.
//	ErrRaggedRows  - FromRows input is not rectangular.
//	ErrNaNInf      - Set with a non-finite value.
package matrix
