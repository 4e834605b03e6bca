// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the storage, the builder and the
// arithmetic kernels. Options live in options.go, operation tags in api.go.
package matrix

import "fmt"

// Entry is a single stored (row, col, value) triple.
// Entries returned by this package are always ordered row-major ascending.
type Entry struct {
	Row   int   // row index (any sign)
	Col   int   // column index (any sign)
	Value int64 // stored value; may be an explicit 0 after Add/Subtract
}

// String renders the entry in the triplet text form "row col value".
func (e Entry) String() string {
	return fmt.Sprintf("%d %d %d", e.Row, e.Col, e.Value)
}

// row is the per-row column → value dictionary.
type row map[int]int64

// Matrix is an immutable sparse integer matrix.
//
// Storage is a map of row index to a map of column index to value. Rows are
// never stored empty. Build instances with New or Builder; every operation
// returns a fresh Matrix and leaves its operands untouched.
//
// Complexity notes: point queries are O(1) expected; sorted traversals cost
// O(nnz · log nnz) for the ordering step.
type Matrix struct {
	rows map[int]row // row → (col → value); never contains an empty row
	nnz  int         // number of stored entries (explicit zeros included)
}
