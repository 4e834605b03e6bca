// SPDX-License-Identifier: MIT
// Package: matrix
//
// builder.go - the single mutable entry point for constructing a Matrix.
//
// Contract:
//   - Set stores v at (r, c); the last write for a coordinate wins.
//   - Build hands the accumulated storage to a new Matrix and resets the
//     builder, so a built Matrix is never aliased by a live builder.
//   - A zero value passed to Set is stored as an explicit zero: parsed input
//     "3 4 0" is a present coordinate, exactly as it was read.
//
// Complexity:
//   - Set: O(1) amortized. Build: O(1).

package matrix

// Builder accumulates entries for a Matrix. The zero value is ready to use.
// A Builder is not safe for concurrent use.
type Builder struct {
	rows map[int]row
	nnz  int
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{rows: make(map[int]row)}
}

// Set stores v at (r, c), overwriting any previous value.
func (b *Builder) Set(r, c int, v int64) {
	if b.rows == nil {
		b.rows = make(map[int]row)
	}
	cols, ok := b.rows[r]
	if !ok {
		cols = make(row)
		b.rows[r] = cols
	}
	if _, exists := cols[c]; !exists {
		b.nnz++ // new coordinate; overwrites keep the count
	}
	cols[c] = v
}

// Len returns the number of distinct coordinates set so far.
func (b *Builder) Len() int { return b.nnz }

// Build returns the Matrix and resets the Builder to empty.
func (b *Builder) Build() *Matrix {
	rows := b.rows
	if rows == nil {
		rows = make(map[int]row)
	}
	m := &Matrix{rows: rows, nnz: b.nnz}

	// Detach storage: further Set calls start a fresh matrix.
	b.rows = make(map[int]row)
	b.nnz = 0

	return m
}
