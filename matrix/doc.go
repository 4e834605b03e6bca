// Package matrix implements an immutable sparse integer matrix stored as a
// dictionary of rows, each row a dictionary of column → value.
//
// The package provides:
//
//   - Matrix, an immutable value with O(1) point lookup and sorted traversal.
//   - Builder, the only mutable surface (last write wins per coordinate).
//   - Add and Subtract, coordinate-aligned merges that keep explicit zeros.
//   - Multiply, a row-major sparse product that never stores a zero sum,
//     under either the Standard or the RowKeyed column convention.
//
// Indices are plain ints and may be negative; there is no declared shape.
// A coordinate without an entry has value 0. A nil *Matrix is the empty matrix
// everywhere in this package, so the arithmetic never fails.
//
// Complexity:
//
//   - At/Has: O(1) expected.
//   - Add/Subtract: O(nnz(a) + nnz(b)).
//   - Multiply: O(Σ_r Σ_{k∈a[r]} |b[k]|), bounded by rows(a)·rows(b)·avg nnz.
//
// See example_test.go for usage patterns.
package matrix
