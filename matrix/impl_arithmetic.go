// SPDX-License-Identifier: MIT
// Package matrix provides the sparse arithmetic kernels: coordinate-aligned
// addition and subtraction, and the row-major sparse product.
//
// Purpose:
//   - Keep every kernel pure: operands are read-only, the result is always a
//     freshly built Matrix.
//   - Keep the kernels total: nil operands are the empty matrix, nothing fails.
//
// Notes:
//   - Add/Subtract keep explicit zeros (a+b == 0 is stored). Use Compact to drop them.
//   - Multiply never stores a zero sum; this is where sparsity is enforced.

package matrix

import (
	"golang.org/x/sync/errgroup"
)

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
//
// Implementation:
//   - Stage 1: every coordinate of a gets a[r][c] + sign*b[r][c] (absent b → 0).
//   - Stage 2: every coordinate of b not stored in a gets sign*b[r][c].
//
// Behavior highlights:
//   - The merge checks coordinate existence, not row existence: a b entry in a
//     row that a already has, but at a new column, is still copied.
//   - Explicit zeros from either operand or from cancellation are retained.
//
// Complexity:
//   - Time O(nnz(a) + nnz(b)), Space O(nnz(a) + nnz(b)).
func addSub(a, b *Matrix, sign int64) *Matrix {
	out := NewBuilder()

	// Stage 1: a's coordinates, aligned with b.
	if a != nil {
		for r, cols := range a.rows {
			for c, v := range cols {
				out.Set(r, c, v+sign*b.At(r, c)) // b.At is nil-safe and 0 when absent
			}
		}
	}

	// Stage 2: coordinates only b holds.
	if b != nil {
		for r, cols := range b.rows {
			for c, v := range cols {
				if a.Has(r, c) {
					continue // already merged in stage 1
				}
				out.Set(r, c, sign*v)
			}
		}
	}

	return out.Build()
}

// Add returns the element-wise sum a + b.
// The key set of the result is the union of both key sets, so Add(a, b) and
// Add(b, a) store the same coordinates with the same values.
// Complexity: O(nnz(a) + nnz(b)).
func Add(a, b *Matrix) *Matrix { return addSub(a, b, +1) }

// Subtract returns the element-wise difference a − b.
// Coordinates held only by b are stored negated.
// Complexity: O(nnz(a) + nnz(b)).
func Subtract(a, b *Matrix) *Matrix { return addSub(a, b, -1) }

// Multiply returns the sparse product of a and b.
//
// Implementation:
//   - Stage 1: resolve options (convention, workers).
//   - Stage 2: for every row r of a, walk k ∈ cols(a[r]) ∩ rows(b) and
//     accumulate a[r][k]·b[k][c] into a per-row accumulator (i→k→j order).
//     Under RowKeyed, c must also be a row key of b.
//   - Stage 3: drop zero sums and assemble the result in ascending row order.
//
// Behavior highlights:
//   - No stored entry of the result is ever zero.
//   - Rows are independent; WithWorkers(n) computes them on up to n goroutines
//     and produces the same Matrix as the sequential path.
//
// Complexity:
//   - Time O(Σ_r Σ_{k∈a[r]} |b[k]|); Space O(nnz(result)) plus one accumulator per row.
func Multiply(a, b *Matrix, opts ...MulOption) *Matrix {
	o := gatherMulOptions(opts...)
	if a.IsEmpty() || b.IsEmpty() {
		return NewBuilder().Build()
	}

	rowsA := a.Rows() // ascending; fixes the slot each row result lands in
	results := make([]row, len(rowsA))

	if o.workers <= 1 || len(rowsA) < 2 {
		for i, r := range rowsA {
			results[i] = mulRow(a.rows[r], b, o.convention)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(o.workers)
		for i, r := range rowsA {
			g.Go(func() error {
				results[i] = mulRow(a.rows[r], b, o.convention) // each goroutine owns slot i
				return nil
			})
		}
		_ = g.Wait() // row kernels cannot fail
	}

	out := &Matrix{rows: make(map[int]row, len(rowsA))}
	for i, r := range rowsA {
		if len(results[i]) == 0 {
			continue // no row is stored empty
		}
		out.rows[r] = results[i]
		out.nnz += len(results[i])
	}

	return out
}

// mulRow computes one row of a·b from arow = a[r]. It returns nil when every
// sum cancels or no k of arow is a row of b.
func mulRow(arow row, b *Matrix, conv Convention) row {
	acc := make(row)
	for k, av := range arow {
		if av == 0 {
			continue // explicit zero contributes nothing
		}
		brow, ok := b.rows[k]
		if !ok {
			continue // k is not a row of b: outside the intersection
		}
		for c, bv := range brow {
			if conv == RowKeyed && !b.HasRow(c) {
				continue
			}
			acc[c] += av * bv
		}
	}

	// Sparsity filter: zero sums are never stored.
	for c, v := range acc {
		if v == 0 {
			delete(acc, c)
		}
	}
	if len(acc) == 0 {
		return nil
	}

	return acc
}
