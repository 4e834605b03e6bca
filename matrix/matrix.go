// SPDX-License-Identifier: MIT

package matrix

import (
	"iter"
	"maps"
	"slices"
	"strings"
)

// New returns a Matrix holding the given entries.
// Later entries overwrite earlier ones at the same coordinate.
// Complexity: O(len(entries)).
func New(entries ...Entry) *Matrix {
	b := NewBuilder()
	for _, e := range entries {
		b.Set(e.Row, e.Col, e.Value)
	}

	return b.Build()
}

// At returns the value stored at (r, c), or 0 when nothing is stored.
// Complexity: O(1) expected.
func (m *Matrix) At(r, c int) int64 {
	if m == nil {
		return 0
	}

	return m.rows[r][c] // missing row yields a nil map; lookup on nil map is 0
}

// Has reports whether (r, c) is stored, explicit zeros included.
func (m *Matrix) Has(r, c int) bool {
	if m == nil {
		return false
	}
	_, ok := m.rows[r][c]

	return ok
}

// HasRow reports whether row r holds at least one stored entry.
func (m *Matrix) HasRow(r int) bool {
	if m == nil {
		return false
	}
	_, ok := m.rows[r]

	return ok
}

// NNZ returns the number of stored entries. Explicit zeros count.
func (m *Matrix) NNZ() int {
	if m == nil {
		return 0
	}

	return m.nnz
}

// RowCount returns the number of stored rows.
func (m *Matrix) RowCount() int {
	if m == nil {
		return 0
	}

	return len(m.rows)
}

// IsEmpty reports whether no entry is stored.
func (m *Matrix) IsEmpty() bool { return m.NNZ() == 0 }

// Rows returns the stored row indices in ascending order.
// Complexity: O(R log R).
func (m *Matrix) Rows() []int {
	if m == nil {
		return nil
	}

	return slices.Sorted(maps.Keys(m.rows))
}

// Cols returns the distinct stored column indices in ascending order.
// Complexity: O(nnz + C log C).
func (m *Matrix) Cols() []int {
	if m == nil {
		return nil
	}
	seen := make(map[int]struct{})
	for _, cols := range m.rows {
		for c := range cols {
			seen[c] = struct{}{}
		}
	}

	return slices.Sorted(maps.Keys(seen))
}

// Row returns the entries of row r ordered by column.
// A row without entries yields nil.
func (m *Matrix) Row(r int) []Entry {
	if m == nil {
		return nil
	}
	cols, ok := m.rows[r]
	if !ok {
		return nil
	}
	out := make([]Entry, 0, len(cols))
	for _, c := range slices.Sorted(maps.Keys(cols)) {
		out = append(out, Entry{Row: r, Col: c, Value: cols[c]})
	}

	return out
}

// All yields every stored entry in row-major ascending order.
func (m *Matrix) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, r := range m.Rows() {
			for _, e := range m.Row(r) {
				if !yield(e) {
					return
				}
			}
		}
	}
}

// Entries returns every stored entry in row-major ascending order.
// Complexity: O(nnz log nnz).
func (m *Matrix) Entries() []Entry {
	out := make([]Entry, 0, m.NNZ())
	for e := range m.All() {
		out = append(out, e)
	}

	return out
}

// Equal reports whether m and other store exactly the same coordinates with
// the same values. An explicit zero is not equal to an absent entry here;
// use Equivalent to compare effective values.
func (m *Matrix) Equal(other *Matrix) bool {
	if m.NNZ() != other.NNZ() || m.RowCount() != other.RowCount() {
		return false
	}
	if m.IsEmpty() {
		return true
	}
	for r, cols := range m.rows {
		ocols, ok := other.rows[r]
		if !ok || len(ocols) != len(cols) {
			return false
		}
		for c, v := range cols {
			ov, ok := ocols[c]
			if !ok || ov != v {
				return false
			}
		}
	}

	return true
}

// Equivalent reports whether m and other agree on the effective value of
// every coordinate, treating explicit zeros as absent.
func (m *Matrix) Equivalent(other *Matrix) bool {
	return covers(m, other) && covers(other, m)
}

// covers reports whether every stored entry of a has the same effective value in b.
func covers(a, b *Matrix) bool {
	if a == nil {
		return true
	}
	for r, cols := range a.rows {
		for c, v := range cols {
			if b.At(r, c) != v {
				return false
			}
		}
	}

	return true
}

// Compact returns a copy of m without explicit zero entries.
// Rows left empty are dropped, restoring canonical sparsity.
func (m *Matrix) Compact() *Matrix {
	b := NewBuilder()
	if m == nil {
		return b.Build()
	}
	for r, cols := range m.rows {
		for c, v := range cols {
			if v != 0 {
				b.Set(r, c, v)
			}
		}
	}

	return b.Build()
}

// Transpose returns mᵀ: every (r, c, v) becomes (c, r, v).
// Complexity: O(nnz).
func (m *Matrix) Transpose() *Matrix {
	b := NewBuilder()
	if m == nil {
		return b.Build()
	}
	for r, cols := range m.rows {
		for c, v := range cols {
			b.Set(c, r, v)
		}
	}

	return b.Build()
}

// String renders m in the triplet text form, one "row col value" line per
// stored entry in row-major order.
func (m *Matrix) String() string {
	var sb strings.Builder
	for e := range m.All() {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}

	return sb.String()
}
