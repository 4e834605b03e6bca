// Package matrix_test contains unit tests for the Matrix storage, the Builder
// and the read API.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/sparsecalc/matrix"
	"github.com/stretchr/testify/require"
)

// TestBuilder_LastWriteWins ensures duplicate coordinates overwrite instead of summing.
func TestBuilder_LastWriteWins(t *testing.T) {
	b := matrix.NewBuilder()
	b.Set(1, 2, 3)
	b.Set(1, 2, 9)  // overwrite
	b.Set(-4, 0, 0) // explicit zero is stored
	require.Equal(t, 2, b.Len())

	m := b.Build()
	require.Equal(t, int64(9), m.At(1, 2))
	require.True(t, m.Has(-4, 0))
	require.Equal(t, 2, m.NNZ())

	// Build resets the builder; the built matrix is not aliased.
	require.Equal(t, 0, b.Len())
	b.Set(1, 2, 100)
	require.Equal(t, int64(9), m.At(1, 2))
}

// TestBuilder_ZeroValue verifies the zero Builder is usable.
func TestBuilder_ZeroValue(t *testing.T) {
	var b matrix.Builder
	b.Set(0, 0, 1)
	require.Equal(t, int64(1), b.Build().At(0, 0))

	var empty matrix.Builder
	require.True(t, empty.Build().IsEmpty())
}

// TestMatrix_NilIsEmpty verifies that a nil *Matrix behaves as the empty matrix.
func TestMatrix_NilIsEmpty(t *testing.T) {
	var m *matrix.Matrix

	require.Equal(t, int64(0), m.At(3, 3))
	require.False(t, m.Has(3, 3))
	require.False(t, m.HasRow(3))
	require.Equal(t, 0, m.NNZ())
	require.Equal(t, 0, m.RowCount())
	require.True(t, m.IsEmpty())
	require.Nil(t, m.Rows())
	require.Nil(t, m.Cols())
	require.Nil(t, m.Row(0))
	require.Empty(t, m.Entries())
	require.Equal(t, "", m.String())
	require.True(t, m.Equal(matrix.New()))
	require.True(t, m.Compact().IsEmpty())
	require.True(t, m.Transpose().IsEmpty())
}

// TestMatrix_SortedTraversal verifies row-major ascending order with negative indices.
func TestMatrix_SortedTraversal(t *testing.T) {
	m := matrix.New(e(2, 5, 1), e(-1, 3, 2), e(2, -7, 3), e(0, 0, 4))

	require.Equal(t, []int{-1, 0, 2}, m.Rows())
	require.Equal(t, []int{-7, 0, 3, 5}, m.Cols())
	require.Equal(t, []matrix.Entry{e(2, -7, 3), e(2, 5, 1)}, m.Row(2))
	require.Equal(t,
		[]matrix.Entry{e(-1, 3, 2), e(0, 0, 4), e(2, -7, 3), e(2, 5, 1)},
		m.Entries())
	require.Equal(t, "-1 3 2\n0 0 4\n2 -7 3\n2 5 1\n", m.String())
	require.Equal(t, 3, m.RowCount())
	require.Equal(t, 4, m.NNZ())
}

// TestMatrix_AllStopsEarly verifies the iterator honors an early break.
func TestMatrix_AllStopsEarly(t *testing.T) {
	m := matrix.New(e(0, 0, 1), e(0, 1, 2), e(1, 0, 3))

	var got []matrix.Entry
	for en := range m.All() {
		got = append(got, en)
		if len(got) == 2 {
			break
		}
	}
	require.Equal(t, []matrix.Entry{e(0, 0, 1), e(0, 1, 2)}, got)
}

// TestMatrix_EqualVsEquivalent separates stored-key equality from effective equality.
func TestMatrix_EqualVsEquivalent(t *testing.T) {
	withZero := matrix.New(e(0, 0, 1), e(1, 1, 0))
	without := matrix.New(e(0, 0, 1))

	require.False(t, withZero.Equal(without), "explicit zero is a stored key")
	require.True(t, withZero.Equivalent(without), "explicit zero is effectively absent")
	require.True(t, without.Equivalent(withZero))

	require.False(t, without.Equal(matrix.New(e(0, 0, 2))))
	require.False(t, without.Equivalent(matrix.New(e(0, 0, 2))))
	require.False(t, matrix.New(e(0, 0, 1)).Equal(matrix.New(e(0, 1, 1))))
}

// TestMatrix_Compact verifies explicit zeros and the rows they leave empty are dropped.
func TestMatrix_Compact(t *testing.T) {
	m := matrix.New(e(0, 0, 0), e(1, 0, 5), e(1, 1, 0))

	c := m.Compact()
	require.Equal(t, 1, c.NNZ())
	require.Equal(t, []int{1}, c.Rows())
	require.False(t, c.HasRow(0))
	require.Equal(t, 3, m.NNZ(), "Compact must not mutate its receiver")
}

// TestMatrix_Transpose verifies coordinates are swapped.
func TestMatrix_Transpose(t *testing.T) {
	m := matrix.New(e(0, 3, 1), e(2, 3, 2), e(-1, 0, 3))

	tr := m.Transpose()
	require.Equal(t, []matrix.Entry{e(0, -1, 3), e(3, 0, 1), e(3, 2, 2)}, tr.Entries())
	require.True(t, tr.Transpose().Equal(m))
}
