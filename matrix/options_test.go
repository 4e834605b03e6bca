// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/sparsecalc/matrix"
	"github.com/stretchr/testify/require"
)

// TestDefaults_Documented verifies the documented defaults.
func TestDefaults_Documented(t *testing.T) {
	require.Equal(t, matrix.Standard, matrix.DefaultConvention)
	require.Equal(t, 1, matrix.DefaultWorkers)
}

// TestOptions_PanicOnNonsense ensures option constructors reject meaningless values.
func TestOptions_PanicOnNonsense(t *testing.T) {
	require.Panics(t, func() { matrix.WithWorkers(0) })
	require.Panics(t, func() { matrix.WithWorkers(-3) })
	require.Panics(t, func() { matrix.WithConvention(matrix.Convention(7)) })
	require.NotPanics(t, func() { matrix.WithWorkers(1) })
}

// TestOptions_NilSkipped verifies nil options are ignored by Multiply.
func TestOptions_NilSkipped(t *testing.T) {
	want := matrix.Multiply(scenarioA(), scenarioB())
	got := matrix.Multiply(scenarioA(), scenarioB(), nil, matrix.WithWorkers(2), nil)
	require.True(t, want.Equal(got))
}

// TestParseConvention covers accepted spellings and the error sentinel.
func TestParseConvention(t *testing.T) {
	cases := map[string]matrix.Convention{
		"":           matrix.Standard,
		"standard":   matrix.Standard,
		" STANDARD ": matrix.Standard,
		"row-keyed":  matrix.RowKeyed,
		"RowKeyed":   matrix.RowKeyed,
		"row_keyed":  matrix.RowKeyed,
	}
	for in, want := range cases {
		got, err := matrix.ParseConvention(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := matrix.ParseConvention("column-keyed")
	require.ErrorIs(t, err, matrix.ErrUnknownConvention)

	require.Equal(t, "standard", matrix.Standard.String())
	require.Equal(t, "row-keyed", matrix.RowKeyed.String())
	require.Equal(t, "Convention(9)", matrix.Convention(9).String())
}
