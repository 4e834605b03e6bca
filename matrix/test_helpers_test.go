// Package matrix_test contains shared fixtures for the matrix tests.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/sparsecalc/builder"
	"github.com/katalvlaran/sparsecalc/matrix"
	"github.com/stretchr/testify/require"
)

// e is a short Entry literal for table fixtures.
func e(r, c int, v int64) matrix.Entry { return matrix.Entry{Row: r, Col: c, Value: v} }

// scenarioA and scenarioB are the two operands of the reference scenario:
// A = {0:{0:1, 1:2}}, B = {0:{0:3}, 1:{1:4}}.
func scenarioA() *matrix.Matrix { return matrix.New(e(0, 0, 1), e(0, 1, 2)) }
func scenarioB() *matrix.Matrix { return matrix.New(e(0, 0, 3), e(1, 1, 4)) }

// randomMatrix builds a seeded random operand with values in [-9,9]\{0}.
func randomMatrix(t testing.TB, seed int64, rows, cols int, density float64) *matrix.Matrix {
	t.Helper()
	m, err := builder.BuildMatrix(
		[]builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformValues(-9, 9), builder.WithOrigin(-2, -2)},
		builder.RandomSparse(rows, cols, density),
	)
	require.NoError(t, err)

	return m
}

// denseAt computes Σ_k a[r][k]·b[k][c] by brute force over the given index window.
func denseAt(a, b *matrix.Matrix, r, c, lo, hi int) int64 {
	var sum int64
	for k := lo; k <= hi; k++ {
		sum += a.At(r, k) * b.At(k, c)
	}

	return sum
}
