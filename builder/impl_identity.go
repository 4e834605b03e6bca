// SPDX-License-Identifier: MIT
// Package: sparsecalc/builder
//
// impl_identity.go - Identity(n) and Diagonal(values...) constructors.
//
// Contract:
//   - Identity: n ≥ MinDim (else ErrTooFewRows); writes 1 at (o+i, o'+i).
//   - Diagonal: len(values) ≥ MinDim; zero values are skipped so no explicit
//     zero is stored.
//   - Origins come from WithOrigin; the value function is not consulted.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "github.com/katalvlaran/sparsecalc/matrix"

// Identity returns a Constructor writing the n×n identity.
func Identity(n int) Constructor {
	return func(b *matrix.Builder, cfg builderConfig) error {
		if err := validateMin(MethodIdentity, n, MinDim); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			b.Set(cfg.rowOrigin+i, cfg.colOrigin+i, 1)
		}

		return nil
	}
}

// Diagonal returns a Constructor writing values[i] at (i, i).
func Diagonal(values ...int64) Constructor {
	return func(b *matrix.Builder, cfg builderConfig) error {
		if err := validateMin(MethodDiagonal, len(values), MinDim); err != nil {
			return err
		}
		for i, v := range values {
			if v == 0 {
				continue // keep the result canonical
			}
			b.Set(cfg.rowOrigin+i, cfg.colOrigin+i, v)
		}

		return nil
	}
}
