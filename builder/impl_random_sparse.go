// SPDX-License-Identifier: MIT
// Package: sparsecalc/builder
//
// impl_random_sparse.go - implementation of RandomSparse(rows, cols, density).
//
// Canonical model:
//   - Bernoulli generator: each cell (i, j) of the rows×cols window is stored
//     independently with probability density.
//
// Contract:
//   - rows, cols ≥ 1 (else ErrTooFewRows).
//   - 0 ≤ density ≤ 1 (else ErrInvalidDensity).
//   - cfg.rng must be non-nil when 0 < density < 1 (else ErrNeedRandSource).
//   - Value policy: cfg.valueFn(cfg.rng); never zero.
//
// Complexity:
//   - Time: O(rows·cols) Bernoulli trials.
//   - Space: O(stored entries).
//
// Determinism:
//   - Stable trial order: i asc, then j asc. Fixed seed ⇒ identical matrix.

package builder

import "github.com/katalvlaran/sparsecalc/matrix"

// RandomSparse returns a Constructor that samples a rows×cols sparse matrix.
func RandomSparse(rows, cols int, density float64) Constructor {
	return func(b *matrix.Builder, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast, no writes on invalid input).
		if err := validateMin(MethodRandomSparse, rows, MinDim); err != nil {
			return err
		}
		if err := validateMin(MethodRandomSparse, cols, MinDim); err != nil {
			return err
		}
		if err := validateDensity(MethodRandomSparse, density); err != nil {
			return err
		}
		if density == MinDensity {
			return nil // nothing to sample
		}
		rng := cfg.rng
		if rng == nil && density < MaxDensity {
			return builderErrorf(MethodRandomSparse, ErrNeedRandSource, "density=%f", density)
		}

		// 2) Trials in a stable order.
		var i, j int
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				if rng != nil && density < MaxDensity && rng.Float64() >= density {
					continue
				}
				b.Set(cfg.rowOrigin+i, cfg.colOrigin+j, cfg.valueFn(rng))
			}
		}

		return nil
	}
}
