// SPDX-License-Identifier: MIT
// Package: sparsecalc/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildMatrix(bopts, cons...). Resolves cfg, runs cons in order,
//     builds once at the end.
//   - Factories are implemented in impl_*.go.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical matrices.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sparsecalc/matrix"
)

// Constructor writes entries into b using the resolved builderConfig.
// Constructors MUST validate parameters early, return sentinel errors (no
// panics) and never write a zero value.
type Constructor func(b *matrix.Builder, cfg builderConfig) error

// BuildMatrix resolves the builder configuration from bopts and applies all
// constructors in order to a single matrix.Builder. Later constructors
// overwrite earlier ones at shared coordinates. Any constructor error is
// wrapped with "BuildMatrix: %w" and returned immediately.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildMatrix(bopts []BuilderOption, cons ...Constructor) (*matrix.Matrix, error) {
	cfg := newBuilderConfig(bopts...)
	b := matrix.NewBuilder()

	for _, c := range cons {
		if c == nil {
			continue
		}
		if err := c(b, cfg); err != nil {
			return nil, fmt.Errorf("BuildMatrix: %w", err)
		}
	}

	return b.Build(), nil
}
