// SPDX-License-Identifier: MIT
// Package: sparsecalc/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng       = nil            (pure/deterministic unless seeded)
//   • valueFn   = DefaultValueFn (constant DefaultValue)
//   • rowOrigin = 0, colOrigin = 0

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	rng       *rand.Rand // RNG for stochastic choices; nil means “no randomness”
	valueFn   ValueFn    // value generator for stored entries
	rowOrigin int        // index of the first generated row
	colOrigin int        // index of the first generated column
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		valueFn: DefaultValueFn,
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
