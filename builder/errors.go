// SPDX-License-Identifier: MIT
// Package: sparsecalc/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w via builderErrorf.
//   • Constructors MUST NOT panic at runtime; validation panics are confined
//     to option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewRows indicates that a size parameter (n, rows, cols, len(values))
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewRows = errors.New("builder: size parameter too small")

// ErrInvalidDensity indicates that a density is outside the closed interval [0,1].
var ErrInvalidDensity = errors.New("builder: density out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// builderErrorf prefixes a sentinel with the constructor name and detail.
func builderErrorf(method string, sentinel error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
