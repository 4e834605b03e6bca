// Package builder provides helper functions and types for configuring the
// value distribution of generated entries.
package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultValue is the value assigned to each generated entry when no custom
// ValueFn is provided.
const DefaultValue int64 = 1

// ValueFn produces an entry value given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed and must never return 0.
type ValueFn func(rng *rand.Rand) int64

// DefaultValueFn always returns DefaultValue.
// Complexity: O(1) time, O(1) space. Never panics.
func DefaultValueFn(_ *rand.Rand) int64 {
	return DefaultValue
}

// ConstantValueFn returns a ValueFn that always yields v. Panics if v == 0,
// since a generated zero would be stored as an explicit entry.
func ConstantValueFn(v int64) ValueFn {
	if v == 0 {
		panic("ConstantValueFn: value must be nonzero")
	}

	return func(_ *rand.Rand) int64 {
		return v
	}
}

// UniformValueFn returns a ValueFn sampling uniformly among the nonzero
// integers of [min, max]. Panics if max < min or the interval holds only 0.
// If rng is nil, yields the nonzero bound closest to zero.
// Complexity: O(1) time, O(1) space.
func UniformValueFn(min, max int64) ValueFn {
	if max < min {
		panic(fmt.Sprintf("UniformValueFn: require min ≤ max, got min=%d, max=%d", min, max))
	}
	if min == 0 && max == 0 {
		panic("UniformValueFn: interval [0,0] has no nonzero value")
	}

	// Count of nonzero candidates, computed in uint64 so the full int64 range
	// does not overflow; zero is skipped by shifting draws ≥ 0 up by one.
	span := uint64(max) - uint64(min) + 1 // wraps to 0 for [MinInt64, MaxInt64]
	hasZero := min <= 0 && max >= 0
	if hasZero {
		span--
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil {
			switch {
			case min > 0:
				return min
			case max < 0:
				return max
			case max > 0:
				return 1
			default:
				return -1
			}
		}
		v := int64(uint64(min) + uint64n(rng, span))
		if hasZero && v >= 0 {
			v++ // skip zero
		}

		return v
	}
}

// uint64n returns a uniform draw from [0, n). n == 0 stands for 2^64.
// Spans that fit Int63n use it, so seeded streams stay stable.
func uint64n(rng *rand.Rand, n uint64) uint64 {
	if n != 0 && n <= math.MaxInt64 {
		return uint64(rng.Int63n(int64(n)))
	}
	if n == 0 {
		return rng.Uint64()
	}
	limit := math.MaxUint64 - math.MaxUint64%n // largest multiple of n
	for {
		if v := rng.Uint64(); v < limit {
			return v % n
		}
	}
}

// WithConstantValue sets a fixed entry value via ConstantValueFn.
func WithConstantValue(v int64) BuilderOption {
	return WithValueFn(ConstantValueFn(v))
}

// WithUniformValues sets values ∼ U{min..max}\{0} via UniformValueFn.
func WithUniformValues(min, max int64) BuilderOption {
	return WithValueFn(UniformValueFn(min, max))
}
