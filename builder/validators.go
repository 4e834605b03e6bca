// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
//
// Each function returns a sentinel wrapped via builderErrorf
// when its precondition is violated.
package builder

import "math"

// validateMin ensures that the provided integer 'got' is ≥ 'min'.
// Complexity: O(1) time and space.
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrTooFewRows, "parameter must be ≥ %d, got %d", min, got)
	}

	return nil
}

// validateDensity enforces d ∈ [MinDensity, MaxDensity].
// Complexity: O(1) time and space.
func validateDensity(method string, d float64) error {
	if math.IsNaN(d) || d < MinDensity || d > MaxDensity {
		return builderErrorf(method, ErrInvalidDensity, "density must be in [%.1f,%.1f], got %f", MinDensity, MaxDensity, d)
	}

	return nil
}
