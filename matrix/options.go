// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Multiply.
// This file defines:
//   - Convention (which keys of b act as result columns),
//   - MulOption / mulOptions with documented defaults,
//   - WithX constructors that panic on nonsensical values (programmer error).
//
// Design goals:
//   - Deterministic behavior: options never change the result between the
//     sequential and the parallel path.
//   - No dead switches: each option changes observable behavior or scheduling.
package matrix

import (
	"fmt"
	"strings"
)

// Convention selects how Multiply enumerates candidate result columns.
type Convention int

const (
	// Standard uses b's actual column keys: C[r][c] = Σ_k a[r][k]·b[k][c].
	Standard Convention = iota

	// RowKeyed restricts candidate columns to the row keys of b, which is the
	// traversal of storage formats where both axes are keyed by row. Products
	// landing in a column that is not also a row of b are dropped.
	RowKeyed
)

// String returns the config/CLI spelling of the convention.
func (c Convention) String() string {
	switch c {
	case Standard:
		return "standard"
	case RowKeyed:
		return "row-keyed"
	default:
		return fmt.Sprintf("Convention(%d)", int(c))
	}
}

// ParseConvention maps "standard" and "row-keyed" (case-insensitive) to a Convention.
func ParseConvention(s string) (Convention, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "standard":
		return Standard, nil
	case "row-keyed", "rowkeyed", "row_keyed":
		return RowKeyed, nil
	default:
		return Standard, fmt.Errorf("%w: %q", ErrUnknownConvention, s)
	}
}

// Defaults (single source of truth for zero-value behavior).
const (
	// DefaultConvention is the column convention used when none is given.
	DefaultConvention = Standard

	// DefaultWorkers keeps Multiply single-threaded.
	DefaultWorkers = 1
)

// Internal panic messages (no magic strings).
const (
	panicWorkersInvalid    = "matrix: WithWorkers: n must be >= 1"
	panicConventionInvalid = "matrix: WithConvention: unknown convention"
)

// mulOptions is the resolved Multiply configuration.
type mulOptions struct {
	convention Convention
	workers    int
}

// MulOption customizes Multiply.
type MulOption func(*mulOptions)

// WithConvention selects the column convention. Panics on values other than
// Standard and RowKeyed.
func WithConvention(c Convention) MulOption {
	if c != Standard && c != RowKeyed {
		panic(panicConventionInvalid)
	}

	return func(o *mulOptions) { o.convention = c }
}

// WithWorkers lets Multiply process rows of a on up to n goroutines.
// n == 1 keeps the sequential path. Panics when n < 1.
func WithWorkers(n int) MulOption {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *mulOptions) { o.workers = n }
}

// gatherMulOptions applies opts over the defaults. Nil options are skipped.
func gatherMulOptions(opts ...MulOption) mulOptions {
	o := mulOptions{convention: DefaultConvention, workers: DefaultWorkers}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
