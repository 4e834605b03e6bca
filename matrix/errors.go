// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Arithmetic on Matrix values is total and returns no errors. The sentinels
// below cover the parsing helpers of this package (ParseConvention, ParseOp);
// callers match them with errors.Is.

package matrix

import "errors"

var (
	// ErrUnknownConvention is returned by ParseConvention for unrecognised names.
	ErrUnknownConvention = errors.New("matrix: unknown multiply convention")

	// ErrUnknownOp is returned by ParseOp for unrecognised operation names.
	ErrUnknownOp = errors.New("matrix: unknown operation")
)
