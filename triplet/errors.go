// SPDX-License-Identifier: MIT
// Package triplet: sentinel error set.
//
// Fatal (returned by Parse*, no matrix):
//   - ErrSourceNotFound, ErrInvalidFormat.
//
// Non-fatal (recorded in Report.Diagnostics, never returned by Parse*):
//   - ErrTokenCount, ErrBadNumber, ErrLineTooLong; all match ErrMalformedLine
//     via errors.Is.

package triplet

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceNotFound indicates the input file does not exist.
	ErrSourceNotFound = errors.New("triplet: source not found")

	// ErrInvalidFormat indicates the source exists but could not be opened or read.
	ErrInvalidFormat = errors.New("triplet: invalid matrix format")

	// ErrMalformedLine is the parent of every per-line failure.
	ErrMalformedLine = errors.New("triplet: malformed line")

	// ErrTokenCount indicates a line with other than three integer tokens.
	ErrTokenCount = fmt.Errorf("%w: expected 3 integers", ErrMalformedLine)

	// ErrBadNumber indicates a token that does not fit its integer type.
	ErrBadNumber = fmt.Errorf("%w: integer out of range", ErrMalformedLine)

	// ErrLineTooLong indicates a line over the reader's size bound.
	ErrLineTooLong = fmt.Errorf("%w: line too long", ErrMalformedLine)
)
