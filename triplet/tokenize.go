// SPDX-License-Identifier: MIT
// Package triplet: line tokenisation.
//
// Contract:
//   - A token is an optional '-' immediately followed by decimal digits.
//     Every other rune separates tokens ("1-2" is the tokens 1 and -2).
//   - Exactly three tokens are required: row, col, value.
//   - Row and col must fit int, value must fit int64.
//
// Complexity: O(len(line)).

package triplet

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/katalvlaran/sparsecalc/matrix"
)

// tokenRE is the integer token pattern.
var tokenRE = regexp.MustCompile(`-?\d+`)

// Tokens returns the integer tokens of line in order of appearance.
func Tokens(line string) []string {
	return tokenRE.FindAllString(line, -1)
}

// ParseLine converts one line into an Entry.
// Errors wrap ErrTokenCount or ErrBadNumber (both ErrMalformedLine).
func ParseLine(line string) (matrix.Entry, error) {
	toks := Tokens(line)
	if len(toks) != 3 {
		return matrix.Entry{}, fmt.Errorf("%w, got %d", ErrTokenCount, len(toks))
	}

	r, err := strconv.Atoi(toks[0])
	if err != nil {
		return matrix.Entry{}, fmt.Errorf("%w: row %s", ErrBadNumber, toks[0])
	}
	c, err := strconv.Atoi(toks[1])
	if err != nil {
		return matrix.Entry{}, fmt.Errorf("%w: col %s", ErrBadNumber, toks[1])
	}
	v, err := strconv.ParseInt(toks[2], 10, 64)
	if err != nil {
		return matrix.Entry{}, fmt.Errorf("%w: value %s", ErrBadNumber, toks[2])
	}

	return matrix.Entry{Row: r, Col: c, Value: v}, nil
}
