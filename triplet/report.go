// SPDX-License-Identifier: MIT

package triplet

import "fmt"

// Diagnostic describes one skipped input line.
type Diagnostic struct {
	Line int    // 1-based line number
	Text string // the raw line
	Err  error  // wraps ErrMalformedLine
}

// String renders "line N: <err>: <text>".
func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d: %v: %q", d.Line, d.Err, d.Text)
}

// Report summarizes a parse. Lines = Parsed + Blank + len(Diagnostics).
type Report struct {
	Lines       int // lines consumed
	Parsed      int // lines stored into the matrix, duplicates included
	Blank       int // whitespace-only lines
	Diagnostics []Diagnostic
}

// Clean reports whether no line was skipped.
func (r *Report) Clean() bool { return r == nil || len(r.Diagnostics) == 0 }
