// SPDX-License-Identifier: MIT
// Package triplet: output rendering.
//
// Layout:
//
//	Matrix 1 (a.txt):
//	0 0 1
//	0 1 2
//
//	Addition Result:
//	0 0 4
//
// Entries are emitted in ascending row, then column order, so output is
// reproducible byte for byte.

package triplet

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/sparsecalc/matrix"
)

// outputPerm is the mode of files created by AppendFile.
const outputPerm = 0o644

// Section is a titled matrix block.
type Section struct {
	Title  string
	Matrix *matrix.Matrix
}

// WriteSection writes "Title:" and then one "r c v" line per entry.
func WriteSection(w io.Writer, s Section) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%s:\n", s.Title); err != nil {
		return err
	}
	for e := range s.Matrix.All() {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", e.Row, e.Col, e.Value); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// Document is an ordered list of sections. The zero value is empty and ready.
type Document struct {
	sections []Section
}

// Add appends a section.
func (d *Document) Add(title string, m *matrix.Matrix) {
	d.sections = append(d.sections, Section{Title: title, Matrix: m})
}

// Len returns the number of sections.
func (d *Document) Len() int { return len(d.sections) }

// Sections returns a copy of the sections in order.
func (d *Document) Sections() []Section {
	out := make([]Section, len(d.sections))
	copy(out, d.sections)

	return out
}

// Reset drops every section.
func (d *Document) Reset() { d.sections = d.sections[:0] }

// WriteTo renders every section, separated by a blank line.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	for i, s := range d.sections {
		if i > 0 {
			if _, err := io.WriteString(cw, "\n"); err != nil {
				return cw.n, err
			}
		}
		if err := WriteSection(cw, s); err != nil {
			return cw.n, err
		}
	}

	return cw.n, nil
}

// String renders the document.
func (d *Document) String() string {
	var sb strings.Builder
	_, _ = d.WriteTo(&sb) // strings.Builder never fails

	return sb.String()
}

// Format renders a single matrix as its "r c v" lines without a title.
func Format(m *matrix.Matrix) string { return m.String() }

// AppendFile appends content to path, creating the file when absent.
// Existing content is never truncated.
func AppendFile(path, content string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, outputPerm)
	if err != nil {
		return fmt.Errorf("AppendFile: %w", err)
	}
	if _, err = f.WriteString(content); err != nil {
		_ = f.Close()
		return fmt.Errorf("AppendFile: %w", err)
	}

	return f.Close()
}

// countingWriter tracks bytes written for io.WriterTo.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)

	return n, err
}
