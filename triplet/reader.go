// SPDX-License-Identifier: MIT
// Package triplet: matrix construction from lines.
//
// Implementation:
//   - Stage 1: pull lines lazily; an iteration error aborts the parse unless
//     it wraps ErrMalformedLine (an over-long line), which is a diagnostic.
//   - Stage 2: skip blank lines, tokenise the rest with ParseLine.
//   - Stage 3: store valid triples (last write wins), record the rest as
//     Diagnostics and log them at Warn.
//
// Fatal errors return a nil matrix. The Report is still returned so callers can
// see how far the parse got.

package triplet

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"strings"

	"github.com/katalvlaran/sparsecalc/matrix"
)

// maxLineSize bounds a single input line. Longer lines are drained and
// reported as ErrLineTooLong.
const maxLineSize = 1 << 20

// previewSize caps the text kept for an over-long line.
const previewSize = 32

// ParseLines builds a Matrix from a lazy sequence of lines.
// An error yielded by lines aborts with ErrInvalidFormat wrapping it, except
// errors wrapping ErrMalformedLine, which are recorded like any bad line.
func ParseLines(lines iter.Seq2[string, error], opts ...Option) (*matrix.Matrix, *Report, error) {
	o := gatherOptions(opts...)
	rep := &Report{}
	b := matrix.NewBuilder()

	for line, err := range lines {
		if err != nil && !errors.Is(err, ErrMalformedLine) {
			return nil, rep, fmt.Errorf("%w: line %d: %w", ErrInvalidFormat, rep.Lines+1, err)
		}
		rep.Lines++

		if err == nil && strings.TrimSpace(line) == "" {
			rep.Blank++
			continue
		}

		var ent matrix.Entry
		perr := err
		if perr == nil {
			ent, perr = ParseLine(line)
		}
		if perr != nil {
			d := Diagnostic{Line: rep.Lines, Text: line, Err: perr}
			rep.Diagnostics = append(rep.Diagnostics, d)
			o.logger.Warn("skipping line", slog.Int("line", d.Line), slog.String("text", line), slog.Any("error", perr))
			continue
		}

		b.Set(ent.Row, ent.Col, ent.Value)
		rep.Parsed++
	}

	return b.Build(), rep, nil
}

// Parse reads r line by line and builds a Matrix.
func Parse(r io.Reader, opts ...Option) (*matrix.Matrix, *Report, error) {
	return ParseLines(Lines(r), opts...)
}

// ParseString is Parse over an in-memory string.
func ParseString(s string, opts ...Option) (*matrix.Matrix, *Report, error) {
	return Parse(strings.NewReader(s), opts...)
}

// Lines adapts r into a lazy line sequence. A line longer than maxLineSize is
// consumed in full and yielded as a short preview with ErrLineTooLong, so the
// lines after it are still read. A read failure is yielded once as the final
// element.
func Lines(r io.Reader) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		br := bufio.NewReaderSize(r, 64*1024)
		var buf []byte
		tooLong := false
		for {
			frag, isPrefix, err := br.ReadLine()
			if err != nil {
				if err != io.EOF {
					yield("", err)
				}
				return
			}
			if !tooLong {
				buf = append(buf, frag...)
				if len(buf) > maxLineSize {
					tooLong = true
					buf = buf[:previewSize]
				}
			}
			if isPrefix {
				continue
			}

			var ok bool
			if tooLong {
				ok = yield(string(buf)+"...", fmt.Errorf("%w: longer than %d bytes", ErrLineTooLong, maxLineSize))
			} else {
				ok = yield(string(buf), nil)
			}
			if !ok {
				return
			}
			buf, tooLong = buf[:0], false
		}
	}
}
