// SPDX-License-Identifier: MIT

// Package triplet is the text codec for sparse matrices.
//
// 🚀 What is triplet?
//
//	A line-oriented format: one "row col value" triple per line. Separators are
//	anything that is not part of a signed decimal integer, so "1 2 3",
//	"1,2,3" and "(1; 2) = 3" all describe the same entry.
//
// ✨ Reading
//
//   - ParseLine tokenises a single line.
//   - ParseLines builds a matrix from a lazy iter.Seq2 of lines.
//   - Parse reads an io.Reader; ParseFile opens a path, optionally through a
//     read-only memory map (WithMmap).
//   - Blank lines are ignored. Malformed lines are skipped and reported in the
//     returned Report; they never abort a parse.
//   - A missing file yields ErrSourceNotFound; any other open or read failure
//     yields ErrInvalidFormat wrapping the cause. Neither returns a matrix.
//
// ✨ Writing
//
//   - Section is a titled matrix; WriteSection renders "Title:" followed by one
//     "r c v" line per entry in ascending row, then column order.
//   - Document collects sections and separates them with a blank line.
//   - AppendFile appends to a file, creating it when absent.
//
// Example:
//
//	m, rep, err := triplet.ParseFile("a.txt", triplet.WithLogger(log))
//	if err != nil { return err }
//	for _, d := range rep.Diagnostics { fmt.Println(d) }
//
//	var doc triplet.Document
//	doc.Add("Matrix 1 (a.txt)", m)
//	_ = triplet.AppendFile("output.txt", doc.String())
package triplet
