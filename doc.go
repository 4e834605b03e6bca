// Package sparsecalc is a calculator for sparse integer matrices stored as
// plain "row col value" text.
//
// 🚀 What is sparsecalc?
//
//	A small library plus a CLI that brings together:
//		• matrix:  immutable sparse matrices keyed by signed row and column
//		           indices, with Add, Subtract and Multiply
//		• triplet: a tolerant line parser (malformed lines become diagnostics,
//		           never failures) and a section writer for results
//		• builder: deterministic generators (Identity, Diagonal, RandomSparse)
//		           for tests, benchmarks and sample files
//
// ✨ Why sparse?
//
//   - Storage and work scale with stored entries, not with the dense shape.
//   - Indices may be negative and need not be contiguous.
//   - Multiply never stores a zero sum.
//
// Under the hood:
//
//	matrix/                  - Matrix, Builder, Add/Subtract/Multiply, Op registry
//	triplet/                 - ParseLine/Parse/ParseFile, Document, AppendFile
//	builder/                 - generators with seeded randomness
//	internal/catalog/        - candidate file listing and 1-based picks
//	internal/session/        - the interactive menu loop
//	internal/cli/...         - cobra commands, koanf config, terminal rendering
//	cmd/sparsecalc/          - the binary
//
// Quick example:
//
//	a.txt          b.txt
//	0 0 1          0 0 3
//	0 1 2          1 1 4
//
//	$ sparsecalc mul a.txt b.txt
//	Multiplication Result:
//	0 0 3
//	0 1 8
//
//	go install github.com/katalvlaran/sparsecalc/cmd/sparsecalc@latest
package sparsecalc
