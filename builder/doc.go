// Package builder provides deterministic “functional-options” generators for
// sparse integer matrices. It lives alongside the matrix package and is used
// by tests, benchmarks and the `generate` CLI command to produce fixtures.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildMatrix:       resolves options and applies constructors in order.
//     – Constructor:       a function writing entries into a matrix.Builder.
//   - Constructors:
//     – Identity(n):       ones on the diagonal.
//     – Diagonal(v...):    the given values on the diagonal (zeros skipped).
//     – RandomSparse(r,c,d): each cell kept independently with probability d.
//   - Value distributions (ValueFn implementations):
//     – DefaultValueFn:    constant DefaultValue.
//     – ConstantValueFn:   fixed nonzero value.
//     – UniformValueFn:    uniform over the nonzero integers of [min,max].
//
// Guarantees:
//
//   - Determinism: same constructors, options and seed ⇒ identical matrices.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors never panic; they return the sentinels in errors.go.
//   - Generators never store a zero value.
package builder
