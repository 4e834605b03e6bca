// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Name the three arithmetic operations as values (Op) so callers such as
//     menus and CLI subcommands can select, label and dispatch them.
//   - Avoid logic duplication: Apply delegates to Add, Subtract and Multiply.

package matrix

import (
	"fmt"
	"strings"
)

// Op identifies one of the arithmetic operations.
type Op int

const (
	// OpAdd is Add(a, b).
	OpAdd Op = iota + 1
	// OpSubtract is Subtract(a, b).
	OpSubtract
	// OpMultiply is Multiply(a, b).
	OpMultiply
)

// Ops lists the operations in menu order.
var Ops = []Op{OpAdd, OpSubtract, OpMultiply}

// String returns the short command name of the operation.
func (op Op) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSubtract:
		return "subtract"
	case OpMultiply:
		return "multiply"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

// Title returns the section header used when a result is written out.
func (op Op) Title() string {
	switch op {
	case OpAdd:
		return "Addition Result"
	case OpSubtract:
		return "Subtraction Result"
	case OpMultiply:
		return "Multiplication Result"
	default:
		return op.String() + " Result"
	}
}

// ParseOp maps an operation name or symbol to an Op.
// Accepted: add|sum|+, sub|subtract|diff|-, mul|multiply|product|*.
func ParseOp(s string) (Op, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "add", "sum", "+":
		return OpAdd, nil
	case "sub", "subtract", "diff", "-":
		return OpSubtract, nil
	case "mul", "multiply", "product", "*", "x":
		return OpMultiply, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOp, s)
	}
}

// Apply runs op on (a, b). MulOptions are only consulted by OpMultiply.
func Apply(op Op, a, b *Matrix, opts ...MulOption) (*Matrix, error) {
	switch op {
	case OpAdd:
		return Add(a, b), nil
	case OpSubtract:
		return Subtract(a, b), nil
	case OpMultiply:
		return Multiply(a, b, opts...), nil
	default:
		return nil, fmt.Errorf("Apply: %w: %s", ErrUnknownOp, op)
	}
}

// Sum is an alias for Add.
func Sum(a, b *Matrix) *Matrix { return Add(a, b) }

// Diff is an alias for Subtract.
func Diff(a, b *Matrix) *Matrix { return Subtract(a, b) }

// Product is an alias for Multiply.
func Product(a, b *Matrix, opts ...MulOption) *Matrix { return Multiply(a, b, opts...) }
