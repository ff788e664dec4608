// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All constructors and kernels return these sentinels (optionally wrapped
// with an operation tag) and tests check them via errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ..." for easy grepping.
// Wrap with matrixErrorf(op, ErrX) at the API boundary only.
var (
	// ErrBadShape is returned when a requested shape is negative or when
	// rows*cols does not fit into an int.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrRagged indicates a table literal whose rows have different lengths.
	ErrRagged = errors.New("matrix: table rows have different lengths")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes,
	// e.g. Mul where a.Cols() != b.Rows().
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense was passed as an operand.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// Operation tags used for error wrapping.
const (
	opNew       = "New"
	opFromTable = "FromTable"
	opRow       = "Row"
	opAt        = "At"
	opSet       = "Set"
	opMul       = "Mul"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
