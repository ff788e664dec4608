// SPDX-License-Identifier: MIT
// Package matrix: Dense is a concrete, row-major matrix over a generic
// scalar, storing elements in a flat slice for cache friendliness.

package matrix

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/exp/constraints"
)

// Scalar is the set of element types a Dense can hold. The kernels only need
// the zero value, multiplication and in-place addition.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Dense is a row-major matrix of T values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense[T Scalar] struct {
	r, c int // number of rows and columns
	data []T // flat backing storage, length == r*c
}

// New creates an rows×cols Dense matrix filled with the zero value of T.
// Empty shapes (rows == 0 or cols == 0) are valid.
// Stage 1 (Validate): reject negative sizes and rows*cols overflow.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(rows*cols) time and memory.
func New[T Scalar](rows, cols int) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(opNew, ErrBadShape)
	}
	if cols != 0 && rows > math.MaxInt/cols {
		return nil, matrixErrorf(opNew, ErrBadShape)
	}

	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// FromTable builds a Dense from a rectangular table literal, one inner slice
// per row. The table is copied; later changes to it do not affect the matrix.
// A ragged table fails with ErrRagged, nothing is padded.
// Complexity: O(rows*cols).
func FromTable[T Scalar](table [][]T) (*Dense[T], error) {
	rows := len(table)
	cols := 0
	if rows > 0 {
		cols = len(table[0])
	}
	for i := 1; i < rows; i++ {
		if len(table[i]) != cols {
			return nil, matrixErrorf(opFromTable, fmt.Errorf("row %d has %d values, want %d: %w", i, len(table[i]), cols, ErrRagged))
		}
	}

	m, err := New[T](rows, cols)
	if err != nil {
		return nil, err
	}
	for i, row := range table {
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// MustFromTable is FromTable for literals known to be rectangular.
// It panics on a ragged table.
func MustFromTable[T Scalar](table [][]T) *Dense[T] {
	m, err := FromTable(table)
	if err != nil {
		panic(err)
	}

	return m
}

// Rows returns the number of rows in the matrix.
func (m *Dense[T]) Rows() int {
	return m.r
}

// Cols returns the number of columns in the matrix.
func (m *Dense[T]) Cols() int {
	return m.c
}

// Row returns row i as a slice aliasing the backing storage: writes through
// it mutate the matrix. Returns ErrOutOfRange if i is not a valid row.
// Complexity: O(1).
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, matrixErrorf(opRow, fmt.Errorf("row %d of %d: %w", i, m.r, ErrOutOfRange))
	}

	return m.data[i*m.c : (i+1)*m.c : (i+1)*m.c], nil
}

// Data returns the row-major backing slice, element (i,j) at i*Cols()+j.
// Like Row, it aliases the matrix storage.
func (m *Dense[T]) Data() []T {
	return m.data
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense[T]) indexOf(op string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, matrixErrorf(op, fmt.Errorf("(%d,%d) in %dx%d: %w", row, col, m.r, m.c, ErrOutOfRange))
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf(opAt, row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf(opSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense[T]) Clone() *Dense[T] {
	data := make([]T, len(m.data))
	copy(data, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: data}
}

// String implements fmt.Stringer, one bracketed row per line.
func (m *Dense[T]) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%v", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// Column returns a len(values)×1 column vector holding a copy of values.
func Column[T Scalar](values []T) *Dense[T] {
	data := make([]T, len(values))
	copy(data, values)

	return &Dense[T]{r: len(values), c: 1, data: data}
}
