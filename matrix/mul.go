// SPDX-License-Identifier: MIT
// Package matrix: multiplication kernels.
//
// Purpose:
//   - Mul is the checked entry point; MulUnchecked is the trusted-caller one.
//   - Both share one kernel, so they produce identical results for
//     compatible shapes.

package matrix

import (
	"fmt"
)

// Mul returns the product a·b as a new a.Rows()×b.Cols() matrix.
// Operands are never mutated.
//
// Implementation:
//   - Stage 1: reject nil operands and a.Cols() != b.Rows().
//   - Stage 2: delegate to the shared triple-loop kernel.
//
// Errors:
//   - ErrNilMatrix          if a or b is nil.
//   - ErrDimensionMismatch  if a.Cols() != b.Rows().
//
// Complexity:
//   - Time O(a.Rows()·b.Cols()·a.Cols()), Space O(a.Rows()·b.Cols()).
func Mul[T Scalar](a, b *Dense[T]) (*Dense[T], error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	if a.c != b.r {
		return nil, matrixErrorf(opMul, fmt.Errorf("%dx%d · %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch))
	}

	return MulUnchecked(a, b), nil
}

// MulUnchecked returns a·b without checking that a.Cols() == b.Rows().
// The caller must guarantee compatible shapes; on misuse it panics with a
// runtime index error or returns a meaningless product.
func MulUnchecked[T Scalar](a, b *Dense[T]) *Dense[T] {
	res := &Dense[T]{r: a.r, c: b.c, data: make([]T, a.r*b.c)}

	var i, j, k int
	for i = 0; i < res.r; i++ {
		for j = 0; j < res.c; j++ {
			for k = 0; k < a.c; k++ {
				res.data[i*res.c+j] += a.data[i*a.c+k] * b.data[k*b.c+j]
			}
		}
	}

	return res
}

