// Package matrix provides the small dense linear-algebra kernel used by the
// Bézier engine.
//
// The matrix package provides:
//
//   - Dense[T], a row-major matrix over any integer or floating-point scalar,
//     stored in one flat slice (element (i,j) lives at data[i*cols+j]).
//   - Mul, the checked product that rejects incompatible shapes with
//     ErrDimensionMismatch.
//   - MulUnchecked, the same kernel without the shape check, for hot paths
//     whose shapes are already proven by construction.
//
// Matrices here are small (a coefficient matrix is at most 21×21), so
// multiplication is the plain triple loop with no blocking or tiling.
//
// Error policy:
//
//	Constructors and accessors return package sentinels (ErrBadShape,
//	ErrRagged, ErrOutOfRange, ErrDimensionMismatch, ErrNilMatrix), wrapped
//	with the operation name. Match them with errors.Is. Only MustFromTable
//	and MulUnchecked panic, and only on programmer error.
//
// A Dense is not safe for concurrent mutation.
package matrix
