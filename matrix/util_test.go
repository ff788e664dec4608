package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/bezier/matrix"
	"github.com/stretchr/testify/require"
)

// allClose reports whether a and b have the same shape and every pair of
// elements differs by at most tol.
func allClose[T matrix.Scalar](a, b *matrix.Dense[T], tol float64) bool {
	if a == nil || b == nil || a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	da, db := a.Data(), b.Data()
	for i := range da {
		if math.Abs(float64(da[i])-float64(db[i])) > tol {
			return false
		}
	}

	return true
}

// identity returns the n×n identity matrix.
func identity(t *testing.T, n int) *matrix.Dense[float64] {
	t.Helper()
	m, err := matrix.New[float64](n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		require.NoError(t, m.Set(i, i, 1))
	}

	return m
}
