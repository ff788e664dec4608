package coefficient_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/bezier/matrix"
	"github.com/stretchr/testify/require"
)

// diff reports a go-cmp diff between want and got as a test error.
func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// table copies m into a [][]float64 for comparisons.
func table(t *testing.T, m *matrix.Dense[float64]) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		row, err := m.Row(i)
		require.NoError(t, err)
		out[i] = append([]float64(nil), row...)
	}

	return out
}
