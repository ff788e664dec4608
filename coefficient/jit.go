package coefficient

import (
	"fmt"

	"github.com/katalvlaran/bezier/matrix"
)

// JIT is a stateless Computer that rebuilds every binomial on each call.
// It needs no warm-up and retains no memory between calls.
type JIT struct{}

// NewJIT returns a JIT computer.
func NewJIT() *JIT {
	return &JIT{}
}

// nextBinomial advances C(n,k) to C(n,k+1). The division is exact.
func nextBinomial(c uint64, n, k int) uint64 {
	return c * uint64(n-k) / uint64(k+1)
}

// ComputeFor returns the (n+1)×(n+1) coefficient matrix for degree n.
//
// Algorithm:
//  1. factor = C(n,0) = 1.
//  2. For each row k: inner = C(n-k,0) = 1; for i = 0..n-k write
//     sign(i)·factor·inner at column n-k-i, then inner = C(n-k,i+1).
//  3. factor = C(n,k+1).
//
// Errors: ErrNegativeDegree, ErrDegreeTooLarge.
// Complexity: O(n²), no allocation besides the result.
func (JIT) ComputeFor(n int) (*matrix.Dense[float64], error) {
	if err := validateDegree(n); err != nil {
		return nil, fmt.Errorf("JIT.ComputeFor: %w", err)
	}

	m, err := newSquare(n)
	if err != nil {
		return nil, fmt.Errorf("JIT.ComputeFor: %w", err)
	}
	factor := uint64(1)
	for k := 0; k <= n; k++ {
		row, err := m.Row(k)
		if err != nil {
			return nil, fmt.Errorf("JIT.ComputeFor: %w", err)
		}
		span := n - k
		inner := uint64(1)
		for i := 0; i <= span; i++ {
			row[span-i] = sign(i) * float64(factor) * float64(inner)
			inner = nextBinomial(inner, span, i)
		}
		factor = nextBinomial(factor, n, k)
	}

	return m, nil
}
