package coefficient

import (
	"fmt"

	"github.com/katalvlaran/bezier/matrix"
)

// Cache is a Computer backed by a memoised Pascal's triangle.
//
// Layout:
//
//	rows[i] holds C(i,0..⌈i/2⌉), that is (i+1)/2+1 entries. By symmetry
//	C(i,k) = C(i,i-k), so the second half of every row is never stored.
//	On odd rows the last slot is the mirrored midpoint C(i,(i+1)/2) =
//	C(i,i/2), which the recurrence for row i+1 reads.
//
// The cache grows monotonically through Precompute and is never shrunk.
// ComputeFor does not warm the cache itself. A Cache is owned by one caller
// and is not safe for concurrent use.
type Cache struct {
	rows [][]uint64
}

// NewCache returns an empty Cache (Degree() == -1).
func NewCache() *Cache {
	return &Cache{}
}

// cacheErrorf wraps err with Cache method context.
func cacheErrorf(method string, err error) error {
	return fmt.Errorf("Cache.%s: %w", method, err)
}

// Degree returns the largest cached degree, or -1 when the cache is empty.
func (c *Cache) Degree() int {
	return len(c.rows) - 1
}

// Precompute extends the cache so it covers every degree up to n.
// It is a no-op when n is already covered.
//
// Algorithm:
//  1. For each new row i: allocate (i+1)/2+1 slots, set C(i,0) = 1.
//  2. For j = 1 .. (i+2)/2-1: C(i,j) = C(i-1,j-1) + C(i-1,j). Row i-1 always
//     stores index j here, thanks to its mirrored slot when i-1 is odd.
//  3. If i is odd, copy C(i,i/2) into the last slot.
//
// Errors: ErrNegativeDegree, ErrDegreeTooLarge.
// Complexity: O(n²) time and memory for the first warm-up, O(1) afterwards.
func (c *Cache) Precompute(n int) error {
	if err := validateDegree(n); err != nil {
		return cacheErrorf("Precompute", err)
	}
	if n < len(c.rows) {
		return nil
	}

	for i := len(c.rows); i <= n; i++ {
		row := make([]uint64, (i+1)/2+1)
		row[0] = 1
		for j := 1; j < (i+2)/2; j++ {
			row[j] = c.rows[i-1][j-1] + c.rows[i-1][j]
		}
		if i&1 == 1 {
			row[len(row)-1] = row[i/2]
		}
		c.rows = append(c.rows, row)
	}

	return nil
}

// binomial is the unchecked lookup; n must be cached and 0 ≤ k ≤ n.
func (c *Cache) binomial(n, k int) uint64 {
	if k > (n+1)/2 {
		k = n - k
	}

	return c.rows[n][k]
}

// Binomial returns C(n,k) from the cache, folding k onto the stored half.
//
// Errors:
//   - ErrNotWarmed  if Precompute has not reached n (programmer error:
//     warm the cache first).
//   - ErrBadIndex   if n < 0 or k is outside [0, n].
func (c *Cache) Binomial(n, k int) (uint64, error) {
	if n < 0 || k < 0 || k > n {
		return 0, cacheErrorf("Binomial", fmt.Errorf("C(%d,%d): %w", n, k, ErrBadIndex))
	}
	if n > c.Degree() {
		return 0, cacheErrorf("Binomial", fmt.Errorf("degree %d, cached up to %d: %w", n, c.Degree(), ErrNotWarmed))
	}

	return c.binomial(n, k), nil
}

// ComputeFor returns the (n+1)×(n+1) coefficient matrix for degree n using
// cached binomials. The cache must already cover n.
//
// Errors: ErrNegativeDegree, ErrDegreeTooLarge, ErrNotWarmed.
// Complexity: O(n²).
func (c *Cache) ComputeFor(n int) (*matrix.Dense[float64], error) {
	if err := validateDegree(n); err != nil {
		return nil, cacheErrorf("ComputeFor", err)
	}
	if n > c.Degree() {
		return nil, cacheErrorf("ComputeFor", fmt.Errorf("degree %d, cached up to %d: %w", n, c.Degree(), ErrNotWarmed))
	}

	m, err := newSquare(n)
	if err != nil {
		return nil, cacheErrorf("ComputeFor", err)
	}
	for k := 0; k <= n; k++ {
		row, err := m.Row(k)
		if err != nil {
			return nil, cacheErrorf("ComputeFor", err)
		}
		factor := float64(c.binomial(n, k))
		span := n - k
		// row[span-i] pairs with t^(k+i); columns past span stay zero.
		for i := 0; i <= span; i++ {
			row[span-i] = sign(i) * factor * float64(c.binomial(span, i))
		}
	}

	return m, nil
}
