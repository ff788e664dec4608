package coefficient

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/bezier/matrix"
)

// MaxDegree is the largest degree whose power-basis evaluation stays
// accurate in float64.
//
// The absolute entries of the degree-n matrix weighted by [tⁿ … t, 1] sum to
// (1+2t)ⁿ ≤ 3ⁿ, while the signed sum (the Bernstein weights) stays in [0, 1].
// Cancellation therefore costs up to 3ⁿ·ε of relative accuracy in a sample.
// 3²⁰ < 2³² keeps that below 2⁻²¹; near degree 36 the error reaches the size
// of the coordinates themselves. Binomials of this size are trivially exact
// in uint64.
const MaxDegree = 20

var (
	// ErrNegativeDegree indicates a degree below zero (an empty control set).
	ErrNegativeDegree = errors.New("coefficient: degree must be >= 0")

	// ErrDegreeTooLarge indicates a degree above MaxDegree.
	ErrDegreeTooLarge = errors.New("coefficient: degree exceeds MaxDegree")

	// ErrNotWarmed indicates a Cache query for a degree Precompute has not reached.
	ErrNotWarmed = errors.New("coefficient: binomial cache not warmed for degree")

	// ErrBadIndex indicates k outside [0, n] in a binomial query.
	ErrBadIndex = errors.New("coefficient: binomial index out of range")

	// ErrUnknownKind indicates a Kind that is neither KindCache nor KindJIT.
	ErrUnknownKind = errors.New("coefficient: unknown computer kind")
)

// Computer produces the (n+1)×(n+1) coefficient matrix of a degree-n curve.
// Implementations are deterministic in n and not safe for concurrent use.
type Computer interface {
	ComputeFor(n int) (*matrix.Dense[float64], error)
}

// Warmer is implemented by computers that must be prepared for a degree
// before ComputeFor may be called with it.
type Warmer interface {
	Precompute(n int) error
}

// Kind selects a Computer implementation.
//
//   - KindCache — memoised Pascal's triangle, needs Precompute.
//   - KindJIT   — recomputes binomials on every call, no state.
type Kind int

const (
	// KindCache selects Cache.
	KindCache Kind = iota

	// KindJIT selects JIT.
	KindJIT
)

// String returns the lower-case name used by ParseKind.
func (k Kind) String() string {
	switch k {
	case KindCache:
		return "cache"
	case KindJIT:
		return "jit"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps "cache" or "jit" (any case, surrounding spaces ignored) to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cache":
		return KindCache, nil
	case "jit":
		return KindJIT, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownKind)
	}
}

// New returns a fresh computer of the given kind. Each call yields an
// independent instance; a Cache starts empty.
func New(kind Kind) (Computer, error) {
	switch kind {
	case KindCache:
		return NewCache(), nil
	case KindJIT:
		return NewJIT(), nil
	default:
		return nil, fmt.Errorf("%v: %w", kind, ErrUnknownKind)
	}
}

// Prepare warms c for degree n when c is a Warmer and is a no-op otherwise.
// Call it before c.ComputeFor(n).
func Prepare(c Computer, n int) error {
	if w, ok := c.(Warmer); ok {
		return w.Precompute(n)
	}

	return nil
}

// validateDegree checks 0 ≤ n ≤ MaxDegree.
func validateDegree(n int) error {
	if n < 0 {
		return fmt.Errorf("degree %d: %w", n, ErrNegativeDegree)
	}
	if n > MaxDegree {
		return fmt.Errorf("degree %d > %d: %w", n, MaxDegree, ErrDegreeTooLarge)
	}

	return nil
}

// sign returns (-1)^i as a float64.
func sign(i int) float64 {
	if i&1 == 0 {
		return 1
	}

	return -1
}

// newSquare allocates the zero (n+1)×(n+1) result.
func newSquare(n int) (*matrix.Dense[float64], error) {
	return matrix.New[float64](n+1, n+1)
}
