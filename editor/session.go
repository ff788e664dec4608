package editor

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/bezier/coefficient"
	"github.com/katalvlaran/bezier/curve"
	"github.com/katalvlaran/bezier/matrix"
)

// Session is one curve-editing session. It exclusively owns its control
// points, its coefficient computer (including a Cache's binomial table) and
// its curve samples.
type Session struct {
	points   []curve.Point
	steps    int
	kind     coefficient.Kind
	computer coefficient.Computer
	curve    *curve.Curve
	degree   int // degree of the coefficient matrix held by curve, -1 if none
}

// sessionErrorf wraps err with Session method context.
func sessionErrorf(method string, err error) error {
	return fmt.Errorf("Session.%s: %w", method, err)
}

// validateSteps checks MinSteps ≤ steps ≤ MaxSteps.
func validateSteps(steps int) error {
	if steps < MinSteps || steps > MaxSteps {
		return fmt.Errorf("%d not in [%d, %d]: %w", steps, MinSteps, MaxSteps, ErrBadSteps)
	}

	return nil
}

// NewSession starts a session over a copy of points and computes the
// initial samples.
//
// Errors:
//   - ErrBadSteps                    — opts.Steps outside [MinSteps, MaxSteps].
//   - coefficient.ErrUnknownKind     — opts.Kind is not a known computer.
//   - coefficient.ErrDegreeTooLarge  — more than coefficient.MaxDegree+1 control
//     points; higher degrees cannot be sampled accurately in float64.
func NewSession(points []curve.Point, opts Options) (*Session, error) {
	if err := validateSteps(opts.Steps); err != nil {
		return nil, sessionErrorf("New", err)
	}
	computer, err := coefficient.New(opts.Kind)
	if err != nil {
		return nil, sessionErrorf("New", err)
	}

	s := &Session{
		points:   slices.Clone(points),
		steps:    opts.Steps,
		kind:     opts.Kind,
		computer: computer,
		curve:    curve.New(),
		degree:   -1,
	}
	if err = s.refresh(); err != nil {
		return nil, sessionErrorf("New", err)
	}

	return s, nil
}

// refresh recomputes the coefficient matrix if the degree is stale, then
// resamples the curve. An empty control set clears the samples.
func (s *Session) refresh() error {
	n := len(s.points) - 1
	if n < 0 {
		s.curve.Reset()

		return nil
	}

	if n != s.degree {
		if err := coefficient.Prepare(s.computer, n); err != nil {
			return err
		}
		m, err := s.computer.ComputeFor(n)
		if err != nil {
			return err
		}
		s.curve.SetCoefficientMatrix(m)
		s.degree = n
	}
	s.curve.ComputeFor(curve.Pack(s.points), s.steps)

	return nil
}

// Add appends a control point, raising the degree by one. If the new degree
// cannot be computed the point is dropped again and the error returned.
func (s *Session) Add(p curve.Point) error {
	s.points = append(s.points, p)
	if err := s.refresh(); err != nil {
		s.points = s.points[:len(s.points)-1]

		return sessionErrorf("Add", err)
	}

	return nil
}

// RemoveLast drops the last control point. It is a no-op on an empty session.
func (s *Session) RemoveLast() error {
	if len(s.points) == 0 {
		return nil
	}
	s.points = s.points[:len(s.points)-1]
	if err := s.refresh(); err != nil {
		return sessionErrorf("RemoveLast", err)
	}

	return nil
}

// Move repositions control point i and resamples the curve.
func (s *Session) Move(i int, p curve.Point) error {
	if i < 0 || i >= len(s.points) {
		return sessionErrorf("Move", fmt.Errorf("index %d of %d: %w", i, len(s.points), ErrOutOfRange))
	}
	s.points[i] = p
	if err := s.refresh(); err != nil {
		return sessionErrorf("Move", err)
	}

	return nil
}

// SetSteps changes the sampling resolution and resamples the curve.
func (s *Session) SetSteps(steps int) error {
	if err := validateSteps(steps); err != nil {
		return sessionErrorf("SetSteps", err)
	}
	s.steps = steps
	if err := s.refresh(); err != nil {
		return sessionErrorf("SetSteps", err)
	}

	return nil
}

// SetKind switches to a fresh computer of the given kind and recomputes the
// coefficient matrix with it. Selecting the current kind is a no-op.
func (s *Session) SetKind(kind coefficient.Kind) error {
	if kind == s.kind {
		return nil
	}
	computer, err := coefficient.New(kind)
	if err != nil {
		return sessionErrorf("SetKind", err)
	}
	s.kind, s.computer, s.degree = kind, computer, -1
	if err = s.refresh(); err != nil {
		return sessionErrorf("SetKind", err)
	}

	return nil
}

// ControlPoints returns a copy of the control points in order.
func (s *Session) ControlPoints() []curve.Point {
	return slices.Clone(s.points)
}

// Points returns the current curve samples (read-only view).
func (s *Session) Points() []curve.Point {
	return s.curve.Points()
}

// Steps returns the sampling resolution.
func (s *Session) Steps() int {
	return s.steps
}

// Kind returns the selected computer kind.
func (s *Session) Kind() coefficient.Kind {
	return s.kind
}

// Degree returns the curve degree, len(ControlPoints())-1; -1 when empty.
func (s *Session) Degree() int {
	return len(s.points) - 1
}

// Coefficients returns a copy of the coefficient matrix held by the curve,
// or nil if none has been computed yet.
func (s *Session) Coefficients() *matrix.Dense[float64] {
	m := s.curve.CoefficientMatrix()
	if m == nil {
		return nil
	}

	return m.Clone()
}
