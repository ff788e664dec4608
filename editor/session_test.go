package editor_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/bezier/coefficient"
	"github.com/katalvlaran/bezier/curve"
	"github.com/katalvlaran/bezier/editor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// diff reports a go-cmp diff between want and got as a test error.
func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// newSession opens a session with the given steps and kind.
func newSession(t *testing.T, points []curve.Point, steps int, kind coefficient.Kind) *editor.Session {
	t.Helper()
	s, err := editor.NewSession(points, editor.Options{Steps: steps, Kind: kind})
	require.NoError(t, err)

	return s
}

func TestDefaults(t *testing.T) {
	opts := editor.DefaultOptions()
	assert.Equal(t, 1, opts.Steps)
	assert.Equal(t, coefficient.KindCache, opts.Kind)

	s, err := editor.NewSession(editor.DefaultControlPoints(), opts)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Degree())
	diff(t, []curve.Point{curve.Pt(100, 100), curve.Pt(400, 100)}, s.Points())
}

func TestNewSession_Errors(t *testing.T) {
	points := editor.DefaultControlPoints()

	_, err := editor.NewSession(points, editor.Options{Steps: 0, Kind: coefficient.KindCache})
	assert.ErrorIs(t, err, editor.ErrBadSteps)

	_, err = editor.NewSession(points, editor.Options{Steps: editor.MaxSteps + 1, Kind: coefficient.KindJIT})
	assert.ErrorIs(t, err, editor.ErrBadSteps)

	_, err = editor.NewSession(points, editor.Options{Steps: 4, Kind: coefficient.Kind(42)})
	assert.ErrorIs(t, err, coefficient.ErrUnknownKind)

	tooMany := make([]curve.Point, coefficient.MaxDegree+2)
	_, err = editor.NewSession(tooMany, editor.Options{Steps: 4, Kind: coefficient.KindCache})
	assert.ErrorIs(t, err, coefficient.ErrDegreeTooLarge)
}

// TestNewSession_CopiesInput checks the caller's slice is not retained.
func TestNewSession_CopiesInput(t *testing.T) {
	points := editor.DefaultControlPoints()
	s := newSession(t, points, 2, coefficient.KindJIT)

	points[0] = curve.Pt(-1, -1)
	assert.Equal(t, curve.Pt(100, 100), s.ControlPoints()[0])

	got := s.ControlPoints()
	got[1] = curve.Pt(0, 0)
	assert.Equal(t, curve.Pt(250, 400), s.ControlPoints()[1])
}

// TestSession_QuadraticScenario adds points one by one and samples the midpoint.
func TestSession_QuadraticScenario(t *testing.T) {
	s := newSession(t, nil, 2, coefficient.KindCache)
	assert.Equal(t, -1, s.Degree())
	assert.Empty(t, s.Points())
	assert.Nil(t, s.Coefficients())

	require.NoError(t, s.Add(curve.Pt(0, 0)))
	diff(t, []curve.Point{curve.Pt(0, 0), curve.Pt(0, 0), curve.Pt(0, 0)}, s.Points())

	require.NoError(t, s.Add(curve.Pt(1, 2)))
	require.NoError(t, s.Add(curve.Pt(2, 0)))
	assert.Equal(t, 2, s.Degree())
	diff(t, []curve.Point{curve.Pt(0, 0), curve.Pt(1, 1), curve.Pt(2, 0)}, s.Points())
}

func TestSession_RemoveLast(t *testing.T) {
	s := newSession(t, editor.DefaultControlPoints(), 4, coefficient.KindCache)

	require.NoError(t, s.RemoveLast())
	assert.Equal(t, 1, s.Degree())
	pts := s.Points()
	require.Len(t, pts, 5)
	assert.Equal(t, curve.Pt(250, 400), pts[4])

	require.NoError(t, s.RemoveLast())
	require.NoError(t, s.RemoveLast())
	assert.Equal(t, -1, s.Degree())
	assert.Empty(t, s.Points(), "empty control set clears samples")

	require.NoError(t, s.RemoveLast(), "removing from an empty session is a no-op")
	assert.Empty(t, s.ControlPoints())
}

// TestSession_MoveKeepsCoefficients checks the drag path reuses the matrix.
func TestSession_MoveKeepsCoefficients(t *testing.T) {
	s := newSession(t, editor.DefaultControlPoints(), 2, coefficient.KindCache)
	before := editor.HeldCoefficients(s)
	require.NotNil(t, before)

	require.NoError(t, s.Move(1, curve.Pt(250, 0)))
	assert.Same(t, before, editor.HeldCoefficients(s))
	assert.Equal(t, curve.Pt(250, 50), s.Points()[1])

	err := s.Move(3, curve.Pt(0, 0))
	assert.ErrorIs(t, err, editor.ErrOutOfRange)
	err = s.Move(-1, curve.Pt(0, 0))
	assert.ErrorIs(t, err, editor.ErrOutOfRange)
}

func TestSession_SetSteps(t *testing.T) {
	s := newSession(t, editor.DefaultControlPoints(), 1, coefficient.KindJIT)
	require.NoError(t, s.SetSteps(100))
	assert.Equal(t, 100, s.Steps())
	assert.Len(t, s.Points(), 101)

	assert.ErrorIs(t, s.SetSteps(0), editor.ErrBadSteps)
	assert.Equal(t, 100, s.Steps(), "rejected value leaves the session unchanged")
	assert.Len(t, s.Points(), 101)
}

// TestSession_SetKindSameSamples verifies both computers give identical curves.
func TestSession_SetKindSameSamples(t *testing.T) {
	points := []curve.Point{
		curve.Pt(12, 40), curve.Pt(-30, 7.5), curve.Pt(88, 120), curve.Pt(5, 5),
		curve.Pt(240, -16), curve.Pt(300, 310),
	}
	s := newSession(t, points, 50, coefficient.KindCache)
	cached := append([]curve.Point(nil), s.Points()...)

	require.NoError(t, s.SetKind(coefficient.KindJIT))
	assert.Equal(t, coefficient.KindJIT, s.Kind())
	diff(t, cached, s.Points())

	m := editor.HeldCoefficients(s)
	require.NoError(t, s.SetKind(coefficient.KindJIT))
	assert.Same(t, m, editor.HeldCoefficients(s), "re-selecting the current kind is a no-op")

	assert.ErrorIs(t, s.SetKind(coefficient.Kind(-1)), coefficient.ErrUnknownKind)
	assert.Equal(t, coefficient.KindJIT, s.Kind())
}

// TestSession_CoefficientsIsACopy keeps the held matrix out of caller reach.
func TestSession_CoefficientsIsACopy(t *testing.T) {
	s := newSession(t, editor.DefaultControlPoints(), 2, coefficient.KindJIT)
	before := append([]curve.Point(nil), s.Points()...)

	m := s.Coefficients()
	require.NotNil(t, m)
	assert.NotSame(t, editor.HeldCoefficients(s), m)
	diff(t, editor.HeldCoefficients(s).Data(), m.Data())

	for i := range m.Data() {
		m.Data()[i] = 0
	}
	require.NoError(t, s.SetSteps(2))
	diff(t, before, s.Points())
}

// TestSession_AddPastMaxDegree rolls the point back when the degree is too high.
func TestSession_AddPastMaxDegree(t *testing.T) {
	points := make([]curve.Point, coefficient.MaxDegree+1)
	for i := range points {
		points[i] = curve.Pt(float64(i)*10, float64(i%2)*100)
	}
	s := newSession(t, points, 10, coefficient.KindCache)
	before := append([]curve.Point(nil), s.Points()...)
	require.Len(t, before, 11)
	assert.Equal(t, points[0], before[0])
	assert.InDelta(t, points[coefficient.MaxDegree].X, before[10].X, 1e-6)
	assert.InDelta(t, points[coefficient.MaxDegree].Y, before[10].Y, 1e-6)

	err := s.Add(curve.Pt(0, 0))
	assert.ErrorIs(t, err, coefficient.ErrDegreeTooLarge)
	assert.Equal(t, coefficient.MaxDegree, s.Degree())
	diff(t, before, s.Points())
}
