package editor

import (
	"errors"

	"github.com/katalvlaran/bezier/coefficient"
	"github.com/katalvlaran/bezier/curve"
)

// Step bounds accepted by a Session.
const (
	MinSteps = 1
	MaxSteps = 100000
)

var (
	// ErrBadSteps indicates a step count outside [MinSteps, MaxSteps].
	ErrBadSteps = errors.New("editor: steps out of range")

	// ErrOutOfRange indicates a control-point index that does not exist.
	ErrOutOfRange = errors.New("editor: control point index out of range")
)

// Options configures a Session.
//
// Fields:
//   - Steps — number of sampling intervals; the curve gets Steps+1 points.
//   - Kind  — which coefficient computer the session uses until SetKind.
//
// Example:
//
//	opts := editor.DefaultOptions()
//	opts.Steps = 200
//	opts.Kind = coefficient.KindJIT
//	s, err := editor.NewSession(editor.DefaultControlPoints(), opts)
type Options struct {
	Steps int
	Kind  coefficient.Kind
}

// DefaultOptions returns one sampling interval and the cache computer.
func DefaultOptions() Options {
	return Options{
		Steps: MinSteps,
		Kind:  coefficient.KindCache,
	}
}

// DefaultControlPoints returns the quadratic a new session starts from.
func DefaultControlPoints() []curve.Point {
	return []curve.Point{
		curve.Pt(100, 100),
		curve.Pt(250, 400),
		curve.Pt(400, 100),
	}
}
