package curve

import (
	"github.com/katalvlaran/bezier/matrix"
)

// Curve owns the coefficient matrix of the current degree and the sampled
// output points.
type Curve struct {
	coefficients *matrix.Dense[float64]
	points       []Point
}

// New returns a Curve with no coefficient matrix and no samples.
func New() *Curve {
	return &Curve{}
}

// SetCoefficientMatrix replaces the held coefficient matrix. The caller
// supplies the (n+1)×(n+1) matrix matching the control points that will be
// passed to ComputeFor; it is not cross-checked here.
func (c *Curve) SetCoefficientMatrix(m *matrix.Dense[float64]) {
	c.coefficients = m
}

// CoefficientMatrix returns the held coefficient matrix, or nil.
func (c *Curve) CoefficientMatrix() *matrix.Dense[float64] {
	return c.coefficients
}

// Points returns the current samples. The slice is a read-only view; it is
// empty before the first successful ComputeFor. ComputeFor never writes
// into a slice previously returned by Points.
func (c *Curve) Points() []Point {
	return c.points
}

// Reset drops the current samples.
func (c *Curve) Reset() {
	c.points = nil
}

// ComputeFor resamples the curve at t = i/steps for i = 0..steps, replacing
// all previous samples with steps+1 new points.
//
// controls must be the 2×(n+1) matrix produced by Pack and the held
// coefficient matrix must be (n+1)×(n+1). When steps < 1, controls is nil,
// empty or not two rows tall, or the coefficient matrix is missing or sized
// for another degree, ComputeFor returns without touching the previous
// samples.
//
// Complexity: O(steps·n²).
func (c *Curve) ComputeFor(controls *matrix.Dense[float64], steps int) {
	if steps < 1 || controls == nil || controls.Rows() != 2 || controls.Cols() == 0 {
		return
	}
	size := controls.Cols()
	if c.coefficients == nil || c.coefficients.Rows() != size || c.coefficients.Cols() != size {
		return
	}

	powers := make([]float64, size)
	points := make([]Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		points = append(points, c.sample(controls, powers, t))
	}
	c.points = points
}

// sample evaluates one point. Shapes are already validated by ComputeFor,
// so the unchecked products cannot fail.
func (c *Curve) sample(controls *matrix.Dense[float64], powers []float64, t float64) Point {
	fillPowers(powers, t)
	weights := matrix.MulUnchecked(c.coefficients, matrix.Column(powers))
	xy := matrix.MulUnchecked(controls, weights).Data()

	return Pt(xy[0], xy[1])
}

// fillPowers writes [tⁿ, …, t, 1] into powers. Powers are built by repeated
// multiplication from the constant term upwards, not by math.Pow.
func fillPowers(powers []float64, t float64) {
	p := 1.0
	last := len(powers) - 1
	for j := 0; j <= last; j++ {
		powers[last-j] = p
		p *= t
	}
}
