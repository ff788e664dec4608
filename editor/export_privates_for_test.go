package editor

import "github.com/katalvlaran/bezier/matrix"

// HeldCoefficients exposes the matrix the curve holds, without copying.
func HeldCoefficients(s *Session) *matrix.Dense[float64] {
	return s.curve.CoefficientMatrix()
}
