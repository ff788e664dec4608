// Package bezier is a small numerical engine for Bézier curves of any
// degree: it turns an ordered set of control points into an ordered set of
// sample points along the curve.
//
// 🚀 What is inside?
//
//	• Matrices: a generic row-major Dense[T] with checked and unchecked multiply
//	• Coefficient matrices: the Bernstein-to-power-basis matrix of degree n,
//	  from a memoised Pascal's triangle (Cache) or computed on the fly (JIT)
//	• Curves: matrix-form evaluation at steps+1 evenly spaced parameters
//	• Sessions: an editable control-point set that keeps its curve current
//
// ✨ How it fits together
//
//	controls (2×(n+1)) · coefficients ((n+1)×(n+1)) · [tⁿ … t 1]ᵀ  →  (x, y)
//
// The coefficient matrix depends only on n, so it is computed once per
// degree and reused while control points move.
//
// Under the hood:
//
//	matrix/         — Dense[T], Mul, MulUnchecked and sentinel errors
//	coefficient/    — Computer interface, Cache, JIT and the Kind selector
//	curve/          — Point, Pack and the tolerant Curve.ComputeFor
//	editor/         — Session: add, remove, move, steps and computer selection
//	cmd/bezierplot/ — renders a TOML-described session to PNG/SVG/PDF
//
//	go get github.com/katalvlaran/bezier
package bezier
