// Package curve samples a Bézier curve of arbitrary degree from its control
// points and a precomputed coefficient matrix.
//
// A Curve holds the coefficient matrix for the current degree (see package
// coefficient) and the last sampled points. ComputeFor evaluates
//
//	controls · (coefficients · [tⁿ, …, t, 1]ᵀ)
//
// at t = i/steps for i = 0..steps, where controls is the 2×(n+1) matrix built
// by Pack (row 0 holds the x coordinates, row 1 the y coordinates).
//
// ComputeFor sits on the interactive redraw path, so it is tolerant: invalid
// input (no steps, a malformed control matrix, a coefficient matrix of the
// wrong size) leaves the previous samples untouched instead of failing.
//
// A Curve is owned by one caller and is not safe for concurrent use.
package curve
