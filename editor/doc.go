// Package editor keeps one Bézier editing session: the ordered control
// points, the sampling resolution and the selected coefficient computer.
//
// Every mutation (Add, RemoveLast, Move, SetSteps, SetKind) triggers a
// wholesale recompute, in this order:
//
//  1. when the degree or the computer changed: warm the computer for the new
//     degree, compute the coefficient matrix and hand it to the curve;
//  2. pack the control points and resample the curve.
//
// Moves and step changes keep the degree, so they reuse the held coefficient
// matrix; this is the interactive-drag fast path.
//
// The package has no knowledge of windows, pointers or drawing. A UI (or the
// bezierplot command) mutates the session and draws Points() and
// ControlPoints(). A Session is not safe for concurrent use.
package editor
