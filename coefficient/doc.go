// Package coefficient builds the Bernstein-to-power-basis coefficient matrix
// of a degree-n Bézier curve.
//
// 🚀 What is the coefficient matrix?
//
//	A degree-n curve B(t) = Σ C(n,k)(1-t)^(n-k) t^k P_k can be rewritten as a
//	polynomial in t. Expanding (1-t)^(n-k) with the binomial theorem gives,
//	for control point k and column j (which multiplies t^(n-j)):
//
//	  M[k][n-k-i] = (-1)^i · C(n,k) · C(n-k,i)   for i = 0..n-k
//
//	and zero elsewhere. Multiplying M by [tⁿ … t, 1]ᵀ yields the n+1
//	Bernstein weights at t.
//
// ✨ Two interchangeable computers:
//   - Cache — keeps half of each row of Pascal's triangle across calls.
//     Warm it with Precompute(n) first; later ComputeFor(n) calls only do
//     O(1) lookups. Best when the degree is stable (dragging points).
//   - JIT   — stateless; rebuilds C(n,k) with the multiplicative recurrence
//     c·(n-k)/(k+1) on every call. Best when the degree keeps changing.
//
// Both produce bit-identical matrices; they differ only in cost.
//
// ⚙️ Usage:
//
//	c, _ := coefficient.New(coefficient.KindCache)
//	if err := coefficient.Prepare(c, n); err != nil { ... }
//	m, err := c.ComputeFor(n)
//
// The matrix entries grow like 3ⁿ while the weights they produce stay in
// [0, 1], so float64 cancellation, not integer width, bounds the degree at
// MaxDegree.
//
// Performance:
//
//   - Cache warm-up: O(n²) once, ComputeFor: O(n²)
//   - JIT ComputeFor: O(n²), no retained memory
package coefficient
