// Package coords converts between polar and Cartesian plane coordinates,
// vectorized over paired float64 slices.
//
// 🚀 What you get:
//   - PolarToCartesian: (r, θ) → (x, y), element-wise.
//   - CartesianToPolar: (x, y) → (r, θ), with θ = atan2(y, x) ∈ (−π, π].
//
// ✨ Semantics:
//   - Angles are radians throughout.
//   - Both inputs must have equal length, otherwise ErrLengthMismatch.
//   - Empty inputs produce empty outputs; no allocation surprises.
//   - The origin (0, 0) maps to radius 0 with angle 0.
//
// ⚙️ Complexity: O(n) time, O(n) extra memory for the result vectors.
package coords
