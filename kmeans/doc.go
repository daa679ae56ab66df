// Package kmeans clusters the rows of a numeric matrix into k groups,
// reporting per-cluster within-group sum-of-squares alongside the
// assignments.
//
// 🚀 What is kmeans?
//
//	The clustering engine behind the hartigan selector, modeled on the
//	classic collaborator contract: data matrix in, centers + labels +
//	within-SS out. Four update strategies are available:
//	  • Hartigan–Wong — size-weighted single-point transfers (default)
//	  • Lloyd         — batch assign-then-recenter
//	  • Forgy         — accepted alias; runs the Lloyd iteration
//	  • MacQueen      — online running-mean updates
//
// ✨ Key features:
//   - deterministic: seed 0 maps to a fixed stream; every Fit re-seeds,
//     restart r runs on a derived substream — same inputs, same Result
//   - multi-start: Restarts independent initializations, lowest total
//     within-SS wins
//   - non-convergence is data, not an error: Result.Converged reports it
//   - strict vocabulary: ParseAlgorithm rejects unknown variants with an
//     error naming every accepted one
//
// ⚙️ Usage:
//
//	import (
//	  "gonum.org/v1/gonum/mat"
//	  "github.com/katalvlaran/lvlstat/kmeans"
//	)
//
//	data := mat.NewDense(150, 4, obs)
//	res, err := kmeans.Fit(data, 3, kmeans.DefaultOptions())
//	// res.WithinSS, res.Labels, res.Centers, res.TotWithinSS ...
//
// Performance:
//
//   - Time:   O(Restarts · MaxIterations · rows · k · cols)
//   - Memory: O(k · cols + rows)
//
// See examples in example_test.go.
package kmeans
