// Package hartigan selects a cluster count for k-means-style clustering
// using Hartigan's rule.
//
// 🚀 What is Hartigan's rule?
//
//	A heuristic for the "how many clusters?" question: compare the
//	within-cluster variance of consecutive fits. If moving from k−1 to k
//	clusters shrinks the within-SS enough — statistic above 10 — the extra
//	cluster pays for itself; otherwise stop.
//
// ✨ Key features:
//   - one Row per k in 2..maxClusters−1: (K, Statistic, AddCluster)
//   - pluggable collaborator: any FitFunc matching the kmeans contract
//   - deterministic: per-fit reseeding makes tables reproducible bit-for-bit
//   - explicit divide-by-zero policy for perfectly separated data
//     (propagate ±Inf/NaN, or fail with ErrZeroWithinSS)
//
// ⚙️ Usage:
//
//	import (
//	  "gonum.org/v1/gonum/mat"
//	  "github.com/katalvlaran/lvlstat/hartigan"
//	)
//
//	data := mat.NewDense(150, 4, obs)
//	table, err := hartigan.Select(data, 12, hartigan.DefaultOptions())
//	for _, row := range table {
//	  // row.K, row.Statistic, row.AddCluster
//	}
//
// The table is built in full before it is returned — collaborator failures
// abort the whole selection, never a prefix. Hand the table to hplot for the
// standard diagnostic chart.
//
// Performance: 2·(maxClusters−2) sequential clustering fits; everything else
// is O(maxClusters).
//
// See examples in example_test.go.
package hartigan
