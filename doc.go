// Package lvlstat is your in-memory toolbox for making tabular numbers
// readable and cluster counts defensible — from magnitude formatting to
// k-means diagnostics.
//
// 🚀 What is lvlstat?
//
//	A small, deterministic library that brings together:
//		• Magnitude formatting: compress 875003780 into "875,004K" (or "$875,004K")
//		• K-means: Lloyd, Forgy, MacQueen and Hartigan–Wong, with restarts & seeding
//		• Hartigan's rule: decide how many clusters your data actually supports
//		• Diagnostic plots: statistic-vs-k charts with the decision threshold drawn in
//		• Frame helpers: corner views, column shifting, regex extraction
//		• Small utilities: polar↔cartesian conversion, case predicates
//
// ✨ Why choose lvlstat?
//
//   - Deterministic by default – seed 0 maps to a fixed stream; same inputs, same table
//   - Sentinel errors – every failure mode is a named error you can errors.Is against
//   - Pure Go – no cgo; numeric heavy lifting via gonum
//   - Composable – the cluster selector takes any fitter matching its contract
//
// Under the hood, everything is organized as flat subpackages:
//
//	magnitude/ — order-of-magnitude number formatter + axis-label adapters
//	kmeans/    — clustering engine (four algorithm variants, restart streams)
//	hartigan/  — cluster-count selector built on Hartigan's rule
//	hplot/     — gonum/plot rendering of selector tables
//	frame/     — light string frames: corners, shifts, extraction, matrix export
//	coords/    — vectorized polar/cartesian conversion
//	strcase/   — upper/lower/mixed case detection
//
// Quick taste:
//
//	labels, _ := magnitude.Format([]float64{875003780}, magnitude.Thousand)
//	// labels == []string{"875,004K"}
//
//	table, _ := hartigan.Select(data, 12, hartigan.DefaultOptions())
//	// one row per k in 2..11, flagged where the statistic clears 10
//
// Dive into README.md and each package's example_test.go for full walkthroughs.
//
//	go get github.com/katalvlaran/lvlstat
package lvlstat
