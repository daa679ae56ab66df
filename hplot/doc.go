// Package hplot renders hartigan selector tables as the classic
// statistic-vs-k diagnostic chart.
//
// The chart shows one point per evaluated cluster count, a dashed reference
// line at the decision threshold (10), and color-codes points by whether the
// statistic clears it. Y tick labels can run through the magnitude formatter
// for large statistics.
//
// ⚙️ Usage:
//
//	table, _ := hartigan.Select(data, 12, hartigan.DefaultOptions())
//
//	p, err := hplot.Hartigan(table,
//	  hplot.WithTitle("How many clusters?"),
//	  hplot.WithYUnit(magnitude.ThousandBare),
//	)
//	if err != nil { ... }
//	_ = p.Save(6*vg.Inch, 4*vg.Inch, "hartigan.png")
//
// Rendering and persistence stay with gonum.org/v1/plot; this package only
// assembles the figure.
package hplot
