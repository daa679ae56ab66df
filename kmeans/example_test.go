package kmeans_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlstat/kmeans"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleFit
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Six points on a line, two obvious groups. The default configuration
//	(Hartigan–Wong, one restart, fixed default seed) recovers the split and
//	reports the bookkeeping the hartigan selector feeds on.
//
// ExampleFit clusters two groups on a line.
func ExampleFit() {
	data := mat.NewDense(6, 1, []float64{0.0, 0.1, 0.2, 10.0, 10.1, 10.2})

	res, err := kmeans.Fit(data, 2, kmeans.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("clusters:", len(res.WithinSS))
	fmt.Println("converged:", res.Converged)
	fmt.Println("0 with 1:", res.Labels[0] == res.Labels[1])
	fmt.Println("0 with 3:", res.Labels[0] == res.Labels[3])
	// Output:
	// clusters: 2
	// converged: true
	// 0 with 1: true
	// 0 with 3: false
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleParseAlgorithm
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Algorithm names arrive as strings (flags, config files). ParseAlgorithm
//	maps them to the enum and names every accepted variant on failure.
//
// ExampleParseAlgorithm parses a valid and an invalid variant name.
func ExampleParseAlgorithm() {
	algo, _ := kmeans.ParseAlgorithm("MacQueen")
	fmt.Println(algo)

	_, err := kmeans.ParseAlgorithm("lol")
	fmt.Println(err)
	// Output:
	// MacQueen
	// "lol": kmeans: unknown algorithm (valid: Hartigan-Wong, Lloyd, Forgy, MacQueen)
}
