// Package kmeans - unified entry point and shared numeric kernels.
//
// Fit validates inputs, normalizes options, runs the requested algorithm
// once per restart on an independent derived RNG stream, and keeps the
// restart with the lowest total within-cluster sum-of-squares.
//
// Design principles (shared across the module):
//   - Deterministic: every Fit call re-seeds from Options.Seed; no
//     time-based randomness anywhere.
//   - Strict sentinels: only errors from types.go.
//   - Hot-path discipline: RawRowView row access, no per-point allocations
//     inside sweeps.
package kmeans

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// transferEps guards single-point transfers against floating-point noise:
// a move must improve total WSS by more than this to be taken.
const transferEps = 1e-12

// Fit clusters the rows of data into k groups.
//
// Contracts:
//   - data must be non-nil with at least one row and one column.
//   - 1 <= k <= rows.
//   - opts zero fields assume defaults (see Options).
//
// Determinism: identical (data, k, opts) ⇒ identical *Result, bit for bit.
// Restart r runs on a stream derived from (Seed, r), and the call re-seeds
// from scratch every time, so callers may refit freely without perturbing
// results.
//
// Errors: ErrEmptyData, ErrBadClusterCount, ErrBadOption, ErrUnknownAlgorithm.
//
// Complexity: O(Restarts · MaxIterations · rows · k · cols) worst case.
func Fit(data *mat.Dense, k int, opts Options) (*Result, error) {
	if data == nil {
		return nil, ErrEmptyData
	}
	rows, cols := data.Dims()
	if rows == 0 || cols == 0 {
		return nil, ErrEmptyData
	}
	if k < 1 || k > rows {
		return nil, fmt.Errorf("k=%d with %d observations: %w", k, rows, ErrBadClusterCount)
	}
	opts, err := normalizeOptions(opts)
	if err != nil {
		return nil, err
	}

	base := rngFromSeed(opts.Seed)

	var best *Result
	for r := 0; r < opts.Restarts; r++ {
		rng := deriveRNG(base, uint64(r))
		centers := forgyInit(data, k, rng)

		var (
			labels    []int
			iters     int
			converged bool
		)
		switch opts.Algorithm {
		case HartiganWong:
			labels, iters, converged = hartiganWong(data, centers, opts.MaxIterations)
		case Lloyd, Forgy:
			labels, iters, converged = lloyd(data, centers, opts.MaxIterations, opts.Tolerance)
		case MacQueen:
			labels, iters, converged = macqueen(data, centers, opts.MaxIterations)
		}

		res := summarize(data, centers, labels, iters, converged)
		if best == nil || res.TotWithinSS < best.TotWithinSS {
			best = res
		}
	}

	return best, nil
}

// normalizeOptions applies documented defaults and rejects negatives.
func normalizeOptions(o Options) (Options, error) {
	if !validAlgorithm(o.Algorithm) {
		return o, ErrUnknownAlgorithm
	}
	if o.Restarts < 0 || o.MaxIterations < 0 || o.Tolerance < 0 {
		return o, ErrBadOption
	}
	if o.Restarts == 0 {
		o.Restarts = DefaultRestarts
	}
	if o.MaxIterations == 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	if o.Tolerance == 0 {
		o.Tolerance = DefaultTolerance
	}

	return o, nil
}

// forgyInit draws k distinct observations as the initial centers.
func forgyInit(data *mat.Dense, k int, rng *rand.Rand) [][]float64 {
	rows, cols := data.Dims()
	centers := make([][]float64, k)
	for i, idx := range sampleIndices(rows, k, rng) {
		centers[i] = make([]float64, cols)
		copy(centers[i], data.RawRowView(idx))
	}

	return centers
}

// nearest returns the index of the closest center to x and the squared
// Euclidean distance to it. Ties break toward the lower index.
func nearest(x []float64, centers [][]float64) (int, float64) {
	best, bestD2 := 0, math.Inf(1)
	for j, c := range centers {
		d := floats.Distance(x, c, 2)
		if d2 := d * d; d2 < bestD2 {
			best, bestD2 = j, d2
		}
	}

	return best, bestD2
}

// assignAll labels every row with its nearest center.
func assignAll(data *mat.Dense, centers [][]float64, labels []int) {
	rows, _ := data.Dims()
	for i := 0; i < rows; i++ {
		labels[i], _ = nearest(data.RawRowView(i), centers)
	}
}

// accumulate zeroes sums/counts and folds every row into its cluster bucket.
func accumulate(data *mat.Dense, labels []int, sums [][]float64, counts []int) {
	for j := range sums {
		for d := range sums[j] {
			sums[j][d] = 0
		}
		counts[j] = 0
	}
	rows, _ := data.Dims()
	for i := 0; i < rows; i++ {
		floats.Add(sums[labels[i]], data.RawRowView(i))
		counts[labels[i]]++
	}
}

// repairEmpty reseeds every empty cluster with the observation farthest from
// its current center, drawn from a donor cluster of size > 1. The rule is
// deterministic: the global farthest point wins, lower index on ties.
func repairEmpty(data *mat.Dense, centers [][]float64, labels []int, sums [][]float64, counts []int) {
	rows, _ := data.Dims()
	for j := range counts {
		if counts[j] > 0 {
			continue
		}
		far, farD2 := -1, -1.0
		for i := 0; i < rows; i++ {
			a := labels[i]
			if counts[a] <= 1 {
				continue
			}
			_, d2 := nearest(data.RawRowView(i), centers[a:a+1])
			if d2 > farD2 {
				far, farD2 = i, d2
			}
		}
		if far < 0 {
			// Every cluster is a singleton; nothing can donate.
			continue
		}
		x := data.RawRowView(far)
		donor := labels[far]
		floats.Sub(sums[donor], x)
		counts[donor]--
		copy(sums[j], x)
		counts[j] = 1
		labels[far] = j
	}
}

// addToMean folds x into a running mean that now covers n points.
func addToMean(c, x []float64, n int) {
	inv := 1 / float64(n)
	for d := range c {
		c[d] += (x[d] - c[d]) * inv
	}
}

// removeFromMean unfolds x from a running mean that currently covers n
// points (n > 1).
func removeFromMean(c, x []float64, n int) {
	scale := 1 / float64(n-1)
	for d := range c {
		c[d] = (c[d]*float64(n) - x[d]) * scale
	}
}

// summarize assembles the public Result from a finished restart.
func summarize(data *mat.Dense, centers [][]float64, labels []int, iters int, converged bool) *Result {
	rows, cols := data.Dims()
	k := len(centers)

	within := make([]float64, k)
	for i := 0; i < rows; i++ {
		d := floats.Distance(data.RawRowView(i), centers[labels[i]], 2)
		within[labels[i]] += d * d
	}
	totWithin := floats.Sum(within)
	tot := totalSS(data)

	flat := make([]float64, 0, k*cols)
	for _, c := range centers {
		flat = append(flat, c...)
	}

	out := make([]int, rows)
	copy(out, labels)

	return &Result{
		Centers:     mat.NewDense(k, cols, flat),
		Labels:      out,
		WithinSS:    within,
		TotWithinSS: totWithin,
		TotSS:       tot,
		BetweenSS:   tot - totWithin,
		Iterations:  iters,
		Converged:   converged,
	}
}

// totalSS is the sum of squared distances to the global mean, i.e. the
// one-cluster within-SS.
func totalSS(data *mat.Dense) float64 {
	rows, cols := data.Dims()
	mean := make([]float64, cols)
	for i := 0; i < rows; i++ {
		floats.Add(mean, data.RawRowView(i))
	}
	floats.Scale(1/float64(rows), mean)

	var tot float64
	for i := 0; i < rows; i++ {
		d := floats.Distance(data.RawRowView(i), mean, 2)
		tot += d * d
	}

	return tot
}
