package kmeans

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// hartiganWong runs the size-weighted transfer iteration. After one batch
// assignment and recentering, each sweep tries to move individual points:
// removing x from a cluster of size n frees
//
//	n/(n-1) · ‖x − c‖²
//
// of within-SS, while inserting it into a cluster of size m costs
//
//	m/(m+1) · ‖x − c'‖².
//
// The point moves to the cheapest foreign cluster whenever that strictly
// lowers total within-SS (beyond transferEps); both centers update
// incrementally. The iteration stops on the first sweep with no transfer.
//
// centers is mutated in place. Returns (labels, sweeps used, converged).
//
// Complexity per sweep: O(rows · k · cols).
func hartiganWong(data *mat.Dense, centers [][]float64, maxIter int) ([]int, int, bool) {
	rows, cols := data.Dims()
	k := len(centers)

	labels := make([]int, rows)
	counts := make([]int, k)
	sums := make([][]float64, k)
	for j := range sums {
		sums[j] = make([]float64, cols)
	}

	// One batch pass establishes honest cluster means before transfers.
	assignAll(data, centers, labels)
	accumulate(data, labels, sums, counts)
	repairEmpty(data, centers, labels, sums, counts)
	for j := 0; j < k; j++ {
		inv := 1 / float64(counts[j])
		for d := 0; d < cols; d++ {
			centers[j][d] = sums[j][d] * inv
		}
	}

	for iter := 1; iter <= maxIter; iter++ {
		transfers := 0
		for i := 0; i < rows; i++ {
			a := labels[i]
			if counts[a] <= 1 {
				continue
			}
			x := data.RawRowView(i)

			_, da2 := nearest(x, centers[a:a+1])
			gain := float64(counts[a]) / float64(counts[a]-1) * da2

			bestJ, bestCost := -1, math.Inf(1)
			for j := 0; j < k; j++ {
				if j == a {
					continue
				}
				_, dj2 := nearest(x, centers[j:j+1])
				cost := float64(counts[j]) / float64(counts[j]+1) * dj2
				if cost < bestCost {
					bestJ, bestCost = j, cost
				}
			}

			if bestJ >= 0 && bestCost < gain-transferEps {
				removeFromMean(centers[a], x, counts[a])
				counts[a]--
				counts[bestJ]++
				addToMean(centers[bestJ], x, counts[bestJ])
				labels[i] = bestJ
				transfers++
			}
		}
		if transfers == 0 {
			return labels, iter, true
		}
	}

	return labels, maxIter, false
}
