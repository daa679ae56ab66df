package kmeans

import "gonum.org/v1/gonum/mat"

// lloyd runs the classic batch iteration: assign every point to its nearest
// center, then recenter every cluster on the mean of its members. Empty
// clusters are reseeded deterministically (see repairEmpty). The sweep stops
// when the largest center movement drops to tol or below.
//
// centers is mutated in place. Returns (labels, sweeps used, converged).
//
// Complexity per sweep: O(rows · k · cols).
func lloyd(data *mat.Dense, centers [][]float64, maxIter int, tol float64) ([]int, int, bool) {
	rows, cols := data.Dims()
	k := len(centers)

	labels := make([]int, rows)
	counts := make([]int, k)
	sums := make([][]float64, k)
	for j := range sums {
		sums[j] = make([]float64, cols)
	}

	tol2 := tol * tol
	for iter := 1; iter <= maxIter; iter++ {
		assignAll(data, centers, labels)
		accumulate(data, labels, sums, counts)
		repairEmpty(data, centers, labels, sums, counts)

		// Recenter and track the largest squared movement.
		var maxMove2 float64
		for j := 0; j < k; j++ {
			inv := 1 / float64(counts[j])
			var move2 float64
			for d := 0; d < cols; d++ {
				nc := sums[j][d] * inv
				delta := nc - centers[j][d]
				move2 += delta * delta
				centers[j][d] = nc
			}
			if move2 > maxMove2 {
				maxMove2 = move2
			}
		}

		if maxMove2 <= tol2 {
			// Centers settled; refresh labels against the final centers.
			assignAll(data, centers, labels)

			return labels, iter, true
		}
	}

	assignAll(data, centers, labels)

	return labels, maxIter, false
}
