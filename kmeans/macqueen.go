package kmeans

import "gonum.org/v1/gonum/mat"

// macqueen runs the online variant: centers update immediately after every
// single assignment rather than once per sweep.
//
// Sweep 1 seeds the running means: each point joins its nearest center and
// that center shifts at once. Later sweeps move points one at a time,
// unfolding the donor mean and folding the receiver mean incrementally. A
// point never leaves a singleton cluster, so clusters cannot empty out.
// The iteration stops on the first sweep with no reassignment.
//
// centers is mutated in place. Returns (labels, sweeps used, converged).
//
// Complexity per sweep: O(rows · k · cols).
func macqueen(data *mat.Dense, centers [][]float64, maxIter int) ([]int, int, bool) {
	rows, _ := data.Dims()
	k := len(centers)

	labels := make([]int, rows)
	counts := make([]int, k)

	// Seeding sweep.
	for i := 0; i < rows; i++ {
		x := data.RawRowView(i)
		j, _ := nearest(x, centers)
		labels[i] = j
		counts[j]++
		addToMean(centers[j], x, counts[j])
	}
	if maxIter == 1 {
		return labels, 1, false
	}

	for iter := 2; iter <= maxIter; iter++ {
		moved := 0
		for i := 0; i < rows; i++ {
			x := data.RawRowView(i)
			j, _ := nearest(x, centers)
			a := labels[i]
			if j == a || counts[a] <= 1 {
				continue
			}
			removeFromMean(centers[a], x, counts[a])
			counts[a]--
			counts[j]++
			addToMean(centers[j], x, counts[j])
			labels[i] = j
			moved++
		}
		if moved == 0 {
			return labels, iter, true
		}
	}

	return labels, maxIter, false
}
