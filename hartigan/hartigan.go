package hartigan

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlstat/kmeans"
)

// Select evaluates Hartigan's rule for every cluster count k in
// 2..maxClusters-1 and reports which counts justify adding another cluster.
//
// For each row the collaborator fits k-1 and then k clusters from scratch —
// the k-1 fit is NOT reused from the previous row. Because every fit call
// re-seeds identically, memoizing the previous upper fit would be bit-exact
// under a fixed seed; the refit is kept anyway so each row stands alone.
// The statistic is
//
//	(sum(wss[k-1]) / sum(wss[k]) − 1) · (n − (k−1) − 1)
//
// with n the observation count; the trailing term adjusts for the degrees of
// freedom consumed by the smaller fit.
//
// Contracts:
//   - maxClusters >= 2; maxClusters == 2 yields an empty, non-nil Table.
//   - Collaborator failures propagate unwrapped; no partial table is
//     returned on any failure.
//   - Determinism: same data, maxClusters and opts ⇒ bit-identical Table.
//
// Errors: ErrBadMaxClusters, ErrZeroWithinSS (policy-gated),
// kmeans.ErrEmptyData, plus anything the collaborator returns (e.g.
// kmeans.ErrUnknownAlgorithm, kmeans.ErrBadOption).
//
// Complexity: 2·(maxClusters−2) sequential fits.
func Select(data *mat.Dense, maxClusters int, opts Options) (Table, error) {
	if maxClusters < 2 {
		return nil, ErrBadMaxClusters
	}
	if data == nil {
		return nil, kmeans.ErrEmptyData
	}
	rows, cols := data.Dims()
	if rows == 0 || cols == 0 {
		return nil, kmeans.ErrEmptyData
	}

	fit := opts.Fit
	if fit == nil {
		kopts := kmeans.Options{
			Algorithm:     opts.Algorithm,
			Restarts:      opts.Restarts,
			MaxIterations: opts.MaxIterations,
			Seed:          opts.Seed,
		}
		fit = func(d *mat.Dense, k int) (*kmeans.Result, error) {
			return kmeans.Fit(d, k, kopts)
		}
	}

	table := make(Table, 0, maxClusters-2)
	for k := 2; k < maxClusters; k++ {
		low, err := fit(data, k-1)
		if err != nil {
			return nil, err
		}
		high, err := fit(data, k)
		if err != nil {
			return nil, err
		}

		if high.TotWithinSS == 0 && opts.ZeroWSS == ZeroWSSFail {
			return nil, ErrZeroWithinSS
		}
		stat := Statistic(low.TotWithinSS, high.TotWithinSS, rows, k)
		table = append(table, Row{
			K:          k,
			Statistic:  stat,
			AddCluster: stat > HartiganThreshold,
		})
	}

	return table, nil
}

// Statistic computes Hartigan's statistic for cluster count k from the total
// within-cluster sums-of-squares of the k-1 fit (lowWSS) and the k fit
// (highWSS), over n observations.
//
// Pure IEEE-754 arithmetic: highWSS == 0 yields +Inf (or NaN when lowWSS is
// also zero). Callers wanting a hard failure use ZeroWSSFail on Select.
func Statistic(lowWSS, highWSS float64, n, k int) float64 {
	return (lowWSS/highWSS - 1) * float64(n-(k-1)-1)
}
