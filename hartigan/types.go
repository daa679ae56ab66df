// Package hartigan: result rows, options, policies and sentinel errors.
package hartigan

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlstat/kmeans"
)

// HartiganThreshold is the fixed decision constant of Hartigan's rule: a
// statistic above it justifies adding another cluster. It is a design
// constant of the heuristic, not a tunable.
const HartiganThreshold = 10.0

// Row is one evaluated cluster count.
type Row struct {
	// K is the cluster count this row evaluates.
	K int

	// Statistic is Hartigan's statistic comparing the fits at K-1 and K.
	Statistic float64

	// AddCluster is Statistic > HartiganThreshold.
	AddCluster bool
}

// Table is the full selector output: one Row per k in 2..maxClusters-1,
// ascending, built in full before it is returned.
type Table []Row

// FitFunc is the collaborator contract: cluster data into k groups and
// report the fit. The selector only reads TotWithinSS, but the full result
// keeps the contract interchangeable with kmeans.Fit.
type FitFunc func(data *mat.Dense, k int) (*kmeans.Result, error)

// ZeroWSSPolicy decides what happens when a fit reaches zero total
// within-cluster sum-of-squares and the statistic would divide by zero.
type ZeroWSSPolicy int

const (
	// ZeroWSSPropagate lets IEEE-754 semantics stand: positive/0 → +Inf
	// (flagged AddCluster), 0/0 → NaN (never flagged). The default.
	ZeroWSSPropagate ZeroWSSPolicy = iota

	// ZeroWSSFail aborts the whole selection with ErrZeroWithinSS; no
	// partial table is returned.
	ZeroWSSFail
)

// Options configures Select. Zero fields assume the kmeans defaults; Fit
// nil means "use kmeans.Fit with these fields".
type Options struct {
	// Algorithm, Restarts, MaxIterations and Seed configure the default
	// collaborator. They are ignored when Fit is set.
	Algorithm     kmeans.Algorithm
	Restarts      int
	MaxIterations int
	Seed          int64

	// ZeroWSS selects the divide-by-zero policy for the statistic.
	ZeroWSS ZeroWSSPolicy

	// Fit overrides the clustering collaborator. The selector calls it
	// twice per row (k-1 and k) and never retries or catches its errors.
	Fit FitFunc
}

// DefaultOptions mirrors the kmeans defaults with the propagate policy.
func DefaultOptions() Options {
	return Options{
		Algorithm:     kmeans.HartiganWong,
		Restarts:      kmeans.DefaultRestarts,
		MaxIterations: kmeans.DefaultMaxIterations,
	}
}

var (
	// ErrBadMaxClusters is returned when maxClusters < 2.
	ErrBadMaxClusters = errors.New("hartigan: maxClusters must be >= 2")

	// ErrZeroWithinSS is returned under ZeroWSSFail when a fit's total
	// within-cluster sum-of-squares is zero.
	ErrZeroWithinSS = errors.New("hartigan: zero within-cluster sum-of-squares")
)
