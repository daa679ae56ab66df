// Package kmeans: algorithm enum, options, result record and sentinel errors.
//
// This file is the single source of truth for the package vocabulary. All
// entry points return these sentinels and tests match them via errors.Is.
// Panics are reserved for programmer errors; user-triggered conditions
// always surface as errors.
package kmeans

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Algorithm selects the k-means update strategy.
type Algorithm int

const (
	// HartiganWong moves single points between clusters whenever the
	// transfer lowers total within-cluster sum-of-squares, weighting by
	// cluster sizes. The default, as in the reference collaborator.
	HartiganWong Algorithm = iota

	// Lloyd is the classic batch assign-then-update iteration.
	Lloyd

	// Forgy is accepted as a distinct token but runs the Lloyd iteration;
	// the name historically refers to the initialization, which this
	// package always performs Forgy-style (k distinct observations).
	Forgy

	// MacQueen updates the affected center immediately after every single
	// reassignment (online running means).
	MacQueen
)

// algorithmNames holds the accepted spelling of each variant, in enum order.
var algorithmNames = [...]string{"Hartigan-Wong", "Lloyd", "Forgy", "MacQueen"}

// String returns the canonical name of the algorithm.
func (a Algorithm) String() string {
	if a < HartiganWong || a > MacQueen {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}

	return algorithmNames[a]
}

// validAlgorithm reports whether a is inside the enum.
func validAlgorithm(a Algorithm) bool {
	return a >= HartiganWong && a <= MacQueen
}

// ParseAlgorithm maps a variant name to its Algorithm value. Unknown names
// fail with ErrUnknownAlgorithm; the error text enumerates every accepted
// variant so callers can surface it directly.
func ParseAlgorithm(name string) (Algorithm, error) {
	for i, n := range algorithmNames {
		if n == name {
			return Algorithm(i), nil
		}
	}

	return 0, fmt.Errorf("%q: %w", name, ErrUnknownAlgorithm)
}

// Defaults — single source of truth for zero-field Options behavior.
const (
	// DefaultRestarts is the number of random restarts per fit.
	DefaultRestarts = 1

	// DefaultMaxIterations caps the update sweeps of a single restart.
	DefaultMaxIterations = 10

	// DefaultTolerance is the center-movement threshold below which a
	// batch iteration is declared converged.
	DefaultTolerance = 1e-9
)

// Options configures a single Fit call.
//
// Zero fields assume the documented defaults; negative Restarts or
// MaxIterations are rejected with ErrBadOption. Seed 0 maps to a fixed
// deterministic stream (see rng.go), so the zero value of Options is fully
// reproducible.
type Options struct {
	// Algorithm selects the update strategy. Zero value is HartiganWong.
	Algorithm Algorithm

	// Restarts is the number of independent random initializations; the
	// restart with the lowest total within-cluster sum-of-squares wins.
	Restarts int

	// MaxIterations caps update sweeps per restart. Exhausting it is not
	// an error: the result reports Converged=false.
	MaxIterations int

	// Seed drives all randomness. Every Fit call re-seeds from this value,
	// so repeated calls with identical inputs yield identical results.
	Seed int64

	// Tolerance is the convergence threshold on center movement
	// (batch algorithms only).
	Tolerance float64
}

// DefaultOptions returns the documented default configuration.
func DefaultOptions() Options {
	return Options{
		Algorithm:     HartiganWong,
		Restarts:      DefaultRestarts,
		MaxIterations: DefaultMaxIterations,
		Tolerance:     DefaultTolerance,
	}
}

// Result is one fitted clustering.
type Result struct {
	// Centers holds one row per cluster (k×cols).
	Centers *mat.Dense

	// Labels maps each observation to its cluster index (0..k-1).
	Labels []int

	// WithinSS is the within-cluster sum-of-squares, one entry per cluster.
	WithinSS []float64

	// TotWithinSS is sum(WithinSS) — the quantity cluster-count selectors
	// compare between fits.
	TotWithinSS float64

	// TotSS is the total sum-of-squares about the global mean
	// (the one-cluster WithinSS).
	TotSS float64

	// BetweenSS is TotSS − TotWithinSS.
	BetweenSS float64

	// Iterations is the sweep count of the winning restart.
	Iterations int

	// Converged reports whether the winning restart stabilized within
	// MaxIterations.
	Converged bool
}

var (
	// ErrEmptyData is returned for a nil or zero-sized data matrix.
	ErrEmptyData = errors.New("kmeans: data matrix is nil or empty")

	// ErrBadClusterCount is returned when k < 1 or k exceeds the number of
	// observations.
	ErrBadClusterCount = errors.New("kmeans: cluster count out of range")

	// ErrBadOption is returned for negative Restarts or MaxIterations.
	ErrBadOption = errors.New("kmeans: invalid option value")

	// ErrUnknownAlgorithm is returned for a variant outside the accepted
	// set. The message names every valid variant.
	ErrUnknownAlgorithm = errors.New(
		"kmeans: unknown algorithm (valid: Hartigan-Wong, Lloyd, Forgy, MacQueen)")
)
