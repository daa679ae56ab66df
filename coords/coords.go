package coords

import (
	"errors"
	"math"
)

// ErrLengthMismatch indicates the paired coordinate slices differ in length.
var ErrLengthMismatch = errors.New("coords: input slices differ in length")

// PolarToCartesian converts paired radius/angle vectors to x/y vectors.
// Angles are radians. Element i of the output depends only on element i of
// the inputs; empty inputs yield empty outputs.
//
// Errors: ErrLengthMismatch.
func PolarToCartesian(r, theta []float64) (x, y []float64, err error) {
	if len(r) != len(theta) {
		return nil, nil, ErrLengthMismatch
	}

	x = make([]float64, len(r))
	y = make([]float64, len(r))
	for i := range r {
		x[i] = r[i] * math.Cos(theta[i])
		y[i] = r[i] * math.Sin(theta[i])
	}

	return x, y, nil
}

// CartesianToPolar converts paired x/y vectors to radius/angle vectors.
// Angles come from atan2 and lie in (−π, π]; the origin maps to (0, 0).
//
// Errors: ErrLengthMismatch.
func CartesianToPolar(x, y []float64) (r, theta []float64, err error) {
	if len(x) != len(y) {
		return nil, nil, ErrLengthMismatch
	}

	r = make([]float64, len(x))
	theta = make([]float64, len(x))
	for i := range x {
		r[i] = math.Hypot(x[i], y[i])
		theta[i] = math.Atan2(y[i], x[i])
	}

	return r, theta, nil
}
