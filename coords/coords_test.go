package coords

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-12

func TestPolarToCartesian_KnownAngles(t *testing.T) {
	r := []float64{1, 2, 3, 4}
	theta := []float64{0, math.Pi / 2, math.Pi, -math.Pi / 2}

	x, y, err := PolarToCartesian(r, theta)
	require.NoError(t, err)
	require.Len(t, x, 4)
	require.Len(t, y, 4)

	assert.InDelta(t, 1, x[0], eps)
	assert.InDelta(t, 0, y[0], eps)
	assert.InDelta(t, 0, x[1], eps)
	assert.InDelta(t, 2, y[1], eps)
	assert.InDelta(t, -3, x[2], eps)
	assert.InDelta(t, 0, y[2], eps)
	assert.InDelta(t, 0, x[3], eps)
	assert.InDelta(t, -4, y[3], eps)
}

func TestCartesianToPolar_QuadrantsAndRange(t *testing.T) {
	x := []float64{1, -1, -1, 1}
	y := []float64{1, 1, -1, -1}

	r, theta, err := CartesianToPolar(x, y)
	require.NoError(t, err)

	for i := range r {
		assert.InDelta(t, math.Sqrt2, r[i], eps)
		assert.Greater(t, theta[i], -math.Pi)
		assert.LessOrEqual(t, theta[i], math.Pi)
	}
	assert.InDelta(t, math.Pi/4, theta[0], eps)
	assert.InDelta(t, 3*math.Pi/4, theta[1], eps)
	assert.InDelta(t, -3*math.Pi/4, theta[2], eps)
	assert.InDelta(t, -math.Pi/4, theta[3], eps)
}

func TestCartesianToPolar_Origin(t *testing.T) {
	r, theta, err := CartesianToPolar([]float64{0}, []float64{0})
	require.NoError(t, err)
	assert.Equal(t, 0.0, r[0])
	assert.Equal(t, 0.0, theta[0])
}

func TestRoundTrip(t *testing.T) {
	x := []float64{3, -2.5, 0.001, 7, -4}
	y := []float64{4, 1.5, -0.002, 0, -4}

	r, theta, err := CartesianToPolar(x, y)
	require.NoError(t, err)

	x2, y2, err := PolarToCartesian(r, theta)
	require.NoError(t, err)

	for i := range x {
		assert.InDelta(t, x[i], x2[i], 1e-9)
		assert.InDelta(t, y[i], y2[i], 1e-9)
	}
}

func TestLengthMismatch(t *testing.T) {
	_, _, err := PolarToCartesian([]float64{1, 2}, []float64{0})
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, _, err = CartesianToPolar([]float64{1}, []float64{0, 1})
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestEmptyInputs(t *testing.T) {
	x, y, err := PolarToCartesian(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, x)
	assert.Empty(t, y)

	r, theta, err := CartesianToPolar([]float64{}, []float64{})
	require.NoError(t, err)
	assert.Empty(t, r)
	assert.Empty(t, theta)
}
