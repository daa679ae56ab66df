package magnitude_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlstat/magnitude"
)

// TestFormat_LengthPreservation verifies len(out)==len(in) across vector sizes,
// including the empty vector.
func TestFormat_LengthPreservation(t *testing.T) {
	for _, values := range [][]float64{
		{},
		{1},
		{1000, 2000, 3000},
		{0, -1, 1e12, 0.5, 875003780},
	} {
		out, err := magnitude.Format(values, magnitude.Thousand)
		require.NoError(t, err)
		assert.Len(t, out, len(values), "output length must match input length")
	}
}

// TestFormat_UnitScaling pins the basic thousand-scaling strings, with the
// default comma separator applied.
func TestFormat_UnitScaling(t *testing.T) {
	out, err := magnitude.Format([]float64{1000}, magnitude.Thousand)
	require.NoError(t, err)
	assert.Equal(t, []string{"1K"}, out)

	out, err = magnitude.Format([]float64{875003780}, magnitude.Thousand)
	require.NoError(t, err)
	assert.Equal(t, []string{"875,004K"}, out, "default separator groups thousands")
}

// TestFormat_AllUnits walks the full divisor table on a single value.
func TestFormat_AllUnits(t *testing.T) {
	const v = 5_000_000_000_000

	cases := map[magnitude.Unit]string{
		magnitude.Hundred:      "50,000,000,000H",
		magnitude.Thousand:     "5,000,000,000K",
		magnitude.Million:      "5,000,000M",
		magnitude.Billion:      "5,000B",
		magnitude.Trillion:     "5T",
		magnitude.HundredBare:  "50,000,000,000",
		magnitude.ThousandBare: "5,000,000,000",
		magnitude.MillionBare:  "5,000,000",
		magnitude.BillionBare:  "5,000",
		magnitude.TrillionBare: "5",
	}
	for unit, want := range cases {
		out, err := magnitude.Format([]float64{v}, unit)
		require.NoError(t, err)
		assert.Equal(t, []string{want}, out, "unit %q", unit)
	}
}

// TestFormat_PrefixComposition verifies prefix placement before the number.
func TestFormat_PrefixComposition(t *testing.T) {
	out, err := magnitude.Format([]float64{1000}, magnitude.Thousand, magnitude.WithPrefix("$"))
	require.NoError(t, err)
	assert.Equal(t, []string{"$1K"}, out)
}

// TestFormat_DigitPrecision verifies digits acts as a ceiling: trailing zeros
// are trimmed, not padded.
func TestFormat_DigitPrecision(t *testing.T) {
	out, err := magnitude.Format([]float64{21784}, magnitude.Thousand, magnitude.WithDigits(5))
	require.NoError(t, err)
	assert.Equal(t, []string{"21.784K"}, out)

	// Exact integers never grow a decimal point.
	out, err = magnitude.Format([]float64{2000}, magnitude.Thousand, magnitude.WithDigits(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"2K"}, out)
}

// TestFormat_UnknownUnit ensures an unrecognized token fails with ErrUnknownUnit
// and the message names every valid token.
func TestFormat_UnknownUnit(t *testing.T) {
	_, err := magnitude.Format([]float64{1}, magnitude.Unit("Q"))
	require.ErrorIs(t, err, magnitude.ErrUnknownUnit)
	for _, token := range []string{"K", "M", "B", "T", "H", "k", "m", "b", "t", "h"} {
		assert.Contains(t, err.Error(), token)
	}
}

// TestFormat_NegativeValues verifies sign handling through grouping.
func TestFormat_NegativeValues(t *testing.T) {
	out, err := magnitude.Format([]float64{-1234567}, magnitude.Thousand)
	require.NoError(t, err)
	assert.Equal(t, []string{"-1,235K"}, out)
}

// TestFormat_CustomSeparator verifies an arbitrary separator string.
func TestFormat_CustomSeparator(t *testing.T) {
	out, err := magnitude.Format([]float64{9876543210}, magnitude.ThousandBare, magnitude.WithSeparator(" "))
	require.NoError(t, err)
	assert.Equal(t, []string{"9 876 543"}, out)
}

// TestFormat_Scientific verifies scientific mode: no grouping, prefix and
// suffix still composed.
func TestFormat_Scientific(t *testing.T) {
	out, err := magnitude.Format(
		[]float64{875003780},
		magnitude.Thousand,
		magnitude.WithScientific(),
		magnitude.WithDigits(2),
		magnitude.WithPrefix("$"),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"$8.75e+05K"}, out)
}

// TestFormat_NonFiniteDefault verifies NaN/±Inf pass through verbatim with
// no prefix or suffix under the default policy.
func TestFormat_NonFiniteDefault(t *testing.T) {
	out, err := magnitude.Format(
		[]float64{math.NaN(), math.Inf(1), math.Inf(-1), 1000},
		magnitude.Thousand,
		magnitude.WithPrefix("$"),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"NaN", "+Inf", "-Inf", "$1K"}, out)
}

// TestFormat_NonFiniteFail verifies the strict policy rejects NaN input.
func TestFormat_NonFiniteFail(t *testing.T) {
	_, err := magnitude.Format([]float64{math.NaN()}, magnitude.Thousand, magnitude.WithFailOnNonFinite())
	assert.ErrorIs(t, err, magnitude.ErrNonFinite)
}

// TestFormatStyled_Presets verifies the three presets resolve to their fixed
// separator/prefix pairs.
func TestFormatStyled_Presets(t *testing.T) {
	v := []float64{875003780}

	out, err := magnitude.FormatStyled(v, magnitude.Thousand, magnitude.StyleDollar)
	require.NoError(t, err)
	assert.Equal(t, []string{"$875004K"}, out, "dollar preset: prefix, no grouping")

	out, err = magnitude.FormatStyled(v, magnitude.Thousand, magnitude.StyleComma)
	require.NoError(t, err)
	assert.Equal(t, []string{"875,004K"}, out, "comma preset: grouping, no prefix")

	out, err = magnitude.FormatStyled(v, magnitude.Thousand, magnitude.StyleIdentity)
	require.NoError(t, err)
	assert.Equal(t, []string{"875004K"}, out, "identity preset: bare")
}

// TestFormatStyled_Override verifies explicit options win over the preset.
func TestFormatStyled_Override(t *testing.T) {
	out, err := magnitude.FormatStyled(
		[]float64{875003780},
		magnitude.Thousand,
		magnitude.StyleDollar,
		magnitude.WithSeparator(","),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"$875,004K"}, out)
}

// TestFormatStyled_UnknownStyle verifies an out-of-enum style is rejected.
func TestFormatStyled_UnknownStyle(t *testing.T) {
	_, err := magnitude.FormatStyled([]float64{1}, magnitude.Thousand, magnitude.Style(99))
	assert.ErrorIs(t, err, magnitude.ErrUnknownStyle)
}

// TestFormatter_Closure verifies the bound closure formats single values with
// the captured configuration.
func TestFormatter_Closure(t *testing.T) {
	label, err := magnitude.Formatter(magnitude.Million, magnitude.WithDigits(1))
	require.NoError(t, err)
	assert.Equal(t, "1.5M", label(1_500_000))
	assert.Equal(t, "0M", label(0))
}

// TestFormatter_UnknownUnit verifies the adapter validates at construction.
func TestFormatter_UnknownUnit(t *testing.T) {
	_, err := magnitude.Formatter(magnitude.Unit("Z"))
	assert.ErrorIs(t, err, magnitude.ErrUnknownUnit)
}

// TestWithDigits_PanicsOnNegative verifies the programmer-error contract of
// the option constructor.
func TestWithDigits_PanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() { magnitude.WithDigits(-1) })
}
