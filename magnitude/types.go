// Package magnitude: unit tokens, style presets and sentinel errors.
//
// This file defines ONLY the enumerated vocabulary of the formatter:
//   - Unit — the ten recognized magnitude tokens and their divisor table,
//   - Style — the three separator/prefix presets,
//   - package sentinel errors, matched via errors.Is.
//
// Case carries meaning. "K" and "k" share the thousand divisor but are NOT
// aliases: the upper-case row appends the unit letter ("1K"), the lower-case
// row scales silently ("1"). The silent row exists for chart axes where the
// unit belongs in the axis title, not in every tick label.
package magnitude

import "errors"

// Unit names an order-of-magnitude scale. Use the exported constants; any
// other value is rejected with ErrUnknownUnit.
type Unit string

// Suffixed units: divide and append the unit letter.
const (
	// Hundred divides by 1e2 and appends "H".
	Hundred Unit = "H"

	// Thousand divides by 1e3 and appends "K".
	Thousand Unit = "K"

	// Million divides by 1e6 and appends "M".
	Million Unit = "M"

	// Billion divides by 1e9 and appends "B".
	Billion Unit = "B"

	// Trillion divides by 1e12 and appends "T".
	Trillion Unit = "T"
)

// Bare units: divide by the same factor as the upper-case counterpart but
// append nothing.
const (
	// HundredBare divides by 1e2, no suffix.
	HundredBare Unit = "h"

	// ThousandBare divides by 1e3, no suffix.
	ThousandBare Unit = "k"

	// MillionBare divides by 1e6, no suffix.
	MillionBare Unit = "m"

	// BillionBare divides by 1e9, no suffix.
	BillionBare Unit = "b"

	// TrillionBare divides by 1e12, no suffix.
	TrillionBare Unit = "t"
)

// unitSpec pairs a divisor with the suffix appended after the number.
type unitSpec struct {
	divisor float64
	suffix  string
}

// units is the single source of truth for token recognition.
var units = map[Unit]unitSpec{
	Hundred:      {divisor: 1e2, suffix: "H"},
	Thousand:     {divisor: 1e3, suffix: "K"},
	Million:      {divisor: 1e6, suffix: "M"},
	Billion:      {divisor: 1e9, suffix: "B"},
	Trillion:     {divisor: 1e12, suffix: "T"},
	HundredBare:  {divisor: 1e2, suffix: ""},
	ThousandBare: {divisor: 1e3, suffix: ""},
	MillionBare:  {divisor: 1e6, suffix: ""},
	BillionBare:  {divisor: 1e9, suffix: ""},
	TrillionBare: {divisor: 1e12, suffix: ""},
}

// validUnits is the stable order used in error messages and docs.
const validUnits = "K, M, B, T, H, k, m, b, t, h"

// Style is a named (separator, prefix) preset. Presets are plain enum values
// resolved to fixed option pairs — there is no dynamic dispatch behind them.
type Style int

const (
	// StyleIdentity applies no separator and no prefix.
	StyleIdentity Style = iota

	// StyleDollar prefixes "$" and applies no separator.
	StyleDollar

	// StyleComma applies the "," separator and no prefix.
	StyleComma
)

var (
	// ErrUnknownUnit is returned for any token outside the recognized set.
	ErrUnknownUnit = errors.New("magnitude: unknown unit (valid: " + validUnits + ")")

	// ErrUnknownStyle is returned for a Style value outside the enum.
	ErrUnknownStyle = errors.New("magnitude: unknown style")

	// ErrNonFinite is returned for NaN or ±Inf inputs when the
	// fail-on-non-finite policy is enabled (see WithFailOnNonFinite).
	ErrNonFinite = errors.New("magnitude: non-finite value")
)
