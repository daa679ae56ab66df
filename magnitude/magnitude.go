package magnitude

import (
	"math"
	"strconv"
	"strings"
)

// Format renders every value scaled to the given unit.
//
// Per element the output is
//
//	prefix + group(round(v/divisor, digits), separator) + suffix
//
// where divisor and suffix come from the unit token, and prefix, digits and
// separator from the options (see options.go for defaults). Rounding is
// strconv.FormatFloat rounding (round-half-to-even). Elements are formatted
// independently; output order and length always match the input.
//
// Inputs:
//   - values: any numeric vector, including empty; NaN/±Inf handled per the
//     non-finite policy (verbatim by default, ErrNonFinite under
//     WithFailOnNonFinite).
//   - unit: one of the ten Unit constants.
//
// Returns:
//   - []string: len(out) == len(values), same order; empty non-nil slice for
//     empty input.
//
// Errors:
//   - ErrUnknownUnit for an unrecognized token.
//   - ErrNonFinite under the fail-on-non-finite policy.
//
// Complexity: O(n · d) where d is the digit count of the scaled values.
func Format(values []float64, unit Unit, opts ...Option) ([]string, error) {
	spec, ok := units[unit]
	if !ok {
		return nil, ErrUnknownUnit
	}
	o := gatherOptions(opts...)

	out := make([]string, len(values))
	var err error
	for i, v := range values {
		if out[i], err = formatOne(v, spec, o); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// FormatStyled is Format with a Style preset applied first. Explicit opts
// are applied after the preset and may override it, e.g.
// FormatStyled(v, Thousand, StyleDollar, WithSeparator(",")) yields
// comma-grouped dollar figures.
//
// Errors: ErrUnknownStyle, plus everything Format returns.
func FormatStyled(values []float64, unit Unit, style Style, opts ...Option) ([]string, error) {
	preset, err := styleOptions(style)
	if err != nil {
		return nil, err
	}

	return Format(values, unit, append(preset, opts...)...)
}

// Formatter returns a single-value closure bound to the given unit and
// options, for use as an axis-label callback (see hplot). Validation happens
// once, here; the closure itself never fails, so the fail-on-non-finite
// policy is ignored and non-finite values render verbatim.
//
// Errors: ErrUnknownUnit.
func Formatter(unit Unit, opts ...Option) (func(float64) string, error) {
	spec, ok := units[unit]
	if !ok {
		return nil, ErrUnknownUnit
	}
	o := gatherOptions(opts...)
	o.failNonFinite = false

	return func(v float64) string {
		s, _ := formatOne(v, spec, o)

		return s
	}, nil
}

// formatOne renders a single value under a resolved configuration.
func formatOne(v float64, spec unitSpec, o options) (string, error) {
	// Non-finite values cannot be scaled; policy decides between verbatim
	// passthrough and a hard error.
	if math.IsNaN(v) || math.IsInf(v, 0) {
		if o.failNonFinite {
			return "", ErrNonFinite
		}

		return strconv.FormatFloat(v, 'g', -1, 64), nil
	}

	scaled := v / spec.divisor

	var body string
	if o.scientific {
		body = strconv.FormatFloat(scaled, 'e', o.digits, 64)
	} else {
		body = strconv.FormatFloat(scaled, 'f', o.digits, 64)
		if o.digits > 0 {
			body = trimFraction(body)
		}
		body = groupDigits(body, o.separator)
	}

	return o.prefix + body + spec.suffix, nil
}

// trimFraction drops trailing zeros and a dangling decimal point, so digits
// acts as a precision ceiling rather than a pad width.
func trimFraction(s string) string {
	if !strings.ContainsRune(s, '.') {
		return s
	}
	s = strings.TrimRight(s, "0")

	return strings.TrimSuffix(s, ".")
}

// groupDigits inserts sep between three-digit groups of the integer part,
// scanning left from the decimal point. The sign and fractional part pass
// through untouched. Empty sep is a no-op.
func groupDigits(s, sep string) string {
	if sep == "" {
		return s
	}

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	if len(intPart) > 3 {
		var b strings.Builder
		b.Grow(len(intPart) + (len(intPart)/3)*len(sep))
		lead := len(intPart) % 3
		if lead > 0 {
			b.WriteString(intPart[:lead])
		}
		for i := lead; i < len(intPart); i += 3 {
			if b.Len() > 0 {
				b.WriteString(sep)
			}
			b.WriteString(intPart[i : i+3])
		}
		intPart = b.String()
	}

	if neg {
		return "-" + intPart + fracPart
	}

	return intPart + fracPart
}
