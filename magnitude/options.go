// Package magnitude: functional configuration for the formatter.
//
// This file defines:
//   - Option (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic on nonsensical values — programmer error),
//   - gatherOptions helper (internal) that resolves the effective config.
//
// Design goals:
//   - Deterministic behavior: no global state, no locale lookups.
//   - Safe by construction: panics only on invalid parameters.
//   - Options fields are unexported; public APIs consume ...Option.
package magnitude

// Defaults — single source of truth for zero-option behavior.
const (
	// DefaultDigits is the fractional precision applied when WithDigits is absent.
	DefaultDigits = 0

	// DefaultSeparator is the thousands separator applied when WithSeparator is absent.
	DefaultSeparator = ","

	// DefaultPrefix is the numeric prefix applied when WithPrefix is absent.
	DefaultPrefix = ""
)

const panicDigitsNegative = "magnitude: WithDigits: digits must be >= 0"

// Option mutates the internal options. Safe to apply repeatedly.
type Option func(*options)

// options is the effective configuration after applying Option setters.
type options struct {
	digits        int
	separator     string
	prefix        string
	scientific    bool
	failNonFinite bool
}

// WithDigits sets the maximum number of fractional places.
//
// Values are rendered at this precision and then trailing zeros (and a
// dangling decimal point) are trimmed, so digits is a ceiling, not a pad
// width: 21.784 at five digits stays "21.784".
//
// Panics when digits < 0 (programmer error).
func WithDigits(digits int) Option {
	if digits < 0 {
		panic(panicDigitsNegative)
	}

	return func(o *options) { o.digits = digits }
}

// WithSeparator sets the string inserted between three-digit groups of the
// integer part. The empty string disables grouping.
func WithSeparator(sep string) Option {
	return func(o *options) { o.separator = sep }
}

// WithPrefix sets the string prepended before the number ("$" for
// currency-style output).
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithScientific switches rendering to scientific notation (strconv 'e'
// format at the configured precision). Grouping does not apply; prefix and
// unit suffix still do.
func WithScientific() Option {
	return func(o *options) { o.scientific = true }
}

// WithFailOnNonFinite makes Format return ErrNonFinite on NaN or ±Inf input.
// Without it, non-finite values render verbatim ("NaN", "+Inf", "-Inf")
// with no prefix, separator or suffix applied.
func WithFailOnNonFinite() Option {
	return func(o *options) { o.failNonFinite = true }
}

// gatherOptions resolves defaults and applies setters in order.
func gatherOptions(opts ...Option) options {
	o := options{
		digits:    DefaultDigits,
		separator: DefaultSeparator,
		prefix:    DefaultPrefix,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// styleOptions maps a Style preset onto its fixed (separator, prefix) pair.
func styleOptions(s Style) ([]Option, error) {
	switch s {
	case StyleIdentity:
		return []Option{WithSeparator(""), WithPrefix("")}, nil
	case StyleDollar:
		return []Option{WithSeparator(""), WithPrefix("$")}, nil
	case StyleComma:
		return []Option{WithSeparator(","), WithPrefix("")}, nil
	default:
		return nil, ErrUnknownStyle
	}
}
