// Package magnitude compresses numeric vectors into short, human-readable
// strings scaled to a chosen order of magnitude.
//
// 🚀 What is magnitude?
//
//	Large raw numbers are unreadable on axes, in tables, and in logs.
//	magnitude divides each value by a named scale and composes a compact
//	label:
//	  • 875003780 → "875,004K"  (Thousand, default comma grouping)
//	  • 1000      → "$1K"       (Thousand, "$" prefix)
//	  • 21784     → "21.784K"   (Thousand, five-digit precision)
//
// ✨ Key features:
//   - ten unit tokens: K/M/B/T/H append the unit letter, k/m/b/t/h scale silently
//   - configurable precision, thousands separator, prefix, scientific mode
//   - style presets (StyleDollar / StyleComma / StyleIdentity) as plain enums
//   - Formatter() adapter: a bound closure for chart axis-label hooks
//   - strict vocabulary: unknown tokens fail with ErrUnknownUnit
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlstat/magnitude"
//
//	labels, err := magnitude.Format(
//	  []float64{875003780, 1200},
//	  magnitude.Thousand,
//	  magnitude.WithDigits(0),
//	)
//	// labels == []string{"875,004K", "1K"}
//
// Output length and order always match the input; each element is formatted
// independently, so there is no cross-element state to reason about.
//
// See examples in example_test.go.
package magnitude
