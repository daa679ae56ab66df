// Package strcase classifies the letter case of strings.
//
// 🚀 Predicates:
//   - IsUpper: all cased letters are upper-case, and at least one exists.
//   - IsLower: all cased letters are lower-case, and at least one exists.
//   - IsMixed: both cases appear.
//
// ✨ Semantics:
//   - Only cased letters count. Digits, punctuation, whitespace and
//     caseless scripts are ignored, so "ABC-123" is upper and "№7" is
//     none of the three.
//   - A string without any cased letter satisfies no predicate; the three
//     answers are then uniformly false.
//   - Classification is Unicode-aware via unicode.IsUpper/IsLower.
//
// ⚙️ Vector forms EachUpper, EachLower and EachMixed map the predicates
// over a []string, handy for labeling data-frame columns in bulk.
package strcase
