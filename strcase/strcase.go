package strcase

import "unicode"

// caseProfile reports whether s contains at least one upper-case and at
// least one lower-case letter. Uncased runes (digits, punctuation, spaces,
// caseless scripts) never contribute.
func caseProfile(s string) (hasUpper, hasLower bool) {
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		}
		if hasUpper && hasLower {
			return // both seen, scanning further cannot change the answer
		}
	}

	return hasUpper, hasLower
}

// IsUpper reports whether every cased letter in s is upper-case.
// A string with no cased letters is neither upper, lower, nor mixed.
func IsUpper(s string) bool {
	hasUpper, hasLower := caseProfile(s)

	return hasUpper && !hasLower
}

// IsLower reports whether every cased letter in s is lower-case.
// A string with no cased letters is neither upper, lower, nor mixed.
func IsLower(s string) bool {
	hasUpper, hasLower := caseProfile(s)

	return hasLower && !hasUpper
}

// IsMixed reports whether s contains both upper- and lower-case letters.
func IsMixed(s string) bool {
	hasUpper, hasLower := caseProfile(s)

	return hasUpper && hasLower
}

// EachUpper applies IsUpper to every element of ss.
func EachUpper(ss []string) []bool {
	return each(ss, IsUpper)
}

// EachLower applies IsLower to every element of ss.
func EachLower(ss []string) []bool {
	return each(ss, IsLower)
}

// EachMixed applies IsMixed to every element of ss.
func EachMixed(ss []string) []bool {
	return each(ss, IsMixed)
}

func each(ss []string, pred func(string) bool) []bool {
	out := make([]bool, len(ss))
	for i, s := range ss {
		out[i] = pred(s)
	}

	return out
}
