package strcase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPredicates(t *testing.T) {
	cases := []struct {
		in                  string
		upper, lower, mixed bool
	}{
		{"ABC", true, false, false},
		{"abc", false, true, false},
		{"Abc", false, false, true},
		{"aBc", false, false, true},
		{"ABC-123", true, false, false},
		{"abc 123", false, true, false},
		{"123", false, false, false},
		{"", false, false, false},
		{"!?.,", false, false, false},
		{"ÄÖÜ", true, false, false},
		{"straße", false, true, false},
		{"Straße", false, false, true},
		{"日本語", false, false, false}, // caseless script
		{"日本語A", true, false, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.upper, IsUpper(tc.in), "IsUpper(%q)", tc.in)
		assert.Equal(t, tc.lower, IsLower(tc.in), "IsLower(%q)", tc.in)
		assert.Equal(t, tc.mixed, IsMixed(tc.in), "IsMixed(%q)", tc.in)
	}
}

func TestPredicates_MutuallyExclusive(t *testing.T) {
	for _, s := range []string{"ABC", "abc", "Abc", "123", ""} {
		n := 0
		for _, ok := range []bool{IsUpper(s), IsLower(s), IsMixed(s)} {
			if ok {
				n++
			}
		}
		assert.LessOrEqual(t, n, 1, "at most one predicate may hold for %q", s)
	}
}

func TestEachForms(t *testing.T) {
	in := []string{"ID", "price", "UnitCost", "42"}

	assert.Equal(t, []bool{true, false, false, false}, EachUpper(in))
	assert.Equal(t, []bool{false, true, false, false}, EachLower(in))
	assert.Equal(t, []bool{false, false, true, false}, EachMixed(in))
}

func TestEachForms_Empty(t *testing.T) {
	assert.Empty(t, EachUpper(nil))
	assert.Empty(t, EachLower([]string{}))
	assert.Empty(t, EachMixed(nil))
}
