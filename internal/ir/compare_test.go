package ir

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b     string
		expected int
	}{
		{"a", "b", -1},
		{"b", "a", 1},
		{"a", "a", 0},
		{"aa", "a", 1},
		{"a", "aa", -1},
		{"A", "a", -1},
		{"", "", 0},
		{"", "a", -1},
		{"é", "f", 1},
		{"\U00010000", "\uE000", -1},
		{"a\xff", "a\xfe", 1},
		{"a\xfe", "a\xff", -1},
		{"a\xff", "a\uFFFD", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_vs_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.expected, Compare(tt.a, tt.b))
		})
	}
}

func TestCompareStrAbsentFirst(t *testing.T) {
	values := []Str{Some("b"), None(), Some("a"), None()}
	slices.SortStableFunc(values, CompareStr)

	assert.True(t, values[0].IsNone())
	assert.True(t, values[1].IsNone())
	assert.Equal(t, "a", values[2].String())
	assert.Equal(t, "b", values[3].String())
}

func TestEqualFold(t *testing.T) {
	assert.True(t, EqualFold("Hello", "hELLO"))
	assert.True(t, EqualFold("", ""))
	assert.True(t, EqualFold("ÉCOLE", "école"))
	assert.False(t, EqualFold("abc", "abd"))
	assert.False(t, EqualFold("abc", "abcd"))
	assert.True(t, EqualFold("ß", "ẞ"))
	assert.False(t, EqualFold("ß", "SS"))
	assert.False(t, EqualFold("ß", "ss"))
	assert.True(t, EqualFold("Σ", "ς"))
}

func TestEqualFoldStr(t *testing.T) {
	assert.True(t, EqualFoldStr(None(), None()))
	assert.False(t, EqualFoldStr(None(), Some("null")))
	assert.False(t, EqualFoldStr(Some(""), None()))
	assert.True(t, EqualFoldStr(Some("AbC"), Some("aBc")))
}

func TestUpper(t *testing.T) {
	assert.Equal(t, "ABC", Upper("abc"))
	assert.Equal(t, "ÉCOLE", Upper("école"))
	assert.Equal(t, "STRASSE", Upper("straße"))
	// root locale: no Turkish dotted capital I
	assert.Equal(t, "I", Upper("i"))
}

func TestReverse(t *testing.T) {
	tests := []struct {
		input, expected string
	}{
		{"", ""},
		{"a", "a"},
		{"abc", "cba"},
		{"abba", "abba"},
		{"héllo", "olléh"},
		{"a\U0001F600b", "b\U0001F600a"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Reverse(tt.input))
			assert.Equal(t, tt.input, Reverse(Reverse(tt.input)))
		})
	}
}
