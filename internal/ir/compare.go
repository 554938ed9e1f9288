package ir

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Compare orders strings by UTF-16 code units.
//
// For text inside the Basic Multilingual Plane this is plain code-point
// order. Supplementary characters (encoded as surrogates 0xD800-0xDFFF)
// sort before U+E000-U+FFFF, which byte-wise UTF-8 comparison gets wrong.
// Invalid UTF-8 decodes to U+FFFD; strings equal after decoding fall back
// to byte order so distinct strings never compare equal.
func Compare(a, b string) int {
	if isASCII(a) && isASCII(b) {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	}

	a16 := utf16.Encode([]rune(a))
	b16 := utf16.Encode([]rune(b))

	n := min(len(a16), len(b16))
	for i := 0; i < n; i++ {
		if a16[i] != b16[i] {
			if a16[i] < b16[i] {
				return -1
			}
			return 1
		}
	}

	switch {
	case len(a16) < len(b16):
		return -1
	case len(a16) > len(b16):
		return 1
	}
	return strings.Compare(a, b)
}

// CompareStr orders optional strings with absent values first.
func CompareStr(a, b Str) int {
	switch {
	case a.IsNone() && b.IsNone():
		return 0
	case a.IsNone():
		return -1
	case b.IsNone():
		return 1
	}
	return Compare(a.s, b.s)
}

// EqualFold reports whether a and b are equal under simple Unicode case
// folding, rune by rune. Folds that change length (ß to "ss") do not
// apply. The comparison is locale independent.
func EqualFold(a, b string) bool {
	return strings.EqualFold(a, b)
}

// EqualFoldStr is EqualFold for optional strings. Absent matches only absent.
func EqualFoldStr(a, b Str) bool {
	if a.IsNone() || b.IsNone() {
		return a.IsNone() && b.IsNone()
	}
	return EqualFold(a.s, b.s)
}

// Upper maps s to upper case using the root locale.
func Upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// Reverse returns s with its code points in reverse order.
// Invalid UTF-8 bytes are reversed as single units.
func Reverse(s string) string {
	if isASCII(s) {
		b := []byte(s)
		for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
			b[i], b[j] = b[j], b[i]
		}
		return string(b)
	}

	out := make([]byte, len(s))
	w := len(s)
	for i := 0; i < len(s); {
		_, size := utf8.DecodeRuneInString(s[i:])
		w -= size
		copy(out[w:], s[i:i+size])
		i += size
	}
	return string(out)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
