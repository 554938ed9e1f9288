package ir

import (
	"bytes"
	"encoding/json"
)

// Str is an optional string: either a present value (possibly empty) or
// absent. The zero value is absent.
type Str struct {
	s  string
	ok bool
}

// Some returns a present Str holding s.
func Some(s string) Str {
	return Str{s: s, ok: true}
}

// None returns the absent Str.
func None() Str {
	return Str{}
}

// Strs wraps every element of ss as a present Str.
func Strs(ss ...string) []Str {
	out := make([]Str, len(ss))
	for i, s := range ss {
		out[i] = Some(s)
	}
	return out
}

// IsNone reports whether s is absent.
func (s Str) IsNone() bool {
	return !s.ok
}

// Value returns the content and whether it is present.
func (s Str) Value() (string, bool) {
	return s.s, s.ok
}

// String returns the canonical text of s. Absent renders as "null".
func (s Str) String() string {
	if !s.ok {
		return "null"
	}
	return s.s
}

// Equal reports whether s and o are both absent, or both present with
// identical content (case-sensitive).
func (s Str) Equal(o Str) bool {
	if s.ok != o.ok {
		return false
	}
	return s.s == o.s
}

// MarshalJSON encodes an absent Str as null and a present one as a string.
func (s Str) MarshalJSON() ([]byte, error) {
	if !s.ok {
		return []byte("null"), nil
	}
	return json.Marshal(s.s)
}

// UnmarshalJSON decodes null into an absent Str.
func (s *Str) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*s = None()
		return nil
	}
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*s = Some(v)
	return nil
}
