package sequence

import (
	"cmp"
	"log/slog"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/roach88/sandbox/internal/ir"
)

// Store owns one ordered sequence of integers and one of optional strings.
// Both start empty and are mutated in place.
type Store struct {
	ints []int
	strs []ir.Str

	rng    *rand.Rand
	logger *slog.Logger
}

// New creates a Store with both sequences empty.
func New(opts ...Option) *Store {
	s := &Store{
		ints:   []int{},
		strs:   []ir.Str{},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return s
}

// Ints returns a copy of the integer sequence. The copy is never nil.
func (s *Store) Ints() []int {
	return append(make([]int, 0, len(s.ints)), s.ints...)
}

// Strings returns a copy of the string sequence.
func (s *Store) Strings() []ir.Str {
	return append(make([]ir.Str, 0, len(s.strs)), s.strs...)
}

// IntArray returns a fixed-size snapshot of the integer sequence whose
// length equals IntCount.
func (s *Store) IntArray() []int {
	return slices.Clone(s.ints)
}

// IntCount returns the number of integers.
func (s *Store) IntCount() int {
	return len(s.ints)
}

// StringCount returns the number of strings, absent ones included.
func (s *Store) StringCount() int {
	return len(s.strs)
}

// AddInt appends v.
func (s *Store) AddInt(v int) {
	s.ints = append(s.ints, v)
}

// AddString appends str, which may be absent.
func (s *Store) AddString(str ir.Str) {
	s.strs = append(s.strs, str)
}

// RemoveInt removes every occurrence of v.
func (s *Store) RemoveInt(v int) {
	before := len(s.ints)
	s.ints = slices.DeleteFunc(s.ints, func(x int) bool { return x == v })
	s.logger.Debug("integers removed", "value", v, "removed", before-len(s.ints))
}

// RemoveString removes every element equal to str. Two absent strings are
// equal; present strings compare by exact content.
func (s *Store) RemoveString(str ir.Str) {
	before := len(s.strs)
	s.strs = slices.DeleteFunc(s.strs, str.Equal)
	s.logger.Debug("strings removed", "value", str.String(), "absent", str.IsNone(), "removed", before-len(s.strs))
}

// InsertInt inserts v at pos. Negative positions insert at the front and
// positions past the end append.
func (s *Store) InsertInt(v, pos int) {
	pos = max(0, min(pos, len(s.ints)))
	s.ints = slices.Insert(s.ints, pos, v)
}

// RemoveIntAt removes the element at pos. Out-of-range positions are ignored.
func (s *Store) RemoveIntAt(pos int) {
	if pos < 0 || pos >= len(s.ints) {
		return
	}
	s.ints = slices.Delete(s.ints, pos, pos+1)
}

// ResetInts replaces the integer sequence with the integer part of each of
// values, truncated toward zero. A nil values leaves the sequence empty.
//
// Conversion saturates at the 32-bit integer range and maps NaN to 0.
func (s *Store) ResetInts(values []float64) {
	s.ints = s.ints[:0]
	if values == nil {
		s.logger.Debug("integers reset", "source", "absent")
		return
	}
	for _, f := range values {
		s.ints = append(s.ints, truncate(f))
	}
	s.logger.Debug("integers reset", "count", len(s.ints))
}

// truncate converts f the way a narrowing float-to-int32 cast does.
func truncate(f float64) int {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	}
	return int(f)
}

// ResetStrings replaces the string sequence with the canonical text of each
// object (see ir.Text). A nil element becomes the literal "null"; a nil
// objects leaves the sequence empty.
func (s *Store) ResetStrings(objects []any) {
	s.strs = s.strs[:0]
	if objects == nil {
		s.logger.Debug("strings reset", "source", "absent")
		return
	}
	for _, o := range objects {
		s.strs = append(s.strs, ir.Some(ir.Text(o)))
	}
	s.logger.Debug("strings reset", "count", len(s.strs))
}

// Absolutize replaces every negative integer with its additive inverse.
// math.MinInt has no positive counterpart and negates to itself.
func (s *Store) Absolutize() {
	for i, v := range s.ints {
		if v < 0 {
			s.ints[i] = -v
		}
	}
}

// SortIntsDesc sorts the integers from largest to smallest.
func (s *Store) SortIntsDesc() {
	slices.SortStableFunc(s.ints, func(a, b int) int { return cmp.Compare(b, a) })
}

// SortStringsAsc sorts the strings in ordinal ascending order with absent
// strings first. Ties keep their relative order.
func (s *Store) SortStringsAsc() {
	slices.SortStableFunc(s.strs, ir.CompareStr)
}

// CountInt returns how many integers equal v.
func (s *Store) CountInt(v int) int {
	n := 0
	for _, x := range s.ints {
		if x == v {
			n++
		}
	}
	return n
}

// CountStringFold returns how many strings equal str ignoring case.
// An absent str matches only absent elements.
func (s *Store) CountStringFold(str ir.Str) int {
	n := 0
	for _, x := range s.strs {
		if ir.EqualFoldStr(x, str) {
			n++
		}
	}
	return n
}

// CountDuplicatedInts returns the number of distinct values that occur at
// least twice. For [1 1 2 3 3 3] it is 2.
func (s *Store) CountDuplicatedInts() int {
	freq := make(map[int]int, len(s.ints))
	for _, v := range s.ints {
		freq[v]++
	}
	dups := 0
	for _, n := range freq {
		if n >= 2 {
			dups++
		}
	}
	return dups
}

// EqualInts reports whether other holds the same integers in the same
// order. A nil other never matches; an empty non-nil one matches an empty
// sequence.
func (s *Store) EqualInts(other []int) bool {
	if other == nil {
		return false
	}
	return slices.Equal(s.ints, other)
}

// Generate replaces the integer sequence with count values drawn uniformly
// from [lo, hi]. The bounds are swapped when lo > hi; count <= 0 leaves the
// sequence empty.
func (s *Store) Generate(count, lo, hi int) {
	s.ints = s.ints[:0]
	if count <= 0 {
		return
	}
	if lo > hi {
		lo, hi = hi, lo
	}

	span := uint64(hi) - uint64(lo) + 1
	for i := 0; i < count; i++ {
		var off uint64
		if span == 0 {
			// [lo, hi] covers every uint64 offset.
			off = s.rng.Uint64()
		} else {
			off = s.rng.Uint64N(span)
		}
		s.ints = append(s.ints, lo+int(off))
	}
	s.logger.Debug("integers generated", "count", count, "min", lo, "max", hi)
}
