package keyedmap

import (
	"log/slog"
	"maps"
	"slices"

	"github.com/roach88/sandbox/internal/ir"
)

// Map stores strings under their reversed form.
type Map struct {
	entries map[string]string
	order   []string // live keys, insertion order

	logger *slog.Logger
}

// Option configures a Map.
type Option func(*Map)

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(m *Map) {
		if l != nil {
			m.logger = l
		}
	}
}

// New creates an empty Map.
func New(opts ...Option) *Map {
	m := &Map{
		entries: make(map[string]string),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Len returns the number of entries.
func (m *Map) Len() int {
	return len(m.entries)
}

// Entries returns a copy of the key/value pairs.
func (m *Map) Entries() map[string]string {
	return maps.Clone(m.entries)
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	return append(make([]string, 0, len(m.order)), m.order...)
}

// ValuesAsc returns all values in ordinal ascending order.
func (m *Map) ValuesAsc() []string {
	values := make([]string, 0, len(m.order))
	for _, k := range m.order {
		values = append(values, m.entries[k])
	}
	slices.SortFunc(values, ir.Compare)
	return values
}

// KeysDesc returns all keys in ordinal descending order.
func (m *Map) KeysDesc() []string {
	keys := m.Keys()
	slices.SortFunc(keys, func(a, b string) int { return ir.Compare(b, a) })
	return keys
}

// SmallestKey returns the ordinally smallest key, or None if m is empty.
func (m *Map) SmallestKey() ir.Str {
	if len(m.order) == 0 {
		return ir.None()
	}
	return ir.Some(slices.MinFunc(m.order, ir.Compare))
}

// LargestValue returns the ordinally largest value, or None if m is empty.
func (m *Map) LargestValue() ir.Str {
	if len(m.order) == 0 {
		return ir.None()
	}
	largest := m.entries[m.order[0]]
	for _, k := range m.order[1:] {
		if v := m.entries[k]; ir.Compare(v, largest) > 0 {
			largest = v
		}
	}
	return ir.Some(largest)
}

// UpperKeys returns the set of keys converted to upper case. Keys that
// differ only by case collapse into one item.
func (m *Map) UpperKeys() Set {
	s := newSet()
	for _, k := range m.order {
		s.items[ir.Upper(k)] = struct{}{}
	}
	return s
}

// DistinctValues returns the number of distinct values.
func (m *Map) DistinctValues() int {
	seen := make(map[string]struct{}, len(m.entries))
	for _, v := range m.entries {
		seen[v] = struct{}{}
	}
	return len(seen)
}

// Add stores v under its reversed form, replacing any value already held
// at that key. An absent v is ignored.
func (m *Map) Add(v ir.Str) {
	s, ok := v.Value()
	if !ok {
		return
	}
	m.put(ir.Reverse(s), s)
}

// RemoveKey deletes the entry stored at key, if any. An absent key is
// ignored.
func (m *Map) RemoveKey(key ir.Str) {
	k, ok := key.Value()
	if !ok {
		return
	}
	m.delete(k)
}

// RemoveValue deletes the entry at the reversed form of v. It does not
// search by value, so an entry moved by UpperAllKeys may be missed.
// An absent v is ignored.
func (m *Map) RemoveValue(v ir.Str) {
	s, ok := v.Value()
	if !ok {
		return
	}
	m.delete(ir.Reverse(s))
}

// Reset replaces the contents with the canonical text of each object (see
// ir.Text), each stored under its reversed form. A nil element is stored as
// "null"; later objects overwrite earlier ones with the same key. A nil
// objects leaves the map empty.
func (m *Map) Reset(objects []any) {
	clear(m.entries)
	m.order = m.order[:0]
	if objects == nil {
		m.logger.Debug("map reset", "source", "absent")
		return
	}
	for _, o := range objects {
		s := ir.Text(o)
		m.put(ir.Reverse(s), s)
	}
	m.logger.Debug("map reset", "objects", len(objects), "entries", len(m.entries))
}

// UpperAllKeys replaces every key with its upper-case form, keeping the
// associated values. When several keys map to the same upper-case key the
// value of the last one in insertion order wins.
func (m *Map) UpperAllKeys() {
	entries := make(map[string]string, len(m.entries))
	order := make([]string, 0, len(m.order))
	for _, k := range m.order {
		uk := ir.Upper(k)
		if _, ok := entries[uk]; !ok {
			order = append(order, uk)
		}
		entries[uk] = m.entries[k]
	}

	lost := len(m.entries) - len(entries)
	m.entries = entries
	m.order = order
	if lost > 0 {
		m.logger.Debug("keys collided while upper-casing", "lost", lost)
	}
}

// ContainsAll reports whether every candidate is among the values. A nil
// candidates is trivially contained; an absent candidate never is.
func (m *Map) ContainsAll(candidates []ir.Str) bool {
	if candidates == nil {
		return true
	}
	values := make(map[string]struct{}, len(m.entries))
	for _, v := range m.entries {
		values[v] = struct{}{}
	}
	for _, c := range candidates {
		s, ok := c.Value()
		if !ok {
			return false
		}
		if _, found := values[s]; !found {
			return false
		}
	}
	return true
}

func (m *Map) put(key, value string) {
	if _, exists := m.entries[key]; !exists {
		m.order = append(m.order, key)
	}
	m.entries[key] = value
}

func (m *Map) delete(key string) {
	if _, exists := m.entries[key]; !exists {
		return
	}
	delete(m.entries, key)
	m.order = slices.DeleteFunc(m.order, func(k string) bool { return k == key })
}
