// Package keyedmap provides Map, a string-to-string mapping whose keys are
// derived from their values: every mutator stores a value under the
// reverse of that value ("abc" lives at key "cba").
//
// The derived-key rule is a soft contract. It holds after Add and Reset,
// and RemoveValue relies on it to find entries. UpperAllKeys deliberately
// breaks it by upper-casing keys in place; after that, RemoveValue only
// finds entries whose reversed value was already upper case.
//
// Map iterates in insertion order of its live keys. That order decides
// which entry survives when UpperAllKeys folds two keys onto one: the later
// key's value wins and keeps the earlier key's position.
//
// Map is not safe for concurrent use.
package keyedmap
