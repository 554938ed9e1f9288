// Package ir provides the value layer shared by the sandbox containers.
//
// This package imports nothing internal. The sequence and keyedmap packages
// build on it for absent-aware strings, canonical text conversion and
// locale-independent string comparison; the harness uses its canonical JSON
// and step hashing for deterministic traces.
//
// Key design constraints:
//   - Absent strings are the Str sum type, never a Go nil pointer
//   - All ordering is ordinal (UTF-16 code units), never locale collation
//   - Case mapping uses the root locale (language.Und)
//   - Canonical JSON keys use snake_case and RFC 8785 ordering
package ir
