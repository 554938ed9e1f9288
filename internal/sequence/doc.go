// Package sequence provides Store, an in-memory pair of ordered sequences:
// one of integers and one of optional strings.
//
// The two sequences are independent. Every operation is total: absent
// inputs, empty sequences, out-of-range positions and reversed bounds are
// handled by a defined fallback (no-op, clamp or empty result) instead of an
// error. Snapshots returned by Store are independent copies.
//
// Ordering and case rules:
//   - SortStringsAsc uses ordinal UTF-16 order (ir.Compare); absent strings first
//   - CountStringFold uses locale-independent case folding (ir.EqualFold)
//   - RemoveString and CountStringFold treat two absent strings as equal
//
// Store is not safe for concurrent use; callers serialise access.
package sequence
