package ir

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Domain prefixes for content-addressed identity.
// Version suffix enables future algorithm migration.
const (
	DomainStep     = "sandbox/step/v1"
	DomainSnapshot = "sandbox/snapshot/v1"
)

// hashWithDomain computes SHA-256 hash with domain separation.
// Format: SHA256(domain + 0x00 + data)
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// StepID computes the content-addressed ID of one recorded operation.
// The ID is stable across runs given the same run ID, operation, arguments
// and logical sequence number.
func StepID(runID, op string, args map[string]any, seq int64) (string, error) {
	canonical, err := MarshalCanonical(map[string]any{
		"run_id": runID,
		"op":     op,
		"args":   args,
		"seq":    seq,
	})
	if err != nil {
		return "", fmt.Errorf("StepID: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainStep, canonical), nil
}

// SnapshotHash fingerprints a container snapshot (any canonical value).
func SnapshotHash(v any) (string, error) {
	canonical, err := MarshalCanonical(v)
	if err != nil {
		return "", fmt.Errorf("SnapshotHash: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainSnapshot, canonical), nil
}
