package ir

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Domain prefixes for content-addressed identity.
// The version suffix leaves room for algorithm migration.
const (
	DomainTree  = "advent2018/tree/v1"
	DomainInput = "advent2018/input/v1"
)

// hashWithDomain computes SHA256(domain + 0x00 + data).
// The null byte keeps the domain/data boundary unambiguous.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// TreeDigest computes the content-addressed identity of a tree snapshot.
// Two trees have the same digest iff their canonical snapshots are identical.
func TreeDigest(snapshot IRValue) (string, error) {
	canonical, err := MarshalCanonical(snapshot)
	if err != nil {
		return "", fmt.Errorf("TreeDigest: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainTree, canonical), nil
}

// InputDigest identifies an integer sequence independently of how it was
// laid out as text (spacing, line breaks).
func InputDigest(ints []int) string {
	canonical, err := MarshalCanonical(Ints(ints))
	if err != nil {
		// Ints only ever holds IRInt values.
		panic(err)
	}
	return hashWithDomain(DomainInput, canonical)
}

// MustTreeDigest is like TreeDigest but panics on error.
// Use only in tests or when the snapshot is known to be valid.
func MustTreeDigest(snapshot IRValue) string {
	d, err := TreeDigest(snapshot)
	if err != nil {
		panic(err)
	}
	return d
}
