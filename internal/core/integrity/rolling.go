package integrity

import (
	"fmt"

	"github.com/zapfwerk/deckelkasse/internal/core/domain"
)

// RollingHasher is the fallback integrity provider: a deterministic
// FNV-1a style rolling hash over the canonical encoding, run in four
// lanes with distinct offset bases and concatenated to 64 hex characters.
//
// It is NOT tamper-resistant. A change to a hashed field changes the
// output detectably, but an adversary can forge a matching fingerprint.
// It exists only so receipt issuance keeps working where the
// cryptographic primitive is unavailable.
type RollingHasher struct{}

var _ Hasher = RollingHasher{}

const rollingPrime = 1099511628211

var rollingBases = [4]uint64{
	14695981039346656037, // FNV-1a offset basis
	0x9e3779b97f4a7c15,
	0xc2b2ae3d27d4eb4f,
	0x165667b19e3779f9,
}

func (RollingHasher) Algorithm() domain.HashAlgorithm { return domain.HashRolling }

func (RollingHasher) Fingerprint(r domain.DraftReceipt) string {
	encoded := CanonicalEncoding(r)
	var lanes [4]uint64
	for i, base := range rollingBases {
		h := base
		for _, b := range encoded {
			h ^= uint64(b)
			h *= rollingPrime
		}
		// mix the lane index so lanes differ even for empty input
		h ^= uint64(i+1) * 0x9e3779b97f4a7c15
		lanes[i] = h
	}
	return fmt.Sprintf("%016x%016x%016x%016x", lanes[0], lanes[1], lanes[2], lanes[3])
}

func (h RollingHasher) Verify(r domain.SignedReceipt) bool {
	return h.Fingerprint(r.DraftReceipt) == r.Hash
}
