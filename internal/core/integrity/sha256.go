package integrity

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"github.com/zapfwerk/deckelkasse/internal/core/domain"
)

// SHA256Hasher is the preferred, cryptographic integrity provider.
type SHA256Hasher struct{}

var _ Hasher = SHA256Hasher{}

func (SHA256Hasher) Algorithm() domain.HashAlgorithm { return domain.HashSHA256 }

func (SHA256Hasher) Fingerprint(r domain.DraftReceipt) string {
	digest := sha256.Sum256(CanonicalEncoding(r))
	return hex.EncodeToString(digest[:])
}

func (h SHA256Hasher) Verify(r domain.SignedReceipt) bool {
	want := h.Fingerprint(r.DraftReceipt)
	return subtle.ConstantTimeCompare([]byte(want), []byte(r.Hash)) == 1
}
