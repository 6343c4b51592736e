package integrity

import (
	"crypto/sha256"
	"log/slog"

	"github.com/zapfwerk/deckelkasse/internal/core/domain"
)

// Hasher fingerprints the canonical fields of a receipt. Both
// implementations are pure functions of the canonical encoding: identical
// input yields identical output.
type Hasher interface {
	// Algorithm identifies the provider on the receipts it signs.
	Algorithm() domain.HashAlgorithm
	// Fingerprint computes the 64-character lowercase hex digest of the
	// draft's canonical fields.
	Fingerprint(r domain.DraftReceipt) string
	// Verify recomputes the fingerprint from the receipt's current fields
	// and compares it to the stored hash. Used for tamper detection only,
	// never for generation.
	Verify(r domain.SignedReceipt) bool
}

// SelectHasher picks the hash provider once at process start. mode is the
// configured provider name: "sha256", "rolling", or "auto" (prefer the
// cryptographic digest). The selection is injected into the pipeline so
// business logic never queries the environment itself.
//
// Selecting the rolling provider is a degraded-mode continuation, not a
// failure, but it is logged so operators know receipts are being
// fingerprinted non-cryptographically.
func SelectHasher(mode string, logger *slog.Logger) Hasher {
	switch mode {
	case "rolling":
		logger.Warn("Integrity hashing degraded: rolling hash provider selected, receipts are not tamper-resistant",
			slog.String("provider", mode))
		return RollingHasher{}
	case "sha256", "auto", "":
		if sha256Available() {
			return SHA256Hasher{}
		}
		logger.Warn("Integrity hashing degraded: SHA-256 unavailable, falling back to rolling hash",
			slog.String("provider", mode))
		return RollingHasher{}
	default:
		logger.Warn("Unknown hash provider, defaulting to SHA-256", slog.String("provider", mode))
		return SHA256Hasher{}
	}
}

// sha256Available probes the digest primitive once. The Go runtime always
// ships SHA-256, but the probe keeps the capability check explicit and in
// one place should the binary ever run under a restricted crypto policy.
func sha256Available() bool {
	defer func() { _ = recover() }()
	_ = sha256.Sum256(nil)
	return true
}
