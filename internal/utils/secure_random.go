package utils

import (
	"crypto/rand"
	"math/big"
)

// SecureNumberSource draws uniformly distributed integers from the
// operating system's CSPRNG. It backs receipt-number generation in
// production; tests inject a deterministic source instead.
type SecureNumberSource struct{}

// Intn returns a uniform random int in [0, n). n must be positive.
func (SecureNumberSource) Intn(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand only fails when the OS entropy source is broken;
		// there is no sensible continuation for receipt numbering then.
		panic(err)
	}
	return int(v.Int64())
}
