package crypto

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint returns the first 10 bytes of the SHA-256 of b as hex. Logs
// carry fingerprints of seeds, never the seeds.
func Fingerprint(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:10])
}
