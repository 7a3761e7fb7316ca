package crypto

import (
	"crypto/sha512"
	"strings"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"
)

const (
	// SeedBytes is the length of the account seed.
	SeedBytes      = DataKeyBytes
	seedIterations = 2048
	seedSalt       = "mnemonic"
)

// SeedFromMnemonic derives the account seed from a recovery phrase.
//
// The phrase is NFKD-normalised and words are joined by single spaces, so
// stray whitespace or a differently composed accent yields the same seed.
// The result is the first SeedBytes of the BIP-39 seed without a passphrase.
func SeedFromMnemonic(mnemonic string) []byte {
	phrase := strings.Join(strings.Fields(norm.NFKD.String(mnemonic)), " ")
	return pbkdf2.Key([]byte(phrase), []byte(seedSalt), seedIterations, SeedBytes, sha512.New)
}
