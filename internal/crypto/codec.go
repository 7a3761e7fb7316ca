package crypto

import "accountdeck/internal/domain"

// Codec implements domain.DataCodec with Base64ToBuffer and DecryptData.
type Codec struct{}

// DecodeSeed decodes base64 seed text.
func (Codec) DecodeSeed(seed string) ([]byte, error) { return Base64ToBuffer(seed) }

// Decrypt opens ciphertext with key.
func (Codec) Decrypt(ciphertext string, key []byte) (string, error) {
	return DecryptData(ciphertext, key)
}

// Compile-time assertion that Codec implements domain.DataCodec.
var _ domain.DataCodec = Codec{}
