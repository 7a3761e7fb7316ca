package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
)

const (
	// DataKeyBytes is the required key length for EncryptData/DecryptData.
	DataKeyBytes = 32
	// DataIVBytes is the IV length used by the data format.
	DataIVBytes  = 16
	dataTagBytes = 16
)

var (
	// ErrInvalidKeyLength is returned when the key is not DataKeyBytes long.
	ErrInvalidKeyLength = errors.New("invalid key length")
	// ErrDecrypt is returned when the key is wrong or the ciphertext was modified.
	ErrDecrypt = errors.New("wrong key or corrupted ciphertext")
)

// EncryptData seals plaintext with AES-256-GCM under key.
//
// The result is "iv.ciphertext.tag", each part standard base64, which is the
// format account fields are stored in.
func EncryptData(plaintext string, key []byte) (string, error) {
	aead, err := newDataAEAD(key)
	if err != nil {
		return "", err
	}
	iv := make([]byte, DataIVBytes)
	if _, err := rand.Read(iv); err != nil {
		return "", err
	}
	sealed := aead.Seal(nil, iv, []byte(plaintext), nil)
	ct, tag := sealed[:len(sealed)-dataTagBytes], sealed[len(sealed)-dataTagBytes:]
	return B64(iv) + "." + B64(ct) + "." + B64(tag), nil
}

// DecryptData opens a value produced by EncryptData.
func DecryptData(data string, key []byte) (string, error) {
	aead, err := newDataAEAD(key)
	if err != nil {
		return "", err
	}
	parts := strings.Split(data, ".")
	if len(parts) != 3 {
		return "", fmt.Errorf("%w: want 3 parts, got %d", ErrDecrypt, len(parts))
	}
	iv, err := Base64ToBuffer(parts[0])
	if err != nil {
		return "", err
	}
	ct, err := Base64ToBuffer(parts[1])
	if err != nil {
		return "", err
	}
	tag, err := Base64ToBuffer(parts[2])
	if err != nil {
		return "", err
	}
	if len(iv) != DataIVBytes || len(tag) != dataTagBytes {
		return "", fmt.Errorf("%w: bad iv or tag size", ErrDecrypt)
	}
	pt, err := aead.Open(nil, iv, append(ct, tag...), nil)
	if err != nil {
		return "", ErrDecrypt
	}
	return string(pt), nil
}

func newDataAEAD(key []byte) (cipher.AEAD, error) {
	if len(key) != DataKeyBytes {
		return nil, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidKeyLength, DataKeyBytes, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCMWithNonceSize(block, DataIVBytes)
}
