package crypto

import (
	"encoding/base64"
	"errors"
	"fmt"
)

// ErrMalformedBase64 is returned when seed or ciphertext text is not valid base64.
var ErrMalformedBase64 = errors.New("malformed base64")

// B64 returns standard base64 encoding without newlines.
func B64(b []byte) string { return base64.StdEncoding.EncodeToString(b) }

// Base64ToBuffer decodes standard base64 text into raw bytes.
func Base64ToBuffer(s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBase64, err)
	}
	return b, nil
}
