package crypto_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"accountdeck/internal/crypto"
)

func testKey(b byte) []byte { return bytes.Repeat([]byte{b}, crypto.DataKeyBytes) }

func TestEncryptDecryptData_RoundTrip(t *testing.T) {
	key := testKey(0x42)

	ct, err := crypto.EncryptData("My Work Laptop", key)
	if err != nil {
		t.Fatalf("EncryptData: %v", err)
	}
	if got := strings.Count(ct, "."); got != 2 {
		t.Fatalf("want 3 dot-separated parts, got %q", ct)
	}

	pt, err := crypto.DecryptData(ct, key)
	if err != nil {
		t.Fatalf("DecryptData: %v", err)
	}
	if pt != "My Work Laptop" {
		t.Fatalf("got %q, want %q", pt, "My Work Laptop")
	}
}

func TestEncryptData_FreshIVEachCall(t *testing.T) {
	key := testKey(0x01)
	a, err := crypto.EncryptData("same", key)
	if err != nil {
		t.Fatalf("EncryptData: %v", err)
	}
	b, err := crypto.EncryptData("same", key)
	if err != nil {
		t.Fatalf("EncryptData: %v", err)
	}
	if a == b {
		t.Fatal("two encryptions of the same plaintext should differ")
	}
}

func TestDecryptData_WrongKey_Fails(t *testing.T) {
	ct, err := crypto.EncryptData("device", testKey(0x01))
	if err != nil {
		t.Fatalf("EncryptData: %v", err)
	}
	if _, err := crypto.DecryptData(ct, testKey(0x02)); !errors.Is(err, crypto.ErrDecrypt) {
		t.Fatalf("want ErrDecrypt, got %v", err)
	}
}

func TestDecryptData_TamperedTag_Fails(t *testing.T) {
	key := testKey(0x07)
	ct, err := crypto.EncryptData("device", key)
	if err != nil {
		t.Fatalf("EncryptData: %v", err)
	}
	parts := strings.Split(ct, ".")
	tag, err := crypto.Base64ToBuffer(parts[2])
	if err != nil {
		t.Fatalf("Base64ToBuffer: %v", err)
	}
	tag[0] ^= 0xff
	parts[2] = crypto.B64(tag)

	if _, err := crypto.DecryptData(strings.Join(parts, "."), key); !errors.Is(err, crypto.ErrDecrypt) {
		t.Fatalf("want ErrDecrypt, got %v", err)
	}
}

func TestDecryptData_BadInput(t *testing.T) {
	key := testKey(0x09)
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"no separators", "abc", crypto.ErrDecrypt},
		{"bad base64", "!!.!!.!!", crypto.ErrMalformedBase64},
		{"short iv", crypto.B64([]byte{1, 2}) + ".AA==." + crypto.B64(make([]byte, 16)), crypto.ErrDecrypt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := crypto.DecryptData(tt.in, key); !errors.Is(err, tt.want) {
				t.Fatalf("want %v, got %v", tt.want, err)
			}
		})
	}
}

func TestData_InvalidKeyLength(t *testing.T) {
	if _, err := crypto.EncryptData("x", []byte("short")); !errors.Is(err, crypto.ErrInvalidKeyLength) {
		t.Fatalf("EncryptData: want ErrInvalidKeyLength, got %v", err)
	}
	if _, err := crypto.DecryptData("a.b.c", make([]byte, 16)); !errors.Is(err, crypto.ErrInvalidKeyLength) {
		t.Fatalf("DecryptData: want ErrInvalidKeyLength, got %v", err)
	}
}
