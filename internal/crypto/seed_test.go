package crypto_test

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"accountdeck/internal/crypto"
)

func TestSeedFromMnemonic_Deterministic(t *testing.T) {
	a := crypto.SeedFromMnemonic("one two three four five six seven eight nine ten eleven twelve")
	b := crypto.SeedFromMnemonic("  one two three four five six\tseven eight nine ten eleven twelve\n")
	if len(a) != crypto.SeedBytes {
		t.Fatalf("seed length: got %d, want %d", len(a), crypto.SeedBytes)
	}
	if !bytes.Equal(a, b) {
		t.Fatal("whitespace differences should not change the seed")
	}
	c := crypto.SeedFromMnemonic("twelve eleven ten nine eight seven six five four three two one")
	if bytes.Equal(a, c) {
		t.Fatal("different phrases should give different seeds")
	}
}

func TestSeedFromMnemonic_KnownVector(t *testing.T) {
	seed := crypto.SeedFromMnemonic("abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about")
	want := "5eb00bbddcf069084889a8ab9155568165f5c453ccb85e70811aaed6f6da5fc1"
	if got := hex.EncodeToString(seed); got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestSeedFromMnemonic_UnicodeNormalised(t *testing.T) {
	composed := crypto.SeedFromMnemonic("caf\u00e9 one two")
	decomposed := crypto.SeedFromMnemonic("cafe\u0301 one two")
	if !bytes.Equal(composed, decomposed) {
		t.Fatal("composed and decomposed accents should give the same seed")
	}
}

func TestBase64ToBuffer(t *testing.T) {
	seed := crypto.SeedFromMnemonic("alpha beta")
	got, err := crypto.Base64ToBuffer(crypto.B64(seed))
	if err != nil {
		t.Fatalf("Base64ToBuffer: %v", err)
	}
	if !bytes.Equal(got, seed) {
		t.Fatal("decoded bytes differ from input")
	}
	if _, err := crypto.Base64ToBuffer("not base64!"); !errors.Is(err, crypto.ErrMalformedBase64) {
		t.Fatalf("want ErrMalformedBase64, got %v", err)
	}
}

func TestWipe(t *testing.T) {
	a := []byte{1, 2, 3}
	b := []byte{4, 5}
	crypto.Wipe(a, nil, b)
	if !bytes.Equal(a, []byte{0, 0, 0}) || !bytes.Equal(b, []byte{0, 0}) {
		t.Fatalf("buffers not wiped: %v %v", a, b)
	}
}

func TestFingerprint_Length(t *testing.T) {
	if got := crypto.Fingerprint([]byte("x")); len(got) != 20 {
		t.Fatalf("fingerprint %q: want 20 hex chars", got)
	}
}
