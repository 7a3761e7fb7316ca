package ui_test

import (
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"accountdeck/internal/auth"
	"accountdeck/internal/crypto"
	"accountdeck/internal/domain"
	"accountdeck/internal/ui"
)

// countingCodec wraps crypto.Codec and counts calls.
type countingCodec struct {
	decodes  atomic.Int32
	decrypts atomic.Int32
}

func (c *countingCodec) DecodeSeed(seed string) ([]byte, error) {
	c.decodes.Add(1)
	return crypto.Codec{}.DecodeSeed(seed)
}

func (c *countingCodec) Decrypt(ciphertext string, key []byte) (string, error) {
	c.decrypts.Add(1)
	return crypto.Codec{}.Decrypt(ciphertext, key)
}

func newAccount(t *testing.T, id, deviceName string) *domain.Account {
	t.Helper()
	seed := crypto.SeedFromMnemonic("legal winner thank year wave sausage worth useful legal winner thank yellow " + id)
	name, err := crypto.EncryptData(deviceName, seed)
	if err != nil {
		t.Fatalf("EncryptData: %v", err)
	}
	return &domain.Account{
		ID:         domain.AccountID(id),
		Seed:       crypto.B64(seed),
		DeviceName: name,
		Profile:    testProfile,
	}
}

func TestResolver_NothingWhenSignedOut(t *testing.T) {
	r := ui.NewResolver(auth.NewState(), nil, nil)
	view, ok, err := r.Render(ui.UserAvatarOptions{WithName: true})
	if err != nil || ok || view != "" {
		t.Fatalf("got (%q, %v, %v), want nothing", view, ok, err)
	}
}

func TestResolver_DecryptsDeviceName(t *testing.T) {
	st := auth.NewState()
	st.Set(newAccount(t, "a1", "My Work Laptop"))
	r := ui.NewResolver(st, nil, nil)

	id, ok, err := r.Resolve()
	if err != nil || !ok {
		t.Fatalf("Resolve: ok=%v err=%v", ok, err)
	}
	if id.Name != "My Work Laptop" || !id.HasKey {
		t.Fatalf("got %+v", id)
	}

	view, _, err := r.Render(ui.UserAvatarOptions{WithName: true})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(ansi.Strip(view), "My Work Laptop") {
		t.Fatalf("name missing from view:\n%s", view)
	}

	plain, _, _ := r.Render(ui.UserAvatarOptions{})
	if strings.Contains(ansi.Strip(plain), "My Work Laptop") {
		t.Fatal("name drawn without WithName")
	}
}

func TestResolver_PlaceholderWithoutSeed(t *testing.T) {
	st := auth.NewState()
	acc := newAccount(t, "a1", "My Work Laptop")
	acc.Seed = ""
	st.Set(acc)
	r := ui.NewResolver(st, nil, nil)

	id, ok, err := r.Resolve()
	if err != nil || !ok {
		t.Fatalf("Resolve: ok=%v err=%v", ok, err)
	}
	if id.Name != ui.NamePlaceholder || id.HasKey {
		t.Fatalf("got %+v, want placeholder without key", id)
	}

	view, ok, err := r.Render(ui.UserAvatarOptions{WithName: true})
	if err != nil || !ok {
		t.Fatalf("Render: ok=%v err=%v", ok, err)
	}
	if view != ui.Avatar(testProfile, ui.AvatarOptions{}) {
		t.Fatal("badge without seed should be drawn without a name")
	}
}

func TestResolver_TruncatesLongNames(t *testing.T) {
	st := auth.NewState()
	st.Set(newAccount(t, "a1", "My Extremely Long Device Name"))
	r := ui.NewResolver(st, nil, nil)

	view, _, err := r.Render(ui.UserAvatarOptions{WithName: true})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	got := ansi.Strip(view)
	if !strings.Contains(got, "My Extremely Long D…") {
		t.Fatalf("truncated name missing:\n%s", got)
	}
	if strings.Contains(got, "Device Name") {
		t.Fatal("full name should not be drawn")
	}
}

func TestTruncateName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"My Work Laptop", "My Work Laptop"},
		{"My Extremely Long Device Name", "My Extremely Long D…"},
		{"abcdefghijklmnopqrs", "abcdefghijklmnopqrs"},
		{"abcdefghijklmnopqrst", "abcdefghijklmnopqrs…"},
		{"ÄÖÜäöüßÄÖÜäöüßÄÖÜäö", "ÄÖÜäöüßÄÖÜäöüßÄÖÜäö"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ui.TruncateName(tt.in); got != tt.want {
			t.Errorf("TruncateName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestResolver_MemoisesSeedPerAccount(t *testing.T) {
	st := auth.NewState()
	codec := &countingCodec{}
	r := ui.NewResolver(st, codec, nil)

	a := newAccount(t, "a1", "Laptop")
	st.Set(a)
	for i := 0; i < 3; i++ {
		if _, _, err := r.Render(ui.UserAvatarOptions{WithName: true}); err != nil {
			t.Fatalf("Render: %v", err)
		}
	}
	if n := codec.decodes.Load(); n != 1 {
		t.Fatalf("seed decoded %d times, want 1", n)
	}
	if n := codec.decrypts.Load(); n != 3 {
		t.Fatalf("name decrypted %d times, want 3", n)
	}

	// Same account published again.
	copyA := *a
	st.Set(&copyA)
	_, _, _ = r.Render(ui.UserAvatarOptions{})
	if n := codec.decodes.Load(); n != 1 {
		t.Fatalf("seed decoded again for the same account (%d)", n)
	}

	st.Set(newAccount(t, "a2", "Phone"))
	id, _, err := r.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if codec.decodes.Load() != 2 || id.Name != "Phone" {
		t.Fatalf("seed not recomputed for a new account: decodes=%d name=%q", codec.decodes.Load(), id.Name)
	}
}

func TestResolver_DecryptErrorPropagates(t *testing.T) {
	st := auth.NewState()
	acc := newAccount(t, "a1", "Laptop")
	other := newAccount(t, "a2", "Phone")
	acc.DeviceName = other.DeviceName
	st.Set(acc)

	_, ok, err := ui.NewResolver(st, nil, nil).Render(ui.UserAvatarOptions{WithName: true})
	if !errors.Is(err, crypto.ErrDecrypt) {
		t.Fatalf("got err %v, want ErrDecrypt", err)
	}
	if ok {
		t.Fatal("ok should be false on error")
	}
}

func TestResolver_MalformedSeed(t *testing.T) {
	st := auth.NewState()
	acc := newAccount(t, "a1", "Laptop")
	acc.Seed = "%%%not-base64"
	st.Set(acc)

	_, _, err := ui.NewResolver(st, nil, nil).Resolve()
	if !errors.Is(err, crypto.ErrMalformedBase64) {
		t.Fatalf("got err %v, want ErrMalformedBase64", err)
	}
}
