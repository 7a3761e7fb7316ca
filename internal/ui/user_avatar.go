package ui

import (
	"log/slog"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"accountdeck/internal/crypto"
	"accountdeck/internal/domain"
	"accountdeck/internal/observability"
)

const (
	// NamePlaceholder is shown instead of the device name when it cannot be
	// decrypted because the account has no seed.
	NamePlaceholder = "..."
	// maxNameRunes is the length at which names get shortened.
	maxNameRunes = 20
)

// TruncateName shortens names of maxNameRunes or more characters to the first
// maxNameRunes-1 characters followed by an ellipsis.
func TruncateName(name string) string {
	r := []rune(name)
	if len(r) >= maxNameRunes {
		return string(r[:maxNameRunes-1]) + "…"
	}
	return name
}

// UserAvatarOptions tweak how the signed-in user's badge is drawn.
type UserAvatarOptions struct {
	AvatarOptions
	// WithName draws the device name beside the badge.
	WithName bool
}

// Identity is what the resolver knows about the signed-in account.
type Identity struct {
	Account *domain.Account
	// Name is the decrypted device name, or NamePlaceholder.
	Name string
	// HasKey reports whether key material was available.
	HasKey bool
}

// memoKey identifies the account a decoded seed belongs to.
type memoKey struct {
	id   domain.AccountID
	seed string
}

// Resolver renders the signed-in user's badge.
//
// The decoded seed is cached per account and recomputed only when a
// different account (or a different seed for the same id) is signed in.
// The device name itself is decrypted again on every call.
type Resolver struct {
	auth   domain.AuthState
	codec  domain.DataCodec
	logger *slog.Logger

	mu        sync.Mutex
	cachedFor memoKey
	cached    []byte
	hasCache  bool
}

// NewResolver returns a Resolver reading from auth. A nil codec uses
// crypto.Codec; a nil logger discards output.
func NewResolver(auth domain.AuthState, codec domain.DataCodec, logger *slog.Logger) *Resolver {
	if codec == nil {
		codec = crypto.Codec{}
	}
	return &Resolver{
		auth:   auth,
		codec:  codec,
		logger: observability.Component(logger, "avatar"),
	}
}

// Resolve reads the current account and decrypts its device name.
// ok is false when nobody is signed in. Decoding and decryption errors are
// returned as they are.
func (r *Resolver) Resolve() (id Identity, ok bool, err error) {
	acc := r.auth.Current()
	if acc == nil {
		return Identity{}, false, nil
	}

	key, err := r.seedKey(acc)
	if err != nil {
		return Identity{}, false, err
	}

	id = Identity{Account: acc, Name: NamePlaceholder, HasKey: key != nil}
	if key != nil && acc.DeviceName != "" {
		name, err := r.codec.Decrypt(acc.DeviceName, key)
		if err != nil {
			return Identity{}, false, err
		}
		id.Name = name
	}
	return id, true, nil
}

// Render draws the signed-in user's badge, and the device name when
// requested and decryptable. ok is false when nobody is signed in, in which
// case nothing should be drawn.
func (r *Resolver) Render(opts UserAvatarOptions) (view string, ok bool, err error) {
	id, ok, err := r.Resolve()
	if err != nil || !ok {
		return "", ok, err
	}

	badge := Avatar(id.Account.Profile, opts.AvatarOptions)
	if !opts.WithName || !id.HasKey {
		return badge, true, nil
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, badge, " ", TruncateName(id.Name)), true, nil
}

// seedKey returns the decoded seed of acc, or nil when it has none.
func (r *Resolver) seedKey(acc *domain.Account) ([]byte, error) {
	if !acc.HasSeed() {
		return nil, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	k := memoKey{id: acc.ID, seed: acc.Seed}
	if r.hasCache && r.cachedFor == k {
		return r.cached, nil
	}

	key, err := r.codec.DecodeSeed(acc.Seed)
	if err != nil {
		return nil, err
	}
	r.cachedFor, r.cached, r.hasCache = k, key, true
	r.logger.Debug("seed decoded", slog.String("account", acc.ID.String()))
	return key, nil
}
