package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"accountdeck/internal/crypto"
	"accountdeck/internal/domain"
	"accountdeck/internal/observability"
)

const (
	// minPassphraseLength defines the minimum number of characters required for a passphrase.
	minPassphraseLength = 12
	// minMnemonicWords is the shortest accepted recovery phrase.
	minMnemonicWords = 12
)

var (
	// ErrWeakPassphrase is returned when the passphrase fails the strength policy.
	ErrWeakPassphrase = fmt.Errorf(
		"passphrase is too weak (must be at least %d characters and include upper, lower, "+
			"number, and symbol)",
		minPassphraseLength,
	)
	// ErrWeakMnemonic is returned when the recovery phrase is too short.
	ErrWeakMnemonic = fmt.Errorf("recovery phrase must have at least %d words", minMnemonicWords)
	// ErrDeviceNameRequired is returned when no device name is given.
	ErrDeviceNameRequired = errors.New("device name required")
)

// profileColors is the palette random profiles are drawn from.
var profileColors = []string{
	"#2E65CF", "#2ECF89", "#CF2E2E", "#CF9B2E", "#8B2ECF",
	"#CF2EAE", "#2EC1CF", "#6C7A89", "#E6D52E", "#34495E",
}

// Service manages the local account using a backing store and the auth state.
type Service struct {
	store  domain.AccountStore
	auth   domain.AuthState
	logger *slog.Logger
}

// New returns an account service. A nil logger discards log output.
func New(store domain.AccountStore, auth domain.AuthState, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		auth:   auth,
		logger: observability.Component(logger, "account"),
	}
}

// Create derives a seed from the recovery phrase, seals the device name with
// it, saves the account encrypted with the passphrase and signs it in.
func (s *Service) Create(ctx context.Context, params domain.CreateAccountParams) (domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return domain.Account{}, err
	}
	if !isSecurePassphrase(params.Passphrase) {
		return domain.Account{}, ErrWeakPassphrase
	}
	if len(strings.Fields(params.Mnemonic)) < minMnemonicWords {
		return domain.Account{}, ErrWeakMnemonic
	}
	if strings.TrimSpace(params.DeviceName) == "" {
		return domain.Account{}, ErrDeviceNameRequired
	}

	profile := params.Profile
	if profile == (domain.Profile{}) {
		profile = RandomProfile()
	}
	if err := profile.Validate(); err != nil {
		return domain.Account{}, err
	}

	seed := crypto.SeedFromMnemonic(params.Mnemonic)
	defer crypto.Wipe(seed)

	deviceName, err := crypto.EncryptData(params.DeviceName, seed)
	if err != nil {
		return domain.Account{}, fmt.Errorf("seal device name: %w", err)
	}

	acc := domain.Account{
		ID:         domain.AccountID(uuid.NewString()),
		UserID:     params.UserID,
		Token:      params.Token,
		BackendURL: params.BackendURL,
		Seed:       crypto.B64(seed),
		DeviceName: deviceName,
		Profile:    profile,
	}
	if err := s.store.SaveAccount(params.Passphrase, acc); err != nil {
		return domain.Account{}, err
	}
	s.auth.Set(&acc)
	s.logger.Info("account created",
		slog.String("account", acc.ID.String()),
		slog.String("seed_fp", crypto.Fingerprint(seed)),
	)
	return acc, nil
}

// Restore loads the stored account into the auth state.
// It returns nil, nil when no account is stored.
func (s *Service) Restore(passphrase string) (*domain.Account, error) {
	acc, ok, err := s.store.LoadAccount(passphrase)
	if err != nil {
		return nil, err
	}
	if !ok {
		s.auth.Clear()
		return nil, nil
	}
	if err := acc.Profile.Validate(); err != nil {
		return nil, fmt.Errorf("stored account %s: %w", acc.ID, err)
	}
	s.auth.Set(&acc)
	s.logger.Debug("account restored", slog.String("account", acc.ID.String()))
	return s.auth.Current(), nil
}

// Logout signs out and deletes the stored account.
func (s *Service) Logout() error {
	s.auth.Clear()
	if err := s.store.DeleteAccount(); err != nil {
		return err
	}
	s.logger.Info("signed out")
	return nil
}

// RandomProfile picks two palette colours and an icon.
func RandomProfile() domain.Profile {
	return domain.Profile{
		ColorA: profileColors[rand.IntN(len(profileColors))],
		ColorB: profileColors[rand.IntN(len(profileColors))],
		Icon:   domain.Icons[rand.IntN(len(domain.Icons))],
	}
}

// isSecurePassphrase enforces a basic strength policy.
func isSecurePassphrase(passphrase string) bool {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	if len(passphrase) < minPassphraseLength {
		return false
	}
	for _, r := range passphrase {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r), unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSymbol
}

// Compile-time assertion that Service implements domain.AccountService.
var _ domain.AccountService = (*Service)(nil)
