package app

import (
	"errors"
	"log/slog"
	"net/http"
	"os"

	"accountdeck/internal/auth"
	"accountdeck/internal/backend"
	"accountdeck/internal/crypto"
	"accountdeck/internal/domain"
	"accountdeck/internal/observability"
	accountsvc "accountdeck/internal/services/account"
	"accountdeck/internal/store"
	"accountdeck/internal/ui"
)

// ErrNoHome is returned when Config.Home is empty.
var ErrNoHome = errors.New("config directory not set")

// Wire bundles all stores, services, and clients for the CLI.
type Wire struct {
	Accounts domain.AccountStore
	Settings domain.SettingsStore
	Auth     *auth.State
	Account  domain.AccountService
	Resolver *ui.Resolver
	Backend  domain.BackendClient
	HTTP     *http.Client
	Logger   *slog.Logger
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	if cfg.Home == "" {
		return nil, ErrNoHome
	}
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = observability.Nop()
	}

	// File-based stores
	accountStore := store.NewAccountFileStore(cfg.Home)
	settingsStore := store.NewSettingsFileStore(cfg.Home)

	// Ensure an HTTP client is available for outbound calls
	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = &http.Client{Timeout: backend.DefaultTimeout}
	}

	state := auth.NewState()

	return &Wire{
		Accounts: accountStore,
		Settings: settingsStore,
		Auth:     state,
		Account:  accountsvc.New(accountStore, state, logger),
		Resolver: ui.NewResolver(state, crypto.Codec{}, logger),
		Backend:  backend.NewHTTP(httpClient, logger),
		HTTP:     httpClient,
		Logger:   logger,
	}, nil
}

// SignIn restores the stored account into the auth state. signedIn is false
// when no account has been saved yet.
func (w *Wire) SignIn(passphrase string) (signedIn bool, err error) {
	acc, err := w.Account.Restore(passphrase)
	if err != nil {
		return false, err
	}
	return acc != nil, nil
}
