package store

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"

	"accountdeck/internal/domain"
)

const accountFile = "account.enc"

// AccountFileStore persists the signed-in account, sealed with a passphrase.
type AccountFileStore struct {
	dir string
	kdf kdfParams
	mu  sync.Mutex
}

// NewAccountFileStore returns an AccountFileStore rooted at dir.
func NewAccountFileStore(dir string) *AccountFileStore {
	return &AccountFileStore{dir: dir, kdf: defaultKDF}
}

// SaveAccount encrypts and writes the account, replacing any previous one.
func (s *AccountFileStore) SaveAccount(passphrase string, account domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(account)
	if err != nil {
		return err
	}
	blob, err := seal(passphrase, raw, s.kdf)
	if err != nil {
		return err
	}
	return writeFile(filepath.Join(s.dir, accountFile), blob)
}

// LoadAccount reads and decrypts the account; ok is false when none is stored.
func (s *AccountFileStore) LoadAccount(passphrase string) (domain.Account, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, err := readFile(filepath.Join(s.dir, accountFile))
	if err != nil || blob == nil {
		return domain.Account{}, false, err
	}
	raw, err := open(passphrase, blob)
	if err != nil {
		return domain.Account{}, false, err
	}
	var account domain.Account
	if err := json.Unmarshal(raw, &account); err != nil {
		return domain.Account{}, false, fmt.Errorf("decode account: %w", err)
	}
	return account, true, nil
}

// DeleteAccount removes the stored account, if any.
func (s *AccountFileStore) DeleteAccount() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return removeFile(filepath.Join(s.dir, accountFile))
}

// Compile-time assertion that AccountFileStore implements domain.AccountStore.
var _ domain.AccountStore = (*AccountFileStore)(nil)
