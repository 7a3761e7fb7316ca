package interfaces

import (
	"context"

	domaintypes "accountdeck/internal/domain/types"
)

// DataCodec is the cryptography the identity badge depends on.
type DataCodec interface {
	// DecodeSeed turns base64 seed text into raw key material.
	DecodeSeed(seed string) ([]byte, error)
	// Decrypt opens ciphertext sealed with key.
	Decrypt(ciphertext string, key []byte) (string, error)
}

// AccountService creates, restores and removes the local account.
type AccountService interface {
	Create(ctx context.Context, params domaintypes.CreateAccountParams) (domaintypes.Account, error)
	Restore(passphrase string) (*domaintypes.Account, error)
	Logout() error
}

// BackendClient probes configured connection endpoints.
type BackendClient interface {
	Meta(ctx context.Context, baseURL string) (domaintypes.BackendMeta, error)
	PingWorker(ctx context.Context, workerURL string) error
}
