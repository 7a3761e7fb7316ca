// Package store provides file-based persistence for accountdeck.
//
// It contains concrete implementations of the domain storage interfaces.
// All methods are concurrency-safe via internal locking, and every write
// goes through a temp file and rename so a crash never leaves a half
// written file behind. Files live under the configured home directory.
//
// The package includes stores for:
//   - The signed-in account (AccountFileStore), sealed with a passphrase
//     using scrypt and ChaCha20-Poly1305
//   - Connection settings (SettingsFileStore), kept as plain YAML
package store
