// Package crypto exposes the primitives behind account fields.
//
// Contents
//
//   - Base64 helpers for seed text (B64, Base64ToBuffer)
//   - AES-256-GCM sealing of short account fields such as the device name
//     (EncryptData, DecryptData) in the "iv.ciphertext.tag" text format
//   - Seed derivation from a recovery phrase (SeedFromMnemonic)
//   - Short fingerprints for display/logging (Fingerprint)
//   - Best-effort memory wiping for key material (Wipe)
//
// # Notes
//
// Decryption failures are returned to the caller as ErrDecrypt and are never
// replaced with placeholder text here; deciding what to show is the caller's
// job.
package crypto
