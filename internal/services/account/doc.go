// Package account manages creation, restoring and removal of the local account.
//
// It enforces the recovery phrase and passphrase policies, derives the seed,
// seals the device name with it, persists the account via the
// domain.AccountStore and publishes it to the auth state.
package account
