// Package domain defines the account, profile and connection settings models
// and the store, auth and codec contracts shared across accountdeck.
//
// Concrete types live in domain/types and contracts in domain/interfaces;
// this package re-exports both so callers need a single import.
package domain
