package interfaces

import domaintypes "accountdeck/internal/domain/types"

// AuthState is the process-wide view of the signed-in account.
//
// Current returns nil when nobody is signed in. Listeners registered with
// Subscribe run after every Set or Clear, in subscription order.
type AuthState interface {
	Current() *domaintypes.Account
	Set(account *domaintypes.Account)
	Clear()
	Subscribe(listener func(*domaintypes.Account)) (unsubscribe func())
}

// AccountStore persists the signed-in account, encrypted at rest.
type AccountStore interface {
	SaveAccount(passphrase string, account domaintypes.Account) error
	LoadAccount(passphrase string) (domaintypes.Account, bool, error)
	DeleteAccount() error
}
