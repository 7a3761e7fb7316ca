package domain

import (
	interfaces "accountdeck/internal/domain/interfaces"
	types "accountdeck/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	AccountID           = types.AccountID
	Account             = types.Account
	Profile             = types.Profile
	Icon                = types.Icon
	ProxyURLs           = types.ProxyURLs
	Settings            = types.Settings
	CreateAccountParams = types.CreateAccountParams
	BackendMeta         = types.BackendMeta
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	AuthState      = interfaces.AuthState
	AccountStore   = interfaces.AccountStore
	SettingsStore  = interfaces.SettingsStore
	DataCodec      = interfaces.DataCodec
	AccountService = interfaces.AccountService
	BackendClient  = interfaces.BackendClient
)

// Profile icons, re-exported for callers that only import domain.
const (
	IconUserGroup = types.IconUserGroup
	IconCouch     = types.IconCouch
	IconMobile    = types.IconMobile
	IconTicket    = types.IconTicket
	IconHandcuffs = types.IconHandcuffs
	IconWeb       = types.IconWeb
	IconBookmark  = types.IconBookmark
	IconCat       = types.IconCat
	IconGhost     = types.IconGhost
	IconShield    = types.IconShield
)

var (
	// Icons lists every profile icon in display order.
	Icons = types.Icons
	// ErrIncompleteProfile is returned by Profile.Validate.
	ErrIncompleteProfile = types.ErrIncompleteProfile
)
