package interfaces

import domaintypes "accountdeck/internal/domain/types"

// SettingsStore persists the connection settings.
type SettingsStore interface {
	SaveSettings(settings domaintypes.Settings) error
	LoadSettings() (domaintypes.Settings, error)
}
