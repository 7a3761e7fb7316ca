package store

import (
	"path/filepath"
	"sync"

	"accountdeck/internal/domain"
)

const settingsFile = "settings.yaml"

// settingsRecord is the YAML layout. Pointers keep "off" (null) apart from
// "on but empty" ([] or "").
type settingsRecord struct {
	ProxyURLs  *[]string `yaml:"proxyUrls"`
	BackendURL *string   `yaml:"backendUrl"`
}

// SettingsFileStore persists connection settings as YAML.
type SettingsFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewSettingsFileStore returns a SettingsFileStore rooted at dir.
func NewSettingsFileStore(dir string) *SettingsFileStore {
	return &SettingsFileStore{dir: dir}
}

// SaveSettings writes settings to disk.
func (s *SettingsFileStore) SaveSettings(settings domain.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var rec settingsRecord
	if settings.ProxyURLs != nil {
		urls := append([]string{}, settings.ProxyURLs...)
		rec.ProxyURLs = &urls
	}
	if settings.BackendURL != nil {
		backend := *settings.BackendURL
		rec.BackendURL = &backend
	}
	return writeYAML(filepath.Join(s.dir, settingsFile), rec)
}

// LoadSettings reads settings; a missing file means both features are off.
func (s *SettingsFileStore) LoadSettings() (domain.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var rec settingsRecord
	if _, err := readYAML(filepath.Join(s.dir, settingsFile), &rec); err != nil {
		return domain.Settings{}, err
	}

	var out domain.Settings
	if rec.ProxyURLs != nil {
		out.ProxyURLs = append(domain.ProxyURLs{}, (*rec.ProxyURLs)...)
	}
	out.BackendURL = rec.BackendURL
	return out, nil
}

// Compile-time assertion that SettingsFileStore implements domain.SettingsStore.
var _ domain.SettingsStore = (*SettingsFileStore)(nil)
