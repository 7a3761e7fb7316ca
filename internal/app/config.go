package app

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home   string       // config directory, e.g. $HOME/.accountdeck
	HTTP   *http.Client // optional; defaults to a client with backend.DefaultTimeout
	Logger *slog.Logger // optional; defaults to a discarding logger
}

// DefaultHome returns ~/.accountdeck.
func DefaultHome() (string, error) {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ".accountdeck"), nil
}
