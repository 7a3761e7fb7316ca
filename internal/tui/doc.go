// Package tui is the interactive connections settings screen.
//
// It edits the proxy worker list and the custom backend URL through the
// settings editors, shows the signed-in user's badge in the header and
// saves to a domain.SettingsStore on request.
package tui
