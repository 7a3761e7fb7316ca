// Package commands defines the accountdeck CLI and wires dependencies for subcommands.
//
// Commands
//
//   - login     Create the local account from a recovery phrase
//   - logout    Sign out and delete the stored account
//   - whoami    Show the signed-in identity badge
//   - avatar    Preview a profile badge
//   - proxy     Edit the custom proxy worker list
//   - backend   Edit the custom backend URL
//   - check     Probe the configured workers and backend
//   - settings  Open the interactive connections panel
//
// # Implementation
//
// The root command builds the logger and the dependency graph (stores, auth
// state, account service, badge resolver, backend client) before any
// subcommand runs. Commands that need the signed-in account restore it from
// disk with the --passphrase flag.
package commands
