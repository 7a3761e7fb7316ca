// Package app wires application dependencies for the CLI.
//
// It builds the file stores, the auth state, the account service, the
// identity badge resolver and the backend client from Config, exposing them
// via the Wire struct for commands to use.
package app
