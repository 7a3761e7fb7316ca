// Package settings implements the connection settings editors.
//
// The proxy worker list and the custom backend URL are both optional values:
// nil means the feature is off. Edits are expressed as Update values which
// either replace the current value or transform it, and are delivered
// through a Setter owned by whoever holds the state (a State, or a caller's
// own store).
//
// Switching a feature off discards its value. Turning it back on starts from
// an empty list or an empty string; there is no undo.
package settings
