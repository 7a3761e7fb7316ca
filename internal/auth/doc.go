// Package auth holds the process-wide auth state.
//
// The state is an explicit value handed to whoever needs it, so tests and the
// CLI can install a synthetic account without running a sign-in flow.
package auth
