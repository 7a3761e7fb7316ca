// Package ui renders accountdeck's views as styled terminal text.
//
// Views are plain functions from data to strings built with lipgloss, so the
// CLI can print them directly and the Bubble Tea program in internal/tui can
// compose them into its View.
//
//   - Avatar, NoUserAvatar: the round gradient identity badge
//   - Resolver: reads the signed-in account from the auth state, decrypts its
//     device name and renders the badge with the name beside it
//   - ConnectionsPart: the proxy worker and custom backend settings cards
package ui
