package ui

import "accountdeck/internal/domain"

// menuGlyph is drawn in the placeholder badge.
const menuGlyph = "≡"

var iconGlyphs = map[domain.Icon]string{
	domain.IconUserGroup: "☷",
	domain.IconCouch:     "⌂",
	domain.IconMobile:    "▯",
	domain.IconTicket:    "✎",
	domain.IconHandcuffs: "∞",
	domain.IconWeb:       "◍",
	domain.IconBookmark:  "⚑",
	domain.IconCat:       "ᓚ",
	domain.IconGhost:     "☄",
	domain.IconShield:    "◈",
}

// Glyph returns the terminal glyph for icon, or "?" for an unknown icon.
func Glyph(icon domain.Icon) string {
	if g, ok := iconGlyphs[icon]; ok {
		return g
	}
	return "?"
}
