package types

// AccountID is the stable identifier of a signed-in account.
type AccountID string

// String returns the string form of the account identifier.
func (id AccountID) String() string { return string(id) }

// Icon names one glyph from the closed set of profile icons.
type Icon string

// Profile icons.
const (
	IconUserGroup Icon = "userGroup"
	IconCouch     Icon = "couch"
	IconMobile    Icon = "mobile"
	IconTicket    Icon = "ticket"
	IconHandcuffs Icon = "handcuffs"
	IconWeb       Icon = "web"
	IconBookmark  Icon = "bookmark"
	IconCat       Icon = "cat"
	IconGhost     Icon = "ghost"
	IconShield    Icon = "shield"
)

// Icons lists every profile icon in display order.
var Icons = []Icon{
	IconUserGroup,
	IconCouch,
	IconMobile,
	IconTicket,
	IconHandcuffs,
	IconWeb,
	IconBookmark,
	IconCat,
	IconGhost,
	IconShield,
}

// Valid reports whether i is a member of Icons.
func (i Icon) Valid() bool {
	for _, known := range Icons {
		if i == known {
			return true
		}
	}
	return false
}

// String returns the string form of the icon.
func (i Icon) String() string { return string(i) }
