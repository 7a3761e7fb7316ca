package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"accountdeck/internal/domain"
)

// Size selects the badge dimensions.
type Size int

// Badge sizes. SizeSmall is the default.
const (
	SizeSmall Size = iota
	SizeMedium
	SizeLarge
)

// dims returns the badge size in cells. Terminal cells are about twice as
// tall as they are wide, so a round badge is twice as wide as it is tall.
func (s Size) dims() (w, h int) {
	switch s {
	case SizeMedium:
		return 10, 5
	case SizeLarge:
		return 14, 7
	default:
		return 6, 3
	}
}

// AvatarOptions tweak how a badge is drawn.
type AvatarOptions struct {
	Size Size
	// IconStyle replaces the default icon style when set.
	IconStyle *lipgloss.Style
	// Bottom is overlaid on the bottom edge, centred. Only its first line
	// is used. Empty means none.
	Bottom string
}

// cell is one character position of a badge.
type cell struct {
	inside bool
	bg     lipgloss.TerminalColor
}

// badgeCells lays out a w×h ellipse; fill picks each inside cell's background.
func badgeCells(w, h int, fill func(x, y int) lipgloss.TerminalColor) [][]cell {
	rows := make([][]cell, h)
	rx, ry := float64(w)/2, float64(h)/2
	for y := 0; y < h; y++ {
		rows[y] = make([]cell, w)
		dy := (float64(y) + 0.5 - ry) / ry
		for x := 0; x < w; x++ {
			dx := (float64(x) + 0.5 - rx) / rx
			if dx*dx+dy*dy <= 1 {
				rows[y][x] = cell{inside: true, bg: fill(x, y)}
			}
		}
	}
	return rows
}

// diagonal returns the gradient position of (x, y): 0 at the top-left
// corner, 1 at the bottom-right.
func diagonal(x, y, w, h int) float64 {
	fx, fy := 0.0, 0.0
	if w > 1 {
		fx = float64(x) / float64(w-1)
	}
	if h > 1 {
		fy = float64(y) / float64(h-1)
	}
	return (fx + fy) / 2
}

// Avatar renders the round gradient badge for profile.
func Avatar(profile domain.Profile, opts AvatarOptions) string {
	w, h := opts.Size.dims()
	g := newGradient(profile.ColorA, profile.ColorB)
	cells := badgeCells(w, h, func(x, y int) lipgloss.TerminalColor {
		return g.at(diagonal(x, y, w, h))
	})

	iconStyle := styleIcon
	if opts.IconStyle != nil {
		iconStyle = *opts.IconStyle
	}
	return drawBadge(cells, Glyph(profile.Icon), iconStyle, opts.Bottom)
}

// NoUserAvatar renders the neutral placeholder badge shown when nobody is
// signed in. It never draws a bottom slot.
func NoUserAvatar(opts AvatarOptions) string {
	w, h := opts.Size.dims()
	cells := badgeCells(w, h, func(int, int) lipgloss.TerminalColor { return colorDim })

	iconStyle := styleNoUserIcon
	if opts.IconStyle != nil {
		iconStyle = *opts.IconStyle
	}
	return drawBadge(cells, menuGlyph, iconStyle, "")
}

// drawBadge turns cells into styled lines with the glyph in the middle and
// bottom, if any, laid over the centre of the last row. When bottom is wider
// than the badge the badge is padded so both stay centred.
func drawBadge(cells [][]cell, glyph string, iconStyle lipgloss.Style, bottom string) string {
	h := len(cells)
	w := len(cells[0])
	bottom, _, _ = strings.Cut(bottom, "\n")

	bw := lipgloss.Width(bottom)
	total := w
	if bw > total {
		total = bw
	}
	offset := (total - w) / 2

	gw := max(lipgloss.Width(glyph), 1)
	gx, gy := (w-gw)/2, h/2

	lines := make([]string, h)
	for y, row := range cells {
		var b strings.Builder
		b.WriteString(strings.Repeat(" ", offset))
		for x := 0; x < w; x++ {
			c := row[x]
			switch {
			case y == gy && x == gx:
				b.WriteString(iconStyle.Background(c.bg).Render(glyph))
				x += gw - 1
			case c.inside:
				b.WriteString(lipgloss.NewStyle().Background(c.bg).Render(" "))
			default:
				b.WriteString(" ")
			}
		}
		b.WriteString(strings.Repeat(" ", total-w-offset))
		lines[y] = b.String()
	}
	if bw > 0 {
		lines[h-1] = overlayBottom(cells[h-1], offset, total, (total-bw)/2, bottom)
	}
	return strings.Join(lines, "\n")
}

// overlayBottom draws the last badge row with bottom placed at column bx.
func overlayBottom(row []cell, offset, total, bx int, bottom string) string {
	bw := lipgloss.Width(bottom)
	var b strings.Builder
	for col := 0; col < total; {
		if col == bx {
			b.WriteString(bottom)
			col += max(bw, 1)
			continue
		}
		x := col - offset
		if x >= 0 && x < len(row) && row[x].inside {
			b.WriteString(lipgloss.NewStyle().Background(row[x].bg).Render(" "))
		} else {
			b.WriteString(" ")
		}
		col++
	}
	return b.String()
}
