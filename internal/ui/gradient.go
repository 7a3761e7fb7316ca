package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// gradient maps a position along the badge diagonal to a colour.
type gradient struct {
	rawA, rawB string
	a, b       colorful.Color
	blend      bool
}

// newGradient prepares a two-stop gradient. Colours that are not hex are
// kept as raw strings and handed to lipgloss as they are; in that case the
// gradient is a hard split at the midpoint instead of a blend.
func newGradient(colorA, colorB string) gradient {
	g := gradient{rawA: colorA, rawB: colorB}
	a, errA := colorful.Hex(colorA)
	b, errB := colorful.Hex(colorB)
	if errA == nil && errB == nil {
		g.a, g.b, g.blend = a, b, true
	}
	return g
}

// at returns the colour at t in [0, 1], 0 being colorA.
func (g gradient) at(t float64) lipgloss.Color {
	switch {
	case t < 0:
		t = 0
	case t > 1:
		t = 1
	}
	if g.blend {
		return lipgloss.Color(g.a.BlendLab(g.b, t).Clamped().Hex())
	}
	if t < 0.5 {
		return lipgloss.Color(g.rawA)
	}
	return lipgloss.Color(g.rawB)
}
