package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestGradient_EndpointsInOrder(t *testing.T) {
	g := newGradient("#2E65CF", "#CF2E2E")
	if got := strings.ToLower(string(g.at(0))); got != "#2e65cf" {
		t.Fatalf("at(0): got %s, want colorA", got)
	}
	if got := strings.ToLower(string(g.at(1))); got != "#cf2e2e" {
		t.Fatalf("at(1): got %s, want colorB", got)
	}
	mid := strings.ToLower(string(g.at(0.5)))
	if mid == "#2e65cf" || mid == "#cf2e2e" {
		t.Fatalf("at(0.5) should be a blend, got %s", mid)
	}
}

func TestGradient_RawColoursPassThrough(t *testing.T) {
	g := newGradient("rebeccapurple", "12")
	if g.at(0.2) != "rebeccapurple" || g.at(0.8) != "12" {
		t.Fatalf("raw colours changed: %s %s", g.at(0.2), g.at(0.8))
	}
}

func TestBadgeCells_Round(t *testing.T) {
	cells := badgeCells(6, 3, func(x, y int) lipgloss.TerminalColor { return nil })
	want := []string{" #### ", "######", " #### "}
	for y, row := range cells {
		var b strings.Builder
		for _, c := range row {
			if c.inside {
				b.WriteByte('#')
			} else {
				b.WriteByte(' ')
			}
		}
		if b.String() != want[y] {
			t.Errorf("row %d: got %q, want %q", y, b.String(), want[y])
		}
	}
}

func TestDiagonal(t *testing.T) {
	if diagonal(0, 0, 6, 3) != 0 || diagonal(5, 2, 6, 3) != 1 {
		t.Fatal("corners should map to 0 and 1")
	}
}
