// Package visual draws a mirror field while light crosses it.
package visual

import (
	"fmt"

	"github.com/zucenko/mirrorfield/engine"
)

// Glyph is one two-column cell of the drawing.
type Glyph struct {
	Text  string
	Light bool
	Slot  bool
}

// Layout arranges a snapshot as Size+2 rows of Size+2 glyphs: perimeter
// characters in hex around the mirrors, corners blank.
func Layout(s engine.Snapshot) [][]Glyph {
	n := s.Size
	rows := make([][]Glyph, 0, n+2)
	for r := -1; r <= n; r++ {
		row := make([]Glyph, 0, n+2)
		for c := -1; c <= n; c++ {
			row = append(row, glyph(s, r, c))
		}
		rows = append(rows, row)
	}
	return rows
}

func glyph(s engine.Snapshot, r, c int) Glyph {
	n := s.Size
	slot := -1
	switch {
	case (r == -1 || r == n) && (c == -1 || c == n):
		return Glyph{Text: "  "}
	case r == -1:
		slot = c
	case c == n:
		slot = n + r
	case r == n:
		slot = 2*n + c
	case c == -1:
		slot = 3*n + r
	}
	if slot >= 0 {
		return Glyph{
			Text:  fmt.Sprintf("%2x", s.Perimeter[slot]),
			Light: s.Slot() == slot,
			Slot:  true,
		}
	}
	i := r*n + c
	return Glyph{
		Text:  fmt.Sprintf("%2c", s.Mirrors[i].Rune()),
		Light: s.Cell == i,
	}
}
