package core

import "github.com/mattn/go-runewidth"

// Cell represents a single terminal cell.
type Cell struct {
	// Rune is the character to display.
	// A value of 0 indicates a continuation cell (for wide characters).
	Rune rune

	// Width is the display width of this cell.
	// 0 for continuation cells, 1 for normal chars, 2 for wide CJK chars.
	Width int

	// Style is the visual style for this cell.
	Style Style
}

// EmptyCell returns an empty cell with default style.
func EmptyCell() Cell {
	return Cell{
		Rune:  ' ',
		Width: 1,
		Style: DefaultStyle(),
	}
}

// NewCell creates a cell with the given rune and default style.
func NewCell(r rune) Cell {
	return NewStyledCell(r, DefaultStyle())
}

// NewStyledCell creates a cell with the given rune and style.
func NewStyledCell(r rune, style Style) Cell {
	return Cell{
		Rune:  r,
		Width: RuneWidth(r),
		Style: style,
	}
}

// Equals returns true if two cells are identical.
func (c Cell) Equals(other Cell) bool {
	return c.Rune == other.Rune &&
		c.Width == other.Width &&
		c.Style.Equals(other.Style)
}

// RuneWidth returns the display width of a rune: 0 for control
// characters, 2 for East Asian wide characters, 1 otherwise.
func RuneWidth(r rune) int {
	if r < 32 || r == 0x7F {
		return 0
	}
	return runewidth.RuneWidth(r)
}

// CellWidth returns the number of cells r takes when painted in the text
// area, where control characters are shown as a single space.
func CellWidth(r rune) int {
	if r < 32 || r == 0x7F {
		return 1
	}
	return runewidth.RuneWidth(r)
}
