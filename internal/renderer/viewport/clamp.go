package viewport

import "github.com/dshills/kestrel/internal/renderer/core"

// Clamp restores the cursor invariants against the current buffer:
//
//	0 <= cy < Height(), and top+cy is a line of the buffer
//	0 <= cx < Width(), and cx addresses a character of the line (or 0)
//	the character under cx is painted entirely inside the viewport
//
// Clamp is idempotent.
func (v *Viewport) Clamp(lines Lines) {
	v.clampVertical(lines)
	v.clampHorizontal(lines)
}

func (v *Viewport) clampVertical(lines Lines) {
	v.cy = min(max(v.cy, 0), v.height-1)
	v.topLine = max(v.topLine, 0)

	last := max(lines.LineCount()-1, 0)
	if v.topLine > last {
		v.topLine = last
	}
	if v.topLine+v.cy > last {
		v.cy = last - v.topLine
	}
}

func (v *Viewport) clampHorizontal(lines Lines) {
	runes := v.cursorLine(lines)
	if n := len(runes); v.cx >= n {
		v.cx = max(n-1, 0)
	}
	if v.cx >= v.width {
		v.cx = v.width - 1
	}
	v.cx = max(v.cx, 0)

	// Wide characters near the right edge may not fit.
	for v.cx > v.leftColumn && v.cx < len(runes) &&
		screenColumn(runes, v.leftColumn, v.cx)+max(core.CellWidth(runes[v.cx]), 1) > v.width {
		v.cx--
	}
}

// ScreenColumn returns the terminal column of the cursor: the painted
// width of the characters between the left column and the cursor.
func (v *Viewport) ScreenColumn(lines Lines) int {
	return screenColumn(v.cursorLine(lines), v.leftColumn, v.cx)
}

func screenColumn(runes []rune, left, cx int) int {
	col := 0
	for i := max(left, 0); i < cx && i < len(runes); i++ {
		col += core.CellWidth(runes[i])
	}
	return col
}

// cursorLine returns the characters of the cursor's line, or nil when
// the line does not exist.
func (v *Viewport) cursorLine(lines Lines) []rune {
	text, ok := lines.Line(v.BufferLine())
	if !ok {
		return nil
	}
	return []rune(text)
}
