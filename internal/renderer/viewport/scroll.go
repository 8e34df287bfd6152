package viewport

// MoveUp moves the cursor one row up, scrolling when it is on the first row.
func (v *Viewport) MoveUp() {
	if v.cy > 0 {
		v.cy--
		return
	}
	if v.topLine > 0 {
		v.topLine--
	}
}

// MoveDown moves the cursor one row down, scrolling when it would leave
// the last row. Moving past the end of the buffer is undone by Clamp.
func (v *Viewport) MoveDown() {
	v.cy++
	if v.cy >= v.height {
		v.topLine++
		v.cy = v.height - 1
	}
}

// MoveLeft moves the cursor one column left, never past the left offset.
func (v *Viewport) MoveLeft() {
	if v.cx > v.leftColumn {
		v.cx--
	}
}

// MoveRight moves the cursor one column right. Clamp limits it to the line.
func (v *Viewport) MoveRight() {
	v.cx++
}

// PageUp scrolls one viewport height up, stopping at the first line.
func (v *Viewport) PageUp() {
	v.topLine = max(v.topLine-v.height, 0)
}

// PageDown scrolls one viewport height down. When the next page would
// start past the end of the buffer, the last line becomes the top line.
func (v *Viewport) PageDown(lines Lines) {
	count := lines.LineCount()
	if v.topLine+v.height < count {
		v.topLine += v.height
		return
	}
	v.topLine = max(count-1, 0)
}

// MoveToLineStart moves the cursor to the first column.
func (v *Viewport) MoveToLineStart() {
	v.cx = 0
}

// MoveToLineEnd moves the cursor to the last character of the current line.
func (v *Viewport) MoveToLineEnd(lines Lines) {
	v.cx = max(len(v.cursorLine(lines))-1, 0)
}

// Advance moves the cursor one column right after a character insert.
func (v *Viewport) Advance() {
	v.cx++
}

// NewLine moves the cursor to the first column of the next row.
// The row is not scrolled; Clamp keeps it inside the viewport.
func (v *Viewport) NewLine() {
	v.cx = 0
	v.cy++
}
