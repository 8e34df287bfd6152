// Package viewport maps between the three coordinate systems of the editor:
// screen cells, viewport-relative rows, and absolute buffer lines.
//
// The cursor is held in screen-relative form (column cx, row cy). The
// vertical scroll offset top is the buffer line shown on the first viewport
// row, so the buffer line under the cursor is always top+cy. The
// horizontal offset left is tracked for horizontal scrolling; no movement
// advances it yet, but MoveLeft never goes below it.
//
// Movements may leave the cursor out of range. Clamp restores the
// invariants against the current buffer contents and is meant to run
// before every frame, not only after movement, because edits change line
// lengths underneath the cursor.
package viewport

// ReservedRows is the number of terminal rows below the viewport:
// the status line and one blank separator row.
const ReservedRows = 2

// Lines is the read side of the text buffer.
type Lines interface {
	// Line returns the text of line n (0-indexed) and false past the end.
	Line(n int) (string, bool)

	// LineCount returns the total number of lines.
	LineCount() int
}

// Viewport represents the visible portion of the buffer and the cursor in it.
//
// Viewport is not safe for concurrent use; the session loop owns it.
type Viewport struct {
	// Cursor, relative to the top-left viewport cell.
	cx, cy int

	// Position in buffer (first visible line and column).
	topLine    int
	leftColumn int

	// Size in screen cells.
	width  int
	height int
}

// NewViewport creates a viewport for a terminal of the given size with the
// cursor at (0, 0). The viewport spans the full terminal width and all rows
// except the ReservedRows at the bottom.
func NewViewport(termWidth, termHeight int) *Viewport {
	v := &Viewport{}
	v.Resize(termWidth, termHeight)
	return v
}

// Resize updates the viewport for a new terminal size.
// Width and height are clamped to a minimum of 1 to prevent underflow.
func (v *Viewport) Resize(termWidth, termHeight int) {
	v.width = max(termWidth, 1)
	v.height = max(termHeight-ReservedRows, 1)
}

// Width returns the viewport width.
func (v *Viewport) Width() int {
	return v.width
}

// Height returns the number of text rows in the viewport.
func (v *Viewport) Height() int {
	return v.height
}

// Cursor returns the screen-relative cursor position.
func (v *Viewport) Cursor() (x, y int) {
	return v.cx, v.cy
}

// SetCursor moves the screen-relative cursor. Negative values saturate
// to 0; other out-of-range values are corrected by the next Clamp.
func (v *Viewport) SetCursor(x, y int) {
	v.cx = max(x, 0)
	v.cy = max(y, 0)
}

// TopLine returns the first visible buffer line.
func (v *Viewport) TopLine() int {
	return v.topLine
}

// SetTopLine scrolls so that line is the first visible line.
func (v *Viewport) SetTopLine(line int) {
	v.topLine = max(line, 0)
}

// LeftColumn returns the first visible column.
func (v *Viewport) LeftColumn() int {
	return v.leftColumn
}

// BufferLine returns the absolute buffer line under the cursor.
func (v *Viewport) BufferLine() int {
	return v.topLine + v.cy
}

// BufferColumn returns the buffer column under the cursor.
func (v *Viewport) BufferColumn() int {
	return v.cx
}

// ScreenRowToLine converts a viewport row to a buffer line.
func (v *Viewport) ScreenRowToLine(row int) int {
	return v.topLine + row
}
