package renderer

import (
	"github.com/dshills/kestrel/internal/input/mode"
	"github.com/dshills/kestrel/internal/renderer/backend"
	"github.com/dshills/kestrel/internal/renderer/core"
	"github.com/dshills/kestrel/internal/renderer/statusline"
	"github.com/dshills/kestrel/internal/renderer/viewport"
)

// Frame is everything needed to draw one screen.
type Frame struct {
	// Lines is the buffer being displayed.
	Lines viewport.Lines

	// Viewport holds the scroll offsets and the screen cursor.
	// It should be clamped before rendering.
	Viewport *viewport.Viewport

	// Mode is the current editing mode.
	Mode mode.Mode

	// FileName is the buffer's display name.
	FileName string
}

// Renderer is the main rendering facade.
type Renderer struct {
	backend backend.Backend
	status  *statusline.StatusLine

	frameCount uint64
}

// New creates a renderer drawing to the given backend.
func New(b backend.Backend) *Renderer {
	return &Renderer{
		backend: b,
		status:  statusline.New(),
	}
}

// Render paints a full frame, places the cursor and flushes.
// The returned error comes from the backend flush; the frame is not retried.
func (r *Renderer) Render(f Frame) error {
	width, height := r.backend.Size()
	vp := f.Viewport

	for row := 0; row < vp.Height() && row < height; row++ {
		text, _ := f.Lines.Line(vp.ScreenRowToLine(row))
		r.renderLine(text, vp.LeftColumn(), row, width)
	}

	// Terminals shorter than three rows have no room for the status line.
	if statusRow := height - viewport.ReservedRows; statusRow >= vp.Height() {
		r.status.SetMode(f.Mode)
		r.status.SetFilename(f.FileName)
		cx, cy := vp.Cursor()
		r.status.SetPosition(cx, cy)
		r.status.Resize(width)
		r.status.Render(r.backend, statusRow)

		r.clearRow(height-1, width)
	}

	_, cy := vp.Cursor()
	r.backend.ShowCursor(vp.ScreenColumn(f.Lines), cy)

	if err := r.backend.Show(); err != nil {
		return err
	}
	r.frameCount++
	return nil
}

// renderLine paints text starting at column left of the line, then pads
// the row with spaces to the full width.
func (r *Renderer) renderLine(text string, left, row, width int) {
	x := 0
	col := 0
	for _, ch := range text {
		if col < left {
			col++
			continue
		}
		col++

		cell := core.NewCell(ch)
		switch {
		case ch < ' ' || ch == 0x7F:
			// Control characters occupy one cell so columns stay aligned.
			cell = core.NewCell(' ')
		case cell.Width == 0:
			continue
		}
		if x+cell.Width > width {
			break
		}
		r.backend.SetCell(x, row, cell)
		if cell.Width == 2 {
			r.backend.SetCell(x+1, row, core.Cell{})
		}
		x += cell.Width
	}
	for ; x < width; x++ {
		r.backend.SetCell(x, row, core.EmptyCell())
	}
}

func (r *Renderer) clearRow(row, width int) {
	for x := 0; x < width; x++ {
		r.backend.SetCell(x, row, core.EmptyCell())
	}
}

// FrameCount returns the number of frames flushed successfully.
func (r *Renderer) FrameCount() uint64 {
	return r.frameCount
}
