package backend

import (
	"strings"

	"github.com/dshills/kestrel/internal/renderer/core"
)

// NullBackend is an in-memory backend for testing.
// Events are scripted with PostEvent; once the queue is drained
// PollEvent returns ErrClosed.
type NullBackend struct {
	width, height int
	cells         [][]core.Cell
	cursorX       int
	cursorY       int
	cursorVisible bool
	cursorStyle   CursorStyle
	events        []Event

	active        bool
	initCalls     int
	shutdownCalls int
	shows         int

	// InitErr, when set, is returned by Init.
	InitErr error
	// ShowErr, when set, is returned by Show.
	ShowErr error
	// OnPoll, when set, runs before each PollEvent.
	OnPoll func()
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	b := &NullBackend{width: width, height: height}
	b.allocate()
	return b
}

func (b *NullBackend) allocate() {
	b.cells = make([][]core.Cell, b.height)
	for i := range b.cells {
		b.cells[i] = make([]core.Cell, b.width)
		for j := range b.cells[i] {
			b.cells[i][j] = core.EmptyCell()
		}
	}
}

func (b *NullBackend) Init() error {
	b.initCalls++
	if b.InitErr != nil {
		return b.InitErr
	}
	b.active = true
	return nil
}

func (b *NullBackend) Shutdown() {
	b.shutdownCalls++
	b.active = false
}

func (b *NullBackend) Size() (int, int) {
	return b.width, b.height
}

func (b *NullBackend) SetCell(x, y int, cell core.Cell) {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		b.cells[y][x] = cell
	}
}

// GetCell returns the cell at the given position.
// Returns an empty cell for positions outside the terminal.
func (b *NullBackend) GetCell(x, y int) core.Cell {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		return b.cells[y][x]
	}
	return core.EmptyCell()
}

func (b *NullBackend) Clear() {
	b.allocate()
}

func (b *NullBackend) Show() error {
	if b.ShowErr != nil {
		return b.ShowErr
	}
	b.shows++
	return nil
}

func (b *NullBackend) ShowCursor(x, y int) {
	b.cursorX = x
	b.cursorY = y
	b.cursorVisible = true
}

func (b *NullBackend) SetCursorStyle(style CursorStyle) {
	b.cursorStyle = style
}

func (b *NullBackend) PollEvent() (Event, error) {
	if b.OnPoll != nil {
		b.OnPoll()
	}
	if len(b.events) == 0 {
		return Event{}, ErrClosed
	}
	ev := b.events[0]
	b.events = b.events[1:]
	if ev.Type == EventResize {
		b.width, b.height = ev.Width, ev.Height
		b.allocate()
	}
	return ev, nil
}

// PostEvent appends events to the scripted queue.
func (b *NullBackend) PostEvent(events ...Event) {
	b.events = append(b.events, events...)
}

// Row returns the runes painted on row y, continuation cells skipped.
func (b *NullBackend) Row(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	for _, c := range b.cells[y] {
		if c.Rune != 0 {
			sb.WriteRune(c.Rune)
		}
	}
	return sb.String()
}

// Active reports whether the backend is between Init and Shutdown.
func (b *NullBackend) Active() bool { return b.active }

// InitCalls returns how many times Init was called.
func (b *NullBackend) InitCalls() int { return b.initCalls }

// ShutdownCalls returns how many times Shutdown was called.
func (b *NullBackend) ShutdownCalls() int { return b.shutdownCalls }

// Shows returns how many frames were flushed successfully.
func (b *NullBackend) Shows() int { return b.shows }

// CursorPosition returns the current cursor position for testing.
func (b *NullBackend) CursorPosition() (x, y int, visible bool) {
	return b.cursorX, b.cursorY, b.cursorVisible
}

// CursorStyleValue returns the current cursor style for testing.
func (b *NullBackend) CursorStyleValue() CursorStyle {
	return b.cursorStyle
}
