// Package backend provides the terminal abstraction used by the editor.
//
// A Backend owns the terminal for the lifetime of a session: Init puts the
// terminal into raw input mode and switches to the alternate screen;
// Shutdown restores both. Drawing is cell based and buffered until Show.
package backend

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/kestrel/internal/input/key"
	"github.com/dshills/kestrel/internal/renderer/core"
)

// ErrClosed is returned by PollEvent once the backend has been shut down
// or its input stream has ended.
var ErrClosed = errors.New("backend closed")

// CursorStyle defines how the cursor appears.
type CursorStyle int

const (
	CursorBlock CursorStyle = iota
	CursorUnderline
	CursorBar
	CursorHidden
)

// String returns the configuration name of the cursor style.
func (c CursorStyle) String() string {
	switch c {
	case CursorBlock:
		return "block"
	case CursorUnderline:
		return "underline"
	case CursorBar:
		return "bar"
	case CursorHidden:
		return "hidden"
	default:
		return "unknown"
	}
}

// ParseCursorStyle parses a cursor style name ("block", "bar", "underline", "hidden").
func ParseCursorStyle(s string) (CursorStyle, error) {
	switch strings.ToLower(s) {
	case "block":
		return CursorBlock, nil
	case "underline":
		return CursorUnderline, nil
	case "bar":
		return CursorBar, nil
	case "hidden":
		return CursorHidden, nil
	default:
		return CursorBlock, fmt.Errorf("unknown cursor style: %q", s)
	}
}

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key is set for EventKey.
	Key key.Event

	// Width and Height are set for EventResize.
	Width, Height int
}

// KeyEvent wraps a key event for posting or scripting.
func KeyEvent(ev key.Event) Event {
	return Event{Type: EventKey, Key: ev}
}

// ResizeEvent builds a resize event.
func ResizeEvent(width, height int) Event {
	return Event{Type: EventResize, Width: width, Height: height}
}

// Backend defines the interface for terminal backends.
type Backend interface {
	// Init enables raw input mode and enters the alternate screen.
	// Must be called before any other methods.
	Init() error

	// Shutdown leaves the alternate screen and restores the original
	// terminal mode. Safe to call more than once.
	Shutdown()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// SetCell sets a single cell at the given position.
	// Positions outside the terminal are silently ignored.
	SetCell(x, y int, cell core.Cell)

	// Clear clears the entire screen with the default style.
	Clear()

	// Show flushes all queued output to the terminal as one write.
	Show() error

	// ShowCursor positions and displays the cursor.
	ShowCursor(x, y int)

	// SetCursorStyle changes the cursor appearance.
	SetCursorStyle(style CursorStyle)

	// PollEvent waits for and returns the next terminal event.
	// This is a blocking call.
	PollEvent() (Event, error)
}
