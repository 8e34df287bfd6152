// Package app runs an editor session. It owns the terminal for the
// session's lifetime and drives the clamp, render, poll and apply loop.
//
// A session is single-threaded: input reading, state mutation and
// rendering all happen on the goroutine that calls Run.
package app

import (
	"runtime/debug"

	"github.com/google/uuid"

	"github.com/dshills/kestrel/internal/input/mode"
	"github.com/dshills/kestrel/internal/renderer"
	"github.com/dshills/kestrel/internal/renderer/backend"
	"github.com/dshills/kestrel/internal/renderer/viewport"
)

// Buffer is the text the session edits.
type Buffer interface {
	viewport.Lines

	// Insert inserts r on the given line before column col.
	Insert(col, line int, r rune) error

	// Name returns the display name shown in the status line.
	Name() string

	// Modified reports whether any insert has succeeded.
	Modified() bool
}

// CursorStyles selects the terminal cursor shape for each mode.
type CursorStyles struct {
	Normal backend.CursorStyle
	Insert backend.CursorStyle
}

// DefaultCursorStyles returns a block cursor in Normal mode and a bar in Insert mode.
func DefaultCursorStyles() CursorStyles {
	return CursorStyles{
		Normal: backend.CursorBlock,
		Insert: backend.CursorBar,
	}
}

// For returns the cursor style for m.
func (c CursorStyles) For(m mode.Mode) backend.CursorStyle {
	if m == mode.Insert {
		return c.Insert
	}
	return c.Normal
}

// Options configures the application.
type Options struct {
	// Logger receives session logs. Nil disables logging.
	Logger *Logger

	// CursorStyles selects the cursor shape per mode.
	CursorStyles CursorStyles
}

// Application is a single editor session.
type Application struct {
	backend  backend.Backend
	buffer   Buffer
	renderer *renderer.Renderer
	viewport *viewport.Viewport
	modes    *mode.Manager
	logger   *Logger

	sessionID string
	running   bool
	opts      Options
}

// New creates a session editing buf on the given backend.
// The backend is not touched until Run.
func New(b backend.Backend, buf Buffer, opts Options) *Application {
	logger := opts.Logger
	if logger == nil {
		logger = NullLogger
	}
	sessionID := uuid.NewString()

	app := &Application{
		backend:   b,
		buffer:    buf,
		renderer:  renderer.New(b),
		viewport:  viewport.NewViewport(b.Size()),
		modes:     mode.NewManager(),
		logger:    logger.WithField("session", sessionID),
		sessionID: sessionID,
		opts:      opts,
	}
	app.modes.OnChange(app.onModeChange)
	return app
}

// Run acquires the terminal and processes input until Quit.
//
// The terminal is released exactly once on every exit path, including
// errors and panics. A recovered panic is returned as a
// *RecoveredPanicError; terminal failures as a *ComponentError.
func (app *Application) Run() (err error) {
	if app.running {
		return ErrAlreadyRunning
	}
	app.running = true
	defer func() { app.running = false }()

	guard := newTerminalGuard(app.backend, app.logger)
	if err := guard.acquire(); err != nil {
		app.logger.Error("terminal init failed: %v", err)
		return NewComponentError(componentBackend, "init", err)
	}

	// Deferred calls run in reverse order, so the terminal is restored
	// before the panic is converted.
	defer func() {
		if r := recover(); r != nil {
			app.logger.Error("recovered panic: %v", r)
			err = NewRecoveredPanicError(r, string(debug.Stack()))
		}
	}()
	defer guard.release()

	width, height := app.backend.Size()
	app.viewport.Resize(width, height)
	app.backend.SetCursorStyle(app.opts.CursorStyles.For(app.modes.Current()))
	app.logger.Info("session started: size=%dx%d file=%q", width, height, app.buffer.Name())

	if err := app.eventLoop(); err != nil {
		app.logger.Error("session failed: %v", err)
		return err
	}
	app.logger.Info("session ended: modified=%t", app.buffer.Modified())
	return nil
}

func (app *Application) onModeChange(from, to mode.Mode) {
	app.logger.Debug("mode %s -> %s", from, to)
	app.backend.SetCursorStyle(app.opts.CursorStyles.For(to))
}

// IsRunning returns true while Run is executing.
func (app *Application) IsRunning() bool {
	return app.running
}

// SessionID returns the identifier attached to this session's log lines.
func (app *Application) SessionID() string {
	return app.sessionID
}

// Mode returns the current editing mode.
func (app *Application) Mode() mode.Mode {
	return app.modes.Current()
}

// Viewport returns the session's viewport and cursor.
func (app *Application) Viewport() *viewport.Viewport {
	return app.viewport
}
