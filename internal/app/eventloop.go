package app

import (
	"errors"

	"github.com/dshills/kestrel/internal/input"
	"github.com/dshills/kestrel/internal/renderer"
	"github.com/dshills/kestrel/internal/renderer/backend"
)

// eventLoop runs until Quit or a fatal error. Quit yields nil.
func (app *Application) eventLoop() error {
	for {
		if err := app.step(); err != nil {
			if errors.Is(err, ErrQuit) {
				return nil
			}
			return err
		}
	}
}

// step runs one iteration: clamp, render, wait for input, apply.
func (app *Application) step() error {
	app.viewport.Clamp(app.buffer)

	if err := app.renderer.Render(app.frame()); err != nil {
		return NewComponentError(componentRenderer, "draw", err)
	}

	ev, err := app.backend.PollEvent()
	if err != nil {
		return NewComponentError(componentBackend, "poll", err)
	}
	return app.handleBackendEvent(ev)
}

func (app *Application) frame() renderer.Frame {
	return renderer.Frame{
		Lines:    app.buffer,
		Viewport: app.viewport,
		Mode:     app.modes.Current(),
		FileName: app.buffer.Name(),
	}
}

// handleBackendEvent routes a backend event.
// Returns ErrQuit if the session should exit.
func (app *Application) handleBackendEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventResize:
		app.handleResize(ev)
		return nil
	case backend.EventKey:
		return app.handleKeyEvent(ev)
	default:
		return nil
	}
}

func (app *Application) handleResize(ev backend.Event) {
	app.logger.Debug("resize %dx%d", ev.Width, ev.Height)
	app.viewport.Resize(ev.Width, ev.Height)
}

func (app *Application) handleKeyEvent(ev backend.Event) error {
	action, ok := input.Classify(app.modes.Current(), ev.Key)
	if !ok {
		return nil
	}
	return app.apply(action)
}

// apply performs an action against the session state.
func (app *Application) apply(a input.Action) error {
	app.logger.Debug("action %s", a)

	vp := app.viewport
	switch a.Kind {
	case input.ActionQuit:
		return ErrQuit
	case input.ActionMoveUp:
		vp.MoveUp()
	case input.ActionMoveDown:
		vp.MoveDown()
	case input.ActionMoveLeft:
		vp.MoveLeft()
	case input.ActionMoveRight:
		vp.MoveRight()
	case input.ActionPageUp:
		vp.PageUp()
	case input.ActionPageDown:
		vp.PageDown(app.buffer)
	case input.ActionMoveToLineStart:
		vp.MoveToLineStart()
	case input.ActionMoveToLineEnd:
		vp.MoveToLineEnd(app.buffer)
	case input.ActionEnterMode:
		app.modes.Switch(a.Mode)
	case input.ActionAddChar:
		app.insertCharacter(a.Char)
	case input.ActionNewLine:
		vp.NewLine()
	}
	return nil
}

// insertCharacter inserts ch under the cursor and advances the cursor.
// A rejected insert is logged and leaves the cursor in place.
func (app *Application) insertCharacter(ch rune) {
	vp := app.viewport
	if err := app.buffer.Insert(vp.BufferColumn(), vp.BufferLine(), ch); err != nil {
		app.logger.Warn("insert %q rejected: %v", ch, err)
		return
	}
	vp.Advance()
}
