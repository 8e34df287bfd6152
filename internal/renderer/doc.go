// Package renderer draws editor frames to a terminal backend.
//
// A frame is painted in two phases, always in this order:
//
//  1. the viewport: one buffer line per row, padded with spaces to the
//     full terminal width so shorter lines overwrite stale content
//  2. the status line on the second-to-last row, with a blank row below it
//
// The terminal cursor is then moved to the screen cursor and the frame is
// flushed with a single Show. A Show failure aborts the frame and is
// returned to the caller.
//
// Architecture:
//
//	┌─────────────────────────────────────────┐
//	│           Renderer (Frame)              │
//	├─────────────────────────────────────────┤
//	│  Viewport  │  StatusLine  │  Core cells │
//	├─────────────────────────────────────────┤
//	│           Backend Abstraction           │
//	├─────────────────────────────────────────┤
//	│  Terminal (tcell) │ NullBackend (tests) │
//	└─────────────────────────────────────────┘
//
// Usage:
//
//	b, _ := backend.NewTerminal()
//	r := renderer.New(b)
//	err := r.Render(renderer.Frame{Lines: buf, Viewport: vp, Mode: mode.Normal})
package renderer
