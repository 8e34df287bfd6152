package backend

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/kestrel/internal/input/key"
	"github.com/dshills/kestrel/internal/renderer/core"
)

func newSimTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	term := NewTerminalWithScreen(screen)
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	screen.SetSize(20, 5)
	t.Cleanup(term.Shutdown)
	return term, screen
}

// nextKey polls until a key event arrives, skipping resize notifications.
func nextKey(t *testing.T, term *Terminal) key.Event {
	t.Helper()
	for i := 0; i < 5; i++ {
		ev, err := term.PollEvent()
		if err != nil {
			t.Fatalf("PollEvent failed: %v", err)
		}
		if ev.Type == EventKey {
			return ev.Key
		}
	}
	t.Fatal("no key event received")
	return key.Event{}
}

func TestTerminalPaint(t *testing.T) {
	term, screen := newSimTerminal(t)

	style := core.DefaultStyle().WithBackground(core.ColorFromRGB(10, 20, 30)).Bold()
	for i, r := range "hi" {
		term.SetCell(i, 1, core.NewStyledCell(r, style))
	}
	term.ShowCursor(1, 1)
	if err := term.Show(); err != nil {
		t.Fatalf("Show failed: %v", err)
	}

	cells, width, _ := screen.GetContents()
	got := string(cells[width+0].Runes) + string(cells[width+1].Runes)
	if got != "hi" {
		t.Errorf("painted %q, want %q", got, "hi")
	}

	_, bg, attrs := cells[width].Style.Decompose()
	if bg != tcell.NewRGBColor(10, 20, 30) {
		t.Errorf("background = %v, want rgb(10,20,30)", bg)
	}
	if attrs&tcell.AttrBold == 0 {
		t.Error("expected bold attribute")
	}

	x, y, visible := screen.GetCursor()
	if x != 1 || y != 1 || !visible {
		t.Errorf("cursor = (%d, %d, %v), want (1, 1, true)", x, y, visible)
	}
}

func TestTerminalKeyConversion(t *testing.T) {
	tests := []struct {
		name string
		k    tcell.Key
		r    rune
		mod  tcell.ModMask
		want key.Event
	}{
		{"rune", tcell.KeyRune, 'j', tcell.ModNone, key.NewRuneEvent('j', key.ModNone)},
		{"escape", tcell.KeyEscape, 0, tcell.ModNone, key.NewSpecialEvent(key.KeyEscape, key.ModNone)},
		{"left", tcell.KeyLeft, 0, tcell.ModNone, key.NewSpecialEvent(key.KeyLeft, key.ModNone)},
		{"ctrl-f", tcell.KeyCtrlF, 0, tcell.ModCtrl, key.NewRuneEvent('f', key.ModCtrl)},
		{"ctrl-b", tcell.KeyCtrlB, 0, tcell.ModCtrl, key.NewRuneEvent('b', key.ModCtrl)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term, screen := newSimTerminal(t)
			screen.InjectKey(tt.k, tt.r, tt.mod)

			got := nextKey(t, term)
			if got != tt.want {
				t.Errorf("converted %+v, want %+v", got, tt.want)
			}
		})
	}
}

type finiCountingScreen struct {
	tcell.Screen
	finis int
}

func (s *finiCountingScreen) Fini() {
	s.finis++
	s.Screen.Fini()
}

func TestTerminalShutdownBeforeInit(t *testing.T) {
	screen := &finiCountingScreen{Screen: tcell.NewSimulationScreen("UTF-8")}
	term := NewTerminalWithScreen(screen)

	term.Shutdown()
	if screen.finis != 0 {
		t.Errorf("Fini called %d times on an uninitialized screen", screen.finis)
	}
	if err := term.Init(); !errors.Is(err, ErrClosed) {
		t.Errorf("Init after Shutdown error = %v, want ErrClosed", err)
	}
	if screen.finis != 0 {
		t.Errorf("Fini called %d times, want 0", screen.finis)
	}
}

func TestTerminalShutdownFinalizesOnce(t *testing.T) {
	screen := &finiCountingScreen{Screen: tcell.NewSimulationScreen("UTF-8")}
	term := NewTerminalWithScreen(screen)
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	term.Shutdown()
	term.Shutdown()
	if screen.finis != 1 {
		t.Errorf("Fini called %d times, want 1", screen.finis)
	}
}

func TestTerminalPollAfterShutdown(t *testing.T) {
	term, _ := newSimTerminal(t)
	term.Shutdown()
	term.Shutdown()

	if _, err := term.PollEvent(); !errors.Is(err, ErrClosed) {
		t.Errorf("PollEvent after Shutdown error = %v, want ErrClosed", err)
	}
}

func TestConvertColor(t *testing.T) {
	if convertColor(core.ColorDefault) != tcell.ColorDefault {
		t.Error("default color should map to tcell.ColorDefault")
	}
	if convertColor(core.ColorFromRGB(1, 2, 3)) != tcell.NewRGBColor(1, 2, 3) {
		t.Error("rgb color should map to tcell RGB color")
	}
}
