package backend

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/kestrel/internal/input/key"
	"github.com/dshills/kestrel/internal/renderer/core"
)

// Terminal implements Backend using tcell for terminal output.
// tcell's Init switches the tty to raw mode and enters the alternate
// screen; Fini reverses both.
//
// Shutdown may be called from another goroutine, including before Init.
// Once shut down, the terminal cannot be initialized again.
type Terminal struct {
	screen tcell.Screen

	mu          sync.Mutex
	initialized bool
	closed      bool
}

// NewTerminal creates a new terminal backend on the controlling tty.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewTerminalWithScreen(screen), nil
}

// NewTerminalWithScreen wraps an existing tcell screen.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return ErrClosed
	}
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.initialized = true
	t.screen.Clear()
	return nil
}

func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.closed = true
	if t.initialized {
		t.initialized = false
		t.screen.Fini()
	}
}

func (t *Terminal) Size() (int, int) {
	return t.screen.Size()
}

func (t *Terminal) SetCell(x, y int, cell core.Cell) {
	if cell.Rune == 0 {
		// Continuation cell; tcell tracks wide characters itself.
		return
	}
	t.screen.SetContent(x, y, cell.Rune, nil, convertStyle(cell.Style))
}

func (t *Terminal) Clear() {
	t.screen.Clear()
}

func (t *Terminal) Show() error {
	t.screen.Show()
	return nil
}

func (t *Terminal) ShowCursor(x, y int) {
	t.screen.ShowCursor(x, y)
}

func (t *Terminal) SetCursorStyle(style CursorStyle) {
	var tcellStyle tcell.CursorStyle
	switch style {
	case CursorBlock:
		tcellStyle = tcell.CursorStyleSteadyBlock
	case CursorUnderline:
		tcellStyle = tcell.CursorStyleSteadyUnderline
	case CursorBar:
		tcellStyle = tcell.CursorStyleSteadyBar
	case CursorHidden:
		t.screen.HideCursor()
		return
	default:
		tcellStyle = tcell.CursorStyleDefault
	}
	t.screen.SetCursorStyle(tcellStyle)
}

func (t *Terminal) PollEvent() (Event, error) {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return Event{}, ErrClosed
		}
		if out, ok := convertEvent(ev); ok {
			return out, nil
		}
	}
}

// convertStyle converts our Style to tcell.Style.
func convertStyle(s core.Style) tcell.Style {
	style := tcell.StyleDefault
	style = style.Foreground(convertColor(s.Foreground))
	style = style.Background(convertColor(s.Background))

	if s.Attributes.Has(core.AttrBold) {
		style = style.Bold(true)
	}
	if s.Attributes.Has(core.AttrDim) {
		style = style.Dim(true)
	}
	if s.Attributes.Has(core.AttrItalic) {
		style = style.Italic(true)
	}
	if s.Attributes.Has(core.AttrUnderline) {
		style = style.Underline(true)
	}
	if s.Attributes.Has(core.AttrReverse) {
		style = style.Reverse(true)
	}
	return style
}

func convertColor(c core.Color) tcell.Color {
	switch {
	case c.IsDefault():
		return tcell.ColorDefault
	default:
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
}

// convertEvent converts tcell events to our Event type.
// Events the editor has no use for (mouse, paste, focus) are dropped.
func convertEvent(ev tcell.Event) (Event, bool) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return KeyEvent(convertKey(e)), true
	case *tcell.EventResize:
		w, h := e.Size()
		return ResizeEvent(w, h), true
	default:
		return Event{}, false
	}
}

// convertKey converts a tcell key event. Control letters arrive from
// tcell as KeyCtrlA..KeyCtrlZ and are reported as the lowercase letter
// plus ModCtrl.
func convertKey(e *tcell.EventKey) key.Event {
	mods := convertMod(e.Modifiers())
	k := e.Key()

	switch k {
	case tcell.KeyRune:
		return key.NewRuneEvent(e.Rune(), mods)
	case tcell.KeyEscape:
		return key.NewSpecialEvent(key.KeyEscape, mods)
	case tcell.KeyEnter:
		return key.NewSpecialEvent(key.KeyEnter, mods)
	case tcell.KeyTab:
		return key.NewSpecialEvent(key.KeyTab, mods)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.NewSpecialEvent(key.KeyBackspace, mods)
	case tcell.KeyDelete:
		return key.NewSpecialEvent(key.KeyDelete, mods)
	case tcell.KeyInsert:
		return key.NewSpecialEvent(key.KeyInsert, mods)
	case tcell.KeyHome:
		return key.NewSpecialEvent(key.KeyHome, mods)
	case tcell.KeyEnd:
		return key.NewSpecialEvent(key.KeyEnd, mods)
	case tcell.KeyPgUp:
		return key.NewSpecialEvent(key.KeyPageUp, mods)
	case tcell.KeyPgDn:
		return key.NewSpecialEvent(key.KeyPageDown, mods)
	case tcell.KeyUp:
		return key.NewSpecialEvent(key.KeyUp, mods)
	case tcell.KeyDown:
		return key.NewSpecialEvent(key.KeyDown, mods)
	case tcell.KeyLeft:
		return key.NewSpecialEvent(key.KeyLeft, mods)
	case tcell.KeyRight:
		return key.NewSpecialEvent(key.KeyRight, mods)
	}

	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return key.NewRuneEvent('a'+rune(k-tcell.KeyCtrlA), mods.With(key.ModCtrl))
	}
	return key.NewSpecialEvent(key.KeyNone, mods)
}

// convertMod converts tcell modifier mask to our Modifier.
func convertMod(m tcell.ModMask) key.Modifier {
	var result key.Modifier
	if m&tcell.ModShift != 0 {
		result |= key.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= key.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		result |= key.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		result |= key.ModMeta
	}
	return result
}
