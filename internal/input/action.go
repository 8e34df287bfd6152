package input

import (
	"fmt"

	"github.com/dshills/kestrel/internal/input/mode"
)

// ActionKind identifies what an Action asks the editor to do.
type ActionKind uint8

const (
	// ActionNone is the zero value and never produced by Classify.
	ActionNone ActionKind = iota
	ActionQuit
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionPageUp
	ActionPageDown
	ActionMoveToLineStart
	ActionMoveToLineEnd
	ActionEnterMode
	ActionAddChar
	ActionNewLine
)

// String returns a string representation of the action kind.
func (k ActionKind) String() string {
	switch k {
	case ActionQuit:
		return "quit"
	case ActionMoveUp:
		return "move_up"
	case ActionMoveDown:
		return "move_down"
	case ActionMoveLeft:
		return "move_left"
	case ActionMoveRight:
		return "move_right"
	case ActionPageUp:
		return "page_up"
	case ActionPageDown:
		return "page_down"
	case ActionMoveToLineStart:
		return "line_start"
	case ActionMoveToLineEnd:
		return "line_end"
	case ActionEnterMode:
		return "enter_mode"
	case ActionAddChar:
		return "add_char"
	case ActionNewLine:
		return "newline"
	default:
		return "none"
	}
}

// Action is a single editor intent produced by classification.
// Actions are values; they are consumed in the loop iteration that
// produced them and never stored.
type Action struct {
	Kind ActionKind

	// Mode is the target of ActionEnterMode.
	Mode mode.Mode

	// Char is the character of ActionAddChar.
	Char rune
}

// Simple returns an action that carries no payload.
func Simple(kind ActionKind) Action {
	return Action{Kind: kind}
}

// EnterMode returns an action that switches to m.
func EnterMode(m mode.Mode) Action {
	return Action{Kind: ActionEnterMode, Mode: m}
}

// AddChar returns an action that inserts r at the cursor.
func AddChar(r rune) Action {
	return Action{Kind: ActionAddChar, Char: r}
}

// String returns a string representation of the action.
func (a Action) String() string {
	switch a.Kind {
	case ActionEnterMode:
		return fmt.Sprintf("%s(%s)", a.Kind, a.Mode)
	case ActionAddChar:
		return fmt.Sprintf("%s(%q)", a.Kind, a.Char)
	default:
		return a.Kind.String()
	}
}
