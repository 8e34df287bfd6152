package input

import (
	"github.com/dshills/kestrel/internal/input/key"
	"github.com/dshills/kestrel/internal/input/mode"
)

// commandMods are the modifiers a binding must match exactly.
// Shift is excluded because it is already folded into the rune.
const commandMods = key.ModCtrl | key.ModAlt | key.ModMeta

// binding is one row of a mode's classification table.
type binding struct {
	key    key.Key
	r      rune
	mods   key.Modifier
	action Action
}

func (b binding) matches(ev key.Event) bool {
	if ev.Key != b.key {
		return false
	}
	if b.key == key.KeyRune && ev.Rune != b.r {
		return false
	}
	return ev.Modifiers&commandMods == b.mods
}

func char(r rune, a Action) binding {
	return binding{key: key.KeyRune, r: r, action: a}
}

func ctrl(r rune, a Action) binding {
	return binding{key: key.KeyRune, r: r, mods: key.ModCtrl, action: a}
}

func special(k key.Key, a Action) binding {
	return binding{key: k, action: a}
}

var normalBindings = []binding{
	char('q', Simple(ActionQuit)),
	char('$', Simple(ActionMoveToLineEnd)),
	char('0', Simple(ActionMoveToLineStart)),
	char('h', Simple(ActionMoveLeft)),
	special(key.KeyLeft, Simple(ActionMoveLeft)),
	char('l', Simple(ActionMoveRight)),
	special(key.KeyRight, Simple(ActionMoveRight)),
	char('k', Simple(ActionMoveUp)),
	special(key.KeyUp, Simple(ActionMoveUp)),
	char('j', Simple(ActionMoveDown)),
	special(key.KeyDown, Simple(ActionMoveDown)),
	char('i', EnterMode(mode.Insert)),
	ctrl('f', Simple(ActionPageDown)),
	ctrl('b', Simple(ActionPageUp)),
}

var insertBindings = []binding{
	special(key.KeyEscape, EnterMode(mode.Normal)),
}

// Classify maps a key event to an action for the given mode.
// The second result is false when the event has no binding.
func Classify(m mode.Mode, ev key.Event) (Action, bool) {
	if !ev.IsPress() {
		return Action{}, false
	}

	switch m {
	case mode.Normal:
		return lookup(normalBindings, ev)
	case mode.Insert:
		if a, ok := lookup(insertBindings, ev); ok {
			return a, true
		}
		if ev.IsChar() && !ev.IsModified() {
			return AddChar(ev.Rune), true
		}
		return Action{}, false
	default:
		return Action{}, false
	}
}

func lookup(table []binding, ev key.Event) (Action, bool) {
	for _, b := range table {
		if b.matches(ev) {
			return b.action, true
		}
	}
	return Action{}, false
}
