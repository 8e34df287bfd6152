package key

import (
	"strings"
	"unicode"
)

// Kind distinguishes key presses from repeat and release notifications.
type Kind uint8

const (
	// KindPress is an initial key press.
	KindPress Kind = iota
	// KindRepeat is an auto-repeat of a held key.
	KindRepeat
	// KindRelease is a key release.
	KindRelease
)

// Event represents a single key event.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier

	// Kind is press, repeat or release. The zero value is a press.
	Kind Kind
}

// NewRuneEvent creates a key press event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates a key press event for a special key.
func NewSpecialEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Modifiers: mods}
}

// IsPress returns true for initial key presses.
func (e Event) IsPress() bool {
	return e.Kind == KindPress
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true if this is a printable character.
func (e Event) IsChar() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune)
}

// IsModified returns true if any modifier is pressed.
// For character events, Shift alone is not considered modified
// (since Shift changes the character itself).
func (e Event) IsModified() bool {
	if e.IsRune() {
		return e.Modifiers&(ModCtrl|ModAlt|ModMeta) != 0
	}
	return e.Modifiers != ModNone
}

// String returns a Vim-like representation, e.g. "a", "C-f", "Esc".
func (e Event) String() string {
	var parts []string
	if e.Modifiers.HasCtrl() {
		parts = append(parts, "C")
	}
	if e.Modifiers.HasAlt() {
		parts = append(parts, "A")
	}
	if e.Modifiers.HasMeta() {
		parts = append(parts, "M")
	}
	if e.Modifiers.Has(ModShift) && !e.IsRune() {
		parts = append(parts, "S")
	}

	var name string
	switch e.Key {
	case KeyRune:
		if e.Rune == ' ' {
			name = "Space"
		} else {
			name = string(e.Rune)
		}
	case KeyEscape:
		name = "Esc"
	case KeyBackspace:
		name = "BS"
	case KeyPageUp:
		name = "PgUp"
	case KeyPageDown:
		name = "PgDn"
	default:
		name = e.Key.String()
	}
	return strings.Join(append(parts, name), "-")
}
