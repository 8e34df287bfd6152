// Package key provides the key event types consumed by the input classifier.
//
// A key Event identifies a key (a special key or KeyRune with a character),
// the active modifiers, and the event Kind. Only KindPress events are ever
// turned into editor actions; repeats and releases are reported so that
// backends which distinguish them can pass them through unchanged.
package key
