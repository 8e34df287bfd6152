// Package mode provides the modal state machine for the editor.
//
// The editor has two modes:
//   - Normal: keys are commands (movement, quit, enter insert)
//   - Insert: printable keys are inserted into the buffer
//
// The Manager starts in Normal and changes mode only when told to switch.
// It performs no side effects beyond storing the new mode and notifying
// registered callbacks:
//
//	m := mode.NewManager()
//	m.OnChange(func(from, to mode.Mode) { ... })
//	m.Switch(mode.Insert)
package mode
