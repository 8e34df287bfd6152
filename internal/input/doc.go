// Package input turns key events into editor actions.
//
// Classification is a pure function of the current mode and one key event:
//
//	action, ok := input.Classify(mode.Normal, key.NewRuneEvent('j', key.ModNone))
//	// action.Kind == input.ActionMoveDown, ok == true
//
// Each mode has its own binding table, searched top to bottom; the first
// matching row wins. Unbound keys, non-press events and unknown modes all
// yield no action. Classification never fails.
package input
