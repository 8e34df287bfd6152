package mode

// ChangeCallback is called after the mode changes.
type ChangeCallback func(from, to Mode)

// Manager holds the current editing mode.
//
// Manager is not safe for concurrent use; it is owned by the session loop.
type Manager struct {
	current Mode

	// callbacks are notified on mode changes; nil entries are unregistered.
	callbacks []ChangeCallback
}

// NewManager creates a manager in Normal mode.
func NewManager() *Manager {
	return &Manager{current: Normal}
}

// Current returns the current mode.
func (m *Manager) Current() Mode {
	return m.current
}

// Switch sets the current mode unconditionally.
// Callbacks run only when the mode actually changes.
func (m *Manager) Switch(to Mode) {
	from := m.current
	m.current = to
	if from == to {
		return
	}
	for _, cb := range m.callbacks {
		if cb != nil {
			cb(from, to)
		}
	}
}

// OnChange registers a callback for mode changes.
// Returns a function to unregister the callback.
func (m *Manager) OnChange(callback ChangeCallback) func() {
	m.callbacks = append(m.callbacks, callback)
	index := len(m.callbacks) - 1

	return func() {
		if index < len(m.callbacks) {
			m.callbacks[index] = nil
		}
	}
}
