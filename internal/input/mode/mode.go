package mode

import "fmt"

// Mode is an editing mode.
type Mode uint8

const (
	// Normal is the command mode the editor starts in.
	Normal Mode = iota

	// Insert is the text entry mode.
	Insert
)

// Name returns the lowercase mode identifier (e.g., "normal", "insert").
func (m Mode) Name() string {
	switch m {
	case Normal:
		return "normal"
	case Insert:
		return "insert"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// DisplayName returns the uppercase name shown in the status line.
func (m Mode) DisplayName() string {
	switch m {
	case Normal:
		return "NORMAL"
	case Insert:
		return "INSERT"
	default:
		return "UNKNOWN"
	}
}

// String implements fmt.Stringer.
func (m Mode) String() string {
	return m.Name()
}

