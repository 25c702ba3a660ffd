// Package types contains shared types used across the application.
package types

// Mode represents the current interaction mode
type Mode int

const (
	// ModeNormal is chart navigation and direct task manipulation
	ModeNormal Mode = iota
	// ModeDialog means a modal overlay (edit form, confirm, import) owns input
	ModeDialog
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeDialog:
		return "DIALOG"
	default:
		return "UNKNOWN"
	}
}
