// Package overlay provides the modal surfaces drawn over the chart: the
// task detail form, the delete confirmation, the import prompt, and the
// keybinding help. While an overlay is open it owns keyboard input.
package overlay

import tea "github.com/charmbracelet/bubbletea"

// Overlay is a modal component the app centers over the chart
type Overlay interface {
	tea.Model
	Title() string
	Size() (width, height int)
}

// CloseOverlayMsg dismisses the topmost overlay
type CloseOverlayMsg struct{}

// SelectionMsg carries an overlay's outcome back to the app, e.g. the
// answer of a confirmation dialog.
type SelectionMsg struct {
	Key   string
	Value any
}
