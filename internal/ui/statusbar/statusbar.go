// Package statusbar renders the bottom status line: interaction mode,
// zoom preset selector, and keybinding hints.
package statusbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/hnakamura/ganttea/internal/gantt"
	"github.com/hnakamura/ganttea/internal/types"
	"github.com/hnakamura/ganttea/internal/ui/styles"
)

// StatusBar represents the status bar at the bottom of the TUI
type StatusBar struct {
	mode   types.Mode
	zoom   gantt.ZoomPreset
	width  int
	styles *styles.Styles
}

// New creates a new StatusBar with the given mode, zoom preset, width, and styles
func New(mode types.Mode, zoom gantt.ZoomPreset, width int, styles *styles.Styles) StatusBar {
	return StatusBar{
		mode:   mode,
		zoom:   zoom,
		width:  width,
		styles: styles,
	}
}

// Render renders the status bar as a string
func (sb StatusBar) Render() string {
	// Mode badge
	modeBadge := sb.styles.StatusMode.Render(" " + sb.mode.String() + " ")

	// Zoom preset selector, active preset highlighted
	var zoomParts []string
	for _, p := range gantt.ZoomOrder {
		if p == sb.zoom {
			zoomParts = append(zoomParts, sb.styles.ZoomActive.Render(p.Label()))
		} else {
			zoomParts = append(zoomParts, sb.styles.ZoomIdle.Render(p.Label()))
		}
	}
	zoomRendered := lipgloss.JoinHorizontal(lipgloss.Left, zoomParts...)

	// Keybinding hints
	hints := GetHints(sb.mode)

	separator := sb.styles.StatusHint.Render(" │ ")
	parts := []string{modeBadge, separator, zoomRendered}
	if hints != "" {
		parts = append(parts, separator, sb.styles.StatusHint.Render(hints))
	}
	content := lipgloss.JoinHorizontal(lipgloss.Left, parts...)

	// Apply status bar style and fill width
	return sb.styles.StatusBar.Width(sb.width).Render(content)
}
