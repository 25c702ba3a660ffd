package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/hnakamura/ganttea/internal/domain"
)

// Styles holds all the UI styles
type Styles struct {
	// Chart grid
	Chart         lipgloss.Style
	GridHeader    lipgloss.Style
	GridRow       lipgloss.Style
	GridRowActive lipgloss.Style
	TreeGlyph     lipgloss.Style
	TaskName      lipgloss.Style
	TaskDate      lipgloss.Style

	// Timeline cells
	Cell               lipgloss.Style
	CellWeekend        lipgloss.Style
	CellHoliday        lipgloss.Style
	CellHolidayWeekend lipgloss.Style

	// Task bars by urgency x difficulty
	BarUrgentEasy         lipgloss.Style
	BarUrgentDifficult    lipgloss.Style
	BarNotUrgentEasy      lipgloss.Style
	BarNotUrgentDifficult lipgloss.Style
	BarDefault            lipgloss.Style
	BarSelected           lipgloss.Style
	Milestone             lipgloss.Style
	ProjectBar            lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusMode lipgloss.Style
	StatusHint lipgloss.Style
	StatusInfo lipgloss.Style
	ZoomActive lipgloss.Style
	ZoomIdle   lipgloss.Style

	// Overlays
	Overlay          lipgloss.Style
	OverlayTitle     lipgloss.Style
	MenuItem         lipgloss.Style
	MenuItemActive   lipgloss.Style
	MenuItemDisabled lipgloss.Style
	MenuKey          lipgloss.Style
	Separator        lipgloss.Style
	Footer           lipgloss.Style

	// Toasts
	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastWarning lipgloss.Style
	ToastError   lipgloss.Style
}

// New creates a new Styles instance with Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		Chart: lipgloss.NewStyle().
			Background(Base),

		GridHeader: lipgloss.NewStyle().
			Foreground(Subtext0).
			Bold(true).
			Padding(0, 1),

		GridRow: lipgloss.NewStyle().
			Foreground(Text),

		GridRowActive: lipgloss.NewStyle().
			Foreground(Lavender).
			Bold(true),

		TreeGlyph: lipgloss.NewStyle().
			Foreground(Overlay1),

		TaskName: lipgloss.NewStyle().
			Foreground(Text),

		TaskDate: lipgloss.NewStyle().
			Foreground(Subtext0),

		Cell: lipgloss.NewStyle().
			Foreground(Surface2),

		CellWeekend: lipgloss.NewStyle().
			Foreground(Overlay0).
			Background(Mantle),

		CellHoliday: lipgloss.NewStyle().
			Foreground(Red).
			Background(Mantle),

		CellHolidayWeekend: lipgloss.NewStyle().
			Foreground(Maroon).
			Background(Crust),

		BarUrgentEasy: lipgloss.NewStyle().
			Foreground(Base).
			Background(Peach),

		BarUrgentDifficult: lipgloss.NewStyle().
			Foreground(Base).
			Background(Red),

		BarNotUrgentEasy: lipgloss.NewStyle().
			Foreground(Base).
			Background(Green),

		BarNotUrgentDifficult: lipgloss.NewStyle().
			Foreground(Base).
			Background(Yellow),

		BarDefault: lipgloss.NewStyle().
			Foreground(Base).
			Background(Blue),

		BarSelected: lipgloss.NewStyle().
			Foreground(Base).
			Background(Lavender).
			Bold(true),

		Milestone: lipgloss.NewStyle().
			Foreground(Mauve).
			Bold(true),

		ProjectBar: lipgloss.NewStyle().
			Foreground(Base).
			Background(Sapphire),

		StatusBar: lipgloss.NewStyle().
			Background(Surface0).
			Foreground(Subtext0).
			Padding(0, 1),

		StatusMode: lipgloss.NewStyle().
			Background(Blue).
			Foreground(Base).
			Bold(true).
			Padding(0, 1),

		StatusHint: lipgloss.NewStyle().
			Foreground(Overlay1),

		StatusInfo: lipgloss.NewStyle().
			Foreground(Subtext0),

		ZoomActive: lipgloss.NewStyle().
			Background(Lavender).
			Foreground(Base).
			Bold(true).
			Padding(0, 1),

		ZoomIdle: lipgloss.NewStyle().
			Foreground(Subtext0).
			Padding(0, 1),

		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface2).
			Background(Base).
			Padding(1, 2),

		OverlayTitle: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true).
			MarginBottom(1),

		MenuItem: lipgloss.NewStyle().
			Foreground(Text),

		MenuItemActive: lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true),

		MenuItemDisabled: lipgloss.NewStyle().
			Foreground(Overlay0),

		MenuKey: lipgloss.NewStyle().
			Foreground(Yellow).
			Bold(true),

		Separator: lipgloss.NewStyle().
			Foreground(Surface1),

		Footer: lipgloss.NewStyle().
			Foreground(Overlay0),

		ToastInfo: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Blue).
			Foreground(Blue).
			Padding(0, 1),

		ToastSuccess: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Green).
			Foreground(Green).
			Padding(0, 1),

		ToastWarning: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Yellow).
			Foreground(Yellow).
			Padding(0, 1),

		ToastError: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Red).
			Foreground(Red).
			Padding(0, 1),
	}
}

// TaskBar returns the bar style for a task's urgency/difficulty tags
func (s *Styles) TaskBar(t domain.Task) lipgloss.Style {
	switch t.StyleClass() {
	case "task_urgent_easy":
		return s.BarUrgentEasy
	case "task_urgent_difficult":
		return s.BarUrgentDifficult
	case "task_not_urgent_easy":
		return s.BarNotUrgentEasy
	case "task_not_urgent_difficult":
		return s.BarNotUrgentDifficult
	}
	if t.Kind == domain.KindProject {
		return s.ProjectBar
	}
	return s.BarDefault
}

// TimelineCell returns the cell style for a calendar cell class
func (s *Styles) TimelineCell(class string) lipgloss.Style {
	switch class {
	case "holiday":
		return s.CellHoliday
	case "holiday weekend_holiday":
		return s.CellHolidayWeekend
	case "weekend":
		return s.CellWeekend
	}
	return s.Cell
}
