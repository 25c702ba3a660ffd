// Package gantt holds the chart synchronization core: the capability
// interface the rendering widget must satisfy, the engine that owns the
// authoritative task list, and the timeline zoom presets.
package gantt

import (
	"time"

	"github.com/hnakamura/ganttea/internal/domain"
)

// DragMode names the kind of in-place drag the widget finished
type DragMode string

const (
	DragMove     DragMode = "move"
	DragResize   DragMode = "resize"
	DragProgress DragMode = "progress"
)

// Scale describes one row of the timeline's time axis
type Scale struct {
	Unit   string // "day", "week", "month", "year"
	Step   int
	Format string
}

// Labels carries locale overrides for widget chrome. Zero-valued fields
// keep the widget's built-in wording.
type Labels struct {
	Save                 string
	Cancel               string
	Delete               string
	SectionDescription   string
	SectionTime          string
	ConfirmDeletingTitle string
	ConfirmDeleting      string // format string, receives the task label
	OK                   string
	CancelButton         string
}

// DefaultLabels returns the Japanese label set the application ships with
func DefaultLabels() Labels {
	return Labels{
		Save:                 "保存",
		Cancel:               "キャンセル",
		Delete:               "削除",
		SectionDescription:   "説明",
		SectionTime:          "期間",
		ConfirmDeletingTitle: "削除の確認",
		ConfirmDeleting:      "「%s」を削除しますか？",
		OK:                   "OK",
		CancelButton:         "Cancel",
	}
}

// ConfirmRequest is a yes/no prompt routed through the widget's
// confirmation facility. Callback fires exactly once with the answer.
type ConfirmRequest struct {
	Title    string
	Text     string
	Callback func(confirmed bool)
}

// Widget is the capability surface the engine needs from a scheduling
// chart. The engine treats the widget's internal task copy as disposable:
// it is rebuilt from the authoritative list after every mutation, and read
// back only where the widget alone knows the just-committed interactive
// result (Serialize after a row reorder, Task after a bar drag).
type Widget interface {
	// Parse replaces the widget's internal task copy and re-renders
	Parse(tasks []domain.Task)
	// Render redraws the visual layout without re-reading task data
	Render()
	// ClearAll drops the widget's internal state
	ClearAll()

	// Task looks up a single task in the widget's live model
	Task(id string) (domain.Task, bool)
	// TaskExists reports whether the id is still known to the live model
	TaskExists(id string) bool
	// RefreshTask redraws a single row
	RefreshTask(id string)
	// MoveTask physically relocates a node to index under parentID
	MoveTask(id string, index int, parentID string) error
	// DeleteTask removes a node from the live model
	DeleteTask(id string) error
	// Serialize dumps the live tree in display order
	Serialize() []domain.Task

	// UID generates a fresh unique task id
	UID() string
	// CalculateEndDate computes start + duration in calendar days
	CalculateEndDate(start time.Time, duration float64) (time.Time, error)

	// Confirm shows a yes/no prompt with custom text
	Confirm(req ConfirmRequest)

	// SetScales swaps the time-axis configuration
	SetScales(scales []Scale, minColumnWidth int)
	// SetLabels applies locale label overrides
	SetLabels(labels Labels)
}

// Handlers is what the widget calls back into when the user interacts
// with it. The engine implements this; the chart receives it at
// construction time, so row affordances like the delete button invoke a
// typed callback instead of ambient global state.
type Handlers interface {
	// TaskDragged fires after an in-place drag/resize of a single bar
	TaskDragged(id string, mode DragMode)
	// RowReordered fires when a row drag ends. draggedID moved to
	// targetIndex under targetParentID. A true return tells the widget
	// the change is already applied and default handling must be skipped.
	RowReordered(draggedID, targetParentID string, targetIndex int) bool
	// EditSaved fires when the detail form is accepted. The widget
	// reverts the edit visually unless the handler answers true.
	EditSaved(id string, form TaskForm, isNew bool) bool
	// DeleteRequested fires from the per-row delete affordance
	DeleteRequested(id string)
}
