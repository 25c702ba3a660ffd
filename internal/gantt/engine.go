package gantt

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/hnakamura/ganttea/internal/dates"
	"github.com/hnakamura/ganttea/internal/domain"
)

// Engine owns the authoritative task list and mediates every mutation
// between user intent and the widget's rendering requirements. The widget's
// internal copy is a derived projection rebuilt after each mutation; the
// list held here is the single source of truth.
//
// All entry points are invoked from UI event callbacks, so none of them
// panic on malformed input: bad ids and unknown tasks degrade to a logged
// warning and a no-op.
type Engine struct {
	widget Widget
	tasks  []domain.Task
	labels Labels
	log    *slog.Logger

	now    func() time.Time
	closed bool
}

// TaskForm carries edited fields from the detail-editing surface. Nil
// fields were not touched by the user and keep their prior values. The
// urgency and difficulty tags are deliberately absent: they are always
// preserved from the existing record.
type TaskForm struct {
	Text      *string
	StartDate *string
	EndDate   *string
	Duration  *float64
	Progress  *float64
	Kind      *domain.Kind
}

// NewEngine builds an engine over the widget, seeds it with the initial
// list, and pushes the first render.
func NewEngine(w Widget, initial []domain.Task, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	e := &Engine{
		widget: w,
		tasks:  append([]domain.Task(nil), initial...),
		labels: DefaultLabels(),
		log:    logger,
		now:    time.Now,
	}
	w.SetLabels(e.labels)
	e.resync()
	return e
}

// SetLabels replaces the locale label set on both the engine and the widget
func (e *Engine) SetLabels(l Labels) {
	e.labels = l
	e.widget.SetLabels(l)
}

// Tasks returns a copy of the authoritative list
func (e *Engine) Tasks() []domain.Task {
	return append([]domain.Task(nil), e.tasks...)
}

// AddTask appends a fresh one-day task starting today and re-renders.
// The end date comes from the widget's own date math; if that fails the
// record still gets a usable end date from plain calendar arithmetic.
func (e *Engine) AddTask() domain.Task {
	start := e.now()
	const duration = 1

	endDate := ""
	if end, err := e.widget.CalculateEndDate(start, duration); err == nil {
		endDate = dates.Format(end)
	} else {
		e.log.Warn("widget end-date calculation failed, using calendar fallback",
			"error", err)
		endDate = dates.Format(dates.AddDays(start, duration))
	}

	task := domain.Task{
		ID:        e.widget.UID(),
		Text:      "New Task",
		StartDate: dates.Format(start),
		EndDate:   endDate,
		Duration:  duration,
		Progress:  0,
		Kind:      domain.KindTask,
		Open:      true,
	}

	e.tasks = append(e.tasks, task)
	e.resync()
	return task
}

// EditSaved merges the detail-form fields into the record at id. Fields
// the form left nil keep their prior values, and the urgency/difficulty
// tags always survive untouched. An unknown id is a no-op. The return is
// always true: the widget needs an explicit acceptance signal or it
// reverts the edit visually.
func (e *Engine) EditSaved(id string, form TaskForm, isNew bool) bool {
	idx := e.indexOf(id)
	if idx < 0 {
		e.log.Warn("edit for unknown task ignored", "task", id, "new", isNew)
		return true
	}

	t := &e.tasks[idx]
	if form.Text != nil {
		t.Text = *form.Text
	}
	if form.StartDate != nil {
		t.StartDate = *form.StartDate
	}
	if form.EndDate != nil {
		t.EndDate = *form.EndDate
	}
	if form.Duration != nil {
		t.Duration = *form.Duration
	}
	if form.Progress != nil {
		t.Progress = *form.Progress
	}
	if form.Kind != nil {
		t.Kind = *form.Kind
	}

	e.resync()
	e.widget.RefreshTask(id)
	return true
}

// RowReordered applies a finished row drag. The widget has to do the
// physical move itself (only it knows its live tree), after which its
// serialization becomes the new ordering. The widget's dump does not carry
// the custom tags, so they are re-attached from the pre-move list by id.
// Cross-parent drags reparent unconditionally. Returns true so the widget
// skips its own default reorder handling.
func (e *Engine) RowReordered(draggedID, targetParentID string, targetIndex int) bool {
	if err := e.widget.MoveTask(draggedID, targetIndex, targetParentID); err != nil {
		e.log.Warn("row move rejected by widget", "task", draggedID,
			"parent", targetParentID, "index", targetIndex, "error", err)
		return true
	}

	prior := make(map[string]domain.Task, len(e.tasks))
	for _, t := range e.tasks {
		if _, seen := prior[t.ID]; !seen {
			prior[t.ID] = t
		}
	}

	serialized := e.widget.Serialize()
	rebuilt := make([]domain.Task, 0, len(serialized))
	for _, t := range serialized {
		if old, ok := prior[t.ID]; ok {
			t.Urgency = old.Urgency
			t.Difficulty = old.Difficulty
		}
		rebuilt = append(rebuilt, t)
	}

	e.tasks = rebuilt
	e.resync()
	return true
}

// DeleteRequested surfaces a yes/no prompt for the task and, on
// confirmation, removes it from both the authoritative list and the
// widget's live model. If the widget no longer knows the id by the time
// the user confirms, nothing changes and the widget delete is not called.
func (e *Engine) DeleteRequested(id string) {
	label := id
	if t, ok := e.widget.Task(id); ok && t.Text != "" {
		label = t.Text
	}

	e.widget.Confirm(ConfirmRequest{
		Title: e.labels.ConfirmDeletingTitle,
		Text:  fmt.Sprintf(e.labels.ConfirmDeleting, label),
		Callback: func(confirmed bool) {
			if !confirmed {
				return
			}
			e.deleteConfirmed(id)
		},
	})
}

func (e *Engine) deleteConfirmed(id string) {
	if !e.widget.TaskExists(id) {
		e.log.Warn("delete skipped, task no longer exists in widget", "task", id)
		return
	}

	kept := e.tasks[:0]
	for _, t := range e.tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	e.tasks = kept

	if err := e.widget.DeleteTask(id); err != nil {
		e.log.Warn("widget delete failed", "task", id, "error", err)
	}
	e.resync()
}

// TaskDragged folds a finished bar drag/resize back into the list. The
// widget's live model is the only party that knows the committed schedule,
// so the record's dates and duration are read from it; everything else on
// the record is preserved. A task the widget does not know is a no-op.
func (e *Engine) TaskDragged(id string, mode DragMode) {
	dragged, ok := e.widget.Task(id)
	if !ok {
		e.log.Warn("drag finished for unknown task", "task", id, "mode", mode)
		return
	}

	idx := e.indexOf(id)
	if idx < 0 {
		e.log.Warn("dragged task missing from authoritative list", "task", id)
		return
	}

	e.tasks[idx].StartDate = dragged.StartDate
	e.tasks[idx].EndDate = dragged.EndDate
	e.tasks[idx].Duration = dragged.Duration

	e.resync()
	e.widget.RefreshTask(id)
}

// Replace swaps in an entirely new authoritative list (the import path)
// and re-renders. No merging happens; omitted tasks are gone.
func (e *Engine) Replace(tasks []domain.Task) {
	e.tasks = append([]domain.Task(nil), tasks...)
	e.resync()
}

// Close tears the widget down. The widget instance is a single-owner
// resource; clearing it here keeps listeners from leaking across remounts.
func (e *Engine) Close() {
	if e.closed {
		return
	}
	e.closed = true
	e.widget.ClearAll()
}

func (e *Engine) indexOf(id string) int {
	for i := range e.tasks {
		if e.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// resync rebuilds the widget's internal copy from the authoritative list.
// Every record is pushed with an explicit kind so the widget never has to
// infer one from the id.
func (e *Engine) resync() {
	typed := make([]domain.Task, len(e.tasks))
	copy(typed, e.tasks)
	for i := range typed {
		if typed[i].Kind == "" {
			typed[i].Kind = domain.KindTask
		}
	}
	e.widget.ClearAll()
	e.widget.Parse(typed)
}
