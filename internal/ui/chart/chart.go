// Package chart renders the task tree and timeline grid in the terminal.
// It is the concrete implementation of the capability surface the sync
// engine drives; its task copy is disposable and rebuilt on every Parse.
package chart

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hnakamura/ganttea/internal/calendar"
	"github.com/hnakamura/ganttea/internal/dates"
	"github.com/hnakamura/ganttea/internal/domain"
	"github.com/hnakamura/ganttea/internal/gantt"
	"github.com/hnakamura/ganttea/internal/ui/styles"
)

// Model holds the chart's live task copy and view state
type Model struct {
	byID     map[string]domain.Task
	children map[string][]string // parent id -> ordered child ids

	scales      []gantt.Scale
	minColWidth int
	labels      gantt.Labels

	cal       *calendar.Calendar
	styles    *styles.Styles
	confirmFn func(gantt.ConfirmRequest)
	log       *slog.Logger

	cursor       int
	width        int
	height       int
	nameColWidth int
	dateColWidth int
}

// New creates an empty chart. confirmFn receives yes/no prompts; the app
// routes them to a modal overlay.
func New(s *styles.Styles, cal *calendar.Calendar, confirmFn func(gantt.ConfirmRequest), logger *slog.Logger) *Model {
	if logger == nil {
		logger = slog.Default()
	}
	return &Model{
		byID:        make(map[string]domain.Task),
		children:    make(map[string][]string),
		labels:      gantt.DefaultLabels(),
		minColWidth: 100,
		cal:         cal,
		styles:      s,
		confirmFn:   confirmFn,
		log:         logger,
	}
}

// SetSize records the drawable area
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Parse replaces the live task copy with the given list. Order within a
// parent follows list order; unknown parents fall back to the root.
func (m *Model) Parse(tasks []domain.Task) {
	m.byID = make(map[string]domain.Task, len(tasks))
	m.children = make(map[string][]string)
	ids := make(map[string]struct{}, len(tasks))
	for _, t := range tasks {
		ids[t.ID] = struct{}{}
	}
	for _, t := range tasks {
		if _, dup := m.byID[t.ID]; dup {
			m.log.Warn("duplicate task id in parse, keeping first", "id", t.ID)
			continue
		}
		parent := t.Parent
		if !t.HasParent() {
			parent = domain.RootID
			t.Parent = ""
		} else if _, ok := ids[parent]; !ok {
			m.log.Warn("task references unknown parent, attaching to root", "id", t.ID, "parent", parent)
			parent = domain.RootID
			t.Parent = ""
		}
		m.byID[t.ID] = t
		m.children[parent] = append(m.children[parent], t.ID)
	}
	m.clampCursor()
}

// Render is a no-op for the terminal chart: the frame is rebuilt from the
// live model on every View call.
func (m *Model) Render() {}

// ClearAll drops the live task copy
func (m *Model) ClearAll() {
	m.byID = make(map[string]domain.Task)
	m.children = make(map[string][]string)
	m.cursor = 0
}

// Task looks up a single task in the live model
func (m *Model) Task(id string) (domain.Task, bool) {
	t, ok := m.byID[id]
	return t, ok
}

// TaskExists reports whether the id is known to the live model
func (m *Model) TaskExists(id string) bool {
	_, ok := m.byID[id]
	return ok
}

// RefreshTask is a no-op for the terminal chart, kept for parity with
// Render: single rows are not cached separately.
func (m *Model) RefreshTask(id string) {}

// MoveTask relocates a node to index under parentID. Children follow their
// parent. Moving a node under itself or one of its descendants is refused.
func (m *Model) MoveTask(id string, index int, parentID string) error {
	if _, ok := m.byID[id]; !ok {
		return &domain.WidgetError{Op: "move", TaskID: id, Err: domain.ErrNotFound}
	}
	if parentID == "" {
		parentID = domain.RootID
	}
	if parentID != domain.RootID {
		if _, ok := m.byID[parentID]; !ok {
			return &domain.WidgetError{Op: "move", TaskID: id, Err: fmt.Errorf("target parent %q: %w", parentID, domain.ErrNotFound)}
		}
		if m.isDescendant(parentID, id) || parentID == id {
			return &domain.WidgetError{Op: "move", TaskID: id, Err: fmt.Errorf("target parent %q is inside the moved subtree", parentID)}
		}
	}

	t := m.byID[id]
	oldParent := t.Parent
	if !t.HasParent() {
		oldParent = domain.RootID
	}
	m.children[oldParent] = removeID(m.children[oldParent], id)

	siblings := m.children[parentID]
	if index < 0 {
		index = 0
	}
	if index > len(siblings) {
		index = len(siblings)
	}
	siblings = append(siblings, "")
	copy(siblings[index+1:], siblings[index:])
	siblings[index] = id
	m.children[parentID] = siblings

	if parentID == domain.RootID {
		t.Parent = ""
	} else {
		t.Parent = parentID
	}
	m.byID[id] = t
	return nil
}

// DeleteTask removes a node and its whole subtree from the live model
func (m *Model) DeleteTask(id string) error {
	t, ok := m.byID[id]
	if !ok {
		return &domain.WidgetError{Op: "delete", TaskID: id, Err: domain.ErrNotFound}
	}
	parent := t.Parent
	if !t.HasParent() {
		parent = domain.RootID
	}
	m.children[parent] = removeID(m.children[parent], id)
	m.deleteSubtree(id)
	m.clampCursor()
	return nil
}

func (m *Model) deleteSubtree(id string) {
	for _, child := range m.children[id] {
		m.deleteSubtree(child)
	}
	delete(m.children, id)
	delete(m.byID, id)
}

// Serialize dumps the live tree in display order, parents before children
func (m *Model) Serialize() []domain.Task {
	out := make([]domain.Task, 0, len(m.byID))
	m.walk(domain.RootID, func(t domain.Task, depth int) {
		out = append(out, t)
	})
	return out
}

// UID generates a fresh unique task id
func (m *Model) UID() string {
	return uuid.NewString()
}

// CalculateEndDate computes start + duration in calendar days. Fractional
// durations round toward zero, matching how bars are laid out on the grid.
func (m *Model) CalculateEndDate(start time.Time, duration float64) (time.Time, error) {
	if duration < 0 {
		return time.Time{}, &domain.WidgetError{Op: "calculate_end_date", Err: fmt.Errorf("negative duration %v", duration)}
	}
	return dates.AddDays(start, int(duration)), nil
}

// Confirm routes a yes/no prompt to the app's modal layer. Without a
// confirmer the prompt is answered no, so destructive actions stay safe.
func (m *Model) Confirm(req gantt.ConfirmRequest) {
	if m.confirmFn == nil {
		m.log.Warn("confirm requested without a confirmer, answering no", "title", req.Title)
		if req.Callback != nil {
			req.Callback(false)
		}
		return
	}
	m.confirmFn(req)
}

// SetScales swaps the time-axis configuration
func (m *Model) SetScales(scales []gantt.Scale, minColumnWidth int) {
	m.scales = scales
	m.minColWidth = minColumnWidth
}

// SetLabels applies locale label overrides
func (m *Model) SetLabels(labels gantt.Labels) {
	m.labels = labels
}

// Row pairs a task with its tree depth for rendering and cursor math
type Row struct {
	Task  domain.Task
	Depth int
}

// Rows returns the visible rows in display order. Children of a closed
// branch are skipped.
func (m *Model) Rows() []Row {
	var rows []Row
	m.walkVisible(domain.RootID, 0, &rows)
	return rows
}

func (m *Model) walkVisible(parent string, depth int, rows *[]Row) {
	for _, id := range m.children[parent] {
		t := m.byID[id]
		*rows = append(*rows, Row{Task: t, Depth: depth})
		if t.Open {
			m.walkVisible(id, depth+1, rows)
		}
	}
}

func (m *Model) walk(parent string, fn func(domain.Task, int)) {
	var rec func(string, int)
	rec = func(p string, depth int) {
		for _, id := range m.children[p] {
			fn(m.byID[id], depth)
			rec(id, depth+1)
		}
	}
	rec(parent, 0)
}

// CursorUp moves the selection one visible row up
func (m *Model) CursorUp() {
	if m.cursor > 0 {
		m.cursor--
	}
}

// CursorDown moves the selection one visible row down
func (m *Model) CursorDown() {
	if m.cursor < len(m.Rows())-1 {
		m.cursor++
	}
}

// SelectedID returns the id under the cursor
func (m *Model) SelectedID() (string, bool) {
	rows := m.Rows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return "", false
	}
	return rows[m.cursor].Task.ID, true
}

// Position reports a task's parent id and index among its siblings
func (m *Model) Position(id string) (parentID string, index int, ok bool) {
	t, found := m.byID[id]
	if !found {
		return "", 0, false
	}
	parentID = domain.RootID
	if t.HasParent() {
		parentID = t.Parent
	}
	for i, sib := range m.children[parentID] {
		if sib == id {
			return parentID, i, true
		}
	}
	return "", 0, false
}

// SiblingBefore returns the id of the sibling directly above the task
func (m *Model) SiblingBefore(id string) (string, bool) {
	parent, idx, ok := m.Position(id)
	if !ok || idx == 0 {
		return "", false
	}
	return m.children[parent][idx-1], true
}

// ChildCount returns the number of direct children of the task
func (m *Model) ChildCount(id string) int {
	return len(m.children[id])
}

// ShiftTask slides a bar whole by the given number of days, keeping the
// duration. This mutates the live model only; the caller reports the drag
// through the handler so the authoritative list catches up.
func (m *Model) ShiftTask(id string, days int) bool {
	t, ok := m.byID[id]
	if !ok {
		return false
	}
	start, err := dates.Parse(t.StartDate)
	if err != nil {
		return false
	}
	t.StartDate = dates.Format(dates.AddDays(start, days))
	if t.EndDate != "" {
		if end, err := dates.Parse(t.EndDate); err == nil {
			t.EndDate = dates.Format(dates.AddDays(end, days))
		}
	}
	m.byID[id] = t
	return true
}

// ResizeTask grows or shrinks a bar by the given number of days. The
// duration never drops below one day.
func (m *Model) ResizeTask(id string, days int) bool {
	t, ok := m.byID[id]
	if !ok {
		return false
	}
	d := t.Duration + float64(days)
	if d < 1 {
		d = 1
	}
	t.Duration = d
	if start, err := dates.Parse(t.StartDate); err == nil {
		t.EndDate = dates.Format(dates.AddDays(start, int(d)))
	}
	m.byID[id] = t
	return true
}

// AdjustProgress nudges completion by delta, clamped to [0, 1]
func (m *Model) AdjustProgress(id string, delta float64) bool {
	t, ok := m.byID[id]
	if !ok {
		return false
	}
	p := t.Progress + delta
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	t.Progress = p
	m.byID[id] = t
	return true
}

// ToggleOpen flips the branch state of the task under the cursor
func (m *Model) ToggleOpen() {
	id, ok := m.SelectedID()
	if !ok {
		return
	}
	t := m.byID[id]
	if len(m.children[id]) == 0 {
		return
	}
	t.Open = !t.Open
	m.byID[id] = t
}

// Empty reports whether the live model holds no tasks
func (m *Model) Empty() bool {
	return len(m.byID) == 0
}

func (m *Model) isDescendant(id, ancestor string) bool {
	for _, child := range m.children[ancestor] {
		if child == id || m.isDescendant(id, child) {
			return true
		}
	}
	return false
}

func (m *Model) clampCursor() {
	if n := len(m.Rows()); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func removeID(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
