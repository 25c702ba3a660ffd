package chart

import (
	"errors"
	"testing"
	"time"

	"github.com/hnakamura/ganttea/internal/calendar"
	"github.com/hnakamura/ganttea/internal/domain"
	"github.com/hnakamura/ganttea/internal/gantt"
	"github.com/hnakamura/ganttea/internal/ui/styles"
)

func newTestChart() *Model {
	return New(styles.New(), calendar.New(), nil, nil)
}

func sampleTasks() []domain.Task {
	return []domain.Task{
		{ID: "1", Text: "設計", StartDate: "2024-04-01", Duration: 3, Kind: domain.KindProject, Open: true},
		{ID: "2", Text: "実装", StartDate: "2024-04-01", Duration: 2, Parent: "1", Kind: domain.KindTask, Open: true},
		{ID: "3", Text: "レビュー", StartDate: "2024-04-03", Duration: 1, Parent: "1", Kind: domain.KindTask, Open: true},
		{ID: "4", Text: "リリース", StartDate: "2024-04-05", Kind: domain.KindMilestone, Open: true},
	}
}

func TestParseAndSerialize(t *testing.T) {
	m := newTestChart()
	m.Parse(sampleTasks())

	got := m.Serialize()
	if len(got) != 4 {
		t.Fatalf("Serialize returned %d tasks, want 4", len(got))
	}
	wantOrder := []string{"1", "2", "3", "4"}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Errorf("position %d: got id %q, want %q", i, got[i].ID, id)
		}
	}
}

func TestParseUnknownParentAttachesToRoot(t *testing.T) {
	m := newTestChart()
	m.Parse([]domain.Task{
		{ID: "a", Text: "orphan", StartDate: "2024-04-01", Parent: "missing", Open: true},
	})

	got, ok := m.Task("a")
	if !ok {
		t.Fatal("task not found after Parse")
	}
	if got.HasParent() {
		t.Errorf("orphan parent = %q, want root", got.Parent)
	}
}

func TestParseDuplicateIDKeepsFirst(t *testing.T) {
	m := newTestChart()
	m.Parse([]domain.Task{
		{ID: "x", Text: "first", StartDate: "2024-04-01", Open: true},
		{ID: "x", Text: "second", StartDate: "2024-04-02", Open: true},
	})

	got, _ := m.Task("x")
	if got.Text != "first" {
		t.Errorf("kept %q, want the first occurrence", got.Text)
	}
	if n := len(m.Serialize()); n != 1 {
		t.Errorf("Serialize returned %d tasks, want 1", n)
	}
}

func TestMoveTaskReorder(t *testing.T) {
	m := newTestChart()
	m.Parse(sampleTasks())

	// Move レビュー before 実装 inside the same parent
	if err := m.MoveTask("3", 0, "1"); err != nil {
		t.Fatalf("MoveTask: %v", err)
	}
	got := m.Serialize()
	if got[1].ID != "3" || got[2].ID != "2" {
		t.Errorf("order after move = [%s %s], want [3 2]", got[1].ID, got[2].ID)
	}
}

func TestMoveTaskReparent(t *testing.T) {
	m := newTestChart()
	m.Parse(sampleTasks())

	if err := m.MoveTask("4", 0, "1"); err != nil {
		t.Fatalf("MoveTask: %v", err)
	}
	got, _ := m.Task("4")
	if got.Parent != "1" {
		t.Errorf("parent = %q, want %q", got.Parent, "1")
	}
	parent, idx, ok := m.Position("4")
	if !ok || parent != "1" || idx != 0 {
		t.Errorf("Position = (%s, %d, %v), want (1, 0, true)", parent, idx, ok)
	}
}

func TestMoveTaskToRoot(t *testing.T) {
	m := newTestChart()
	m.Parse(sampleTasks())

	if err := m.MoveTask("2", 0, domain.RootID); err != nil {
		t.Fatalf("MoveTask: %v", err)
	}
	got, _ := m.Task("2")
	if got.HasParent() {
		t.Errorf("parent = %q, want root", got.Parent)
	}
	if first := m.Serialize()[0].ID; first != "2" {
		t.Errorf("first root task = %q, want 2", first)
	}
}

func TestMoveTaskErrors(t *testing.T) {
	m := newTestChart()
	m.Parse(sampleTasks())

	tests := []struct {
		name   string
		id     string
		parent string
	}{
		{"unknown task", "nope", "1"},
		{"unknown parent", "2", "nope"},
		{"under itself", "1", "1"},
		{"under own descendant", "1", "2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := m.MoveTask(tt.id, 0, tt.parent); err == nil {
				t.Error("expected an error")
			}
		})
	}

	// List is intact after the failed moves
	if n := len(m.Serialize()); n != 4 {
		t.Errorf("Serialize returned %d tasks after failed moves, want 4", n)
	}
}

func TestDeleteTaskRemovesSubtree(t *testing.T) {
	m := newTestChart()
	m.Parse(sampleTasks())

	if err := m.DeleteTask("1"); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
	for _, id := range []string{"1", "2", "3"} {
		if m.TaskExists(id) {
			t.Errorf("task %s still exists after subtree delete", id)
		}
	}
	if !m.TaskExists("4") {
		t.Error("unrelated task was deleted")
	}
}

func TestDeleteTaskUnknown(t *testing.T) {
	m := newTestChart()
	m.Parse(sampleTasks())

	err := m.DeleteTask("nope")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestUID(t *testing.T) {
	m := newTestChart()
	a, b := m.UID(), m.UID()
	if a == "" || b == "" {
		t.Fatal("UID returned an empty id")
	}
	if a == b {
		t.Error("UID returned the same id twice")
	}
}

func TestCalculateEndDate(t *testing.T) {
	m := newTestChart()
	start := time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC)

	got, err := m.CalculateEndDate(start, 1)
	if err != nil {
		t.Fatalf("CalculateEndDate: %v", err)
	}
	if want := time.Date(2024, 4, 11, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	if _, err := m.CalculateEndDate(start, -1); err == nil {
		t.Error("negative duration should error")
	}
}

func TestConfirmWithoutConfirmerAnswersNo(t *testing.T) {
	m := newTestChart()
	answered := false
	confirmed := true
	m.Confirm(gantt.ConfirmRequest{
		Title: "削除の確認",
		Text:  "「設計」を削除しますか？",
		Callback: func(ok bool) {
			answered = true
			confirmed = ok
		},
	})
	if !answered {
		t.Fatal("callback never fired")
	}
	if confirmed {
		t.Error("missing confirmer must answer no")
	}
}

func TestCursorNavigation(t *testing.T) {
	m := newTestChart()
	m.Parse(sampleTasks())

	if id, _ := m.SelectedID(); id != "1" {
		t.Errorf("initial selection = %q, want 1", id)
	}
	m.CursorDown()
	m.CursorDown()
	if id, _ := m.SelectedID(); id != "3" {
		t.Errorf("selection after two downs = %q, want 3", id)
	}
	m.CursorDown()
	m.CursorDown() // clamped at the last row
	if id, _ := m.SelectedID(); id != "4" {
		t.Errorf("selection at bottom = %q, want 4", id)
	}
	m.CursorUp()
	if id, _ := m.SelectedID(); id != "3" {
		t.Errorf("selection after up = %q, want 3", id)
	}
}

func TestToggleOpenHidesChildren(t *testing.T) {
	m := newTestChart()
	m.Parse(sampleTasks())

	if n := len(m.Rows()); n != 4 {
		t.Fatalf("visible rows = %d, want 4", n)
	}
	m.ToggleOpen() // cursor starts on the project row
	if n := len(m.Rows()); n != 2 {
		t.Errorf("visible rows after closing branch = %d, want 2", n)
	}
	m.ToggleOpen()
	if n := len(m.Rows()); n != 4 {
		t.Errorf("visible rows after reopening = %d, want 4", n)
	}
}

func TestViewRendersSomething(t *testing.T) {
	m := newTestChart()
	m.SetSize(120, 30)
	m.SetScales(gantt.ZoomDay.Scales(), gantt.ZoomDay.MinColumnWidth())
	m.Parse(sampleTasks())

	out := m.View()
	if out == "" {
		t.Fatal("View returned an empty frame")
	}
}

func TestViewEmptyChart(t *testing.T) {
	m := newTestChart()
	m.SetSize(80, 24)
	if out := m.View(); out == "" {
		t.Fatal("empty chart should still render a placeholder")
	}
}

func TestFormatScaleLabel(t *testing.T) {
	d := time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC) // a Wednesday

	tests := []struct {
		format string
		want   string
	}{
		{"%F, %Y", "April, 2024"},
		{"%j, %D", "10, Wed"},
		{"Week #%W", "Week #15"},
		{"%Y", "2024"},
		{"%F", "April"},
		{"%d/%m/%y", "10/04/24"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			if got := formatScaleLabel(d, tt.format); got != tt.want {
				t.Errorf("formatScaleLabel(%q) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}
