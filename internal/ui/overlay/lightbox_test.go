package overlay

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hnakamura/ganttea/internal/domain"
	"github.com/hnakamura/ganttea/internal/gantt"
)

func editableTask() domain.Task {
	return domain.Task{
		ID:        "42",
		Text:      "資料作成",
		StartDate: "2024-04-01",
		Duration:  3,
		Progress:  0.5,
		Kind:      domain.KindTask,
	}
}

// collectMsgs runs the commands a lightbox update produced and gathers
// every message, flattening batches.
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collectMsgs(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestLightboxPrefillsTask(t *testing.T) {
	lb := NewLightbox(editableTask(), false, gantt.DefaultLabels())

	if got := lb.text.Value(); got != "資料作成" {
		t.Errorf("text = %q, want 資料作成", got)
	}
	if got := lb.start.Value(); got != "2024-04-01" {
		t.Errorf("start = %q", got)
	}
	if got := lb.duration.Value(); got != "3" {
		t.Errorf("duration = %q, want 3", got)
	}
}

func TestLightboxSubmitEmitsForm(t *testing.T) {
	lb := NewLightbox(editableTask(), false, gantt.DefaultLabels())

	_, cmd := lb.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	msgs := collectMsgs(cmd)

	var saved *LightboxSavedMsg
	closed := false
	for _, m := range msgs {
		switch m := m.(type) {
		case LightboxSavedMsg:
			saved = &m
		case CloseOverlayMsg:
			closed = true
		}
	}
	if saved == nil {
		t.Fatal("no LightboxSavedMsg emitted")
	}
	if !closed {
		t.Error("overlay did not close after save")
	}
	if saved.ID != "42" || saved.IsNew {
		t.Errorf("saved = {ID:%s IsNew:%v}, want {42 false}", saved.ID, saved.IsNew)
	}
	if saved.Form.Text == nil || *saved.Form.Text != "資料作成" {
		t.Error("form text missing")
	}
	if saved.Form.Duration == nil || *saved.Form.Duration != 3 {
		t.Error("form duration missing")
	}
}

func TestLightboxSubmitRecomputesEndDate(t *testing.T) {
	task := domain.Task{
		ID:        "7",
		Text:      "資料作成",
		StartDate: "2024-01-01",
		EndDate:   "2024-01-10",
		Duration:  9,
		Kind:      domain.KindTask,
	}
	lb := NewLightbox(task, false, gantt.DefaultLabels())
	lb.duration.SetValue("2")

	msgs := collectMsgs(lb.submit())

	var saved *LightboxSavedMsg
	for _, m := range msgs {
		if s, ok := m.(LightboxSavedMsg); ok {
			saved = &s
		}
	}
	if saved == nil {
		t.Fatal("no LightboxSavedMsg emitted")
	}
	if saved.Form.Duration == nil || *saved.Form.Duration != 2 {
		t.Fatal("form duration missing")
	}
	if saved.Form.EndDate == nil {
		t.Fatal("form end date missing, stored end would go stale")
	}
	if got := *saved.Form.EndDate; got != "2024-01-03" {
		t.Errorf("end date = %q, want 2024-01-03", got)
	}
}

func TestLightboxSubmitSkipsEndDateWithoutStart(t *testing.T) {
	lb := NewLightbox(editableTask(), false, gantt.DefaultLabels())
	lb.start.SetValue("")

	msgs := collectMsgs(lb.submit())

	for _, m := range msgs {
		if s, ok := m.(LightboxSavedMsg); ok {
			if s.Form.StartDate != nil {
				t.Error("cleared start must not be submitted")
			}
			if s.Form.EndDate != nil {
				t.Error("end date needs a start to anchor to")
			}
			return
		}
	}
	t.Fatal("no LightboxSavedMsg emitted")
}

func TestLightboxRejectsEmptyName(t *testing.T) {
	lb := NewLightbox(domain.Task{ID: "1"}, true, gantt.DefaultLabels())
	lb.text.SetValue("   ")

	_, cmd := lb.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd != nil {
		t.Error("empty name must not submit")
	}
	if lb.errText == "" {
		t.Error("expected a validation message")
	}
}

func TestLightboxRejectsBadDate(t *testing.T) {
	lb := NewLightbox(editableTask(), false, gantt.DefaultLabels())
	lb.start.SetValue("01/04/2024")

	_, cmd := lb.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd != nil {
		t.Error("malformed date must not submit")
	}
}

func TestLightboxEscCloses(t *testing.T) {
	lb := NewLightbox(editableTask(), false, gantt.DefaultLabels())

	_, cmd := lb.Update(tea.KeyMsg{Type: tea.KeyEsc})
	msgs := collectMsgs(cmd)
	if len(msgs) != 1 {
		t.Fatalf("got %d messages, want 1", len(msgs))
	}
	if _, ok := msgs[0].(CloseOverlayMsg); !ok {
		t.Errorf("got %T, want CloseOverlayMsg", msgs[0])
	}
}

func TestLightboxDeleteButton(t *testing.T) {
	lb := NewLightbox(editableTask(), false, gantt.DefaultLabels())
	lb.focus = lbFocusDelete

	_, cmd := lb.Update(tea.KeyMsg{Type: tea.KeyEnter})
	msgs := collectMsgs(cmd)

	found := false
	for _, m := range msgs {
		if del, ok := m.(LightboxDeleteMsg); ok {
			found = true
			if del.ID != "42" {
				t.Errorf("delete id = %q, want 42", del.ID)
			}
		}
	}
	if !found {
		t.Fatal("no LightboxDeleteMsg emitted")
	}
}

func TestLightboxDeleteDisabledForNewTask(t *testing.T) {
	lb := NewLightbox(domain.Task{ID: "n", Text: "x"}, true, gantt.DefaultLabels())
	lb.focus = lbFocusDelete

	_, cmd := lb.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("delete must be a no-op for an unsaved task")
	}
}

func TestLightboxKindSelector(t *testing.T) {
	lb := NewLightbox(editableTask(), false, gantt.DefaultLabels())
	lb.focus = lbFocusKind

	_, _ = lb.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'m'}})
	if lb.kind != domain.KindMilestone {
		t.Errorf("kind = %q, want milestone", lb.kind)
	}
}

func TestLightboxViewShowsSections(t *testing.T) {
	lb := NewLightbox(editableTask(), false, gantt.DefaultLabels())
	view := lb.View()

	for _, want := range []string{"説明", "期間", "保存", "キャンセル", "削除"} {
		if !strings.Contains(view, want) {
			t.Errorf("view is missing %q", want)
		}
	}
}
