package overlay

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestImportFileEnterEmitsPath(t *testing.T) {
	o := NewImportFileOverlay("")
	o.input.SetValue("  /tmp/tasks.json  ")

	_, cmd := o.Update(tea.KeyMsg{Type: tea.KeyEnter})
	msgs := collectMsgs(cmd)

	var req *ImportRequestedMsg
	for _, m := range msgs {
		if r, ok := m.(ImportRequestedMsg); ok {
			req = &r
		}
	}
	if req == nil {
		t.Fatal("no ImportRequestedMsg emitted")
	}
	if req.Path != "/tmp/tasks.json" {
		t.Errorf("path = %q, want trimmed path", req.Path)
	}
}

func TestImportFileEmptyPathIgnored(t *testing.T) {
	o := NewImportFileOverlay("")

	_, cmd := o.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("enter on an empty path must be a no-op")
	}
}

func TestImportFileEscCloses(t *testing.T) {
	o := NewImportFileOverlay("tasks.json")

	_, cmd := o.Update(tea.KeyMsg{Type: tea.KeyEsc})
	msgs := collectMsgs(cmd)
	if len(msgs) != 1 {
		t.Fatalf("got %d messages, want 1", len(msgs))
	}
	if _, ok := msgs[0].(CloseOverlayMsg); !ok {
		t.Errorf("got %T, want CloseOverlayMsg", msgs[0])
	}
}
