// Package domain contains the core task model for the Ganttea application.
package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Kind categorizes how a task is rendered on the chart
type Kind string

const (
	KindTask      Kind = "task"
	KindProject   Kind = "project"
	KindMilestone Kind = "milestone"
)

// String returns the display string
func (k Kind) String() string {
	return string(k)
}

// Urgency classifies a task for timeline coloring
type Urgency string

const (
	Urgent    Urgency = "urgent"
	NotUrgent Urgency = "not_urgent"
)

// Difficulty classifies a task for timeline coloring
type Difficulty string

const (
	Easy      Difficulty = "easy"
	Difficult Difficulty = "difficult"
)

// RootID is the synthetic parent id of top-level tasks. The chart reports
// it as the destination parent when a row is dragged to the root level.
const RootID = "0"

// Task is a single row of the chart. IDs are opaque strings assigned by the
// system at creation or carried over from an imported document; they are
// never edited directly. StartDate and EndDate use the "YYYY-MM-DD" form.
// Duration is a count of calendar days; zero, negative, and fractional
// values are passed through untouched rather than rejected. Parent links
// the task into a tree; an empty Parent means the task sits at the root.
type Task struct {
	ID         string     `json:"id"`
	Text       string     `json:"text"`
	StartDate  string     `json:"start_date"`
	EndDate    string     `json:"end_date,omitempty"`
	Duration   float64    `json:"duration,omitempty"`
	Parent     string     `json:"parent,omitempty"`
	Progress   float64    `json:"progress"`
	Kind       Kind       `json:"type"`
	Open       bool       `json:"open"`
	Urgency    Urgency    `json:"urgency,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
}

// taskWire mirrors Task with loosened field types. Imported documents may
// carry numeric ids, numeric parents, or a wrong-typed progress; those are
// tolerated rather than failing the whole document.
type taskWire struct {
	ID         json.RawMessage `json:"id"`
	Text       string          `json:"text"`
	StartDate  string          `json:"start_date"`
	EndDate    string          `json:"end_date"`
	Duration   float64         `json:"duration"`
	Parent     json.RawMessage `json:"parent"`
	Progress   json.RawMessage `json:"progress"`
	Kind       Kind            `json:"type"`
	Open       *bool           `json:"open"`
	Urgency    Urgency         `json:"urgency"`
	Difficulty Difficulty      `json:"difficulty"`
}

// UnmarshalJSON accepts both string and numeric ids/parents and recovers
// from a wrong-typed progress value instead of failing.
func (t *Task) UnmarshalJSON(data []byte) error {
	var w taskWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	t.ID = flexibleID(w.ID)
	t.Text = w.Text
	t.StartDate = w.StartDate
	t.EndDate = w.EndDate
	t.Duration = w.Duration
	t.Parent = flexibleID(w.Parent)
	t.Progress = flexibleNumber(w.Progress)
	t.Kind = w.Kind
	if t.Kind == "" {
		t.Kind = KindTask
	}
	// Tree branches default to opened
	t.Open = w.Open == nil || *w.Open
	t.Urgency = w.Urgency
	t.Difficulty = w.Difficulty
	return nil
}

// flexibleID renders a raw JSON value as an id string. Numbers keep their
// textual form; anything unreadable collapses to the empty id.
func flexibleID(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

// flexibleNumber reads a number that may arrive as a string ("0.5") or as
// garbage ("50%", null). Unreadable values become zero.
func flexibleNumber(raw json.RawMessage) float64 {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if _, err := fmt.Sscanf(s, "%f", &f); err == nil {
			return f
		}
	}
	return 0
}

// HasParent reports whether the task is attached below another task
func (t Task) HasParent() bool {
	return t.Parent != "" && t.Parent != RootID
}

// StyleClass returns the timeline bar class for the task's urgency and
// difficulty tags, or "" when the task carries no complete tag pair.
func (t Task) StyleClass() string {
	switch {
	case t.Urgency == Urgent && t.Difficulty == Easy:
		return "task_urgent_easy"
	case t.Urgency == Urgent && t.Difficulty == Difficult:
		return "task_urgent_difficult"
	case t.Urgency == NotUrgent && t.Difficulty == Easy:
		return "task_not_urgent_easy"
	case t.Urgency == NotUrgent && t.Difficulty == Difficult:
		return "task_not_urgent_difficult"
	}
	return ""
}
