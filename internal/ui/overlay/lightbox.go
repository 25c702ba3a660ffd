package overlay

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hnakamura/ganttea/internal/dates"
	"github.com/hnakamura/ganttea/internal/domain"
	"github.com/hnakamura/ganttea/internal/gantt"
)

// LightboxSavedMsg is emitted when the task detail form is accepted
type LightboxSavedMsg struct {
	ID    string
	IsNew bool
	Form  gantt.TaskForm
}

// LightboxDeleteMsg is emitted when delete is chosen from the detail form
type LightboxDeleteMsg struct {
	ID string
}

// Lightbox is the task detail form: description and time sections, with
// save, cancel, and delete actions.
type Lightbox struct {
	taskID   string
	isNew    bool
	labels   gantt.Labels
	text     textinput.Model
	start    textinput.Model
	duration textinput.Model
	progress textinput.Model
	kind     domain.Kind
	focus    int
	errText  string
	styles   *Styles
}

const (
	lbFocusText = iota
	lbFocusStart
	lbFocusDuration
	lbFocusProgress
	lbFocusKind
	lbFocusSave
	lbFocusCancel
	lbFocusDelete
	lbFocusCount
)

// NewLightbox builds the detail form preloaded from the task
func NewLightbox(task domain.Task, isNew bool, labels gantt.Labels) *Lightbox {
	text := textinput.New()
	text.Placeholder = "タスク名..."
	text.CharLimit = 0
	text.Width = 48
	text.SetValue(task.Text)
	text.Focus()

	start := textinput.New()
	start.Placeholder = dates.Layout
	start.CharLimit = 10
	start.Width = 12
	start.SetValue(task.StartDate)

	duration := textinput.New()
	duration.CharLimit = 6
	duration.Width = 6
	duration.SetValue(strconv.FormatFloat(task.Duration, 'f', -1, 64))

	progress := textinput.New()
	progress.CharLimit = 4
	progress.Width = 5
	progress.SetValue(strconv.FormatFloat(task.Progress, 'f', -1, 64))

	kind := task.Kind
	if kind == "" {
		kind = domain.KindTask
	}

	return &Lightbox{
		taskID:   task.ID,
		isNew:    isNew,
		labels:   labels,
		text:     text,
		start:    start,
		duration: duration,
		progress: progress,
		kind:     kind,
		styles:   New(),
	}
}

// Init initializes the overlay
func (l *Lightbox) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (l *Lightbox) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return l, func() tea.Msg { return CloseOverlayMsg{} }

		case "ctrl+s":
			return l, l.submit()

		case "tab", "shift+tab":
			if msg.String() == "tab" {
				l.focus = (l.focus + 1) % lbFocusCount
			} else {
				l.focus = (l.focus - 1 + lbFocusCount) % lbFocusCount
			}
			l.syncFocus()
			return l, nil

		case "enter":
			switch l.focus {
			case lbFocusSave:
				return l, l.submit()
			case lbFocusCancel:
				return l, func() tea.Msg { return CloseOverlayMsg{} }
			case lbFocusDelete:
				if l.isNew {
					return l, nil
				}
				return l, tea.Batch(
					func() tea.Msg { return LightboxDeleteMsg{ID: l.taskID} },
					func() tea.Msg { return CloseOverlayMsg{} },
				)
			}
		}

		if l.focus == lbFocusKind {
			switch msg.String() {
			case "t":
				l.kind = domain.KindTask
				return l, nil
			case "p":
				l.kind = domain.KindProject
				return l, nil
			case "m":
				l.kind = domain.KindMilestone
				return l, nil
			}
		}
	}

	var cmd tea.Cmd
	switch l.focus {
	case lbFocusText:
		l.text, cmd = l.text.Update(msg)
	case lbFocusStart:
		l.start, cmd = l.start.Update(msg)
	case lbFocusDuration:
		l.duration, cmd = l.duration.Update(msg)
	case lbFocusProgress:
		l.progress, cmd = l.progress.Update(msg)
	}
	return l, cmd
}

func (l *Lightbox) syncFocus() {
	inputs := []*textinput.Model{&l.text, &l.start, &l.duration, &l.progress}
	for i, in := range inputs {
		if i == l.focus {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

// View renders the form
func (l *Lightbox) View() string {
	var b strings.Builder

	label := func(idx int, name string) string {
		if l.focus == idx {
			return l.styles.MenuItemActive.Render(name)
		}
		return l.styles.MenuItem.Render(name)
	}

	b.WriteString(l.styles.MenuHeader.Render(l.labels.SectionDescription))
	b.WriteString("\n")
	b.WriteString(label(lbFocusText, "名前: "))
	b.WriteString(l.text.View())
	b.WriteString("\n\n")

	b.WriteString(l.styles.MenuHeader.Render(l.labels.SectionTime))
	b.WriteString("\n")
	b.WriteString(label(lbFocusStart, "開始: "))
	b.WriteString(l.start.View())
	b.WriteString("  ")
	b.WriteString(label(lbFocusDuration, "日数: "))
	b.WriteString(l.duration.View())
	b.WriteString("  ")
	b.WriteString(label(lbFocusProgress, "進捗: "))
	b.WriteString(l.progress.View())
	b.WriteString("\n\n")

	b.WriteString(label(lbFocusKind, "種別: "))
	b.WriteString(l.renderKindSelector())
	b.WriteString("\n\n")

	if l.errText != "" {
		b.WriteString(l.styles.MenuItemDisabled.Render(l.errText))
		b.WriteString("\n")
	}

	b.WriteString(l.styles.Separator.Render(strings.Repeat("─", 56)))
	b.WriteString("\n\n")

	buttons := []string{
		l.renderButton(lbFocusSave, l.labels.Save, false),
		l.renderButton(lbFocusCancel, l.labels.Cancel, false),
		l.renderButton(lbFocusDelete, l.labels.Delete, l.isNew),
	}
	b.WriteString(strings.Join(buttons, "   "))
	b.WriteString("\n\n")

	hints := []string{
		l.styles.MenuKey.Render("Tab") + " " + l.styles.Footer.Render("項目切替"),
		l.styles.MenuKey.Render("Ctrl+S") + " " + l.styles.Footer.Render(l.labels.Save),
		l.styles.MenuKey.Render("Esc") + " " + l.styles.Footer.Render(l.labels.Cancel),
	}
	b.WriteString(l.styles.Footer.Render(strings.Join(hints, " • ")))

	return b.String()
}

func (l *Lightbox) renderButton(idx int, caption string, disabled bool) string {
	style := l.styles.MenuItem
	if disabled {
		style = l.styles.MenuItemDisabled
	} else if l.focus == idx {
		style = l.styles.MenuItemActive
	}
	return style.Render("[ " + caption + " ]")
}

func (l *Lightbox) renderKindSelector() string {
	kinds := []struct {
		key  string
		kind domain.Kind
		name string
	}{
		{"t", domain.KindTask, "タスク"},
		{"p", domain.KindProject, "プロジェクト"},
		{"m", domain.KindMilestone, "マイルストーン"},
	}

	var parts []string
	for _, k := range kinds {
		style := l.styles.MenuItem
		indicator := " "
		if k.kind == l.kind {
			style = l.styles.MenuItemActive
			indicator = "●"
		}
		parts = append(parts, style.Render(fmt.Sprintf("[%s%s %s]", indicator, k.key, k.name)))
	}
	return strings.Join(parts, " ")
}

// submit validates the fields and emits the accepted form
func (l *Lightbox) submit() tea.Cmd {
	text := strings.TrimSpace(l.text.Value())
	if text == "" {
		l.errText = "名前を入力してください"
		return nil
	}

	startStr := strings.TrimSpace(l.start.Value())
	var startDay time.Time
	haveStart := false
	if startStr != "" {
		day, err := dates.Parse(startStr)
		if err != nil {
			l.errText = "開始日は " + dates.Layout + " の形式で入力してください"
			return nil
		}
		startDay, haveStart = day, true
	}

	form := gantt.TaskForm{Text: &text}
	if haveStart {
		form.StartDate = &startStr
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(l.duration.Value()), 64); err == nil {
		form.Duration = &v
		// The stored record keeps whatever end date it already had, so a
		// changed duration must ship a matching end date or the schedule
		// goes inconsistent.
		if haveStart {
			end := dates.Format(dates.AddDays(startDay, int(v)))
			form.EndDate = &end
		}
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(l.progress.Value()), 64); err == nil {
		form.Progress = &v
	}
	kind := l.kind
	form.Kind = &kind

	return tea.Batch(
		func() tea.Msg {
			return LightboxSavedMsg{ID: l.taskID, IsNew: l.isNew, Form: form}
		},
		func() tea.Msg { return CloseOverlayMsg{} },
	)
}

// Title returns the overlay title
func (l *Lightbox) Title() string {
	if l.isNew {
		return "新規タスク"
	}
	return "タスクの編集"
}

// Size returns the overlay dimensions
func (l *Lightbox) Size() (width, height int) {
	return 64, 18
}
