// Package app contains the main application model and TEA implementation.
package app

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hnakamura/ganttea/internal/calendar"
	"github.com/hnakamura/ganttea/internal/config"
	"github.com/hnakamura/ganttea/internal/domain"
	"github.com/hnakamura/ganttea/internal/gantt"
	"github.com/hnakamura/ganttea/internal/transfer"
	"github.com/hnakamura/ganttea/internal/types"
	"github.com/hnakamura/ganttea/internal/ui/chart"
	"github.com/hnakamura/ganttea/internal/ui/overlay"
	"github.com/hnakamura/ganttea/internal/ui/statusbar"
	"github.com/hnakamura/ganttea/internal/ui/styles"
	"github.com/hnakamura/ganttea/internal/ui/toast"
)

// Re-export Mode type and constants for convenience
type Mode = types.Mode

const (
	ModeNormal = types.ModeNormal
	ModeDialog = types.ModeDialog
)

// Re-export Toast type and constants for convenience
type Toast = types.Toast
type ToastLevel = types.ToastLevel

const (
	ToastInfo    = types.ToastInfo
	ToastSuccess = types.ToastSuccess
	ToastWarning = types.ToastWarning
	ToastError   = types.ToastError
)

// confirmRouter carries yes/no prompts from the chart to the modal layer.
// The chart raises a prompt synchronously during an engine call; the app
// drains it right after and turns it into a dialog overlay.
type confirmRouter struct {
	pending *gantt.ConfirmRequest
	answer  func(confirmed bool)
}

func (r *confirmRouter) route(req gantt.ConfirmRequest) {
	r.pending = &req
}

func (r *confirmRouter) drain() *gantt.ConfirmRequest {
	req := r.pending
	r.pending = nil
	return req
}

// Model is the main application state
type Model struct {
	// Chart and sync core
	chart   *chart.Model
	engine  *gantt.Engine
	zoom    *gantt.ZoomSwitcher
	gateway *transfer.Gateway
	router  *confirmRouter

	// UI state
	overlayStack *overlay.Stack
	toasts       []Toast

	// Terminal size
	width  int
	height int

	// Styles
	styles *styles.Styles

	// Configuration
	config *config.Config

	// Logger
	logger *slog.Logger
}

type tickMsg time.Time

func tickEvery(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// New creates a new application model with the given config
func New(cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := slog.Default()
	st := styles.New()

	router := &confirmRouter{}
	ch := chart.New(st, calendar.New(), router.route, logger)
	ch.SetColumns(cfg.Chart.NameColWidth, cfg.Chart.DateColWidth)

	m := Model{
		chart:        ch,
		router:       router,
		overlayStack: overlay.NewStack(),
		toasts:       []Toast{},
		styles:       st,
		config:       cfg,
		logger:       logger,
	}

	engine := gantt.NewEngine(ch, defaultTasks(), logger)
	engine.SetLabels(labelsFromConfig(cfg))

	zoom := gantt.NewZoomSwitcher(ch)
	if preset := gantt.ZoomPreset(cfg.Chart.DefaultZoom); preset != "" {
		if err := zoom.Apply(preset); err != nil {
			logger.Warn("unknown default zoom in config, keeping week", "zoom", cfg.Chart.DefaultZoom)
		}
	}

	m.engine = engine
	m.zoom = zoom
	m.gateway = transfer.NewGateway(engine, cfg.Export.Filename, logger)
	return m
}

// labelsFromConfig maps the config locale section onto widget labels
func labelsFromConfig(cfg *config.Config) gantt.Labels {
	l := gantt.DefaultLabels()
	if cfg.Locale.Save != "" {
		l.Save = cfg.Locale.Save
	}
	if cfg.Locale.Cancel != "" {
		l.Cancel = cfg.Locale.Cancel
	}
	if cfg.Locale.Delete != "" {
		l.Delete = cfg.Locale.Delete
	}
	if cfg.Locale.SectionDescription != "" {
		l.SectionDescription = cfg.Locale.SectionDescription
	}
	if cfg.Locale.SectionTime != "" {
		l.SectionTime = cfg.Locale.SectionTime
	}
	if cfg.Locale.ConfirmDeletingTitle != "" {
		l.ConfirmDeletingTitle = cfg.Locale.ConfirmDeletingTitle
	}
	if cfg.Locale.ConfirmDeleting != "" {
		l.ConfirmDeleting = cfg.Locale.ConfirmDeleting
	}
	return l
}

// defaultTasks is the document shown on a fresh start
func defaultTasks() []domain.Task {
	return []domain.Task{
		{ID: "1", Text: "プロジェクト準備", StartDate: "2024-04-01", Duration: 10, Progress: 0.4, Kind: domain.KindProject, Open: true},
		{ID: "2", Text: "要件定義", StartDate: "2024-04-01", Duration: 3, Parent: "1", Progress: 1, Kind: domain.KindTask, Open: true, Urgency: domain.Urgent, Difficulty: domain.Difficult},
		{ID: "3", Text: "設計", StartDate: "2024-04-04", Duration: 4, Parent: "1", Progress: 0.5, Kind: domain.KindTask, Open: true, Urgency: domain.Urgent, Difficulty: domain.Easy},
		{ID: "4", Text: "実装", StartDate: "2024-04-08", Duration: 3, Parent: "1", Progress: 0, Kind: domain.KindTask, Open: true, Urgency: domain.NotUrgent, Difficulty: domain.Difficult},
		{ID: "5", Text: "キックオフ", StartDate: "2024-04-11", Kind: domain.KindMilestone, Open: true},
	}
}

// Init returns the initial command for the application
func (m Model) Init() tea.Cmd {
	return tickEvery(time.Second)
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.chart.SetSize(msg.Width, msg.Height-1)
		return m, nil

	case tea.KeyMsg:
		// If overlay is open, route to overlay stack
		if !m.overlayStack.IsEmpty() {
			cmd := m.overlayStack.Update(msg)
			return m, cmd
		}
		return m.handleKey(msg)

	// Overlay messages
	case overlay.CloseOverlayMsg:
		m.overlayStack.Pop()
		return m, nil

	case overlay.SelectionMsg:
		return m.handleSelection(msg)

	case overlay.LightboxSavedMsg:
		m.engine.EditSaved(msg.ID, msg.Form, msg.IsNew)
		m.pushToast(ToastSuccess, "保存しました", 3*time.Second)
		return m, nil

	case overlay.LightboxDeleteMsg:
		m.engine.DeleteRequested(msg.ID)
		return m.promoteConfirm()

	case overlay.ImportRequestedMsg:
		if err := m.gateway.ImportFile(msg.Path); err != nil {
			m.logger.Error("import failed", "path", msg.Path, "error", err)
			m.pushToast(ToastError, importErrorMessage(err), 8*time.Second)
			return m, nil
		}
		m.pushToast(ToastSuccess, fmt.Sprintf("%s を読み込みました", msg.Path), 3*time.Second)
		return m, nil

	case tickMsg:
		m.expireToasts()
		return m, tickEvery(time.Second)
	}

	return m, nil
}

// handleKey processes keyboard input in normal mode
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.engine.Close()
		return m, tea.Quit

	case "?":
		return m, m.overlayStack.Push(overlay.NewHelpOverlay())
	}

	switch msg.String() {
	case "j", "down":
		m.chart.CursorDown()
		return m, nil

	case "k", "up":
		m.chart.CursorUp()
		return m, nil

	case " ":
		m.chart.ToggleOpen()
		return m, nil

	case "a":
		task := m.engine.AddTask()
		m.pushToast(ToastSuccess, fmt.Sprintf("追加しました: %s", task.Text), 3*time.Second)
		return m, nil

	case "e", "enter":
		id, ok := m.chart.SelectedID()
		if !ok {
			return m, nil
		}
		task, ok := m.chart.Task(id)
		if !ok {
			return m, nil
		}
		return m, m.overlayStack.Push(overlay.NewLightbox(task, false, labelsFromConfig(m.config)))

	case "d":
		id, ok := m.chart.SelectedID()
		if !ok {
			return m, nil
		}
		m.engine.DeleteRequested(id)
		return m.promoteConfirm()

	case "K":
		return m.reorderSelected(-1), nil

	case "J":
		return m.reorderSelected(+1), nil

	case ">":
		return m.indentSelected(), nil

	case "<":
		return m.outdentSelected(), nil

	case "H":
		return m.dragSelected(-1, gantt.DragMove), nil

	case "L":
		return m.dragSelected(+1, gantt.DragMove), nil

	case "+", "=":
		return m.resizeSelected(+1), nil

	case "-":
		return m.resizeSelected(-1), nil

	case "p":
		return m.progressSelected(+0.1), nil

	case "P":
		return m.progressSelected(-0.1), nil

	case "1":
		return m.applyZoom(gantt.ZoomDay), nil

	case "2":
		return m.applyZoom(gantt.ZoomWeek), nil

	case "3":
		return m.applyZoom(gantt.ZoomMonth), nil

	case "z":
		return m.cycleZoom(), nil

	case "S":
		path, err := m.gateway.ExportFile()
		if err != nil {
			m.logger.Error("export failed", "error", err)
			m.pushToast(ToastError, fmt.Sprintf("エクスポートに失敗しました: %v", err), 8*time.Second)
			return m, nil
		}
		m.pushToast(ToastSuccess, fmt.Sprintf("%s へ書き出しました", path), 3*time.Second)
		return m, nil

	case "O":
		return m, m.overlayStack.Push(overlay.NewImportFileOverlay(""))
	}

	return m, nil
}

// handleSelection resolves confirm dialog answers
func (m Model) handleSelection(msg overlay.SelectionMsg) (tea.Model, tea.Cmd) {
	if result, ok := msg.Value.(overlay.ConfirmResult); ok {
		m.overlayStack.Pop()
		if m.router.answer != nil {
			answer := m.router.answer
			m.router.answer = nil
			answer(result.Confirmed)
		}
		return m, nil
	}
	return m, nil
}

// promoteConfirm turns a chart-raised confirm prompt into a dialog overlay
func (m Model) promoteConfirm() (tea.Model, tea.Cmd) {
	req := m.router.drain()
	if req == nil {
		return m, nil
	}
	m.router.answer = req.Callback

	dialog := overlay.NewConfirmDialog(req.Title, req.Text)
	labels := labelsFromConfig(m.config)
	dialog.SetButtons(labels.OK, labels.CancelButton)
	return m, m.overlayStack.Push(dialog)
}

func (m Model) reorderSelected(delta int) Model {
	id, ok := m.chart.SelectedID()
	if !ok {
		return m
	}
	parent, idx, ok := m.chart.Position(id)
	if !ok {
		return m
	}
	target := idx + delta
	if target < 0 {
		return m
	}
	m.engine.RowReordered(id, parent, target)
	return m
}

// indentSelected makes the row a child of the sibling above it
func (m Model) indentSelected() Model {
	id, ok := m.chart.SelectedID()
	if !ok {
		return m
	}
	prev, ok := m.chart.SiblingBefore(id)
	if !ok {
		return m
	}
	m.engine.RowReordered(id, prev, m.chart.ChildCount(prev))
	return m
}

// outdentSelected lifts the row up next to its current parent
func (m Model) outdentSelected() Model {
	id, ok := m.chart.SelectedID()
	if !ok {
		return m
	}
	parent, _, ok := m.chart.Position(id)
	if !ok || parent == domain.RootID {
		return m
	}
	grandparent, parentIdx, ok := m.chart.Position(parent)
	if !ok {
		return m
	}
	m.engine.RowReordered(id, grandparent, parentIdx+1)
	return m
}

// dragSelected commits an in-place bar move, then reports it as a drag
func (m Model) dragSelected(days int, mode gantt.DragMode) Model {
	id, ok := m.chart.SelectedID()
	if !ok {
		return m
	}
	if m.chart.ShiftTask(id, days) {
		m.engine.TaskDragged(id, mode)
	}
	return m
}

func (m Model) resizeSelected(days int) Model {
	id, ok := m.chart.SelectedID()
	if !ok {
		return m
	}
	if m.chart.ResizeTask(id, days) {
		m.engine.TaskDragged(id, gantt.DragResize)
	}
	return m
}

func (m Model) progressSelected(delta float64) Model {
	id, ok := m.chart.SelectedID()
	if !ok {
		return m
	}
	if m.chart.AdjustProgress(id, delta) {
		m.engine.TaskDragged(id, gantt.DragProgress)
	}
	return m
}

func (m Model) applyZoom(p gantt.ZoomPreset) Model {
	if m.zoom.IsActive(p) {
		return m
	}
	if err := m.zoom.Apply(p); err != nil {
		m.logger.Warn("zoom switch failed", "preset", p, "error", err)
	}
	return m
}

func (m Model) cycleZoom() Model {
	for i, p := range gantt.ZoomOrder {
		if m.zoom.IsActive(p) {
			next := gantt.ZoomOrder[(i+1)%len(gantt.ZoomOrder)]
			return m.applyZoom(next)
		}
	}
	return m
}

// mode reports the current interaction mode for the status bar
func (m Model) mode() Mode {
	if !m.overlayStack.IsEmpty() {
		return ModeDialog
	}
	return ModeNormal
}

func (m *Model) pushToast(level ToastLevel, message string, ttl time.Duration) {
	m.toasts = append(m.toasts, types.NewToast(level, message, ttl))
}

func (m *Model) expireToasts() {
	now := time.Now()
	kept := m.toasts[:0]
	for _, t := range m.toasts {
		if !t.Expired(now) {
			kept = append(kept, t)
		}
	}
	m.toasts = kept
}

// importErrorMessage renders an import failure for the toast surface
func importErrorMessage(err error) string {
	var impErr *domain.ImportError
	if errors.As(err, &impErr) {
		return impErr.Error()
	}
	return fmt.Sprintf("インポートに失敗しました: %v", err)
}

// View renders the whole application frame
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	mainView := m.chart.View()

	// Render status bar
	sb := statusbar.New(m.mode(), m.zoom.Current(), m.width, m.styles)
	statusBarView := sb.Render()

	// Compose the layout
	view := lipgloss.JoinVertical(lipgloss.Left, mainView, statusBarView)

	// If overlay is open, render it on top (centered)
	if !m.overlayStack.IsEmpty() {
		current := m.overlayStack.Current()
		overlayView := current.View()

		overlayWidth, overlayHeight := current.Size()
		title := current.Title()
		if title != "" {
			titleView := m.styles.OverlayTitle.Render(title)
			overlayView = lipgloss.JoinVertical(lipgloss.Left, titleView, overlayView)
		}
		overlayView = m.styles.Overlay.
			Width(overlayWidth).
			Height(overlayHeight).
			Render(overlayView)

		centeredOverlay := lipgloss.Place(
			m.width,
			m.height,
			lipgloss.Center,
			lipgloss.Center,
			overlayView,
		)

		view = lipgloss.JoinVertical(lipgloss.Left, view, centeredOverlay)
	}

	// Render toasts in bottom-right corner
	if len(m.toasts) > 0 {
		toastRenderer := toast.New(m.styles)
		toastView := toastRenderer.Render(m.toasts, m.width)
		if toastView != "" {
			view = lipgloss.JoinVertical(lipgloss.Left, view, toastView)
		}
	}

	return view
}
