package overlay

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ImportRequestedMsg carries the path of the JSON document to load
type ImportRequestedMsg struct {
	Path string
}

// ImportFileOverlay prompts for the path of a JSON document to import
type ImportFileOverlay struct {
	input  textinput.Model
	styles *Styles
}

// NewImportFileOverlay creates the import path prompt
func NewImportFileOverlay(defaultPath string) *ImportFileOverlay {
	ti := textinput.New()
	ti.Placeholder = "tasks.json"
	ti.Width = 50
	ti.SetValue(defaultPath)
	ti.Focus()

	return &ImportFileOverlay{
		input:  ti,
		styles: New(),
	}
}

// Init initializes the overlay
func (o *ImportFileOverlay) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (o *ImportFileOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return o, func() tea.Msg { return CloseOverlayMsg{} }

		case "enter":
			path := strings.TrimSpace(o.input.Value())
			if path == "" {
				return o, nil
			}
			return o, tea.Batch(
				func() tea.Msg { return ImportRequestedMsg{Path: path} },
				func() tea.Msg { return CloseOverlayMsg{} },
			)
		}
	}

	var cmd tea.Cmd
	o.input, cmd = o.input.Update(msg)
	return o, cmd
}

// View renders the prompt
func (o *ImportFileOverlay) View() string {
	var b strings.Builder
	b.WriteString(o.styles.MenuItem.Render("読み込むJSONファイルのパス:"))
	b.WriteString("\n\n")
	b.WriteString(o.input.View())
	b.WriteString("\n\n")
	footer := o.styles.Footer.Render("Enter: 読み込み • Esc: キャンセル")
	b.WriteString(footer)
	return b.String()
}

// Title returns the overlay title
func (o *ImportFileOverlay) Title() string {
	return "インポート"
}

// Size returns the overlay dimensions
func (o *ImportFileOverlay) Size() (width, height int) {
	return 60, 8
}
