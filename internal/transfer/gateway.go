// Package transfer moves the authoritative task list in and out of JSON
// documents. Export output always round-trips through Import.
package transfer

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/hnakamura/ganttea/internal/domain"
)

// DefaultFilename is the fixed name exported documents are written under
const DefaultFilename = "gantt_tasks.json"

// TaskList is the engine-facing surface the gateway needs: read the
// current list for export, replace it wholesale on import.
type TaskList interface {
	Tasks() []domain.Task
	Replace(tasks []domain.Task)
}

// Gateway serializes the authoritative list to a document and back
type Gateway struct {
	list     TaskList
	filename string
	log      *slog.Logger
}

// NewGateway builds a gateway writing to filename (DefaultFilename when
// empty).
func NewGateway(list TaskList, filename string, logger *slog.Logger) *Gateway {
	if filename == "" {
		filename = DefaultFilename
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Gateway{list: list, filename: filename, log: logger}
}

// Filename returns the fixed export filename
func (g *Gateway) Filename() string {
	return g.filename
}

// Export writes the full authoritative list as JSON. Every record carries
// an explicit type so a consumer never has to infer one.
func (g *Gateway) Export(w io.Writer) error {
	tasks := g.list.Tasks()
	for i := range tasks {
		if tasks[i].Kind == "" {
			tasks[i].Kind = domain.KindTask
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(tasks); err != nil {
		return fmt.Errorf("encode task list: %w", err)
	}
	return nil
}

// ExportFile writes the document under the fixed filename and returns the
// path written.
func (g *Gateway) ExportFile() (string, error) {
	f, err := os.Create(g.filename)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", g.filename, err)
	}
	defer f.Close()

	if err := g.Export(f); err != nil {
		return "", err
	}
	g.log.Info("task list exported", "path", g.filename, "tasks", len(g.list.Tasks()))
	return g.filename, nil
}

// Import parses raw as a task document. The document must be a JSON array
// and every element needs at minimum an id, a label, and a start date.
// On any failure the authoritative list is left untouched; on success it
// is replaced in full.
func (g *Gateway) Import(raw []byte) error {
	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		return &domain.ImportError{Op: "parse", Index: -1, Message: "document is not a task list", Err: err}
	}

	tasks := make([]domain.Task, 0, len(elements))
	for i, el := range elements {
		var t domain.Task
		if err := json.Unmarshal(el, &t); err != nil {
			return &domain.ImportError{Op: "validate", Index: i, Message: "element is not a task record", Err: err}
		}
		if t.ID == "" {
			return &domain.ImportError{Op: "validate", Index: i, Message: "missing id"}
		}
		if t.Text == "" {
			return &domain.ImportError{Op: "validate", Index: i, Message: "missing label"}
		}
		if t.StartDate == "" {
			return &domain.ImportError{Op: "validate", Index: i, Message: "missing start date"}
		}
		tasks = append(tasks, t)
	}

	g.list.Replace(tasks)
	g.log.Info("task list imported", "tasks", len(tasks))
	return nil
}

// ImportFile reads and imports a user-selected document. Read failures
// surface as errors, never a crash.
func (g *Gateway) ImportFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return &domain.ImportError{Op: "read", Index: -1, Err: err}
	}
	return g.Import(raw)
}
