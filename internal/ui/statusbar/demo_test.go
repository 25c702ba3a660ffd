package statusbar

import (
	"fmt"
	"testing"

	"github.com/hnakamura/ganttea/internal/gantt"
	"github.com/hnakamura/ganttea/internal/types"
	"github.com/hnakamura/ganttea/internal/ui/styles"
)

// TestDemo_VisualOutput is not a real test, but demonstrates the visual output
// Run with: go test -v -run TestDemo_VisualOutput
func TestDemo_VisualOutput(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping visual demo in short mode")
	}

	style := styles.New()
	width := 80

	modes := []types.Mode{
		types.ModeNormal,
		types.ModeDialog,
	}

	fmt.Println("\n=== StatusBar Visual Demo ===")
	fmt.Println()

	for _, mode := range modes {
		for _, zoom := range gantt.ZoomOrder {
			sb := New(mode, zoom, width, style)
			rendered := sb.Render()

			fmt.Printf("Mode: %s, Zoom: %s\n", mode, zoom.Label())
			fmt.Printf("Rendered (with ANSI): %s\n", rendered)
		}
		fmt.Printf("Hints: %s\n\n", GetHints(mode))
	}
}
