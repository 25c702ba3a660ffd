package gantt

import "fmt"

// ZoomPreset names a bundle of timeline scale settings
type ZoomPreset string

const (
	ZoomDay   ZoomPreset = "day"
	ZoomWeek  ZoomPreset = "week"
	ZoomMonth ZoomPreset = "month"
)

// ZoomOrder is the fixed presentation order of the presets
var ZoomOrder = []ZoomPreset{ZoomDay, ZoomWeek, ZoomMonth}

type zoomConfig struct {
	scales         []Scale
	minColumnWidth int
}

var zoomConfigs = map[ZoomPreset]zoomConfig{
	ZoomDay: {
		scales: []Scale{
			{Unit: "month", Step: 1, Format: "%F, %Y"},
			{Unit: "day", Step: 1, Format: "%j, %D"},
		},
		minColumnWidth: 60,
	},
	ZoomWeek: {
		scales: []Scale{
			{Unit: "month", Step: 1, Format: "%F, %Y"},
			{Unit: "week", Step: 1, Format: "Week #%W"},
		},
		minColumnWidth: 100,
	},
	ZoomMonth: {
		scales: []Scale{
			{Unit: "year", Step: 1, Format: "%Y"},
			{Unit: "month", Step: 1, Format: "%F"},
		},
		minColumnWidth: 120,
	},
}

// Scales returns the preset's time-axis rows
func (p ZoomPreset) Scales() []Scale {
	return zoomConfigs[p].scales
}

// MinColumnWidth returns the preset's minimum timeline column width
func (p ZoomPreset) MinColumnWidth() int {
	return zoomConfigs[p].minColumnWidth
}

// Label returns the one-character Japanese button label for the preset
func (p ZoomPreset) Label() string {
	switch p {
	case ZoomDay:
		return "日"
	case ZoomWeek:
		return "週"
	case ZoomMonth:
		return "月"
	default:
		return "?"
	}
}

// ZoomSwitcher swaps the widget's time-scale configuration between the
// fixed presets. Applying a preset touches layout only: the task data is
// never re-parsed.
type ZoomSwitcher struct {
	widget  Widget
	current ZoomPreset
}

// NewZoomSwitcher starts at the week preset, matching the initial chart
func NewZoomSwitcher(w Widget) *ZoomSwitcher {
	z := &ZoomSwitcher{widget: w}
	// Apply cannot fail for a built-in preset
	_ = z.Apply(ZoomWeek)
	return z
}

// Apply switches to the named preset and forces a layout re-render
func (z *ZoomSwitcher) Apply(p ZoomPreset) error {
	cfg, ok := zoomConfigs[p]
	if !ok {
		return fmt.Errorf("unknown zoom preset %q", p)
	}
	z.widget.SetScales(cfg.scales, cfg.minColumnWidth)
	z.widget.Render()
	z.current = p
	return nil
}

// Current returns the active preset
func (z *ZoomSwitcher) Current() ZoomPreset {
	return z.current
}

// IsActive reports whether p is the active preset, so its selector can be
// disabled in the UI
func (z *ZoomSwitcher) IsActive(p ZoomPreset) bool {
	return z.current == p
}
