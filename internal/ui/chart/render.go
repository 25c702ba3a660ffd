package chart

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/hnakamura/ganttea/internal/dates"
	"github.com/hnakamura/ganttea/internal/domain"
	"github.com/hnakamura/ganttea/internal/gantt"
)

// Default grid column widths, overridable from config
const (
	defaultNameColWidth = 28
	defaultDateColWidth = 10
)

// SetColumns overrides the widths of the name and date grid columns
func (m *Model) SetColumns(nameWidth, dateWidth int) {
	if nameWidth > 0 {
		m.nameColWidth = nameWidth
	}
	if dateWidth > 0 {
		m.dateColWidth = dateWidth
	}
}

func (m *Model) gridWidths() (name, date int) {
	name, date = m.nameColWidth, m.dateColWidth
	if name == 0 {
		name = defaultNameColWidth
	}
	if date == 0 {
		date = defaultDateColWidth
	}
	return name, date
}

// cellWidth converts the pixel-oriented minimum column width into a
// character count for the terminal grid.
func (m *Model) cellWidth() int {
	w := m.minColWidth / 20
	if w < 3 {
		w = 3
	}
	return w
}

// View renders the full chart: grid columns on the left, timeline on the
// right, two header rows from the active scale configuration.
func (m *Model) View() string {
	rows := m.Rows()
	nameW, dateW := m.gridWidths()

	if len(rows) == 0 {
		empty := m.styles.GridRow.Render("タスクがありません")
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, empty)
	}

	start, end := m.timeRange(rows)
	cols := m.timelineColumns(start, end)
	cellW := m.cellWidth()

	var b strings.Builder
	b.WriteString(m.headerLines(cols, nameW, dateW, cellW))

	visible := rows
	maxRows := m.height - 3 // two header rows plus separator
	offset := 0
	if maxRows > 0 && len(rows) > maxRows {
		if m.cursor >= maxRows {
			offset = m.cursor - maxRows + 1
		}
		visible = rows[offset : offset+maxRows]
	}

	for i, row := range visible {
		b.WriteString("\n")
		b.WriteString(m.gridLine(row, offset+i == m.cursor, nameW, dateW))
		b.WriteString(m.timelineLine(row, cols, cellW, offset+i == m.cursor))
	}
	return b.String()
}

// timeRange finds the span the timeline must cover, padded one bottom-scale
// unit on each side.
func (m *Model) timeRange(rows []Row) (time.Time, time.Time) {
	var min, max time.Time
	for _, r := range rows {
		s, err := dates.Parse(r.Task.StartDate)
		if err != nil {
			continue
		}
		e := m.taskEnd(r.Task, s)
		if min.IsZero() || s.Before(min) {
			min = s
		}
		if max.IsZero() || e.After(max) {
			max = e
		}
	}
	if min.IsZero() {
		now := time.Now()
		min = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		max = dates.AddDays(min, 14)
	}
	unit := m.bottomUnit()
	return unitStart(addUnits(min, unit, -1), unit), addUnits(max, unit, 1)
}

func (m *Model) taskEnd(t domain.Task, start time.Time) time.Time {
	if t.EndDate != "" {
		if e, err := dates.Parse(t.EndDate); err == nil {
			return e
		}
	}
	d := int(t.Duration)
	if d < 1 {
		d = 1
	}
	return dates.AddDays(start, d)
}

func (m *Model) bottomUnit() string {
	if len(m.scales) == 0 {
		return "day"
	}
	return m.scales[len(m.scales)-1].Unit
}

// timelineColumns yields the start date of every bottom-scale column
func (m *Model) timelineColumns(start, end time.Time) []time.Time {
	unit := m.bottomUnit()
	var cols []time.Time
	for t := unitStart(start, unit); t.Before(end); t = addUnits(t, unit, 1) {
		cols = append(cols, t)
	}
	return cols
}

// headerLines renders the two scale header rows over the timeline columns
func (m *Model) headerLines(cols []time.Time, nameW, dateW, cellW int) string {
	var top, bottom gantt.Scale
	if len(m.scales) >= 2 {
		top, bottom = m.scales[0], m.scales[len(m.scales)-1]
	} else if len(m.scales) == 1 {
		top, bottom = m.scales[0], m.scales[0]
	} else {
		top = gantt.Scale{Unit: "month", Step: 1, Format: "%F, %Y"}
		bottom = gantt.Scale{Unit: "day", Step: 1, Format: "%j, %D"}
	}

	gridHead := pad("タスク名", nameW) + pad("開始日", dateW) + pad("日数", 6)

	var topRow, bottomRow strings.Builder
	var lastTopLabel string
	var topRun int
	flushTop := func() {
		if topRun > 0 {
			topRow.WriteString(pad(lastTopLabel, topRun*cellW))
		}
		topRun = 0
	}
	for _, c := range cols {
		label := formatScaleLabel(c, top.Format)
		if label != lastTopLabel {
			flushTop()
			lastTopLabel = label
		}
		topRun++
		bottomRow.WriteString(pad(formatScaleLabel(c, bottom.Format), cellW))
	}
	flushTop()

	h := m.styles.GridHeader
	return h.Render(pad("", nameW+dateW+6)+topRow.String()) + "\n" +
		h.Render(gridHead+bottomRow.String())
}

// gridLine renders the left-hand grid cells for one row
func (m *Model) gridLine(row Row, active bool, nameW, dateW int) string {
	glyph := strings.Repeat("  ", row.Depth)
	if len(m.children[row.Task.ID]) > 0 {
		if row.Task.Open {
			glyph += "▾ "
		} else {
			glyph += "▸ "
		}
	} else {
		glyph += "  "
	}

	name := glyph + row.Task.Text
	dur := ""
	if row.Task.Kind != domain.KindMilestone {
		dur = trimFloat(row.Task.Duration)
	}
	line := pad(truncate(name, nameW-1), nameW) + pad(row.Task.StartDate, dateW) + pad(dur, 6)

	if active {
		return m.styles.GridRowActive.Render(line)
	}
	return m.styles.GridRow.Render(line)
}

// timelineLine renders the bar cells for one row across the columns
func (m *Model) timelineLine(row Row, cols []time.Time, cellW int, active bool) string {
	start, err := dates.Parse(row.Task.StartDate)
	if err != nil {
		return ""
	}
	end := m.taskEnd(row.Task, start)
	unit := m.bottomUnit()

	barStyle := m.styles.TaskBar(row.Task)
	if active {
		barStyle = m.styles.BarSelected
	}

	// Total and completed bar columns, for the progress split
	total, done := 0, 0
	for _, c := range cols {
		if overlaps(c, addUnits(c, unit, 1), start, end) {
			total++
		}
	}
	done = int(row.Task.Progress * float64(total))

	var b strings.Builder
	seen := 0
	for _, c := range cols {
		next := addUnits(c, unit, 1)
		switch {
		case row.Task.Kind == domain.KindMilestone && overlaps(c, next, start, dates.AddDays(start, 1)):
			b.WriteString(m.styles.Milestone.Render(pad("◆", cellW)))
		case row.Task.Kind != domain.KindMilestone && overlaps(c, next, start, end):
			fill := "░"
			if seen < done {
				fill = "▓"
			}
			seen++
			b.WriteString(barStyle.Render(strings.Repeat(fill, cellW)))
		default:
			cellStyle := m.styles.Cell
			if unit == "day" && m.cal != nil {
				cellStyle = m.styles.TimelineCell(m.cal.CellClass(c))
			}
			b.WriteString(cellStyle.Render(pad("·", cellW)))
		}
	}
	return b.String()
}

func overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// unitStart truncates a date to the start of its scale unit
func unitStart(t time.Time, unit string) time.Time {
	switch unit {
	case "week":
		// Weeks start on Monday
		offset := (int(t.Weekday()) + 6) % 7
		return dates.AddDays(t, -offset)
	case "month":
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	case "year":
		return time.Date(t.Year(), 1, 1, 0, 0, 0, 0, t.Location())
	}
	return t
}

func addUnits(t time.Time, unit string, n int) time.Time {
	switch unit {
	case "week":
		return dates.AddDays(t, 7*n)
	case "month":
		return t.AddDate(0, n, 0)
	case "year":
		return t.AddDate(n, 0, 0)
	}
	return dates.AddDays(t, n)
}

func pad(s string, width int) string {
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width < 1 {
		return ""
	}
	return string(r[:width-1]) + "…"
}

func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
