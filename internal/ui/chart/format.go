package chart

import (
	"fmt"
	"strings"
	"time"
)

// formatScaleLabel expands the %-token date format used by scale
// configurations ("%F, %Y", "%j, %D", "Week #%W") against a concrete date.
func formatScaleLabel(t time.Time, format string) string {
	var b strings.Builder
	for i := 0; i < len(format); i++ {
		if format[i] != '%' || i+1 >= len(format) {
			b.WriteByte(format[i])
			continue
		}
		i++
		switch format[i] {
		case 'Y':
			fmt.Fprintf(&b, "%d", t.Year())
		case 'y':
			fmt.Fprintf(&b, "%02d", t.Year()%100)
		case 'F':
			b.WriteString(t.Month().String())
		case 'M':
			b.WriteString(t.Month().String()[:3])
		case 'm':
			fmt.Fprintf(&b, "%02d", int(t.Month()))
		case 'n':
			fmt.Fprintf(&b, "%d", int(t.Month()))
		case 'd':
			fmt.Fprintf(&b, "%02d", t.Day())
		case 'j':
			fmt.Fprintf(&b, "%d", t.Day())
		case 'D':
			b.WriteString(t.Weekday().String()[:3])
		case 'l':
			b.WriteString(t.Weekday().String())
		case 'W':
			_, week := t.ISOWeek()
			fmt.Fprintf(&b, "%d", week)
		default:
			b.WriteByte('%')
			b.WriteByte(format[i])
		}
	}
	return b.String()
}
