package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/cadence/internal/domain/motion"
)

const minBarWidth = 10

var (
	barStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	activeBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Gantt renders each timeline entry as a bar scaled to the timeline length.
// Entries active at the playhead are highlighted.
func Gantt(tl motion.Timeline, width int, at time.Duration) string {
	if tl.Len() == 0 {
		return mutedStyle.Render("static: content appears immediately")
	}

	labels := make([]string, tl.Len())
	labelWidth := 0
	for i, e := range tl.Entries {
		labels[i] = fmt.Sprintf("#%d %s", e.Item, e.Name)
		if w := lipgloss.Width(labels[i]); w > labelWidth {
			labelWidth = w
		}
	}

	barWidth := width - labelWidth - 20
	if barWidth < minBarWidth {
		barWidth = minBarWidth
	}

	total := tl.Total()
	lines := make([]string, 0, tl.Len())
	for i, e := range tl.Entries {
		start, end := columns(e, total, barWidth)
		style := barStyle
		if at >= e.Start && at < e.End {
			style = activeBarStyle
		}
		bar := strings.Repeat(" ", start) + style.Render(strings.Repeat("█", end-start)) + strings.Repeat(" ", barWidth-end)
		label := labels[i] + strings.Repeat(" ", labelWidth-lipgloss.Width(labels[i]))
		lines = append(lines, fmt.Sprintf("%s │%s│ %s", label, bar, mutedStyle.Render(fmt.Sprintf("%d→%dms", e.Start.Milliseconds(), e.End.Milliseconds()))))
	}
	return strings.Join(lines, "\n")
}

// columns maps an entry window onto [0, width]; every entry gets at least one cell.
func columns(e motion.TimelineEntry, total time.Duration, width int) (int, int) {
	if total <= 0 {
		return 0, 1
	}
	start := int(float64(e.Start) / float64(total) * float64(width))
	end := int(float64(e.End) / float64(total) * float64(width))
	if start >= width {
		start = width - 1
	}
	if end <= start {
		end = start + 1
	}
	if end > width {
		end = width
	}
	return start, end
}
