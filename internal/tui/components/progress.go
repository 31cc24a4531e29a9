package components

import (
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Playhead renders the playback position within a timeline.
type Playhead struct {
	bar   progress.Model
	total time.Duration
}

// NewPlayhead creates a playhead for a timeline of the given length.
func NewPlayhead(total time.Duration) Playhead {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = 30
	return Playhead{bar: bar, total: total}
}

// Ratio returns the played fraction, clamped to [0, 1].
func (p Playhead) Ratio(at time.Duration) float64 {
	if p.total <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, float64(at)/float64(p.total)))
}

// View renders the bar and an elapsed/total label.
func (p Playhead) View(at time.Duration) string {
	label := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%dms/%dms", at.Milliseconds(), p.total.Milliseconds()))
	return lipgloss.JoinHorizontal(lipgloss.Left, label, " ", p.bar.ViewAs(p.Ratio(at)))
}
