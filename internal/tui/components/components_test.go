package components

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/cadence/internal/app/orchestrator"
	"github.com/alexisbeaulieu97/cadence/internal/domain/motion"
)

func TestPlayheadRatio(t *testing.T) {
	t.Parallel()

	p := NewPlayhead(2 * time.Second)
	require.Equal(t, 0.0, p.Ratio(0))
	require.Equal(t, 0.5, p.Ratio(time.Second))
	require.Equal(t, 1.0, p.Ratio(5*time.Second))
	require.Equal(t, 0.0, NewPlayhead(0).Ratio(time.Second))
}

func TestPlayheadView(t *testing.T) {
	t.Parallel()

	view := NewPlayhead(2600 * time.Millisecond).View(1300 * time.Millisecond)
	require.Contains(t, view, "1300ms/2600ms")
}

func TestGanttStaticTimeline(t *testing.T) {
	t.Parallel()

	require.Contains(t, Gantt(motion.Timeline{}, 80, 0), "static")
}

func TestGanttRendersEveryEntry(t *testing.T) {
	t.Parallel()

	tl := motion.Timeline{Entries: []motion.TimelineEntry{
		{Item: 0, Name: "title", Start: 300 * time.Millisecond, End: 1300 * time.Millisecond},
		{Item: 0, Name: "subtitle", Start: 1000 * time.Millisecond, End: 1600 * time.Millisecond},
		{Item: 0, Name: "flash", Start: 1600 * time.Millisecond, End: 1600 * time.Millisecond},
	}}

	view := Gantt(tl, 60, 0)
	lines := strings.Split(view, "\n")
	require.Len(t, lines, 3)
	require.Contains(t, lines[0], "#0 title")
	require.Contains(t, lines[0], "300→1300ms")
	require.Contains(t, lines[1], "#0 subtitle")
	require.Contains(t, lines[2], "█")
}

func TestColumns(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		entry      motion.TimelineEntry
		total      time.Duration
		start, end int
	}{
		{name: "full window", entry: motion.TimelineEntry{End: time.Second}, total: time.Second, start: 0, end: 10},
		{name: "second half", entry: motion.TimelineEntry{Start: 500 * time.Millisecond, End: time.Second}, total: time.Second, start: 5, end: 10},
		{name: "instant at end", entry: motion.TimelineEntry{Start: time.Second, End: time.Second}, total: time.Second, start: 9, end: 10},
		{name: "zero total", entry: motion.TimelineEntry{}, total: 0, start: 0, end: 1},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			start, end := columns(tc.entry, tc.total, 10)
			require.Equal(t, tc.start, start)
			require.Equal(t, tc.end, end)
		})
	}
}

func TestElementTable(t *testing.T) {
	t.Parallel()

	require.Contains(t, ElementTable(nil), "no elements")

	view := ElementTable([]orchestrator.ElementPlan{
		{
			ID:        "backdrop",
			Kind:      "particles",
			Variant:   motion.VariantReduced,
			Effective: motion.NewEffectConfig("particles", map[string]float64{"particleCount": 30, "speed": 0.5}),
		},
		{
			ID:        "cta",
			Kind:      "magneticButton",
			Variant:   motion.VariantDisabled,
			Effective: motion.NewEffectConfig("magneticButton", map[string]float64{"strength": 0}),
		},
	})
	require.Contains(t, view, "backdrop")
	require.Contains(t, view, "reduced")
	require.Contains(t, view, "particleCount=30 speed=0.5")
	require.Contains(t, view, "disabled")
}

func TestEnvironmentBadges(t *testing.T) {
	t.Parallel()

	view := EnvironmentBadges(motion.EnvironmentState{ReducedMotion: true}, motion.TierReduced)
	require.Contains(t, view, "reduced motion: on")
	require.Contains(t, view, "narrow: off")
	require.Contains(t, view, "tier: reduced")
}
