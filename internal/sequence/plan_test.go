package sequence

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/cadence/internal/domain/motion"
)

func TestGeneratePlan(t *testing.T) {
	t.Parallel()

	plan, err := GeneratePlan(Request{
		Name:    "metrics",
		Steps:   []motion.SequenceStep{{Name: "fade_in", Duration: ms(400)}},
		Items:   2,
		Stagger: ms(100),
	})
	require.NoError(t, err)
	require.Equal(t, "metrics", plan.Name)
	require.Equal(t, 2, plan.Timeline.Len())

	out := plan.String()
	require.Contains(t, out, "metrics (2 entries, total 500ms)")
	require.Contains(t, out, "[1] fade_in")
	require.Contains(t, out, "100ms")
}

func TestGeneratePlan_WrapsScheduleErrors(t *testing.T) {
	t.Parallel()

	_, err := GeneratePlan(Request{Name: "broken", Steps: []motion.SequenceStep{{Name: "a"}}, Items: 1, Stagger: ms(-5)})
	require.Error(t, err)
	require.ErrorIs(t, err, motion.ErrInvalidSchedule)
	require.Contains(t, err.Error(), "schedule broken")
}

func TestPlanStringNil(t *testing.T) {
	t.Parallel()

	var plan *Plan
	require.Equal(t, "", plan.String())
}
