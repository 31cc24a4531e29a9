package sequence

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/cadence/internal/domain/motion"
)

// Request bundles the inputs of one Schedule call so callers can carry
// sequences around by value.
type Request struct {
	Name    string
	Steps   []motion.SequenceStep
	Items   int
	Stagger time.Duration
}

// Plan is a named, scheduled sequence.
type Plan struct {
	Name     string
	Timeline motion.Timeline
}

// GeneratePlan schedules the request.
func GeneratePlan(req Request) (*Plan, error) {
	timeline, err := Schedule(req.Steps, req.Items, req.Stagger)
	if err != nil {
		return nil, fmt.Errorf("schedule %s: %w", req.Name, err)
	}
	return &Plan{Name: req.Name, Timeline: timeline}, nil
}

// String renders a human readable summary of the plan.
func (p *Plan) String() string {
	if p == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%d entries, total %s)\n", p.Name, p.Timeline.Len(), p.Timeline.Total())
	for _, e := range p.Timeline.Entries {
		fmt.Fprintf(&b, "  [%d] %-16s %6s -> %6s\n", e.Item, e.Name, formatMillis(e.Start), formatMillis(e.End))
	}
	return b.String()
}

func formatMillis(d time.Duration) string {
	return fmt.Sprintf("%dms", d.Milliseconds())
}
