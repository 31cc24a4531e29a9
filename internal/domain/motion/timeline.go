package motion

import "time"

// SequenceStep declares one named animation step. Steps without After chain
// off the delays of the steps listed before them; After names a step whose
// end this step waits for.
type SequenceStep struct {
	Name     string        `json:"name" yaml:"name"`
	Delay    time.Duration `json:"delay" yaml:"delay"`
	Duration time.Duration `json:"duration" yaml:"duration"`
	After    string        `json:"after,omitempty" yaml:"after,omitempty"`
}

// TimelineEntry is the resolved absolute window of one step for one item.
type TimelineEntry struct {
	Item  int           `json:"item" yaml:"item"`
	Name  string        `json:"name" yaml:"name"`
	Start time.Duration `json:"start" yaml:"start"`
	End   time.Duration `json:"end" yaml:"end"`
}

// Duration returns the length of the entry window.
func (e TimelineEntry) Duration() time.Duration {
	return e.End - e.Start
}

// Timeline is an ordered offset plan. It is computed on demand and never
// shared between callers.
type Timeline struct {
	Entries []TimelineEntry `json:"entries" yaml:"entries"`
}

// Len returns the number of entries.
func (t Timeline) Len() int {
	return len(t.Entries)
}

// Total returns the latest end offset, i.e. the time until every step has
// finished.
func (t Timeline) Total() time.Duration {
	var total time.Duration
	for _, e := range t.Entries {
		if e.End > total {
			total = e.End
		}
	}
	return total
}

// ForItem returns the entries of one repeated item in timeline order.
func (t Timeline) ForItem(item int) []TimelineEntry {
	var out []TimelineEntry
	for _, e := range t.Entries {
		if e.Item == item {
			out = append(out, e)
		}
	}
	return out
}

// ActiveAt returns the entries whose window contains at.
func (t Timeline) ActiveAt(at time.Duration) []TimelineEntry {
	var out []TimelineEntry
	for _, e := range t.Entries {
		if at >= e.Start && at < e.End {
			out = append(out, e)
		}
	}
	return out
}
