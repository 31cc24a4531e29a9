// Package sequence lays out animation steps on an absolute offset timeline.
// It never sleeps or triggers anything; the renderer fires the steps at the
// returned offsets.
package sequence

import (
	"fmt"
	"sort"
	"time"

	"github.com/alexisbeaulieu97/cadence/internal/domain/motion"
)

// Schedule computes the timeline of steps repeated over itemCount items, each
// item offset by index*stagger.
//
// A step without After starts after the sum of the delays of the chained
// steps listed before it plus its own delay. A step with After starts when the
// named step ends plus its own delay. The result is ordered by start offset;
// ties keep item order, then input order.
func Schedule(steps []motion.SequenceStep, itemCount int, stagger time.Duration) (motion.Timeline, error) {
	if itemCount < 0 {
		return motion.Timeline{}, motion.NewScheduleError(fmt.Sprintf("item count must be non-negative, got %d", itemCount), map[string]interface{}{
			"item_count": itemCount,
		})
	}
	if stagger < 0 {
		return motion.Timeline{}, motion.NewScheduleError(fmt.Sprintf("stagger delay must be non-negative, got %s", stagger), map[string]interface{}{
			"stagger": stagger,
		})
	}

	graph, err := BuildGraph(steps)
	if err != nil {
		return motion.Timeline{}, err
	}

	if itemCount == 0 || len(graph.Nodes) == 0 {
		return motion.Timeline{Entries: []motion.TimelineEntry{}}, nil
	}

	windows := baseWindows(graph)

	entries := make([]motion.TimelineEntry, 0, itemCount*len(windows))
	for item := 0; item < itemCount; item++ {
		offset := time.Duration(item) * stagger
		for i, node := range graph.Nodes {
			entries = append(entries, motion.TimelineEntry{
				Item:  item,
				Name:  node.Step.Name,
				Start: windows[i].start + offset,
				End:   windows[i].end + offset,
			})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Start < entries[j].Start
	})

	return motion.Timeline{Entries: entries}, nil
}

type window struct {
	start time.Duration
	end   time.Duration
}

// baseWindows resolves the offsets of a single item.
func baseWindows(graph *Graph) []window {
	windows := make([]window, len(graph.Nodes))

	var chained time.Duration
	for _, node := range graph.Nodes {
		if node.DependsOn != nil {
			continue
		}
		chained += node.Step.Delay
		windows[node.Index] = window{start: chained, end: chained + node.Step.Duration}
	}

	for _, idx := range graph.Order {
		node := graph.Nodes[idx]
		if node.DependsOn == nil {
			continue
		}
		start := windows[node.DependsOn.Index].end + node.Step.Delay
		windows[idx] = window{start: start, end: start + node.Step.Duration}
	}

	return windows
}
