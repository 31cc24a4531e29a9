package sequence

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/cadence/internal/domain/motion"
)

// Node represents one step in the dependency graph.
type Node struct {
	Index      int
	Step       motion.SequenceStep
	DependsOn  *Node
	Dependents []*Node
}

// Graph links steps that declare an explicit After dependency.
type Graph struct {
	Nodes  []*Node
	byName map[string]*Node

	// Order lists node indices in dependency order, ties broken by input order.
	Order []int
}

// BuildGraph validates the steps and orders them so every step appears after
// the step it waits for.
func BuildGraph(steps []motion.SequenceStep) (*Graph, error) {
	g := &Graph{
		Nodes:  make([]*Node, 0, len(steps)),
		byName: make(map[string]*Node, len(steps)),
	}

	for i, step := range steps {
		if err := g.addNode(i, step); err != nil {
			return nil, err
		}
	}

	for _, node := range g.Nodes {
		if node.Step.After == "" {
			continue
		}
		if err := g.addEdge(node.Step.After, node.Step.Name); err != nil {
			return nil, err
		}
	}

	if err := g.topologicalSort(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Graph) addNode(index int, step motion.SequenceStep) error {
	name := strings.TrimSpace(step.Name)
	if name == "" {
		return motion.NewScheduleError("step name is required", map[string]interface{}{"index": index})
	}
	if _, exists := g.byName[name]; exists {
		return motion.NewScheduleError(fmt.Sprintf("duplicate step name %q", name), map[string]interface{}{"index": index})
	}
	if step.Delay < 0 {
		return motion.NewScheduleError(fmt.Sprintf("step %q has negative delay", name), map[string]interface{}{"delay": step.Delay})
	}
	if step.Duration < 0 {
		return motion.NewScheduleError(fmt.Sprintf("step %q has negative duration", name), map[string]interface{}{"duration": step.Duration})
	}

	step.Name = name
	step.After = strings.TrimSpace(step.After)
	node := &Node{Index: index, Step: step}
	g.Nodes = append(g.Nodes, node)
	g.byName[name] = node
	return nil
}

func (g *Graph) addEdge(from, to string) error {
	source, ok := g.byName[from]
	if !ok {
		return motion.NewScheduleError(fmt.Sprintf("step %q waits for unknown step %q", to, from), nil)
	}
	target := g.byName[to]
	if source == target {
		return motion.NewScheduleError(fmt.Sprintf("step %q waits for itself", to), nil)
	}

	source.Dependents = append(source.Dependents, target)
	target.DependsOn = source
	return nil
}

// topologicalSort runs Kahn's algorithm, always releasing the lowest input
// index first so independent steps keep their declared order.
func (g *Graph) topologicalSort() error {
	indegree := make([]int, len(g.Nodes))
	for _, node := range g.Nodes {
		if node.DependsOn != nil {
			indegree[node.Index]++
		}
	}

	var ready []int
	for i, degree := range indegree {
		if degree == 0 {
			ready = append(ready, i)
		}
	}

	order := make([]int, 0, len(g.Nodes))
	for len(ready) > 0 {
		current := ready[0]
		ready = ready[1:]
		order = append(order, current)

		for _, dependent := range g.Nodes[current].Dependents {
			indegree[dependent.Index]--
			if indegree[dependent.Index] == 0 {
				ready = insertSorted(ready, dependent.Index)
			}
		}
	}

	if len(order) != len(g.Nodes) {
		return motion.NewScheduleError("dependency cycle detected between steps", nil)
	}

	g.Order = order
	return nil
}

func insertSorted(queue []int, value int) []int {
	pos := len(queue)
	for i, v := range queue {
		if value < v {
			pos = i
			break
		}
	}
	queue = append(queue, 0)
	copy(queue[pos+1:], queue[pos:])
	queue[pos] = value
	return queue
}
