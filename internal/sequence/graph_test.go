package sequence

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/cadence/internal/domain/motion"
)

func TestBuildGraph_OrdersDependenciesFirst(t *testing.T) {
	t.Parallel()

	graph, err := BuildGraph([]motion.SequenceStep{
		{Name: "c", After: "b"},
		{Name: "b", After: "a"},
		{Name: "a"},
		{Name: "d"},
	})
	require.NoError(t, err)
	require.Equal(t, []int{2, 1, 0, 3}, graph.Order)
	require.Equal(t, "b", graph.Nodes[0].DependsOn.Step.Name)
	require.Len(t, graph.Nodes[2].Dependents, 1)
}

func TestBuildGraph_IndependentStepsKeepInputOrder(t *testing.T) {
	t.Parallel()

	graph, err := BuildGraph([]motion.SequenceStep{{Name: "z"}, {Name: "a"}, {Name: "m"}})
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, graph.Order)
}
