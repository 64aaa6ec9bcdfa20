package graph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func indexOf(t *testing.T, order []string, name string) int {
	t.Helper()
	for i, n := range order {
		if n == name {
			return i
		}
	}
	t.Fatalf("%q not found in order %v", name, order)
	return -1
}

func TestTopologicalOrderPlacesDependenciesFirst(t *testing.T) {
	g := New()
	g.AddEdge("a", "b")
	g.AddEdge("b", "c")
	g.AddNode("d")

	order, err := g.TopologicalOrder()
	require.NoError(t, err)
	require.Len(t, order, 4)
	require.Less(t, indexOf(t, order, "c"), indexOf(t, order, "b"))
	require.Less(t, indexOf(t, order, "b"), indexOf(t, order, "a"))
}

func TestTopologicalOrderDiamond(t *testing.T) {
	g := New()
	g.AddEdge("top", "left")
	g.AddEdge("top", "right")
	g.AddEdge("left", "base")
	g.AddEdge("right", "base")

	order, err := g.TopologicalOrder()
	require.NoError(t, err)
	require.Less(t, indexOf(t, order, "base"), indexOf(t, order, "left"))
	require.Less(t, indexOf(t, order, "base"), indexOf(t, order, "right"))
	require.Less(t, indexOf(t, order, "left"), indexOf(t, order, "top"))
	require.Less(t, indexOf(t, order, "right"), indexOf(t, order, "top"))
}

func TestTopologicalOrderCycle(t *testing.T) {
	g := New()
	g.AddEdge("a", "b")
	g.AddEdge("b", "a")

	_, err := g.TopologicalOrder()
	var cycleErr *CycleError
	require.ErrorAs(t, err, &cycleErr)
	require.ElementsMatch(t, []string{"a", "b"}, cycleErr.Nodes)
}

func TestSubgraphOrderClosure(t *testing.T) {
	g := New()
	g.AddEdge("a", "b")
	g.AddEdge("b", "c")
	g.AddNode("d")

	order, err := g.SubgraphOrder("a")
	require.NoError(t, err)
	require.Equal(t, []string{"c", "b", "a"}, order)
}

func TestSubgraphOrderExcludesUnreachable(t *testing.T) {
	g := New()
	g.AddEdge("a", "b")
	g.AddEdge("c", "b")

	order, err := g.SubgraphOrder("a")
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"a", "b"}, order)
	require.Less(t, indexOf(t, order, "b"), indexOf(t, order, "a"))
}

func TestSubgraphOrderUnknownTarget(t *testing.T) {
	g := New()
	g.AddNode("a")

	order, err := g.SubgraphOrder("nope")
	require.NoError(t, err)
	require.Empty(t, order)
}

func TestSubgraphOrderIdempotent(t *testing.T) {
	g := New()
	g.AddEdge("a", "b")
	g.AddEdge("b", "c")

	first, err := g.SubgraphOrder("a")
	require.NoError(t, err)
	second, err := g.SubgraphOrder("a")
	require.NoError(t, err)
	require.Equal(t, first, second)
}
