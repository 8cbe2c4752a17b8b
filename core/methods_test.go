package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/airpaths/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGraph_Empty(t *testing.T) {
	g := core.NewGraph()
	assert.Equal(t, 0, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.Empty(t, g.Vertices())
	assert.False(t, g.HasVertex("A"))
	assert.Nil(t, g.Neighbors("A"))
}

func TestAddEdge_RegistersBothEndpoints(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("AER", "KZN", 500))

	// Destination gets an entry even though it has no outgoing edges.
	assert.True(t, g.HasVertex("AER"))
	assert.True(t, g.HasVertex("KZN"))
	assert.Equal(t, []string{"AER", "KZN"}, g.Vertices())
	assert.Equal(t, []core.Edge{{To: "KZN", Weight: 500}}, g.Neighbors("AER"))
	assert.Nil(t, g.Neighbors("KZN"))
	assert.Equal(t, 1, g.EdgeCount())
}

func TestAddEdge_KeepsParallelEdges(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 7))
	require.NoError(t, g.AddEdge("A", "B", 7))
	require.NoError(t, g.AddEdge("A", "B", 3))

	assert.Equal(t, []core.Edge{
		{To: "B", Weight: 7},
		{To: "B", Weight: 7},
		{To: "B", Weight: 3},
	}, g.Neighbors("A"))
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, 2, g.VertexCount())
}

func TestAddEdge_ExistingDestinationKeepsEdges(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("B", "C", 2))
	require.NoError(t, g.AddEdge("A", "B", 5))

	// Registering B as a destination must not reset its outgoing list.
	assert.Equal(t, []core.Edge{{To: "C", Weight: 2}}, g.Neighbors("B"))
}

func TestAddEdge_SelfLoop(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("X", "X", 0))
	assert.Equal(t, []core.Edge{{To: "X", Weight: 0}}, g.Neighbors("X"))
	assert.Equal(t, 1, g.VertexCount())
}

func TestAddEdge_Validation(t *testing.T) {
	cases := []struct {
		name     string
		from, to string
		weight   int64
		want     error
	}{
		{"empty source", "", "B", 1, core.ErrEmptyVertexID},
		{"empty destination", "A", "", 1, core.ErrEmptyVertexID},
		{"negative weight", "A", "B", -1, core.ErrNegativeWeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := core.NewGraph()
			err := g.AddEdge(tc.from, tc.to, tc.weight)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
			assert.Equal(t, 0, g.VertexCount())
			assert.Equal(t, 0, g.EdgeCount())
		})
	}
}

func TestNeighbors_ReturnsCopy(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))

	n := g.Neighbors("A")
	n[0].Weight = 99

	assert.Equal(t, int64(1), g.Neighbors("A")[0].Weight)
}

func TestEachNeighbor_InsertionOrder(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "C", 1))
	require.NoError(t, g.AddEdge("A", "B", 2))

	var seen []string
	g.EachNeighbor("A", func(e core.Edge) { seen = append(seen, e.To) })
	assert.Equal(t, []string{"C", "B"}, seen)

	g.EachNeighbor("missing", func(core.Edge) { t.Fatal("unexpected call") })
}

func TestEdges_SortedSourcesAndEarlyStop(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("B", "C", 2))
	require.NoError(t, g.AddEdge("A", "C", 10))
	require.NoError(t, g.AddEdge("A", "B", 5))

	type pair struct {
		from string
		e    core.Edge
	}
	var all []pair
	g.Edges(func(from string, e core.Edge) bool {
		all = append(all, pair{from, e})
		return true
	})
	assert.Equal(t, []pair{
		{"A", core.Edge{To: "C", Weight: 10}},
		{"A", core.Edge{To: "B", Weight: 5}},
		{"B", core.Edge{To: "C", Weight: 2}},
	}, all)

	calls := 0
	g.Edges(func(string, core.Edge) bool {
		calls++
		return false
	})
	assert.Equal(t, 1, calls)
}
