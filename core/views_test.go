package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphgen/core"
	"github.com/katalvlaran/graphgen/spec"
)

// triangle builds N0—N1—N2—N0 under the given directionality.
func triangle(dir spec.Directionality) *core.Graph {
	return &core.Graph{
		Nodes: []*core.Node{{ID: "N0"}, {ID: "N1"}, {ID: "N2"}},
		Edges: []core.Edge{
			{Source: "N0", Target: "N1"},
			{Source: "N1", Target: "N2"},
			{Source: "N2", Target: "N0"},
		},
		Spec: spec.New(spec.GraphSpec{Directionality: dir}),
	}
}

func TestNodeID(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "N0", core.NodeID(0))
	assert.Equal(t, "N17", core.NodeID(17))
}

// TestAdjacencySymmetric verifies the symmetric view mirrors every edge and
// sorts neighbor lists.
func TestAdjacencySymmetric(t *testing.T) {
	t.Parallel()

	g := triangle(spec.Undirected)
	adj := g.Adjacency()
	require.Len(t, adj, 3)
	assert.Equal(t, []string{"N1", "N2"}, adj["N0"])
	assert.Equal(t, []string{"N0", "N2"}, adj["N1"])
}

// TestOutAdjacencyDirected verifies stored direction is honored for directed
// specs and mirrored for undirected ones.
func TestOutAdjacencyDirected(t *testing.T) {
	t.Parallel()

	g := triangle(spec.Directed)
	out := g.OutAdjacency()
	assert.Equal(t, []string{"N1"}, out["N0"])
	assert.Equal(t, []string{"N2"}, out["N1"])

	u := triangle(spec.Undirected)
	assert.Equal(t, []string{"N1", "N2"}, u.OutAdjacency()["N0"])
}

// TestDegreeLoopConvention verifies a self-loop counts 2 toward undirected
// degree.
func TestDegreeLoopConvention(t *testing.T) {
	t.Parallel()

	g := &core.Graph{
		Nodes: []*core.Node{{ID: "N0"}, {ID: "N1"}},
		Edges: []core.Edge{
			{Source: "N0", Target: "N1"},
			{Source: "N0", Target: "N0"},
		},
		Spec: spec.New(spec.GraphSpec{SelfLoops: spec.LoopsAllowed}),
	}
	deg := g.DegreeMap()
	assert.Equal(t, 3, deg["N0"])
	assert.Equal(t, 1, deg["N1"])
	assert.Equal(t, 1, g.SelfLoopCount())
}

// TestHasEdgeOrientation verifies orientation sensitivity per spec.
func TestHasEdgeOrientation(t *testing.T) {
	t.Parallel()

	d := triangle(spec.Directed)
	assert.True(t, d.HasEdge("N0", "N1"))
	assert.False(t, d.HasEdge("N1", "N0"))

	u := triangle(spec.Undirected)
	assert.True(t, u.HasEdge("N1", "N0"))
}

// TestParallelEdgeCount verifies multi-edge counting under both
// directionality interpretations.
func TestParallelEdgeCount(t *testing.T) {
	t.Parallel()

	g := &core.Graph{
		Nodes: []*core.Node{{ID: "N0"}, {ID: "N1"}},
		Edges: []core.Edge{
			{Source: "N0", Target: "N1"},
			{Source: "N1", Target: "N0"},
		},
		Spec: spec.New(spec.GraphSpec{EdgeMultiplicity: spec.Multigraph}),
	}
	// Undirected: the reversed pair is the same unordered edge.
	assert.Equal(t, 1, g.ParallelEdgeCount())

	g.Spec = spec.New(spec.GraphSpec{Directionality: spec.Directed})
	// Directed: opposite orientations are distinct arcs.
	assert.Equal(t, 0, g.ParallelEdgeCount())
}

// TestInOutDegreeDirected verifies directed in/out counting.
func TestInOutDegreeDirected(t *testing.T) {
	t.Parallel()

	g := triangle(spec.Directed)
	assert.Equal(t, 1, g.OutDegreeMap()["N0"])
	assert.Equal(t, 1, g.InDegreeMap()["N0"])
}
