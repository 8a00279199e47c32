// SPDX-License-Identifier: MIT
// Package: graphgen/dot
package dot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphgen/core"
	"github.com/katalvlaran/graphgen/dot"
	"github.com/katalvlaran/graphgen/gen"
	"github.com/katalvlaran/graphgen/spec"
)

func TestMarshal_UndirectedShape(t *testing.T) {
	t.Parallel()

	w := 2.5
	g := &core.Graph{
		Spec: spec.New(spec.GraphSpec{Weighting: spec.Weighted}),
		Nodes: []*core.Node{
			{ID: "N0"}, {ID: "N1", Type: "person"},
		},
		Edges: []core.Edge{{Source: "N0", Target: "N1", Weight: &w}},
	}

	out := dot.Marshal(g)
	assert.Contains(t, out, "graph G {")
	assert.Contains(t, out, `"N0" -- "N1"`)
	assert.Contains(t, out, `type="person"`)
	assert.Contains(t, out, "2.50")
	assert.NotContains(t, out, "->")
}

func TestMarshal_DirectedShape(t *testing.T) {
	t.Parallel()

	g := &core.Graph{
		Spec:  spec.New(spec.GraphSpec{Directionality: spec.Directed}),
		Nodes: []*core.Node{{ID: "N0"}, {ID: "N1"}},
		Edges: []core.Edge{{Source: "N0", Target: "N1"}},
	}

	out := dot.Marshal(g)
	assert.Contains(t, out, "digraph G {")
	assert.Contains(t, out, `"N0" -> "N1"`)
}

func TestMarshal_Deterministic(t *testing.T) {
	t.Parallel()

	s := spec.GraphSpec{Partiteness: &spec.PartitenessAxis{Kind: spec.Bipartite}}
	g, err := gen.Generate(s, gen.Config{NodeCount: 8, Seed: 5})
	require.NoError(t, err)

	first := dot.Marshal(g)
	assert.Equal(t, first, dot.Marshal(g))
	assert.Contains(t, first, "partition=")
}
