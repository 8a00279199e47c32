// SPDX-License-Identifier: MIT
// Package: graphgen/validate
package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphgen/core"
	"github.com/katalvlaran/graphgen/gen"
	"github.com/katalvlaran/graphgen/spec"
	"github.com/katalvlaran/graphgen/validate"
)

// graphOf builds a small fixture graph with the given spec patch.
func graphOf(s spec.GraphSpec, n int, edges [][2]int) *core.Graph {
	g := &core.Graph{Spec: spec.New(s)}
	for i := 0; i < n; i++ {
		g.Nodes = append(g.Nodes, &core.Node{ID: core.NodeID(i)})
	}
	for _, e := range edges {
		g.Edges = append(g.Edges, core.Edge{Source: core.NodeID(e[0]), Target: core.NodeID(e[1])})
	}

	return g
}

func statusOf(r validate.Result, property string) validate.Status {
	for _, p := range r.Properties {
		if p.Property == property {
			return p.Status
		}
	}

	return ""
}

// Every valid core-axis combination must round-trip: generate, then
// validate clean.
func TestRoundTrip_CorePermutations(t *testing.T) {
	t.Parallel()

	perms := spec.CorePermutations()
	require.NotEmpty(t, perms)

	for _, s := range perms {
		g, err := gen.Generate(s, gen.Config{NodeCount: 10, Seed: 42})
		require.NoError(t, err, "generate: %s", spec.Describe(s))

		r := validate.Validate(g)
		require.True(t, r.Valid, "spec %s\n%s", spec.Describe(s), r.String())
	}
}

func TestRoundTrip_BipartiteProperty(t *testing.T) {
	t.Parallel()

	s := spec.GraphSpec{
		Partiteness:  &spec.PartitenessAxis{Kind: spec.Bipartite},
		Connectivity: spec.Connected,
	}
	g, err := gen.Generate(s, gen.Config{NodeCount: 10, Seed: 42})
	require.NoError(t, err)

	ok, _, _ := validate.CheckBipartiteWithBFS(g)
	assert.True(t, ok)

	r := validate.Validate(g)
	assert.True(t, r.Valid, r.String())
}

func TestRoundTrip_AdvancedAxes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		s    spec.GraphSpec
		n    int
	}{
		{"star", spec.GraphSpec{Star: &spec.StarAxis{}}, 8},
		{"wheel", spec.GraphSpec{Wheel: &spec.WheelAxis{}}, 9},
		{"grid", spec.GraphSpec{Grid: &spec.GridAxis{Rows: 3, Cols: 4}}, 12},
		{"binary tree", spec.GraphSpec{BinaryTree: &spec.BinaryTreeAxis{}}, 11},
		{"tournament", spec.GraphSpec{
			Directionality: spec.Directed,
			Tournament:     &spec.TournamentAxis{},
		}, 6},
		{"cubic", spec.GraphSpec{Regularity: &spec.RegularityAxis{Kind: spec.Cubic}}, 10},
		{"complete bipartite", spec.GraphSpec{
			CompleteBipartite: &spec.CompleteBipartiteAxis{M: 3, N: 4},
		}, 7},
		{"eulerian circuit", spec.GraphSpec{
			Eulerian: &spec.EulerianAxis{Kind: spec.EulerianCircuit},
		}, 8},
		{"hamiltonian cycle", spec.GraphSpec{
			Hamiltonian: &spec.HamiltonianAxis{Kind: spec.HamiltonianCycle},
		}, 8},
		{"k-vertex-connected", spec.GraphSpec{
			VertexConnectivity: &spec.VertexConnectivityAxis{K: 3},
		}, 10},
		{"treewidth", spec.GraphSpec{Treewidth: &spec.TreewidthAxis{Width: 2}}, 10},
		{"3-colorable", spec.GraphSpec{Colorability: &spec.ColorabilityAxis{K: 3}}, 10},
		{"chordal", spec.GraphSpec{Chordal: &spec.ChordalAxis{}}, 12},
		{"interval", spec.GraphSpec{Interval: &spec.IntervalAxis{}}, 10},
		{"permutation", spec.GraphSpec{Permutation: &spec.PermutationAxis{}}, 10},
		{"split", spec.GraphSpec{Split: &spec.SplitAxis{}}, 10},
		{"cograph", spec.GraphSpec{Cograph: &spec.CographAxis{}}, 12},
		{"claw-free", spec.GraphSpec{ClawFree: &spec.ClawFreeAxis{}}, 10},
		{"line graph", spec.GraphSpec{LineGraph: &spec.LineGraphAxis{}}, 10},
		{"self-complementary", spec.GraphSpec{SelfComplementary: &spec.SelfComplementaryAxis{}}, 9},
		{"scale-free", spec.GraphSpec{ScaleFree: &spec.ScaleFreeAxis{}}, 30},
		{"modular", spec.GraphSpec{Modular: &spec.ModularAxis{Communities: 3}}, 18},
		{"core-periphery", spec.GraphSpec{CorePeriphery: &spec.CorePeripheryAxis{}}, 12},
		{"circulant", spec.GraphSpec{Circulant: &spec.CirculantAxis{Offsets: []int{1, 2}}}, 10},
		{"girth", spec.GraphSpec{Girth: &spec.GirthAxis{Target: 5}}, 9},
		{"outerplanar", spec.GraphSpec{Outerplanar: &spec.OuterplanarAxis{}}, 10},
		{"cactus", spec.GraphSpec{Cactus: &spec.CactusAxis{}}, 11},
		{"series-parallel", spec.GraphSpec{SeriesParallel: &spec.SeriesParallelAxis{}}, 9},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			g, err := gen.Generate(tc.s, gen.Config{NodeCount: tc.n, Seed: 7})
			require.NoError(t, err)

			r := validate.Validate(g)
			require.True(t, r.Valid, r.String())
		})
	}
}

func TestValidate_WeightViolations(t *testing.T) {
	t.Parallel()

	g := graphOf(spec.GraphSpec{Weighting: spec.Weighted}, 2, [][2]int{{0, 1}})
	r := validate.Validate(g)
	assert.False(t, r.Valid)
	assert.Equal(t, validate.StatusFail, statusOf(r, "weighting"))
}

func TestValidate_CycleInAcyclic(t *testing.T) {
	t.Parallel()

	g := graphOf(
		spec.GraphSpec{Cycles: spec.Acyclic, Connectivity: spec.Connected},
		3,
		[][2]int{{0, 1}, {1, 2}, {2, 0}},
	)
	r := validate.Validate(g)
	assert.False(t, r.Valid)
	assert.Equal(t, validate.StatusFail, statusOf(r, "cycles"))
}

func TestValidate_DisconnectedWhenConnected(t *testing.T) {
	t.Parallel()

	g := graphOf(spec.GraphSpec{Connectivity: spec.Connected}, 4, [][2]int{{0, 1}, {2, 3}})
	r := validate.Validate(g)
	assert.False(t, r.Valid)
	assert.Equal(t, validate.StatusFail, statusOf(r, "connectivity"))
}

func TestValidate_SelfLoopViolations(t *testing.T) {
	t.Parallel()

	// A loop on a loop-free spec fails.
	g := graphOf(spec.GraphSpec{}, 2, [][2]int{{0, 1}, {1, 1}})
	r := validate.Validate(g)
	assert.Equal(t, validate.StatusFail, statusOf(r, "self_loops"))

	// No loop on a loop-allowing spec also fails.
	g = graphOf(spec.GraphSpec{SelfLoops: spec.LoopsAllowed}, 2, [][2]int{{0, 1}})
	r = validate.Validate(g)
	assert.Equal(t, validate.StatusFail, statusOf(r, "self_loops"))
}

func TestValidate_ParallelEdgeOnSimpleSpec(t *testing.T) {
	t.Parallel()

	g := graphOf(spec.GraphSpec{}, 2, [][2]int{{0, 1}, {0, 1}})
	r := validate.Validate(g)
	assert.False(t, r.Valid)
	assert.Equal(t, validate.StatusFail, statusOf(r, "edge_multiplicity"))
}

// An undirected acyclic multigraph cannot hold a parallel pair without
// breaking acyclicity; the multiplicity check records a skip, not a failure.
func TestValidate_MultiplicitySkippedOnForests(t *testing.T) {
	t.Parallel()

	g := graphOf(spec.GraphSpec{
		Cycles:           spec.Acyclic,
		Connectivity:     spec.Connected,
		EdgeMultiplicity: spec.Multigraph,
	}, 3, [][2]int{{0, 1}, {1, 2}})
	r := validate.Validate(g)
	assert.True(t, r.Valid, r.String())
	assert.Equal(t, validate.StatusSkipped, statusOf(r, "edge_multiplicity"))
}

func TestCheckBipartiteWithBFS_OddCycle(t *testing.T) {
	t.Parallel()

	triangle := graphOf(spec.GraphSpec{}, 3, [][2]int{{0, 1}, {1, 2}, {2, 0}})
	ok, u, w := validate.CheckBipartiteWithBFS(triangle)
	assert.False(t, ok)
	assert.NotEmpty(t, u)
	assert.NotEmpty(t, w)

	square := graphOf(spec.GraphSpec{}, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	ok, _, _ = validate.CheckBipartiteWithBFS(square)
	assert.True(t, ok)
}

func TestValidate_GirthMismatch(t *testing.T) {
	t.Parallel()

	// A 4-cycle against a girth-5 demand.
	g := graphOf(
		spec.GraphSpec{Girth: &spec.GirthAxis{Target: 5}},
		4,
		[][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}},
	)
	for _, node := range g.Nodes {
		node.Data = map[string]any{gen.DataGirthTarget: 5}
	}
	r := validate.Validate(g)
	assert.Equal(t, validate.StatusFail, statusOf(r, "girth"))
}

func TestValidate_SkipsExactSearchOnLargeGraphs(t *testing.T) {
	t.Parallel()

	s := spec.GraphSpec{Chordal: &spec.ChordalAxis{}}
	g, err := gen.Generate(s, gen.Config{NodeCount: 40, Seed: 3})
	require.NoError(t, err)

	r := validate.Validate(g)
	assert.True(t, r.Valid, r.String())
	assert.Equal(t, validate.StatusSkipped, statusOf(r, "chordal"))
}

func TestValidate_ExtremalAdvisory(t *testing.T) {
	t.Parallel()

	s := spec.GraphSpec{IndependenceNumber: &spec.IndependenceNumberAxis{Target: 4}}
	g, err := gen.Generate(s, gen.Config{NodeCount: 10, Seed: 8})
	require.NoError(t, err)

	// The target is annotated, not enforced; a mismatch may only surface
	// as an advisory skip, never a failure.
	r := validate.Validate(g)
	assert.True(t, r.Valid, r.String())
	status := statusOf(r, "independence_number")
	assert.Contains(t, []validate.Status{validate.StatusPass, validate.StatusSkipped}, status)
}

func TestValidate_ColoringViolation(t *testing.T) {
	t.Parallel()

	g := graphOf(
		spec.GraphSpec{Colorability: &spec.ColorabilityAxis{K: 2}},
		2,
		[][2]int{{0, 1}},
	)
	for _, node := range g.Nodes {
		node.Data = map[string]any{gen.DataColor: 0} // both endpoints color 0
	}
	r := validate.Validate(g)
	assert.Equal(t, validate.StatusFail, statusOf(r, "colorability"))
}

func TestResult_Reporting(t *testing.T) {
	t.Parallel()

	g := graphOf(spec.GraphSpec{Cycles: spec.Acyclic}, 3, [][2]int{{0, 1}, {1, 2}, {2, 0}})
	r := validate.Validate(g)

	require.False(t, r.Valid)
	require.NotEmpty(t, r.Failures())
	assert.Contains(t, r.String(), "valid=false")
	assert.Contains(t, r.String(), "[fail]")
}
