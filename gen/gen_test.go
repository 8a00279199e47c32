// SPDX-License-Identifier: MIT
// Package: graphgen/gen
package gen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphgen/core"
	"github.com/katalvlaran/graphgen/spec"
)

func TestGenerate_Deterministic(t *testing.T) {
	t.Parallel()

	s := spec.GraphSpec{
		Directionality: spec.Directed,
		Weighting:      spec.Weighted,
		Density:        spec.Moderate,
	}
	cfg := Config{NodeCount: 25, Seed: 42}

	g1, err := Generate(s, cfg)
	require.NoError(t, err)
	g2, err := Generate(s, cfg)
	require.NoError(t, err)

	require.Equal(t, g1.Edges, g2.Edges)
	require.Equal(t, g1.Nodes, g2.Nodes)
}

func TestGenerate_SeedSensitivity(t *testing.T) {
	t.Parallel()

	s := spec.GraphSpec{Density: spec.Moderate, Connectivity: spec.Connected}

	g1, err := Generate(s, Config{NodeCount: 30, Seed: 1})
	require.NoError(t, err)
	g2, err := Generate(s, Config{NodeCount: 30, Seed: 2})
	require.NoError(t, err)

	require.NotEqual(t, g1.Edges, g2.Edges)
}

func TestGenerate_TreeShape(t *testing.T) {
	t.Parallel()

	s := spec.GraphSpec{Cycles: spec.Acyclic, Connectivity: spec.Connected}
	g, err := Generate(s, Config{NodeCount: 12, Seed: 7})
	require.NoError(t, err)

	require.Equal(t, 11, g.EdgeCount())
	require.Zero(t, g.SelfLoopCount())
	require.Zero(t, g.ParallelEdgeCount())
}

func TestGenerate_CompleteGraph(t *testing.T) {
	t.Parallel()

	s := spec.GraphSpec{Completeness: spec.Complete}
	g, err := Generate(s, Config{NodeCount: 5, Seed: 3})
	require.NoError(t, err)

	// K_5 has exactly n(n-1)/2 edges.
	require.Equal(t, 10, g.EdgeCount())
	require.Zero(t, g.ParallelEdgeCount())
}

func TestGenerate_CompleteBipartite(t *testing.T) {
	t.Parallel()

	s := spec.GraphSpec{CompleteBipartite: &spec.CompleteBipartiteAxis{M: 3, N: 4}}
	g, err := Generate(s, Config{NodeCount: 7, Seed: 11})
	require.NoError(t, err)

	require.Equal(t, 12, g.EdgeCount()) // 3*4 cross pairs

	left, right := 0, 0
	for _, node := range g.Nodes {
		switch node.Partition {
		case core.PartitionLeft:
			left++
		case core.PartitionRight:
			right++
		}
	}
	require.Equal(t, 3, left)
	require.Equal(t, 4, right)

	idx := g.NodeIndex()
	for _, e := range g.Edges {
		require.NotEqual(t,
			g.Nodes[idx[e.Source]].Partition,
			g.Nodes[idx[e.Target]].Partition,
			"edge %s-%s stays inside one side", e.Source, e.Target)
	}
}

func TestGenerate_SelfLoopGuarantee(t *testing.T) {
	t.Parallel()

	s := spec.GraphSpec{SelfLoops: spec.LoopsAllowed}
	g, err := Generate(s, Config{NodeCount: 10, Seed: 5})
	require.NoError(t, err)

	require.GreaterOrEqual(t, g.SelfLoopCount(), 1)
}

func TestGenerate_MultigraphGuarantee(t *testing.T) {
	t.Parallel()

	s := spec.GraphSpec{EdgeMultiplicity: spec.Multigraph}
	g, err := Generate(s, Config{NodeCount: 10, Seed: 5})
	require.NoError(t, err)

	require.GreaterOrEqual(t, g.ParallelEdgeCount(), 1)
}

// A duplicated self-loop must not satisfy the multigraph guarantee: the
// parallel pair has to join two distinct nodes even when loops are present.
func TestGenerate_MultigraphGuaranteeWithSelfLoops(t *testing.T) {
	t.Parallel()

	s := spec.GraphSpec{
		Directionality:   spec.Directed,
		EdgeMultiplicity: spec.Multigraph,
		SelfLoops:        spec.LoopsAllowed,
		Density:          spec.Sparse,
	}
	g, err := Generate(s, Config{NodeCount: 10, Seed: 5})
	require.NoError(t, err)

	seen := make(map[[2]string]int, len(g.Edges))
	parallels := 0
	for _, e := range g.Edges {
		if e.IsLoop() {
			continue
		}
		key := [2]string{e.Source, e.Target}
		if seen[key] > 0 {
			parallels++
		}
		seen[key]++
	}
	require.GreaterOrEqual(t, parallels, 1)
}

// Undirected acyclic multigraphs get no parallel pair: doubling an
// undirected edge would close a two-edge cycle.
func TestGenerate_MultigraphWithheldOnForests(t *testing.T) {
	t.Parallel()

	s := spec.GraphSpec{
		Cycles:           spec.Acyclic,
		Connectivity:     spec.Connected,
		EdgeMultiplicity: spec.Multigraph,
	}
	g, err := Generate(s, Config{NodeCount: 10, Seed: 5})
	require.NoError(t, err)

	require.Zero(t, g.ParallelEdgeCount())
	require.Len(t, g.Edges, 9)
}

func TestGenerate_DirectedAcyclicOrientation(t *testing.T) {
	t.Parallel()

	s := spec.GraphSpec{
		Directionality: spec.Directed,
		Cycles:         spec.Acyclic,
		Connectivity:   spec.Connected,
		Density:        spec.Moderate,
	}
	g, err := Generate(s, Config{NodeCount: 10, Seed: 9})
	require.NoError(t, err)

	// Every edge points from a lower to a higher node index, which rules
	// out directed cycles without running a traversal.
	idx := g.NodeIndex()
	for _, e := range g.Edges {
		require.Less(t, idx[e.Source], idx[e.Target])
	}
}

func TestGenerate_WeightBounds(t *testing.T) {
	t.Parallel()

	s := spec.GraphSpec{Weighting: spec.Weighted}
	g, err := Generate(s, Config{NodeCount: 15, Seed: 2})
	require.NoError(t, err)

	for _, e := range g.Edges {
		require.NotNil(t, e.Weight)
		require.GreaterOrEqual(t, *e.Weight, DefaultWeightMin)
		require.LessOrEqual(t, *e.Weight, DefaultWeightMax)
	}

	unweighted, err := Generate(spec.GraphSpec{}, Config{NodeCount: 15, Seed: 2})
	require.NoError(t, err)
	for _, e := range unweighted.Edges {
		require.Nil(t, e.Weight)
	}
}

func TestGenerate_Infeasible(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		s    spec.GraphSpec
		n    int
		want string
	}{
		{
			name: "regular degree too high",
			s: spec.GraphSpec{Regularity: &spec.RegularityAxis{
				Kind: spec.SpecificRegular, K: 5,
			}},
			n:    4,
			want: "k-regular graph requires k < n",
		},
		{
			name: "regular parity",
			s: spec.GraphSpec{Regularity: &spec.RegularityAxis{
				Kind: spec.SpecificRegular, K: 3,
			}},
			n:    5,
			want: "k-regular graph requires n*k to be even",
		},
		{
			name: "vertex connected too few nodes",
			s:    spec.GraphSpec{VertexConnectivity: &spec.VertexConnectivityAxis{K: 5}},
			n:    4,
			want: "k-vertex-connected graph requires at least",
		},
		{
			name: "self-complementary parity",
			s:    spec.GraphSpec{SelfComplementary: &spec.SelfComplementaryAxis{}},
			n:    6,
			want: "self-complementary graph requires",
		},
		{
			name: "girth exceeds node count",
			s:    spec.GraphSpec{Girth: &spec.GirthAxis{Target: 10}},
			n:    5,
			want: "girth target",
		},
		{
			name: "clique target exceeds node count",
			s:    spec.GraphSpec{CliqueNumber: &spec.CliqueNumberAxis{Target: 9}},
			n:    5,
			want: "clique number target",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Generate(tc.s, Config{NodeCount: tc.n, Seed: 1})
			require.Error(t, err)
			require.ErrorIs(t, err, ErrInfeasible)
			require.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestGenerate_SelfComplementaryEdgeCount(t *testing.T) {
	t.Parallel()

	s := spec.GraphSpec{SelfComplementary: &spec.SelfComplementaryAxis{}}
	g, err := Generate(s, Config{NodeCount: 5, Seed: 1})
	require.NoError(t, err)

	// Self-complementary graphs carry exactly n(n-1)/4 edges.
	require.Equal(t, 5, g.EdgeCount())
}

func TestGenerate_ContradictorySpec(t *testing.T) {
	t.Parallel()

	s := spec.GraphSpec{Cycles: spec.Acyclic, SelfLoops: spec.LoopsAllowed}
	_, err := Generate(s, Config{NodeCount: 5, Seed: 1})
	require.ErrorIs(t, err, ErrInfeasible)
	require.Contains(t, err.Error(), "contradictory specification")
}

func TestGenerate_InvalidConfig(t *testing.T) {
	t.Parallel()

	_, err := Generate(spec.GraphSpec{}, Config{NodeCount: 0})
	require.ErrorIs(t, err, ErrInvalidConfig)

	bad := Config{NodeCount: 5, WeightRange: &[2]float64{9, 1}}
	_, err = Generate(spec.GraphSpec{Weighting: spec.Weighted}, bad)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestGenerate_TournamentRequiresDirected(t *testing.T) {
	t.Parallel()

	s := spec.GraphSpec{Tournament: &spec.TournamentAxis{}}
	_, err := Generate(s, Config{NodeCount: 5, Seed: 1})
	require.ErrorIs(t, err, ErrSpecMismatch)

	s.Directionality = spec.Directed
	g, err := Generate(s, Config{NodeCount: 5, Seed: 1})
	require.NoError(t, err)
	require.Equal(t, 10, g.EdgeCount()) // one arc per unordered pair
}

func TestSelectFamily_Priority(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		s    spec.GraphSpec
		want string
	}{
		{
			name: "complete bipartite beats partiteness",
			s: spec.GraphSpec{
				CompleteBipartite: &spec.CompleteBipartiteAxis{M: 2, N: 2},
				Partiteness:       &spec.PartitenessAxis{Kind: spec.Bipartite},
			},
			want: "complete_bipartite",
		},
		{
			name: "star beats spectral",
			s: spec.GraphSpec{
				Star:        &spec.StarAxis{},
				SpectralGap: &spec.SpectralGapAxis{Min: 0.1},
			},
			want: "star",
		},
		{
			name: "plain spec falls through to standard",
			s:    spec.GraphSpec{},
			want: "standard",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.want, selectFamily(spec.New(tc.s)).name)
		})
	}
}

func TestGenerate_GridMetadata(t *testing.T) {
	t.Parallel()

	s := spec.GraphSpec{Grid: &spec.GridAxis{Rows: 3, Cols: 4}}
	g, err := Generate(s, Config{NodeCount: 12, Seed: 1})
	require.NoError(t, err)

	// 3x4 lattice: 3*3 horizontal + 2*4 vertical edges.
	require.Equal(t, 17, g.EdgeCount())
	require.Equal(t, 3, g.Nodes[0].Data[DataGridRows])
	require.Equal(t, 4, g.Nodes[0].Data[DataGridCols])
}

func TestGenerate_ScaleFreeHubs(t *testing.T) {
	t.Parallel()

	s := spec.GraphSpec{ScaleFree: &spec.ScaleFreeAxis{}}
	g, err := Generate(s, Config{NodeCount: 40, Seed: 13})
	require.NoError(t, err)

	maxDeg := 0
	for _, d := range g.DegreeMap() {
		if d > maxDeg {
			maxDeg = d
		}
	}

	// Preferential attachment concentrates degree well above the mean.
	require.Greater(t, maxDeg, 4)
}

func TestGenerate_ModularCommunities(t *testing.T) {
	t.Parallel()

	s := spec.GraphSpec{Modular: &spec.ModularAxis{Communities: 3}}
	g, err := Generate(s, Config{NodeCount: 18, Seed: 21})
	require.NoError(t, err)

	seen := map[any]bool{}
	for _, node := range g.Nodes {
		seen[node.Data[DataCommunity]] = true
	}
	require.Len(t, seen, 3)
}

func TestGenerate_FlowNetworkRoles(t *testing.T) {
	t.Parallel()

	s := spec.GraphSpec{
		Directionality: spec.Directed,
		FlowNetwork:    &spec.FlowNetworkAxis{},
	}
	g, err := Generate(s, Config{NodeCount: 9, Seed: 4})
	require.NoError(t, err)

	require.Equal(t, "source", g.Nodes[0].Data[DataFlowRole])
	require.Equal(t, "sink", g.Nodes[len(g.Nodes)-1].Data[DataFlowRole])

	// The source never receives and the sink never emits.
	in, out := g.InDegreeMap(), g.OutDegreeMap()
	require.Zero(t, in[g.Nodes[0].ID])
	require.Zero(t, out[g.Nodes[len(g.Nodes)-1].ID])
}

func TestGenerate_HamiltonianBackbone(t *testing.T) {
	t.Parallel()

	s := spec.GraphSpec{Hamiltonian: &spec.HamiltonianAxis{Kind: spec.HamiltonianCycle}}
	g, err := Generate(s, Config{NodeCount: 8, Seed: 6})
	require.NoError(t, err)

	// Every node records its position on the backbone cycle.
	positions := map[any]bool{}
	for _, node := range g.Nodes {
		positions[node.Data[DataHamiltonianPos]] = true
	}
	require.Len(t, positions, 8)
}

func TestGenerate_ExtremalMetadata(t *testing.T) {
	t.Parallel()

	s := spec.GraphSpec{IndependenceNumber: &spec.IndependenceNumberAxis{Target: 4}}
	g, err := Generate(s, Config{NodeCount: 10, Seed: 8})
	require.NoError(t, err)

	require.Equal(t, 4, g.Nodes[0].Data[DataIndependenceGoal])
}

func TestGenerate_DensityTiers(t *testing.T) {
	t.Parallel()

	// Denser tiers must produce strictly more edges at a fixed n and seed.
	counts := map[spec.Density]int{}
	for _, d := range []spec.Density{spec.Sparse, spec.Moderate, spec.Dense} {
		g, err := Generate(spec.GraphSpec{Density: d}, Config{NodeCount: 20, Seed: 17})
		require.NoError(t, err)
		counts[d] = g.EdgeCount()
	}

	require.Less(t, counts[spec.Sparse], counts[spec.Moderate])
	require.Less(t, counts[spec.Moderate], counts[spec.Dense])
}

func TestGenerate_HeterogeneousTypes(t *testing.T) {
	t.Parallel()

	s := spec.GraphSpec{Schema: spec.Heterogeneous}
	cfg := Config{
		NodeCount: 30,
		Seed:      3,
		NodeTypes: []TypeSpec{{Name: "person", Proportion: 0.5}, {Name: "org"}},
		EdgeTypes: []TypeSpec{{Name: "knows"}, {Name: "owns"}},
	}
	g, err := Generate(s, cfg)
	require.NoError(t, err)

	for _, node := range g.Nodes {
		require.Contains(t, []string{"person", "org"}, node.Type)
	}
	for _, e := range g.Edges {
		require.Contains(t, []string{"knows", "owns"}, e.Type)
	}
}

func TestGenerate_InfeasibleWrapsSentinel(t *testing.T) {
	t.Parallel()

	s := spec.GraphSpec{Wheel: &spec.WheelAxis{}}
	_, err := Generate(s, Config{NodeCount: 3, Seed: 1})
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInfeasible))
}
