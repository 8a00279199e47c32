package spec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphgen/spec"
)

// TestNewDefaults verifies the documented defaults for an empty patch.
func TestNewDefaults(t *testing.T) {
	t.Parallel()

	s := spec.New(spec.GraphSpec{})
	assert.Equal(t, spec.Undirected, s.Directionality)
	assert.Equal(t, spec.Unweighted, s.Weighting)
	assert.Equal(t, spec.CyclesAllowed, s.Cycles)
	assert.Equal(t, spec.AnyConnectivity, s.Connectivity)
	assert.Equal(t, spec.Homogeneous, s.Schema)
	assert.Equal(t, spec.SimpleEdges, s.EdgeMultiplicity)
	assert.Equal(t, spec.LoopsDisallowed, s.SelfLoops)
	assert.Equal(t, spec.AnyDensity, s.Density)
	assert.Equal(t, spec.Incomplete, s.Completeness)
	assert.Nil(t, s.Partiteness)
	assert.Nil(t, s.Chordal)
}

// TestNewPatchOverride verifies that patched axes win and unpatched keep
// their defaults.
func TestNewPatchOverride(t *testing.T) {
	t.Parallel()

	s := spec.New(spec.GraphSpec{
		Directionality: spec.Directed,
		Density:        spec.Dense,
		Chordal:        &spec.ChordalAxis{},
	})
	assert.Equal(t, spec.Directed, s.Directionality)
	assert.Equal(t, spec.Dense, s.Density)
	assert.NotNil(t, s.Chordal)
	assert.Equal(t, spec.Unweighted, s.Weighting) // untouched default
}

// TestGuards exercises the boolean axis guards.
func TestGuards(t *testing.T) {
	t.Parallel()

	s := spec.New(spec.GraphSpec{
		Directionality:   spec.Directed,
		Weighting:        spec.Weighted,
		Cycles:           spec.Acyclic,
		Connectivity:     spec.Connected,
		Schema:           spec.Heterogeneous,
		EdgeMultiplicity: spec.Multigraph,
	})
	assert.True(t, s.IsDirected())
	assert.True(t, s.IsWeighted())
	assert.True(t, s.IsAcyclic())
	assert.True(t, s.IsConnected())
	assert.True(t, s.IsHeterogeneous())
	assert.True(t, s.IsMultigraph())
	assert.False(t, s.AllowsSelfLoops())
}

// TestIsValid covers the definitional contradiction table.
func TestIsValid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		patch spec.GraphSpec
		want  bool
	}{
		{"defaults", spec.GraphSpec{}, true},
		{"self_loops_acyclic", spec.GraphSpec{SelfLoops: spec.LoopsAllowed, Cycles: spec.Acyclic}, false},
		{"complete_acyclic", spec.GraphSpec{Completeness: spec.Complete, Cycles: spec.Acyclic}, false},
		{"complete_sparse", spec.GraphSpec{Completeness: spec.Complete, Density: spec.Sparse}, false},
		{"complete_multigraph", spec.GraphSpec{Completeness: spec.Complete, EdgeMultiplicity: spec.Multigraph}, false},
		{"tree_dense", spec.GraphSpec{Cycles: spec.Acyclic, Connectivity: spec.Connected, Density: spec.Dense}, false},
		{"tree_moderate", spec.GraphSpec{Cycles: spec.Acyclic, Connectivity: spec.Connected, Density: spec.Moderate}, true},
		{"forest_moderate", spec.GraphSpec{Cycles: spec.Acyclic, Density: spec.Moderate}, false},
		{"forest_sparse", spec.GraphSpec{Cycles: spec.Acyclic, Density: spec.Sparse}, true},
		{"complete_cyclic", spec.GraphSpec{Completeness: spec.Complete}, true},
		{"disconnected_acyclic", spec.GraphSpec{Cycles: spec.Acyclic, Connectivity: spec.Disconnected}, true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, spec.IsValid(spec.New(tc.patch)))
		})
	}
}

// TestDescribe checks the fixed fragment order and advanced-axis rendering.
func TestDescribe(t *testing.T) {
	t.Parallel()

	s := spec.New(spec.GraphSpec{
		Directionality: spec.Directed,
		Density:        spec.Sparse,
		Regularity:     &spec.RegularityAxis{Kind: spec.SpecificRegular, K: 4},
	})
	d := spec.Describe(s)
	assert.Contains(t, d, "directed")
	assert.Contains(t, d, "sparse")
	assert.Contains(t, d, "4-regular")

	// Equal specs describe identically.
	assert.Equal(t, d, spec.Describe(s))
}

// TestCorePermutations verifies exhaustiveness, validity, and determinism of
// the core-axis cross-product.
func TestCorePermutations(t *testing.T) {
	t.Parallel()

	perms := spec.CorePermutations()
	require.NotEmpty(t, perms)

	seen := make(map[string]bool, len(perms))
	for _, s := range perms {
		require.True(t, spec.IsValid(s), "invalid permutation leaked: %s", spec.Describe(s))
		require.Nil(t, s.Partiteness, "advanced axis set in a core permutation")
		key := spec.Describe(s) + "|" + string(s.Schema) + "|" + string(s.Connectivity) + "|" + string(s.Density)
		seen[key] = true
	}

	// The unfiltered cross-product is 2·2·2·3·2·2·2·4·2 = 1536. Direction,
	// weighting, and schema never contradict anything (factor 8); of the
	// remaining 192 combinations the contradiction rules keep 84:
	// 66 cyclic (completeness=complete loses sparse and multigraph) and
	// 18 acyclic (loops and completeness=complete gone outright, tree and
	// forest connectivity lose the pinned-edge-count density tiers).
	total := 2 * 2 * 2 * 3 * 2 * 2 * 2 * 4 * 2
	assert.Less(t, len(perms), total)
	assert.Len(t, perms, 84*8)

	// Determinism: same slice contents on a second call.
	assert.Equal(t, perms, spec.CorePermutations())
}
