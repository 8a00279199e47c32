package constraints_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphgen/constraints"
	"github.com/katalvlaran/graphgen/spec"
)

// TestAnalyzeCleanSpec verifies an unconstrained default spec produces no
// issues and default tolerances.
func TestAnalyzeCleanSpec(t *testing.T) {
	t.Parallel()

	a := constraints.Analyze(spec.New(spec.GraphSpec{}))
	assert.Empty(t, a.Issues)
	assert.False(t, a.HasErrors())
	assert.False(t, a.Tolerances.RelaxDensity)
	assert.Equal(t, constraints.DefaultDensitySlack, a.Tolerances.DensitySlack)
}

// TestAnalyzeContradictions verifies hard contradictions surface as
// error-grade issues mirroring spec.IsValid.
func TestAnalyzeContradictions(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		patch spec.GraphSpec
	}{
		{"self_loops_acyclic", spec.GraphSpec{SelfLoops: spec.LoopsAllowed, Cycles: spec.Acyclic}},
		{"complete_acyclic", spec.GraphSpec{Completeness: spec.Complete, Cycles: spec.Acyclic}},
		{"complete_sparse", spec.GraphSpec{Completeness: spec.Complete, Density: spec.Sparse}},
		{"complete_multigraph", spec.GraphSpec{Completeness: spec.Complete, EdgeMultiplicity: spec.Multigraph}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s := spec.New(tc.patch)
			a := constraints.Analyze(s)
			assert.True(t, a.HasErrors())
			assert.False(t, spec.IsValid(s), "analyzer and IsValid must agree")
		})
	}
}

// TestAnalyzeForestDensityPinned verifies the forest edge-count warning and
// density relaxation from the disconnected acyclic case.
func TestAnalyzeForestDensityPinned(t *testing.T) {
	t.Parallel()

	s := spec.New(spec.GraphSpec{
		Cycles:       spec.Acyclic,
		Connectivity: spec.Disconnected,
		Density:      spec.Sparse,
	})
	a := constraints.Analyze(s)
	require.False(t, a.HasErrors())
	assert.NotEmpty(t, a.Warnings())
	assert.True(t, a.Tolerances.RelaxDensity)
	assert.Equal(t, constraints.WideDensitySlack, a.Tolerances.DensitySlack)
}

// TestAnalyzeStructuralPin verifies fixed-edge-count families relax density
// and completeness.
func TestAnalyzeStructuralPin(t *testing.T) {
	t.Parallel()

	s := spec.New(spec.GraphSpec{
		Star:    &spec.StarAxis{},
		Density: spec.Dense,
	})
	a := constraints.Analyze(s)
	assert.False(t, a.HasErrors())
	assert.True(t, a.Tolerances.RelaxDensity)

	s2 := spec.New(spec.GraphSpec{
		Partiteness:  &spec.PartitenessAxis{Kind: spec.Bipartite},
		Completeness: spec.Complete,
	})
	a2 := constraints.Analyze(s2)
	assert.True(t, a2.Tolerances.RelaxCompleteness)
}

// TestToleranceMonotone verifies relaxations only widen, never narrow.
func TestToleranceMonotone(t *testing.T) {
	t.Parallel()

	s := spec.New(spec.GraphSpec{
		Cycles:       spec.Acyclic,
		Connectivity: spec.Connected,
		Density:      spec.Sparse,
		Grid:         &spec.GridAxis{},
	})
	a := constraints.Analyze(s)
	assert.GreaterOrEqual(t, a.Tolerances.DensitySlack, constraints.DefaultDensitySlack)
}
