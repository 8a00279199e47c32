// SPDX-License-Identifier: MIT
// Package: graphgen/spec
//
// spec.go — the GraphSpec record, documented defaults, and patch composition.
//
// Contract:
//   - New(patch) starts from the documented defaults and overlays every
//     non-zero core axis and every non-nil advanced axis of the patch.
//   - The result is a pure value; callers must never mutate an advanced-axis
//     struct through its pointer after New returns.
//   - The zero GraphSpec is NOT a valid spec; it only ever appears as a patch.
//
// Determinism: New is a pure function; equal patches yield equal specs.
package spec

// GraphSpec is an immutable record of orthogonal property axes. Core axes are
// always populated after New; advanced axes are nil unless requested.
type GraphSpec struct {
	// Core axes (mandatory).
	Directionality   Directionality   `yaml:"directionality,omitempty"`
	Weighting        Weighting        `yaml:"weighting,omitempty"`
	Cycles           Cycles           `yaml:"cycles,omitempty"`
	Connectivity     Connectivity     `yaml:"connectivity,omitempty"`
	Schema           Schema           `yaml:"schema,omitempty"`
	EdgeMultiplicity EdgeMultiplicity `yaml:"edge_multiplicity,omitempty"`
	SelfLoops        SelfLoops        `yaml:"self_loops,omitempty"`
	Density          Density          `yaml:"density,omitempty"`
	Completeness     Completeness     `yaml:"completeness,omitempty"`

	// Partitions and special structures.
	Partiteness       *PartitenessAxis       `yaml:"partiteness,omitempty"`
	CompleteBipartite *CompleteBipartiteAxis `yaml:"complete_bipartite,omitempty"`
	Star              *StarAxis              `yaml:"star,omitempty"`
	Wheel             *WheelAxis             `yaml:"wheel,omitempty"`
	Grid              *GridAxis              `yaml:"grid,omitempty"`
	Toroidal          *ToroidalAxis          `yaml:"toroidal,omitempty"`
	BinaryTree        *BinaryTreeAxis        `yaml:"binary_tree,omitempty"`
	Tournament        *TournamentAxis        `yaml:"tournament,omitempty"`
	Circulant         *CirculantAxis         `yaml:"circulant,omitempty"`

	// Degree constraints.
	Regularity      *RegularityAxis      `yaml:"regularity,omitempty"`
	StronglyRegular *StronglyRegularAxis `yaml:"strongly_regular,omitempty"`

	// Connectivity, flow, traversability.
	FlowNetwork        *FlowNetworkAxis        `yaml:"flow_network,omitempty"`
	Eulerian           *EulerianAxis           `yaml:"eulerian,omitempty"`
	Hamiltonian        *HamiltonianAxis        `yaml:"hamiltonian,omitempty"`
	VertexConnectivity *VertexConnectivityAxis `yaml:"vertex_connectivity,omitempty"`
	EdgeConnectivity   *EdgeConnectivityAxis   `yaml:"edge_connectivity,omitempty"`
	Treewidth          *TreewidthAxis          `yaml:"treewidth,omitempty"`
	Colorability       *ColorabilityAxis       `yaml:"colorability,omitempty"`

	// Structural graph classes.
	Chordal           *ChordalAxis           `yaml:"chordal,omitempty"`
	Interval          *IntervalAxis          `yaml:"interval,omitempty"`
	Permutation       *PermutationAxis       `yaml:"permutation,omitempty"`
	Comparability     *ComparabilityAxis     `yaml:"comparability,omitempty"`
	Perfect           *PerfectAxis           `yaml:"perfect,omitempty"`
	Split             *SplitAxis             `yaml:"split,omitempty"`
	Cograph           *CographAxis           `yaml:"cograph,omitempty"`
	ClawFree          *ClawFreeAxis          `yaml:"claw_free,omitempty"`
	LineGraph         *LineGraphAxis         `yaml:"line_graph,omitempty"`
	SelfComplementary *SelfComplementaryAxis `yaml:"self_complementary,omitempty"`

	// Minor-free and topological families.
	Planar         *PlanarAxis         `yaml:"planar,omitempty"`
	Outerplanar    *OuterplanarAxis    `yaml:"outerplanar,omitempty"`
	SeriesParallel *SeriesParallelAxis `yaml:"series_parallel,omitempty"`
	Cactus         *CactusAxis         `yaml:"cactus,omitempty"`
	MinorFree      *MinorFreeAxis      `yaml:"minor_free,omitempty"`

	// Network-science families.
	ScaleFree     *ScaleFreeAxis     `yaml:"scale_free,omitempty"`
	SmallWorld    *SmallWorldAxis    `yaml:"small_world,omitempty"`
	Modular       *ModularAxis       `yaml:"modular,omitempty"`
	CorePeriphery *CorePeripheryAxis `yaml:"core_periphery,omitempty"`

	// Symmetry.
	VertexTransitive *VertexTransitiveAxis `yaml:"vertex_transitive,omitempty"`
	EdgeTransitive   *EdgeTransitiveAxis   `yaml:"edge_transitive,omitempty"`

	// Spectral and robustness targets.
	SpectralGap           *SpectralGapAxis           `yaml:"spectral_gap,omitempty"`
	Expander              *ExpanderAxis              `yaml:"expander,omitempty"`
	AlgebraicConnectivity *AlgebraicConnectivityAxis `yaml:"algebraic_connectivity,omitempty"`
	Toughness             *ToughnessAxis             `yaml:"toughness,omitempty"`
	Integrity             *IntegrityAxis             `yaml:"integrity,omitempty"`

	// Extremal invariant targets.
	IndependenceNumber *IndependenceNumberAxis `yaml:"independence_number,omitempty"`
	VertexCoverNumber  *VertexCoverNumberAxis  `yaml:"vertex_cover_number,omitempty"`
	DominationNumber   *DominationNumberAxis   `yaml:"domination_number,omitempty"`
	CliqueNumber       *CliqueNumberAxis       `yaml:"clique_number,omitempty"`
	Girth              *GirthAxis              `yaml:"girth,omitempty"`

	// Graph products.
	Product *ProductAxis `yaml:"product,omitempty"`
}

// Documented defaults for the nine core axes.
const (
	DefaultDirectionality   = Undirected
	DefaultWeighting        = Unweighted
	DefaultCycles           = CyclesAllowed
	DefaultConnectivity     = AnyConnectivity
	DefaultSchema           = Homogeneous
	DefaultEdgeMultiplicity = SimpleEdges
	DefaultSelfLoops        = LoopsDisallowed
	DefaultDensity          = AnyDensity
	DefaultCompleteness     = Incomplete
)

// New merges a partial override onto the documented defaults and returns the
// composed spec. Zero-valued core axes in patch keep their default; advanced
// axes are carried over as-is (nil stays unconstrained).
// Complexity: O(1) — a fixed number of field copies.
func New(patch GraphSpec) GraphSpec {
	s := patch

	if s.Directionality == "" {
		s.Directionality = DefaultDirectionality
	}
	if s.Weighting == "" {
		s.Weighting = DefaultWeighting
	}
	if s.Cycles == "" {
		s.Cycles = DefaultCycles
	}
	if s.Connectivity == "" {
		s.Connectivity = DefaultConnectivity
	}
	if s.Schema == "" {
		s.Schema = DefaultSchema
	}
	if s.EdgeMultiplicity == "" {
		s.EdgeMultiplicity = DefaultEdgeMultiplicity
	}
	if s.SelfLoops == "" {
		s.SelfLoops = DefaultSelfLoops
	}
	if s.Density == "" {
		s.Density = DefaultDensity
	}
	if s.Completeness == "" {
		s.Completeness = DefaultCompleteness
	}

	return s
}

// IsDirected reports whether edges are ordered pairs.
func (s GraphSpec) IsDirected() bool { return s.Directionality == Directed }

// IsWeighted reports whether edges carry numeric weights.
func (s GraphSpec) IsWeighted() bool { return s.Weighting == Weighted }

// IsAcyclic reports whether the spec forbids cycles.
func (s GraphSpec) IsAcyclic() bool { return s.Cycles == Acyclic }

// IsConnected reports whether the spec demands a single component.
func (s GraphSpec) IsConnected() bool { return s.Connectivity == Connected }

// IsHeterogeneous reports whether nodes/edges carry domain types.
func (s GraphSpec) IsHeterogeneous() bool { return s.Schema == Heterogeneous }

// IsComplete reports whether every admissible vertex pair must carry an edge.
func (s GraphSpec) IsComplete() bool { return s.Completeness == Complete }

// IsMultigraph reports whether parallel edges are required.
func (s GraphSpec) IsMultigraph() bool { return s.EdgeMultiplicity == Multigraph }

// AllowsSelfLoops reports whether self-loops are allowed (and required).
func (s GraphSpec) AllowsSelfLoops() bool { return s.SelfLoops == LoopsAllowed }

// RequiresBipartition reports whether node synthesis must pre-assign
// left/right partitions before any edge exists.
func (s GraphSpec) RequiresBipartition() bool {
	return s.CompleteBipartite != nil ||
		(s.Partiteness != nil && s.Partiteness.Kind == Bipartite)
}
