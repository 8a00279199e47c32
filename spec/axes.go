// SPDX-License-Identifier: MIT
// Package: graphgen/spec
//
// axes.go — axis enumerations and advanced-axis value types.
//
// Contract:
//   - Core axes are closed string enumerations; the zero value "" means
//     "unset" and only ever appears inside a Patch, never in a GraphSpec.
//   - Advanced axes are small value structs; a nil pointer on GraphSpec means
//     the axis is unconstrained. Multi-variant axes carry a Kind
//     discriminator as their first field.
//   - All types serialize to YAML with lower_snake field names so CLI spec
//     files read like the axis vocabulary.
package spec

// ---------------------------------------------------------------------------
// Core axes (mandatory, nine of them)
// ---------------------------------------------------------------------------

// Directionality states whether edges are interpreted as ordered pairs.
type Directionality string

const (
	Directed   Directionality = "directed"
	Undirected Directionality = "undirected"
)

// Weighting states whether edges carry numeric weights.
type Weighting string

const (
	Weighted   Weighting = "weighted"
	Unweighted Weighting = "unweighted"
)

// Cycles states whether the graph must be free of cycles.
type Cycles string

const (
	Acyclic       Cycles = "acyclic"
	CyclesAllowed Cycles = "cycles_allowed"
)

// Connectivity states a reachability requirement over the whole vertex set.
type Connectivity string

const (
	Connected       Connectivity = "connected"
	Disconnected    Connectivity = "disconnected"
	AnyConnectivity Connectivity = "unconstrained"
)

// Schema states whether nodes and edges carry domain types.
type Schema string

const (
	Homogeneous   Schema = "homogeneous"
	Heterogeneous Schema = "heterogeneous"
)

// EdgeMultiplicity states whether parallel edges are required.
type EdgeMultiplicity string

const (
	SimpleEdges EdgeMultiplicity = "simple"
	Multigraph  EdgeMultiplicity = "multigraph"
)

// SelfLoops states whether an edge may (and at least one must) join a node
// to itself.
type SelfLoops string

const (
	LoopsAllowed    SelfLoops = "allowed"
	LoopsDisallowed SelfLoops = "disallowed"
)

// Density is the qualitative edge-count tier, mapped by the generator to a
// percentage of the maximum possible edge count.
type Density string

const (
	Sparse     Density = "sparse"
	Moderate   Density = "moderate"
	Dense      Density = "dense"
	AnyDensity Density = "unconstrained"
)

// Completeness states whether every admissible vertex pair must be joined.
type Completeness string

const (
	Complete   Completeness = "complete"
	Incomplete Completeness = "incomplete"
)

// ---------------------------------------------------------------------------
// Advanced axes — partitions and special structures
// ---------------------------------------------------------------------------

// PartitenessKind discriminates the Partiteness axis.
type PartitenessKind string

const (
	Bipartite PartitenessKind = "bipartite"
	KPartite  PartitenessKind = "k_partite"
)

// PartitenessAxis requests a vertex partition with no intra-part edges.
// K is read only when Kind == KPartite.
type PartitenessAxis struct {
	Kind PartitenessKind `yaml:"kind"`
	K    int             `yaml:"k,omitempty"`
}

// CompleteBipartiteAxis requests K_{M,N}: every cross-partition pair joined.
type CompleteBipartiteAxis struct {
	M int `yaml:"m"`
	N int `yaml:"n"`
}

// StarAxis requests a star graph: one hub joined to every other node.
type StarAxis struct{}

// WheelAxis requests a wheel: a cycle plus a hub joined to every rim node.
type WheelAxis struct{}

// GridAxis requests a Rows×Cols 4-neighborhood lattice. Zero dimensions are
// resolved to a near-square factorization of the node count.
type GridAxis struct {
	Rows int `yaml:"rows,omitempty"`
	Cols int `yaml:"cols,omitempty"`
}

// ToroidalAxis requests a grid with wrap-around edges on both dimensions.
type ToroidalAxis struct {
	Rows int `yaml:"rows,omitempty"`
	Cols int `yaml:"cols,omitempty"`
}

// BinaryTreeAxis requests a complete-as-possible rooted binary tree.
type BinaryTreeAxis struct{}

// TournamentAxis requests a tournament: exactly one arc per vertex pair.
type TournamentAxis struct{}

// CirculantAxis requests a circulant graph over the given step offsets.
type CirculantAxis struct {
	Offsets []int `yaml:"offsets"`
}

// ---------------------------------------------------------------------------
// Advanced axes — degree constraints
// ---------------------------------------------------------------------------

// RegularityKind discriminates the Regularity axis.
type RegularityKind string

const (
	Regular         RegularityKind = "regular"          // some common degree
	Cubic           RegularityKind = "cubic"            // degree 3
	SpecificRegular RegularityKind = "specific_regular" // degree K
)

// RegularityAxis requests that every vertex have the same degree.
// K is read only when Kind == SpecificRegular.
type RegularityAxis struct {
	Kind RegularityKind `yaml:"kind"`
	K    int            `yaml:"k,omitempty"`
}

// StronglyRegularAxis requests an srg(n,K,Lambda,Mu): K-regular, adjacent
// pairs share Lambda common neighbours, non-adjacent pairs share Mu.
type StronglyRegularAxis struct {
	K      int `yaml:"k"`
	Lambda int `yaml:"lambda"`
	Mu     int `yaml:"mu"`
}

// ---------------------------------------------------------------------------
// Advanced axes — connectivity, flow, traversability
// ---------------------------------------------------------------------------

// FlowNetworkAxis requests a layered source→sink capacity network.
type FlowNetworkAxis struct{}

// EulerianKind discriminates the Eulerian axis.
type EulerianKind string

const (
	EulerianCircuit EulerianKind = "circuit" // every degree even
	EulerianPath    EulerianKind = "path"    // exactly two odd degrees
)

// EulerianAxis requests an Eulerian circuit or open trail.
type EulerianAxis struct {
	Kind EulerianKind `yaml:"kind"`
}

// HamiltonianKind discriminates the Hamiltonian axis.
type HamiltonianKind string

const (
	HamiltonianCycle HamiltonianKind = "cycle"
	HamiltonianPath  HamiltonianKind = "path"
)

// HamiltonianAxis requests a spanning cycle or path backbone.
type HamiltonianAxis struct {
	Kind HamiltonianKind `yaml:"kind"`
}

// VertexConnectivityAxis requests κ(G) ≥ K (K vertex-disjoint paths).
type VertexConnectivityAxis struct {
	K int `yaml:"k"`
}

// EdgeConnectivityAxis requests λ(G) ≥ K.
type EdgeConnectivityAxis struct {
	K int `yaml:"k"`
}

// TreewidthAxis requests treewidth ≤ Width, realized as a partial k-tree.
type TreewidthAxis struct {
	Width int `yaml:"width"`
}

// ColorabilityAxis requests a proper vertex coloring with at most K colors.
type ColorabilityAxis struct {
	K int `yaml:"k"`
}

// ---------------------------------------------------------------------------
// Advanced axes — structural graph classes (presence-only)
// ---------------------------------------------------------------------------

// ChordalAxis: every cycle of length > 3 has a chord.
type ChordalAxis struct{}

// IntervalAxis: intersection graph of real intervals.
type IntervalAxis struct{}

// PermutationAxis: inversion graph of a permutation.
type PermutationAxis struct{}

// ComparabilityAxis: transitively orientable graph.
type ComparabilityAxis struct{}

// PerfectAxis: χ(H) = ω(H) for every induced subgraph H. Realized by
// delegating to a perfect subclass chosen at generation time.
type PerfectAxis struct{}

// SplitAxis: vertex set partitions into a clique and an independent set.
type SplitAxis struct{}

// CographAxis: no induced P4.
type CographAxis struct{}

// ClawFreeAxis: no induced K_{1,3}.
type ClawFreeAxis struct{}

// LineGraphAxis: line graph of some base graph.
type LineGraphAxis struct{}

// SelfComplementaryAxis: isomorphic to its own complement (checked
// structurally via the n(n-1)/4 edge-count identity, not by isomorphism
// search).
type SelfComplementaryAxis struct{}

// ---------------------------------------------------------------------------
// Advanced axes — minor-free / topological families
// ---------------------------------------------------------------------------

// PlanarAxis requests an embedding-free planar certificate (m ≤ 3n−6).
type PlanarAxis struct{}

// OuterplanarAxis requests an outerplanar construction (m ≤ 2n−3).
type OuterplanarAxis struct{}

// SeriesParallelAxis requests a two-terminal series-parallel construction.
type SeriesParallelAxis struct{}

// CactusAxis requests that every edge lie on at most one cycle.
type CactusAxis struct{}

// MinorFreeAxis requests exclusion of a named forbidden minor ("K5", "K3,3").
type MinorFreeAxis struct {
	Forbidden string `yaml:"forbidden"`
}

// ---------------------------------------------------------------------------
// Advanced axes — network-science families
// ---------------------------------------------------------------------------

// ScaleFreeAxis requests a preferential-attachment degree distribution with
// the given power-law exponent (default 2.1 when zero).
type ScaleFreeAxis struct {
	Exponent float64 `yaml:"exponent,omitempty"`
}

// SmallWorldAxis requests a Watts–Strogatz ring lattice with probabilistic
// rewiring (default probability 0.1 when zero).
type SmallWorldAxis struct {
	RewireProbability float64 `yaml:"rewire_probability,omitempty"`
}

// ModularAxis requests explicit community structure with independent
// intra/inter edge-inclusion probabilities (defaults 0.6 / 0.05 when zero).
type ModularAxis struct {
	Communities      int     `yaml:"communities,omitempty"`
	IntraProbability float64 `yaml:"intra_probability,omitempty"`
	InterProbability float64 `yaml:"inter_probability,omitempty"`
}

// CorePeripheryAxis requests a dense core with a sparsely attached periphery.
type CorePeripheryAxis struct{}

// ---------------------------------------------------------------------------
// Advanced axes — symmetry
// ---------------------------------------------------------------------------

// VertexTransitiveAxis requests a vertex-transitive construction (realized
// as a circulant; validated by the regularity proxy).
type VertexTransitiveAxis struct{}

// EdgeTransitiveAxis requests an edge-transitive construction (realized as a
// complete-bipartite-like structure).
type EdgeTransitiveAxis struct{}

// ---------------------------------------------------------------------------
// Advanced axes — spectral and robustness targets
// ---------------------------------------------------------------------------

// SpectralGapAxis requests λ1−λ2 of the adjacency spectrum ≥ Min.
type SpectralGapAxis struct {
	Min float64 `yaml:"min"`
}

// ExpanderAxis requests expander-like connectivity (validated via the
// power-iteration spectral-gap approximation).
type ExpanderAxis struct{}

// AlgebraicConnectivityAxis requests the Fiedler value ≥ Min.
type AlgebraicConnectivityAxis struct {
	Min float64 `yaml:"min"`
}

// ToughnessAxis requests toughness ≥ Min (exact only for small n).
type ToughnessAxis struct {
	Min float64 `yaml:"min"`
}

// IntegrityAxis requests integrity ≤ Max (exact only for small n).
type IntegrityAxis struct {
	Max int `yaml:"max"`
}

// ---------------------------------------------------------------------------
// Advanced axes — extremal invariant targets
// ---------------------------------------------------------------------------

// IndependenceNumberAxis requests α(G) == Target.
type IndependenceNumberAxis struct {
	Target int `yaml:"target"`
}

// VertexCoverNumberAxis requests τ(G) == Target (τ = n − α).
type VertexCoverNumberAxis struct {
	Target int `yaml:"target"`
}

// DominationNumberAxis requests γ(G) == Target.
type DominationNumberAxis struct {
	Target int `yaml:"target"`
}

// CliqueNumberAxis requests ω(G) == Target.
type CliqueNumberAxis struct {
	Target int `yaml:"target"`
}

// GirthAxis requests shortest-cycle length == Target.
type GirthAxis struct {
	Target int `yaml:"target"`
}

// ---------------------------------------------------------------------------
// Advanced axes — graph products
// ---------------------------------------------------------------------------

// ProductKind discriminates the Product axis.
type ProductKind string

const (
	CartesianProduct     ProductKind = "cartesian"
	TensorProduct        ProductKind = "tensor"
	StrongProduct        ProductKind = "strong"
	LexicographicProduct ProductKind = "lexicographic"
)

// ProductAxis tags the graph as a named product of two factor structures.
type ProductAxis struct {
	Kind ProductKind `yaml:"kind"`
}
