// Package core defines the value types produced by graph generation: Node,
// Edge, and the immutable Graph bundle handed to the validator.
//
// Ownership and lifecycle:
//
//   - Nodes are created once by node synthesis with sequential ids N0..N{n-1}.
//     The Data bag on each node is written only by the generator that built
//     the structure (target invariant values, construction parameters) and is
//     read-only for the validator.
//   - Edges are stored once per logical edge; an undirected edge appears in a
//     single direction and every adjacency view derives the symmetric
//     interpretation. An edge list does not itself encode directionality —
//     interpretation always flows from Graph.Spec.Directionality.
//   - A Graph is constructed by one generation call and never mutated
//     afterwards.
//
// Derived views (Adjacency, OutAdjacency, DegreeMap, NodeIndex) are computed
// on demand from the edge list, never cached on the Graph, so the validator's
// picture can never drift from the actual edges. All views iterate and return
// in deterministic order.
package core
