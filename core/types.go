// SPDX-License-Identifier: MIT
// Package: graphgen/core
//
// types.go — Node, Edge, Graph and the Partition/metadata vocabulary.
//
// Contract:
//   - Node identity is the sequential id "N<i>"; NodeID is the only place
//     that format is composed.
//   - Edge.Weight is present (non-nil) iff the originating spec is weighted.
//   - Graph is a plain value bundle; no hidden state, no locks — generation
//     and validation are single-threaded by design.
package core

import (
	"strconv"

	"github.com/katalvlaran/graphgen/spec"
)

// Partition labels the side of a bipartition assigned at node synthesis.
type Partition string

const (
	// NoPartition is the zero value for specs without a bipartition.
	NoPartition Partition = ""
	// PartitionLeft is the left side of a bipartition.
	PartitionLeft Partition = "left"
	// PartitionRight is the right side of a bipartition.
	PartitionRight Partition = "right"
)

// Node is a generated vertex.
//
// Data is the open metadata bag generators use to stash derived invariants
// (interval endpoints, permutation value, topological order, community id,
// target spectral gap, ...) so the validator can check them without
// recomputation. It is owned by the node value — never ambient state — and
// is mutated in place only by the generator invoked for the spec's property.
type Node struct {
	// ID is the stable sequential identifier "N0".."N{n-1}".
	ID string `json:"id" yaml:"id"`

	// Partition is set only for bipartite / complete-bipartite specs.
	Partition Partition `json:"partition,omitempty" yaml:"partition,omitempty"`

	// Type is set only for heterogeneous schemas.
	Type string `json:"type,omitempty" yaml:"type,omitempty"`

	// Data holds generator-written, validator-read metadata.
	Data map[string]any `json:"data,omitempty" yaml:"data,omitempty"`
}

// Edge is a generated connection between two node ids.
type Edge struct {
	// Source and Target are node ids. For undirected specs the pair is an
	// unordered edge stored in one direction only.
	Source string `json:"source" yaml:"source"`
	Target string `json:"target" yaml:"target"`

	// Weight is present iff the spec's weighting axis is numeric.
	Weight *float64 `json:"weight,omitempty" yaml:"weight,omitempty"`

	// Type is present iff the spec's schema is heterogeneous.
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
}

// IsLoop reports whether the edge joins a node to itself.
func (e Edge) IsLoop() bool { return e.Source == e.Target }

// Graph is the immutable bundle produced by one generation call and the unit
// passed to the validator.
type Graph struct {
	Nodes []*Node        `json:"nodes" yaml:"nodes"`
	Edges []Edge         `json:"edges" yaml:"edges"`
	Spec  spec.GraphSpec `json:"spec" yaml:"spec"`
}

// NodeID composes the sequential node identifier for index i.
func NodeID(i int) string {
	return "N" + strconv.Itoa(i)
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.Nodes) }

// EdgeCount returns the number of stored edges (one per logical edge).
func (g *Graph) EdgeCount() int { return len(g.Edges) }
