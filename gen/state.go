// SPDX-License-Identifier: MIT
// Package: graphgen/gen
//
// state.go — the mutable build state threaded through every generator.
//
// Contract:
//   - One state per Generate call; it owns the only RNG instance.
//   - addEdge/addPair are the single write path for edges, so the pair index
//     (seen) can never drift from the edge list.
//   - Pair keys are canonical: ordered for directed specs, sorted for
//     undirected specs, so hasPair answers "would this be a parallel edge"
//     under the spec's own interpretation.
//   - component is populated only by disconnected base structures; the
//     density pass samples within components when it is set.
package gen

import (
	"github.com/katalvlaran/graphgen/core"
	"github.com/katalvlaran/graphgen/rng"
	"github.com/katalvlaran/graphgen/spec"
)

// state carries everything a generator may touch.
type state struct {
	spec  spec.GraphSpec
	cfg   Config
	rng   *rng.RNG
	nodes []*core.Node
	edges []core.Edge

	// seen counts edges per canonical endpoint pair.
	seen map[[2]int]int

	// component[i] is the component id of node i, or -1 when the base
	// structure imposes no component layout.
	component []int

	// fixed is set by families whose edge count is exact; the density pass
	// then only runs its closing guarantees.
	fixed bool
}

// newState allocates the build state for n nodes.
func newState(s spec.GraphSpec, cfg Config) *state {
	st := &state{
		spec:      s,
		cfg:       cfg,
		rng:       rng.New(cfg.Seed),
		seen:      make(map[[2]int]int),
		component: make([]int, cfg.NodeCount),
	}
	for i := range st.component {
		st.component[i] = -1
	}

	return st
}

// n returns the node count.
func (st *state) n() int { return len(st.nodes) }

// id returns the node id for index i.
func (st *state) id(i int) string { return st.nodes[i].ID }

// indexOf resolves a node id back to its index. Ids are sequential, so a
// linear scan is only ever needed once per call site.
func (st *state) indexOf(id string) int {
	for i, node := range st.nodes {
		if node.ID == id {
			return i
		}
	}

	return -1
}

// pairKey canonicalizes an endpoint pair per the spec's directionality.
func (st *state) pairKey(i, j int) [2]int {
	if !st.spec.IsDirected() && j < i {
		return [2]int{j, i}
	}

	return [2]int{i, j}
}

// hasPair reports whether at least one edge already joins (i,j) under the
// spec's interpretation.
func (st *state) hasPair(i, j int) bool {
	return st.seen[st.pairKey(i, j)] > 0
}

// addEdge appends one edge between node indices i and j and records the pair.
func (st *state) addEdge(i, j int) {
	st.edges = append(st.edges, core.Edge{Source: st.id(i), Target: st.id(j)})
	st.seen[st.pairKey(i, j)]++
}

// addEdgeOnce adds (i,j) only when no parallel edge would result. It reports
// whether an edge was appended.
func (st *state) addEdgeOnce(i, j int) bool {
	if st.hasPair(i, j) {
		return false
	}
	st.addEdge(i, j)

	return true
}

// setData writes one metadata entry onto node i, allocating the bag lazily.
func (st *state) setData(i int, key string, val any) {
	if st.nodes[i].Data == nil {
		st.nodes[i].Data = make(map[string]any)
	}
	st.nodes[i].Data[key] = val
}

// setAllData writes the same metadata entry onto every node.
func (st *state) setAllData(key string, val any) {
	for i := range st.nodes {
		st.setData(i, key, val)
	}
}

// sameComponent reports whether i and j may be joined without violating a
// disconnected layout. True when no layout is imposed.
func (st *state) sameComponent(i, j int) bool {
	if st.component[i] < 0 || st.component[j] < 0 {
		return true
	}

	return st.component[i] == st.component[j]
}

// markFixed records that the chosen family pins its own edge count.
func (st *state) markFixed() { st.fixed = true }
