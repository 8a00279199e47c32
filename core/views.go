// SPDX-License-Identifier: MIT
// Package: graphgen/core
//
// views.go — adjacency, degree, and lookup views derived from the edge list.
//
// Contract:
//   - Views are recomputed from Graph.Edges on every call; nothing is cached,
//     so a view can never disagree with the actual edge set.
//   - Neighbor slices are sorted and de-duplicated for deterministic
//     traversal order (teacher rule: sorted iteration everywhere).
//   - Undirected interpretation is derived here, never stored: an undirected
//     edge contributes both u→v and v→u to every view that mirrors.
//   - Degree counts a self-loop as 2 in undirected graphs (the standard
//     handshake convention, required for Eulerian checks).
//
// Complexity: each view is O(V + E log E) dominated by sorting.
package core

import "sort"

// NodeIndex maps node id → position in Graph.Nodes.
func (g *Graph) NodeIndex() map[string]int {
	idx := make(map[string]int, len(g.Nodes))
	for i, n := range g.Nodes {
		idx[n.ID] = i
	}

	return idx
}

// NodeByID returns the node with the given id, or nil.
func (g *Graph) NodeByID(id string) *Node {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n
		}
	}

	return nil
}

// Adjacency returns the symmetric neighbor view: direction is ignored, every
// edge contributes both endpoints' lists. Self-loops contribute the node to
// its own list once. Used for connectivity, bipartiteness, and undirected
// structure checks.
func (g *Graph) Adjacency() map[string][]string {
	adj := make(map[string]map[string]struct{}, len(g.Nodes))
	for _, n := range g.Nodes {
		adj[n.ID] = make(map[string]struct{})
	}
	for _, e := range g.Edges {
		if _, ok := adj[e.Source]; !ok {
			adj[e.Source] = make(map[string]struct{})
		}
		if _, ok := adj[e.Target]; !ok {
			adj[e.Target] = make(map[string]struct{})
		}
		adj[e.Source][e.Target] = struct{}{}
		adj[e.Target][e.Source] = struct{}{}
	}

	return sortedView(adj)
}

// OutAdjacency returns the successor view. For directed specs only stored
// directions are followed; for undirected specs the symmetric view is
// returned (every edge usable both ways).
func (g *Graph) OutAdjacency() map[string][]string {
	if !g.Spec.IsDirected() {
		return g.Adjacency()
	}

	adj := make(map[string]map[string]struct{}, len(g.Nodes))
	for _, n := range g.Nodes {
		adj[n.ID] = make(map[string]struct{})
	}
	for _, e := range g.Edges {
		if _, ok := adj[e.Source]; !ok {
			adj[e.Source] = make(map[string]struct{})
		}
		adj[e.Source][e.Target] = struct{}{}
	}

	return sortedView(adj)
}

// DegreeMap returns the undirected degree of every node: each incident edge
// counts 1, a self-loop counts 2.
func (g *Graph) DegreeMap() map[string]int {
	deg := make(map[string]int, len(g.Nodes))
	for _, n := range g.Nodes {
		deg[n.ID] = 0
	}
	for _, e := range g.Edges {
		if e.IsLoop() {
			deg[e.Source] += 2

			continue
		}
		deg[e.Source]++
		deg[e.Target]++
	}

	return deg
}

// OutDegreeMap returns per-node successor counts for directed specs
// (self-loops count 1). For undirected specs it equals DegreeMap without the
// loop doubling.
func (g *Graph) OutDegreeMap() map[string]int {
	deg := make(map[string]int, len(g.Nodes))
	for _, n := range g.Nodes {
		deg[n.ID] = 0
	}
	for _, e := range g.Edges {
		deg[e.Source]++
		if !g.Spec.IsDirected() && !e.IsLoop() {
			deg[e.Target]++
		}
	}

	return deg
}

// InDegreeMap returns per-node predecessor counts for directed specs.
func (g *Graph) InDegreeMap() map[string]int {
	deg := make(map[string]int, len(g.Nodes))
	for _, n := range g.Nodes {
		deg[n.ID] = 0
	}
	for _, e := range g.Edges {
		deg[e.Target]++
		if !g.Spec.IsDirected() && !e.IsLoop() {
			deg[e.Source]++
		}
	}

	return deg
}

// HasEdge reports whether an edge joins u and v under the spec's
// directionality: directed specs match stored direction only, undirected
// specs match either orientation.
func (g *Graph) HasEdge(u, v string) bool {
	for _, e := range g.Edges {
		if e.Source == u && e.Target == v {
			return true
		}
		if !g.Spec.IsDirected() && e.Source == v && e.Target == u {
			return true
		}
	}

	return false
}

// SelfLoopCount returns the number of edges with source == target.
func (g *Graph) SelfLoopCount() int {
	loops := 0
	for _, e := range g.Edges {
		if e.IsLoop() {
			loops++
		}
	}

	return loops
}

// ParallelEdgeCount returns the number of edges beyond the first per
// unordered (undirected) or ordered (directed) endpoint pair.
func (g *Graph) ParallelEdgeCount() int {
	seen := make(map[[2]string]int, len(g.Edges))
	extra := 0
	for _, e := range g.Edges {
		key := [2]string{e.Source, e.Target}
		if !g.Spec.IsDirected() && e.Target < e.Source {
			key = [2]string{e.Target, e.Source}
		}
		if seen[key] > 0 {
			extra++
		}
		seen[key]++
	}

	return extra
}

// sortedView materializes a set-valued adjacency into sorted slices.
func sortedView(adj map[string]map[string]struct{}) map[string][]string {
	out := make(map[string][]string, len(adj))
	for id, set := range adj {
		nbrs := make([]string, 0, len(set))
		for v := range set {
			nbrs = append(nbrs, v)
		}
		sort.Strings(nbrs)
		out[id] = nbrs
	}

	return out
}
