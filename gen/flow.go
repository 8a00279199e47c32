// SPDX-License-Identifier: MIT
// Package: graphgen/gen
//
// flow.go — flow networks and traversability families: layered s-t network,
// Eulerian circuit/path, Hamiltonian backbone.
//
// Contract:
//   - Flow networks require a directed spec; source is N0, sink is N{n-1},
//     interior nodes are layered and every edge points source-ward →
//     sink-ward (a DAG by construction). Layer ids are stashed per node.
//   - Eulerian circuit: the whole vertex set lies on one closed trail, every
//     degree even (2-regular cycle backbone plus optional chord cycles).
//   - Eulerian path: exactly two odd-degree endpoints (open chain).
//   - Hamiltonian lays a spanning cycle/path backbone and records the vertex
//     order; the density pass may add edges freely, which cannot destroy the
//     backbone.
package gen

import (
	"fmt"
)

const (
	methodFlowNetwork = "FlowNetwork"
	methodEulerian    = "Eulerian"
	methodHamiltonian = "Hamiltonian"
)

// Metadata keys written by this file.
const (
	DataFlowRole       = "flow_role" // "source" | "sink" | "interior"
	DataFlowLayer      = "flow_layer"
	DataEulerian       = "eulerian" // "circuit" | "path"
	DataHamiltonianPos = "hamiltonian_pos"
)

// buildFlowNetwork lays a layered source→sink DAG.
func buildFlowNetwork(st *state) error {
	if !st.spec.IsDirected() {
		return fmt.Errorf("%s: flow network requires a directed spec: %w",
			methodFlowNetwork, ErrSpecMismatch)
	}
	n := st.n()
	if n < 2 {
		return fmt.Errorf("%s: flow network requires at least 2 nodes (source and sink), got %d: %w",
			methodFlowNetwork, n, ErrInfeasible)
	}

	st.setData(0, DataFlowRole, "source")
	st.setData(n-1, DataFlowRole, "sink")
	st.setData(0, DataFlowLayer, 0)

	if n == 2 {
		st.addEdge(0, 1)
		st.setData(1, DataFlowLayer, 1)

		return nil
	}

	// Interior nodes 1..n-2 spread over up to 3 layers.
	interior := n - 2
	layers := 1
	if interior >= 4 {
		layers = st.rng.IntBetween(2, 3)
	}
	perLayer := (interior + layers - 1) / layers

	layerOf := make([]int, n)
	layerOf[0] = 0
	for i := 1; i <= interior; i++ {
		layerOf[i] = 1 + (i-1)/perLayer
		st.setData(i, DataFlowRole, "interior")
		st.setData(i, DataFlowLayer, layerOf[i])
	}
	sinkLayer := layerOf[interior] + 1
	layerOf[n-1] = sinkLayer
	st.setData(n-1, DataFlowLayer, sinkLayer)

	// Every node reaches the next layer at least once; extra forward edges
	// are drawn per pair.
	for i := 0; i < n-1; i++ {
		// Guaranteed forward edge to a uniformly drawn next-layer node.
		next := nodesInLayer(layerOf, layerOf[i]+1)
		if len(next) == 0 {
			next = []int{n - 1}
		}
		tgt := next[st.rng.IntBetween(0, len(next)-1)]
		st.addEdgeOnce(i, tgt)
	}
	// Bernoulli skip edges, strictly layer-increasing to preserve the DAG.
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			if layerOf[j] <= layerOf[i] || st.hasPair(i, j) {
				continue
			}
			if st.rng.Next() < 0.25 {
				st.addEdge(i, j)
			}
		}
	}

	return nil
}

// nodesInLayer lists the node indices assigned to the given layer.
func nodesInLayer(layerOf []int, layer int) []int {
	var out []int
	for i, l := range layerOf {
		if l == layer {
			out = append(out, i)
		}
	}

	return out
}

// buildEulerian lays a closed trail (circuit) or open trail (path) visiting
// every node.
func buildEulerian(st *state) error {
	n := st.n()
	kind := st.spec.Eulerian.Kind
	if n < minCycleSize && kind == "circuit" {
		return fmt.Errorf("%s: eulerian circuit requires at least %d nodes, got %d: %w",
			methodEulerian, minCycleSize, n, ErrInfeasible)
	}
	if n < 2 {
		return fmt.Errorf("%s: eulerian path requires at least 2 nodes, got %d: %w",
			methodEulerian, n, ErrInfeasible)
	}

	if kind == "circuit" {
		// Cycle backbone: every degree exactly 2 (even), one closed trail.
		buildCycleEdges(st, 0, n)
	} else {
		// Chain backbone: endpoints odd, interior even.
		for i := 0; i < n-1; i++ {
			st.addEdge(i, i+1)
		}
	}
	st.setAllData(DataEulerian, string(kind))

	return nil
}

// buildHamiltonian lays a spanning cycle or path backbone over a random
// vertex order and records each node's position on it.
func buildHamiltonian(st *state) error {
	n := st.n()
	if n < minCycleSize && st.spec.Hamiltonian.Kind == "cycle" {
		return fmt.Errorf("%s: hamiltonian cycle requires at least %d nodes, got %d: %w",
			methodHamiltonian, minCycleSize, n, ErrInfeasible)
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	shuffleInts(st, order)

	for pos, idx := range order {
		st.setData(idx, DataHamiltonianPos, pos)
	}
	for i := 0; i < n-1; i++ {
		st.addEdgeOnce(order[i], order[i+1])
	}
	if st.spec.Hamiltonian.Kind == "cycle" && n >= minCycleSize {
		st.addEdgeOnce(order[n-1], order[0])
	}

	return nil
}

// shuffleInts permutes idx in place from the state's RNG stream.
func shuffleInts(st *state, idx []int) {
	for i := len(idx) - 1; i > 0; i-- {
		j := st.rng.IntBetween(0, i)
		idx[i], idx[j] = idx[j], idx[i]
	}
}
