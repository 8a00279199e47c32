// SPDX-License-Identifier: MIT
// Package: graphgen/validate
//
// view.go — the index-based adjacency view every check reads from.
//
// Contract: built once per Validate call; neighbor lists are sorted and
// deduplicated (simpleAdj) so traversals are deterministic and parallel
// edges cannot double-count in cycle or coloring logic. Raw multiplicity
// stays available through pairCount.
package validate

import (
	"sort"

	"github.com/katalvlaran/graphgen/core"
)

// view is the per-validation adjacency snapshot.
type view struct {
	g   *core.Graph
	idx map[string]int
	n   int

	// simpleAdj is the undirected simple adjacency (sorted, deduped, no
	// self-loops).
	simpleAdj [][]int
	// outAdj / inAdj are the directed simple adjacencies; for undirected
	// graphs outAdj aliases simpleAdj.
	outAdj [][]int
	inAdj  [][]int

	// pairCount is the raw multiplicity per canonical endpoint pair.
	pairCount map[[2]int]int
	selfLoops int
}

// newView indexes g for the property checks.
func newView(g *core.Graph) *view {
	n := g.NodeCount()
	v := &view{
		g:         g,
		idx:       g.NodeIndex(),
		n:         n,
		pairCount: make(map[[2]int]int),
	}

	und := make([]map[int]struct{}, n)
	out := make([]map[int]struct{}, n)
	in := make([]map[int]struct{}, n)
	for i := range und {
		und[i] = make(map[int]struct{})
		out[i] = make(map[int]struct{})
		in[i] = make(map[int]struct{})
	}

	directed := g.Spec.IsDirected()
	for _, e := range g.Edges {
		i, j := v.idx[e.Source], v.idx[e.Target]
		if i == j {
			v.selfLoops++
			v.pairCount[[2]int{i, i}]++

			continue
		}

		key := [2]int{i, j}
		if !directed && j < i {
			key = [2]int{j, i}
		}
		v.pairCount[key]++

		und[i][j] = struct{}{}
		und[j][i] = struct{}{}
		out[i][j] = struct{}{}
		in[j][i] = struct{}{}
		if !directed {
			out[j][i] = struct{}{}
			in[i][j] = struct{}{}
		}
	}

	v.simpleAdj = sortedLists(und)
	v.outAdj = sortedLists(out)
	v.inAdj = sortedLists(in)

	return v
}

// hasPair reports whether at least one i-j edge exists, ignoring direction.
func (v *view) hasPair(i, j int) bool {
	for _, k := range v.simpleAdj[i] {
		if k == j {
			return true
		}
	}

	return false
}

// parallelPairs counts distinct non-loop pairs carrying more than one edge.
func (v *view) parallelPairs() int {
	count := 0
	for key, c := range v.pairCount {
		if key[0] != key[1] && c > 1 {
			count++
		}
	}

	return count
}

// simpleEdgeCount counts distinct non-loop adjacent pairs (undirected
// sense).
func (v *view) simpleEdgeCount() int {
	total := 0
	for _, nbrs := range v.simpleAdj {
		total += len(nbrs)
	}

	return total / 2
}

// components labels each node with an undirected component id and returns
// the component count. Order is deterministic: components are discovered
// in index order.
func (v *view) components() (labels []int, count int) {
	labels = make([]int, v.n)
	for i := range labels {
		labels[i] = -1
	}

	for start := 0; start < v.n; start++ {
		if labels[start] >= 0 {
			continue
		}
		queue := []int{start}
		labels[start] = count
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, w := range v.simpleAdj[u] {
				if labels[w] < 0 {
					labels[w] = count
					queue = append(queue, w)
				}
			}
		}
		count++
	}

	return labels, count
}

// degree returns the undirected simple degree of i (self-loops excluded).
func (v *view) degree(i int) int { return len(v.simpleAdj[i]) }

// data reads a metadata entry off node i.
func (v *view) data(i int, key string) (any, bool) {
	val, ok := v.g.Nodes[i].Data[key]

	return val, ok
}

// dataInt reads an int metadata entry off node i.
func (v *view) dataInt(i int, key string) (int, bool) {
	val, ok := v.g.Nodes[i].Data[key]
	if !ok {
		return 0, false
	}
	n, ok := val.(int)

	return n, ok
}

// dataFloat reads a float64 metadata entry off node i.
func (v *view) dataFloat(i int, key string) (float64, bool) {
	val, ok := v.g.Nodes[i].Data[key]
	if !ok {
		return 0, false
	}
	f, ok := val.(float64)

	return f, ok
}

func sortedLists(sets []map[int]struct{}) [][]int {
	lists := make([][]int, len(sets))
	for i, set := range sets {
		lists[i] = make([]int, 0, len(set))
		for j := range set {
			lists[i] = append(lists[i], j)
		}
		sort.Ints(lists[i])
	}

	return lists
}
