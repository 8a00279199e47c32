// SPDX-License-Identifier: MIT
// Package: graphgen/validate
//
// bipartite.go — BFS 2-coloring and k-partite class verification.
package validate

import (
	"fmt"

	"github.com/katalvlaran/graphgen/core"
	"github.com/katalvlaran/graphgen/gen"
)

// CheckBipartiteWithBFS 2-colors g over its undirected simple adjacency.
// On failure it names the endpoints of the first same-color edge found,
// which lie on an odd cycle.
func CheckBipartiteWithBFS(g *core.Graph) (ok bool, u, w string) {
	v := newView(g)
	color := make([]int, v.n)
	for i := range color {
		color[i] = -1
	}

	for start := 0; start < v.n; start++ {
		if color[start] >= 0 {
			continue
		}
		color[start] = 0
		queue := []int{start}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, next := range v.simpleAdj[cur] {
				if color[next] < 0 {
					color[next] = 1 - color[cur]
					queue = append(queue, next)

					continue
				}
				if color[next] == color[cur] {
					return false, g.Nodes[cur].ID, g.Nodes[next].ID
				}
			}
		}
	}

	return true, "", ""
}

// checkPartiteClasses verifies the recorded k-partite class labels: every
// node is labeled, labels cover exactly k classes, and no edge stays inside
// one class.
func checkPartiteClasses(r *Result, v *view, prop string) {
	k := v.g.Spec.Partiteness.K
	class := make([]int, v.n)
	seen := map[int]bool{}
	for i := 0; i < v.n; i++ {
		c, ok := v.dataInt(i, gen.DataPartiteClass)
		if !ok {
			r.fail(prop, "node %s carries no partite class label", v.g.Nodes[i].ID)

			return
		}
		class[i] = c
		seen[c] = true
	}
	if k > 0 && len(seen) != k {
		r.fail(prop, "expected %d partite classes, found %d", k, len(seen))

		return
	}

	for _, e := range v.g.Edges {
		i, j := v.idx[e.Source], v.idx[e.Target]
		if i != j && class[i] == class[j] {
			r.fail(prop, "edge %s-%s stays inside partite class %d", e.Source, e.Target, class[i])

			return
		}
	}
	r.pass(prop)
}

// partitionSizes tallies the declared left/right partition counts.
func partitionSizes(g *core.Graph) (left, right int) {
	for _, node := range g.Nodes {
		switch node.Partition {
		case core.PartitionLeft:
			left++
		case core.PartitionRight:
			right++
		}
	}

	return left, right
}

// describePartition renders m+n for diagnostics.
func describePartition(g *core.Graph) string {
	left, right := partitionSizes(g)

	return fmt.Sprintf("%d+%d", left, right)
}
