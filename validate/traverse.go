// SPDX-License-Identifier: MIT
// Package: graphgen/validate
//
// traverse.go — cycle detection and girth computation.
//
// Complexity: directed cycle check is O(V+E) three-color DFS; undirected is
// O(V+E) parent-skipping DFS; girth is O(V·(V+E)) BFS from every vertex.
package validate

// dfs colors for the directed cycle check.
const (
	colorWhite = 0
	colorGray  = 1
	colorBlack = 2
)

// hasDirectedCycle runs the three-color DFS over outAdj.
func hasDirectedCycle(v *view) bool {
	color := make([]int, v.n)
	var visit func(u int) bool
	visit = func(u int) bool {
		color[u] = colorGray
		for _, w := range v.outAdj[u] {
			switch color[w] {
			case colorGray:
				return true
			case colorWhite:
				if visit(w) {
					return true
				}
			}
		}
		color[u] = colorBlack

		return false
	}

	for u := 0; u < v.n; u++ {
		if color[u] == colorWhite && visit(u) {
			return true
		}
	}

	return false
}

// hasUndirectedCycle runs a parent-skipping DFS over the simple adjacency.
// Parallel edges and self-loops are the caller's concern; this sees each
// pair once.
func hasUndirectedCycle(v *view) bool {
	visited := make([]bool, v.n)
	var visit func(u, parent int) bool
	visit = func(u, parent int) bool {
		visited[u] = true
		for _, w := range v.simpleAdj[u] {
			if w == parent {
				continue
			}
			if visited[w] {
				return true
			}
			if visit(w, u) {
				return true
			}
		}

		return false
	}

	for u := 0; u < v.n; u++ {
		if !visited[u] && visit(u, -1) {
			return true
		}
	}

	return false
}

// girth returns the length of the shortest simple cycle in the undirected
// simple view, or 0 when the graph is acyclic. Self-loops and parallel
// pairs are not considered.
func girth(v *view) int {
	best := 0
	dist := make([]int, v.n)
	parent := make([]int, v.n)

	for root := 0; root < v.n; root++ {
		for i := range dist {
			dist[i] = -1
		}
		dist[root] = 0
		parent[root] = -1
		queue := []int{root}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, w := range v.simpleAdj[u] {
				if w == parent[u] {
					continue
				}
				if dist[w] < 0 {
					dist[w] = dist[u] + 1
					parent[w] = u
					queue = append(queue, w)

					continue
				}
				// Non-tree edge: shortest cycle through root via u and w.
				cycle := dist[u] + dist[w] + 1
				if best == 0 || cycle < best {
					best = cycle
				}
			}
		}
	}

	return best
}
