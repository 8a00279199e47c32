// SPDX-License-Identifier: MIT
// Package: graphgen/dot

// Package dot renders a generated graph as Graphviz DOT text.
//
// Contract:
//   - Deterministic output: nodes in list order, edges in list order, no
//     map iteration anywhere.
//   - Directed specs render as digraph with ->, undirected as graph
//     with --.
//   - Partition sides, node types, and edge weights surface as attributes
//     so a rendered graph is visually checkable against its spec.
package dot

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/graphgen/core"
)

// Marshal renders g as DOT text.
func Marshal(g *core.Graph) string {
	var b strings.Builder

	keyword, operator := "graph", "--"
	if g.Spec.IsDirected() {
		keyword, operator = "digraph", "->"
	}
	fmt.Fprintf(&b, "%s G {\n", keyword)

	for _, node := range g.Nodes {
		attrs := nodeAttrs(node)
		if attrs == "" {
			fmt.Fprintf(&b, "  %q;\n", node.ID)

			continue
		}
		fmt.Fprintf(&b, "  %q [%s];\n", node.ID, attrs)
	}

	for _, e := range g.Edges {
		attrs := edgeAttrs(e)
		if attrs == "" {
			fmt.Fprintf(&b, "  %q %s %q;\n", e.Source, operator, e.Target)

			continue
		}
		fmt.Fprintf(&b, "  %q %s %q [%s];\n", e.Source, operator, e.Target, attrs)
	}

	b.WriteString("}\n")

	return b.String()
}

func nodeAttrs(node *core.Node) string {
	var attrs []string
	if node.Partition != core.NoPartition {
		attrs = append(attrs, fmt.Sprintf("partition=%q", node.Partition))
	}
	if node.Type != "" {
		attrs = append(attrs, fmt.Sprintf("type=%q", node.Type))
	}

	return strings.Join(attrs, ", ")
}

func edgeAttrs(e core.Edge) string {
	var attrs []string
	if e.Weight != nil {
		attrs = append(attrs, fmt.Sprintf("label=%q, weight=%g", fmt.Sprintf("%.2f", *e.Weight), *e.Weight))
	}
	if e.Type != "" {
		attrs = append(attrs, fmt.Sprintf("type=%q", e.Type))
	}

	return strings.Join(attrs, ", ")
}
