// SPDX-License-Identifier: MIT
// Package: graphgen/gen
//
// weights.go — the final attribute pass: edge weights and edge typing.
//
// Contract:
//   - Weighted specs get a uniform draw in the configured range on EVERY
//     edge; unweighted specs leave Weight nil on every edge.
//   - Heterogeneous specs with configured edge types assign one type per
//     edge by cumulative proportion sampling; the last listed type absorbs
//     the unclaimed remainder, mirroring node typing.
//
// Determinism: one draw per edge in list order, all from st.rng.
package gen

// assignWeights draws a weight for every edge of a weighted spec.
func assignWeights(st *state) {
	if !st.spec.IsWeighted() {
		return
	}

	lo, hi := weightBounds(st.cfg)
	span := hi - lo
	for i := range st.edges {
		w := lo + st.rng.Next()*span
		st.edges[i].Weight = &w
	}
}

// assignEdgeTypes tags every edge of a heterogeneous spec with one of the
// configured edge types.
func assignEdgeTypes(st *state) {
	if !st.spec.IsHeterogeneous() || len(st.cfg.EdgeTypes) == 0 {
		return
	}

	cum := cumulativeProportions(st.cfg.EdgeTypes)
	for i := range st.edges {
		st.edges[i].Type = pickByProportion(st, st.cfg.EdgeTypes, cum)
	}
}

// cumulativeProportions precomputes the sampling thresholds for a type
// list. Types with zero proportion split the unclaimed remainder evenly.
func cumulativeProportions(types []TypeSpec) []float64 {
	total := 0.0
	zeros := 0
	for _, ts := range types {
		total += ts.Proportion
		if ts.Proportion == 0 {
			zeros++
		}
	}
	fill := 0.0
	if zeros > 0 && total < 1.0 {
		fill = (1.0 - total) / float64(zeros)
	}

	cum := make([]float64, len(types))
	acc := 0.0
	for i, ts := range types {
		p := ts.Proportion
		if p == 0 {
			p = fill
		}
		acc += p
		cum[i] = acc
	}

	return cum
}

// pickByProportion draws one type by its cumulative threshold; the last
// type is the catch-all for rounding drift.
func pickByProportion(st *state, types []TypeSpec, cum []float64) string {
	draw := st.rng.Next()
	for i, threshold := range cum {
		if draw < threshold {
			return types[i].Name
		}
	}

	return types[len(types)-1].Name
}
