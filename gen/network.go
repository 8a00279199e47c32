// SPDX-License-Identifier: MIT
// Package: graphgen/gen
//
// network.go — network-science families: scale-free (Barabási–Albert),
// small-world (Watts–Strogatz), modular communities, core-periphery.
//
// Contract:
//   - scale-free: preferential attachment over an initial complete core;
//     the configured exponent (default 2.1) is a *target* stashed as
//     metadata — heuristic construction only probabilistically matches it.
//   - small-world: ring lattice, each node joined to ringNeighbors/2 nodes
//     per side, then probabilistic rewiring (default 0.1).
//   - modular: explicit community assignment with independent intra/inter
//     inclusion probabilities (defaults 0.6 / 0.05); community id stashed.
//   - core-periphery: complete core on ⌈n/3⌉ nodes, periphery nodes attach
//     to 1-2 core nodes; role stashed.
package gen

const (
	methodScaleFree     = "ScaleFree"
	methodSmallWorld    = "SmallWorld"
	methodModular       = "Modular"
	methodCorePeriphery = "CorePeriphery"

	// DefaultScaleFreeExponent is the BA target exponent.
	DefaultScaleFreeExponent = 2.1
	// DefaultRewireProbability is the WS rewiring probability.
	DefaultRewireProbability = 0.1
	// DefaultIntraProbability / DefaultInterProbability drive modular specs.
	DefaultIntraProbability = 0.6
	DefaultInterProbability = 0.05

	scaleFreeCoreSize    = 3
	scaleFreeEdgesPerNew = 2
	ringNeighbors        = 4 // 2 per side
)

// Metadata keys written by this file.
const (
	DataScaleFreeExponent = "scale_free_exponent"
	DataRewireProbability = "rewire_probability"
	DataCommunity         = "community"
	DataRole              = "role" // "core" | "periphery"
)

// buildScaleFree runs Barabási–Albert preferential attachment.
func buildScaleFree(st *state) error {
	n := st.n()
	exponent := st.spec.ScaleFree.Exponent
	if exponent == 0 {
		exponent = DefaultScaleFreeExponent
	}
	st.setAllData(DataScaleFreeExponent, exponent)

	core := scaleFreeCoreSize
	if core > n {
		core = n
	}

	// Initial complete core; stubs holds one entry per edge endpoint so a
	// uniform draw over it is degree-proportional.
	var stubs []int
	for i := 0; i < core; i++ {
		for j := i + 1; j < core; j++ {
			st.addEdge(i, j)
			stubs = append(stubs, i, j)
		}
	}

	for i := core; i < n; i++ {
		added := 0
		for attempt := 0; attempt < 10*scaleFreeEdgesPerNew && added < scaleFreeEdgesPerNew; attempt++ {
			var target int
			if len(stubs) == 0 {
				target = st.rng.IntBetween(0, i-1)
			} else {
				target = stubs[st.rng.IntBetween(0, len(stubs)-1)]
			}
			if target == i || st.hasPair(i, target) {
				continue
			}
			st.addEdge(i, target)
			stubs = append(stubs, i, target)
			added++
		}
	}

	return nil
}

// buildSmallWorld lays the Watts–Strogatz ring lattice and rewires.
func buildSmallWorld(st *state) error {
	n := st.n()
	p := st.spec.SmallWorld.RewireProbability
	if p == 0 {
		p = DefaultRewireProbability
	}
	st.setAllData(DataRewireProbability, p)

	if n < minCycleSize {
		if n == 2 {
			st.addEdge(0, 1)
		}

		return nil
	}

	half := ringNeighbors / 2
	for i := 0; i < n; i++ {
		for off := 1; off <= half; off++ {
			j := (i + off) % n
			if i == j || st.hasPair(i, j) {
				continue
			}
			if st.rng.Next() < p {
				// Rewire: replace the lattice edge with a uniform chord.
				for attempt := 0; attempt < n; attempt++ {
					alt := st.rng.IntBetween(0, n-1)
					if alt == i || st.hasPair(i, alt) {
						continue
					}
					st.addEdge(i, alt)

					break
				}

				continue
			}
			st.addEdge(i, j)
		}
	}

	return nil
}

// buildModular assigns communities and draws intra/inter Bernoulli edges.
func buildModular(st *state) error {
	n := st.n()
	ax := st.spec.Modular

	comms := ax.Communities
	if comms <= 0 {
		comms = 3
	}
	if comms > n {
		comms = n
	}
	intra := ax.IntraProbability
	if intra == 0 {
		intra = DefaultIntraProbability
	}
	inter := ax.InterProbability
	if inter == 0 {
		inter = DefaultInterProbability
	}

	community := make([]int, n)
	for i := 0; i < n; i++ {
		community[i] = i * comms / n
		st.setData(i, DataCommunity, community[i])
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			p := inter
			if community[i] == community[j] {
				p = intra
			}
			if st.rng.Next() < p {
				st.addEdge(i, j)
			}
		}
	}

	return nil
}

// buildCorePeriphery completes a ⌈n/3⌉ core and sparsely attaches the rest.
func buildCorePeriphery(st *state) error {
	n := st.n()
	coreSize := (n + 2) / 3
	if coreSize < 1 {
		coreSize = 1
	}

	for i := 0; i < coreSize; i++ {
		st.setData(i, DataRole, "core")
		for j := i + 1; j < coreSize; j++ {
			st.addEdge(i, j)
		}
	}
	for i := coreSize; i < n; i++ {
		st.setData(i, DataRole, "periphery")
		links := st.rng.IntBetween(1, 2)
		for l := 0; l < links; l++ {
			anchor := st.rng.IntBetween(0, coreSize-1)
			st.addEdgeOnce(anchor, i)
		}
	}

	return nil
}
