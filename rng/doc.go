// Package rng provides the single seeded pseudo-random source used by every
// stochastic graph generator in graphgen.
//
// Design contract (strict):
//   - One RNG instance per generation call; no globals, no reseeding mid-run.
//   - Same seed + same call sequence ⇒ identical output sequence. This is the
//     foundation of reproducible test fixtures across the whole engine.
//   - All draws flow through math/rand with an explicit rand.NewSource(seed);
//     no package-level rand functions are ever used.
//
// Surface:
//   - Next()              → float64 in [0,1)
//   - IntBetween(min,max) → int in the inclusive range [min,max]
//   - Choice / ChoiceIndex → uniform element / index of a non-empty slice
//   - Shuffle             → in-place Fisher–Yates permutation
//
// AI-Hints:
//   - Pass seeds explicitly in tests; seed 42 is the conventional fixture seed.
//   - Never interleave two RNG instances inside one generator: determinism is
//     defined per call sequence on one instance.
package rng
