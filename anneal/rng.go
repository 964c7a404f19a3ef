// Package anneal - RNG utilities for independent annealing reads.
//
// Goals:
//   - Determinism: same seed ⇒ identical sample sets across platforms.
//   - Independence: each read draws from its own derived stream, so read
//     k's trajectory does not depend on how many reads precede it.
//   - No time-based sources anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe; reads that run in parallel
//     must each own the *rand.Rand returned by readRNG.
package anneal

import "math/rand"

// defaultSeed is the fixed seed used when callers pass Seed == 0.
// Arbitrary but stable, to keep reproducible defaults.
const defaultSeed int64 = 1

// mix64 applies a SplitMix64-style finalizer to decorrelate a parent
// seed and a stream identifier into a fresh 64-bit seed.
func mix64(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// readRNG returns the deterministic RNG stream for read index r under
// the given base seed. Seed policy: seed == 0 ⇒ defaultSeed.
// Complexity: O(1).
func readRNG(seed int64, r int) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(mix64(seed, uint64(r))))
}
