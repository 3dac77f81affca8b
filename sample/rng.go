// Package sample - RNG utilities shared by all draw operations.
//
// This file centralizes deterministic random generation for sampling.
//
// Goals:
//   - Determinism: same seed ⇒ identical draw sequences across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Safety: no panics; only sentinel errors from errors.go when needed.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across
//     goroutines; use DeriveRNG to create independent streams instead.
package sample

import "math/rand"

// DefaultSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const DefaultSeed int64 = 1

// RNGFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use DefaultSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func RNGFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = DefaultSeed
	}

	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed using a SplitMix64-style avalanche mix, eliminating correlations
// between substreams.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	// SplitMix64 finalizer; see Vigna 2014 for the constants.
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// DeriveRNG creates an independent deterministic RNG stream from a base RNG
// and a stream identifier. If base==nil, DefaultSeed is the parent.
// base.Int63() is consumed once so that repeated derivations with the same
// stream id still diverge.
//
// Complexity: O(1).
func DeriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	parent := DefaultSeed
	if base != nil {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}
