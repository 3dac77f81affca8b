// Package sample draws entries from filtered word collections.
//
// What
//
//   - Draw: one weighted random pick, with a randomness dial blending true
//     occurrence counts toward a uniform distribution.
//   - Nth / TopK: positional access into the count-ordered collection.
//   - RNGFromSeed / DeriveRNG: the deterministic RNG policy shared by every
//     generator (seed==0 selects a fixed default stream).
//
// Determinism
//
// All randomness flows through an explicit *rand.Rand. Draw consumes exactly
// one value per call, so a fixed seed reproduces the same pick sequence no
// matter how the collections between calls vary in size.
//
// Errors: ErrEmptyCollection, ErrRandomness, ErrIndexRange; test with
// errors.Is.
package sample
