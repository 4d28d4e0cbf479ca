// Package randsrc supplies the pseudo-random source used by descend's
// Interleave mode to jitter its "fast" phase limit, so that pathological
// inputs whose sizes happen to align with fixed bounds cannot repeatedly
// trip worst-case behavior.
//
// Determinism is the default, grounded on the teacher library's
// tsp/rng.go: a seed of 0 is treated as an arbitrary-but-stable default
// seed rather than a request for true randomness, and Derive mixes a
// parent seed with a stream identifier using the canonical SplitMix64
// finalizer, giving decorrelated seeds for distinct streams. Nothing in
// this module calls Derive: every Interleave constructed without an
// explicit Source draws from Default(DefaultSeed), so such instances all
// follow the same jitter sequence.
package randsrc
