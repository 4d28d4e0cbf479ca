// Package descend implements the three descent modes (layer L3):
// Unlimited, Limited, and Interleave, each satisfying equiv.Mode.
//
// Unlimited never skips edges and never aborts; it underlies the basic
// and deep-safe strategies when cycle detection is not needed. Limited
// counts down to zero and then aborts, underlying basic's bounded variant
// and the precheck phase of the combined strategies. Interleave alternates
// a cheap "fast" phase with an occasional "slow" phase that consults an
// eqclass.Table to detect already-known-equivalent pairs before
// descending them, which is what makes cyclic and heavily-shared inputs
// terminate.
package descend
