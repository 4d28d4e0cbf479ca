// Package strategy exposes the seven named compositions (layer L6) of
// mode and recursion backing, matching the specification's table:
//
//	BasicEquiv              Unlimited    + CallStack  (no cycles, no deep stacks)
//	BasicLimitedEquiv       Limited      + CallStack  (bounded, no cycles, no deep stacks)
//	DeepSafeEquiv           Unlimited    + VecStack   (deep stacks, no cycles)
//	CycleSafeEquiv          Interleave   + CallStack  (cycles, no deep stacks)
//	CycleSafePrecheckEquiv  Limited then Interleave + CallStack
//	RobustEquiv             Interleave   + VecStack   (cycles and deep stacks)
//	RobustPrecheckEquiv     Limited then Interleave + VecStack
//
// The precheck variants first attempt a bounded Limited pass; if it
// completes with a definite verdict, that is returned directly. If it
// aborts (the limit is exhausted without a mismatch), the backing is reset
// and handed to a freshly constructed Interleave phase, which runs to
// completion — a fast path for small acyclic graphs that falls through to
// full cycle detection only when needed.
//
// Every function obtains its invocation's "equivalent" Cmp value via
// a.EquivModuloEdges(a), relying on the node contract's reflexivity
// invariant, since Go interfaces cannot express the specification's
// static "construct the neutral value" factory.
package strategy
