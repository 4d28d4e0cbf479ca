package equiv

import (
	"context"
	"errors"
	"math"

	"github.com/derickeddington/graphequiv/node"
)

// ErrAborted is returned by Compare when the active descend.Mode's
// DoRecur signals that the descent limit has been reached (Limited mode
// hitting zero). It is a sentinel error, never a panic: the engine
// surfaces abort purely through this return value.
var ErrAborted = errors.New("equiv: aborted: descent limit reached")

// Mode controls, per comparison step, whether to descend a pair's edges
// and whether the traversal should abort. Implementations are provided by
// package descend (Unlimited, Limited, Interleave).
//
// DoEdges is called once per node pair, before any of its edges are
// visited; it may read and write the shared ticker to implement
// phase-based behavior (as Interleave does). DoRecur is called once per
// edge position, after the ticker has already been decremented for that
// position by the driver; it only reads the ticker.
type Mode[N any] interface {
	// DoEdges decides whether to descend the edges of a and b. Returning
	// false causes those descendants to be skipped entirely, as if
	// already known equivalent.
	DoEdges(ticker *int32, a, b N) bool

	// DoRecur decides whether to continue descending remaining edges.
	// Returning false aborts the whole comparison with ErrAborted.
	DoRecur(ticker int32) bool
}

// Backing abstracts how a deferred pair is handled: either compared
// immediately via a nested call (CallStack), or enqueued for the driver's
// outer loop to pick up later (VecStack). Implementations are provided by
// package recur.
type Backing[N any, C node.Cmp] interface {
	// Recur arranges for a and b to be compared, either now or later.
	// neutral is the caller's "equivalent-so-far" value, used by backings
	// that defer rather than compare immediately. compare performs an
	// immediate comparison of a single pair and is used by backings that
	// do not defer.
	Recur(a, b N, neutral C, compare func(a, b N) (C, error)) (C, error)

	// Next returns the next deferred pair, if any backing implementation
	// defers at all; ok is false when none remain.
	Next() (a, b N, ok bool)

	// Reset returns a usable, empty instance, discarding any pending
	// deferred pairs. May recycle the receiver's storage.
	Reset() Backing[N, C]
}

// State is the per-invocation state of the core driver: the shared
// ticker, the descent mode, the recursion backing, and the Cmp value
// denoting "equivalent" for this invocation's Cmp type. A State is not
// safe for concurrent use and must not be reused across invocations with
// different root nodes unless freshly reset.
type State[N node.Node[N, I, Ix, C], I comparable, Ix node.Index, C node.Cmp] struct {
	// Ticker counts down for Limited and encodes Interleave's phase
	// bands. Decremented once per edge visited, saturating at the
	// minimum representable value.
	Ticker int32

	// Mode decides per-step whether to descend and whether to abort.
	Mode Mode[N]

	// Backing supplies deferred pairs to the outer trampoline loop.
	Backing Backing[N, C]

	// Neutral is the "equivalent" value of this invocation's Cmp type.
	// Callers obtain it via reflexivity (a.EquivModuloEdges(a)), since Go
	// interfaces cannot express a static "construct the neutral value"
	// factory method the way the specification's Cmp trait does.
	Neutral C

	// Ctx, if non-nil, is checked for cancellation once per outer
	// trampoline iteration. Left nil, no cancellation check is performed,
	// matching the specification's "no time-based cancellation built in"
	// default; the strategy.WithContext option opts in.
	Ctx context.Context
}

// New constructs a State ready to run a comparison, with no context
// cancellation enabled. Use SetContext to opt in.
func New[N node.Node[N, I, Ix, C], I comparable, Ix node.Index, C node.Cmp](
	ticker int32,
	mode Mode[N],
	backing Backing[N, C],
	neutral C,
) *State[N, I, Ix, C] {
	return &State[N, I, Ix, C]{
		Ticker:  ticker,
		Mode:    mode,
		Backing: backing,
		Neutral: neutral,
	}
}

// SetContext installs ctx for cancellation checks in Compare's outer loop.
// A nil ctx disables the check.
func (s *State[N, I, Ix, C]) SetContext(ctx context.Context) {
	s.Ctx = ctx
}

// satSubOne decrements t by one, saturating at math.MinInt32 instead of
// wrapping around.
func satSubOne(t int32) int32 {
	if t == math.MinInt32 {
		return t
	}

	return t - 1
}
