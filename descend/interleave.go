package descend

import (
	"github.com/derickeddington/graphequiv/descend/randsrc"
	"github.com/derickeddington/graphequiv/eqclass"
)

// PrecheckLimit is the initial ticker value for a Limited precheck that
// precedes an Interleave phase. Inherited from the source material's prior
// art (tuned for a different host language) rather than independently
// justified for this engine's cost profile; override via a higher-level
// strategy.WithPrecheckLimit option if a different value suits a
// particular workload.
const PrecheckLimit = 400

// FastLimitMax bounds the random "fast" phase length chosen each time the
// slow-phase budget is exhausted.
const FastLimitMax = 2 * PrecheckLimit

// SlowLimit bounds how many consecutive steps the "slow" phase runs before
// switching back to "fast".
const SlowLimit = PrecheckLimit / 10

// SlowLimitNeg is the negative threshold below which the ticker denotes
// "slow budget exhausted".
const SlowLimitNeg = int32(-SlowLimit)

// identifiable is the minimal shape Interleave needs from a node type: a
// stable, comparable identity. Any type satisfying node.Node[N, I, Ix, C]
// also satisfies this, structurally, without needing to name the larger
// interface here.
type identifiable[I comparable] interface {
	ID() I
}

// Interleave alternates a "fast" phase (do_edges always true, near-zero
// overhead) with a "slow" phase that consults its equivalence-class table
// before descending, resetting to "slow" whenever a hit is found — which
// keeps the engine in slow mode as long as equivalences keep being
// discovered, critical for terminating on degenerate cyclic shapes.
// Exhausting the slow-phase budget without a hit switches back to fast for
// a randomized number of steps, so that pathological inputs whose sizes
// happen to align with fixed bounds cannot repeatedly trigger worst-case
// behavior.
type Interleave[N identifiable[I], I comparable] struct {
	table *eqclass.Table[I]
	rng   randsrc.Source
}

// NewInterleave constructs an Interleave mode backed by table, using rng
// for fast-limit jitter. A nil rng falls back to randsrc.Default with
// randsrc.DefaultSeed.
func NewInterleave[N identifiable[I], I comparable](table *eqclass.Table[I], rng randsrc.Source) *Interleave[N, I] {
	if rng == nil {
		rng = randsrc.Default(randsrc.DefaultSeed)
	}

	return &Interleave[N, I]{table: table, rng: rng}
}

// NewInterleaveFromLimited constructs the Interleave phase that follows an
// aborted Limited precheck, per the "transfer state on abort" handoff: the
// precheck's recursion backing is reused (after the caller resets it) so
// no second allocation is needed for a backing that failed to settle a
// verdict, while the table and ticker always start fresh.
func NewInterleaveFromLimited[N identifiable[I], I comparable](table *eqclass.Table[I], rng randsrc.Source) *Interleave[N, I] {
	return NewInterleave[N, I](table, rng)
}

// DoEdges implements the three-band ticker interpretation: ticker >= 0 is
// the fast phase; SlowLimitNeg <= ticker <= -1 is the slow phase, which
// consults the class table and, on a hit, resets the ticker to -1 and
// skips descent; ticker < SlowLimitNeg switches back to fast with a
// randomized limit.
func (m *Interleave[N, I]) DoEdges(ticker *int32, a, b N) bool {
	switch {
	case *ticker >= 0:
		return true

	case *ticker >= SlowLimitNeg:
		if m.table.SameClass(a.ID(), b.ID()) {
			*ticker = -1

			return false
		}

		return true

	default:
		*ticker = int32(m.rng.Intn(FastLimitMax + 1))

		return true
	}
}

// DoRecur always returns true: Interleave never aborts the caller, it only
// ever skips already-known-equivalent descendants via DoEdges.
func (m *Interleave[N, I]) DoRecur(_ int32) bool { return true }
