package descend_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/derickeddington/graphequiv/descend"
	"github.com/derickeddington/graphequiv/eqclass"
	"github.com/derickeddington/graphequiv/shapes"
)

// fixedSource always returns the same jitter value, for deterministic
// assertions about the fast-limit switch.
type fixedSource struct{ v int }

func (s fixedSource) Intn(exclusiveEnd int) int {
	if s.v >= exclusiveEnd {
		return exclusiveEnd - 1
	}

	return s.v
}

func TestInterleave_FastBandNeverConsultsTable(t *testing.T) {
	t.Parallel()

	table := eqclass.New[uint64]()
	mode := descend.NewInterleave[*shapes.PairNode, uint64](table, fixedSource{v: 7})

	alloc := &shapes.IDAllocator{}
	a, b := shapes.NewLeaf(alloc), shapes.NewLeaf(alloc)

	ticker := int32(5)
	assert.True(t, mode.DoEdges(&ticker, a, b))
	assert.Equal(t, int32(5), ticker, "fast band leaves the ticker untouched")
}

func TestInterleave_SlowBandRecordsThenDetectsHit(t *testing.T) {
	t.Parallel()

	table := eqclass.New[uint64]()
	mode := descend.NewInterleave[*shapes.PairNode, uint64](table, fixedSource{v: 0})

	alloc := &shapes.IDAllocator{}
	a, b := shapes.NewLeaf(alloc), shapes.NewLeaf(alloc)

	ticker := int32(-5)
	assert.True(t, mode.DoEdges(&ticker, a, b), "first encounter: not yet known same class")
	assert.Equal(t, int32(-5), ticker)

	assert.False(t, mode.DoEdges(&ticker, a, b), "second encounter: now known same class, skip descent")
	assert.Equal(t, int32(-1), ticker, "a hit resets the ticker to restart the slow budget")
}

func TestInterleave_ExhaustedSlowBudgetSwitchesToFast(t *testing.T) {
	t.Parallel()

	table := eqclass.New[uint64]()
	mode := descend.NewInterleave[*shapes.PairNode, uint64](table, fixedSource{v: 123})

	alloc := &shapes.IDAllocator{}
	a, b := shapes.NewLeaf(alloc), shapes.NewLeaf(alloc)

	ticker := descend.SlowLimitNeg - 1
	assert.True(t, mode.DoEdges(&ticker, a, b))
	assert.Equal(t, int32(123), ticker, "switches to fast with the jittered limit")
}

func TestInterleave_DoRecurAlwaysTrue(t *testing.T) {
	t.Parallel()

	table := eqclass.New[uint64]()
	mode := descend.NewInterleave[*shapes.PairNode, uint64](table, nil)

	assert.True(t, mode.DoRecur(-1_000_000))
	assert.True(t, mode.DoRecur(1_000_000))
}

func TestNewInterleave_NilSourceDefaultsWithoutPanicking(t *testing.T) {
	t.Parallel()

	table := eqclass.New[uint64]()
	mode := descend.NewInterleave[*shapes.PairNode, uint64](table, nil)

	alloc := &shapes.IDAllocator{}
	a, b := shapes.NewLeaf(alloc), shapes.NewLeaf(alloc)

	ticker := descend.SlowLimitNeg - 1
	assert.NotPanics(t, func() { mode.DoEdges(&ticker, a, b) })
}
