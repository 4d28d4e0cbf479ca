package strategy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/derickeddington/graphequiv/shapes"
	"github.com/derickeddington/graphequiv/strategy"
)

func TestBasicEquiv_IdenticalShapes(t *testing.T) {
	t.Parallel()

	a, _ := shapes.NewChain(10).List()
	b, _ := shapes.NewChain(10).List()

	assert.True(t, strategy.BasicEquiv(a, b))
}

func TestBasicEquiv_DifferentDepths(t *testing.T) {
	t.Parallel()

	a, _ := shapes.NewChain(10).List()
	b, _ := shapes.NewChain(11).List()

	assert.False(t, strategy.BasicEquiv(a, b))
}

func TestBasicLimitedEquiv_AbortsWhenTooDeep(t *testing.T) {
	t.Parallel()

	a, _ := shapes.NewChain(1000).List()
	b, _ := shapes.NewChain(1000).List()

	_, err := strategy.BasicLimitedEquiv(3, a, b)
	assert.Error(t, err)
}

func TestDeepSafeEquiv_HandlesDeepChainsWithoutCycles(t *testing.T) {
	t.Parallel()

	a, _ := shapes.NewChain(100_000).List()
	b, _ := shapes.NewChain(100_000).List()

	assert.True(t, strategy.DeepSafeEquiv(a, b))
}

func TestDeepSafeEquiv_DetectsMismatch(t *testing.T) {
	t.Parallel()

	a, _ := shapes.NewChain(10).List()
	b, _ := shapes.NewChain(10).InvertedList()

	assert.False(t, strategy.DeepSafeEquiv(a, b))
}

func TestCycleSafeEquiv_TerminatesOnDegenerateCycle(t *testing.T) {
	t.Parallel()

	a, _ := shapes.NewChain(33).DegenerateCycle()
	b, _ := shapes.NewChain(33).DegenerateCycle()

	assert.True(t, strategy.CycleSafeEquiv(a, b))
}

func TestCycleSafeEquiv_SelfCompareAlwaysTrue(t *testing.T) {
	t.Parallel()

	head, _ := shapes.NewChain(1).DegenerateCycle()

	assert.True(t, strategy.CycleSafeEquiv(head, head))
}

func TestCycleSafePrecheckEquiv_FallsThroughToInterleaveOnCycle(t *testing.T) {
	t.Parallel()

	a, _ := shapes.NewChain(33).DegenerateCycle()
	b, _ := shapes.NewChain(33).DegenerateCycle()

	assert.True(t, strategy.CycleSafePrecheckEquiv(a, b, strategy.WithPrecheckLimit(7)))
}

func TestCycleSafePrecheckEquiv_PrecheckSettlesSmallAcyclicInput(t *testing.T) {
	t.Parallel()

	a, _ := shapes.NewChain(3).List()
	b, _ := shapes.NewChain(3).List()

	assert.True(t, strategy.CycleSafePrecheckEquiv(a, b))
}

func TestRobustEquiv_HandlesDeepDegenerateDAG(t *testing.T) {
	t.Parallel()

	a, _ := shapes.NewChain(50_000).DegenerateDAG()
	b, _ := shapes.NewChain(50_000).DegenerateDAG()

	assert.True(t, strategy.RobustEquiv(a, b))
}

func TestRobustEquiv_DetectsMismatchOnDegenerateCycle(t *testing.T) {
	t.Parallel()

	a, _ := shapes.NewChain(33).DegenerateCycle()
	b, _ := shapes.NewChain(33).DegenerateDAG()

	assert.False(t, strategy.RobustEquiv(a, b))
}

func TestRobustPrecheckEquiv_FallsThroughOnDeepCycle(t *testing.T) {
	t.Parallel()

	a, _ := shapes.NewChain(10_000).DegenerateCycle()
	b, _ := shapes.NewChain(10_000).DegenerateCycle()

	assert.True(t, strategy.RobustPrecheckEquiv(a, b, strategy.WithPrecheckLimit(7)))
}

func TestStrategies_AgreeOnLeafVsPair(t *testing.T) {
	t.Parallel()

	alloc := &shapes.IDAllocator{}
	leaf := shapes.NewLeaf(alloc)
	pair := shapes.NewPair(shapes.NewLeaf(alloc), shapes.NewLeaf(alloc), alloc)

	assert.False(t, strategy.BasicEquiv(leaf, pair))
	assert.False(t, strategy.DeepSafeEquiv(leaf, pair))
	assert.False(t, strategy.CycleSafeEquiv(leaf, pair))
	assert.False(t, strategy.RobustEquiv(leaf, pair))
}

func TestOptions_WithTableInitialCapacityDoesNotChangeOutcome(t *testing.T) {
	t.Parallel()

	a, _ := shapes.NewChain(20).DegenerateDAG()
	b, _ := shapes.NewChain(20).DegenerateDAG()

	assert.True(t, strategy.RobustEquiv(a, b, strategy.WithTableInitialCapacity(1), strategy.WithInitialVecStackCap(1)))
}
