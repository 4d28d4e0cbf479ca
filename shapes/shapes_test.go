package shapes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/derickeddington/graphequiv/node"
	"github.com/derickeddington/graphequiv/shapes"
)

func TestChain_List_ShapeAndIdentity(t *testing.T) {
	t.Parallel()

	head, tail := shapes.NewChain(3).List()

	assert.NotNil(t, head)
	assert.Equal(t, 2, head.AmountEdges())
	assert.Equal(t, tail.ID(), head.GetEdge(1).GetEdge(1).GetEdge(1).ID(), "the shared tail sits at the bottom of every right spine")
}

func TestChain_DegenerateCycle_ClosesBackToHead(t *testing.T) {
	t.Parallel()

	head, tail := shapes.NewChain(4).DegenerateCycle()

	assert.Equal(t, 2, tail.AmountEdges(), "the original leaf is rewritten into a pair")
	assert.Equal(t, head.ID(), tail.GetEdge(0).ID())
	assert.Equal(t, head.ID(), tail.GetEdge(1).ID())
}

func TestChain_ZeroDepth_IsJustTheSharedLeaf(t *testing.T) {
	t.Parallel()

	head, tail := shapes.NewChain(0).List()

	assert.Equal(t, head.ID(), tail.ID())
	assert.Equal(t, 0, head.AmountEdges())
}

func TestPairNode_EquivModuloEdges_LeafVsPair(t *testing.T) {
	t.Parallel()

	alloc := &shapes.IDAllocator{}
	leaf := shapes.NewLeaf(alloc)
	pair := shapes.NewPair(shapes.NewLeaf(alloc), shapes.NewLeaf(alloc), alloc)

	assert.False(t, leaf.EquivModuloEdges(pair).IsEquivalent())
	assert.True(t, leaf.EquivModuloEdges(leaf).IsEquivalent())
}

func TestDatum_VariantOrdering(t *testing.T) {
	t.Parallel()

	a, b, c1 := shapes.NewA(), shapes.NewB(), shapes.NewC('x')

	assert.Equal(t, node.Less, a.EquivModuloEdges(b))
	assert.Equal(t, node.Greater, b.EquivModuloEdges(a))
	assert.Equal(t, node.Less, b.EquivModuloEdges(c1))
	assert.Equal(t, node.Equal, a.EquivModuloEdges(shapes.NewA()))
}

func TestDatum_CVariantOrdersByRune(t *testing.T) {
	t.Parallel()

	assert.Equal(t, node.Less, shapes.NewC('a').EquivModuloEdges(shapes.NewC('b')))
	assert.Equal(t, node.Equal, shapes.NewC('a').EquivModuloEdges(shapes.NewC('a')))
	assert.Equal(t, node.Greater, shapes.NewC('b').EquivModuloEdges(shapes.NewC('a')))
}

func TestDatum_DVariant_OrdersBySlotPresence(t *testing.T) {
	t.Parallel()

	none := shapes.NewD(nil, nil)
	someFirst := shapes.NewD(shapes.NewA(), nil)
	someSecond := shapes.NewD(nil, shapes.NewA())
	both := shapes.NewD(shapes.NewA(), shapes.NewA())

	assert.Equal(t, node.Less, none.EquivModuloEdges(someFirst))
	assert.Equal(t, node.Less, none.EquivModuloEdges(someSecond))
	assert.Equal(t, node.Less, someFirst.EquivModuloEdges(both))
	assert.Equal(t, node.Equal, none.EquivModuloEdges(shapes.NewD(nil, nil)))
}

func TestDatum_DAndE_CompareEqualRegardlessOfVariant(t *testing.T) {
	t.Parallel()

	d := shapes.NewD(shapes.NewA(), nil)
	e := shapes.NewE(shapes.NewA())

	assert.Equal(t, node.Equal, d.EquivModuloEdges(e))
	assert.Equal(t, node.Equal, e.EquivModuloEdges(d))
	assert.Equal(t, 1, d.AmountEdges())
	assert.Equal(t, 1, e.AmountEdges())
}

func TestDatum_EdgeAccess(t *testing.T) {
	t.Parallel()

	inner := shapes.NewC('z')
	d := shapes.NewD(nil, inner)

	assert.Equal(t, 1, d.AmountEdges())
	assert.Equal(t, inner.ID(), d.GetEdge(0).ID())
}
