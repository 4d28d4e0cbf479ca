package node_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/derickeddington/graphequiv/node"
)

func TestOrdering_IsEquivalent(t *testing.T) {
	t.Parallel()

	assert.True(t, node.Equal.IsEquivalent())
	assert.False(t, node.Less.IsEquivalent())
	assert.False(t, node.Greater.IsEquivalent())
}

func TestOrdering_Then(t *testing.T) {
	t.Parallel()

	assert.Equal(t, node.Less, node.Less.Then(node.Greater), "decisive receiver short-circuits")
	assert.Equal(t, node.Greater, node.Greater.Then(node.Less), "decisive receiver short-circuits")
	assert.Equal(t, node.Greater, node.Equal.Then(node.Greater), "neutral receiver falls through")
	assert.Equal(t, node.Equal, node.Equal.Then(node.Equal))
}

func TestOrdering_Invert(t *testing.T) {
	t.Parallel()

	assert.Equal(t, node.Greater, node.Less.Invert())
	assert.Equal(t, node.Less, node.Greater.Invert())
	assert.Equal(t, node.Equal, node.Equal.Invert())
}

func TestCompareInts(t *testing.T) {
	t.Parallel()

	assert.Equal(t, node.Less, node.CompareInts(1, 2))
	assert.Equal(t, node.Greater, node.CompareInts(2, 1))
	assert.Equal(t, node.Equal, node.CompareInts(2, 2))
}

func TestBool_IsEquivalent(t *testing.T) {
	t.Parallel()

	assert.True(t, node.Equivalent.IsEquivalent())
	assert.False(t, node.NotEquivalent.IsEquivalent())
}
