package shapes

import (
	"sync/atomic"

	"github.com/derickeddington/graphequiv/node"
)

// pairSeq is shared across every IDAllocator, so that PairNodes built by
// separate Chains — distinct shapes under comparison in the same test —
// never collide on identity the way values built by the same allocator
// instance intentionally never do. This mirrors a raw heap address always
// being distinct across separate allocations, the identity source the
// node type this is grounded on actually uses.
var pairSeq uint64

// IDAllocator hands out identities for PairNode values. The zero value is
// ready to use; every IDAllocator draws from the same global sequence.
type IDAllocator struct{}

// Next returns a fresh identity, distinct from every one previously
// returned by any IDAllocator.
func (a *IDAllocator) Next() uint64 {
	return atomic.AddUint64(&pairSeq, 1)
}

// PairNode is either a leaf (no children) or a pair (exactly two
// children), modeling tests_utils/src/shapes.rs's Leaf/Pair node family as
// a single Go type with an optional children slot. Constructors build a
// PairNode fully formed; the one in-place change is Chain.DegenerateCycle,
// which turns its shared leaf into a pair by setting the children slot.
type PairNode struct {
	id       uint64
	children *[2]*PairNode
}

// NewLeaf allocates a childless PairNode.
func NewLeaf(alloc *IDAllocator) *PairNode {
	return &PairNode{id: alloc.Next()}
}

// NewPair allocates a PairNode with children a and b, in that edge order.
func NewPair(a, b *PairNode, alloc *IDAllocator) *PairNode {
	return &PairNode{id: alloc.Next(), children: &[2]*PairNode{a, b}}
}

// ID returns p's allocator-assigned identity.
func (p *PairNode) ID() uint64 { return p.id }

// AmountEdges is 0 for a leaf, 2 for a pair.
func (p *PairNode) AmountEdges() int {
	if p.children == nil {
		return 0
	}

	return 2
}

// GetEdge returns child i of a pair. Panics if p is a leaf or i is out of
// range, per the node contract's "caller guarantees" clause.
func (p *PairNode) GetEdge(i int) *PairNode {
	return p.children[i]
}

// EquivModuloEdges reports whether p and other are both leaves or both
// pairs; a leaf is never equivalent to a pair, regardless of what their
// respective subtrees would compare as.
func (p *PairNode) EquivModuloEdges(other *PairNode) node.Bool {
	return node.Bool((p.children == nil) == (other.children == nil))
}
