package recur

import (
	"github.com/derickeddington/graphequiv/equiv"
	"github.com/derickeddington/graphequiv/node"
)

// DefaultCapacity is the initial capacity of a new VecStack's backing
// slice. Traversal depth beyond this grows the slice by reallocation,
// bounded only by available memory.
const DefaultCapacity = 32

// pair holds one deferred comparison.
type pair[N any] struct {
	a, b N
}

// VecStack defers comparisons onto a heap-allocated LIFO buffer instead of
// the call stack: Recur pushes and returns immediately with neutral, Next
// pops. Traversal is depth-first preorder.
//
// Because the driver enqueues a node's edges in index order but VecStack
// pops in LIFO order, a node's edges are examined last index first. When
// a node's deep edge is at index 0, its shallower edges are resolved
// before the deep one is reached, bounding the stack to the fan-out of
// shallow positions rather than the full depth. When the deep edge is
// last, it is popped first and one shallow pair per level stays pending,
// so the stack grows with the depth (on the heap, not the call stack).
type VecStack[N any, C node.Cmp] struct {
	pairs []pair[N]
}

// NewVecStack constructs an empty VecStack with DefaultCapacity headroom.
func NewVecStack[N any, C node.Cmp]() *VecStack[N, C] {
	return NewVecStackWithCapacity[N, C](DefaultCapacity)
}

// NewVecStackWithCapacity constructs an empty VecStack with the given
// initial capacity headroom, for callers who know their expected traversal
// depth ahead of time.
func NewVecStackWithCapacity[N any, C node.Cmp](capacity int) *VecStack[N, C] {
	return &VecStack[N, C]{pairs: make([]pair[N], 0, capacity)}
}

// Recur pushes (a, b) for later comparison and reports equivalent-so-far.
func (s *VecStack[N, C]) Recur(a, b N, neutral C, _ func(a, b N) (C, error)) (C, error) {
	s.pairs = append(s.pairs, pair[N]{a: a, b: b})

	return neutral, nil
}

// Next pops the most recently deferred pair, if any.
func (s *VecStack[N, C]) Next() (a, b N, ok bool) {
	n := len(s.pairs)
	if n == 0 {
		return a, b, false
	}

	p := s.pairs[n-1]
	s.pairs = s.pairs[:n-1]

	return p.a, p.b, true
}

// Reset clears pending deferred pairs while keeping the backing array, so
// a VecStack used for an aborted Limited precheck can be reused cleanly
// for a following Interleave phase.
func (s *VecStack[N, C]) Reset() equiv.Backing[N, C] {
	s.pairs = s.pairs[:0]

	return s
}
