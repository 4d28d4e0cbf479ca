package strategy

import (
	"github.com/derickeddington/graphequiv/descend"
	"github.com/derickeddington/graphequiv/equiv"
	"github.com/derickeddington/graphequiv/node"
	"github.com/derickeddington/graphequiv/recur"
)

// BasicEquiv compares a and b with no cycle protection and no bound on
// recursion depth: it descends every edge via a nested call on the native
// stack, and never terminates on a true cycle. Suitable for acyclic graphs
// shallow enough not to threaten stack overflow — trees, DAGs of known
// modest depth.
func BasicEquiv[N node.Node[N, I, Ix, C], I comparable, Ix node.Index, C node.Cmp](a, b N) bool {
	neutral := a.EquivModuloEdges(a)
	s := equiv.New[N, I, Ix, C](0, descend.Unlimited[N]{}, recur.CallStack[N, C]{}, neutral)

	return s.IsEquiv(a, b)
}

// BasicLimitedEquiv is BasicEquiv with a bounded descent: ticker starts at
// limit and counts down across every edge visited; if it goes negative
// before a verdict is reached, the comparison aborts with equiv.ErrAborted
// instead of continuing. Still uses the native call stack and provides no
// cycle protection, so a cyclic input either aborts once the limit is
// exhausted or, for a small enough limit relative to the cycle, may never
// reach the cyclic portion at all.
func BasicLimitedEquiv[N node.Node[N, I, Ix, C], I comparable, Ix node.Index, C node.Cmp](limit int32, a, b N) (C, error) {
	neutral := a.EquivModuloEdges(a)
	s := equiv.New[N, I, Ix, C](limit, descend.Limited[N]{}, recur.CallStack[N, C]{}, neutral)

	return s.Compare(a, b)
}
