package strategy

import (
	"github.com/derickeddington/graphequiv/descend"
	"github.com/derickeddington/graphequiv/equiv"
	"github.com/derickeddington/graphequiv/node"
	"github.com/derickeddington/graphequiv/recur"
)

// DeepSafeEquiv compares a and b with unbounded descent, backed by a
// heap-allocated vector-stack instead of the native call stack: traversal
// depth is bounded only by available memory, not by host stack size. It
// still provides no cycle protection and does not terminate on a true
// cycle; use CycleSafeEquiv or RobustEquiv for cyclic inputs.
func DeepSafeEquiv[N node.Node[N, I, Ix, C], I comparable, Ix node.Index, C node.Cmp](a, b N, opts ...Option) bool {
	o := resolve(opts)

	neutral := a.EquivModuloEdges(a)
	backing := recur.NewVecStackWithCapacity[N, C](o.VecStackInitialCap)

	s := equiv.New[N, I, Ix, C](0, descend.Unlimited[N]{}, backing, neutral)
	s.SetContext(o.Ctx)

	return s.IsEquiv(a, b)
}
