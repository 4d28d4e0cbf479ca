package strategy

import (
	"github.com/derickeddington/graphequiv/descend"
	"github.com/derickeddington/graphequiv/eqclass"
	"github.com/derickeddington/graphequiv/equiv"
	"github.com/derickeddington/graphequiv/node"
	"github.com/derickeddington/graphequiv/recur"
)

// RobustEquiv combines both protections: an Interleave mode consulting an
// equivalence-class table to terminate on cycles and shared substructure,
// backed by a heap-allocated vector-stack so traversal depth is bounded
// only by available memory. The strategy to reach for when nothing is
// known about an input's shape.
func RobustEquiv[N node.Node[N, I, Ix, C], I comparable, Ix node.Index, C node.Cmp](a, b N, opts ...Option) bool {
	o := resolve(opts)

	neutral := a.EquivModuloEdges(a)
	backing := recur.NewVecStackWithCapacity[N, C](o.VecStackInitialCap)
	table := eqclass.New[I](eqclass.WithInitialCapacity(o.TableInitialCapacity))
	mode := descend.NewInterleave[N, I](table, o.RandSource)

	s := equiv.New[N, I, Ix, C](-1, mode, backing, neutral)
	s.SetContext(o.Ctx)

	return s.IsEquiv(a, b)
}

// RobustPrecheckEquiv runs a bounded Limited precheck backed by a
// vector-stack before falling through to the full Interleave-plus-
// vector-stack phase on abort, carrying over the same backing (reset to
// empty) rather than allocating a second one. Combines
// CycleSafePrecheckEquiv's fast path for small inputs with RobustEquiv's
// deep-stack safety.
func RobustPrecheckEquiv[N node.Node[N, I, Ix, C], I comparable, Ix node.Index, C node.Cmp](a, b N, opts ...Option) bool {
	o := resolve(opts)

	neutral := a.EquivModuloEdges(a)

	preBacking := recur.NewVecStackWithCapacity[N, C](o.VecStackInitialCap)
	pre := equiv.New[N, I, Ix, C](o.PrecheckLimit, descend.Limited[N]{}, preBacking, neutral)
	pre.SetContext(o.Ctx)

	r, err := pre.Compare(a, b)
	if err == nil {
		return r.IsEquivalent()
	}

	backing := pre.Backing.Reset()
	table := eqclass.New[I](eqclass.WithInitialCapacity(o.TableInitialCapacity))
	mode := descend.NewInterleaveFromLimited[N, I](table, o.RandSource)

	s := equiv.New[N, I, Ix, C](-1, mode, backing, neutral)
	s.SetContext(o.Ctx)

	return s.IsEquiv(a, b)
}
