package strategy

import (
	"github.com/derickeddington/graphequiv/descend"
	"github.com/derickeddington/graphequiv/eqclass"
	"github.com/derickeddington/graphequiv/equiv"
	"github.com/derickeddington/graphequiv/node"
	"github.com/derickeddington/graphequiv/recur"
)

// CycleSafeEquiv compares a and b with full cycle protection via an
// Interleave mode consulting an equivalence-class table, backed by the
// native call stack. Terminates on cyclic and shared-DAG inputs, but
// remains bounded by host stack depth for long acyclic chains; use
// RobustEquiv when both properties are required together.
func CycleSafeEquiv[N node.Node[N, I, Ix, C], I comparable, Ix node.Index, C node.Cmp](a, b N, opts ...Option) bool {
	o := resolve(opts)

	neutral := a.EquivModuloEdges(a)
	table := eqclass.New[I](eqclass.WithInitialCapacity(o.TableInitialCapacity))
	mode := descend.NewInterleave[N, I](table, o.RandSource)

	s := equiv.New[N, I, Ix, C](-1, mode, recur.CallStack[N, C]{}, neutral)
	s.SetContext(o.Ctx)

	return s.IsEquiv(a, b)
}

// CycleSafePrecheckEquiv first runs a bounded Limited precheck on the
// native call stack; most small acyclic inputs settle a verdict within the
// precheck's limit at a fraction of Interleave's per-step cost. If the
// precheck aborts instead (the limit was exhausted without a definite
// verdict), the same call-stack backing is reset and handed to a freshly
// constructed Interleave phase, which runs to completion with full cycle
// protection.
func CycleSafePrecheckEquiv[N node.Node[N, I, Ix, C], I comparable, Ix node.Index, C node.Cmp](a, b N, opts ...Option) bool {
	o := resolve(opts)

	neutral := a.EquivModuloEdges(a)

	pre := equiv.New[N, I, Ix, C](o.PrecheckLimit, descend.Limited[N]{}, recur.CallStack[N, C]{}, neutral)
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
