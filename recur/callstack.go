package recur

import (
	"github.com/derickeddington/graphequiv/equiv"
	"github.com/derickeddington/graphequiv/node"
)

// CallStack uses the native call stack for recursion: Recur immediately
// invokes the supplied compare callback and returns its result, so Next
// never has anything to supply. Suitable when graph depth is bounded by
// the host stack. The zero value is ready to use.
type CallStack[N any, C node.Cmp] struct{}

// Recur immediately compares a and b via compare.
func (CallStack[N, C]) Recur(a, b N, _ C, compare func(a, b N) (C, error)) (C, error) {
	return compare(a, b)
}

// Next always reports no deferred pair: CallStack never defers.
func (CallStack[N, C]) Next() (a, b N, ok bool) {
	return a, b, false
}

// Reset is a no-op: CallStack holds no state to clear.
func (s CallStack[N, C]) Reset() equiv.Backing[N, C] {
	return s
}
