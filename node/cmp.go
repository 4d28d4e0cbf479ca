package node

// Cmp is the verdict type threaded through a comparison. Implementations
// must support testing whether a value denotes "equivalent", and for
// ordering-style verdicts, short-circuit combination: if the receiver is
// already decisive (not equivalent), further comparison is moot.
//
// Both a boolean verdict (Bool) and a three-way ordering verdict
// (Ordering) are provided, matching the specification's requirement that
// both Cmp shapes be supported.
type Cmp interface {
	// IsEquivalent reports whether this verdict denotes equivalence.
	IsEquivalent() bool
}

// Bool is the simplest Cmp: true means equivalent, false means not.
type Bool bool

// IsEquivalent reports b itself.
func (b Bool) IsEquivalent() bool { return bool(b) }

// Equivalent is the neutral, "equivalent-so-far" Bool value.
const Equivalent Bool = true

// NotEquivalent is the decisive, rejecting Bool value.
const NotEquivalent Bool = false

// Ordering is a three-way Cmp: Less, Equal, or Greater. Only Equal is
// equivalent; Less and Greater are both decisive and distinct, so a
// caller wanting a total order must use Then to combine successive
// Orderings (variant-level ordering, then descendant-level ordering).
type Ordering int8

const (
	// Less indicates the first operand orders before the second.
	Less Ordering = -1
	// Equal is the neutral, equivalent Ordering.
	Equal Ordering = 0
	// Greater indicates the first operand orders after the second.
	Greater Ordering = 1
)

// IsEquivalent reports whether o is Equal.
func (o Ordering) IsEquivalent() bool { return o == Equal }

// Then returns o if o is decisive (not Equal), otherwise returns next.
// This is the short-circuit combinator required by the node contract:
// compare local data first, fall through to descendant comparison only
// when the local verdict was Equal.
func (o Ordering) Then(next Ordering) Ordering {
	if o != Equal {
		return o
	}

	return next
}

// Invert flips Less and Greater, leaving Equal unchanged. It expresses
// the symmetry property equiv(a, b) == equiv(b, a).Invert() for ordering
// Cmp types.
func (o Ordering) Invert() Ordering {
	switch o {
	case Less:
		return Greater
	case Greater:
		return Less
	default:
		return Equal
	}
}

// CompareInts returns Less, Equal, or Greater according to the usual
// integer comparison. Provided as a small helper for Node implementations
// that need to order by some integer-valued field before descending into
// edges, the way tests/ordering.rs's Datum orders by variant tag.
func CompareInts[T ~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64](a, b T) Ordering {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	default:
		return Equal
	}
}
