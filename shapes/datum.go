package shapes

import (
	"sync/atomic"

	"github.com/derickeddington/graphequiv/node"
)

// datumKind tags Datum's five variants, ordered the way DatumKind's
// declaration order implies a variant-level Ordering: A < B < C < D, with
// D and E ordered against each other (and E against E) by edge count
// alone, per tests/ordering.rs.
type datumKind int8

const (
	kindA datumKind = iota
	kindB
	kindC
	kindD
	kindE
)

var datumSeq uint64

func nextDatumID() uint64 {
	return atomic.AddUint64(&datumSeq, 1)
}

// Datum is a small heterogeneous recursive value used to exercise Ordering
// Cmp combination: A and B are bare tags, C carries a rune compared by
// value, D holds up to two optional children, and E holds an arbitrary
// number of children. Every constructor allocates a fresh identity, so
// two Datums built with equal shape are never identity-equivalent —
// mirroring every Box::new in the source this is grounded on producing a
// distinct heap address.
type Datum struct {
	id   uint64
	kind datumKind
	ch   rune
	d    [2]*Datum
	e    []*Datum
}

// NewA constructs an A-variant Datum.
func NewA() *Datum { return &Datum{id: nextDatumID(), kind: kindA} }

// NewB constructs a B-variant Datum.
func NewB() *Datum { return &Datum{id: nextDatumID(), kind: kindB} }

// NewC constructs a C-variant Datum carrying r.
func NewC(r rune) *Datum { return &Datum{id: nextDatumID(), kind: kindC, ch: r} }

// NewD constructs a D-variant Datum with the given two children, either of
// which may be nil.
func NewD(a, b *Datum) *Datum {
	return &Datum{id: nextDatumID(), kind: kindD, d: [2]*Datum{a, b}}
}

// NewE constructs an E-variant Datum with the given children, in order.
func NewE(children ...*Datum) *Datum {
	return &Datum{id: nextDatumID(), kind: kindE, e: children}
}

// ID returns d's construction-time identity.
func (d *Datum) ID() uint64 { return d.id }

// AmountEdges counts D's present children or E's full child slice; A, B,
// and C never have edges.
func (d *Datum) AmountEdges() int {
	switch d.kind {
	case kindD:
		n := 0

		for _, c := range d.d {
			if c != nil {
				n++
			}
		}

		return n

	case kindE:
		return len(d.e)

	default:
		return 0
	}
}

// GetEdge returns D's i-th present child, in slot order, or E's i-th
// child.
func (d *Datum) GetEdge(i int) *Datum {
	switch d.kind {
	case kindD:
		idx := 0

		for _, c := range d.d {
			if c == nil {
				continue
			}

			if idx == i {
				return c
			}

			idx++
		}

		panic("shapes: GetEdge index out of range")

	case kindE:
		return d.e[i]

	default:
		panic("shapes: GetEdge called on a Datum with no edges")
	}
}

// EquivModuloEdges orders by variant first (A < B < C < D), then by
// payload: C by rune value, D by which of its two slots are present
// (content of present slots is compared separately, as edges). A D and
// an E, or two Es, are ordered by edge count alone, regardless of variant,
// so that nodes with differing edge counts are never reported Equal.
func (d *Datum) EquivModuloEdges(other *Datum) node.Ordering {
	switch d.kind {
	case kindA:
		if other.kind == kindA {
			return node.Equal
		}

		return node.Less

	case kindB:
		switch other.kind {
		case kindA:
			return node.Greater
		case kindB:
			return node.Equal
		default:
			return node.Less
		}

	case kindC:
		switch other.kind {
		case kindA, kindB:
			return node.Greater
		case kindC:
			return node.CompareInts(int32(d.ch), int32(other.ch))
		default:
			return node.Less
		}

	case kindD:
		switch other.kind {
		case kindA, kindB, kindC:
			return node.Greater
		case kindD:
			return comparePresence(d.d[0], other.d[0]).Then(comparePresence(d.d[1], other.d[1]))
		default: // kindE
			return node.CompareInts(d.AmountEdges(), other.AmountEdges())
		}

	default: // kindE
		switch other.kind {
		case kindA, kindB, kindC:
			return node.Greater
		default: // kindD or kindE
			return node.CompareInts(d.AmountEdges(), other.AmountEdges())
		}
	}
}

// comparePresence orders a present slot after an absent one, regardless
// of what the present slot's content compares as — that comparison
// happens separately, as an edge.
func comparePresence(a, b *Datum) node.Ordering {
	pa, pb := a != nil, b != nil

	switch {
	case pa == pb:
		return node.Equal
	case pa:
		return node.Greater
	default:
		return node.Less
	}
}
