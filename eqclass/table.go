package eqclass

// Table maps node identities of type I to their equivalence-class
// membership, for a single comparison invocation. The zero value is not
// usable; construct with New.
type Table[I comparable] struct {
	m map[I]*membership
}

// New constructs an empty Table, applying any given Options.
func New[I comparable](opts ...Option) *Table[I] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Table[I]{m: make(map[I]*membership, o.InitialCapacity)}
}

// repAndWeight follows m's Link chain to its Representative, compressing
// every intermediate Link visited along the way to point directly at the
// Representative, and returns that Representative along with its current
// weight.
func repAndWeight(m *membership) (*membership, uint64) {
	if m.isRep {
		return m, m.weight
	}

	chain := []*membership{m}

	cur := m.next
	for !cur.isRep {
		chain = append(chain, cur)
		cur = cur.next
	}

	rep := cur
	for _, link := range chain {
		link.next = rep
	}

	return rep, rep.weight
}

// SameClass returns whether ak and bk are already known to be members of
// the same equivalence class. If they are, it returns true and makes no
// state change. If they are not — whether because one or both identities
// are new to this table, or because they denote distinct classes so far —
// it records them as equivalent (creating, extending, or merging classes
// as needed) and returns false.
//
// Calling SameClass before descending a pair's edges is what lets the
// engine break cycles and avoid redundant work on shared substructure: a
// later return to the same pair, or to a different pair that transitively
// implies it, finds the pre-recorded equivalence and skips re-descent.
func (t *Table[I]) SameClass(ak, bk I) bool {
	ac, aok := t.m[ak]
	bc, bok := t.m[bk]

	switch {
	case !aok && !bok:
		rep := newClass()
		t.m[ak] = rep
		t.m[bk] = rep

		return false

	case aok && !bok:
		rep, _ := repAndWeight(ac)
		t.m[bk] = rep

		return false

	case !aok && bok:
		rep, _ := repAndWeight(bc)
		t.m[ak] = rep

		return false

	default:
		return unionByWeight(ac, bc)
	}
}

// unionByWeight implements the "both already seen" case: if ac and bc
// already share a Representative, report true. Otherwise perform a
// weighted union — the larger class absorbs the smaller, with ties going
// to ac — and report false.
func unionByWeight(ac, bc *membership) bool {
	arep, aw := repAndWeight(ac)
	brep, bw := repAndWeight(bc)

	if arep == brep {
		return true
	}

	larger, smaller, lw, sw := arep, brep, aw, bw
	if aw < bw {
		larger, smaller, lw, sw = brep, arep, bw, aw
	}

	larger.weight = satAdd(lw, sw)
	smaller.isRep = false
	smaller.next = larger
	smaller.weight = 0

	return false
}
