package equiv

// compareOnce compares the single pair (a, b), following the five-step
// algorithm:
//
//  1. Identity short-circuit: if the two nodes share an ID, they are
//     equivalent without looking at anything else — critical correctness
//     for cyclic inputs under a cycle-aware Mode.
//  2. Local verdict: if a and b disagree modulo edges, that verdict wins
//     outright.
//  3. Zero edges: nothing further to compare.
//  4. Mode.DoEdges: lets the active mode skip already-known-equivalent
//     descendants (Interleave's slow phase) without visiting them.
//  5. Edge loop, strictly in index order: the ticker is decremented before
//     each edge, Mode.DoRecur may abort, and Backing.Recur either compares
//     the edge pair immediately or defers it. The first non-equivalent
//     result or error short-circuits the whole call.
//
// Must not be used as the initial entry point to a comparison; Compare
// calls this for the root pair and for each pair a deferring Backing
// supplies via Next, and CallStack-backed recursion calls it for each edge
// pair via the compare callback passed to Backing.Recur.
func (s *State[N, I, Ix, C]) compareOnce(a, b N) (C, error) {
	if a.ID() == b.ID() {
		return s.Neutral, nil
	}

	v := a.EquivModuloEdges(b)
	if !v.IsEquivalent() {
		return v, nil
	}

	n := a.AmountEdges()

	var zero Ix
	if n == zero {
		return s.Neutral, nil
	}

	if !s.Mode.DoEdges(&s.Ticker, a, b) {
		return s.Neutral, nil
	}

	for i := zero; i < n; i++ {
		s.Ticker = satSubOne(s.Ticker)

		if !s.Mode.DoRecur(s.Ticker) {
			return s.Neutral, ErrAborted
		}

		ae, be := a.GetEdge(i), b.GetEdge(i)

		r, err := s.Backing.Recur(ae, be, s.Neutral, s.compareOnce)
		if err != nil {
			return r, err
		}

		if !r.IsEquivalent() {
			return r, nil
		}
	}

	return s.Neutral, nil
}

// Compare is the entry point: it returns a Cmp that is equivalent iff the
// subgraphs rooted at a and b are indistinguishable through the node
// contract, or a non-nil error if the active Mode aborted the traversal
// (ErrAborted) or the installed context was done (the context's error).
//
// The outer loop is the trampoline that makes deep-stack safety possible:
// when Backing defers rather than recursing immediately, Next supplies the
// next pair to examine here, in this same stack frame, instead of via a
// nested call.
func (s *State[N, I, Ix, C]) Compare(a, b N) (C, error) {
	ar, br := a, b

	for {
		if s.Ctx != nil {
			if err := s.Ctx.Err(); err != nil {
				return s.Neutral, err
			}
		}

		r, err := s.compareOnce(ar, br)
		if err != nil {
			return r, err
		}

		if !r.IsEquivalent() {
			return r, nil
		}

		an, bn, ok := s.Backing.Next()
		if !ok {
			return s.Neutral, nil
		}

		ar, br = an, bn
	}
}

// IsEquiv is a convenience wrapping Compare: true iff Compare returns a
// nil error and an equivalent Cmp. Errors and not-equivalent verdicts both
// collapse to false.
func (s *State[N, I, Ix, C]) IsEquiv(a, b N) bool {
	r, err := s.Compare(a, b)

	return err == nil && r.IsEquivalent()
}
