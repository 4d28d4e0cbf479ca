package descend

// Limited never skips descendants, but aborts once the shared ticker goes
// negative. Constructing the owning equiv.State with Ticker set to the
// desired limit makes DoRecur's countdown begin there. It has no state of
// its own: the zero value is ready to use.
type Limited[N any] struct{}

// DoEdges always returns true: Limited never skips descent, it only
// bounds how many edges get visited in total via DoRecur.
func (Limited[N]) DoEdges(_ *int32, _, _ N) bool { return true }

// DoRecur returns whether the ticker has not yet gone negative.
func (Limited[N]) DoRecur(ticker int32) bool { return ticker >= 0 }
