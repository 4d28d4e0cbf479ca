package descend

// Unlimited never skips descendants and never aborts. It has no state:
// the zero value is ready to use.
type Unlimited[N any] struct{}

// DoEdges always returns true.
func (Unlimited[N]) DoEdges(_ *int32, _, _ N) bool { return true }

// DoRecur always returns true.
func (Unlimited[N]) DoRecur(_ int32) bool { return true }
