package eqclass

// DefaultInitialCapacity is the default initial map capacity, matching
// the specification's "hash-map-based with initial capacity 2^12".
const DefaultInitialCapacity = 1 << 12

// Options configures a Table's construction.
type Options struct {
	// InitialCapacity is the initial capacity hint for the underlying
	// map, to reduce reallocation for traversals expected to visit many
	// distinct branch-node identities.
	InitialCapacity int
}

// Option configures Options.
type Option func(*Options)

// WithInitialCapacity overrides the table's initial capacity hint.
func WithInitialCapacity(n int) Option {
	return func(o *Options) { o.InitialCapacity = n }
}

// DefaultOptions returns Options with InitialCapacity set to
// DefaultInitialCapacity.
func DefaultOptions() Options {
	return Options{InitialCapacity: DefaultInitialCapacity}
}

// membership is a node's interior-mutable membership in an equivalence
// class: either a Representative (isRep true, weight meaningful) or a
// Link to another membership (isRep false, next set). A *membership value
// can be shared under multiple table keys; because Go pointers already
// give shared, infallible-to-mutate ownership, no additional Cell-like
// wrapper is needed the way the original (non-garbage-collected) rendition
// requires — the pointer itself is the interior-mutable, shared handle.
type membership struct {
	isRep  bool
	weight uint64
	next   *membership
}

// newClass allocates a fresh Representative with initial weight 1,
// representing a newly-discovered, as-yet-singleton equivalence class.
func newClass() *membership {
	return &membership{isRep: true, weight: 1}
}

// satAdd adds a and b, saturating at the maximum uint64 instead of
// wrapping around, per the specification's "weight ... saturating
// overflow" rule.
func satAdd(a, b uint64) uint64 {
	sum := a + b
	if sum < a {
		return ^uint64(0)
	}

	return sum
}
