package strategy

import (
	"context"

	"github.com/derickeddington/graphequiv/descend"
	"github.com/derickeddington/graphequiv/descend/randsrc"
	"github.com/derickeddington/graphequiv/eqclass"
	"github.com/derickeddington/graphequiv/recur"
)

// Options configures the tunables the specification names in its
// Configurability section: precheck limit, PRNG source, vector-stack
// initial capacity, class-table initial capacity, and an optional
// cancellation context. Unset fields are filled in by normalize with the
// package defaults, mirroring flow.FlowOptions.normalize and
// prim_kruskal.DefaultOptions.
type Options struct {
	// Ctx, if non-nil, is checked for cancellation in the driver's outer
	// loop by every strategy that takes options. BasicEquiv and
	// BasicLimitedEquiv take no options, so they never check a context.
	Ctx context.Context

	// PrecheckLimit overrides descend.PrecheckLimit for the *PrecheckEquiv
	// strategies.
	PrecheckLimit int32

	// RandSource overrides the default PRNG source used by Interleave's
	// fast-limit jitter. Nil selects randsrc.Default(randsrc.DefaultSeed).
	RandSource randsrc.Source

	// VecStackInitialCap overrides recur.DefaultCapacity for strategies
	// backed by a vector-stack.
	VecStackInitialCap int

	// TableInitialCapacity overrides eqclass.DefaultInitialCapacity for
	// strategies backed by an equivalence-class table.
	TableInitialCapacity int
}

// Option configures Options.
type Option func(*Options)

// WithContext installs ctx for cancellation checks. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithPrecheckLimit overrides the precheck phase's initial ticker value.
func WithPrecheckLimit(limit int32) Option {
	return func(o *Options) { o.PrecheckLimit = limit }
}

// WithRandSource overrides the PRNG source used for Interleave jitter.
func WithRandSource(src randsrc.Source) Option {
	return func(o *Options) { o.RandSource = src }
}

// WithInitialVecStackCap overrides a vector-stack backing's initial
// capacity.
func WithInitialVecStackCap(n int) Option {
	return func(o *Options) { o.VecStackInitialCap = n }
}

// WithTableInitialCapacity overrides an equivalence-class table's initial
// capacity.
func WithTableInitialCapacity(n int) Option {
	return func(o *Options) { o.TableInitialCapacity = n }
}

// DefaultOptions returns Options populated with the package defaults.
func DefaultOptions() Options {
	return Options{
		Ctx:                  nil,
		PrecheckLimit:        descend.PrecheckLimit,
		RandSource:           nil,
		VecStackInitialCap:   recur.DefaultCapacity,
		TableInitialCapacity: eqclass.DefaultInitialCapacity,
	}
}

// normalize fills in zero-valued fields with package defaults.
func (o *Options) normalize() {
	if o.PrecheckLimit == 0 {
		o.PrecheckLimit = descend.PrecheckLimit
	}

	if o.VecStackInitialCap == 0 {
		o.VecStackInitialCap = recur.DefaultCapacity
	}

	if o.TableInitialCapacity == 0 {
		o.TableInitialCapacity = eqclass.DefaultInitialCapacity
	}
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	o.normalize()

	return o
}
