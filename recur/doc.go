// Package recur implements the recursion-backing abstraction (layer L4):
// two ways for the core driver to handle a deferred comparison pair.
//
// CallStack compares immediately via a nested call, relying on the native
// call stack — simple and fast, but bounded by host stack depth.
// VecStack defers onto a heap-allocated LIFO buffer that the driver's
// outer trampoline loop polls, trading a small per-step overhead for
// stack depth bounded only by available memory. Both satisfy
// equiv.Backing.
package recur
