// Package equiv implements the core comparison driver (layer L2 of the
// engine): a trampoline loop that compares two nodes pairwise, dispatching
// local comparison through node.Node and descent control through a
// descend.Mode, and deferring or performing recursive descent through a
// recur.Backing.
//
// The driver never mutates user nodes, never retries, never logs, and
// never panics on its own. Its errors are ErrAborted, surfaced when the
// active descend.Mode signals do_recur == false, and, when a context has
// been installed with SetContext, that context's error once it is done.
//
// State is not safe for concurrent use: one invocation owns its State
// exclusively, per the specification's single-threaded, cooperative
// concurrency model.
package equiv
