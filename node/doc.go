// Package node defines the contract that user graphs must satisfy to be
// compared by the equivalence engine (packages equiv, descend, recur,
// eqclass, strategy), plus the Cmp verdict abstraction those packages
// thread through a comparison.
//
// A graph vertex is any type N that implements Node[N, I, Ix, C]: it
// reports a comparable identity, an edge count and edge-at-index of type
// Ix, and a local "modulo edges" verdict of type C against another N. Go
// generics cannot express an F-bounded "Self" type directly, so Node is
// parameterized by its own implementer N — the standard Go idiom for this
// shape (sometimes called the "curiously recurring generic pattern").
//
// Two node shapes are supported, matching the specification: the
// straightforward AmountEdges/GetEdge shape (Node itself), and a richer
// Option-returning shape (OptionNode) for graphs where computing the edge
// count up front is inconvenient or where local comparison and
// count-equality are naturally fused. FromOptionNode adapts the latter
// into the former.
package node
