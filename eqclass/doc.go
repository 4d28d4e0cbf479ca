// Package eqclass implements the equivalence-class table (layer L5): the
// mechanism that lets the engine recognize, before descending a pair's
// edges, that the pair (or an ancestor pair that implies it) has already
// been proved equivalent earlier in the same traversal. This is what
// bounds cyclic and heavily-shared inputs to a single visit per branch
// node instead of looping forever or re-exploring shared substructure
// combinatorially.
//
// The table is a union-find (disjoint-set) structure keyed by node
// identity, using weighted union and path compression for near-constant
// amortized cost per operation — the same technique
// prim_kruskal.Kruskal's disjoint-set uses for cycle detection among
// spanning-tree candidate edges, generalized here to carry a
// Representative/Link tag on each node instead of a flat parent map,
// because this table must hand out shared, mutable handles (the rep
// pointer stored under multiple keys) rather than only ever looking itself
// up by key.
package eqclass
