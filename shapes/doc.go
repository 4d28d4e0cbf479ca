// Package shapes provides ready-made node.Node implementations for
// exercising every traversal pattern the engine must handle: flat leaves,
// long chains (both orientations), degenerate DAGs built from heavily
// shared substructure, self-referential cycles, and a small heterogeneous
// ordering type used to check Cmp combinator properties.
//
// Chain is grounded on tests_utils/src/shapes.rs's PairChainMaker: it
// builds a depth-deep chain of Pair nodes by repeatedly cloning a running
// "head" reference rather than allocating depth distinct
// leaves, so a degenerate shape of depth one million still holds only a
// constant number of live leaf values. Datum is grounded on
// tests/ordering.rs's Datum enum.
package shapes
