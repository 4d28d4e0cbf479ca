// Package bench holds comparative benchmarks between the strategy
// package's seven strategies across the shapes package's canonical node
// shapes, grounded on the teacher's *_bench_test.go convention
// (core/bench_test.go, dfs/bench_test.go, flow/flow_bench_test.go):
// build the fixture once outside the timed loop, call b.ResetTimer, then
// run the operation under test b.N times.
package bench
