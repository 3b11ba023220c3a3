// Package sim provides the core carrier acceptance simulation engine.
//
// # Reading Guide
//
// Start with these three files to understand the decision kernel:
//   - load.go: the Load offer value and directional Lane key
//   - policy.go: the ordered, declarative lane policy table and seasonal gates
//   - engine.go: the accept/reject decision path and probability modifiers
//
// # Architecture
//
// The sim package owns the domain types and the decision engine;
// sub-packages build on it:
//   - sim/workload/: synthetic load generation (markets, geodesy, YAML spec)
//   - sim/trace/: decision-trace recording (pure data, no sim dependency)
//   - sim/dataset/: labeled CSV output for downstream pipelines
//   - sim/report/: daily acceptance-rate series and summary statistics
//
// The Simulator driver reaches load generation through the LoadSource
// interface so sim never imports its sub-packages; cmd/ wires the concrete
// workload.Generator in.
//
// Randomness is always injected: a PartitionedRNG derives isolated,
// deterministic streams for load generation and acceptance draws from one
// master seed, so runs are reproducible end to end.
package sim
