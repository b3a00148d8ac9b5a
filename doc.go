// Package graphsampler generates random directed graphs with negative edge
// weights and no negative-weight cycle.
//
// Starting from a non-negatively weighted seed graph, an MCMC chain
// repeatedly proposes replacing one edge's weight with a fresh uniform
// sample and accepts the proposal iff the graph stays feasible. Feasibility
// is decided without ever running a full Bellman-Ford per step: the graph
// carries Johnson-style node potentials that keep every reduced edge weight
// non-negative, so each proposal reduces to one bounded shortest-path query
// under reduced weights, answered by a Dijkstra variant over a monotone
// radix heap with early termination.
//
// Everything is organized under small, single-purpose subpackages:
//
//	weight/      — numeric capability set over the six weight representations
//	radixheap/   — monotone min-priority queue bucketed by radix distance
//	graph/       — CSR topology, mutable weights, mutable potentials
//	decider/     — one-dir Dijkstra, bidirectional Dijkstra, SPFA deciders
//	mcmc/        — the proposal/accept/reject/rebalance chain driver
//	gen/         — seed-topology sources (gnp, dsf, rhg, complete, cycle, file)
//	scc/         — iterative Tarjan strongly-connected components
//	report/      — edge-list serialization
//	cyclecover/  — parallel coverage experiment over a single weight vector
//	obslog/      — structured-logging wrapper
//	cmd/         — the negedge sampler CLI and the cyclecover experiment CLI
package graphsampler
