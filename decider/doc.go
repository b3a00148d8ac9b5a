// Package decider implements the three shortest-path-under-reduced-weights
// deciders the MCMC driver uses to test acceptance of a proposed edge-weight
// change: a one-directional Dijkstra with a zero-weight-chain chase, a
// bidirectional (meet-in-the-middle) Dijkstra, and an SPFA/Bellman-Ford
// variant that doubles as a ground-truth negative-cycle detector.
//
// All three share one contract: Run(g, source, target, maxDistance)
// answers whether a reduced-weight path from source to target strictly
// shorter than maxDistance exists. Rejected means such a path exists (the
// proposed weight change would create a negative cycle through the flipped
// edge); Accepted carries the partial shortest-path tree(s) discovered
// during the search, which the MCMC driver uses to rebalance potentials.
//
// source==target always decides Rejected: accepting would close a
// zero-length cycle through the very edge being flipped.
package decider
