// Package mcmc implements the proposal/accept/reject/rebalance driver: the
// outer Markov-chain loop that repeatedly proposes replacing one edge's
// weight with a fresh uniform sample and keeps the graph feasible (no
// negative-weight cycle) by testing each proposal against the current
// Johnson potentials via a decider.Decider, then rebalancing potentials on
// acceptance instead of recomputing them from scratch.
//
// Direct acceptance (when the proposed reduced weight is already
// non-negative) never touches a decider at all; only a strictly negative
// tentative reduced weight triggers a shortest-path query. This is the same
// "cheap common case, expensive rare case" shape the package's deciders use
// internally (the zero-weight chase in decider.OneDirDijkstra).
package mcmc
