// Package cyclecover implements the cycle-cover coverage experiment: given
// a small number of "nodes" each holding an integer weight in [min,max]
// constrained to a nonnegative sum, how many independent random walks over
// node/weight reassignments does it take before every reachable
// configuration (encoding) has been visited at least once?
//
// This is a separable, embarrassingly-parallel companion experiment to the
// main MCMC sampler: it measures
// how quickly the driver's accept/reject/rebalance dynamics explore the
// full feasible-weight-vector space, using the same nonnegative-total
// invariant the driver enforces on a whole graph (here flattened to a
// single small vector of per-node weights for tractable exhaustive
// enumeration).
package cyclecover
