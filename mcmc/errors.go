package mcmc

import "errors"

// ErrInvalidWeightRange indicates min_weight was not strictly less than
// max_weight.
var ErrInvalidWeightRange = errors.New("mcmc: min_weight must be < max_weight")

// ErrInvalidRounds indicates rounds_per_edge was not strictly positive.
var ErrInvalidRounds = errors.New("mcmc: rounds_per_edge must be > 0")

// ErrInitialGraphInfeasible indicates --check found a negative-weight cycle
// in the seed graph before any MCMC step ran. A logic bug in the graph
// source or initial-weights policy, not a user-correctable condition.
var ErrInitialGraphInfeasible = errors.New("mcmc: initial graph has a negative-weight cycle")

// ErrFinalGraphInfeasible indicates --check found a negative-weight cycle
// after the chain completed: an invariant the driver is supposed to
// maintain on every accepted step was violated.
var ErrFinalGraphInfeasible = errors.New("mcmc: final graph has a negative-weight cycle")
