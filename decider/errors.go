package decider

import "errors"

// ErrDeciderDisagreement indicates --bftest found a decider's verdict
// disagreeing with a fresh SPFA ground-truth run on the same proposal.
// This is a logic-bug invariant violation, not a user error, and callers
// should panic rather than recover.
var ErrDeciderDisagreement = errors.New("decider: verdict disagreement with SPFA ground truth")

// ErrNaNWeight indicates a NaN surfaced in a floating-point weight
// computation. The weight distribution is bounded by construction, so NaN
// cannot arise from well-formed input; treated as fatal.
var ErrNaNWeight = errors.New("decider: NaN weight encountered")
