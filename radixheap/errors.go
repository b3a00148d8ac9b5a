package radixheap

import "errors"

// ErrMonotonicityViolation indicates a push with key<top: the monotone
// invariant that keys never fall below the current floor has been broken.
// This denotes a logic bug upstream (almost always a missing
// weight.Ops.RoundUp correction on a floating-point weight type) rather than
// a user error, so callers should treat it as fatal.
var ErrMonotonicityViolation = errors.New("radixheap: push key below current top")
