package gen

import "errors"

// ErrTooFewNodes indicates a generator received a node count below its
// minimum (most generators require n>1; Complete and Cycle require n>=1).
var ErrTooFewNodes = errors.New("gen: too few nodes")

// ErrInvalidParameter indicates an out-of-domain generator parameter (e.g.
// a probability outside [0,1], or alpha+beta+gamma != 1 for
// DirectedScaleFree).
var ErrInvalidParameter = errors.New("gen: invalid parameter")

// ErrMalformedInput indicates the file source's header or edge lines did
// not match the expected format (see FromFile).
var ErrMalformedInput = errors.New("gen: malformed graph file")
