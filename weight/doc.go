// Package weight is a uniform numeric interface over the six edge-weight
// representations the sampler can be configured with: int8, int16, int32,
// int64, float32 and float64.
//
// The MCMC driver, the radix heap and the shortest-path deciders are all
// generic over a weight type T plus an Ops[T] value that supplies the
// capability set a monotone, totally ordered additive group needs: a zero
// identity, a distinguished MAX sentinel, addition/subtraction/negation,
// ordering, round-trip conversion to/from float64, a round_up correction
// for floating-point round-off, and a radix_distance used to bucket keys in
// the monotone radix heap (see package radixheap).
//
// Integer weight types treat RoundUp as a no-op: exact integer arithmetic
// cannot produce the round-off a monotone heap would choke on. Float weight
// types use RoundUp to clamp a computed distance up to a floor when it would
// otherwise, due to floating-point error, appear to go backwards.
package weight
