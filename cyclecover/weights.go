package cyclecover

// maxNodes bounds the weight vector so Weights can live on the stack; the
// experiment's default node count is 8, so this leaves comfortable headroom.
const maxNodes = 16

// Weights is a small fixed-size vector of per-node integer weights with a
// running total, used to enumerate and sample "configurations" under the
// constraint that the total never goes negative — the same nonnegative-sum
// invariant mcmc.Driver enforces on a whole graph's reduced weights, scaled
// down here to a single vector cheap enough to enumerate exhaustively.
type Weights struct {
	values      [maxNodes]int8
	totalWeight int32
}

// TryUpdate sets node's weight to w if doing so keeps the total
// nonnegative, reporting whether the update was applied.
func (w *Weights) TryUpdate(node int, weight int8) bool {
	newTotal := w.totalWeight - int32(w.values[node]) + int32(weight)
	if newTotal < 0 {
		return false
	}
	w.values[node] = weight
	w.totalWeight = newTotal
	return true
}

// Update sets node's weight unconditionally.
func (w *Weights) Update(node int, weight int8) {
	w.totalWeight = w.totalWeight - int32(w.values[node]) + int32(weight)
	w.values[node] = weight
}

// Encode maps the first `nodes` weights to a unique non-negative integer in
// a mixed-radix base of (max-min+1), so the whole configuration can be used
// as a map/slice key.
func (w *Weights) Encode(nodes int, min, max int8) uint32 {
	var encoding uint32
	span := uint32(max-min) + 1
	digit := uint32(1)
	for i := 0; i < nodes; i++ {
		encoding += uint32(w.values[i]-min) * digit
		digit *= span
	}
	return encoding
}
