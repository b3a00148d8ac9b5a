package cyclecover

// ValidEncodings enumerates every weight vector over `nodes` positions with
// each weight in [min,max] whose total is nonnegative, returning the set of
// their Encode values. Exhaustive and exponential in nodes -- intended for
// the experiment's small default node counts.
func ValidEncodings(nodes int, min, max int8) map[uint32]struct{} {
	encodings := make(map[uint32]struct{})
	var w Weights
	var recurse func(nodeID int)
	recurse = func(nodeID int) {
		for v := min; ; v++ {
			w.Update(nodeID, v)
			if nodeID == nodes-1 {
				if w.totalWeight >= 0 {
					encodings[w.Encode(nodes, min, max)] = struct{}{}
				}
			} else {
				recurse(nodeID + 1)
			}
			if v == max {
				break
			}
		}
	}
	recurse(0)
	return encodings
}

// PossibleEncodings returns (max-min+1)^nodes, the size of the unconstrained
// configuration space ValidEncodings draws its feasible subset from.
func PossibleEncodings(nodes int, min, max int8) uint64 {
	span := uint64(max-min) + 1
	total := uint64(1)
	for i := 0; i < nodes; i++ {
		total *= span
	}
	return total
}
