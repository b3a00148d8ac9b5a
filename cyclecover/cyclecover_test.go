package cyclecover

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidEncodingsCountMatchesBruteForce(t *testing.T) {
	nodes, min, max := 3, int8(-1), int8(1)
	valid := ValidEncodings(nodes, min, max)

	bruteForce := 0
	for a := min; a <= max; a++ {
		for b := min; b <= max; b++ {
			for c := min; c <= max; c++ {
				if int(a)+int(b)+int(c) >= 0 {
					bruteForce++
				}
			}
		}
	}
	require.Equal(t, bruteForce, len(valid))
}

func TestEncodeStaysBelowPossibleBound(t *testing.T) {
	valid := ValidEncodings(3, -1, 1)
	possible := PossibleEncodings(3, -1, 1)
	for e := range valid {
		require.Less(t, uint64(e), possible)
	}
}

func TestWeightsTryUpdateRejectsNegativeTotal(t *testing.T) {
	var w Weights
	require.True(t, w.TryUpdate(0, 1), "update to 1 from a zero total should succeed")
	require.False(t, w.TryUpdate(0, -1), "update that drives the total negative should be rejected")
	w.Update(1, 1)
	require.True(t, w.TryUpdate(0, -1), "update should succeed once the total has slack")
}

func TestRunProducesConsistentFrequencyCounts(t *testing.T) {
	cfg := Config{Nodes: 3, MinWeight: -1, MaxWeight: 1, Steps: 6, Runs: 500}
	rng := rand.New(rand.NewSource(1))
	result := Run(cfg, 4, rng)

	var totalRuns uint64
	for _, fc := range result.FrequencyCounts {
		totalRuns += fc.Count * fc.Encodings
	}
	require.Equal(t, cfg.Runs, totalRuns, "frequency counts should sum back to the run count")
}

func TestRunDirectSamplingOnlyProducesValidEncodings(t *testing.T) {
	cfg := Config{Nodes: 3, MinWeight: -1, MaxWeight: 1, Steps: 0, Runs: 50}
	rng := rand.New(rand.NewSource(2))
	result := Run(cfg, 2, rng)
	require.NotZero(t, result.NumValidEncodings)

	// The histogram only tallies valid encodings, so every sampled run is
	// accounted for exactly when all samples were valid.
	var totalRuns uint64
	for _, fc := range result.FrequencyCounts {
		totalRuns += fc.Count * fc.Encodings
	}
	require.Equal(t, cfg.Runs, totalRuns, "every direct sample should land on a valid encoding")
}
