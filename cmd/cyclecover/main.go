// Command cyclecover runs the cycle-cover coverage experiment: how many
// independent random walks over a nonnegative-sum weight vector does it
// take to visit every feasible configuration at least once?
package main

import (
	"crypto/rand"
	"encoding/binary"
	"math"
	mathrand "math/rand"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/negedge/graphsampler/cyclecover"
	"github.com/negedge/graphsampler/obslog"
)

var (
	nodes       int
	minWeight   int8
	maxWeight   int8
	maxSteps    uint64
	runsFactor  uint64
	repetitions int
	quitEarly   bool
	seed        uint64
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "cyclecover",
	Short: "coverage experiment over nonnegative-sum weight vectors",
	RunE:  runExperiment,
}

func init() {
	flags := rootCmd.Flags()
	flags.IntVarP(&nodes, "nodes", "n", 8, "number of weighted positions")
	flags.Int8Var(&minWeight, "min-weight", -1, "minimum weight per position (inclusive)")
	flags.Int8Var(&maxWeight, "max-weight", 1, "maximum weight per position (inclusive)")
	flags.Uint64VarP(&maxSteps, "steps", "m", 16, "sweep walk lengths 0..steps (scaled by nodes/4)")
	flags.Uint64VarP(&runsFactor, "runs", "k", 1, "walks per repetition, as a multiple of the coupon-collector bound")
	flags.IntVarP(&repetitions, "repetitions", "r", 100, "independent repetitions per walk length")
	flags.BoolVarP(&quitEarly, "quit-early", "e", false, "stop a repetition's accounting at 99% coverage")
	flags.Uint64VarP(&seed, "seed", "s", 0, "RNG seed (absent: OS entropy)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
}

func runExperiment(cmd *cobra.Command, args []string) error {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	log := obslog.New(obslog.Config{Level: level, Format: obslog.FormatText})

	rng := experimentRNG(cmd)

	valid := cyclecover.ValidEncodings(nodes, minWeight, maxWeight)
	possible := cyclecover.PossibleEncodings(nodes, minWeight, maxWeight)
	log.Info("encoding space", map[string]interface{}{
		"valid":    len(valid),
		"possible": possible,
	})

	// Coupon-collector scaling: visiting all k feasible encodings by uniform
	// sampling needs on the order of k*ln(k) draws.
	k := float64(len(valid))
	numRuns := runsFactor * uint64(math.Ceil(k*math.Log(k)))
	workers := runtime.NumCPU()

	for steps := uint64(0); steps < maxSteps; steps++ {
		scaledSteps := uint64(nodes) * steps / 4
		cfg := cyclecover.Config{
			Nodes:     nodes,
			MinWeight: minWeight,
			MaxWeight: maxWeight,
			Steps:     scaledSteps,
			Runs:      numRuns,
			QuitEarly: quitEarly,
		}

		for rep := 0; rep < repetitions; rep++ {
			start := time.Now()
			result := cyclecover.Run(cfg, workers, rng)

			fields := map[string]interface{}{
				"steps":      scaledSteps,
				"runs":       numRuns,
				"valid":      result.NumValidEncodings,
				"runtime_ms": time.Since(start).Milliseconds(),
			}
			if result.CompletionRun != nil {
				fields["completion_run"] = *result.CompletionRun
			}
			for _, fc := range result.FrequencyCounts {
				// Keys are visit counts; values are how many encodings were
				// visited exactly that often.
				fields[strconv.FormatUint(fc.Count, 10)] = fc.Encodings
			}
			log.Info("repetition", fields)
		}
	}
	return nil
}

// experimentRNG seeds from -s when given, otherwise from OS entropy.
func experimentRNG(cmd *cobra.Command) *mathrand.Rand {
	s := seed
	if !cmd.Flags().Changed("seed") {
		var buf [8]byte
		if _, err := rand.Read(buf[:]); err == nil {
			s = binary.LittleEndian.Uint64(buf[:])
		}
	}
	return mathrand.New(mathrand.NewSource(int64(s)))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
