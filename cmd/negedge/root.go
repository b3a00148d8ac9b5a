package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Global flags, shared across every source subcommand, bound with
// PersistentFlags on rootCmd.
var (
	minWeight     float64
	maxWeight     float64
	weightTypeStr string
	roundsPerEdge float64
	seed          uint64
	initialStr    string
	outputPath    string
	algorithmStr  string
	check         bool
	bftest        bool
	restrictSCC   bool
	verbose       bool
)

var rootCmd = &cobra.Command{
	Use:   "negedge",
	Short: "MCMC sampler for random directed graphs with negative edge weights",
	Long: `negedge builds a random directed graph topology from one of several
sources, assigns it initial edge weights, then runs a Markov-chain proposal
loop that repeatedly reweights a random edge while preserving the invariant
that the graph contains no negative-weight cycle.`,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.Float64VarP(&minWeight, "min-weight", "w", -1, "minimum sampled edge weight")
	flags.Float64VarP(&maxWeight, "max-weight", "W", 1, "maximum sampled edge weight")
	flags.StringVarP(&weightTypeStr, "type", "t", "f64", "weight type: f32,f64,i8,i16,i32,i64 (prefix-tolerant)")
	flags.Float64VarP(&roundsPerEdge, "rounds-per-edge", "r", 1, "MCMC steps per edge")
	flags.Uint64VarP(&seed, "seed", "s", 0, "RNG seed (absent: OS entropy)")
	flags.StringVarP(&initialStr, "initial", "i", "m", "initial weights: m|maximum, z|zero, u|uniform, or a float value")
	flags.StringVarP(&outputPath, "output", "o", "", "serialized graph output path (absent: stderr)")
	flags.StringVarP(&algorithmStr, "algorithm", "a", "bidijkstra", "decider: d=Dijkstra, contains f=BellmanFord, else BiDijkstra")
	flags.BoolVar(&check, "check", false, "verify no negative cycle pre/post chain")
	flags.BoolVar(&bftest, "bftest", false, "cross-check every decision against SPFA")
	flags.BoolVar(&restrictSCC, "scc", false, "restrict the chain to the input's largest strongly connected component")
	flags.BoolVarP(&verbose, "verbose", "v", false, "verbose logging")

	rootCmd.AddCommand(gnpCmd, dsfCmd, rhgCmd, completeCmd, cycleCmd, fileCmd)
}

func logLevel() zerolog.Level {
	if verbose {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}

func seedPtr(cmd *cobra.Command) *uint64 {
	if !cmd.Flags().Changed("seed") {
		return nil
	}
	s := seed
	return &s
}
