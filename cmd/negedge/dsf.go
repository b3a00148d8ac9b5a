package main

import (
	"github.com/spf13/cobra"

	"github.com/negedge/graphsampler/gen"
	"github.com/negedge/graphsampler/weight"
)

var (
	dsfN       int
	dsfAlpha   float64
	dsfBeta    float64
	dsfGamma   float64
	dsfAvgDeg  float64
	dsfDeltaOut float64
	dsfDeltaIn  float64
)

var dsfCmd = &cobra.Command{
	Use:   "dsf",
	Short: "directed scale-free (preferential attachment) seed graph",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pairs, err := gen.DirectedScaleFree[float64, weight.Float64Ops](
			dsfN, dsfAlpha, dsfBeta, dsfGamma, dsfDeltaOut, dsfDeltaIn, sourceRNG(cmd),
		)
		if err != nil {
			return err
		}
		return runSampler(cmd, topology{n: dsfN, pairs: pairs})
	},
}

func init() {
	dsfCmd.Flags().IntVarP(&dsfN, "nodes", "n", 0, "number of nodes")
	// No shorthand for alpha: "-a" is already the global --algorithm
	// persistent flag, and cobra merges persistent and local flags into one
	// set per command, so reusing the letter here would panic on a
	// shorthand collision at startup.
	dsfCmd.Flags().Float64Var(&dsfAlpha, "alpha", 0.41, "probability of adding a new node with an out-edge to an existing node")
	dsfCmd.Flags().Float64VarP(&dsfBeta, "beta", "b", 0.54, "probability of adding an edge between existing nodes")
	dsfCmd.Flags().Float64VarP(&dsfGamma, "gamma", "g", 0.05, "probability of adding a new node with an in-edge from an existing node")
	dsfCmd.Flags().Float64VarP(&dsfAvgDeg, "avg-degree", "d", 5, "accepted for CLI compatibility; unused by the generator (see gen.DirectedScaleFree)")
	dsfCmd.Flags().Float64Var(&dsfDeltaOut, "do", 1, "out-degree attachment bias")
	dsfCmd.Flags().Float64Var(&dsfDeltaIn, "di", 1, "in-degree attachment bias")
	dsfCmd.MarkFlagRequired("nodes")
}
