package main

import (
	"github.com/spf13/cobra"

	"github.com/negedge/graphsampler/gen"
	"github.com/negedge/graphsampler/weight"
)

var (
	rhgN        int
	rhgAlpha    float64
	rhgRadius   float64
	rhgAvgDeg   float64
	rhgNumBands int
	rhgProb     float64
)

var rhgCmd = &cobra.Command{
	Use:   "rhg",
	Short: "random hyperbolic seed graph",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var radius, avgDeg *float64
		var numBands *int
		switch {
		case cmd.Flags().Changed("radius"):
			r := rhgRadius
			radius = &r
		default:
			d := rhgAvgDeg
			avgDeg = &d
		}
		if cmd.Flags().Changed("bands") {
			b := rhgNumBands
			numBands = &b
		}

		pairs, err := gen.RandomHyperbolic[float64, weight.Float64Ops](
			rhgN, rhgAlpha, radius, avgDeg, numBands, rhgProb, sourceRNG(cmd),
		)
		if err != nil {
			return err
		}
		return runSampler(cmd, topology{n: rhgN, pairs: pairs})
	},
}

func init() {
	rhgCmd.Flags().IntVarP(&rhgN, "nodes", "n", 0, "number of nodes")
	// No shorthand for alpha/radius: "-a" and "-r" are already the global
	// --algorithm and --rounds-per-edge persistent flags (see dsf.go's
	// --alpha comment for why the collision isn't just cosmetic).
	rhgCmd.Flags().Float64Var(&rhgAlpha, "alpha", 1, "angular dispersion parameter")
	rhgCmd.Flags().Float64Var(&rhgRadius, "radius", 0, "hyperbolic disk radius (when set, --avg-degree is ignored)")
	rhgCmd.Flags().Float64VarP(&rhgAvgDeg, "avg-degree", "d", 5, "target average degree, solved for a radius (ignored when --radius is set)")
	rhgCmd.Flags().IntVarP(&rhgNumBands, "bands", "b", 1, "number of angular bands (accepted for CLI compatibility; unused)")
	rhgCmd.Flags().Float64VarP(&rhgProb, "prob", "p", 1, "probability both directions of a qualifying pair are added")
	rhgCmd.MarkFlagRequired("nodes")
}
