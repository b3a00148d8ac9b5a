package main

import (
	"github.com/spf13/cobra"

	"github.com/negedge/graphsampler/gen"
	"github.com/negedge/graphsampler/weight"
)

var gnpN int
var gnpAvgDeg float64

var gnpCmd = &cobra.Command{
	Use:   "gnp",
	Short: "G(n,p) Erdos-Renyi seed graph",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pairs, err := gen.Gnp[float64, weight.Float64Ops](gnpN, gnpAvgDeg, sourceRNG(cmd))
		if err != nil {
			return err
		}
		return runSampler(cmd, topology{n: gnpN, pairs: pairs})
	},
}

func init() {
	gnpCmd.Flags().IntVarP(&gnpN, "nodes", "n", 0, "number of nodes")
	gnpCmd.Flags().Float64VarP(&gnpAvgDeg, "avg-degree", "d", 5, "average out-degree")
	gnpCmd.MarkFlagRequired("nodes")
}
