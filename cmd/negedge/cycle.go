package main

import (
	"github.com/spf13/cobra"

	"github.com/negedge/graphsampler/gen"
	"github.com/negedge/graphsampler/weight"
)

var cycleN int

var cycleCmd = &cobra.Command{
	Use:   "cycle",
	Short: "simple directed n-cycle seed graph",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pairs, err := gen.Cycle[float64, weight.Float64Ops](cycleN)
		if err != nil {
			return err
		}
		return runSampler(cmd, topology{n: cycleN, pairs: pairs})
	},
}

func init() {
	cycleCmd.Flags().IntVarP(&cycleN, "nodes", "n", 0, "number of nodes")
	cycleCmd.MarkFlagRequired("nodes")
}
