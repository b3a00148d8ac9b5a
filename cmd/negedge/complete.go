package main

import (
	"github.com/spf13/cobra"

	"github.com/negedge/graphsampler/gen"
	"github.com/negedge/graphsampler/weight"
)

var (
	completeN     int
	completeLoops bool
)

var completeCmd = &cobra.Command{
	Use:   "complete",
	Short: "complete directed graph K_n seed",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pairs, err := gen.Complete[float64, weight.Float64Ops](completeN, completeLoops)
		if err != nil {
			return err
		}
		return runSampler(cmd, topology{n: completeN, pairs: pairs})
	},
}

func init() {
	completeCmd.Flags().IntVarP(&completeN, "nodes", "n", 0, "number of nodes")
	completeCmd.Flags().BoolVarP(&completeLoops, "loops", "l", false, "include self-loops")
	completeCmd.MarkFlagRequired("nodes")
}
