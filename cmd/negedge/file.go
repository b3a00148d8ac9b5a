package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/negedge/graphsampler/gen"
	"github.com/negedge/graphsampler/weight"
)

var (
	filePath       string
	fileUndirected bool
)

var fileCmd = &cobra.Command{
	Use:   "file",
	Short: "load a seed graph topology from a whitespace-tokenized edge-list file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(filePath)
		if err != nil {
			return fmt.Errorf("negedge: opening %q: %w", filePath, err)
		}
		defer f.Close()

		n, pairs, err := gen.FromFile[float64, weight.Float64Ops](f, fileUndirected)
		if err != nil {
			return err
		}
		return runSampler(cmd, topology{n: n, pairs: pairs})
	},
}

func init() {
	fileCmd.Flags().StringVarP(&filePath, "path", "p", "", "path to the edge-list file")
	fileCmd.Flags().BoolVarP(&fileUndirected, "undirected", "u", false, "duplicate each edge in both directions")
	fileCmd.MarkFlagRequired("path")
}
