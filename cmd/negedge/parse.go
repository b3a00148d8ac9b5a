package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/negedge/graphsampler/mcmc"
)

// parseAlgorithm implements the -a mapping: "d" selects Dijkstra, any value
// containing "f" selects BellmanFord, anything else BiDijkstra.
func parseAlgorithm(s string) mcmc.Algorithm {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "d":
		return mcmc.AlgDijkstra
	case strings.Contains(s, "f"):
		return mcmc.AlgBellmanFord
	default:
		return mcmc.AlgBiDijkstra
	}
}

// parseInitial implements the -i mapping: m|maximum, z|zero, u|uniform, or
// a float literal taken as InitValue.
func parseInitial(s string) (mcmc.InitialWeights, float64, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "m", "maximum", "":
		return mcmc.InitMaximum, 0, nil
	case "z", "zero":
		return mcmc.InitZero, 0, nil
	case "u", "uniform":
		return mcmc.InitUniform, 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("negedge: -i value %q is neither a known keyword nor a float: %w", s, err)
	}
	return mcmc.InitValue, v, nil
}
