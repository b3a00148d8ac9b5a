package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/negedge/graphsampler/graph"
	"github.com/negedge/graphsampler/mcmc"
	"github.com/negedge/graphsampler/obslog"
	"github.com/negedge/graphsampler/report"
	"github.com/negedge/graphsampler/scc"
	"github.com/negedge/graphsampler/weight"
)

// topology is the source-agnostic output of every generator: a node count
// and a set of (source,target) pairs with no weight attached yet. Every
// gen.* constructor is generic over the weight representation purely to
// satisfy graph.InputEdge[T]'s shape; since every generator leaves Weight
// at T's zero value (the initial-weights policy is applied later, in
// mcmc.NewDriver, independent of the chosen source), topology is built once
// against float64 and re-typed against the CLI's chosen weight kind here.
type topology struct {
	n     int
	pairs []graph.InputEdge[float64]
}

// runSampler resolves the CLI's -t weight type, builds the typed graph from
// topo, and runs one MCMC chain to completion, writing progress to the
// configured logger and the final graph to -o (or stderr).
func runSampler(cmd *cobra.Command, topo topology) error {
	kind, err := weight.ParseKind(weightTypeStr)
	if err != nil {
		return err
	}
	initKind, initVal, err := parseInitial(initialStr)
	if err != nil {
		return err
	}
	alg := parseAlgorithm(algorithmStr)

	log := obslog.New(obslog.Config{Level: logLevel(), Format: obslog.FormatText})

	opts := []mcmc.Option{
		mcmc.WithWeightRange(minWeight, maxWeight),
		mcmc.WithRoundsPerEdge(roundsPerEdge),
		mcmc.WithInitialWeights(initKind, initVal),
		mcmc.WithAlgorithm(alg),
	}
	if sp := seedPtr(cmd); sp != nil {
		opts = append(opts, mcmc.WithSeed(*sp))
	}
	if check {
		opts = append(opts, mcmc.WithCheck())
	}
	if bftest {
		opts = append(opts, mcmc.WithBFTest())
	}
	cfg := mcmc.NewConfig(opts...)
	if err := cfg.Validate(); err != nil {
		return err
	}

	n, pairs := topo.n, topo.pairs
	if restrictSCC {
		n, pairs = restrictToLargestSCC(n, pairs)
		log.Info("restricted to largest SCC", map[string]interface{}{"nodes": n, "edges": len(pairs)})
	}
	needReverse := alg == mcmc.AlgBiDijkstra

	switch kind {
	case weight.KindF32:
		return runTyped[float32, weight.Float32Ops](n, pairs, cfg, needReverse, log)
	case weight.KindF64:
		return runTyped[float64, weight.Float64Ops](n, pairs, cfg, needReverse, log)
	case weight.KindI8:
		return runTyped[int8, weight.Int8Ops](n, pairs, cfg, needReverse, log)
	case weight.KindI16:
		return runTyped[int16, weight.Int16Ops](n, pairs, cfg, needReverse, log)
	case weight.KindI32:
		return runTyped[int32, weight.Int32Ops](n, pairs, cfg, needReverse, log)
	default:
		return runTyped[int64, weight.Int64Ops](n, pairs, cfg, needReverse, log)
	}
}

// retype converts weight-agnostic (source,target) pairs into InputEdge[T],
// filling Weight with T's zero value (see topology's doc comment).
func retype[T any, O weight.Ops[T]](pairs []graph.InputEdge[float64]) []graph.InputEdge[T] {
	var ops O
	zero := ops.Zero()
	out := make([]graph.InputEdge[T], len(pairs))
	for i, e := range pairs {
		out[i] = graph.InputEdge[T]{Source: e.Source, Target: e.Target, Weight: zero}
	}
	return out
}

// runTyped builds the graph for the concrete (T,O) pair, runs the chain,
// and serializes the result. Invariant violations (ErrInitialGraphInfeasible,
// ErrFinalGraphInfeasible, and anything the driver panics with: decider
// disagreement, radix-heap monotonicity, NaN) are logic bugs, not user
// errors, so this function lets a driver panic propagate and escalates the
// two --check sentinel errors to a panic itself so every invariant
// violation exits the process the same way.
func runTyped[T any, O weight.Ops[T]](n int, pairs []graph.InputEdge[float64], cfg mcmc.Config, needReverse bool, log *obslog.Logger) error {
	edges := retype[T, O](pairs)
	g, err := graph.New[T, O](n, edges, needReverse)
	if err != nil {
		return fmt.Errorf("negedge: building graph: %w", err)
	}

	d, err := mcmc.NewDriver[T, O](g, cfg, log)
	if err != nil {
		if cfg.Check {
			panic(err)
		}
		return fmt.Errorf("negedge: starting chain: %w", err)
	}

	log.Info("chain starting", map[string]interface{}{"nodes": n, "edges": len(edges), "steps": d.Steps()})
	if _, err := d.Run(); err != nil {
		panic(err)
	}

	out := os.Stderr
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("negedge: opening output %q: %w", outputPath, err)
		}
		defer f.Close()
		out = f
	}
	if err := report.WriteGraph[T, O](out, g); err != nil {
		return fmt.Errorf("negedge: writing output: %w", err)
	}
	return nil
}

// restrictToLargestSCC rebuilds topo over only the nodes of its largest
// strongly connected component, remapping node indices to a dense
// [0,len(component)) range and dropping edges that leave the component.
// Runs once at startup against float64 topology, before the weight-typed
// graph (whose topology is immutable after construction) is built.
func restrictToLargestSCC(n int, pairs []graph.InputEdge[float64]) (int, []graph.InputEdge[float64]) {
	g, err := graph.New[float64, weight.Float64Ops](n, pairs, false)
	if err != nil {
		panic(fmt.Errorf("negedge: --scc: %w", err))
	}
	components := scc.Components[float64, weight.Float64Ops](g)

	largest := 0
	for i, c := range components {
		if len(c) > len(components[largest]) {
			largest = i
		}
	}
	keep := components[largest]

	remap := make(map[int]int, len(keep))
	for newID, oldID := range keep {
		remap[oldID] = newID
	}

	var kept []graph.InputEdge[float64]
	for _, e := range pairs {
		nu, okU := remap[e.Source]
		nv, okV := remap[e.Target]
		if okU && okV {
			kept = append(kept, graph.InputEdge[float64]{Source: nu, Target: nv, Weight: 0})
		}
	}
	return len(keep), kept
}
