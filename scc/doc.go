// Package scc computes strongly connected components of a graphsampler
// graph using an iterative (explicit-stack) Tarjan's algorithm.
//
// The `--scc` CLI option uses the partition into strongly connected
// components to restrict the chain to the largest one: a node whose component has
// size 1 and no self-loop can never lie on a negative cycle, and the MCMC
// driver's feasibility argument only needs to reason about edges whose
// endpoints share a component.
package scc
