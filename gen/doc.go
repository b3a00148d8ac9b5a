// Package gen builds the initial topology for an MCMC chain: Gnp (Erdos-
// Renyi), DirectedScaleFree, RandomHyperbolic, Complete, Cycle, and a
// file-based loader. Every generator returns only topology: edge weights
// are left at T's zero value and are overwritten by mcmc.NewDriver's
// initial-weights policy, a top-level chain configuration independent of
// the chosen source.
package gen
