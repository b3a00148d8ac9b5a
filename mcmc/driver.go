package mcmc

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"math"
	mathrand "math/rand"

	"github.com/negedge/graphsampler/decider"
	"github.com/negedge/graphsampler/graph"
	"github.com/negedge/graphsampler/obslog"
	"github.com/negedge/graphsampler/weight"
)

// Stats summarizes one completed chain.
type Stats struct {
	Steps     int
	Accepted  int
	Rejected  int
	Direct    int // accepted without invoking a decider (rw already >= 0)
}

// Driver owns a graph exclusively for the duration of one MCMC chain: it
// proposes, decides, and mutates edges[idx].weight / potentials[u] in
// strict sequence, with no suspension points.
type Driver[T any, O weight.Ops[T]] struct {
	ops O
	g   *graph.Graph[T, O]
	cfg Config
	rng *mathrand.Rand
	log *obslog.Logger

	oneDir *decider.OneDirDijkstra[T, O]
	biDir  *decider.BiDijkstra[T, O]
	spfa   *decider.SPFA[T, O]
}

// NewDriver validates cfg, seeds the RNG (from cfg.Seed or OS entropy),
// applies the initial-weights policy, and — if cfg.Check is set — rejects a
// seed graph that already contains a negative-weight cycle.
func NewDriver[T any, O weight.Ops[T]](g *graph.Graph[T, O], cfg Config, log *obslog.Logger) (*Driver[T, O], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = obslog.Nop()
	}

	var ops O
	d := &Driver[T, O]{
		ops: ops,
		g:   g,
		cfg: cfg,
		rng: newRNG(cfg.Seed),
		log: log,
	}

	n := g.NumNodes()
	switch cfg.Algorithm {
	case AlgDijkstra:
		d.oneDir = decider.NewOneDirDijkstra[T, O](n)
	case AlgBellmanFord:
		d.spfa = decider.NewSPFA[T, O](n)
	default:
		d.biDir = decider.NewBiDijkstra[T, O](n)
	}
	if cfg.BFTest && d.spfa == nil {
		d.spfa = decider.NewSPFA[T, O](n)
	}

	applyInitialWeights(g, ops, cfg, d.rng)

	if cfg.Check && decider.HasNegativeCycle[T, O](g) {
		return nil, ErrInitialGraphInfeasible
	}

	return d, nil
}

// newRNG builds a seeded RNG, falling back to OS entropy when seed is nil.
func newRNG(seed *uint64) *mathrand.Rand {
	var s uint64
	if seed != nil {
		s = *seed
	} else {
		var buf [8]byte
		if _, err := rand.Read(buf[:]); err == nil {
			s = binary.LittleEndian.Uint64(buf[:])
		}
	}
	return mathrand.New(mathrand.NewSource(int64(s)))
}

// applyInitialWeights sets every edge's weight per cfg.InitialWeights before
// the chain starts.
func applyInitialWeights[T any, O weight.Ops[T]](g *graph.Graph[T, O], ops O, cfg Config, rng *mathrand.Rand) {
	m := g.NumEdges()
	for i := 0; i < m; i++ {
		var w float64
		switch cfg.InitialWeights {
		case InitZero:
			w = 0
		case InitUniform:
			w = rng.Float64() * cfg.MaxWeight
		case InitValue:
			w = math.Max(0, math.Min(cfg.InitialValue, cfg.MaxWeight))
		default: // InitMaximum
			w = cfg.MaxWeight
		}
		g.SetEdgeWeight(i, ops.FromF64(w))
	}
}

// Steps returns ceil(m * rounds_per_edge), the chain length.
func (d *Driver[T, O]) Steps() int {
	return int(math.Ceil(float64(d.g.NumEdges()) * d.cfg.RoundsPerEdge))
}

// Run executes Steps() proposal/accept/reject rounds, then — if cfg.Check —
// verifies the final graph is still feasible.
func (d *Driver[T, O]) Run() (Stats, error) {
	steps := d.Steps()
	var stats Stats
	for i := 0; i < steps; i++ {
		direct, accepted := d.step()
		stats.Steps++
		if direct {
			stats.Direct++
		}
		if accepted {
			stats.Accepted++
		} else {
			stats.Rejected++
		}
	}

	d.log.Info("chain complete", map[string]interface{}{
		"steps":    stats.Steps,
		"accepted": stats.Accepted,
		"rejected": stats.Rejected,
		"direct":   stats.Direct,
	})

	if d.cfg.Check && decider.HasNegativeCycle[T, O](d.g) {
		return stats, ErrFinalGraphInfeasible
	}
	return stats, nil
}

// step runs one proposal. direct reports whether it was accepted without
// invoking a decider (tentative reduced weight already non-negative).
func (d *Driver[T, O]) step() (direct, accepted bool) {
	g := d.g
	ops := d.ops
	m := g.NumEdges()

	idx := d.rng.Intn(m)
	u, v := g.EdgeSource(idx), g.EdgeTarget(idx)
	wNew := ops.FromF64(d.cfg.MinWeight + d.rng.Float64()*(d.cfg.MaxWeight-d.cfg.MinWeight))

	rw := ops.Sub(ops.Add(wNew, g.Potential(v)), g.Potential(u))
	if !ops.Less(rw, ops.Zero()) {
		g.SetEdgeWeight(idx, wNew)
		return true, true
	}

	maxDist := ops.Neg(rw)
	dec := d.decide(g, v, u, maxDist)

	if d.cfg.BFTest {
		ref := d.spfa.Run(g, v, u, maxDist)
		if ref.Rejected != dec.Rejected {
			panic(fmt.Errorf("%w: main=%v spfa=%v edge=%d", decider.ErrDeciderDisagreement, dec.Rejected, ref.Rejected, idx))
		}
	}

	if dec.Rejected {
		return false, false
	}

	g.SetEdgeWeight(idx, wNew)
	d.rebalance(g, ops, dec, rw)
	return false, true
}

// decide dispatches to the configured decider, not double-allocating the
// SPFA decider when it also serves bftest.
func (d *Driver[T, O]) decide(g *graph.Graph[T, O], source, target int, maxDistance T) decider.Decision[T] {
	switch d.cfg.Algorithm {
	case AlgDijkstra:
		return d.oneDir.Run(g, source, target, maxDistance)
	case AlgBellmanFord:
		return d.spfa.Run(g, source, target, maxDistance)
	default:
		return d.biDir.Run(g, source, target, maxDistance)
	}
}

// rebalance applies the potential-update formula matching the decider
// variant that produced dec.
func (d *Driver[T, O]) rebalance(g *graph.Graph[T, O], ops O, dec decider.Decision[T], rw T) {
	if d.cfg.Algorithm == AlgBiDijkstra {
		n := g.NumNodes()
		for _, nd := range dec.Settled {
			if nd.Node < n {
				g.AddPotential(nd.Node, ops.Sub(dec.Df, nd.Dist))
			} else {
				g.AddPotential(nd.Node-n, ops.Sub(nd.Dist, dec.Db))
			}
		}
		return
	}
	negRW := ops.Neg(rw)
	for _, nd := range dec.Settled {
		g.AddPotential(nd.Node, ops.Sub(negRW, nd.Dist))
	}
}
