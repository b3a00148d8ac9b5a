package mcmc

// InitialWeights selects the policy used to set every edge's weight before
// the chain starts.
type InitialWeights int

const (
	// InitMaximum sets every edge to max_weight.
	InitMaximum InitialWeights = iota
	// InitZero sets every edge to 0.
	InitZero
	// InitUniform draws each edge's weight uniformly from [0, max_weight].
	InitUniform
	// InitValue sets every edge to a fixed value, clamped to [0, max_weight].
	InitValue
)

// Algorithm selects which decider variant the driver uses to test proposals.
type Algorithm int

const (
	// AlgBiDijkstra is the default: meet-in-the-middle bidirectional search.
	AlgBiDijkstra Algorithm = iota
	// AlgDijkstra is the one-directional decider with the zero-weight chase.
	AlgDijkstra
	// AlgBellmanFord is the SPFA decider.
	AlgBellmanFord
)

// Config holds the MCMC driver's tunable parameters. Construct via NewConfig
// with functional Options; call Validate before passing to NewDriver.
type Config struct {
	MinWeight, MaxWeight float64
	RoundsPerEdge        float64
	Seed                 *uint64
	InitialWeights       InitialWeights
	InitialValue         float64
	Algorithm            Algorithm
	Check                bool
	BFTest               bool
}

// Option customizes a Config built by NewConfig.
type Option func(*Config)

// WithWeightRange sets the inclusive sampling range for candidate weights.
func WithWeightRange(min, max float64) Option {
	return func(c *Config) { c.MinWeight, c.MaxWeight = min, max }
}

// WithRoundsPerEdge sets the chain length as a multiple of edge count.
func WithRoundsPerEdge(r float64) Option {
	return func(c *Config) { c.RoundsPerEdge = r }
}

// WithSeed fixes the chain's RNG seed for reproducibility.
func WithSeed(seed uint64) Option {
	return func(c *Config) {
		s := seed
		c.Seed = &s
	}
}

// WithInitialWeights selects the seed-graph weight policy. value is only
// consulted when kind is InitValue.
func WithInitialWeights(kind InitialWeights, value float64) Option {
	return func(c *Config) { c.InitialWeights, c.InitialValue = kind, value }
}

// WithAlgorithm selects the decider variant.
func WithAlgorithm(alg Algorithm) Option {
	return func(c *Config) { c.Algorithm = alg }
}

// WithCheck enables a ground-truth negative-cycle check before and after
// the chain runs.
func WithCheck() Option {
	return func(c *Config) { c.Check = true }
}

// WithBFTest enables cross-checking every proposal's verdict against a
// fresh SPFA run. Expensive; intended for tests, not production chains.
func WithBFTest() Option {
	return func(c *Config) { c.BFTest = true }
}

// NewConfig resolves a Config from functional options, starting from the
// CLI defaults (min=-1, max=1, rounds_per_edge=1, initial_weights=Maximum,
// algorithm=BiDijkstra).
func NewConfig(opts ...Option) Config {
	cfg := Config{
		MinWeight:      -1,
		MaxWeight:      1,
		RoundsPerEdge:  1,
		InitialWeights: InitMaximum,
		Algorithm:      AlgBiDijkstra,
	}
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}

// Validate reports a configuration error without allocating the driver, so
// bad ranges fail before any workspace is sized.
func (c Config) Validate() error {
	if !(c.MinWeight < c.MaxWeight) {
		return ErrInvalidWeightRange
	}
	if !(c.RoundsPerEdge > 0) {
		return ErrInvalidRounds
	}
	return nil
}
