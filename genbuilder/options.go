package genbuilder

import "math/rand"

// config is the resolved, immutable set of knobs every constructor reads.
// Never constructed directly by callers — use newConfig(opts...).
type config struct {
	clusterSize int
	rng         *rand.Rand
	density     float64
}

// Option customizes instance generation. Complexity: applying N options
// costs O(N).
type Option func(*config)

func newConfig(opts ...Option) config {
	cfg := config{clusterSize: 2, rng: rand.New(rand.NewSource(1)), density: 0.3}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithClusterSize sets the number of vertices per cluster for constructors
// that take a cluster count rather than a vertex count. Panics on a
// non-positive size, since a zero-size cluster would violate the
// non-empty-cluster invariant before construction even starts.
func WithClusterSize(n int) Option {
	if n <= 0 {
		panic("genbuilder: WithClusterSize must be positive")
	}
	return func(c *config) { c.clusterSize = n }
}

// WithSeed freezes RandomSparse's edge sampling to a deterministic RNG.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithDensity sets RandomSparse's independent per-pair edge probability.
// Panics outside [0,1], a meaningless probability.
func WithDensity(p float64) Option {
	if p < 0 || p > 1 {
		panic("genbuilder: WithDensity must be in [0,1]")
	}
	return func(c *config) { c.density = p }
}
