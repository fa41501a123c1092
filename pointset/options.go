package pointset

import (
	"fmt"
	"math/rand"
)

// defaultSeed is used when no RNG is supplied and when WithSeed(0) is given,
// so a zero-value configuration is still reproducible.
const defaultSeed int64 = 1

// Option customizes Generate and LoadOrGenerate.
// Option constructors panic on meaningless inputs; Generate itself never panics.
type Option func(*genConfig)

type genConfig struct {
	rng  *rand.Rand
	idFn func(int) string
}

func newGenConfig(opts []Option) genConfig {
	cfg := genConfig{idFn: DefaultID}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(0)
	}

	return cfg
}

// rngFromSeed returns a deterministic *rand.Rand; seed 0 maps to defaultSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// WithSeed seeds a fresh RNG. Seed 0 selects the package default seed.
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand supplies an explicit RNG. The RNG is consumed by Generate and must
// not be shared across goroutines. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("pointset: WithRand(nil)")
	}

	return func(c *genConfig) {
		c.rng = r
	}
}

// WithIDScheme sets the id generator idx -> id. Panics on nil.
func WithIDScheme(fn func(int) string) Option {
	if fn == nil {
		panic("pointset: WithIDScheme(nil)")
	}

	return func(c *genConfig) {
		c.idFn = fn
	}
}

// DefaultID names the i-th generated point "City_<i>".
func DefaultID(i int) string {
	return fmt.Sprintf("City_%d", i)
}
