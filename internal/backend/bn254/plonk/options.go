package plonk

import (
	"github.com/rs/zerolog"

	"github.com/plonkgo/prover/logger"
)

// proverConfig holds Prove's optional behavior, assembled through the
// functional-options pattern: a default config overridden by zero or more
// Option values.
type proverConfig struct {
	logger      zerolog.Logger
	forceDomain uint64
}

// Option configures a call to Prove.
type Option func(*proverConfig)

// WithLogger overrides the logger Prove reports round progress to.
func WithLogger(l zerolog.Logger) Option {
	return func(c *proverConfig) { c.logger = l }
}

// WithForceDomain overrides the evaluation domain size instead of deriving
// it from Program.GroupOrder. It exists for tests that want to exercise a
// specific domain size without a full circuit front-end round-trip; n must
// still be a power of two and large enough to hold the program's wires.
func WithForceDomain(n uint64) Option {
	return func(c *proverConfig) { c.forceDomain = n }
}

func newConfig(opts ...Option) *proverConfig {
	c := &proverConfig{logger: logger.Logger()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
