package quick

import (
	"math/rand/v2"
	"os"

	"github.com/rs/zerolog"
)

// Default configuration values.
const (
	DefaultTrials = 50
	DefaultSize   = 8
)

// Config carries the trial parameters of a check. It is an immutable
// value: every builder method returns an updated copy, and the value
// returned by DefaultConfig is never mutated in place. The zero value is
// usable but runs zero trials; start from DefaultConfig.
type Config struct {
	trials  int
	size    int
	verbose bool
	grow    bool

	seed      uint64
	logger    zerolog.Logger
	loggerSet bool
}

// DefaultConfig returns the starting configuration:
// 50 trials, size 8, verbose off, grow on.
func DefaultConfig() Config {
	return Config{trials: DefaultTrials, size: DefaultSize, grow: true}
}

// Trials sets the number of generate-and-test iterations (default 50).
// Zero is valid and makes Check pass trivially. Negative values clamp to
// zero: degenerate configuration is not an error.
func (c Config) Trials(n int) Config {
	c.trials = max(n, 0)
	return c
}

// Size sets the size factor bounding generated values (default 8).
// Negative values clamp to zero.
func (c Config) Size(n int) Config {
	c.size = max(n, 0)
	return c
}

// Verbose enables logging of trials, falsifications and shrink steps to
// the diagnostic channel (default false).
func (c Config) Verbose(on bool) Config {
	c.verbose = on
	return c
}

// Grow controls whether the effective size increases by one every 8
// trials, biasing later trials toward larger inputs (default true).
func (c Config) Grow(on bool) Config {
	c.grow = on
	return c
}

// Seed fixes the randomness seed for reproducible runs. The default of 0
// picks a fresh random seed per check.
func (c Config) Seed(s uint64) Config {
	c.seed = s
	return c
}

// Logger redirects verbose diagnostics to the given logger. Without it,
// verbose output goes to a timestamped stderr logger.
func (c Config) Logger(l zerolog.Logger) Config {
	c.logger = l
	c.loggerSet = true
	return c
}

// diag resolves the diagnostic channel: a no-op logger unless verbose.
func (c Config) diag() zerolog.Logger {
	if !c.verbose {
		return zerolog.Nop()
	}
	if c.loggerSet {
		return c.logger
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}

// newRand builds the per-check randomness source.
func (c Config) newRand() *rand.Rand {
	seed := c.seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed+1))
}
