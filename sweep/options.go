// Package sweep — functional options for Space construction.
//
// Contract (strict):
//   - Options are functional (type Option func(*spaceConfig)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs;
//     search methods themselves never panic.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.
//   - No hidden globals; everything flows through spaceConfig.
package sweep

import "math/rand"

// Option customizes Space construction by mutating a spaceConfig before
// validation begins. Applying N options costs O(N) time, O(1) space.
type Option func(*spaceConfig)

// spaceConfig aggregates all construction knobs. It is resolved once in New
// and never exposed; deterministic defaults, no globals.
type spaceConfig struct {
	// Default overrides: name -> literal default value. nil means none.
	defaults map[string]any
	// RNG for random draws; nil resolves to the fixed default stream.
	rng *rand.Rand
	// Warning sink; nil resolves to a discard handler.
	onWarning WarningHandler
}

// newSpaceConfig builds a config with deterministic defaults and applies all
// options in order, last-wins. Complexity: O(len(opts)) time.
func newSpaceConfig(opts ...Option) spaceConfig {
	var cfg spaceConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	// Resolve nil knobs to deterministic fallbacks so downstream code is
	// branch-free.
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(0)
	}
	if cfg.onWarning == nil {
		cfg.onWarning = func(Warning) {}
	}

	return cfg
}

// WithDefaults registers literal default values that take precedence over
// the generators' implicit defaults. Every key must name a generator map
// entry; unknown keys fail New with ErrUnknownHyperparameter. The map is
// copied. nil is allowed and means "no overrides".
// Complexity: O(len(defaults)) at apply time.
func WithDefaults(defaults map[string]any) Option {
	return func(c *spaceConfig) {
		if defaults == nil {
			c.defaults = nil

			return
		}
		d := make(map[string]any, len(defaults))
		for name, v := range defaults {
			d[name] = v
		}
		c.defaults = d
	}
}

// WithRand provides an explicit RNG for the random strategies.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1).
func WithRand(r *rand.Rand) Option {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("sweep: WithRand(nil)")
	}

	return func(c *spaceConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// seed==0 aliases to the fixed default seed. Use this in tests and examples
// to lock outcomes.
// Complexity: O(1).
func WithSeed(seed int64) Option {
	return func(c *spaceConfig) {
		c.rng = rngFromSeed(seed)
	}
}

// WithWarningHandler installs a sink for non-fatal diagnostics: factories
// without defaults at construction time and factory-backed default
// resolutions at call time. Panics on nil; omit the option to discard.
// Complexity: O(1).
func WithWarningHandler(fn WarningHandler) Option {
	if fn == nil {
		panic("sweep: WithWarningHandler(nil)")
	}

	return func(c *spaceConfig) {
		c.onWarning = fn
	}
}
