// Package sweep — Space construction, validation, and value resolution.
//
// Design contract (strict):
//   - One orchestrator: New(generators, opts...). Copies inputs, resolves
//     options, validates everything, reports every defect at once.
//   - The Space is immutable after New; search methods share only read-only
//     state plus the injected RNG.
//   - Determinism: same generators/defaults/seed ⇒ identical plans.
package sweep

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
)

// Space holds an immutable hyperparameter search space: named value
// generators plus default overrides. Construct with New; the zero value is
// not usable.
type Space struct {
	generators map[string]Generator
	defaults   map[string]any
	// names is the lexicographically sorted key set of generators; it fixes
	// a deterministic iteration order for diagnostics and accessors.
	names     []string
	rng       *rand.Rand
	onWarning WarningHandler
	// warnings snapshots construction-time diagnostics; immutable after New.
	warnings []Warning
}

// New validates generators and options and returns a ready Space.
//
// Validation accumulates every problem before reporting (never stops at the
// first): unknown default-override keys, structurally invalid generators
// (empty Candidates, nil Factory), and factories that panic when probed.
// Any problem fails construction with *ConfigError carrying the full list.
//
// Side effect: every Factory is invoked once here as the probe; its value
// is discarded. A Factory without a default override additionally emits a
// non-fatal Warning (construction still succeeds).
//
// Complexity: O(h log h) for h hyperparameters, plus one call per Factory.
func New(generators map[string]Generator, opts ...Option) (*Space, error) {
	cfg := newSpaceConfig(opts...)

	s := &Space{
		generators: make(map[string]Generator, len(generators)),
		defaults:   cfg.defaults,
		names:      make([]string, 0, len(generators)),
		rng:        cfg.rng,
		onWarning:  cfg.onWarning,
	}
	if s.defaults == nil {
		s.defaults = map[string]any{}
	}
	for name, g := range generators {
		s.generators[name] = g
		s.names = append(s.names, name)
	}
	sort.Strings(s.names)

	if err := s.validate(); err != nil {
		return nil, err
	}

	// Caution, not an error: factories carry no implicit default, so default
	// resolution will invoke them unless an override is registered.
	for _, name := range s.names {
		if s.generators[name].kind == kindFactory && !s.hasDefault(name) {
			w := Warning{Hyperparameter: name, Message: "no default value registered"}
			s.warnings = append(s.warnings, w)
			s.onWarning(w)
		}
	}

	return s, nil
}

// validate runs all construction checks, accumulating problems in
// deterministic (name-sorted) order, and folds them into one *ConfigError.
func (s *Space) validate() error {
	var problems []error

	// Default overrides must reference declared hyperparameters.
	var unknown []string
	for name := range s.defaults {
		if _, ok := s.generators[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		problems = append(problems,
			fmt.Errorf("%s are not hyperparameters: %w", strings.Join(unknown, ", "), ErrUnknownHyperparameter))
	}

	// Structural generator checks, then a single probe call per factory to
	// fail fast on malformed ones.
	for _, name := range s.names {
		g := s.generators[name]
		switch g.kind {
		case kindCandidates:
			if len(g.candidates) == 0 {
				problems = append(problems, fmt.Errorf("%s: %w", name, ErrEmptyCandidates))
			}
		case kindFactory:
			if g.factory == nil {
				problems = append(problems, fmt.Errorf("%s: %w", name, ErrNilFactory))

				continue
			}
			if recovered := probeFactory(g.factory); recovered != nil {
				problems = append(problems,
					fmt.Errorf("%s call error: %v: %w", name, recovered, ErrFactoryProbe))
			}
		}
	}

	if len(problems) > 0 {
		return &ConfigError{Problems: problems}
	}

	return nil
}

// probeFactory invokes fn once, converting a panic into a returned value.
// A nil return means the probe succeeded; the produced value is discarded.
func probeFactory(fn func() any) (recovered any) {
	defer func() {
		recovered = recover()
	}()
	_ = fn()

	return nil
}

// hasDefault reports whether name carries an explicit default override.
func (s *Space) hasDefault(name string) bool {
	_, ok := s.defaults[name]

	return ok
}

// resolveDefault returns the default value for name: the registered
// override first, else the generator's implicit default. A Factory without
// an override has no implicit default; it is invoked fresh (independent of
// the construction probe) and a Warning is emitted.
func (s *Space) resolveDefault(name string) any {
	if v, ok := s.defaults[name]; ok {
		return v
	}
	g := s.generators[name]
	switch g.kind {
	case kindCandidates:
		return g.candidates[0]
	case kindFactory:
		s.onWarning(Warning{Hyperparameter: name, Message: "missing default for hyperparameter"})

		return g.factory()
	default:
		return g.fixed
	}
}

// resolveRandom returns one random draw for the named hyperparameter.
func (s *Space) resolveRandom(name string) any {
	return randomValue(s.generators[name], s.rng)
}

// randomValue draws one value from g: a uniform candidate pick, a fresh
// factory invocation, or the fixed value. Standalone so CustomSearch can
// apply it to ad-hoc override generators that never passed validation.
func randomValue(g Generator, r *rand.Rand) any {
	switch g.kind {
	case kindCandidates:
		return pickAny(g.candidates, r)
	case kindFactory:
		return g.factory()
	default:
		return g.fixed
	}
}

// Default returns the all-defaults configuration: every hyperparameter at
// its resolved default. Deterministic unless a Factory lacks an override.
//
// Complexity: O(h).
func (s *Space) Default() Config {
	cfg := make(Config, len(s.names))
	for _, name := range s.names {
		cfg[name] = s.resolveDefault(name)
	}

	return cfg
}

// Random returns a configuration with every hyperparameter drawn via its
// generator's random rule.
//
// Complexity: O(h).
func (s *Space) Random() Config {
	cfg := make(Config, len(s.names))
	for _, name := range s.names {
		cfg[name] = s.resolveRandom(name)
	}

	return cfg
}

// Names returns the hyperparameter names in lexicographic order. The slice
// is a copy; callers may keep or mutate it freely.
func (s *Space) Names() []string {
	names := make([]string, len(s.names))
	copy(names, s.names)

	return names
}

// Len returns the number of hyperparameters in the space.
func (s *Space) Len() int {
	return len(s.names)
}

// Warnings returns a copy of the construction-time warnings (factories
// without registered defaults), in name-sorted order.
func (s *Space) Warnings() []Warning {
	ws := make([]Warning, len(s.warnings))
	copy(ws, s.warnings)

	return ws
}
