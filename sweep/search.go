// Package sweep — the search strategies: turning a Space into ordered
// configuration plans.
//
// All strategies share the same shape: start from default configurations,
// then overwrite selected hyperparameters. Every returned Config is freshly
// allocated and caller-owned; the Space itself is never mutated.
package sweep

import "reflect"

// Method name constants used as error-wrapping context.
const (
	methodOneValueSearch     = "OneValueSearch"
	methodOneValueGridSearch = "OneValueGridSearch"
)

// DefaultSearch returns n all-defaults configurations. Entries are
// value-identical unless a Factory without a default override is invoked
// per configuration. n ≤ 0 yields an empty, non-nil plan.
//
// Complexity: O(n×h) time and space.
func (s *Space) DefaultSearch(n int) []Config {
	plan := make([]Config, 0, max(n, 0))
	for i := 0; i < n; i++ {
		plan = append(plan, s.Default())
	}

	return plan
}

// RandomSearch returns n independently drawn random configurations.
// n ≤ 0 yields an empty, non-nil plan.
//
// Complexity: O(n×h) time and space.
func (s *Space) RandomSearch(n int) []Config {
	plan := make([]Config, 0, max(n, 0))
	for i := 0; i < n; i++ {
		plan = append(plan, s.Random())
	}

	return plan
}

// OneValueSearch returns n configurations grouped contiguously by interest:
// with k = len(interests) and nRep = n/k, configurations [i·nRep, (i+1)·nRep)
// take interests[i] at a random draw and every other hyperparameter at its
// default. nRep uses truncating division; when n is not a multiple of k,
// the trailing n−k·nRep configurations fall to the LAST interest group.
// That remainder policy is deliberate and stable.
//
// Errors: ErrNoInterests for an empty interest list, ErrUnknownHyperparameter
// for an undeclared interest, ErrTooFewConfigs when n/k ≤ 0 (n smaller than
// k, zero, or negative).
//
// Complexity: O(n×h) time and space.
func (s *Space) OneValueSearch(interests []string, n int) ([]Config, error) {
	if len(interests) == 0 {
		return nil, wrapf(methodOneValueSearch, "no interests given", ErrNoInterests)
	}
	if err := s.checkInterests(methodOneValueSearch, interests); err != nil {
		return nil, err
	}

	k := len(interests)
	nRep := n / k
	// Truncating division: n < k gives 0, negative n gives ≤ 0; both mean
	// no usable repetitions per interest.
	if nRep <= 0 {
		return nil, wrapf(methodOneValueSearch, "n=%d yields %d repetitions for %d interests", ErrTooFewConfigs, n, nRep, k)
	}

	plan := s.DefaultSearch(n)
	for i := 0; i < n; i++ {
		idx := i / nRep
		if idx >= k {
			// Remainder configurations absorbed by the last interest group.
			idx = k - 1
		}
		name := interests[idx]
		plan[i][name] = s.resolveRandom(name)
	}

	return plan, nil
}

// OneValueGridSearch returns the one-factor-at-a-time grid over interests:
// configuration 0 is the all-defaults configuration; then, per interest in
// order, one configuration per candidate value that is not that interest's
// resolved default, in candidate-list order. The default's slot is removed
// by value (first deep-equal match). Total length is
// sum(len(candidates)) − len(interests) + 1; an empty interest list yields
// exactly the one default configuration.
//
// Errors: ErrUnknownHyperparameter for an undeclared interest,
// ErrNotCandidates when an interest is not candidate-valued,
// ErrDefaultNotCandidate when a resolved default is absent from its list,
// ErrCountMismatch if the internal count invariant ever breaks.
//
// Complexity: O(t×h) time and space for t produced configurations.
func (s *Space) OneValueGridSearch(interests []string) ([]Config, error) {
	if err := s.checkInterests(methodOneValueGridSearch, interests); err != nil {
		return nil, err
	}

	// Per-interest candidate lists with the default slot removed, parallel
	// to interests; computed up front so errors surface before any output.
	nonDefault := make([][]any, 0, len(interests))
	total := 1
	for _, name := range interests {
		g := s.generators[name]
		if g.kind != kindCandidates {
			return nil, wrapf(methodOneValueGridSearch, "%s", ErrNotCandidates, name)
		}
		def := s.resolveDefault(name)
		values, ok := removeFirst(g.candidates, def)
		if !ok {
			return nil, wrapf(methodOneValueGridSearch, "%s: default %v", ErrDefaultNotCandidate, name, def)
		}
		nonDefault = append(nonDefault, values)
		total += len(values)
	}

	plan := s.DefaultSearch(total)
	i := 1 // configuration 0 stays all-defaults
	for j, name := range interests {
		for _, v := range nonDefault[j] {
			plan[i][name] = v
			i++
		}
	}
	if i != total {
		return nil, wrapf(methodOneValueGridSearch, "produced %d of %d configurations", ErrCountMismatch, i, total)
	}

	return plan, nil
}

// CustomSearch returns n default configurations with every override drawn
// fresh per configuration via the override's random rule. Overrides bypass
// construction-time validation on purpose: they are ad hoc, may name keys
// absent from the space, and structurally broken overrides (e.g. empty
// Candidates) surface at draw time.
//
// Complexity: O(n×(h+len(overrides))) time and space.
func (s *Space) CustomSearch(overrides map[string]Generator, n int) []Config {
	plan := s.DefaultSearch(n)
	for i := range plan {
		for name, g := range overrides {
			plan[i][name] = randomValue(g, s.rng)
		}
	}

	return plan
}

// checkInterests verifies every interest names a declared hyperparameter.
func (s *Space) checkInterests(method string, interests []string) error {
	for _, name := range interests {
		if _, ok := s.generators[name]; !ok {
			return wrapf(method, "%s", ErrUnknownHyperparameter, name)
		}
	}

	return nil
}

// removeFirst returns a copy of values with the first element deep-equal to
// def removed. ok is false when no element matches.
func removeFirst(values []any, def any) (out []any, ok bool) {
	for i, v := range values {
		if reflect.DeepEqual(v, def) {
			out = make([]any, 0, len(values)-1)
			out = append(out, values[:i]...)
			out = append(out, values[i+1:]...)

			return out, true
		}
	}

	return nil, false
}
