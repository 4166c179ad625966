// Package sweep — sentinel errors and the ConfigError accumulator.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are NEVER wrapped with formatted strings at definition site.
//   - Construction reports every problem at once via *ConfigError; it never
//     stops at the first defect.
//   - Search methods MUST NOT panic over validated state; panics are
//     confined to option constructor misuse (WithX...), user factories at
//     sampling time, and structurally broken CustomSearch overrides, which
//     bypass validation by design and surface at draw time.
package sweep

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownHyperparameter indicates that a name (a default-override key or
// a search interest) does not appear in the generator map.
// Usage: if errors.Is(err, ErrUnknownHyperparameter) { /* fix the name */ }.
var ErrUnknownHyperparameter = errors.New("sweep: not a hyperparameter")

// ErrFactoryProbe indicates that a Factory generator panicked when probed
// once during construction. The probe exists to fail fast on malformed
// factories before any search runs.
// Usage: if errors.Is(err, ErrFactoryProbe) { /* fix the factory */ }.
var ErrFactoryProbe = errors.New("sweep: factory probe failed")

// ErrEmptyCandidates indicates a Candidates generator with no values; such
// a generator has neither a default nor anything to draw from.
var ErrEmptyCandidates = errors.New("sweep: candidate list must not be empty")

// ErrNilFactory indicates Factory(nil); a nil function can never produce a value.
var ErrNilFactory = errors.New("sweep: factory function must not be nil")

// ErrNoInterests indicates OneValueSearch or OneValueGridSearch received an
// interest list that cannot drive the strategy (empty for OneValueSearch).
var ErrNoInterests = errors.New("sweep: interests must not be empty")

// ErrTooFewConfigs indicates OneValueSearch's n divided by the number of
// interests truncates to zero repetitions per interest.
// Usage: raise n to at least len(interests).
var ErrTooFewConfigs = errors.New("sweep: too few configurations per interest")

// ErrNotCandidates indicates a grid-search interest whose generator is not
// candidate-valued; only Candidates generators enumerate a finite grid.
var ErrNotCandidates = errors.New("sweep: interest is not candidate-valued")

// ErrDefaultNotCandidate indicates that an interest's resolved default value
// is absent from its candidate list. The grid strategy removes the default
// slot by value, so the default must be a member of the list.
var ErrDefaultNotCandidate = errors.New("sweep: default value not among candidates")

// ErrCountMismatch indicates the grid strategy produced a configuration
// count different from the computed total. This is an internal invariant
// violation, not a user error; report it upstream if ever observed.
var ErrCountMismatch = errors.New("sweep: configuration count mismatch")

// ConfigError aggregates all construction-time validation problems. Each
// entry wraps one of the package sentinels, so errors.Is(err, ErrX) matches
// through the aggregate.
type ConfigError struct {
	// Problems holds every accumulated defect, in deterministic
	// (name-sorted) order. Never empty.
	Problems []error
}

// Error joins all problems into one report: "sweep: invalid space: p1; p2".
func (e *ConfigError) Error() string {
	msgs := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		msgs[i] = p.Error()
	}

	return "sweep: invalid space: " + strings.Join(msgs, "; ")
}

// Unwrap exposes the accumulated problems for errors.Is / errors.As.
func (e *ConfigError) Unwrap() []error {
	return e.Problems
}

// wrapf prefixes err with the given method context while preserving the
// sentinel for errors.Is: "<Method>: <formatted message>: <err>".
func wrapf(method, format string, err error, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
