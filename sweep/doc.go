// Package sweep declares hyperparameter search spaces and generates
// experiment configuration plans from them.
//
// What:
//
//   - Space wraps an immutable map of named value Generators plus optional
//     default overrides, validated once at construction.
//   - Generators come in three variants: Fixed (a literal value),
//     Candidates (uniform random selection, first element is the implicit
//     default), and Factory (a zero-argument function, no implicit default).
//   - Five strategies turn a Space into ordered []Config plans:
//     DefaultSearch, RandomSearch, OneValueSearch (one factor varied at
//     random), OneValueGridSearch (one factor swept over its candidates),
//     and CustomSearch (ad-hoc generator overrides layered on defaults).
//
// Why:
//
//   - ML experiments: enumerate training configurations for a sweep runner.
//   - Ablations: one-factor-at-a-time plans isolate each hyperparameter's
//     effect against a fixed default configuration.
//   - Reproducibility: seeded RNG injection makes every plan replayable.
//
// Complexity (h = hyperparameters, n = requested configurations):
//
//   - New:                 O(h) plus one probe call per Factory.
//   - Default / Random:    O(h), Memory: O(h).
//   - *Search(n):          O(n×h), Memory: O(n×h).
//   - OneValueGridSearch:  O(t×h) for t produced configurations.
//
// Options:
//
//   - WithDefaults: override implicit defaults per hyperparameter.
//   - WithRand / WithSeed: inject or seed the randomness source.
//   - WithWarningHandler: receive non-fatal diagnostics as they occur.
//
// Errors:
//
//   - ErrUnknownHyperparameter: a default override or interest names no generator.
//   - ErrFactoryProbe: a Factory panicked during the construction probe.
//   - ErrEmptyCandidates / ErrNilFactory: structurally invalid generators.
//   - ErrNoInterests: OneValueSearch got an empty interest list.
//   - ErrTooFewConfigs: OneValueSearch n is smaller than the interest count.
//   - ErrNotCandidates: a grid-search interest is not candidate-valued.
//   - ErrDefaultNotCandidate: a resolved default is absent from its candidates.
//   - ErrCountMismatch: grid-search bookkeeping broke an internal invariant.
//
// Construction failures arrive as *ConfigError carrying every accumulated
// problem; errors.Is matches any of the sentinels above through it.
package sweep
