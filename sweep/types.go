// Package sweep defines core types for hyperparameter search spaces:
// the Generator tagged union, the Config output unit, and the Warning
// diagnostics channel.
package sweep

// Config maps hyperparameter names to concrete chosen values. Every search
// method allocates its Configs fresh; callers own and may mutate them.
type Config map[string]any

// genKind discriminates the Generator variants. The zero kind is Fixed so
// that a zero-value Generator behaves as Fixed(nil).
type genKind uint8

const (
	// kindFixed yields the stored value as-is; the value is its own default.
	kindFixed genKind = iota
	// kindCandidates yields a uniformly random element; element 0 is the
	// implicit default.
	kindCandidates
	// kindFactory yields fn(); it has no implicit default.
	kindFactory
)

// Generator describes how a hyperparameter's value is produced. Construct
// one with Fixed, Candidates, or Factory; the variant is resolved once here
// so the search logic never inspects runtime types.
type Generator struct {
	kind       genKind
	fixed      any
	candidates []any
	factory    func() any
}

// Fixed returns a Generator that always yields v, for both default and
// random resolution.
func Fixed(v any) Generator {
	return Generator{kind: kindFixed, fixed: v}
}

// Candidates returns a Generator that yields a uniformly random element of
// values (with replacement; draws are independent). values[0] is the
// implicit default unless overridden via WithDefaults. The slice is copied;
// later mutation of the caller's backing array has no effect.
// An empty values list is rejected during New validation.
func Candidates(values ...any) Generator {
	// Copy defensively; the Space must stay immutable after construction.
	vs := make([]any, len(values))
	copy(vs, values)

	return Generator{kind: kindCandidates, candidates: vs}
}

// Factory returns a Generator that yields fn() on every resolution. It has
// no implicit default: without a WithDefaults entry, default resolution
// invokes fn and emits a Warning. New probes fn once to surface malformed
// factories early, so fn runs at construction time too — factories with
// side effects or nontrivial cost must account for that extra invocation.
// A nil fn is rejected during New validation.
func Factory(fn func() any) Generator {
	return Generator{kind: kindFactory, factory: fn}
}

// Warning is a non-fatal diagnostic. Warnings never halt execution; they
// flow to the handler installed via WithWarningHandler and, for
// construction-time warnings, into the Space's Warnings snapshot.
type Warning struct {
	// Hyperparameter names the affected entry of the generator map.
	Hyperparameter string
	// Message describes the condition, e.g. a missing default.
	Message string
}

// String renders the warning as "sweep: <message>: <hyperparameter>".
func (w Warning) String() string {
	return "sweep: " + w.Message + ": " + w.Hyperparameter
}

// WarningHandler receives warnings as they are emitted. Handlers run
// synchronously on the calling goroutine and must not retain w's strings
// beyond the call if they care about allocation; copying is cheap.
type WarningHandler func(w Warning)
