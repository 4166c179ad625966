package sweep_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweeplab/hypersweep/sweep"
)

// TestOptions_NilPanics: option constructors validate and panic on
// meaningless inputs; search methods never do.
func TestOptions_NilPanics(t *testing.T) {
	assert.Panics(t, func() { sweep.WithRand(nil) }, "WithRand(nil) must panic")
	assert.Panics(t, func() { sweep.WithWarningHandler(nil) }, "WithWarningHandler(nil) must panic")
	assert.NotPanics(t, func() { sweep.WithDefaults(nil) }, "WithDefaults(nil) means no overrides")
}

// TestWithSeed_ZeroAliasesDefault: seed 0 and the unseeded default produce
// the same stream, per the fixed-default-seed policy.
func TestWithSeed_ZeroAliasesDefault(t *testing.T) {
	gens := map[string]sweep.Generator{"a": sweep.Candidates(1, 2, 3, 4, 5, 6, 7, 8)}

	seeded, err := sweep.New(gens, sweep.WithSeed(0))
	require.NoError(t, err)
	unseeded, err := sweep.New(gens)
	require.NoError(t, err)

	assert.Equal(t, seeded.RandomSearch(16), unseeded.RandomSearch(16),
		"seed 0 must alias the default deterministic stream")
}

// TestWithRand_InjectedSource: an explicit *rand.Rand drives the draws, so
// two spaces sharing equal sources replay each other.
func TestWithRand_InjectedSource(t *testing.T) {
	gens := map[string]sweep.Generator{"a": sweep.Candidates(1, 2, 3, 4)}

	one, err := sweep.New(gens, sweep.WithRand(rand.New(rand.NewSource(7))))
	require.NoError(t, err)
	two, err := sweep.New(gens, sweep.WithRand(rand.New(rand.NewSource(7))))
	require.NoError(t, err)

	assert.Equal(t, one.RandomSearch(10), two.RandomSearch(10))
}

// TestOptions_LastWins: later options override earlier ones.
func TestOptions_LastWins(t *testing.T) {
	gens := map[string]sweep.Generator{"a": sweep.Candidates(1, 2)}

	space, err := sweep.New(gens,
		sweep.WithDefaults(map[string]any{"a": 1}),
		sweep.WithDefaults(map[string]any{"a": 2}),
	)
	require.NoError(t, err)
	assert.Equal(t, 2, space.Default()["a"], "the last WithDefaults must win")
}

// TestOptions_LastWinsRNG: the RNG knobs follow the same last-wins rule,
// whichever of WithSeed/WithRand comes later supplies the stream.
func TestOptions_LastWinsRNG(t *testing.T) {
	gens := map[string]sweep.Generator{"a": sweep.Candidates(1, 2, 3, 4, 5, 6, 7, 8)}

	// Fresh reference per comparison: RandomSearch advances the stream.
	newReference := func() *sweep.Space {
		ref, err := sweep.New(gens, sweep.WithSeed(7))
		require.NoError(t, err)

		return ref
	}

	seedWins, err := sweep.New(gens,
		sweep.WithRand(rand.New(rand.NewSource(99))),
		sweep.WithSeed(7),
	)
	require.NoError(t, err)
	assert.Equal(t, newReference().RandomSearch(16), seedWins.RandomSearch(16),
		"a later WithSeed must replace an earlier WithRand")

	randWins, err := sweep.New(gens,
		sweep.WithSeed(99),
		sweep.WithRand(rand.New(rand.NewSource(7))),
	)
	require.NoError(t, err)
	assert.Equal(t, newReference().RandomSearch(16), randWins.RandomSearch(16),
		"a later WithRand must replace an earlier WithSeed")
}
