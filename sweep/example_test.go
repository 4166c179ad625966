package sweep_test

import (
	"fmt"

	"github.com/sweeplab/hypersweep/sweep"
)

// ExampleSpace_OneValueGridSearch sweeps each hyperparameter over its
// non-default candidates while holding everything else at defaults.
func ExampleSpace_OneValueGridSearch() {
	space, err := sweep.New(map[string]sweep.Generator{
		"learning_rate": sweep.Candidates(0.01, 0.001, 0.0001),
		"batch_size":    sweep.Candidates(32, 64),
	})
	if err != nil {
		fmt.Println("New failed:", err)

		return
	}

	plan, err := space.OneValueGridSearch([]string{"learning_rate", "batch_size"})
	if err != nil {
		fmt.Println("grid failed:", err)

		return
	}

	for _, cfg := range plan {
		fmt.Printf("lr=%v bs=%v\n", cfg["learning_rate"], cfg["batch_size"])
	}
	// Output:
	// lr=0.01 bs=32
	// lr=0.001 bs=32
	// lr=0.0001 bs=32
	// lr=0.01 bs=64
}

// ExampleSpace_Default shows default resolution: explicit overrides beat
// implicit defaults, and fixed values are their own default.
func ExampleSpace_Default() {
	space, err := sweep.New(
		map[string]sweep.Generator{
			"learning_rate": sweep.Candidates(0.01, 0.001),
			"batch_size":    sweep.Fixed(32),
		},
		sweep.WithDefaults(map[string]any{"learning_rate": 0.001}),
	)
	if err != nil {
		fmt.Println("New failed:", err)

		return
	}

	cfg := space.Default()
	for _, name := range space.Names() {
		fmt.Printf("%s=%v\n", name, cfg[name])
	}
	// Output:
	// batch_size=32
	// learning_rate=0.001
}

// ExampleNew_warnings demonstrates the diagnostics side channel: a factory
// without a registered default is a caution, not an error.
func ExampleNew_warnings() {
	space, err := sweep.New(
		map[string]sweep.Generator{
			"init_scale": sweep.Factory(func() any { return 0.05 }),
		},
		sweep.WithWarningHandler(func(w sweep.Warning) { fmt.Println(w) }),
	)
	if err != nil {
		fmt.Println("New failed:", err)

		return
	}
	fmt.Println("hyperparameters:", space.Len())
	// Output:
	// sweep: no default value registered: init_scale
	// hyperparameters: 1
}

// ExampleSpace_CustomSearch layers ad-hoc overrides on top of defaults for
// a quick "what if" plan.
func ExampleSpace_CustomSearch() {
	space, err := sweep.New(map[string]sweep.Generator{
		"learning_rate": sweep.Candidates(0.01, 0.001),
		"batch_size":    sweep.Fixed(32),
	})
	if err != nil {
		fmt.Println("New failed:", err)

		return
	}

	plan := space.CustomSearch(map[string]sweep.Generator{"epochs": sweep.Fixed(10)}, 2)
	for _, cfg := range plan {
		fmt.Printf("lr=%v bs=%v epochs=%v\n", cfg["learning_rate"], cfg["batch_size"], cfg["epochs"])
	}
	// Output:
	// lr=0.01 bs=32 epochs=10
	// lr=0.01 bs=32 epochs=10
}
