// Package hypersweep is your in-memory toolkit for planning hyperparameter
// experiment sweeps — from a declarative search space to ready-to-run
// configuration lists.
//
// 🚀 What is hypersweep?
//
//	A small, zero-dependency library that brings together:
//		• Declarative search spaces: fixed values, candidate lists, factories
//		• Validated construction: every misconfiguration reported at once
//		• Search plans: defaults, random, one-factor-at-a-time (random & grid),
//		  and ad-hoc override sweeps
//		• Deterministic randomness: seeded, injectable, reproducible
//
// ✨ Why choose hypersweep?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – immutable spaces, sentinel errors, in-code docs
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – inject your own RNG and warning handler
//
// Everything lives in one subpackage:
//
//	sweep/ — Space, Generator variants, options, and the five search strategies
//
// Quick sketch:
//
//	space, _ := sweep.New(map[string]sweep.Generator{
//		"batch_size":    sweep.Fixed(32),
//		"learning_rate": sweep.Candidates(0.01, 0.001),
//	})
//	plans, _ := space.OneValueGridSearch([]string{"learning_rate"})
//
// Dive into examples/ for a full training-sweep scenario.
//
//	go get github.com/sweeplab/hypersweep/sweep
package hypersweep
