// Package qcheck is a small property-based testing engine: state a
// predicate over randomly generated values, let the engine hunt for a
// counterexample, and get back a minimal reproducing case.
//
// 🚀 What is qcheck?
//
//	A QuickCheck-style checker built from four pieces:
//		• lazy/   — single-pass, thunk-driven sequences for candidate spaces
//		• gen/    — size-parameterized random value generation
//		• shrink/ — per-type enumeration of smaller candidates
//		• quick/  — the trial / falsification / minimization driver
//
// ✨ Why choose qcheck?
//
//   - Lazy shrinking – combinatorial candidate spaces cost only what you inspect
//   - Guaranteed termination – shrink chains are well-founded by construction
//   - No reflection – generators and shrinkers compose with plain generics
//   - Reproducible – seed the run, replay the failure
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/qcheck/quick"
//
//	quick.Check("reverse twice is identity", quick.DefaultConfig(),
//	    quick.SliceOf(quick.Int()),
//	    func(v []int) bool {
//	        w := reverse(reverse(v))
//	        return slices.Equal(v, w)
//	    })
//
// A falsified check panics with a *quick.CheckError carrying the check
// name, the number of trials consumed, and the minimized counterexample.
//
// See quick/example_test.go for full walkthroughs.
package qcheck
