// Package quick is the property-checking driver: it generates random
// inputs, runs a property against them, and on the first falsification
// minimizes the counterexample before reporting it.
//
// 🚀 How a check runs
//
//	Check("name", cfg, quick.SliceOf(quick.Int()), prop) performs up to
//	cfg trials. Each trial generates a value at the effective size
//	(the configured size, growing by one every 8 trials when Grow is on),
//	keeps a clone, and runs prop. A true result moves on to the next
//	trial; a false result triggers greedy minimization via Shrink and
//	raises the fatal outcome as a panic carrying a *CheckError.
//
// ✨ The pieces
//
//   - Value[T]  — bundles generation, shrinking and duplication for a type
//   - Config    — immutable trial parameters with builder-style updates
//   - Check     — universal property: fails on the first counterexample
//   - CheckOccurs — existential property: fails if no witness ever appears
//   - Shrink    — the minimizer, exposed directly for manual use
//
// Minimization is a leftmost-first greedy descent: it recurses into the
// first candidate that still falsifies the property and never revisits
// its siblings. The result is locally minimal — no candidate of the
// result falsifies the property — but not necessarily the globally
// smallest counterexample. That trade keeps shrinking fast and
// predictable.
//
// There are exactly two outcomes: a check passes, or it raises a fatal
// *CheckError wrapping ErrFalsified or ErrNoWitness. Nothing is retried
// and nothing is caught internally.
package quick
