// Package shrink enumerates "smaller" candidates for a value, as a lazy
// sequence the quick-check driver searches for a smaller counterexample.
//
// A Shrinker[T] maps a value to a lazy.Lazy of candidates ordered from
// most aggressive (a canonical minimal value, or dropping structure
// outright) to least aggressive (recursively shrinking one sub-component
// while holding the rest fixed, earlier components first).
//
// Every shrinker obeys three contracts the driver relies on:
//
//   - the candidate sequence is finite;
//   - the value itself never appears among its own candidates;
//   - descent is well-founded: there is no infinite chain
//     v, shrink(v)[i], shrink(shrink(v)[i])[j], ... — so greedy recursive
//     minimization always terminates.
//
// Composite shrinkers delegate to their components' shrinkers, mirroring
// the gen package.
package shrink
