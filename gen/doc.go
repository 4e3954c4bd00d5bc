// Package gen provides size-parameterized random value generation.
//
// A Gen[T] produces one random T given a size bound and a randomness
// source. The size caps magnitude for bounded numeric generators and
// length or depth for collections and recursive structures; generation is
// total — every generator returns a value for every size, including 0.
//
// Generators for composite types are built by delegation: SliceOf, PtrOf,
// PairOf and TripleOf take the generators of their components. Recursive
// types follow the standard discipline of choosing only non-recursive
// variants at size 0 and recursing with a strictly smaller size otherwise,
// which guarantees termination.
package gen
