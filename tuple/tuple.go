// Package tuple defines the small product types shared by the gen and
// shrink packages: a two-element Pair and a three-element Triple.
package tuple

import "fmt"

// Pair is an ordered product of two values.
type Pair[A, B any] struct {
	First  A
	Second B
}

// MakePair builds a Pair from its components.
func MakePair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

// String renders the pair as (first, second).
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// Triple is an ordered product of three values.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// MakeTriple builds a Triple from its components.
func MakeTriple[A, B, C any](a A, b B, c C) Triple[A, B, C] {
	return Triple[A, B, C]{First: a, Second: b, Third: c}
}

// String renders the triple as (first, second, third).
func (t Triple[A, B, C]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", t.First, t.Second, t.Third)
}
