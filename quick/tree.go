package quick

import (
	"math/rand/v2"

	"github.com/katalvlaran/qcheck/gen"
	"github.com/katalvlaran/qcheck/lazy"
	"github.com/katalvlaran/qcheck/shrink"
	"github.com/katalvlaran/qcheck/tuple"
)

// Tree is a binary tree carrying a value at every node; a nil *Tree is a
// leaf. It is the reference recursive sum type showing how a user-defined
// type plugs into the engine: TreeOf composes the component bundles the
// same way SliceOf or PairOf do.
type Tree[T any] struct {
	Value       T
	Left, Right *Tree[T]
}

// Size counts the nodes of the tree.
func (t *Tree[T]) Size() int {
	if t == nil {
		return 0
	}
	return 1 + t.Left.Size() + t.Right.Size()
}

// TreeOf bundles a recursive binary tree over elem.
//
// Generation terminates because size 0 always yields a leaf and every
// recursive call halves the size; at other sizes a leaf is chosen with
// probability 1/4. Shrinking a node yields the leaf first (the most
// aggressive reduction), then nodes rebuilt from the shrunk
// (value, left, right) triple; a leaf has no candidates.
func TreeOf[T any](elem Value[T]) Value[*Tree[T]] {
	var genTree gen.Gen[*Tree[T]]
	genTree = func(size int, rng *rand.Rand) *Tree[T] {
		if size == 0 || rng.IntN(4) == 0 {
			return nil
		}
		return &Tree[T]{
			Value: elem.Gen(size, rng),
			Left:  genTree(size/2, rng),
			Right: genTree(size/2, rng),
		}
	}

	var cloneTree func(*Tree[T]) *Tree[T]
	cloneTree = func(t *Tree[T]) *Tree[T] {
		if t == nil {
			return nil
		}
		return &Tree[T]{
			Value: elem.Clone(t.Value),
			Left:  cloneTree(t.Left),
			Right: cloneTree(t.Right),
		}
	}

	var shrinkTree shrink.Shrinker[*Tree[T]]
	shrinkTree = func(t *Tree[T]) *lazy.Lazy[*Tree[T]] {
		return lazy.Create(func(l *lazy.Lazy[*Tree[T]]) {
			if t == nil {
				return
			}
			l.Push(nil)
			parts := shrink.TripleOf(elem.Shrink, shrinkTree, shrinkTree)
			lazy.PushMap(l, parts(tuple.MakeTriple(t.Value, t.Left, t.Right)),
				func(p tuple.Triple[T, *Tree[T], *Tree[T]]) *Tree[T] {
					return &Tree[T]{Value: p.First, Left: p.Second, Right: p.Third}
				})
		})
	}

	return Value[*Tree[T]]{Gen: genTree, Shrink: shrinkTree, Clone: cloneTree}
}
