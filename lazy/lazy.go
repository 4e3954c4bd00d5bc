package lazy

import "iter"

// Lazy is a lazily generated sequence of T, traversable only once.
//
// Values live in two queues: head holds realized values awaiting
// consumption, thunks holds deferred producers in the order they were
// attached. The logical order of the sequence is all realized values in
// push order, followed by whatever each pending thunk will realize, in
// thunk-push order.
//
// The zero value is not ready for use; construct with New, NewFrom or
// Create. A Lazy is not safe for concurrent use.
type Lazy[T any] struct {
	head   []T
	thunks []func(*Lazy[T])
}

// New returns an empty sequence.
func New[T any]() *Lazy[T] {
	return &Lazy[T]{}
}

// NewFrom returns a sequence pre-seeded with the given realized values.
// The values slice is not retained.
func NewFrom[T any](values ...T) *Lazy[T] {
	l := &Lazy[T]{head: make([]T, len(values))}
	copy(l.head, values)
	return l
}

// Create builds a sequence by handing a fresh empty Lazy to build,
// which may Push values and PushThunk producers onto it.
func Create[T any](build func(*Lazy[T])) *Lazy[T] {
	l := New[T]()
	build(l)
	return l
}

// Push appends a realized value to the end of the sequence,
// ahead of anything pending thunks will later produce.
func (l *Lazy[T]) Push(v T) {
	l.head = append(l.head, v)
}

// PushThunk appends a deferred producer. The producer is invoked at most
// once, when Next drains past everything queued before it, and is removed
// from the queue before it runs. During its invocation it may call Push
// and PushThunk on the sequence freely: pushing nothing prunes the branch,
// re-installing a continuation keeps generation going lazily. Thunks
// pushed during an invocation inherit the invoked thunk's position in the
// queue (see Next), so a continuation runs before producers that were
// queued after its originator.
//
// Any state the producer needs travels inside its closure; after the
// single invocation the closure is dropped.
func (l *Lazy[T]) PushThunk(fn func(*Lazy[T])) {
	l.thunks = append(l.thunks, fn)
}

// Next removes and returns the front of the sequence, invoking pending
// thunks as needed to realize it. It reports false once the sequence is
// exhausted, and keeps reporting false thereafter.
//
// An invoked thunk expands in place: whatever it pushes — values and
// continuation thunks alike — takes the queue position the thunk
// occupied, ahead of producers queued after it. Everything a thunk will
// eventually realize therefore stays contiguous, in thunk-push order.
func (l *Lazy[T]) Next() (T, bool) {
	for len(l.head) == 0 && len(l.thunks) > 0 {
		fn := l.thunks[0]
		rest := l.thunks[1:]
		l.thunks = nil
		fn(l)
		l.thunks = append(l.thunks, rest...)
	}
	if len(l.head) > 0 {
		v := l.head[0]
		l.head = l.head[1:]
		return v, true
	}
	var zero T
	return zero, false
}

// All returns a single-use iterator draining the sequence.
func (l *Lazy[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := l.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Collect drains the remainder of the sequence into a slice.
// The sequence must be finite.
func (l *Lazy[T]) Collect() []T {
	var out []T
	for v, ok := l.Next(); ok; v, ok = l.Next() {
		out = append(out, v)
	}
	return out
}

// PushMap lazily appends fn(x) to dst for every x produced by src.
// One element of src is realized per pull from dst: the installed thunk
// pulls a single value, pushes its image, and re-installs itself for the
// remainder. Nothing is materialized ahead of consumption.
//
// This is a free function rather than a method because the source element
// type differs from the destination's.
func PushMap[A, T any](dst *Lazy[T], src *Lazy[A], fn func(A) T) {
	dst.PushThunk(func(dst *Lazy[T]) {
		if x, ok := src.Next(); ok {
			dst.Push(fn(x))
			PushMap(dst, src, fn)
		}
	})
}

// PushMapEnv is PushMap with an owned, mutable environment threaded
// through the steps: fn may mutate *env, and the (possibly mutated)
// environment is re-packaged into the continuation thunk. The environment
// is never shared between thunks; each continuation owns its own copy.
func PushMapEnv[A, E, T any](dst *Lazy[T], src *Lazy[A], env E, fn func(A, *E) T) {
	dst.PushThunk(func(dst *Lazy[T]) {
		if x, ok := src.Next(); ok {
			dst.Push(fn(x, &env))
			PushMapEnv(dst, src, env, fn)
		}
	})
}
