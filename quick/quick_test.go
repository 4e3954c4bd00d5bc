package quick_test

import (
	"bytes"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qcheck/quick"
	"github.com/katalvlaran/qcheck/shrink"
	"github.com/katalvlaran/qcheck/tuple"
)

// recoverCheckError runs fn and returns the *quick.CheckError it panics
// with, failing the test if fn returns normally or panics with anything else.
func recoverCheckError(t *testing.T, fn func()) *quick.CheckError {
	t.Helper()
	var cerr *quick.CheckError
	func() {
		defer func() {
			r := recover()
			require.NotNil(t, r, "check was expected to fail")
			var ok bool
			cerr, ok = r.(*quick.CheckError)
			require.True(t, ok, "unexpected panic value: %v", r)
		}()
		fn()
	}()
	return cerr
}

func TestCheckRunsEveryTrial(t *testing.T) {
	n := 0
	quick.Check("count", quick.DefaultConfig(), quick.Bool(), func(bool) bool {
		n++
		return true
	})
	require.Equal(t, quick.DefaultTrials, n)

	n = 0
	quick.Check("count", quick.DefaultConfig().Trials(7), quick.Bool(), func(bool) bool {
		n++
		return true
	})
	require.Equal(t, 7, n)
}

// TestCheckZeroTrials: a zero-trial budget reports success regardless of
// the property.
func TestCheckZeroTrials(t *testing.T) {
	require.NotPanics(t, func() {
		quick.Check("noop", quick.DefaultConfig().Trials(0), quick.Bool(),
			func(bool) bool { return false })
	})
}

func TestCheckFalsified(t *testing.T) {
	cerr := recoverCheckError(t, func() {
		quick.Check("always false", quick.DefaultConfig(), quick.Bool(),
			func(bool) bool { return false })
	})
	require.ErrorIs(t, cerr, quick.ErrFalsified)
	require.Equal(t, "always false", cerr.Name)
	require.Equal(t, 1, cerr.Trials, "the first trial already falsifies")
	require.NotEmpty(t, cerr.Repr)
	require.Contains(t, cerr.Error(), "always false")
	require.Contains(t, cerr.Error(), "falsified (1 trials)")
}

func TestCheckOccursFindsWitness(t *testing.T) {
	m := 0
	require.NotPanics(t, func() {
		quick.CheckOccurs("20th trial", quick.DefaultConfig(), quick.Bool(),
			func(bool) bool {
				m++
				return m == 20
			})
	})
	require.Equal(t, 20, m, "search must stop at the first witness")
}

func TestCheckOccursExhausted(t *testing.T) {
	n := 0
	cerr := recoverCheckError(t, func() {
		quick.CheckOccurs("unsatisfiable", quick.DefaultConfig().Trials(9), quick.Bool(),
			func(bool) bool {
				n++
				return false
			})
	})
	require.ErrorIs(t, cerr, quick.ErrNoWitness)
	require.NotErrorIs(t, cerr, quick.ErrFalsified, "the two fatal outcomes stay distinct")
	require.Equal(t, 9, n, "exactly the trial budget must be spent")
	require.Equal(t, 9, cerr.Trials)
	require.Empty(t, cerr.Repr)

	// A zero budget is exhausted immediately.
	cerr = recoverCheckError(t, func() {
		quick.CheckOccurs("empty budget", quick.DefaultConfig().Trials(0), quick.Bool(),
			func(bool) bool { return true })
	})
	require.ErrorIs(t, cerr, quick.ErrNoWitness)
}

func TestCheckOccursSmallN(t *testing.T) {
	cfg := quick.DefaultConfig().Seed(11).Trials(500)
	quick.CheckOccurs("zero occurs", cfg, quick.SmallN(), func(n uint) bool { return n == 0 })
	quick.CheckOccurs("one occurs", cfg, quick.SmallN(), func(n uint) bool { return n == 1 })
	quick.CheckOccurs("big occurs", cfg, quick.SmallN(), func(n uint) bool { return n > 10 })
}

func TestShrinkToMinimalNumber(t *testing.T) {
	got := quick.Shrink(quick.DefaultConfig(), quick.SmallN(), uint(100),
		func(uint) bool { return false })
	require.Equal(t, uint(0), got)
}

func TestShrinkToBoundary(t *testing.T) {
	got := quick.Shrink(quick.DefaultConfig(), quick.Uint(), uint(20000000),
		func(x uint) bool { return x < 1200301 })
	require.Equal(t, uint(1200301), got)
}

func TestShrinkSliceToEmpty(t *testing.T) {
	got := quick.Shrink(quick.DefaultConfig(), quick.SliceOf(quick.Uint()),
		[]uint{0, 1, 1, 2, 1, 0, 1, 0, 1},
		func([]uint) bool { return false })
	require.Empty(t, got)
}

func TestShrinkSliceSumBoundary(t *testing.T) {
	sum := func(v []uint) uint {
		var s uint
		for _, x := range v {
			s += x
		}
		return s
	}
	got := quick.Shrink(quick.DefaultConfig(), quick.SliceOf(quick.Uint()),
		[]uint{0, 1, 1, 2, 1, 0, 1, 0, 1},
		func(v []uint) bool { return sum(v) < 3 })
	require.Equal(t, uint(3), sum(got), "locally minimal slice keeps the boundary sum")
}

func TestShrinkStringToTwoAs(t *testing.T) {
	countA := func(s string) int { return strings.Count(s, "a") }
	got := quick.Shrink(quick.DefaultConfig(), quick.String(),
		"boots are made for walking",
		func(s string) bool { return countA(s) <= 1 })
	require.Equal(t, "aa", got)
}

func TestShrinkNestedContainers(t *testing.T) {
	ptr := func(s string) *string { return &s }
	hasE := func(v []*string) bool {
		for _, s := range v {
			if s != nil && strings.ContainsRune(*s, 'e') {
				return true
			}
		}
		return false
	}

	// A slice of optional strings shrinks to the single offending rune.
	got := quick.Shrink(quick.DefaultConfig(), quick.SliceOf(quick.PtrOf(quick.String())),
		[]*string{ptr("hi"), nil, ptr("more"), nil},
		func(v []*string) bool { return !hasE(v) })
	require.Len(t, got, 1)
	require.NotNil(t, got[0])
	require.Equal(t, "e", *got[0])

	// An optional slice shrinks straight to absent under an always-false
	// property: "absent" is the first candidate at the outermost level.
	outer := quick.PtrOf(quick.SliceOf(quick.PtrOf(quick.String())))
	gotOuter := quick.Shrink(quick.DefaultConfig(), outer,
		&[]*string{ptr("hi"), nil, ptr(""), ptr("long text from me")},
		func(*[]*string) bool { return false })
	require.Nil(t, gotOuter)
}

func TestShrinkPairOfStrings(t *testing.T) {
	v := tuple.MakePair("more meat", "beef")
	got := quick.Shrink(quick.DefaultConfig(), quick.PairOf(quick.String(), quick.String()), v,
		func(p tuple.Pair[string, string]) bool {
			return !(strings.ContainsRune(p.First, 'e') && strings.ContainsRune(p.Second, 'e'))
		})
	require.Equal(t, tuple.MakePair("e", "e"), got)
}

// TestShrinkGreedyNotGlobal documents intentional behavior: the driver
// takes the leftmost falsifying shrink path and returns its local
// minimum, not the globally smallest counterexample.
func TestShrinkGreedyNotGlobal(t *testing.T) {
	v := tuple.MakeTriple(uint(1), uint(10), uint(3))
	got := quick.Shrink(quick.DefaultConfig(),
		quick.TripleOf(quick.SmallN(), quick.SmallN(), quick.SmallN()), v,
		func(x tuple.Triple[uint, uint, uint]) bool {
			return x.First+x.Second+x.Third == 0
		})
	// (0,0,0) satisfies the property, so the descent stops one step short
	// on the leftmost path; smaller falsifying triples exist elsewhere.
	require.Equal(t, tuple.MakeTriple(uint(0), uint(0), uint(1)), got)
}

func TestGrowSchedule(t *testing.T) {
	sizes := make([]int, 0, 32)
	recorder := quick.Value[int]{
		Gen: func(size int, _ *rand.Rand) int {
			sizes = append(sizes, size)
			return 0
		},
		Shrink: shrink.None[int](),
		Clone:  func(v int) int { return v },
	}

	quick.Check("grow", quick.DefaultConfig().Trials(32), recorder, func(int) bool { return true })
	for i, size := range sizes {
		require.Equal(t, quick.DefaultSize+i/8, size, "trial %d", i)
	}

	sizes = sizes[:0]
	quick.Check("no grow", quick.DefaultConfig().Trials(32).Grow(false), recorder,
		func(int) bool { return true })
	for i, size := range sizes {
		require.Equal(t, quick.DefaultSize, size, "trial %d", i)
	}
}

// TestPropertySeesItsOwnCopy: mutation inside the property must not leak
// into the value the driver retains for shrinking and reporting.
func TestPropertySeesItsOwnCopy(t *testing.T) {
	got := quick.Shrink(quick.DefaultConfig(), quick.SliceOf(quick.Uint()),
		[]uint{4, 4},
		func(v []uint) bool {
			for i := range v {
				v[i] = 1000 // vandalize the copy
			}
			return len(v) == 0
		})
	// Falsified whenever non-empty; minimal non-empty slice is [0].
	require.Equal(t, []uint{0}, got)
}

func TestConfigImmutable(t *testing.T) {
	base := quick.DefaultConfig()
	_ = base.Trials(3).Size(0).Verbose(true).Grow(false)

	n := 0
	quick.Check("base unchanged", base, quick.Bool(), func(bool) bool {
		n++
		return true
	})
	require.Equal(t, quick.DefaultTrials, n)
}

func TestConfigClampsNegatives(t *testing.T) {
	require.NotPanics(t, func() {
		quick.Check("negative trials", quick.DefaultConfig().Trials(-5), quick.Bool(),
			func(bool) bool { return false })
		quick.Check("negative size", quick.DefaultConfig().Size(-5).Trials(2), quick.SmallN(),
			func(uint) bool { return true })
	})
}

func TestVerboseDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	cfg := quick.DefaultConfig().
		Trials(3).
		Seed(7).
		Verbose(true).
		Logger(zerolog.New(&buf))

	quick.Check("loud pass", cfg, quick.SmallN(), func(uint) bool { return true })
	out := buf.String()
	require.Contains(t, out, "loud pass")
	require.Contains(t, out, "trying")
	require.Contains(t, out, "passed")

	buf.Reset()
	cerr := recoverCheckError(t, func() {
		quick.Check("loud fail", cfg, quick.SmallN(), func(uint) bool { return false })
	})
	require.ErrorIs(t, cerr, quick.ErrFalsified)
	require.Contains(t, buf.String(), "first falsification")
}

func TestVerboseOffIsSilent(t *testing.T) {
	var buf bytes.Buffer
	cfg := quick.DefaultConfig().Trials(5).Logger(zerolog.New(&buf))
	quick.Check("quiet", cfg, quick.SmallN(), func(uint) bool { return true })
	require.Empty(t, buf.String())
}

func TestSeedReproducible(t *testing.T) {
	run := func() []uint {
		var got []uint
		quick.Check("record", quick.DefaultConfig().Trials(10).Seed(99), quick.SmallN(),
			func(n uint) bool {
				got = append(got, n)
				return true
			})
		return got
	}
	require.Equal(t, run(), run())
}

func TestCallerName(t *testing.T) {
	name := quick.CallerName()
	require.True(t, strings.HasPrefix(name, "quick_test.go:"), "got %q", name)
}
