package quick

import (
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/davecgh/go-spew/spew"
)

// Check repeatedly tests prop with values generated from v.
//
// For trial i the effective size is cfg size plus i/8 when Grow is on.
// Each generated value is cloned before the property consumes it; on the
// first falsification the retained clone is minimized with Shrink and the
// check raises a fatal *CheckError (wrapping ErrFalsified) via panic,
// carrying name, the number of trials consumed, and the minimized
// counterexample. If every trial passes — including the zero-trial case —
// Check returns normally.
func Check[T any](name string, cfg Config, v Value[T], prop func(T) bool) {
	log := cfg.diag()
	rng := cfg.newRand()

	for i := 0; i < cfg.trials; i++ {
		size := cfg.size
		if cfg.grow {
			size += i / 8
		}
		value := v.Gen(size, rng)
		dup := v.Clone(value)
		if cfg.verbose {
			log.Debug().Str("check", name).Int("trial", i+1).Int("size", size).
				Str("value", repr(dup)).Msg("trying")
		}
		if prop(value) {
			continue
		}
		if cfg.verbose {
			log.Info().Str("check", name).Str("value", repr(dup)).Msg("first falsification")
		}
		minimized := Shrink(cfg, v, dup, prop)
		panic(&CheckError{
			Name:   name,
			Trials: i + 1,
			Repr:   repr(minimized),
			reason: ErrFalsified,
		})
	}
	if cfg.verbose {
		log.Info().Str("check", name).Int("trials", cfg.trials).Msg("passed")
	}
}

// Shrink minimizes a falsifying value by greedy leftmost-first descent:
// it pulls candidates from v.Shrink(value) one at a time, and on the
// first candidate that still falsifies prop it recurses into that
// candidate immediately, never examining its remaining siblings. When no
// candidate falsifies, value is returned — it is locally minimal, which
// is not necessarily the globally smallest counterexample.
//
// The property only ever sees clones, so mutation inside prop cannot
// corrupt the descent. Shrink has no fatal side effect; it is exposed for
// manual use on a known-falsifying value.
func Shrink[T any](cfg Config, v Value[T], value T, prop func(T) bool) T {
	log := cfg.diag()
	candidates := v.Shrink(value)
	for {
		cand, ok := candidates.Next()
		if !ok {
			break
		}
		if !prop(v.Clone(cand)) {
			if cfg.verbose {
				log.Debug().Str("value", repr(cand)).Msg("shrunk")
			}
			return Shrink(cfg, v, cand, prop)
		}
	}
	if cfg.verbose {
		log.Debug().Str("value", repr(value)).Msg("shrink finished")
	}
	return value
}

// CheckOccurs is the existential dual of Check: it succeeds on the first
// trial whose value satisfies prop, and raises a fatal *CheckError
// (wrapping ErrNoWitness) via panic when the full trial budget is
// exhausted without a witness. No minimization happens — there is no
// "smaller witness" to search for.
func CheckOccurs[T any](name string, cfg Config, v Value[T], prop func(T) bool) {
	log := cfg.diag()
	rng := cfg.newRand()

	for i := 0; i < cfg.trials; i++ {
		size := cfg.size
		if cfg.grow {
			size += i / 8
		}
		value := v.Gen(size, rng)
		if prop(value) {
			if cfg.verbose {
				log.Info().Str("check", name).Int("trials", i+1).
					Str("value", repr(value)).Msg("witness found")
			}
			return
		}
	}
	panic(&CheckError{Name: name, Trials: cfg.trials, reason: ErrNoWitness})
}

// CallerName derives a check name from the caller's source location,
// for callers that don't want to invent one:
//
//	quick.Check(quick.CallerName(), cfg, quick.Int(), prop)
func CallerName() string {
	_, file, line, ok := runtime.Caller(1)
	if !ok {
		return "unknown"
	}
	return filepath.Base(file) + ":" + strconv.Itoa(line)
}

// repr renders a debug-style representation of a value for reports.
func repr(v any) string {
	return spew.Sprintf("%#v", v)
}
