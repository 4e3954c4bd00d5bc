package quick

import (
	"errors"
	"fmt"
)

// Sentinel reasons for the two fatal outcomes. They stay distinct:
// a falsified universal property is not the same failure as an
// existential property that never found a witness.
var (
	// ErrFalsified marks a counterexample found by Check.
	ErrFalsified = errors.New("quick: property falsified")

	// ErrNoWitness marks an existence search exhausted by CheckOccurs.
	ErrNoWitness = errors.New("quick: no witness found")
)

// CheckError is the fatal outcome raised (via panic) by Check and
// CheckOccurs. It wraps ErrFalsified or ErrNoWitness, so callers that
// recover can distinguish the outcomes with errors.Is.
type CheckError struct {
	// Name identifies the check.
	Name string

	// Trials is the number of trials consumed: up to and including the
	// falsifying trial for Check, the full budget for CheckOccurs.
	Trials int

	// Repr is a debug-style representation of the minimized
	// counterexample; empty for the no-witness outcome.
	Repr string

	reason error
}

// Error renders the report: check name, trials consumed, and the
// minimized counterexample where there is one.
func (e *CheckError) Error() string {
	if errors.Is(e.reason, ErrNoWitness) {
		return fmt.Sprintf("quick: check %q: no witness found (%d trials)", e.Name, e.Trials)
	}
	return fmt.Sprintf("quick: check %q: falsified (%d trials) with value %s", e.Name, e.Trials, e.Repr)
}

// Unwrap exposes the sentinel reason.
func (e *CheckError) Unwrap() error { return e.reason }
