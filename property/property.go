// Package property binds an arbitrary to a predicate and classifies the
// outcomes of evaluating it.
package property

import (
	"github.com/shipq/propcheck/arbitrary"
	"github.com/shipq/propcheck/random"
	"github.com/shipq/propcheck/runid"
)

// Verdict classifies one evaluation of a predicate.
type Verdict int

const (
	// Pass means the predicate held for the generated value.
	Pass Verdict = iota
	// Fail means the predicate was violated; the value is a counter-example.
	Fail
	// PreconditionFail means the value did not meet the predicate's
	// precondition, so the predicate itself was never meaningfully checked.
	// It still counts as "not succeeded" in reports.
	PreconditionFail
)

// String returns the verdict name for logs and reports.
func (v Verdict) String() string {
	switch v {
	case Pass:
		return "pass"
	case Fail:
		return "fail"
	case PreconditionFail:
		return "precondition-fail"
	default:
		return "unknown"
	}
}

// Predicate classifies a generated value. A predicate that panics aborts
// the whole session; the engine does not convert panics into verdicts.
type Predicate[T any] func(value T) Verdict

// FromBool adapts a plain boolean check into a Predicate.
func FromBool[T any](check func(value T) bool) Predicate[T] {
	return func(value T) Verdict {
		if check(value) {
			return Pass
		}
		return Fail
	}
}

// WithPrecondition guards pred with a precondition. Values that do not
// satisfy it classify as PreconditionFail without running pred.
func WithPrecondition[T any](precond func(value T) bool, pred Predicate[T]) Predicate[T] {
	return func(value T) Verdict {
		if !precond(value) {
			return PreconditionFail
		}
		return pred(value)
	}
}

// Property is a predicate bound to the arbitrary that supplies its inputs.
// Properties are stateless beyond the closures they capture and may be
// reused across sessions.
type Property[T any] struct {
	arb  arbitrary.Arbitrary[T]
	pred Predicate[T]
}

// New binds an arbitrary to a predicate.
func New[T any](arb arbitrary.Arbitrary[T], pred Predicate[T]) Property[T] {
	return Property[T]{arb: arb, pred: pred}
}

// Generate produces the input value for one run. When id is specified, the
// bias frequency for that run is computed and routed through the bias seam
// before generation; with runid.Unspecified generation is unbiased.
func (p Property[T]) Generate(src random.Source, id runid.Possible) (arbitrary.Shrinkable[T], error) {
	arb := p.arb
	if id.Specified() {
		arb = withBias(arb, Frequency(id.ID()))
	}
	return arb.Generate(src)
}

// Run evaluates the predicate against one value. Panics raised by the
// predicate propagate to the caller unmodified.
func (p Property[T]) Run(value T) Verdict {
	p.beforeRun(value)
	v := p.pred(value)
	p.afterRun(value, v)
	return v
}

// beforeRun and afterRun are reserved instrumentation points.

func (p Property[T]) beforeRun(value T) {}

func (p Property[T]) afterRun(value T, v Verdict) {}
