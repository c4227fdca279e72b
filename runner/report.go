package runner

import (
	"github.com/shipq/propcheck/property"
	"github.com/shipq/propcheck/runid"
)

// Report accumulates the outcome of one checking session. It is created
// empty when the session starts, mutated once per run by the session, and
// returned as the immutable result once the budget is spent.
type Report[T any] struct {
	// Name labels the property under check.
	Name string

	// TotalRuns is the id of the last run executed, or runid.Unspecified
	// before any run.
	TotalRuns runid.Possible

	// Failures counts runs that classified as fail or precondition-fail.
	Failures int

	// FirstFailure is the run id of the first non-pass classification, or
	// runid.Unspecified if every run passed. Set at most once per session.
	FirstFailure runid.Possible

	// FirstFailureKind distinguishes fail from precondition-fail for the
	// first failure. Meaningful only when FirstFailure is specified.
	FirstFailureKind property.Verdict

	// CounterExample holds the value generated on the first failing run.
	// Set at most once per session, alongside FirstFailure.
	CounterExample Option[T]
}

// HasFailure reports whether any run failed or missed its precondition.
func (r Report[T]) HasFailure() bool {
	return r.FirstFailure.Specified()
}

// startReport creates the empty report for a new session.
func startReport[T any](name string) Report[T] {
	return Report[T]{
		Name:         name,
		TotalRuns:    runid.Unspecified,
		FirstFailure: runid.Unspecified,
	}
}

// recordRun notes that run id is underway.
func (r *Report[T]) recordRun(id runid.ID) {
	r.TotalRuns = id.Possible()
}

// recordVerdict folds one run's classification into the report. The first
// failure freezes FirstFailure, FirstFailureKind and CounterExample; later
// failures only bump the count.
func (r *Report[T]) recordVerdict(id runid.ID, v property.Verdict, value T) {
	if v == property.Pass {
		return
	}
	r.Failures++
	if !r.FirstFailure.Specified() {
		r.FirstFailure = id.Possible()
		r.FirstFailureKind = v
		r.CounterExample = Some(value)
	}
}
