// Package suite collects named properties and checks them as a batch,
// producing plain result rows that renderers and the journal can consume
// without caring about the value types involved.
package suite

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/shipq/propcheck/arbitrary"
	"github.com/shipq/propcheck/property"
	"github.com/shipq/propcheck/runner"
)

// Result is the type-erased outcome of checking one property. Counter
// examples are carried formatted, so results of differently-typed
// properties can travel together.
type Result struct {
	Name             string
	Seed             uint32
	TotalRuns        int
	Failures         int
	FirstFailure     int    // run id, 0 when no run failed
	FirstFailureKind string // "fail" or "precondition-fail", "" when passed
	CounterExample   string // formatted value, "" when passed
	Err              string // generation/config error, "" when none
	Elapsed          time.Duration
}

// Passed reports whether the check completed with no failures and no error.
func (r Result) Passed() bool {
	return r.Err == "" && r.FirstFailure == 0
}

// Check runs one property under the given session parameters.
type Check func(params runner.Params) Result

// Suite is an ordered collection of named property checks.
type Suite struct {
	name   string
	logger *slog.Logger
	checks []Check
}

// New creates a suite. A nil logger falls back to slog.Default().
func New(name string, logger *slog.Logger) *Suite {
	if logger == nil {
		logger = slog.Default()
	}
	return &Suite{name: name, logger: logger}
}

// Name returns the suite name.
func (s *Suite) Name() string {
	return s.name
}

// Len returns the number of registered checks.
func (s *Suite) Len() int {
	return len(s.checks)
}

// AddCheck registers a pre-built check.
func (s *Suite) AddCheck(c Check) {
	s.checks = append(s.checks, c)
}

// Add registers a property built from an arbitrary and a predicate.
func Add[T any](s *Suite, name string, arb arbitrary.Arbitrary[T], pred property.Predicate[T]) {
	s.AddCheck(func(params runner.Params) Result {
		start := time.Now()
		report, err := runner.Assert(name, arb, pred, params)
		return resultFrom(report, params.Seed, err, time.Since(start))
	})
}

// AddPair registers a property over values drawn pairwise from two
// arbitraries.
func AddPair[A, B any](s *Suite, name string, arbA arbitrary.Arbitrary[A], arbB arbitrary.Arbitrary[B], pred property.Predicate[arbitrary.Pair[A, B]]) {
	Add(s, name, arbitrary.PairOf(arbA, arbB), pred)
}

// Run checks every registered property and returns one result per check,
// in registration order. Each check gets its own random stream, derived
// deterministically from the base seed and the check's position, so adding
// a check never perturbs the values earlier checks see.
func (s *Suite) Run(base runner.Params) []Result {
	results := make([]Result, 0, len(s.checks))
	s.logger.Info("suite_started", "suite", s.name, "checks", len(s.checks), "seed", base.Seed)

	for i, check := range s.checks {
		params := base
		params.Source = nil
		params.Seed = base.Seed + uint32(i)

		res := check(params)
		results = append(results, res)

		switch {
		case res.Err != "":
			s.logger.Error("check_errored", "suite", s.name, "check", res.Name, "seed", res.Seed, "error", res.Err)
		case !res.Passed():
			s.logger.Warn("check_failed", "suite", s.name, "check", res.Name, "seed", res.Seed,
				"first_failure", res.FirstFailure, "kind", res.FirstFailureKind,
				"failures", res.Failures, "runs", res.TotalRuns, "counter_example", res.CounterExample)
		default:
			s.logger.Info("check_passed", "suite", s.name, "check", res.Name, "seed", res.Seed, "runs", res.TotalRuns)
		}
	}

	return results
}

// resultFrom flattens a typed report into a Result row.
func resultFrom[T any](report runner.Report[T], seed uint32, err error, elapsed time.Duration) Result {
	res := Result{
		Name:      report.Name,
		Seed:      seed,
		TotalRuns: int(report.TotalRuns),
		Failures:  report.Failures,
		Elapsed:   elapsed,
	}
	if err != nil {
		res.Err = err.Error()
	}
	if report.HasFailure() {
		res.FirstFailure = int(report.FirstFailure)
		res.FirstFailureKind = report.FirstFailureKind.String()
		if ce, ok := report.CounterExample.Get(); ok {
			res.CounterExample = fmt.Sprintf("%+v", ce)
		}
	}
	return res
}
