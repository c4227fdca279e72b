// Package runner drives the generate-evaluate-record loop of a checking
// session and produces the session report.
//
// A session owns its random source and report exclusively: nothing else
// reads or mutates either while the session runs. The loop always executes
// the full configured budget, even after failures, so the report reflects
// the failure rate over the whole budget rather than just the earliest
// failure.
//
// Basic usage:
//
//	report, err := runner.Assert("parse round-trips",
//	    arbitrary.Uint32(),
//	    property.FromBool(roundTrips),
//	    runner.Params{Seed: 42, Runs: 100})
//	if report.HasFailure() { ... }
package runner

import (
	"fmt"

	"github.com/shipq/propcheck/arbitrary"
	"github.com/shipq/propcheck/property"
	"github.com/shipq/propcheck/random"
	"github.com/shipq/propcheck/runid"
)

// sessionState tracks where a session is in its lifecycle.
type sessionState int

const (
	stateIdle sessionState = iota
	stateRunning
	statePassed
	stateHasFailures
)

// session holds the per-session mutable state: the random stream, the run
// id sequence, and the report under construction.
type session[T any] struct {
	src    random.Source
	seq    runid.Sequence
	state  sessionState
	report Report[T]
}

func newSession[T any](name string, src random.Source) *session[T] {
	return &session[T]{
		src:    src,
		state:  stateIdle,
		report: startReport[T](name),
	}
}

// finish moves the session to its terminal state and seals the report.
func (s *session[T]) finish() Report[T] {
	if s.report.HasFailure() {
		s.state = stateHasFailures
	} else {
		s.state = statePassed
	}
	return s.report
}

// AssertProperty checks prop for the configured number of runs and returns
// the completed report.
//
// Classified fail and precondition-fail outcomes are absorbed into the
// report and never interrupt the loop. Generation errors (invalid
// configuration surfaced late, filter exhaustion) abort the session and
// are returned alongside the partial report. Panics raised by the
// predicate propagate to the caller unmodified.
func AssertProperty[T any](name string, prop property.Property[T], params Params) (Report[T], error) {
	src, runs, err := params.normalize()
	if err != nil {
		return startReport[T](name), err
	}

	s := newSession[T](name, src)
	s.state = stateRunning

	for i := 0; i < runs; i++ {
		id := s.seq.Next()
		s.report.recordRun(id)

		value, err := prop.Generate(s.src, id.Possible())
		if err != nil {
			return s.report, fmt.Errorf("runner: run %d: %w", id, err)
		}

		verdict := prop.Run(value.Value)
		s.report.recordVerdict(id, verdict, value.Value)
	}

	return s.finish(), nil
}

// Assert binds arb and pred into a property and checks it. This is the
// main entry point.
func Assert[T any](name string, arb arbitrary.Arbitrary[T], pred property.Predicate[T], params Params) (Report[T], error) {
	return AssertProperty(name, property.New(arb, pred), params)
}

// AssertPair checks a predicate over values drawn pairwise from two
// arbitraries. Each run draws one value from arbA, then one from arbB.
func AssertPair[A, B any](name string, arbA arbitrary.Arbitrary[A], arbB arbitrary.Arbitrary[B], pred property.Predicate[arbitrary.Pair[A, B]], params Params) (Report[arbitrary.Pair[A, B]], error) {
	return Assert(name, arbitrary.PairOf(arbA, arbB), pred, params)
}
