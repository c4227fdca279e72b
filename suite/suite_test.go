package suite

import (
	"io"
	"log/slog"
	"reflect"
	"testing"

	"github.com/shipq/propcheck/arbitrary"
	"github.com/shipq/propcheck/property"
	"github.com/shipq/propcheck/runner"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func buildSuite() *Suite {
	s := New("demo", quietLogger())
	Add(s, "uint32 passes", arbitrary.Uint32(),
		property.FromBool(func(uint32) bool { return true }))
	Add(s, "bytes fail", arbitrary.Char(),
		property.FromBool(func(byte) bool { return false }))
	AddPair(s, "pairs mixed", arbitrary.MustUint32Range(0, 9), arbitrary.MustUint32Range(0, 9),
		property.FromBool(func(p arbitrary.Pair[uint32, uint32]) bool { return p.First <= p.Second }))
	return s
}

func TestSuite_Run(t *testing.T) {
	s := buildSuite()
	results := s.Run(runner.Params{Seed: 11, Runs: 50})

	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}

	pass := results[0]
	if !pass.Passed() {
		t.Errorf("passing check reported failure: %+v", pass)
	}
	if pass.TotalRuns != 50 {
		t.Errorf("TotalRuns = %d, want 50", pass.TotalRuns)
	}
	if pass.CounterExample != "" {
		t.Errorf("passing check carries counter-example %q", pass.CounterExample)
	}

	fail := results[1]
	if fail.Passed() {
		t.Error("failing check reported success")
	}
	if fail.FirstFailure != 1 {
		t.Errorf("FirstFailure = %d, want 1", fail.FirstFailure)
	}
	if fail.Failures != 50 {
		t.Errorf("Failures = %d, want 50", fail.Failures)
	}
	if fail.FirstFailureKind != "fail" {
		t.Errorf("FirstFailureKind = %q, want fail", fail.FirstFailureKind)
	}
	if fail.CounterExample == "" {
		t.Error("failing check has no counter-example")
	}
}

func TestSuite_PerCheckSeeds(t *testing.T) {
	s := buildSuite()
	results := s.Run(runner.Params{Seed: 100, Runs: 10})

	for i, res := range results {
		want := uint32(100 + i)
		if res.Seed != want {
			t.Errorf("check %d seed = %d, want %d", i, res.Seed, want)
		}
	}
}

func TestSuite_Deterministic(t *testing.T) {
	strip := func(rs []Result) []Result {
		out := make([]Result, len(rs))
		copy(out, rs)
		for i := range out {
			out[i].Elapsed = 0
		}
		return out
	}

	r1 := strip(buildSuite().Run(runner.Params{Seed: 8, Runs: 30}))
	r2 := strip(buildSuite().Run(runner.Params{Seed: 8, Runs: 30}))
	if !reflect.DeepEqual(r1, r2) {
		t.Errorf("same seed produced different suite results:\n%+v\n%+v", r1, r2)
	}
}

func TestSuite_ErrorSurfaced(t *testing.T) {
	s := New("errs", quietLogger())
	exhausting := arbitrary.FilterRetries(arbitrary.Uint32(), func(uint32) bool { return false }, 2)
	Add(s, "exhausts", exhausting, property.FromBool(func(uint32) bool { return true }))

	results := s.Run(runner.Params{Seed: 1, Runs: 5})
	if len(results) != 1 {
		t.Fatalf("got %d results", len(results))
	}
	if results[0].Err == "" {
		t.Error("generation error not surfaced in result")
	}
	if results[0].Passed() {
		t.Error("errored check must not count as passed")
	}
}

func TestResult_Passed(t *testing.T) {
	tests := []struct {
		name string
		res  Result
		want bool
	}{
		{"clean", Result{TotalRuns: 10}, true},
		{"failed", Result{TotalRuns: 10, FirstFailure: 3}, false},
		{"errored", Result{Err: "boom"}, false},
	}
	for _, tc := range tests {
		if got := tc.res.Passed(); got != tc.want {
			t.Errorf("%s: Passed() = %v, want %v", tc.name, got, tc.want)
		}
	}
}
