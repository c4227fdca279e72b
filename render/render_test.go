package render

import (
	"strings"
	"testing"
	"time"

	"github.com/shipq/propcheck/suite"
)

func TestRow_Pass(t *testing.T) {
	row := Row(suite.Result{Name: "adds up", TotalRuns: 100, Elapsed: time.Millisecond})

	if !strings.Contains(row, "adds up") {
		t.Errorf("row missing check name: %q", row)
	}
	if !strings.Contains(row, "100 runs") {
		t.Errorf("row missing run count: %q", row)
	}
}

func TestRow_Fail(t *testing.T) {
	row := Row(suite.Result{
		Name:             "breaks",
		Seed:             42,
		TotalRuns:        50,
		Failures:         7,
		FirstFailure:     3,
		FirstFailureKind: "fail",
		CounterExample:   "{First:9 Second:1}",
	})

	for _, want := range []string{"breaks", "7/50", "run 3", "seed 42", "{First:9 Second:1}"} {
		if !strings.Contains(row, want) {
			t.Errorf("failure row missing %q: %q", want, row)
		}
	}
}

func TestRow_Error(t *testing.T) {
	row := Row(suite.Result{Name: "sick", Err: "generator exhausted"})
	if !strings.Contains(row, "generator exhausted") {
		t.Errorf("error row missing message: %q", row)
	}
}

func TestSummary(t *testing.T) {
	results := []suite.Result{
		{Name: "ok", TotalRuns: 10},
		{Name: "bad", TotalRuns: 10, Failures: 2, FirstFailure: 1, FirstFailureKind: "fail", CounterExample: "0"},
		{Name: "sick", Err: "boom"},
	}

	out := Summary("demo suite", results)
	for _, want := range []string{"demo suite", "ok", "bad", "sick", "3 checks, 1 failed, 1 errored"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}
