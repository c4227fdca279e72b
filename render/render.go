// Package render formats suite results for terminals. It is presentation
// only: every report field is shown losslessly, nothing here feeds back
// into checking.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/shipq/propcheck/suite"
)

var (
	passStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#50FA7B"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555")).Bold(true)
	precondStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F1FA8C"))
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF79C6")).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6272A4"))
	headerStyle  = lipgloss.NewStyle().Bold(true)
)

// Row formats one result as a single line.
func Row(res suite.Result) string {
	switch {
	case res.Err != "":
		return fmt.Sprintf("%s %s %s",
			errStyle.Render("!"), res.Name, errStyle.Render("error: "+res.Err))
	case res.Passed():
		return fmt.Sprintf("%s %s %s",
			passStyle.Render("✓"), res.Name,
			dimStyle.Render(fmt.Sprintf("%d runs in %s", res.TotalRuns, res.Elapsed)))
	default:
		style := failStyle
		if res.FirstFailureKind == "precondition-fail" {
			style = precondStyle
		}
		return fmt.Sprintf("%s %s %s\n    %s\n    %s",
			style.Render("✗"), res.Name,
			dimStyle.Render(fmt.Sprintf("%d/%d runs failed in %s", res.Failures, res.TotalRuns, res.Elapsed)),
			style.Render(fmt.Sprintf("first %s on run %d (seed %d)", res.FirstFailureKind, res.FirstFailure, res.Seed)),
			"counter-example: "+res.CounterExample)
	}
}

// Summary formats a whole suite run: a header, one row per result, and a
// pass/fail footer.
func Summary(suiteName string, results []suite.Result) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(suiteName) + "\n")

	failed, errored := 0, 0
	for _, res := range results {
		b.WriteString(Row(res) + "\n")
		if res.Err != "" {
			errored++
		} else if !res.Passed() {
			failed++
		}
	}

	footer := fmt.Sprintf("%d checks, %d failed, %d errored", len(results), failed, errored)
	if failed == 0 && errored == 0 {
		b.WriteString(passStyle.Render(footer))
	} else {
		b.WriteString(failStyle.Render(footer))
	}
	b.WriteString("\n")
	return b.String()
}
