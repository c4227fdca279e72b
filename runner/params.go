package runner

import (
	"errors"
	"fmt"

	"github.com/shipq/propcheck/random"
)

// DefaultRuns is the run budget used when Params.Runs is left zero.
const DefaultRuns = 10

// ErrInvalidRuns is returned when a session is configured with a negative
// run budget.
var ErrInvalidRuns = errors.New("runner: runs must be >= 1")

// Params configures one checking session.
type Params struct {
	// Seed keys the random stream. Ignored when Source is set.
	Seed uint32

	// Source supplies the random stream directly. When nil, a stream is
	// derived from Seed. The session takes exclusive ownership of the
	// source for its whole duration.
	Source random.Source

	// Runs is the number of generate-and-evaluate cycles. The session
	// always executes the full budget, even after failures. Zero means
	// DefaultRuns; negative is invalid.
	Runs int
}

// normalize fills defaults and validates, returning the effective source
// and run budget.
func (p Params) normalize() (random.Source, int, error) {
	if p.Runs < 0 {
		return nil, 0, fmt.Errorf("%w: got %d", ErrInvalidRuns, p.Runs)
	}
	runs := p.Runs
	if runs == 0 {
		runs = DefaultRuns
	}
	src := p.Source
	if src == nil {
		src = random.New(p.Seed)
	}
	return src, runs, nil
}
