// Package runid numbers the runs of a checking session. Run ids start at 1
// and increase monotonically within a session; id 0 is reserved to mean
// "no run / unspecified".
package runid

// ID identifies one run within a session. A valid ID is always >= 1.
type ID uint32

// Possible is either a run ID or Unspecified. It is used where a run ID may
// not have been assigned yet: bias requests before the first run, and report
// fields before any run or failure has happened.
type Possible uint32

// Unspecified is the "no run yet" value of Possible.
const Unspecified Possible = 0

// Possible converts a valid ID into its Possible form.
func (id ID) Possible() Possible {
	return Possible(id)
}

// Specified reports whether p carries an actual run ID.
func (p Possible) Specified() bool {
	return p != Unspecified
}

// ID returns the run ID carried by p. It panics if p is Unspecified;
// callers must check Specified first.
func (p Possible) ID() ID {
	if p == Unspecified {
		panic("runid: ID() called on unspecified value")
	}
	return ID(p)
}

// Sequence hands out run ids for one session, starting at 1. Each session
// owns its own Sequence; there is no process-wide counter.
type Sequence struct {
	last ID
}

// Next returns the next run ID in the session.
func (s *Sequence) Next() ID {
	s.last++
	return s.last
}

// Last returns the most recently issued ID, or 0 if none was issued yet.
func (s *Sequence) Last() ID {
	return s.last
}
