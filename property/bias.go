package property

import (
	"github.com/shipq/propcheck/arbitrary"
	"github.com/shipq/propcheck/runid"
)

// Frequency returns the bias weight for a run: 2 + floor(log10(id)).
// The weight grows by one every decade of runs, so later runs can be
// steered toward rarer values once weighted generation exists.
func Frequency(id runid.ID) uint32 {
	weight := uint32(2)
	for n := uint32(id); n >= 10; n /= 10 {
		weight++
	}
	return weight
}

// withBias is the seam where frequency-weighted generation will plug in.
// It is deliberately a pass-through today: the weight is computed and
// routed here on every run, but no distribution shaping happens yet.
func withBias[T any](arb arbitrary.Arbitrary[T], freq uint32) arbitrary.Arbitrary[T] {
	_ = freq
	return arb
}
