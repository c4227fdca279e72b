package main

import (
	"log/slog"

	"github.com/shipq/propcheck/arbitrary"
	"github.com/shipq/propcheck/property"
	"github.com/shipq/propcheck/suite"
)

const exampleSuiteName = "propcheck examples"

// exampleSuite exercises the engine end to end: passing checks, a
// precondition, and one deliberately broken property so the report and
// counter-example output have something to show.
func exampleSuite(logger *slog.Logger) *suite.Suite {
	s := suite.New(exampleSuiteName, logger)

	suite.Add(s, "xor is its own inverse", arbitrary.Uint32(),
		property.FromBool(func(v uint32) bool {
			return v^0xA5A5A5A5^0xA5A5A5A5 == v
		}))

	suite.Add(s, "bounded dice stay on the table", arbitrary.MustUint32Range(1, 6),
		property.FromBool(func(v uint32) bool {
			return v >= 1 && v <= 6
		}))

	suite.Add(s, "negation flips the sign of nonzero ints", arbitrary.Int32(),
		property.WithPrecondition(
			func(v int32) bool { return v != 0 && v != -2147483648 },
			property.FromBool(func(v int32) bool { return (v > 0) != (-v > 0) }),
		))

	suite.Add(s, "filtered evens are even", arbitrary.Filter(arbitrary.Uint32(),
		func(v uint32) bool { return v%2 == 0 }),
		property.FromBool(func(v uint32) bool { return v%2 == 0 }))

	suite.AddPair(s, "pairs draw from both components",
		arbitrary.MustUint32Range(0, 999), arbitrary.Char(),
		property.FromBool(func(p arbitrary.Pair[uint32, byte]) bool {
			return p.First <= 999
		}))

	// Deliberately false: addition over bytes overflows. Expect a
	// counter-example in the summary.
	suite.AddPair(s, "byte addition never overflows (broken on purpose)",
		arbitrary.Char(), arbitrary.Char(),
		property.FromBool(func(p arbitrary.Pair[byte, byte]) bool {
			return int(p.First)+int(p.Second) == int(p.First+p.Second)
		}))

	return s
}
