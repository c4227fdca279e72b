// Package arbitrary provides composable random-value generators.
//
// An Arbitrary[T] knows how to produce one value of type T by consuming
// draws from a random.Source. Arbitraries compose: Map transforms the
// produced value, Filter rejects values until one satisfies a predicate,
// and TupleOf/PairOf bundle several arbitraries into fixed-arity tuples.
//
// Generation is a pure function of the source's draw sequence. Two
// arbitraries with the same structure fed the same stream produce the
// same values, which is what makes failing runs reproducible from a seed.
//
// Basic usage:
//
//	arb := arbitrary.Map(arbitrary.MustUint32Range(1, 6), func(v uint32) int {
//	    return int(v)
//	})
//	s, err := arb.Generate(random.New(seed))
package arbitrary

import (
	"errors"

	"github.com/shipq/propcheck/random"
)

var (
	// ErrInvalidRange is returned when a bounded generator is constructed
	// with min >= max.
	ErrInvalidRange = errors.New("arbitrary: invalid range")

	// ErrExhausted is returned when a filtered generator gives up after its
	// retry budget without producing a value that satisfies the predicate.
	ErrExhausted = errors.New("arbitrary: generator exhausted")
)

// Shrinkable wraps one generated value. It is the unit every arbitrary
// produces, and the place a shrink-candidate sequence will hang off once
// counter-example minimization is implemented.
type Shrinkable[T any] struct {
	Value T
}

// Arbitrary produces values of type T from a random source. The zero value
// is not usable; construct arbitraries with the package functions or with
// FromGenerate.
type Arbitrary[T any] struct {
	generate func(src random.Source) (Shrinkable[T], error)
}

// FromGenerate builds an Arbitrary from a raw generation function. The
// function must derive its value only from the draws it takes from src;
// hidden external state would break replay.
func FromGenerate[T any](gen func(src random.Source) (Shrinkable[T], error)) Arbitrary[T] {
	return Arbitrary[T]{generate: gen}
}

// Generate produces one value, consuming as many draws from src as this
// arbitrary's structure requires.
func (a Arbitrary[T]) Generate(src random.Source) (Shrinkable[T], error) {
	return a.generate(src)
}
