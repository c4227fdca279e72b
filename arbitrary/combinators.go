package arbitrary

import (
	"fmt"

	"github.com/shipq/propcheck/random"
)

// DefaultFilterRetries is the retry budget used by Filter. After this many
// rejected values in a single Generate call the filter gives up with
// ErrExhausted instead of looping forever on an unsatisfiable predicate.
const DefaultFilterRetries = 1000

// Map returns an arbitrary that generates an upstream value and applies f
// to it. It makes exactly one upstream Generate call per Generate call, so
// it consumes exactly the randomness the upstream does.
func Map[T, U any](a Arbitrary[T], f func(T) U) Arbitrary[U] {
	return FromGenerate(func(src random.Source) (Shrinkable[U], error) {
		s, err := a.Generate(src)
		if err != nil {
			return Shrinkable[U]{}, err
		}
		return Shrinkable[U]{Value: f(s.Value)}, nil
	})
}

// Filter returns an arbitrary that regenerates upstream values until pred
// holds, each retry consuming fresh randomness. It gives up after
// DefaultFilterRetries attempts with ErrExhausted.
func Filter[T any](a Arbitrary[T], pred func(T) bool) Arbitrary[T] {
	return FilterRetries(a, pred, DefaultFilterRetries)
}

// FilterRetries is Filter with an explicit retry budget. maxRetries must
// be >= 1; smaller values are treated as 1.
func FilterRetries[T any](a Arbitrary[T], pred func(T) bool, maxRetries int) Arbitrary[T] {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return FromGenerate(func(src random.Source) (Shrinkable[T], error) {
		for i := 0; i < maxRetries; i++ {
			s, err := a.Generate(src)
			if err != nil {
				return Shrinkable[T]{}, err
			}
			if pred(s.Value) {
				return s, nil
			}
		}
		return Shrinkable[T]{}, fmt.Errorf("%w: predicate not satisfied after %d attempts", ErrExhausted, maxRetries)
	})
}
