package arbitrary

import "github.com/shipq/propcheck/random"

// Single is a one-component tuple.
type Single[A any] struct {
	First A
}

// Pair is a two-component tuple.
type Pair[A, B any] struct {
	First  A
	Second B
}

// TupleOf wraps one arbitrary into a one-component tuple arbitrary.
func TupleOf[A any](a Arbitrary[A]) Arbitrary[Single[A]] {
	return FromGenerate(func(src random.Source) (Shrinkable[Single[A]], error) {
		sa, err := a.Generate(src)
		if err != nil {
			return Shrinkable[Single[A]]{}, err
		}
		return Shrinkable[Single[A]]{Value: Single[A]{First: sa.Value}}, nil
	})
}

// PairOf composes two arbitraries into a pair arbitrary. Each Generate
// call draws one value from a, then one value from b, in that order.
func PairOf[A, B any](a Arbitrary[A], b Arbitrary[B]) Arbitrary[Pair[A, B]] {
	return FromGenerate(func(src random.Source) (Shrinkable[Pair[A, B]], error) {
		sa, err := a.Generate(src)
		if err != nil {
			return Shrinkable[Pair[A, B]]{}, err
		}
		sb, err := b.Generate(src)
		if err != nil {
			return Shrinkable[Pair[A, B]]{}, err
		}
		return Shrinkable[Pair[A, B]]{Value: Pair[A, B]{First: sa.Value, Second: sb.Value}}, nil
	})
}
