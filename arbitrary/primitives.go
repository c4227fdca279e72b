package arbitrary

import (
	"fmt"

	"github.com/shipq/propcheck/random"
)

// Uint32 returns an arbitrary producing the full unsigned 32-bit range.
// Consumes exactly one draw per value.
func Uint32() Arbitrary[uint32] {
	return FromGenerate(func(src random.Source) (Shrinkable[uint32], error) {
		return Shrinkable[uint32]{Value: src.NextUint32()}, nil
	})
}

// Int32 returns an arbitrary producing the full signed 32-bit range, by
// reinterpreting one raw draw as two's-complement. Consumes exactly one
// draw per value.
func Int32() Arbitrary[int32] {
	return FromGenerate(func(src random.Source) (Shrinkable[int32], error) {
		return Shrinkable[int32]{Value: random.NextInt32(src)}, nil
	})
}

// Uint32Range returns an arbitrary producing values uniformly over
// [min, max] inclusive, via min + draw mod (max-min+1). It requires
// min < max and fails with ErrInvalidRange before any generation otherwise.
//
// The modulo reduction introduces a small bias when the span does not
// evenly divide 2^32. Accepted as a known limitation.
func Uint32Range(min, max uint32) (Arbitrary[uint32], error) {
	if min >= max {
		return Arbitrary[uint32]{}, fmt.Errorf("%w: min %d must be < max %d", ErrInvalidRange, min, max)
	}
	span := max - min + 1 // wraps to 0 for the full range, meaning "no reduction"
	return FromGenerate(func(src random.Source) (Shrinkable[uint32], error) {
		draw := src.NextUint32()
		if span != 0 {
			draw %= span
		}
		return Shrinkable[uint32]{Value: min + draw}, nil
	}), nil
}

// MustUint32Range is like Uint32Range but panics on an invalid range.
// Use it for ranges known at compile time.
func MustUint32Range(min, max uint32) Arbitrary[uint32] {
	arb, err := Uint32Range(min, max)
	if err != nil {
		panic("arbitrary: MustUint32Range: " + err.Error())
	}
	return arb
}

// Char returns an arbitrary producing a single byte in [0, 255], built as
// a bounded draw mapped to a byte. Consumes exactly one draw per value.
func Char() Arbitrary[byte] {
	return Map(MustUint32Range(0, 255), func(v uint32) byte {
		return byte(v)
	})
}
