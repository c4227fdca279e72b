// Package random provides the deterministic number stream that feeds value
// generation. The engine treats the stream as opaque: it only ever asks for
// the next 32 bits, and reproducing a session means reproducing the exact
// sequence of draws, not just the seed.
package random

// Source is a deterministic stream of 32-bit values keyed by a seed.
// Every call to NextUint32 advances the internal state, so the number and
// order of calls is semantically significant.
type Source interface {
	NextUint32() uint32
}

// NextInt32 reinterprets the next 32 bits of the stream as a signed
// two's-complement integer. It consumes exactly one draw.
func NextInt32(s Source) int32 {
	return int32(s.NextUint32())
}

// xorshift is a 32-bit xorshift generator. The state must never be zero,
// so seeds are scrambled through a splitmix-style mixer first.
type xorshift struct {
	state uint32
}

// New creates a deterministic Source from the given seed. The same seed
// always yields the same stream. Seed 0 is valid.
func New(seed uint32) Source {
	return &xorshift{state: mix(seed)}
}

func (x *xorshift) NextUint32() uint32 {
	s := x.state
	s ^= s << 13
	s ^= s >> 17
	s ^= s << 5
	x.state = s
	return s
}

// mix scrambles a seed into a non-zero initial state.
func mix(seed uint32) uint32 {
	z := seed + 0x9e3779b9
	z = (z ^ (z >> 16)) * 0x21f0aaad
	z = (z ^ (z >> 15)) * 0x735a2d97
	z = z ^ (z >> 15)
	if z == 0 {
		z = 0x9e3779b9
	}
	return z
}

// Counting wraps a Source and counts how many draws pass through it.
// Used to verify that combinators consume exactly the randomness they
// promise to.
type Counting struct {
	src   Source
	draws int
}

// NewCounting wraps src with a draw counter.
func NewCounting(src Source) *Counting {
	return &Counting{src: src}
}

func (c *Counting) NextUint32() uint32 {
	c.draws++
	return c.src.NextUint32()
}

// Draws returns the number of draws consumed so far.
func (c *Counting) Draws() int {
	return c.draws
}
