package u128

import "github.com/sociomantic-tsunami/ebtree/internal/bitops"

// Uint128 is an unsigned 128-bit integer, most significant half first. Go
// has no native 128-bit integer, so this package implements its own
// descent arithmetic rather than sharing internal/inttree's generic
// engine.
type Uint128 struct {
	Hi, Lo uint64
}

// Xor returns a XOR b.
func (a Uint128) Xor(b Uint128) Uint128 {
	return Uint128{Hi: a.Hi ^ b.Hi, Lo: a.Lo ^ b.Lo}
}

// Equal reports whether a == b.
func (a Uint128) Equal(b Uint128) bool { return a.Hi == b.Hi && a.Lo == b.Lo }

// Less reports whether a < b.
func (a Uint128) Less(b Uint128) bool {
	if a.Hi != b.Hi {
		return a.Hi < b.Hi
	}
	return a.Lo < b.Lo
}

// Shr returns a shifted right by n bits, for 0 <= n <= 128.
func (a Uint128) Shr(n uint) Uint128 {
	switch {
	case n == 0:
		return a
	case n < 64:
		return Uint128{Hi: a.Hi >> n, Lo: (a.Lo >> n) | (a.Hi << (64 - n))}
	case n < 128:
		return Uint128{Lo: a.Hi >> (n - 64)}
	default:
		return Uint128{}
	}
}

// bit returns bit n (0 = least significant) of a.
func (a Uint128) bit(n uint) uint64 { return a.Shr(n).Lo & 1 }

// ge2 reports whether a >= 2, i.e. whether a has any bit set above bit 0.
func (a Uint128) ge2() bool { return a.Hi != 0 || a.Lo >= 2 }

// fls returns one plus the position of a's highest set bit, or 0 if a is
// zero.
func (a Uint128) fls() int { return bitops.Fls128(a.Hi, a.Lo) }
