// Package uint128 provides a 128-bit unsigned integer that splits into the
// two 64-bit halves a 64-bit value stack can hold. Wide arithmetic results
// are pushed as an upper and a lower word and recombined by the law
// Hi64*2^64 + Lo64 == x.
package uint128

import (
	"fmt"
	"math/big"
	"math/bits"
)

// Uint128 is an unsigned 128-bit integer with value semantics. The zero
// value is 0.
type Uint128 struct {
	hi uint64
	lo uint64
}

// New builds a Uint128 from its upper and lower 64-bit words.
func New(hi, lo uint64) Uint128 {
	return Uint128{hi: hi, lo: lo}
}

// From64 widens a 64-bit value.
func From64(v uint64) Uint128 {
	return Uint128{lo: v}
}

// Lo64 returns x mod 2^64, the low-order word.
func (x Uint128) Lo64() uint64 {
	return x.lo
}

// Hi64 returns x div 2^64, the high-order word.
func (x Uint128) Hi64() uint64 {
	return x.hi
}

// Mul64 returns the full 128-bit product of two 64-bit values.
func Mul64(a, b uint64) Uint128 {
	hi, lo := bits.Mul64(a, b)
	return Uint128{hi: hi, lo: lo}
}

// Add64 returns the full 128-bit sum of two 64-bit values.
func Add64(a, b uint64) Uint128 {
	lo, carry := bits.Add64(a, b, 0)
	return Uint128{hi: carry, lo: lo}
}

// Add returns x + y mod 2^128.
func (x Uint128) Add(y Uint128) Uint128 {
	lo, carry := bits.Add64(x.lo, y.lo, 0)
	hi, _ := bits.Add64(x.hi, y.hi, carry)
	return Uint128{hi: hi, lo: lo}
}

// Cmp returns -1, 0, or 1 according to whether x is less than, equal to, or
// greater than y.
func (x Uint128) Cmp(y Uint128) int {
	switch {
	case x.hi < y.hi:
		return -1
	case x.hi > y.hi:
		return 1
	case x.lo < y.lo:
		return -1
	case x.lo > y.lo:
		return 1
	default:
		return 0
	}
}

// IsZero reports whether x is 0.
func (x Uint128) IsZero() bool {
	return x.hi == 0 && x.lo == 0
}

// Big returns x as a big.Int.
func (x Uint128) Big() *big.Int {
	b := new(big.Int).SetUint64(x.hi)
	b.Lsh(b, 64)
	return b.Or(b, new(big.Int).SetUint64(x.lo))
}

// FromBig converts a big.Int to a Uint128. Negative values and values wider
// than 128 bits are rejected.
func FromBig(b *big.Int) (Uint128, error) {
	if b.Sign() < 0 {
		return Uint128{}, fmt.Errorf("value %s is negative", b)
	}
	if b.BitLen() > 128 {
		return Uint128{}, fmt.Errorf("value %s does not fit in 128 bits", b)
	}
	lo := new(big.Int).And(b, new(big.Int).SetUint64(^uint64(0)))
	hi := new(big.Int).Rsh(b, 64)
	return Uint128{hi: hi.Uint64(), lo: lo.Uint64()}, nil
}

// String returns the decimal representation of x.
func (x Uint128) String() string {
	return x.Big().String()
}
