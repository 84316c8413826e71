// Package field implements modular arithmetic over the Goldilocks prime
// p = 2^64 - 2^32 + 1 and its quadratic extension, the arithmetic
// primitive the rest of this module is built on.
package field

import (
	"fmt"
	"math/bits"
)

// Order is the Goldilocks prime p = 2^64 - 2^32 + 1.
const Order uint64 = 0xFFFFFFFF00000001

// epsilon is 2^64 - p = 2^32 - 1, used in the fast reduction below.
const epsilon uint64 = (1 << 32) - 1

// TwoAdicity is the largest k such that 2^k divides p-1.
const TwoAdicity = 32

// Element is a residue class mod Order. It may be weakly reduced, i.e. in
// [0, 2^64), rather than canonical, i.e. in [0, Order). Equality, hashing
// and any value that leaves this package must go through ToCanonicalUint64.
type Element uint64

// Zero, One, Two and NegOne are canonical constants.
var (
	Zero   = Element(0)
	One    = Element(1)
	Two    = Element(2)
	NegOne = Element(Order - 1)
)

// Generator is a generator of the field's multiplicative group.
var Generator = Element(5)

// PowerOfTwoGenerator is a generator of the unique subgroup of order 2^TwoAdicity.
var PowerOfTwoGenerator = Element(10281950781551402419)

// FromCanonicalUint64 wraps an already-reduced u64 as a field element.
// The caller is responsible for n < Order; use New for untrusted input.
func FromCanonicalUint64(n uint64) Element {
	return Element(n)
}

// New reduces an arbitrary u64 into a canonical field element.
func New(n uint64) Element {
	if n >= Order {
		return Element(n - Order)
	}
	return Element(n)
}

// ToCanonicalUint64 returns the unique representative in [0, Order).
// At most one subtraction suffices because every Element constructed
// by this package's operations stays below 2*Order.
func (e Element) ToCanonicalUint64() uint64 {
	c := uint64(e)
	if c >= Order {
		c -= Order
	}
	return c
}

// IsZero reports whether e is the additive identity, in either representation.
func (e Element) IsZero() bool {
	return e.ToCanonicalUint64() == 0
}

// Equal compares two elements on their canonical form.
func (e Element) Equal(other Element) bool {
	return e.ToCanonicalUint64() == other.ToCanonicalUint64()
}

// String renders the canonical decimal representation.
func (e Element) String() string {
	return fmt.Sprintf("%d", e.ToCanonicalUint64())
}

// Add computes e + other mod p. Inputs may be weakly reduced; the 65-bit
// carry out of the raw u64 addition is the signal that a subtraction of
// Order is owed, because 2^64 ≡ epsilon (mod p). With weakly reduced
// inputs that correction can itself carry once more.
func (e Element) Add(other Element) Element {
	sum := uint64(e) + uint64(other)
	if sum < uint64(e) {
		// carry out of bit 63: sum (mod 2^64) + 2^64 ≡ sum + epsilon (mod p)
		sum += epsilon
		if sum < epsilon {
			// the correction carried as well; the result is now < 2^33
			sum += epsilon
		}
	}
	return Element(sum)
}

// Sub computes e - other mod p.
func (e Element) Sub(other Element) Element {
	b := other.ToCanonicalUint64()
	diff := uint64(e) - b
	if b > uint64(e) {
		diff -= epsilon
	}
	return Element(diff)
}

// Neg computes -e mod p.
func (e Element) Neg() Element {
	if e.IsZero() {
		return Zero
	}
	return Element(Order - e.ToCanonicalUint64())
}

// Mul computes e * other mod p via a 128-bit product and the Goldilocks
// fast reduction (split the product into hi/lo 64-bit halves, then split
// hi again at the 32-bit boundary).
func (e Element) Mul(other Element) Element {
	hi, lo := bits.Mul64(uint64(e), uint64(other))
	return reduce128(hi, lo)
}

// Square computes e^2 mod p.
func (e Element) Square() Element {
	return e.Mul(e)
}

// Cube computes e^3 mod p.
func (e Element) Cube() Element {
	return e.Mul(e).Mul(e)
}

// reduce128 folds a 128-bit value (hi*2^64 + lo) into a (possibly weakly
// reduced) field element. Derivation: 2^64 ≡ epsilon (mod p), so
// hi*2^64 ≡ hi*epsilon = hi*(2^32-1). Writing hi = hihi*2^32 + hilo gives
// hi*(2^32-1) = (hihi*2^32+hilo)*2^32 - hihi*2^32 - hilo
//
//	= hihi*2^64 + hilo*2^32 - hihi*2^32 - hilo
//	≡ hihi*epsilon + hilo*2^32 - hihi*2^32 - hilo   (reducing hihi*2^64 again)
//
// which is the same shape one level down; the classical Goldilocks trick
// stops one level early and returns lo + (hilo<<32) - hilo - hihi, a value
// in [0, 2^64) congruent to lo + hi*2^64 (mod p). It may exceed p.
// It is evaluated as (lo - hihi) + hilo*epsilon: a borrow out of the
// subtraction is corrected by subtracting epsilon, and a carry out of the
// addition by adding epsilon, so no multiple of 2^64 is silently dropped.
func reduce128(hi, lo uint64) Element {
	const mask32 = (1 << 32) - 1
	hihi := hi >> 32
	hilo := hi & mask32
	t0, borrow := bits.Sub64(lo, hihi, 0)
	if borrow != 0 {
		t0 -= epsilon // t0 >= 2^64 - 2^32 + 1 here, so this cannot underflow
	}
	result, carry := bits.Add64(t0, hilo*epsilon, 0)
	if carry != 0 {
		result += epsilon // result < 2^64 - 2^33 here, so this cannot overflow
	}
	return Element(result)
}

// TryInverse returns the multiplicative inverse of e, or ErrNoInverse if e
// is zero. It implements Algorithm 16 of "Efficient Software-Implementation
// of Finite Fields with Applications to Cryptography" (binary extended GCD).
func (e Element) TryInverse() (Element, error) {
	if e.IsZero() {
		return Zero, ErrNoInverse
	}

	p := Order
	u := e.ToCanonicalUint64()
	v := p
	b := uint64(1)
	c := uint64(0)

	for u != 1 && v != 1 {
		for u%2 == 0 {
			u /= 2
			if b%2 == 0 {
				b /= 2
			} else {
				b = b/2 + p/2 + 1
			}
		}
		for v%2 == 0 {
			v /= 2
			if c%2 == 0 {
				c /= 2
			} else {
				c = c/2 + p/2 + 1
			}
		}
		if u >= v {
			u -= v
			if b >= c {
				b -= c
			} else {
				b = b - c + p
			}
		} else {
			v -= u
			if c >= b {
				c -= b
			} else {
				c = c - b + p
			}
		}
	}

	var inv Element
	if u == 1 {
		inv = Element(b)
	} else {
		inv = Element(c)
	}

	assertInverse(e, inv)
	return inv, nil
}

// CubeRoot computes e^((2p-1)/3), the cube root exponent for this field.
// The addition chain below is load-bearing: it encodes the exact bit
// pattern of that exponent and is not a general exponentiation routine.
func (e Element) CubeRoot() Element {
	x0 := e
	x1 := x0.Square()
	x2 := x1.Square()
	x3 := x2.Mul(x0)
	x4 := x3.Square()
	x5 := x4.Square()
	x7 := x5.Square()
	x8 := x7.Square()
	x9 := x8.Square()
	x10 := x9.Square()
	x11 := x10.Mul(x5)
	x12 := x11.Square()
	x13 := x12.Square()
	x14 := x13.Square()
	x16 := x14.Square()
	x17 := x16.Square()
	x18 := x17.Square()
	x19 := x18.Square()
	x20 := x19.Square()
	x21 := x20.Mul(x11)
	x22 := x21.Square()
	x23 := x22.Square()
	x24 := x23.Square()
	x25 := x24.Square()
	x26 := x25.Square()
	x27 := x26.Square()
	x28 := x27.Square()
	x29 := x28.Square()
	x30 := x29.Square()
	x31 := x30.Square()
	x32 := x31.Square()
	x33 := x32.Mul(x14)
	x34 := x33.Mul(x3)
	x35 := x34.Square()
	x36 := x35.Mul(x34)
	x37 := x36.Mul(x5)
	x38 := x37.Mul(x34)
	x39 := x38.Mul(x37)
	x40 := x39.Square()
	x41 := x40.Square()
	x42 := x41.Mul(x38)
	x43 := x42.Square()
	x44 := x43.Square()
	x45 := x44.Square()
	x46 := x45.Square()
	x47 := x46.Square()
	x48 := x47.Square()
	x49 := x48.Square()
	x50 := x49.Square()
	x51 := x50.Square()
	x52 := x51.Square()
	x53 := x52.Square()
	x54 := x53.Square()
	x55 := x54.Square()
	x56 := x55.Square()
	x57 := x56.Square()
	x58 := x57.Square()
	x59 := x58.Square()
	x60 := x59.Square()
	x61 := x60.Square()
	x62 := x61.Square()
	x63 := x62.Square()
	x64 := x63.Square()
	x65 := x64.Square()
	x66 := x65.Square()
	x67 := x66.Square()
	x68 := x67.Square()
	x69 := x68.Square()
	x70 := x69.Square()
	x71 := x70.Square()
	x72 := x71.Square()
	x73 := x72.Square()
	x74 := x73.Mul(x39)
	return x74
}
