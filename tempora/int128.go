// Copyright 2023 The Tempora Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tempora

// This file implements the 128-bit signed integer underlying Duration.
// Durations count attoseconds, so 64 bits (about 9.2 seconds) are nowhere
// near enough, while 128 bits cover roughly 10 trillion years. The
// representation is a plain two-word value so that Duration stays an
// immutable, comparable value type.
//
// Exceeding the 128-bit range is a programming error, not an expected
// failure mode: every operation that could overflow panics instead of
// returning an error.

import "math/bits"

// An int128 is a 128-bit signed integer in two's complement.
type int128 struct {
	hi int64
	lo uint64
}

var (
	minInt128 = int128{hi: -1 << 63, lo: 0}
	maxInt128 = int128{hi: 1<<63 - 1, lo: ^uint64(0)}
)

func overflow() {
	panic("tempora: duration overflow")
}

// int128Of sign-extends a 64-bit value.
func int128Of(v int64) int128 {
	var hi int64
	if v < 0 {
		hi = -1
	}
	return int128{hi, uint64(v)}
}

func (x int128) sign() int {
	switch {
	case x.hi < 0:
		return -1
	case x.hi == 0 && x.lo == 0:
		return 0
	default:
		return 1
	}
}

func (x int128) isZero() bool { return x.hi == 0 && x.lo == 0 }

func (x int128) cmp(y int128) int {
	switch {
	case x.hi < y.hi:
		return -1
	case x.hi > y.hi:
		return +1
	case x.lo < y.lo:
		return -1
	case x.lo > y.lo:
		return +1
	}
	return 0
}

func (x int128) add(y int128) int128 {
	lo, carry := bits.Add64(x.lo, y.lo, 0)
	hi := x.hi + y.hi + int64(carry)
	// Same-sign operands must produce a same-sign result.
	if (x.hi < 0) == (y.hi < 0) && (hi < 0) != (x.hi < 0) {
		overflow()
	}
	return int128{hi, lo}
}

func (x int128) sub(y int128) int128 {
	lo, borrow := bits.Sub64(x.lo, y.lo, 0)
	hi := x.hi - y.hi - int64(borrow)
	if (x.hi < 0) != (y.hi < 0) && (hi < 0) != (x.hi < 0) {
		overflow()
	}
	return int128{hi, lo}
}

func (x int128) neg() int128 {
	if x == minInt128 {
		overflow()
	}
	lo, borrow := bits.Sub64(0, x.lo, 0)
	return int128{-x.hi - int64(borrow), lo}
}

func (x int128) abs() int128 {
	if x.sign() < 0 {
		return x.neg()
	}
	return x
}

// magnitude returns |x| as an unsigned two-word value. Unlike abs it is
// total: the magnitude of the minimum value is representable.
func (x int128) magnitude() uint128 {
	if x.hi < 0 {
		lo, borrow := bits.Sub64(0, x.lo, 0)
		return uint128{uint64(-x.hi - int64(borrow)), lo}
	}
	return uint128{uint64(x.hi), x.lo}
}

// mul64 multiplies by a 64-bit factor, panicking on overflow.
func (x int128) mul64(y int64) int128 {
	neg := false
	xm := x.magnitude()
	if x.hi < 0 {
		neg = !neg
	}
	var ym uint64
	if y < 0 {
		neg = !neg
		ym = uint64(-y) // -MinInt64 wraps to the correct magnitude
	} else {
		ym = uint64(y)
	}

	carry1, lo := bits.Mul64(xm.lo, ym)
	carry2, mid := bits.Mul64(xm.hi, ym)
	if carry2 != 0 {
		overflow()
	}
	hi, carry := bits.Add64(mid, carry1, 0)
	if carry != 0 {
		overflow()
	}
	return signedFromMagnitude(uint128{hi, lo}, neg)
}

// mul128 multiplies two 128-bit values, panicking if the product does
// not fit in 128 bits.
func mul128(x, y int128) int128 {
	neg := (x.hi < 0) != (y.hi < 0)
	xm, ym := x.magnitude(), y.magnitude()

	if xm.hi != 0 && ym.hi != 0 {
		overflow()
	}
	hi1, lo := bits.Mul64(xm.lo, ym.lo)
	hi2, mid1 := bits.Mul64(xm.hi, ym.lo)
	hi3, mid2 := bits.Mul64(xm.lo, ym.hi)
	if hi2 != 0 || hi3 != 0 {
		overflow()
	}
	hi, carry := bits.Add64(hi1, mid1, 0)
	if carry != 0 {
		overflow()
	}
	hi, carry = bits.Add64(hi, mid2, 0)
	if carry != 0 {
		overflow()
	}
	return signedFromMagnitude(uint128{hi, lo}, neg)
}

// toFloat64 approximates x as a float64.
func toFloat64(x int128) float64 {
	m := x.magnitude()
	f := float64(m.hi)*(1<<64) + float64(m.lo)
	if x.hi < 0 {
		return -f
	}
	return f
}

// quoRem divides x by y, truncating toward zero, and returns the quotient
// and remainder. y must be nonzero.
func (x int128) quoRem(y int128) (q, r int128) {
	qm, rm := x.magnitude().divmod(y.magnitude())
	qNeg := (x.hi < 0) != (y.hi < 0)
	q = signedFromMagnitude(qm, qNeg)
	r = signedFromMagnitude(rm, x.hi < 0)
	return q, r
}

// divFloor divides x by y, rounding toward negative infinity.
func (x int128) divFloor(y int128) int128 {
	q, r := x.quoRem(y)
	if !r.isZero() && (r.sign() < 0) != (y.sign() < 0) {
		q = q.sub(int128Of(1))
	}
	return q
}

// divCeil divides x by y, rounding toward positive infinity.
func (x int128) divCeil(y int128) int128 {
	q, r := x.quoRem(y)
	if !r.isZero() && (r.sign() < 0) == (y.sign() < 0) {
		q = q.add(int128Of(1))
	}
	return q
}

// toInt64 narrows to 64 bits, panicking if the value does not fit.
func (x int128) toInt64() int64 {
	v := int64(x.lo)
	if (v < 0 && x.hi != -1) || (v >= 0 && x.hi != 0) {
		overflow()
	}
	return v
}

func signedFromMagnitude(m uint128, neg bool) int128 {
	if neg {
		if m.hi > 1<<63 || (m.hi == 1<<63 && m.lo != 0) {
			overflow()
		}
		lo, borrow := bits.Sub64(0, m.lo, 0)
		return int128{-int64(m.hi) - int64(borrow), lo}
	}
	if m.hi > 1<<63-1 {
		overflow()
	}
	return int128{int64(m.hi), m.lo}
}

// A uint128 is an unsigned two-word integer, used as scratch space for the
// signed operations above.
type uint128 struct {
	hi, lo uint64
}

func (x uint128) isZero() bool { return x.hi == 0 && x.lo == 0 }

func (x uint128) cmp(y uint128) int {
	switch {
	case x.hi < y.hi:
		return -1
	case x.hi > y.hi:
		return +1
	case x.lo < y.lo:
		return -1
	case x.lo > y.lo:
		return +1
	}
	return 0
}

func (x uint128) shl(n uint) uint128 {
	if n >= 64 {
		return uint128{x.lo << (n - 64), 0}
	}
	if n == 0 {
		return x
	}
	return uint128{x.hi<<n | x.lo>>(64-n), x.lo << n}
}

func (x uint128) sub(y uint128) uint128 {
	lo, borrow := bits.Sub64(x.lo, y.lo, 0)
	return uint128{x.hi - y.hi - borrow, lo}
}

func (x uint128) bitLen() int {
	if x.hi != 0 {
		return 64 + bits.Len64(x.hi)
	}
	return bits.Len64(x.lo)
}

// divmod divides x by y. y must be nonzero.
func (x uint128) divmod(y uint128) (q, r uint128) {
	if y.isZero() {
		panic("tempora: division by zero")
	}
	if y.hi == 0 {
		// Two-step narrow division via bits.Div64.
		if x.hi < y.lo {
			lo, rem := bits.Div64(x.hi, x.lo, y.lo)
			return uint128{0, lo}, uint128{0, rem}
		}
		qhi := x.hi / y.lo
		lo, rem := bits.Div64(x.hi%y.lo, x.lo, y.lo)
		return uint128{qhi, lo}, uint128{0, rem}
	}
	// Wide divisor: shift-and-subtract. The quotient fits in 64 bits, so
	// at most 64 iterations run.
	for shift := x.bitLen() - y.bitLen(); shift >= 0; shift-- {
		if t := y.shl(uint(shift)); x.cmp(t) >= 0 {
			x = x.sub(t)
			q.lo |= 1 << uint(shift)
		}
	}
	return q, x
}
