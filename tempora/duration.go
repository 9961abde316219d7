// Copyright 2023 The Tempora Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tempora

import "strings"

// A Duration is the difference between two time points, stored as a
// 128-bit count of attoseconds. That gives a representable range of
// roughly 10 trillion years at attosecond resolution, which should be
// sufficient for most purposes.
//
// Duration is a comparable value type: == and map keys work, and the
// zero value is the zero duration. The type is intended for
// calculation; applications storing large numbers of durations may
// prefer a narrower representation of their own.
//
// A Duration may be multiplied or divided by dimensionless integers,
// but never by another Duration; dividing one Duration by another
// yields a dimensionless quotient instead.
type Duration struct {
	v int128
}

// Unit constructors. Each multiplies the count by the unit's fixed
// attosecond ratio and panics if the product leaves the 128-bit range.

func Attoseconds(count int64) Duration  { return Of(count, Atto) }
func Femtoseconds(count int64) Duration { return Of(count, Femto) }
func Picoseconds(count int64) Duration  { return Of(count, Pico) }
func Microseconds(count int64) Duration { return Of(count, Micro) }
func Nanoseconds(count int64) Duration  { return Of(count, Nano) }
func Milliseconds(count int64) Duration { return Of(count, Milli) }
func Seconds(count int64) Duration      { return Of(count, Second) }
func Minutes(count int64) Duration      { return Of(count, Minute) }
func Hours(count int64) Duration        { return Of(count, Hour) }
func Days(count int64) Duration         { return Of(count, Day) }
func Weeks(count int64) Duration        { return Of(count, Week) }

// Months returns a duration of count average months, each exactly one
// twelfth of an average Gregorian year. This is a fixed ratio, not a
// calendar month.
func Months(count int64) Duration { return Of(count, Month) }

// Years returns a duration of count average Gregorian years of exactly
// 31,556,952 seconds each. This is a fixed ratio, not a calendar year.
func Years(count int64) Duration { return Of(count, Year) }

// Of returns a duration of count times the given unit.
func Of(count int64, u Unit) Duration {
	return Duration{u.ratio().mul64(count)}
}

func (d Duration) Add(other Duration) Duration { return Duration{d.v.add(other.v)} }
func (d Duration) Sub(other Duration) Duration { return Duration{d.v.sub(other.v)} }
func (d Duration) Neg() Duration               { return Duration{d.v.neg()} }
func (d Duration) Abs() Duration               { return Duration{d.v.abs()} }

// Mul multiplies by a dimensionless integer.
func (d Duration) Mul(n int64) Duration { return Duration{d.v.mul64(n)} }

// DivRound divides by a dimensionless integer, rounding to the nearest
// result by adding half the divisor before the truncating division.
func (d Duration) DivRound(n int64) Duration {
	q, _ := d.v.add(int128Of(n / 2)).quoRem(int128Of(n))
	return Duration{q}
}

// Div divides one duration by another, yielding the truncated
// dimensionless quotient. It panics if the quotient does not fit in 64
// bits or if other is zero.
func (d Duration) Div(other Duration) int64 {
	q, _ := d.v.quoRem(other.v)
	return q.toInt64()
}

func (d Duration) Sign() int        { return d.v.sign() }
func (d Duration) IsZero() bool     { return d.v.isZero() }
func (d Duration) IsNegative() bool { return d.v.sign() < 0 }
func (d Duration) IsPositive() bool { return d.v.sign() > 0 }

// Compare returns -1, 0, or +1 according to whether d is shorter than,
// equal to, or longer than other.
func (d Duration) Compare(other Duration) int { return d.v.cmp(other.v) }

func (d Duration) Less(other Duration) bool { return d.v.cmp(other.v) < 0 }

// Round rounds to the nearest whole multiple of the unit. Ties are
// resolved by adding half the unit ratio before truncating, which
// rounds ties up for positive values and is asymmetric for negative
// ones, matching integer truncation semantics.
func (d Duration) Round(u Unit) Duration {
	ratio := u.ratio()
	half, _ := ratio.quoRem(int128Of(2))
	q, _ := d.v.add(half).quoRem(ratio)
	return Duration{mul128(q, ratio)}
}

// Ceil rounds toward positive infinity to a whole multiple of the unit.
func (d Duration) Ceil(u Unit) Duration {
	ratio := u.ratio()
	return Duration{mul128(d.v.divCeil(ratio), ratio)}
}

// Floor rounds toward negative infinity to a whole multiple of the unit.
func (d Duration) Floor(u Unit) Duration {
	ratio := u.ratio()
	return Duration{mul128(d.v.divFloor(ratio), ratio)}
}

// Truncate rounds toward zero to a whole multiple of the unit.
func (d Duration) Truncate(u Unit) Duration {
	ratio := u.ratio()
	q, _ := d.v.quoRem(ratio)
	return Duration{mul128(q, ratio)}
}

// FactorOut splits the duration into the largest whole number of the
// given unit plus a remainder, such that
//
//	Of(whole, u).Add(remainder) == d  and  |remainder| < one u.
//
// Factoring out days of an elapsed time, for example, yields the whole
// day count and the fractional day that remains.
func (d Duration) FactorOut(u Unit) (whole int64, remainder Duration) {
	truncated := d.Truncate(u)
	remainder = d.Sub(truncated)
	q, _ := truncated.v.quoRem(u.ratio())
	return q.toInt64(), remainder
}

// Float64In approximates the duration as a floating-point count of the
// given unit. The integer quotient is extracted first so that only the
// fractional part is subject to floating-point rounding.
func (d Duration) Float64In(u Unit) float64 {
	q, r := d.v.quoRem(u.ratio())
	return toFloat64(q) + toFloat64(r)/toFloat64(u.ratio())
}

// maxFractionalDigits bounds digit extraction to guarantee termination;
// its exact value carries no meaning beyond that.
const maxFractionalDigits = 64

// FractionalDigits returns the digits of the sub-second part of |d| in
// the given base, most significant first. If precision is negative,
// digits are produced until the remainder is exhausted; otherwise
// exactly precision digits are produced, zero-padded if need be. The
// digit count is capped at 64 in either case.
func (d Duration) FractionalDigits(precision, base int) []uint8 {
	_, rem := d.v.abs().quoRem(int128Of(attosPerSecond))
	n := precision
	if n < 0 || n > maxFractionalDigits {
		n = maxFractionalDigits
	}
	digits := make([]uint8, 0, n)
	for i := 0; i < n; i++ {
		if precision < 0 && rem.isZero() {
			break
		}
		rem = rem.mul64(int64(base))
		var q int128
		q, rem = rem.quoRem(int128Of(attosPerSecond))
		digits = append(digits, uint8(q.toInt64()))
	}
	return digits
}

// DecimalDigits returns the decimal sub-second digits of |d|; see
// FractionalDigits.
func (d Duration) DecimalDigits(precision int) []uint8 {
	return d.FractionalDigits(precision, 10)
}

// String renders the duration in ISO-8601 form, such as
// "P2DT3H4M5.25S", with as many fractional digits as needed. A
// negative duration carries a leading minus sign.
func (d Duration) String() string {
	return d.Format(-1)
}

// Format renders the duration like String but with the fractional part
// limited to the given number of digits. A negative precision means
// "as many digits as needed".
func (d Duration) Format(precision int) string {
	var b strings.Builder
	if d.IsNegative() {
		b.WriteByte('-')
	}
	days, rem := d.FactorOut(Day)
	hours, rem := rem.FactorOut(Hour)
	minutes, rem := rem.FactorOut(Minute)
	seconds, rem := rem.FactorOut(Second)

	b.WriteByte('P')
	if days != 0 {
		writeUint(&b, days)
		b.WriteByte('D')
	}
	b.WriteByte('T')
	if hours != 0 {
		writeUint(&b, hours)
		b.WriteByte('H')
	}
	if minutes != 0 {
		writeUint(&b, minutes)
		b.WriteByte('M')
	}
	if seconds != 0 || !rem.IsZero() {
		writeUint(&b, seconds)
		if !rem.IsZero() {
			b.WriteByte('.')
			for _, digit := range rem.DecimalDigits(precision) {
				b.WriteByte('0' + digit)
			}
		}
		b.WriteByte('S')
	}
	return b.String()
}

func writeUint(b *strings.Builder, v int64) {
	if v < 0 {
		v = -v
	}
	var buf [20]byte
	i := len(buf)
	for {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
		if v == 0 {
			break
		}
	}
	b.Write(buf[i:])
}

