// Copyright 2023 The Tempora Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

// This file implements the proleptic Gregorian calendar. The day-count
// arithmetic decomposes time into 400-year eras of 146097 days each, with
// years rebased to start in March so that the leap day is the last day of
// the rebased year.

// A GregorianDate is a validated year-month-day triple in the proleptic
// Gregorian calendar: the modern leap year rules, extended indefinitely in
// both directions.
type GregorianDate struct {
	year  int
	month Month
	day   int
}

// NewGregorianDate validates the given proleptic Gregorian date.
func NewGregorianDate(year int, month Month, day int) (GregorianDate, error) {
	if month < January || month > December || day < 1 ||
		day > gregorianMonthLen(year, month) {
		return GregorianDate{}, &DateError{"proleptic Gregorian", year, month, day}
	}
	return GregorianDate{year, month, day}, nil
}

func (g GregorianDate) Year() int    { return g.year }
func (g GregorianDate) Month() Month { return g.month }
func (g GregorianDate) Day() int     { return g.day }

// Date returns the universal day count of g.
func (g GregorianDate) Date() Date {
	return Date{gregorianDays(g.year, g.month, g.day)}
}

// Gregorian returns the proleptic Gregorian representation of d.
// The mapping is total: every representable Date has one.
func (d Date) Gregorian() GregorianDate {
	y, m, day := gregorianCivil(d.days)
	return GregorianDate{y, m, day}
}

// IsGregorianLeapYear reports whether year is a leap year under the
// Gregorian rules.
func IsGregorianLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

var monthLengths = [...]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func gregorianMonthLen(year int, month Month) int {
	if month == February && IsGregorianLeapYear(year) {
		return 29
	}
	return monthLengths[month-1]
}

// gregorianDays returns the day count since 1970-01-01 of a proleptic
// Gregorian date. The date need not be validated; out-of-range days simply
// continue counting.
func gregorianDays(year int, month Month, day int) Days {
	y := int64(year)
	if month <= February {
		y--
	}
	era := floorDiv(y, 400)
	yoe := y - era*400 // [0, 399]
	doy := dayOfRebasedYear(month, day)
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return Days(era*146097 + doe - 719468)
}

// gregorianCivil is the exact inverse of gregorianDays.
func gregorianCivil(days Days) (year int, month Month, day int) {
	z := int64(days) + 719468
	era := floorDiv(z, 146097)
	doe := z - era*146097 // [0, 146096]
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	return rebasedCivil(era*400+yoe, doy)
}

// dayOfRebasedYear maps a month and day to the day index within a year
// rebased to start on the first of March, so that any leap day lands at
// the end of the rebased year.
func dayOfRebasedYear(month Month, day int) int64 {
	m := int64(month)
	if m > 2 {
		m -= 3
	} else {
		m += 9
	}
	return (153*m+2)/5 + int64(day) - 1
}

// rebasedCivil undoes the March rebasing shared by the Gregorian and
// Julian decompositions.
func rebasedCivil(y, doy int64) (year int, month Month, day int) {
	mp := (5*doy + 2) / 153
	day = int(doy - (153*mp+2)/5 + 1)
	if mp < 10 {
		month = Month(mp + 3)
	} else {
		month = Month(mp - 9)
	}
	if month <= February {
		y++
	}
	return int(y), month, day
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
