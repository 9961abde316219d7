// Copyright 2023 The Tempora Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

// The proleptic Julian calendar: a leap day every fourth year, no century
// exceptions. Eras are four years (1461 days). The anchor is fixed by
// Julian -4712-01-01, the day of Julian Day number zero, which lies
// 2440588 days before 1970-01-01.

// A JulianDate is a validated year-month-day triple in the proleptic
// Julian calendar.
type JulianDate struct {
	year  int
	month Month
	day   int
}

// NewJulianDate validates the given proleptic Julian date.
func NewJulianDate(year int, month Month, day int) (JulianDate, error) {
	if month < January || month > December || day < 1 ||
		day > julianMonthLen(year, month) {
		return JulianDate{}, &DateError{"proleptic Julian", year, month, day}
	}
	return JulianDate{year, month, day}, nil
}

func (j JulianDate) Year() int    { return j.year }
func (j JulianDate) Month() Month { return j.month }
func (j JulianDate) Day() int     { return j.day }

// Date returns the universal day count of j.
func (j JulianDate) Date() Date {
	return Date{julianDays(j.year, j.month, j.day)}
}

// Julian returns the proleptic Julian representation of d. The mapping is
// total.
func (d Date) Julian() JulianDate {
	y, m, day := julianCivil(d.days)
	return JulianDate{y, m, day}
}

// IsJulianLeapYear reports whether year is a leap year under the Julian
// rules.
func IsJulianLeapYear(year int) bool { return year%4 == 0 }

func julianMonthLen(year int, month Month) int {
	if month == February && IsJulianLeapYear(year) {
		return 29
	}
	return monthLengths[month-1]
}

func julianDays(year int, month Month, day int) Days {
	y := int64(year)
	if month <= February {
		y--
	}
	era := floorDiv(y, 4)
	yoe := y - era*4 // [0, 3]; the leap day falls at the end of yoe 3
	doy := dayOfRebasedYear(month, day)
	doe := yoe*365 + doy
	return Days(era*1461 + doe - 719470)
}

func julianCivil(days Days) (year int, month Month, day int) {
	z := int64(days) + 719470
	era := floorDiv(z, 1461)
	doe := z - era*1461 // [0, 1460]
	yoe := (doe - doe/1460) / 365
	doy := doe - 365*yoe
	return rebasedCivil(era*4+yoe, doy)
}
