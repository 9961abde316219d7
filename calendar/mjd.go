// Copyright 2023 The Tempora Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

// The Modified Julian Date is the Julian Day number less 2400000.5: a day
// count since 1858-11-17 (historic). Unlike the Julian Day it is integral
// at midnight, which makes it the interchange day count of choice for
// astronomical and geodetic tooling.

// mjdUnixEpoch is the Modified Julian Date of 1970-01-01.
const mjdUnixEpoch Days = 40587

// A ModifiedJulianDate is a day count since 1858-11-17.
type ModifiedJulianDate int32

// NewModifiedJulianDate returns the MJD with the given day number.
func NewModifiedJulianDate(days Days) ModifiedJulianDate {
	return ModifiedJulianDate(days)
}

// ModifiedJulianDateOf converts a universal date to its MJD.
func ModifiedJulianDateOf(d Date) ModifiedJulianDate {
	return ModifiedJulianDate(d.DaysSinceEpoch() + mjdUnixEpoch)
}

// Days reports the day count of m relative to 1858-11-17.
func (m ModifiedJulianDate) Days() Days { return Days(m) }

// Date converts m back to a universal date.
func (m ModifiedJulianDate) Date() Date {
	return NewDate(Days(m) - mjdUnixEpoch)
}
