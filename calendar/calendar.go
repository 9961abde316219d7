// Copyright 2023 The Tempora Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package calendar maps civil dates in the historic, proleptic Gregorian,
// and proleptic Julian calendars to and from a signed day count.
//
// The universal currency of this package is Date, a count of calendar days
// relative to 1970-01-01. A Date carries no time zone and no time-of-day;
// it identifies one calendar day. Mapping a Date to an instant on a
// particular time scale is the job of package tempora.
package calendar // import "go.tempora.net/calendar"

import "fmt"

// Days is a signed distance between two calendar days, in whole days.
type Days int32

// Weeks returns the number of days in n weeks.
func Weeks(n int32) Days { return Days(n * 7) }

// A Month identifies a month of the year (January = 1, ...).
type Month int

const (
	January Month = 1 + iota
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

func (m Month) String() string {
	if January <= m && m <= December {
		return monthNames[m-1]
	}
	return fmt.Sprintf("Month(%d)", int(m))
}

// A Weekday identifies a day of the week (Sunday = 0, ...).
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var weekdayNames = [...]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

func (d Weekday) String() string {
	if Sunday <= d && d <= Saturday {
		return weekdayNames[d]
	}
	return fmt.Sprintf("Weekday(%d)", int(d))
}

// A Date is a calendar-agnostic day, counted relative to 1970-01-01.
// Days before the epoch are negative.
//
// Two Dates cannot be subtracted to obtain an elapsed time: the result
// would silently ignore leap seconds. DaysSince yields a calendar-day
// distance, which is a duration only on scales without leap seconds.
type Date struct {
	days Days
}

// NewDate returns the Date the given number of days after 1970-01-01.
func NewDate(days Days) Date { return Date{days} }

// DaysSinceEpoch reports the day count of d relative to 1970-01-01.
func (d Date) DaysSinceEpoch() Days { return d.days }

// DaysSince returns the number of elapsed calendar days since other.
// The result counts calendar days only; it must not be interpreted as an
// exact duration if leap seconds occurred between the two days.
func (d Date) DaysSince(other Date) Days { return d.days - other.days }

// AddDays returns the date n days after d.
func (d Date) AddDays(n Days) Date { return Date{d.days + n} }

// SubDays returns the date n days before d.
func (d Date) SubDays(n Days) Date { return Date{d.days - n} }

// Before reports whether d is earlier than other.
func (d Date) Before(other Date) bool { return d.days < other.days }

// After reports whether d is later than other.
func (d Date) After(other Date) bool { return d.days > other.days }

// Weekday returns the day of the week of d.
func (d Date) Weekday() Weekday {
	// 1970-01-01 was a Thursday.
	return Weekday(((int32(d.days)+4)%7 + 7) % 7)
}

func (d Date) String() string {
	h := d.Historic()
	return fmt.Sprintf("%04d-%02d-%02d", h.Year(), int(h.Month()), h.Day())
}

// A DateError reports a year-month-day combination that does not exist in
// the named calendar.
type DateError struct {
	Calendar string // "historic", "proleptic Gregorian", or "proleptic Julian"
	Year     int
	Month    Month
	Day      int
}

func (e *DateError) Error() string {
	return fmt.Sprintf("%d %s %d does not exist in the %s calendar",
		e.Day, e.Month, e.Year, e.Calendar)
}

// A DayOfYearError reports a day-of-year count that does not occur in the
// given year.
type DayOfYearError struct {
	Year      int
	DayOfYear int
}

func (e *DayOfYearError) Error() string {
	return fmt.Sprintf("%d is not a valid day in %d", e.DayOfYear, e.Year)
}
