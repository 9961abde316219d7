// Copyright 2023 The Tempora Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

// The historic calendar is the Julian calendar up to and including
// 1582-10-04, and the Gregorian calendar from 1582-10-15 on, skipping the
// ten days in between: the sequence of dates as actually promulgated by
// the Gregorian reform. It is the calendar astronomical almanacs use for
// historical dates.

// gregorianReformDate is 1582-10-15 Gregorian as a universal day count.
const gregorianReformDate Days = -141427

// A HistoricDate is a validated year-month-day triple in the historic
// calendar.
type HistoricDate struct {
	year  int
	month Month
	day   int
}

// NewHistoricDate validates the given historic date. The ten dates dropped
// by the Gregorian reform, 1582-10-05 through 1582-10-14, do not exist.
func NewHistoricDate(year int, month Month, day int) (HistoricDate, error) {
	invalid := &DateError{"historic", year, month, day}
	if inGregorianRegime(year, month, day) {
		if _, err := NewGregorianDate(year, month, day); err != nil {
			return HistoricDate{}, invalid
		}
	} else {
		if _, err := NewJulianDate(year, month, day); err != nil {
			return HistoricDate{}, invalid
		}
		if year == 1582 && month == October && day > 4 {
			return HistoricDate{}, invalid
		}
	}
	return HistoricDate{year, month, day}, nil
}

func (h HistoricDate) Year() int    { return h.year }
func (h HistoricDate) Month() Month { return h.month }
func (h HistoricDate) Day() int     { return h.day }

// Date returns the universal day count of h.
func (h HistoricDate) Date() Date {
	if inGregorianRegime(h.year, h.month, h.day) {
		return Date{gregorianDays(h.year, h.month, h.day)}
	}
	return Date{julianDays(h.year, h.month, h.day)}
}

// Historic returns the historic representation of d. The mapping is total.
func (d Date) Historic() HistoricDate {
	var y, day int
	var m Month
	if d.days >= gregorianReformDate {
		y, m, day = gregorianCivil(d.days)
	} else {
		y, m, day = julianCivil(d.days)
	}
	return HistoricDate{y, m, day}
}

func inGregorianRegime(year int, month Month, day int) bool {
	switch {
	case year != 1582:
		return year > 1582
	case month != October:
		return month > October
	default:
		return day >= 15
	}
}

// NewHistoricDateOfYear interprets a 1-based day-of-year count within the
// given historic year. The count runs over the days the year actually
// contained: 1582 had 355 days.
func NewHistoricDateOfYear(year int, dayOfYear int) (HistoricDate, error) {
	if dayOfYear < 1 {
		return HistoricDate{}, &DayOfYearError{year, dayOfYear}
	}
	first, err := NewHistoricDate(year, January, 1)
	if err != nil {
		return HistoricDate{}, err
	}
	h := first.Date().AddDays(Days(dayOfYear - 1)).Historic()
	if h.year != year {
		return HistoricDate{}, &DayOfYearError{year, dayOfYear}
	}
	return h, nil
}
