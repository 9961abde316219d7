// Copyright 2023 The Tempora Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import (
	"errors"
	"testing"
)

// TestMeeusModifiedJulianDates checks day counts against the worked
// examples in Meeus, Astronomical Algorithms, including dates before the
// Gregorian reform.
func TestMeeusModifiedJulianDates(t *testing.T) {
	for _, test := range []struct {
		year  int
		month Month
		day   int
		mjd   Days
	}{
		{2000, January, 1, 51544},
		{1999, January, 1, 51179},
		{1987, January, 27, 46822},
		{1987, June, 19, 46965},
		{1988, January, 27, 47187},
		{1988, June, 19, 47331},
		{1900, January, 1, 15020},
		{1600, January, 1, -94553},
		{1600, December, 31, -94188},
		{837, April, 10, -373129},
		{-123, December, 31, -723504},
		{-122, January, 1, -723503},
		{-1000, July, 12, -1044000},
		{-1000, February, 29, -1044134},
		{-1001, August, 17, -1044330},
		{-4712, January, 1, -2400001},
	} {
		h, err := NewHistoricDate(test.year, test.month, test.day)
		if err != nil {
			t.Errorf("NewHistoricDate(%d, %s, %d): %v", test.year, test.month, test.day, err)
			continue
		}
		if got := ModifiedJulianDateOf(h.Date()).Days(); got != test.mjd {
			t.Errorf("MJD(%d-%s-%d) = %d, want %d", test.year, test.month, test.day, got, test.mjd)
		}
		// And back again.
		if got := h.Date().Historic(); got != h {
			t.Errorf("Historic(Date(%v)) = %v", h, got)
		}
	}
}

func TestEpoch(t *testing.T) {
	epoch, err := NewHistoricDate(1970, January, 1)
	if err != nil {
		t.Fatal(err)
	}
	if days := epoch.Date().DaysSinceEpoch(); days != 0 {
		t.Errorf("1970-01-01 is day %d, want 0", days)
	}
	if mjd := ModifiedJulianDateOf(epoch.Date()); mjd != 40587 {
		t.Errorf("MJD(1970-01-01) = %d, want 40587", mjd)
	}
}

func TestWeekday(t *testing.T) {
	for _, test := range []struct {
		year  int
		month Month
		day   int
		want  Weekday
	}{
		{1969, December, 25, Thursday},
		{1969, December, 28, Sunday},
		{1969, December, 31, Wednesday},
		{1970, January, 1, Thursday},
		{1970, January, 4, Sunday},
		{1970, January, 8, Thursday},
		{1998, December, 17, Thursday},
	} {
		h, err := NewHistoricDate(test.year, test.month, test.day)
		if err != nil {
			t.Fatal(err)
		}
		if got := h.Date().Weekday(); got != test.want {
			t.Errorf("Weekday(%d-%s-%d) = %s, want %s",
				test.year, test.month, test.day, got, test.want)
		}
	}
}

func TestGregorianReformGap(t *testing.T) {
	// 1582-10-04 (Julian) is immediately followed by 1582-10-15 (Gregorian).
	before, err := NewHistoricDate(1582, October, 4)
	if err != nil {
		t.Fatal(err)
	}
	after, err := NewHistoricDate(1582, October, 15)
	if err != nil {
		t.Fatal(err)
	}
	if d := after.Date().DaysSince(before.Date()); d != 1 {
		t.Errorf("reform gap spans %d days, want 1", d)
	}
	for day := 5; day <= 14; day++ {
		if _, err := NewHistoricDate(1582, October, day); err == nil {
			t.Errorf("NewHistoricDate(1582, October, %d) unexpectedly valid", day)
		}
	}
}

func TestInvalidDates(t *testing.T) {
	for _, test := range []struct {
		year  int
		month Month
		day   int
	}{
		{2023, February, 29},
		{1900, February, 29}, // Gregorian century rule
		{2023, April, 31},
		{2023, Month(13), 1},
		{2023, Month(0), 1},
		{2023, June, 0},
	} {
		_, err := NewHistoricDate(test.year, test.month, test.day)
		if err == nil {
			t.Errorf("NewHistoricDate(%d, %d, %d) unexpectedly valid",
				test.year, int(test.month), test.day)
			continue
		}
		var derr *DateError
		if !errors.As(err, &derr) {
			t.Errorf("NewHistoricDate(%d, %d, %d): error %v is not a *DateError",
				test.year, int(test.month), test.day, err)
		}
	}

	// 1900-02-29 does exist in the proleptic Julian calendar.
	if _, err := NewJulianDate(1900, February, 29); err != nil {
		t.Errorf("NewJulianDate(1900, February, 29): %v", err)
	}
	// ...but not in the proleptic Gregorian one.
	if _, err := NewGregorianDate(1900, February, 29); err == nil {
		t.Error("NewGregorianDate(1900, February, 29) unexpectedly valid")
	}
}

func TestCivilRoundTrip(t *testing.T) {
	// Every day over several eras decodes and re-encodes exactly, in all
	// three calendars.
	for days := Days(-800000); days <= 800000; days += 13 {
		d := NewDate(days)

		h := d.Historic()
		if got := h.Date(); got != d {
			t.Fatalf("historic round trip: day %d -> %v -> day %d", days, h, got.DaysSinceEpoch())
		}
		g := d.Gregorian()
		if got := g.Date(); got != d {
			t.Fatalf("gregorian round trip: day %d -> %v -> day %d", days, g, got.DaysSinceEpoch())
		}
		j := d.Julian()
		if got := j.Date(); got != d {
			t.Fatalf("julian round trip: day %d -> %v -> day %d", days, j, got.DaysSinceEpoch())
		}
	}
}

// TestGregorianCenturyBoundaries pins the decomposition on the days
// around century leap-rule boundaries, where an off-by-one in the
// year-of-era division shifts the result by a whole year.
func TestGregorianCenturyBoundaries(t *testing.T) {
	for _, test := range []struct {
		days  Days
		year  int
		month Month
		day   int
	}{
		{-25509, 1900, February, 28},
		{-25508, 1900, March, 1},
		{11016, 2000, February, 29},
		{11017, 2000, March, 1},
		{47540, 2100, February, 28},
		{47541, 2100, March, 1},
		{84064, 2200, February, 28},
		{84065, 2200, March, 1},
		{-795437, -208, March, 2},
	} {
		g := NewDate(test.days).Gregorian()
		if g.Year() != test.year || g.Month() != test.month || g.Day() != test.day {
			t.Errorf("Gregorian(day %d) = %v, want %d-%s-%d",
				test.days, g, test.year, test.month, test.day)
		}
		if got := g.Date().DaysSinceEpoch(); got != test.days {
			t.Errorf("Date(%v) = day %d, want %d", g, got, test.days)
		}
	}
}

func TestDayOfYear(t *testing.T) {
	for _, test := range []struct {
		year      int
		dayOfYear int
		month     Month
		day       int
	}{
		{2023, 1, January, 1},
		{2023, 365, December, 31},
		{2024, 366, December, 31},
		{2024, 60, February, 29},
		{1582, 355, December, 31}, // the reform year lost ten days
	} {
		h, err := NewHistoricDateOfYear(test.year, test.dayOfYear)
		if err != nil {
			t.Errorf("NewHistoricDateOfYear(%d, %d): %v", test.year, test.dayOfYear, err)
			continue
		}
		if h.Month() != test.month || h.Day() != test.day {
			t.Errorf("NewHistoricDateOfYear(%d, %d) = %v, want %s %d",
				test.year, test.dayOfYear, h, test.month, test.day)
		}
	}

	for _, test := range []struct {
		year      int
		dayOfYear int
	}{
		{2023, 0},
		{2023, 366},
		{2024, 367},
		{1582, 356},
	} {
		_, err := NewHistoricDateOfYear(test.year, test.dayOfYear)
		var derr *DayOfYearError
		if !errors.As(err, &derr) {
			t.Errorf("NewHistoricDateOfYear(%d, %d) = %v, want *DayOfYearError",
				test.year, test.dayOfYear, err)
		}
	}
}

func TestDateString(t *testing.T) {
	h, _ := NewHistoricDate(2004, May, 14)
	if got, want := h.Date().String(), "2004-05-14"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
