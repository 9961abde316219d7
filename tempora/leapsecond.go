// Copyright 2023 The Tempora Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tempora

import "go.tempora.net/calendar"

// A LeapSecondProvider answers when leap seconds occur. Leap seconds
// track irregular variations in the Earth's rotation, so no table
// holds forever; applications obtain updates in different ways, from
// the published IERS bulletins to GNSS navigation messages. Passing a
// provider at the call site lets any such source stand in for the
// built-in table.
type LeapSecondProvider interface {
	// LeapSecondsOnDate reports whether a leap second is inserted at
	// the end of the given UTC day, together with the number of leap
	// seconds accumulated before that day.
	LeapSecondsOnDate(utcDate calendar.Date) (isLeapSecondDay bool, cumulative int)

	// LeapSecondsAtInstant reports whether the instant falls exactly
	// inside an inserted leap second, together with the number of leap
	// seconds applicable at the instant. During an insertion the count
	// is still the count from before it.
	LeapSecondsAtInstant(t Instant[UTC]) (isLeapSecond bool, cumulative int)
}

// StaticLeapSeconds is the default LeapSecondProvider: a table of all
// leap seconds announced through 2017, fixed at build time. It serves
// most applications and testing, but a long-running process that must
// honor future announcements needs a provider that can be updated.
type StaticLeapSeconds struct{}

// The table keeps one entry per insertion, ordered most recent first
// since present-day lookups are the common case. Each entry holds the
// UTC day (relative to 1970-01-01) whose final second is the inserted
// one, and the leap seconds accumulated before that day. The ten
// seconds accumulated by the start of modern UTC in 1972 are the
// table's pre-history: nine before the 1971-12-31 entry, plus that
// insertion itself.
type leapSecondEntry struct {
	day        calendar.Days
	cumulative int
}

var leapSecondDays = []leapSecondEntry{
	{17166, 36}, // 2016-12-31
	{16616, 35}, // 2015-06-30
	{15521, 34}, // 2012-06-30
	{14244, 33}, // 2008-12-31
	{13148, 32}, // 2005-12-31
	{10591, 31}, // 1998-12-31
	{10042, 30}, // 1997-06-30
	{9495, 29},  // 1995-12-31
	{8946, 28},  // 1994-06-30
	{8581, 27},  // 1993-06-30
	{8216, 26},  // 1992-06-30
	{7669, 25},  // 1990-12-31
	{7304, 24},  // 1989-12-31
	{6573, 23},  // 1987-12-31
	{5659, 22},  // 1985-06-30
	{4928, 21},  // 1983-06-30
	{4563, 20},  // 1982-06-30
	{4198, 19},  // 1981-06-30
	{3651, 18},  // 1979-12-31
	{3286, 17},  // 1978-12-31
	{2921, 16},  // 1977-12-31
	{2556, 15},  // 1976-12-31
	{2190, 14},  // 1975-12-31
	{1825, 13},  // 1974-12-31
	{1460, 12},  // 1973-12-31
	{1095, 11},  // 1972-12-31
	{911, 10},   // 1972-06-30
	{729, 9},    // 1971-12-31
}

// preModernLeapSeconds is the cumulative count before the earliest
// tabulated insertion.
const preModernLeapSeconds = 9

// LeapSecondsOnDate implements LeapSecondProvider using the built-in
// table.
func (StaticLeapSeconds) LeapSecondsOnDate(utcDate calendar.Date) (bool, int) {
	day := utcDate.DaysSinceEpoch()
	for _, entry := range leapSecondDays {
		switch {
		case day > entry.day:
			return false, entry.cumulative + 1
		case day == entry.day:
			return true, entry.cumulative
		}
	}
	return false, preModernLeapSeconds
}

// LeapSecondsAtInstant implements LeapSecondProvider using the
// built-in table. The instant's whole second is matched against the
// insertion boundaries in UTC's time-since-epoch representation, in
// which the final second of the day holding insertion n begins at
//
//	(day+1 - epoch)*86400 + cumulative_before - 1 + 1 second
//
// the "+1" being the insertion itself already counted into the stored
// representation of everything at or past the boundary.
func (StaticLeapSeconds) LeapSecondsAtInstant(t Instant[UTC]) (bool, int) {
	second := t.TimeSinceEpoch().Div(Seconds(1))
	for _, entry := range leapSecondSeconds {
		switch {
		case second > entry.second:
			return false, entry.cumulative + 1
		case second == entry.second:
			return true, entry.cumulative
		}
	}
	return false, preModernLeapSeconds
}

type leapSecondBoundary struct {
	second     int64
	cumulative int
}

// leapSecondSeconds mirrors leapSecondDays in seconds since the UTC
// epoch: the stored second at which each inserted leap second begins.
var leapSecondSeconds = make([]leapSecondBoundary, len(leapSecondDays))

func init() {
	const utcEpochDay = 730 // 1972-01-01 relative to 1970-01-01
	for i, entry := range leapSecondDays {
		leapSecondSeconds[i] = leapSecondBoundary{
			second:     int64(entry.day-utcEpochDay+1)*86_400 + int64(entry.cumulative),
			cumulative: entry.cumulative,
		}
	}
}
