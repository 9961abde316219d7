// Copyright 2023 The Tempora Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

import (
	"fmt"
	"strconv"
	"strings"

	"go.tempora.net/calendar"
	"go.tempora.net/tempora"
)

// An InstantError describes a malformed instant timestamp.
type InstantError struct {
	Input string
	Msg   string
}

func (e *InstantError) Error() string {
	return fmt.Sprintf("invalid instant %q: %s", e.Input, e.Msg)
}

// ParseInstant parses a timestamp of the form
// "YYYY-MM-DDTHH:MM:SS[.fraction] ABBR" into an instant on scale S.
// The date is read in the historic calendar, and the trailing
// abbreviation must be the abbreviation of S. Leap seconds follow the
// built-in table.
//
// A second field of 60 is accepted on recognized leap-second dates of
// scales that observe them; elsewhere it yields a
// *tempora.LeapSecondError. Nonexistent dates and times-of-day yield
// *calendar.DateError and *tempora.TimeOfDayError respectively.
func ParseInstant[S tempora.Scale](s string) (tempora.Instant[S], error) {
	return ParseInstantWith[S](tempora.StaticLeapSeconds{}, s)
}

// ParseInstantWith is like ParseInstant but resolves leap seconds
// through the given provider.
func ParseInstantWith[S tempora.Scale](p tempora.LeapSecondProvider, s string) (tempora.Instant[S], error) {
	var zero tempora.Instant[S]
	var tag S

	body, abbrev, ok := strings.Cut(s, " ")
	if !ok {
		return zero, &InstantError{s, "missing scale abbreviation"}
	}
	if abbrev != tag.Abbrev() {
		return zero, &InstantError{s, fmt.Sprintf("scale abbreviation %q does not match %s", abbrev, tag.Abbrev())}
	}

	datePart, timePart, ok := strings.Cut(body, "T")
	if !ok {
		return zero, &InstantError{s, "missing 'T' between date and time"}
	}
	year, month, day, err := splitDate(s, datePart)
	if err != nil {
		return zero, err
	}
	hour, minute, second, subseconds, err := splitTime(s, timePart)
	if err != nil {
		return zero, err
	}

	date, derr := calendar.NewHistoricDate(year, calendar.Month(month), day)
	if derr != nil {
		return zero, derr
	}
	return tempora.FromFineDateTimeWith[S](p, date.Date(), hour, minute, second, subseconds)
}

// splitDate breaks a "YYYY-MM-DD" date into its fields. Years may
// carry a leading sign and any number of digits; month and day are
// exactly two digits.
func splitDate(input, s string) (year, month, day int, err error) {
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}
	fields := strings.Split(s, "-")
	if len(fields) != 3 {
		return 0, 0, 0, &InstantError{input, "expected a YYYY-MM-DD date"}
	}
	if !isDigits(fields[0]) {
		return 0, 0, 0, &InstantError{input, "invalid year"}
	}
	year, aerr := strconv.Atoi(fields[0])
	if aerr != nil {
		return 0, 0, 0, &InstantError{input, "invalid year"}
	}
	if negative {
		year = -year
	}
	month, ok := twoDigits(fields[1])
	if !ok {
		return 0, 0, 0, &InstantError{input, "invalid month"}
	}
	day, ok = twoDigits(fields[2])
	if !ok {
		return 0, 0, 0, &InstantError{input, "invalid day"}
	}
	return year, month, day, nil
}

// splitTime breaks a "HH:MM:SS[.fraction]" time into its fields.
func splitTime(input, s string) (hour, minute, second int, subseconds tempora.Duration, err error) {
	fields := strings.Split(s, ":")
	if len(fields) != 3 {
		return 0, 0, 0, subseconds, &InstantError{input, "expected a HH:MM:SS time"}
	}
	hour, ok := twoDigits(fields[0])
	if !ok {
		return 0, 0, 0, subseconds, &InstantError{input, "invalid hour"}
	}
	minute, ok = twoDigits(fields[1])
	if !ok {
		return 0, 0, 0, subseconds, &InstantError{input, "invalid minute"}
	}
	whole, fraction, hasFraction := strings.Cut(fields[2], ".")
	second, ok = twoDigits(whole)
	if !ok {
		return 0, 0, 0, subseconds, &InstantError{input, "invalid second"}
	}
	if hasFraction {
		subseconds, err = parseSubseconds(input, fraction)
		if err != nil {
			return 0, 0, 0, subseconds, err
		}
	}
	return hour, minute, second, subseconds, nil
}

// parseSubseconds converts the digits after the decimal point into a
// sub-second duration. Digits beyond attosecond resolution are
// truncated, mirroring how formatting truncates beyond the requested
// precision.
func parseSubseconds(input, s string) (tempora.Duration, error) {
	var zero tempora.Duration
	if s == "" || len(s) > 64 || !isDigits(s) {
		return zero, &InstantError{input, "invalid fractional part"}
	}
	var attos int64
	for i := 0; i < 18; i++ {
		attos *= 10
		if i < len(s) {
			attos += int64(s[i] - '0')
		}
	}
	return tempora.Attoseconds(attos), nil
}

func twoDigits(s string) (int, bool) {
	if len(s) != 2 || !isDigits(s) {
		return 0, false
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), true
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}
