// Copyright 2023 The Tempora Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tempora

import (
	"fmt"
	"math"
	"strings"

	"go.tempora.net/calendar"
)

// An Instant identifies a moment in time on the scale S, stored as the
// Duration elapsed since that scale's epoch. The scale is part of the
// type: instants of different scales do not compare, subtract, or mix,
// except through an explicit conversion.
//
// Instant is a comparable value type. Within one scale, equality and
// order are those of the underlying Duration.
type Instant[S Scale] struct {
	sinceEpoch Duration
}

// FromTimeSinceEpoch constructs an instant from a raw time elapsed
// since the scale's epoch.
func FromTimeSinceEpoch[S Scale](d Duration) Instant[S] {
	return Instant[S]{d}
}

// TimeSinceEpoch returns the time elapsed since the scale's epoch.
func (t Instant[S]) TimeSinceEpoch() Duration { return t.sinceEpoch }

// Scale returns the scale descriptor of this instant.
func (t Instant[S]) Scale() S {
	var tag S
	return tag
}

func (t Instant[S]) Add(d Duration) Instant[S] { return Instant[S]{t.sinceEpoch.Add(d)} }
func (t Instant[S]) Sub(d Duration) Instant[S] { return Instant[S]{t.sinceEpoch.Sub(d)} }

// Since returns the elapsed time from other to t.
func (t Instant[S]) Since(other Instant[S]) Duration {
	return t.sinceEpoch.Sub(other.sinceEpoch)
}

func (t Instant[S]) Equal(other Instant[S]) bool  { return t == other }
func (t Instant[S]) Before(other Instant[S]) bool { return t.sinceEpoch.Less(other.sinceEpoch) }
func (t Instant[S]) After(other Instant[S]) bool  { return other.sinceEpoch.Less(t.sinceEpoch) }

// Compare returns -1, 0, or +1 according to whether t is before,
// equal to, or after other.
func (t Instant[S]) Compare(other Instant[S]) int {
	return t.sinceEpoch.Compare(other.sinceEpoch)
}

// Round rounds the time since epoch to the nearest whole unit.
func (t Instant[S]) Round(u Unit) Instant[S] { return Instant[S]{t.sinceEpoch.Round(u)} }

// Ceil rounds the time since epoch up to a whole unit.
func (t Instant[S]) Ceil(u Unit) Instant[S] { return Instant[S]{t.sinceEpoch.Ceil(u)} }

// Floor rounds the time since epoch down to a whole unit.
func (t Instant[S]) Floor(u Unit) Instant[S] { return Instant[S]{t.sinceEpoch.Floor(u)} }

// FromDateTime constructs an instant from a calendar date and
// time-of-day read in the scale S. For the leap-second scales (UTC,
// GLONASST) the static leap-second table is consulted; second 60 is
// accepted exactly on recognized leap-second boundaries. For all other
// scales the mapping is plain arithmetic and second must stay below
// 60.
func FromDateTime[S Scale](date calendar.Date, hour, minute, second int) (Instant[S], error) {
	return FromDateTimeWith[S](StaticLeapSeconds{}, date, hour, minute, second)
}

// FromDateTimeWith is FromDateTime with an explicit leap-second
// provider. The provider is consulted only by the leap-second scales;
// uniform scales ignore it.
func FromDateTimeWith[S Scale](p LeapSecondProvider, date calendar.Date, hour, minute, second int) (Instant[S], error) {
	var tag S
	switch any(tag).(type) {
	case UTC:
		d, err := leapDateTime(p, UTC{}, date, date, hour, minute, second)
		return Instant[S]{d}, err
	case GLONASST:
		// The UTC day boundary trails the GLONASST (Moscow) day
		// boundary by three hours, so the first three hours of a
		// GLONASST day fall on the previous UTC day for leap-second
		// bookkeeping.
		lookup := date
		if hour >= 0 && hour < 3 {
			lookup = date.SubDays(1)
		}
		d, err := leapDateTime(p, GLONASST{}, date, lookup, hour, minute, second)
		return Instant[S]{d}, err
	default:
		if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
			return Instant[S]{}, &TimeOfDayError{hour, minute, second}
		}
		return Instant[S]{civilOffset(date, tag.Epoch(), hour, minute, second)}, nil
	}
}

// FromFineDateTime is FromDateTime with sub-second resolution: the
// subseconds duration is added to the constructed whole-second
// instant.
func FromFineDateTime[S Scale](date calendar.Date, hour, minute, second int, subseconds Duration) (Instant[S], error) {
	return FromFineDateTimeWith[S](StaticLeapSeconds{}, date, hour, minute, second, subseconds)
}

// FromFineDateTimeWith is FromFineDateTime with an explicit
// leap-second provider.
func FromFineDateTimeWith[S Scale](p LeapSecondProvider, date calendar.Date, hour, minute, second int, subseconds Duration) (Instant[S], error) {
	t, err := FromDateTimeWith[S](p, date, hour, minute, second)
	if err != nil {
		return Instant[S]{}, err
	}
	return t.Add(subseconds), nil
}

func leapDateTime(p LeapSecondProvider, scale Scale, date, lookup calendar.Date, hour, minute, second int) (Duration, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 60 {
		return Duration{}, &TimeOfDayError{hour, minute, second}
	}
	isLeapDay, cumulative := p.LeapSecondsOnDate(lookup)
	if second == 60 && !isLeapDay {
		return Duration{}, &LeapSecondError{
			Scale: scale.Abbrev(),
			Date:  date,
			Hour:  hour, Minute: minute, Second: second,
		}
	}
	d := civilOffset(date, scale.Epoch(), hour, minute, second)
	return d.Add(Seconds(int64(cumulative))), nil
}

func civilOffset(date, epoch calendar.Date, hour, minute, second int) Duration {
	days := int64(date.DaysSince(epoch))
	return Hours(int64(hour)).
		Add(Minutes(int64(minute))).
		Add(Seconds(int64(second))).
		Add(Days(days))
}

// DateTime decomposes the instant into a calendar date and whole
// time-of-day in the scale S, the inverse of FromDateTime. Inside an
// inserted leap second the decomposition reports second 60 on the
// preceding day rather than rolling over.
func (t Instant[S]) DateTime() (calendar.Date, int, int, int) {
	return t.DateTimeWith(StaticLeapSeconds{})
}

// DateTimeWith is DateTime with an explicit leap-second provider.
func (t Instant[S]) DateTimeWith(p LeapSecondProvider) (calendar.Date, int, int, int) {
	var tag S
	switch any(tag).(type) {
	case UTC:
		isLeap, cumulative := p.LeapSecondsAtInstant(Instant[UTC]{t.sinceEpoch})
		return leapDecompose(t.sinceEpoch, utcEpoch, isLeap, cumulative)
	case GLONASST:
		utc := Instant[UTC]{convertTerrestrial(GLONASST{}, UTC{}, t.sinceEpoch)}
		isLeap, cumulative := p.LeapSecondsAtInstant(utc)
		return leapDecompose(t.sinceEpoch, glonasstEpoch, isLeap, cumulative)
	default:
		return decompose(t.sinceEpoch, tag.Epoch())
	}
}

// FineDateTime is DateTime with sub-second resolution: the final
// result is the whole-second decomposition plus the sub-second
// remainder, which is never negative.
func (t Instant[S]) FineDateTime() (calendar.Date, int, int, int, Duration) {
	return t.FineDateTimeWith(StaticLeapSeconds{})
}

// FineDateTimeWith is FineDateTime with an explicit leap-second
// provider.
func (t Instant[S]) FineDateTimeWith(p LeapSecondProvider) (calendar.Date, int, int, int, Duration) {
	coarse := t.Floor(Second)
	subseconds := t.Since(coarse)
	date, hour, minute, second := coarse.DateTimeWith(p)
	return date, hour, minute, second, subseconds
}

func decompose(d Duration, epoch calendar.Date) (calendar.Date, int, int, int) {
	floored := d.Floor(Day)
	intraday := d.Sub(floored)
	days := floored.Div(Days(1))
	hour, rem := intraday.FactorOut(Hour)
	minute, rem := rem.FactorOut(Minute)
	second, _ := rem.FactorOut(Second)
	return epoch.AddDays(dayCount(days)), int(hour), int(minute), int(second)
}

func leapDecompose(d Duration, epoch calendar.Date, isLeap bool, cumulative int) (calendar.Date, int, int, int) {
	d = d.Sub(Seconds(int64(cumulative)))
	date, hour, minute, second := decompose(d, epoch)
	if isLeap {
		return date.SubDays(1), 23, 59, 60
	}
	return date, hour, minute, second
}

// dayCount narrows a day count to the calendar range. Exceeding it is
// a fatal range violation, like any other arithmetic overflow.
func dayCount(days int64) calendar.Days {
	if days < math.MinInt32 || days > math.MaxInt32 {
		panic("tempora: day count overflow")
	}
	return calendar.Days(days)
}

// FromHistoricDateTime constructs an instant from a civil date-time in
// the historic calendar: Julian through 1582-10-04, Gregorian from
// 1582-10-15.
func FromHistoricDateTime[S Scale](year int, month calendar.Month, day, hour, minute, second int) (Instant[S], error) {
	date, err := calendar.NewHistoricDate(year, month, day)
	if err != nil {
		return Instant[S]{}, err
	}
	return FromDateTime[S](date.Date(), hour, minute, second)
}

// FromGregorianDateTime constructs an instant from a civil date-time
// in the proleptic Gregorian calendar.
func FromGregorianDateTime[S Scale](year int, month calendar.Month, day, hour, minute, second int) (Instant[S], error) {
	date, err := calendar.NewGregorianDate(year, month, day)
	if err != nil {
		return Instant[S]{}, err
	}
	return FromDateTime[S](date.Date(), hour, minute, second)
}

// FromJulianDateTime constructs an instant from a civil date-time in
// the proleptic Julian calendar.
func FromJulianDateTime[S Scale](year int, month calendar.Month, day, hour, minute, second int) (Instant[S], error) {
	date, err := calendar.NewJulianDate(year, month, day)
	if err != nil {
		return Instant[S]{}, err
	}
	return FromDateTime[S](date.Date(), hour, minute, second)
}

// FromFineHistoricDateTime is FromHistoricDateTime with sub-second
// resolution.
func FromFineHistoricDateTime[S Scale](year int, month calendar.Month, day, hour, minute, second int, subseconds Duration) (Instant[S], error) {
	date, err := calendar.NewHistoricDate(year, month, day)
	if err != nil {
		return Instant[S]{}, err
	}
	return FromFineDateTime[S](date.Date(), hour, minute, second, subseconds)
}

// FromFineGregorianDateTime is FromGregorianDateTime with sub-second
// resolution.
func FromFineGregorianDateTime[S Scale](year int, month calendar.Month, day, hour, minute, second int, subseconds Duration) (Instant[S], error) {
	date, err := calendar.NewGregorianDate(year, month, day)
	if err != nil {
		return Instant[S]{}, err
	}
	return FromFineDateTime[S](date.Date(), hour, minute, second, subseconds)
}

// FromFineJulianDateTime is FromJulianDateTime with sub-second
// resolution.
func FromFineJulianDateTime[S Scale](year int, month calendar.Month, day, hour, minute, second int, subseconds Duration) (Instant[S], error) {
	date, err := calendar.NewJulianDate(year, month, day)
	if err != nil {
		return Instant[S]{}, err
	}
	return FromFineDateTime[S](date.Date(), hour, minute, second, subseconds)
}

// HistoricDateTime decomposes the instant into a historic civil
// date-time.
func (t Instant[S]) HistoricDateTime() (calendar.HistoricDate, int, int, int) {
	date, hour, minute, second := t.DateTime()
	return date.Historic(), hour, minute, second
}

// GregorianDateTime decomposes the instant into a proleptic Gregorian
// civil date-time.
func (t Instant[S]) GregorianDateTime() (calendar.GregorianDate, int, int, int) {
	date, hour, minute, second := t.DateTime()
	return date.Gregorian(), hour, minute, second
}

// JulianDateTime decomposes the instant into a proleptic Julian civil
// date-time.
func (t Instant[S]) JulianDateTime() (calendar.JulianDate, int, int, int) {
	date, hour, minute, second := t.DateTime()
	return date.Julian(), hour, minute, second
}

// FineHistoricDateTime is HistoricDateTime with sub-second resolution.
func (t Instant[S]) FineHistoricDateTime() (calendar.HistoricDate, int, int, int, Duration) {
	date, hour, minute, second, subseconds := t.FineDateTime()
	return date.Historic(), hour, minute, second, subseconds
}

// FineGregorianDateTime is GregorianDateTime with sub-second
// resolution.
func (t Instant[S]) FineGregorianDateTime() (calendar.GregorianDate, int, int, int, Duration) {
	date, hour, minute, second, subseconds := t.FineDateTime()
	return date.Gregorian(), hour, minute, second, subseconds
}

// FineJulianDateTime is JulianDateTime with sub-second resolution.
func (t Instant[S]) FineJulianDateTime() (calendar.JulianDate, int, int, int, Duration) {
	date, hour, minute, second, subseconds := t.FineDateTime()
	return date.Julian(), hour, minute, second, subseconds
}

// FromModifiedJulianDate constructs an instant from a modified Julian
// date read in the scale itself.
//
// The construction is restricted to uniform scales. On leap-second
// days the fractional part of a Julian day is ambiguous, and IAU
// Resolution B1 advises against Julian date expressions of UTC, so the
// leap-second scales do not take part.
func FromModifiedJulianDate[S UniformScale](mjd calendar.ModifiedJulianDate) Instant[S] {
	var tag S
	days := mjd.Date().DaysSince(tag.Epoch())
	return Instant[S]{Days(int64(days))}
}

// ModifiedJulianDate returns the modified Julian day the instant falls
// on, truncating the time of day.
func (t Instant[S]) ModifiedJulianDate() calendar.ModifiedJulianDate {
	var tag S
	days := t.sinceEpoch.Div(Days(1))
	return calendar.ModifiedJulianDateOf(tag.Epoch().AddDays(dayCount(days)))
}

// String renders the instant as "YYYY-MM-DDTHH:MM:SS[.frac] ABBR" in
// the historic calendar, with as many fractional digits as needed.
func (t Instant[S]) String() string {
	return t.Format(-1)
}

// Format renders the instant like String with the fractional part
// limited to the given number of digits. A negative precision means
// "as many digits as needed".
func (t Instant[S]) Format(precision int) string {
	var tag S
	date, hour, minute, second, subseconds := t.FineDateTime()
	historic := date.Historic()

	var b strings.Builder
	fmt.Fprintf(&b, "%04d-%02d-%02dT%02d:%02d:%02d",
		historic.Year(), int(historic.Month()), historic.Day(), hour, minute, second)
	if !subseconds.IsZero() {
		b.WriteByte('.')
		for _, digit := range subseconds.DecimalDigits(precision) {
			b.WriteByte('0' + digit)
		}
	}
	b.WriteByte(' ')
	b.WriteString(tag.Abbrev())
	return b.String()
}
