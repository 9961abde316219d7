// Copyright 2023 The Tempora Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

import (
	"fmt"
	"strconv"
	"strings"

	"go.tempora.net/tempora"
)

// A DurationError describes why an ISO 8601 duration expression failed
// to parse.
type DurationError struct {
	Kind DurationErrorKind

	// Designator is the unit of the out-of-order designator when Kind
	// is NonDecreasingDesignators.
	Designator tempora.Unit
}

// DurationErrorKind discriminates the ways a duration expression can
// be malformed.
type DurationErrorKind int

const (
	// ExpectedDurationPrefix reports that the expression does not
	// start with the mandatory 'P'.
	ExpectedDurationPrefix DurationErrorKind = iota

	// ExpectedDurationDesignator reports a missing or unrecognized
	// unit designator after a count.
	ExpectedDurationDesignator

	// InvalidDurationNumber reports a missing or malformed count.
	InvalidDurationNumber

	// NonDecreasingDesignators reports a designator whose unit is not
	// strictly smaller than the previous component's unit.
	NonDecreasingDesignators

	// UnexpectedRemainder reports trailing input after a complete
	// duration expression.
	UnexpectedRemainder
)

func (e *DurationError) Error() string {
	switch e.Kind {
	case ExpectedDurationPrefix:
		return "expected duration prefix 'P'"
	case ExpectedDurationDesignator:
		return "expected a duration designator"
	case InvalidDurationNumber:
		return "invalid number in duration"
	case NonDecreasingDesignators:
		return fmt.Sprintf("duration designator out of decreasing order: %s", e.Designator)
	case UnexpectedRemainder:
		return "unexpected input after duration"
	}
	return "invalid duration"
}

// durationLevel tracks which components may still appear. Each parsed
// designator advances the level so that units strictly decrease.
type durationLevel int

const (
	levelYears durationLevel = iota
	levelMonths
	levelDays
	levelHours
	levelMinutes
	levelSeconds
	levelEnd
)

// ParseDuration parses an ISO 8601 duration expression into a
// tempora.Duration.
//
// The expression starts with 'P' and lists count+designator
// components in strictly decreasing unit order: years 'Y', months 'M',
// days 'D', hours 'H', minutes 'M', seconds 'S'. A 'T' separates the
// date components from the time components and disambiguates 'M':
// before it (or in its absence, before a days component) 'M' means
// months, after it means minutes. Hours may appear without a
// preceding 'T'. At most one component may carry a decimal fraction,
// and that component must be the last. A seconds component always
// ends the expression. "PT" denotes the zero duration, and a leading
// '-' negates the whole expression, matching how negative durations
// render.
//
// A month counts as 2,629,746 seconds and a year as 31,556,952
// seconds, the average lengths of a Gregorian month and year.
func ParseDuration(s string) (tempora.Duration, error) {
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}
	d, err := parseDurationExpr(s)
	if err != nil {
		return tempora.Duration{}, err
	}
	if negative {
		d = d.Neg()
	}
	return d, nil
}

func parseDurationExpr(s string) (tempora.Duration, error) {
	var d tempora.Duration
	rest, ok := strings.CutPrefix(s, "P")
	if !ok {
		return d, &DurationError{Kind: ExpectedDurationPrefix}
	}

	lv := levelYears
	for {
		if rest == "" {
			if lv == levelYears {
				// A bare "P" has no components at all.
				return d, &DurationError{Kind: InvalidDurationNumber}
			}
			return d, nil
		}
		if lv <= levelDays && rest[0] == 'T' {
			rest = rest[1:]
			lv = levelHours
			continue
		}

		count, after, err := scanCount(rest)
		if err != nil {
			return tempora.Duration{}, err
		}
		rest = after

		if strings.HasPrefix(rest, ".") {
			return parseFractionalComponent(rest[1:], d, count, lv)
		}

		if rest == "" {
			return tempora.Duration{}, &DurationError{Kind: ExpectedDurationDesignator}
		}
		c := rest[0]
		rest = rest[1:]
		// A date component may be followed by the time designator. For
		// a leading component, only days: a year or month component
		// leaves the 'T' to dictate whether the next 'M' means months
		// or minutes.
		if lv == levelMonths || lv == levelDays || lv == levelMinutes || lv == levelSeconds ||
			(lv == levelYears && c == 'D') {
			rest = strings.TrimPrefix(rest, "T")
		}
		unit, next, err := resolveDesignator(lv, c)
		if err != nil {
			return tempora.Duration{}, err
		}
		d = d.Add(tempora.Of(count, unit))
		if next == levelEnd {
			if rest != "" {
				return tempora.Duration{}, &DurationError{Kind: UnexpectedRemainder}
			}
			return d, nil
		}
		lv = next
	}
}

// parseFractionalComponent handles the final component of an
// expression whose count carries a decimal fraction. s starts just
// after the decimal point.
func parseFractionalComponent(s string, d tempora.Duration, count int64, lv durationLevel) (tempora.Duration, error) {
	numerator, denominator, rest, err := scanFraction(s)
	if err != nil {
		return tempora.Duration{}, err
	}
	if rest == "" {
		return tempora.Duration{}, &DurationError{Kind: ExpectedDurationDesignator}
	}
	c := rest[0]
	rest = rest[1:]
	if rest != "" {
		return tempora.Duration{}, &DurationError{Kind: UnexpectedRemainder}
	}
	unit, _, err := resolveDesignator(lv, c)
	if err != nil {
		return tempora.Duration{}, err
	}
	whole := tempora.Of(count, unit)
	fraction := tempora.Of(numerator, unit).DivRound(denominator)
	return d.Add(whole).Add(fraction), nil
}

// resolveDesignator maps a designator character to its unit given the
// components already parsed, and reports the level at which parsing
// continues. A seconds designator maps to levelEnd: nothing may follow
// it.
func resolveDesignator(lv durationLevel, c byte) (tempora.Unit, durationLevel, error) {
	switch c {
	case 'Y':
		if lv > levelYears {
			return 0, 0, &DurationError{Kind: NonDecreasingDesignators, Designator: tempora.Year}
		}
		return tempora.Year, levelMonths, nil
	case 'M':
		switch {
		case lv <= levelMonths:
			return tempora.Month, levelDays, nil
		case lv <= levelMinutes:
			return tempora.Minute, levelSeconds, nil
		default:
			return 0, 0, &DurationError{Kind: NonDecreasingDesignators, Designator: tempora.Minute}
		}
	case 'D':
		if lv > levelDays {
			return 0, 0, &DurationError{Kind: NonDecreasingDesignators, Designator: tempora.Day}
		}
		return tempora.Day, levelHours, nil
	case 'H':
		if lv > levelHours {
			return 0, 0, &DurationError{Kind: NonDecreasingDesignators, Designator: tempora.Hour}
		}
		return tempora.Hour, levelMinutes, nil
	case 'S':
		return tempora.Second, levelEnd, nil
	default:
		return 0, 0, &DurationError{Kind: ExpectedDurationDesignator}
	}
}

// scanCount reads a decimal count, optionally signed, from the front
// of s.
func scanCount(s string) (int64, string, error) {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	for i < len(s) && '0' <= s[i] && s[i] <= '9' {
		i++
	}
	n, err := strconv.ParseInt(s[:i], 10, 64)
	if err != nil {
		return 0, s, &DurationError{Kind: InvalidDurationNumber}
	}
	return n, s[i:], nil
}

// scanFraction reads the digits of a decimal fraction from the front
// of s and returns them as a numerator over a power-of-ten
// denominator. At most 18 digits are accepted, the attosecond
// resolution of a second.
func scanFraction(s string) (numerator, denominator int64, rest string, err error) {
	i := 0
	for i < len(s) && '0' <= s[i] && s[i] <= '9' {
		i++
	}
	if i == 0 || i > 18 {
		return 0, 0, s, &DurationError{Kind: InvalidDurationNumber}
	}
	numerator, perr := strconv.ParseInt(s[:i], 10, 64)
	if perr != nil {
		return 0, 0, s, &DurationError{Kind: InvalidDurationNumber}
	}
	denominator = 1
	for k := 0; k < i; k++ {
		denominator *= 10
	}
	return numerator, denominator, s[i:], nil
}
