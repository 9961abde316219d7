// Copyright 2023 The Tempora Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tempora

import "fmt"

// A Unit is a named span of time with a fixed length in attoseconds.
// The calendar-flavored units are conventional averages: a Year is the
// mean Gregorian year of 365.2425 days and a Month is one twelfth of
// that. None of them stretch or shrink with any particular calendar
// date.
type Unit int

const (
	Atto Unit = iota
	Femto
	Pico
	Nano
	Micro
	Milli
	Second
	Minute
	Hour
	Day
	Week
	Month
	Year
)

// ratio reports the length of one unit in attoseconds.
func (u Unit) ratio() int128 {
	switch u {
	case Atto:
		return int128Of(1)
	case Femto:
		return int128Of(1_000)
	case Pico:
		return int128Of(1_000_000)
	case Nano:
		return int128Of(1_000_000_000)
	case Micro:
		return int128Of(1_000_000_000_000)
	case Milli:
		return int128Of(1_000_000_000_000_000)
	case Second:
		return int128Of(attosPerSecond)
	case Minute:
		return int128Of(60).mul64(attosPerSecond)
	case Hour:
		return int128Of(3_600).mul64(attosPerSecond)
	case Day:
		return int128Of(86_400).mul64(attosPerSecond)
	case Week:
		return int128Of(7 * 86_400).mul64(attosPerSecond)
	case Month:
		// 30.436875 days expressed exactly.
		return int128Of(2_629_746).mul64(attosPerSecond)
	case Year:
		// 365.2425 days expressed exactly.
		return int128Of(31_556_952).mul64(attosPerSecond)
	}
	panic(fmt.Sprintf("tempora: invalid unit %d", int(u)))
}

func (u Unit) String() string {
	switch u {
	case Atto:
		return "attoseconds"
	case Femto:
		return "femtoseconds"
	case Pico:
		return "picoseconds"
	case Nano:
		return "nanoseconds"
	case Micro:
		return "microseconds"
	case Milli:
		return "milliseconds"
	case Second:
		return "seconds"
	case Minute:
		return "minutes"
	case Hour:
		return "hours"
	case Day:
		return "days"
	case Week:
		return "weeks"
	case Month:
		return "months"
	case Year:
		return "years"
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

const attosPerSecond = 1_000_000_000_000_000_000
