// Copyright 2023 The Tempora Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tempora

import (
	"fmt"

	"go.tempora.net/calendar"
)

// A TimeOfDayError reports an hour, minute, or second outside its
// valid range. For leap-second scales, second 60 is within range at
// this level; claiming it on a non-leap day raises a LeapSecondError
// instead.
type TimeOfDayError struct {
	Hour, Minute, Second int
}

func (e *TimeOfDayError) Error() string {
	return fmt.Sprintf("invalid time-of-day %02d:%02d:%02d", e.Hour, e.Minute, e.Second)
}

// A LeapSecondError reports a date-time with second 60 on a day that
// is not a recognized leap-second boundary of the scale.
type LeapSecondError struct {
	Scale string
	Date  calendar.Date
	Hour, Minute, Second int
}

func (e *LeapSecondError) Error() string {
	return fmt.Sprintf("not a valid %s leap second date-time: %sT%02d:%02d:%02d",
		e.Scale, e.Date, e.Hour, e.Minute, e.Second)
}
