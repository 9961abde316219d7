// Copyright 2023 The Tempora Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package leapfile loads leap-second tables from TOML files.
//
// The built-in table of the tempora package ends with the insertion
// announced for the end of 2016. A process that must honor later
// announcements without rebuilding can load them from a file and pass
// the result anywhere a tempora.LeapSecondProvider is accepted.
//
// A table file lists every insertion in chronological order, each with
// the UTC date whose final second is the inserted one and the TAI-UTC
// offset in effect after it:
//
//	[[leap]]
//	date = 1971-12-31
//	tai-utc = 10
//
//	[[leap]]
//	date = 1972-06-30
//	tai-utc = 11
package leapfile // import "go.tempora.net/leapfile"

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"go.tempora.net/calendar"
	"go.tempora.net/tempora"
)

// A Provider is a tempora.LeapSecondProvider backed by a loaded table.
type Provider struct {
	// Most recent first, like the built-in table: present-day lookups
	// are the common case.
	days      []dayEntry
	seconds   []secondEntry
	preModern int
}

type dayEntry struct {
	day        calendar.Days
	cumulative int
}

type secondEntry struct {
	second     int64
	cumulative int
}

type tableFile struct {
	Leap []tableEntry `toml:"leap"`
}

type tableEntry struct {
	Date   toml.LocalDate `toml:"date"`
	TAIUTC int            `toml:"tai-utc"`
}

// Load reads a leap-second table from the named TOML file.
func Load(path string) (*Provider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Parse builds a provider from the contents of a leap-second table
// file. The entries must be in chronological order with contiguous
// TAI-UTC offsets, since the provider models insertions only.
func Parse(data []byte) (*Provider, error) {
	var file tableFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("leap-second table: %w", err)
	}
	if len(file.Leap) == 0 {
		return nil, fmt.Errorf("leap-second table: no entries")
	}

	epochDay := tempora.UTC{}.Epoch().DaysSinceEpoch()
	n := len(file.Leap)
	p := &Provider{
		days:      make([]dayEntry, n),
		seconds:   make([]secondEntry, n),
		preModern: file.Leap[0].TAIUTC - 1,
	}
	for i, entry := range file.Leap {
		date, err := calendar.NewHistoricDate(entry.Date.Year, calendar.Month(entry.Date.Month), entry.Date.Day)
		if err != nil {
			return nil, fmt.Errorf("leap-second table: %w", err)
		}
		if i > 0 && entry.TAIUTC != file.Leap[i-1].TAIUTC+1 {
			return nil, fmt.Errorf("leap-second table: tai-utc %d after %d on %s",
				entry.TAIUTC, file.Leap[i-1].TAIUTC, date.Date())
		}
		day := date.Date().DaysSinceEpoch()
		cumulative := entry.TAIUTC - 1
		// Fill back to front to keep the most recent insertion first.
		p.days[n-1-i] = dayEntry{day: day, cumulative: cumulative}
		p.seconds[n-1-i] = secondEntry{
			second:     int64(day-epochDay+1)*86_400 + int64(cumulative),
			cumulative: cumulative,
		}
		if i > 0 && day <= p.days[n-i].day {
			return nil, fmt.Errorf("leap-second table: %s out of order", date.Date())
		}
	}
	return p, nil
}

// LeapSecondsOnDate implements tempora.LeapSecondProvider.
func (p *Provider) LeapSecondsOnDate(utcDate calendar.Date) (bool, int) {
	day := utcDate.DaysSinceEpoch()
	for _, entry := range p.days {
		switch {
		case day > entry.day:
			return false, entry.cumulative + 1
		case day == entry.day:
			return true, entry.cumulative
		}
	}
	return false, p.preModern
}

// LeapSecondsAtInstant implements tempora.LeapSecondProvider.
func (p *Provider) LeapSecondsAtInstant(t tempora.Instant[tempora.UTC]) (bool, int) {
	second := t.TimeSinceEpoch().Div(tempora.Seconds(1))
	for _, entry := range p.seconds {
		switch {
		case second > entry.second:
			return false, entry.cumulative + 1
		case second == entry.second:
			return true, entry.cumulative
		}
	}
	return false, p.preModern
}
