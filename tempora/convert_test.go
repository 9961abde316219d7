// Copyright 2023 The Tempora Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tempora

import (
	"math/rand"
	"testing"

	"go.tempora.net/calendar"
)

// Known timestamps from Vallado and McClain, "Fundamentals of
// Astrodynamics": GPS (and the aligned QZSS) run 19 seconds behind
// TAI.
func TestKnownGPSTimestamps(t *testing.T) {
	tai := mustInstant[TAI](t, 2004, calendar.May, 14, 16, 43, 32)
	gpst := mustInstant[GPST](t, 2004, calendar.May, 14, 16, 43, 13)
	if got := Convert[TAI](gpst); !got.Equal(tai) {
		t.Errorf("GPST converts to %s, want %s", got, tai)
	}
	qzsst := mustInstant[QZSST](t, 2004, calendar.May, 14, 16, 43, 13)
	if got := Convert[TAI](qzsst); !got.Equal(tai) {
		t.Errorf("QZSST converts to %s, want %s", got, tai)
	}
}

// TT runs a constant 32.184 seconds ahead of TAI.
func TestKnownTTTimestamps(t *testing.T) {
	tai := mustInstant[TAI](t, 2004, calendar.May, 14, 16, 43, 32)
	tt, err := FromFineHistoricDateTime[TT](2004, calendar.May, 14, 16, 44, 4, Milliseconds(184))
	if err != nil {
		t.Fatal(err)
	}
	if got := Convert[TAI](tt); !got.Equal(tai) {
		t.Errorf("TT converts to %s, want %s", got, tai)
	}

	tai = mustInstant[TAI](t, 1977, calendar.January, 1, 0, 0, 0)
	tt, err = FromFineHistoricDateTime[TT](1977, calendar.January, 1, 0, 0, 32, Milliseconds(184))
	if err != nil {
		t.Fatal(err)
	}
	if got := Convert[TT](tai); !got.Equal(tt) {
		t.Errorf("TAI converts to %s, want %s", got, tt)
	}
}

// The BeiDou epoch coincides with UTC new year 2006.
func TestKnownBDTTimestamps(t *testing.T) {
	utc := mustInstant[UTC](t, 2006, calendar.January, 1, 0, 0, 0)
	bdt := mustInstant[BDT](t, 2006, calendar.January, 1, 0, 0, 0)
	if got := Convert[UTC](bdt); !got.Equal(utc) {
		t.Errorf("BDT converts to %s, want %s", got, utc)
	}
}

func TestTerrestrialConversionExact(t *testing.T) {
	// Converting to another terrestrial scale and back must return the
	// original instant bit for bit.
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 10_000; i++ {
		instant := FromTimeSinceEpoch[TAI](Nanoseconds(rng.Int63() - rng.Int63()))
		if got := Convert[TAI](Convert[GPST](instant)); !got.Equal(instant) {
			t.Fatalf("TAI->GPST->TAI changed %s into %s", instant, got)
		}
		if got := Convert[TAI](Convert[GLONASST](instant)); !got.Equal(instant) {
			t.Fatalf("TAI->GLONASST->TAI changed %s into %s", instant, got)
		}
		if got := Convert[TAI](Convert[TT](instant)); !got.Equal(instant) {
			t.Fatalf("TAI->TT->TAI changed %s into %s", instant, got)
		}
		if got := Convert[TAI](Convert[BDT](Convert[UTC](instant))); !got.Equal(instant) {
			t.Fatalf("TAI->UTC->BDT->TAI changed %s into %s", instant, got)
		}
	}
}
