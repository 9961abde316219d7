// Copyright 2023 The Tempora Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tempora

import (
	"math/rand"
	"testing"

	"go.tempora.net/calendar"
)

// At the 1977-01-01T00:00:32.184 reference instant, TT and TCG agree
// by definition.
func TestKnownTCGTimestamps(t *testing.T) {
	tai := mustInstant[TAI](t, 1977, calendar.January, 1, 0, 0, 0)
	tcg, err := FromFineHistoricDateTime[TCG](1977, calendar.January, 1, 0, 0, 32, Milliseconds(184))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := TCGToTT(tcg), Convert[TT](tai); !got.Equal(want) {
		t.Errorf("TCG reference converts to %s, want %s", got, want)
	}

	tt, err := FromFineHistoricDateTime[TT](1977, calendar.January, 1, 0, 0, 32, Milliseconds(184))
	if err != nil {
		t.Fatal(err)
	}
	if got := TCGToTT(tcg); !got.Equal(tt) {
		t.Errorf("TCG reference = %s TT, want %s", got, tt)
	}
}

func TestTTTCGRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(44))
	limit := Attoseconds(10)
	for i := 0; i < 10_000; i++ {
		tt := FromTimeSinceEpoch[TT](Attoseconds(rng.Int63() - rng.Int63()))
		tt2 := TCGToTT(TTToTCG(tt))
		if diff := tt2.Since(tt).Abs(); !diff.Less(limit) {
			t.Fatalf("TT->TCG->TT drifted by %s for %s", diff, tt)
		}
	}
}

// Known value from the SOFA Time Scale and Calendar Tools
// documentation.
func TestKnownTCBTDBConversion(t *testing.T) {
	tdb, err := FromFineHistoricDateTime[TDB](2006, calendar.January, 15, 21, 25, 42, Microseconds(684_373))
	if err != nil {
		t.Fatal(err)
	}
	tcb, err := FromFineHistoricDateTime[TCB](2006, calendar.January, 15, 21, 25, 56, Microseconds(893_952))
	if err != nil {
		t.Fatal(err)
	}
	if diff := TCBToTDB(tcb).Since(tdb).Abs(); !diff.Less(Microseconds(1)) {
		t.Errorf("TCB->TDB off by %s", diff)
	}
	if diff := TDBToTCB(tdb).Since(tcb).Abs(); !diff.Less(Microseconds(1)) {
		t.Errorf("TDB->TCB off by %s", diff)
	}
}

func TestTDBTCBRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(44))
	limit := Attoseconds(10)
	for i := 0; i < 10_000; i++ {
		tdb := FromTimeSinceEpoch[TDB](Attoseconds(int64(rng.Int31() - rng.Int31())))
		tdb2 := TCBToTDB(TDBToTCB(tdb))
		if diff := tdb2.Since(tdb).Abs(); !diff.Less(limit) {
			t.Fatalf("TDB->TCB->TDB drifted by %s for %s", diff, tdb)
		}
	}
}

func TestApproximateTDB(t *testing.T) {
	// TDB never strays more than about 2 milliseconds from TT.
	for year := 1980; year <= 2100; year += 7 {
		tt := mustInstant[TT](t, year, calendar.March, 14, 6, 0, 0)
		tdb := ApproximateTDB(tt)
		diff := tdb.TimeSinceEpoch().Sub(tt.TimeSinceEpoch()).Abs()
		if !diff.Less(Milliseconds(2)) {
			t.Errorf("TDB-TT = %s in %d, want under 2ms", diff, year)
		}
	}
}

func TestTCGThroughTerrestrials(t *testing.T) {
	tai := mustInstant[TAI](t, 2004, calendar.May, 14, 16, 43, 32)
	tcg := ToTCG(tai)
	got := FromTCG[TAI](tcg)
	if diff := got.Since(tai).Abs(); !diff.Less(Attoseconds(10)) {
		t.Errorf("TAI->TCG->TAI drifted by %s", diff)
	}
}
