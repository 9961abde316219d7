// Copyright 2023 The Tempora Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tempora

// The coordinate scales TCG and TCB do not keep a constant offset from
// TAI: their clocks run at slightly different rates, defined by the
// IAU constants L_G and L_B relative to the reference instant
// 1977-01-01T00:00:32.184. This file implements those rate-corrected
// conversions as fixed-point rational arithmetic.
//
// An exact fixed-point inverse of a rate correction does not exist, so
// each pair uses deliberately different denominators in the two
// directions, chosen so that a round trip stays within a few
// attoseconds over the practical range of instants.

import (
	"math"

	"go.tempora.net/calendar"
)

// referenceOffset is the time since the shared 1977-01-01 epoch of the
// reference instant at which the rate-corrected scales agree with TT:
// 1977-01-01T00:00:32.184, the TT reading of TAI's new year 1977.
var referenceOffset = Milliseconds(32_184)

// L_G = 6.969290134e-10 expressed as the exact rational
// 3,484,645,067 / 5e18.
const (
	lgNumerator          = 3_484_645_067
	lgDenominator        = 5_000_000_000_000_000_000
	lgInverseDenominator = 4_999_999_996_515_354_933
)

// L_B = 1.550519768e-8 expressed as the exact rational
// 193,814,971 / 1.25e16, and the defining offset TDB0 = -65.5 us.
const (
	lbNumerator          = 193_814_971
	lbDenominator        = 12_500_000_000_000_000
	lbInverseDenominator = 12_499_999_806_185_029
)

// TTToTCG converts Terrestrial Time to Geocentric Coordinate Time.
func TTToTCG(t Instant[TT]) Instant[TCG] {
	sinceReference := t.TimeSinceEpoch().Sub(referenceOffset)
	rate := sinceReference.Mul(lgNumerator).DivRound(lgInverseDenominator)
	return Instant[TCG]{sinceReference.Add(rate).Add(referenceOffset)}
}

// TCGToTT converts Geocentric Coordinate Time to Terrestrial Time.
func TCGToTT(t Instant[TCG]) Instant[TT] {
	sinceReference := t.TimeSinceEpoch().Sub(referenceOffset)
	rate := sinceReference.Mul(lgNumerator).DivRound(lgDenominator)
	return Instant[TT]{sinceReference.Sub(rate).Add(referenceOffset)}
}

// tcb0 is TDB0 carried over to the TCB side of the conversion,
// re-scaled with the inverse rate so that the two directions agree.
var tcb0 = Nanoseconds(65_500).Mul(lbDenominator).DivRound(lbInverseDenominator)

// TCBToTDB converts Barycentric Coordinate Time to Barycentric
// Dynamical Time.
func TCBToTDB(t Instant[TCB]) Instant[TDB] {
	sinceReference := t.TimeSinceEpoch().Sub(referenceOffset)
	rate := sinceReference.Mul(lbNumerator).DivRound(lbDenominator)
	tdb := sinceReference.Sub(rate).Add(referenceOffset).Sub(Nanoseconds(65_500))
	return Instant[TDB]{tdb}
}

// TDBToTCB converts Barycentric Dynamical Time to Barycentric
// Coordinate Time.
func TDBToTCB(t Instant[TDB]) Instant[TCB] {
	sinceReference := t.TimeSinceEpoch().Sub(referenceOffset)
	rate := sinceReference.Mul(lbNumerator).DivRound(lbInverseDenominator)
	tcb := sinceReference.Add(rate).Add(tcb0).Add(referenceOffset)
	return Instant[TCB]{tcb}
}

// ToTCG converts any terrestrial scale to Geocentric Coordinate Time
// by way of TT.
func ToTCG[From TerrestrialScale](t Instant[From]) Instant[TCG] {
	return TTToTCG(Convert[TT](t))
}

// FromTCG converts Geocentric Coordinate Time to any terrestrial
// scale by way of TT.
func FromTCG[To TerrestrialScale](t Instant[TCG]) Instant[To] {
	return Convert[To](TCGToTT(t))
}

// ApproximateTDB estimates Barycentric Dynamical Time from TT with the
// IAU SOFA expression TDB = TT + 1657 us * sin(g), g being a linear
// approximation of the Earth's mean anomaly referenced to J2000. The
// estimate is accurate to about 50 microseconds between 1980 and 2100;
// it is not a scale-conversion law and has no inverse.
//
// See "SOFA Time Scale and Calendar Tools", section "TDB minus TT".
func ApproximateTDB(t Instant[TT]) Instant[TDB] {
	j2000, err := FromHistoricDateTime[TT](2000, calendar.January, 1, 12, 0, 0)
	if err != nil {
		panic(err)
	}
	const meanAnomalyPerSecond = 0.017_202 / 86_400
	secondsSinceJ2000 := t.Since(j2000).Float64In(Second)
	meanAnomaly := 6.24 + meanAnomalyPerSecond*secondsSinceJ2000
	offsetAttos := math.Round(0.001_657 * math.Sin(meanAnomaly) * 1e18)
	return Instant[TDB]{t.TimeSinceEpoch().Add(Attoseconds(int64(offsetAttos)))}
}
