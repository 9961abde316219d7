// Copyright 2023 The Tempora Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tempora

import "go.tempora.net/calendar"

// A Scale describes one time scale: a human-readable name and
// abbreviation plus the scale's epoch, the calendar day at which the
// scale's own clock reads zero.
//
// Scales are zero-size tag types. They exist mostly at the type level,
// as the parameter of Instant, so that instants of different scales
// cannot be compared or combined without an explicit conversion. The
// set of scales is closed: external packages cannot define new ones.
type Scale interface {
	Name() string
	Abbrev() string
	Epoch() calendar.Date

	// sealed restricts implementations to this package. A time scale
	// is more than its descriptor: conversions and civil mapping need
	// to know every scale, so an open set would be unsound.
	sealed()
}

// A TerrestrialScale ticks at the same rate as TAI, differing from it
// only by the constant offset that held at the scale's own epoch. Any
// two terrestrial scales convert into each other exactly; see Convert.
//
// UTC carries a zero offset even though civil UTC is irregular: leap
// seconds are applied when date-times are constructed, so the
// time-since-epoch representation of UTC runs at the TAI rate.
type TerrestrialScale interface {
	Scale
	TAIOffset() Duration
}

// A UniformScale applies no leap seconds, so its civil date-time
// mapping is plain arithmetic on days, hours, minutes, and seconds.
type UniformScale interface {
	Scale
	uniform()
}

// Scale epochs. Each is stated as the civil date the defining body
// uses, rather than as a bare day number.
var (
	taiEpoch      = mustDate(1958, calendar.January, 1)
	utcEpoch      = mustDate(1972, calendar.January, 1)
	ttEpoch       = mustDate(1977, calendar.January, 1)
	gpstEpoch     = mustDate(1980, calendar.January, 6)
	glonasstEpoch = mustDate(1996, calendar.January, 1)
	qzsstEpoch    = mustDate(1999, calendar.August, 22)
	bdtEpoch      = mustDate(2006, calendar.January, 1)
)

func mustDate(year int, month calendar.Month, day int) calendar.Date {
	d, err := calendar.NewHistoricDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d.Date()
}

// TAI is International Atomic Time, the weighted average of hundreds
// of atomic clocks. It is the realized basis of all other scales here.
type TAI struct{}

func (TAI) Name() string         { return "International Atomic Time" }
func (TAI) Abbrev() string       { return "TAI" }
func (TAI) Epoch() calendar.Date { return taiEpoch }
func (TAI) TAIOffset() Duration  { return Duration{} }
func (TAI) sealed()              {}
func (TAI) uniform()             {}

// UTC is Coordinated Universal Time. It is adjusted with leap seconds
// to track the rotation of the Earth, which makes it the common civil
// scale but also means it needs external, discontinuous corrections.
//
// Leap seconds are applied at the date-time boundary: only when a UTC
// instant is built from or decomposed into a civil date-time. The
// stored time-since-epoch is continuous, so arithmetic on UTC instants
// is exact across every insertion. A consequence is that introducing a
// new leap second does not shift instants that were constructed
// earlier; applications that want the civil reading to move with the
// table should store date-time tuples and construct instants at the
// point of use.
//
// The epoch, 1972-01-01, is the start of modern UTC. Earlier
// date-times are permitted but interpret the proleptic table below.
type UTC struct{}

func (UTC) Name() string         { return "Coordinated Universal Time" }
func (UTC) Abbrev() string       { return "UTC" }
func (UTC) Epoch() calendar.Date { return utcEpoch }
func (UTC) TAIOffset() Duration  { return Duration{} }
func (UTC) sealed()              {}

// TT is Terrestrial Time, a constant 32.184 seconds ahead of TAI. It
// serves as the independent variable of planetary ephemerides.
type TT struct{}

func (TT) Name() string         { return "Terrestrial Time" }
func (TT) Abbrev() string       { return "TT" }
func (TT) Epoch() calendar.Date { return ttEpoch }
func (TT) TAIOffset() Duration  { return Milliseconds(32_184) }
func (TT) sealed()              {}
func (TT) uniform()             {}

// TCG is Geocentric Coordinate Time: the time of an idealized clock
// co-moving with the Earth but outside its gravity well. Its rate
// differs from TT by the IAU constant L_G, so it carries no constant
// TAI offset; see TTToTCG and TCGToTT.
type TCG struct{}

func (TCG) Name() string         { return "Geocentric Coordinate Time" }
func (TCG) Abbrev() string       { return "TCG" }
func (TCG) Epoch() calendar.Date { return ttEpoch }
func (TCG) sealed()              {}
func (TCG) uniform()             {}

// TCB is Barycentric Coordinate Time: the time of an idealized clock
// co-moving with the solar system barycenter, outside the Sun's
// gravity well. It converts to TDB by the rate constant L_B.
type TCB struct{}

func (TCB) Name() string         { return "Barycentric Coordinate Time" }
func (TCB) Abbrev() string       { return "TCB" }
func (TCB) Epoch() calendar.Date { return ttEpoch }
func (TCB) sealed()              {}
func (TCB) uniform()             {}

// TDB is Barycentric Dynamical Time, the independent variable of
// solar-system ephemerides. It stays within 2 milliseconds of TT.
type TDB struct{}

func (TDB) Name() string         { return "Barycentric Dynamical Time" }
func (TDB) Abbrev() string       { return "TDB" }
func (TDB) Epoch() calendar.Date { return ttEpoch }
func (TDB) sealed()              {}
func (TDB) uniform()             {}

// GPST is Global Positioning System Time. It has no leap seconds and
// is broadcast by the GPS constellation.
type GPST struct{}

func (GPST) Name() string         { return "Global Positioning System Time" }
func (GPST) Abbrev() string       { return "GPST" }
func (GPST) Epoch() calendar.Date { return gpstEpoch }
func (GPST) TAIOffset() Duration  { return Seconds(-19) }
func (GPST) sealed()              {}
func (GPST) uniform()             {}

// QZSST is Quasi-Zenith Satellite System Time, kept aligned with GPST.
type QZSST struct{}

func (QZSST) Name() string         { return "Quasi-Zenith Satellite System Time" }
func (QZSST) Abbrev() string       { return "QZSST" }
func (QZSST) Epoch() calendar.Date { return qzsstEpoch }
func (QZSST) TAIOffset() Duration  { return Seconds(-19) }
func (QZSST) sealed()              {}
func (QZSST) uniform()             {}

// BDT is BeiDou Time, broadcast by the BeiDou constellation. It has no
// leap seconds.
type BDT struct{}

func (BDT) Name() string         { return "BeiDou Time" }
func (BDT) Abbrev() string       { return "BDT" }
func (BDT) Epoch() calendar.Date { return bdtEpoch }
func (BDT) TAIOffset() Duration  { return Seconds(-33) }
func (BDT) sealed()              {}
func (BDT) uniform()             {}

// GLONASST is GLONASS Time. It follows UTC(SU) plus three hours
// (Moscow time), so it observes leap seconds like UTC does. Since leap
// seconds are accounted for at the date-time boundary, the remaining
// constant offset from TAI is the three hours.
type GLONASST struct{}

func (GLONASST) Name() string         { return "Glonass Time" }
func (GLONASST) Abbrev() string       { return "GLONASST" }
func (GLONASST) Epoch() calendar.Date { return glonasstEpoch }
func (GLONASST) TAIOffset() Duration  { return Hours(3) }
func (GLONASST) sealed()              {}
