// Copyright 2023 The Tempora Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package repl

import (
	"fmt"
	"strconv"
	"strings"

	"go.tempora.net/calendar"
	"go.tempora.net/syntax"
	"go.tempora.net/tempora"
)

// A Session holds the state of one evaluation session: the leap-second
// provider consulted when reading and displaying UTC-like timestamps,
// and the display precision for fractional seconds.
type Session struct {
	Provider  tempora.LeapSecondProvider
	Precision int
}

// NewSession returns a session using the given provider, or the
// built-in leap-second table if nil, and full display precision.
func NewSession(p tempora.LeapSecondProvider) *Session {
	if p == nil {
		p = tempora.StaticLeapSeconds{}
	}
	return &Session{Provider: p, Precision: -1}
}

// An instant is a parsed timestamp whose time scale was chosen at run
// time rather than compiled in.
type instant struct {
	abbrev string
	since  tempora.Duration
}

// scaleOps funnels the statically-tagged instant API into one shape
// per scale so that expressions can dispatch on an abbreviation read
// from the input.
type scaleOps struct {
	abbrev string
	parse  func(s *Session, text string) (tempora.Duration, error)
	civil  func(s *Session, d tempora.Duration) (calendar.Date, int, int, int, tempora.Duration)
	mjd    func(d tempora.Duration) calendar.ModifiedJulianDate

	// toTAI and fromTAI bridge a scale to TAI, exactly where physics
	// allows and nil where it does not. approximate marks bridges that
	// go through the approximate TT-to-TDB formula.
	toTAI       func(d tempora.Duration) tempora.Duration
	fromTAI     func(d tempora.Duration) tempora.Duration
	approximate bool
}

var scales = make(map[string]*scaleOps)

// scaleNames lists the supported abbreviations for error hints, most
// commonly used first.
var scaleNames = []string{"TAI", "UTC", "TT", "GPST", "GLONASST", "BDT", "QZSST", "TCG", "TCB", "TDB"}

func register[S tempora.Scale]() *scaleOps {
	var tag S
	ops := &scaleOps{
		abbrev: tag.Abbrev(),
		parse: func(s *Session, text string) (tempora.Duration, error) {
			t, err := syntax.ParseInstantWith[S](s.Provider, text)
			return t.TimeSinceEpoch(), err
		},
		civil: func(s *Session, d tempora.Duration) (calendar.Date, int, int, int, tempora.Duration) {
			return tempora.FromTimeSinceEpoch[S](d).FineDateTimeWith(s.Provider)
		},
		mjd: func(d tempora.Duration) calendar.ModifiedJulianDate {
			return tempora.FromTimeSinceEpoch[S](d).ModifiedJulianDate()
		},
	}
	scales[ops.abbrev] = ops
	return ops
}

func registerTerrestrial[S tempora.TerrestrialScale]() {
	ops := register[S]()
	ops.toTAI = func(d tempora.Duration) tempora.Duration {
		return tempora.Convert[tempora.TAI](tempora.FromTimeSinceEpoch[S](d)).TimeSinceEpoch()
	}
	ops.fromTAI = func(d tempora.Duration) tempora.Duration {
		return tempora.Convert[S](tempora.FromTimeSinceEpoch[tempora.TAI](d)).TimeSinceEpoch()
	}
}

func init() {
	registerTerrestrial[tempora.TAI]()
	registerTerrestrial[tempora.UTC]()
	registerTerrestrial[tempora.TT]()
	registerTerrestrial[tempora.GPST]()
	registerTerrestrial[tempora.QZSST]()
	registerTerrestrial[tempora.BDT]()
	registerTerrestrial[tempora.GLONASST]()

	tcg := register[tempora.TCG]()
	tcg.toTAI = func(d tempora.Duration) tempora.Duration {
		t := tempora.FromTCG[tempora.TAI](tempora.FromTimeSinceEpoch[tempora.TCG](d))
		return t.TimeSinceEpoch()
	}
	tcg.fromTAI = func(d tempora.Duration) tempora.Duration {
		t := tempora.ToTCG(tempora.FromTimeSinceEpoch[tempora.TAI](d))
		return t.TimeSinceEpoch()
	}

	// Barycentric scales reach the terrestrial ones only through the
	// approximate TT-to-TDB formula, and only in that direction.
	tdb := register[tempora.TDB]()
	tdb.approximate = true
	tdb.fromTAI = func(d tempora.Duration) tempora.Duration {
		tt := tempora.Convert[tempora.TT](tempora.FromTimeSinceEpoch[tempora.TAI](d))
		return tempora.ApproximateTDB(tt).TimeSinceEpoch()
	}

	tcb := register[tempora.TCB]()
	tcb.approximate = true
	tcb.fromTAI = func(d tempora.Duration) tempora.Duration {
		tt := tempora.Convert[tempora.TT](tempora.FromTimeSinceEpoch[tempora.TAI](d))
		tdb := tempora.ApproximateTDB(tt)
		return tempora.TDBToTCB(tdb).TimeSinceEpoch()
	}
}

func lookupScale(name string) (*scaleOps, error) {
	if ops, ok := scales[name]; ok {
		return ops, nil
	}
	msg := fmt.Sprintf("unknown time scale %q", name)
	if hint := nearest(name, scaleNames); hint != "" {
		msg += fmt.Sprintf("; did you mean %s?", hint)
	}
	return nil, fmt.Errorf("%s", msg)
}

const helpText = `Expressions:
  2004-05-14T16:43:32 TAI            parse and display an instant
  2004-05-14T16:43:32 TAI in GPST    convert between time scales
  2004-05-14T16:43:32 TAI + PT1H30M  shift an instant by a duration
  2004-05-14T16:43:32 TAI - 2004-05-14T00:00:00 TAI
                                     difference between two instants
  PT1H + PT30M                       duration arithmetic
Commands:
  mjd <instant>                      modified Julian date
  weekday <instant>                  day of the week
  precision <n>                      fractional display digits, -1 for all
  help`

// Eval evaluates one input line and returns its printed form. An
// empty line evaluates to an empty result.
func (s *Session) Eval(line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}

	switch fields[0] {
	case "help":
		return helpText, nil
	case "precision":
		if len(fields) != 2 {
			return "", fmt.Errorf("usage: precision <n>")
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return "", fmt.Errorf("precision %q is not a number", fields[1])
		}
		s.Precision = n
		return "", nil
	case "mjd":
		v, rest, err := s.parseInstantFields(fields[1:])
		if err != nil {
			return "", err
		}
		if len(rest) != 0 {
			return "", fmt.Errorf("unexpected %q after instant", strings.Join(rest, " "))
		}
		return strconv.Itoa(int(scales[v.abbrev].mjd(v.since))), nil
	case "weekday":
		v, rest, err := s.parseInstantFields(fields[1:])
		if err != nil {
			return "", err
		}
		if len(rest) != 0 {
			return "", fmt.Errorf("unexpected %q after instant", strings.Join(rest, " "))
		}
		date, _, _, _, _ := scales[v.abbrev].civil(s, v.since)
		return date.Weekday().String(), nil
	}

	return s.evalExpr(fields)
}

// value is the result of an operand or expression: either an instant
// or a duration.
type value struct {
	isInstant   bool
	inst        instant
	dur         tempora.Duration
	approximate bool
}

func (s *Session) evalExpr(fields []string) (string, error) {
	lhs, rest, err := s.parseOperand(fields)
	if err != nil {
		return "", err
	}

	for len(rest) > 0 {
		switch rest[0] {
		case "in":
			if len(rest) < 2 {
				return "", fmt.Errorf("expected a time scale after \"in\"")
			}
			if !lhs.isInstant {
				return "", fmt.Errorf("a duration has no time scale to convert")
			}
			converted, approx, err := s.convert(lhs.inst, rest[1])
			if err != nil {
				return "", err
			}
			lhs.inst = converted
			lhs.approximate = lhs.approximate || approx
			rest = rest[2:]

		case "+", "-":
			op := rest[0]
			rhs, after, err := s.parseOperand(rest[1:])
			if err != nil {
				return "", err
			}
			lhs, err = apply(lhs, op, rhs)
			if err != nil {
				return "", err
			}
			rest = after

		default:
			return "", fmt.Errorf("unexpected %q", rest[0])
		}
	}

	return s.formatValue(lhs), nil
}

func apply(lhs value, op string, rhs value) (value, error) {
	switch {
	case lhs.isInstant && !rhs.isInstant:
		d := rhs.dur
		if op == "-" {
			d = d.Neg()
		}
		lhs.inst.since = lhs.inst.since.Add(d)
		return lhs, nil
	case lhs.isInstant && rhs.isInstant:
		if op != "-" {
			return value{}, fmt.Errorf("two instants can only be subtracted")
		}
		if lhs.inst.abbrev != rhs.inst.abbrev {
			return value{}, fmt.Errorf("cannot subtract a %s instant from a %s instant; convert one first",
				rhs.inst.abbrev, lhs.inst.abbrev)
		}
		return value{dur: lhs.inst.since.Sub(rhs.inst.since)}, nil
	case !lhs.isInstant && rhs.isInstant:
		return value{}, fmt.Errorf("cannot apply %q to a duration and an instant", op)
	default:
		d := rhs.dur
		if op == "-" {
			d = d.Neg()
		}
		lhs.dur = lhs.dur.Add(d)
		return lhs, nil
	}
}

// parseOperand consumes an instant (two fields: timestamp and scale)
// or a duration (one field) from the front of fields.
func (s *Session) parseOperand(fields []string) (value, []string, error) {
	if len(fields) == 0 {
		return value{}, nil, fmt.Errorf("expected an instant or duration")
	}
	if strings.HasPrefix(fields[0], "P") || strings.HasPrefix(fields[0], "-P") {
		d, err := syntax.ParseDuration(fields[0])
		if err != nil {
			return value{}, nil, fmt.Errorf("%q: %w", fields[0], err)
		}
		return value{dur: d}, fields[1:], nil
	}
	v, rest, err := s.parseInstantFields(fields)
	if err != nil {
		return value{}, nil, err
	}
	return value{isInstant: true, inst: v}, rest, nil
}

// parseInstantFields consumes a timestamp and its scale abbreviation.
func (s *Session) parseInstantFields(fields []string) (instant, []string, error) {
	if len(fields) < 2 {
		return instant{}, nil, fmt.Errorf("expected an instant like \"2004-05-14T16:43:32 TAI\"")
	}
	ops, err := lookupScale(fields[1])
	if err != nil {
		return instant{}, nil, err
	}
	since, err := ops.parse(s, fields[0]+" "+fields[1])
	if err != nil {
		return instant{}, nil, err
	}
	return instant{abbrev: ops.abbrev, since: since}, fields[2:], nil
}

// convert moves an instant to another scale. Conversions among the
// terrestrial scales and TCG are exact; those into TDB or TCB go
// through the approximate TT-to-TDB formula and are flagged, and no
// conversion leads back out of them.
func (s *Session) convert(v instant, target string) (instant, bool, error) {
	to, err := lookupScale(target)
	if err != nil {
		return instant{}, false, err
	}
	if to.abbrev == v.abbrev {
		return v, false, nil
	}

	// The exact barycentric pair.
	if v.abbrev == "TCB" && to.abbrev == "TDB" {
		t := tempora.TCBToTDB(tempora.FromTimeSinceEpoch[tempora.TCB](v.since))
		return instant{"TDB", t.TimeSinceEpoch()}, false, nil
	}
	if v.abbrev == "TDB" && to.abbrev == "TCB" {
		t := tempora.TDBToTCB(tempora.FromTimeSinceEpoch[tempora.TDB](v.since))
		return instant{"TCB", t.TimeSinceEpoch()}, false, nil
	}

	from := scales[v.abbrev]
	if from.toTAI == nil {
		return instant{}, false, fmt.Errorf("no conversion from %s to %s", v.abbrev, to.abbrev)
	}
	if to.fromTAI == nil {
		return instant{}, false, fmt.Errorf("no conversion from %s to %s", v.abbrev, to.abbrev)
	}
	return instant{to.abbrev, to.fromTAI(from.toTAI(v.since))}, to.approximate, nil
}

func (s *Session) formatValue(v value) string {
	var out string
	if v.isInstant {
		out = s.formatInstant(v.inst)
	} else {
		out = v.dur.Format(s.Precision)
	}
	if v.approximate {
		out += " (approximate)"
	}
	return out
}

// formatInstant renders like Instant.Format but resolves leap seconds
// through the session's provider.
func (s *Session) formatInstant(v instant) string {
	date, hour, minute, second, subseconds := scales[v.abbrev].civil(s, v.since)
	historic := date.Historic()

	var b strings.Builder
	fmt.Fprintf(&b, "%04d-%02d-%02dT%02d:%02d:%02d",
		historic.Year(), int(historic.Month()), historic.Day(), hour, minute, second)
	if !subseconds.IsZero() {
		b.WriteByte('.')
		for _, digit := range subseconds.DecimalDigits(s.Precision) {
			b.WriteByte('0' + digit)
		}
	}
	b.WriteByte(' ')
	b.WriteString(v.abbrev)
	return b.String()
}
