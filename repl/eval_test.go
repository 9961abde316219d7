// Copyright 2023 The Tempora Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package repl

import (
	"strings"
	"testing"
)

func TestEvalExpressions(t *testing.T) {
	for _, test := range []struct {
		input string
		want  string
	}{
		{"2004-05-14T16:43:32 TAI", "2004-05-14T16:43:32 TAI"},
		{"2004-05-14T16:43:32 TAI in GPST", "2004-05-14T16:43:13 GPST"},
		{"2004-05-14T16:43:32 TAI in TT", "2004-05-14T16:44:04.184 TT"},
		{"1996-01-01T00:00:00 UTC in GLONASST", "1996-01-01T03:00:00 GLONASST"},
		{"1977-01-01T00:00:00 TAI in TT", "1977-01-01T00:00:32.184 TT"},
		{"1977-01-01T00:00:32.184 TT in TCG", "1977-01-01T00:00:32.184 TCG"},
		{"2004-05-14T16:43:32 TAI + PT1H30M", "2004-05-14T18:13:32 TAI"},
		{"2004-05-14T16:43:32 TAI - PT32S", "2004-05-14T16:43:00 TAI"},
		{"2004-05-14T16:43:32 TAI - 2004-05-14T00:00:00 TAI", "PT16H43M32S"},
		{"2004-05-14T16:43:32 TAI + PT1H - PT1H", "2004-05-14T16:43:32 TAI"},
		{"PT1H + PT30M", "PT1H30M"},
		{"PT1H - PT90M", "-PT30M"},
		{"P1DT2H + PT0.5S", "P1DT2H0.5S"},
		{"2016-12-31T23:59:60 UTC", "2016-12-31T23:59:60 UTC"},
		{"2016-12-31T23:59:60 UTC in TAI", "2017-01-01T00:00:36 TAI"},
		{"", ""},
	} {
		s := NewSession(nil)
		got, err := s.Eval(test.input)
		if err != nil {
			t.Errorf("Eval(%q): %v", test.input, err)
			continue
		}
		if got != test.want {
			t.Errorf("Eval(%q) = %q, want %q", test.input, got, test.want)
		}
	}
}

func TestEvalCommands(t *testing.T) {
	s := NewSession(nil)

	got, err := s.Eval("mjd 2000-01-01T00:00:00 TAI")
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if got != "51544" {
		t.Errorf("mjd = %q, want \"51544\"", got)
	}

	got, err = s.Eval("weekday 1970-01-01T12:00:00 TAI")
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if got != "Thursday" {
		t.Errorf("weekday = %q, want \"Thursday\"", got)
	}

	if _, err := s.Eval("precision 3"); err != nil {
		t.Fatalf("Eval: %v", err)
	}
	got, err = s.Eval("1960-01-01T12:34:56.789123 TAI")
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if got != "1960-01-01T12:34:56.789 TAI" {
		t.Errorf("after precision 3: %q", got)
	}

	got, err = s.Eval("help")
	if err != nil || !strings.Contains(got, "precision") {
		t.Errorf("help = %q, %v", got, err)
	}
}

func TestEvalApproximateConversions(t *testing.T) {
	s := NewSession(nil)
	got, err := s.Eval("2006-01-15T21:24:37.5 TT in TDB")
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if !strings.HasSuffix(got, " (approximate)") {
		t.Errorf("TDB conversion %q lacks the approximate marker", got)
	}
	if !strings.Contains(got, " TDB") {
		t.Errorf("TDB conversion %q lacks the scale abbreviation", got)
	}
}

func TestEvalErrors(t *testing.T) {
	for _, test := range []struct {
		input string
		want  string // substring of the error
	}{
		{"2004-05-14T16:43:32 GST", "did you mean GPST?"},
		{"2004-05-14T16:43:32 TAI in XYZ", "unknown time scale"},
		{"2004-05-14T16:43:32 TAI + 2004-05-14T16:43:32 TAI", "subtract"},
		{"2004-05-14T16:43:32 TAI - 2004-05-14T16:43:32 UTC", "convert one first"},
		{"2004-05-14T16:43:32 TDB in TAI", "no conversion"},
		{"PT1H in TAI", "duration has no time scale"},
		{"PT1H junk", "unexpected"},
		{"2016-06-30T23:59:60 UTC", "leap second"},
		{"precision lots", "not a number"},
	} {
		s := NewSession(nil)
		_, err := s.Eval(test.input)
		if err == nil {
			t.Errorf("Eval(%q) unexpectedly succeeded", test.input)
			continue
		}
		if !strings.Contains(err.Error(), test.want) {
			t.Errorf("Eval(%q) error %q does not mention %q", test.input, err, test.want)
		}
	}
}
