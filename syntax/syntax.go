// Copyright 2023 The Tempora Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package syntax provides parsers for the textual forms used by the
// tempora package: ISO 8601 duration expressions such as "P1DT2H30M"
// and instant timestamps such as "2004-05-14T16:43:32.123 TAI".
//
// Parsing inverts the String and Format methods of tempora.Duration
// and tempora.Instant: for any value v, parsing v.String() yields v
// again.
package syntax // import "go.tempora.net/syntax"
