// Copyright 2023 The Tempora Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tempora

// Convert re-expresses an instant of one terrestrial scale in another.
//
// All terrestrial scales tick at the TAI rate, so the conversion is a
// constant derived from the two scales' epochs and TAI offsets and is
// exact: converting there and back returns the original instant for
// every representable input. The target scale is the first type
// parameter so that the source can be inferred:
//
//	tai := Convert[TAI](gpsTime)
func Convert[To, From TerrestrialScale](t Instant[From]) Instant[To] {
	var from From
	var to To
	return Instant[To]{convertTerrestrial(from, to, t.sinceEpoch)}
}

func convertTerrestrial(from, to TerrestrialScale, sinceEpoch Duration) Duration {
	epochOffset := Days(int64(from.Epoch().DaysSince(to.Epoch())))
	fromOffset := from.TAIOffset()
	toOffset := to.TAIOffset()
	// The subtraction order flips with the sign so that intermediate
	// magnitudes stay as small as possible.
	if fromOffset.Compare(toOffset) >= 0 {
		return sinceEpoch.Sub(fromOffset.Sub(toOffset)).Add(epochOffset)
	}
	return sinceEpoch.Add(toOffset.Sub(fromOffset)).Add(epochOffset)
}
