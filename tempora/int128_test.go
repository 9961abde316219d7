// Copyright 2023 The Tempora Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tempora

import (
	"math"
	"math/rand"
	"testing"
)

func TestInt128QuoRem(t *testing.T) {
	// Narrow operands must agree with native 64-bit division.
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10_000; i++ {
		x := rng.Int63() - rng.Int63()
		y := rng.Int63()%1_000_003 + 1
		if i%2 == 0 {
			y = -y
		}
		q, r := int128Of(x).quoRem(int128Of(y))
		if got, want := q.toInt64(), x/y; got != want {
			t.Fatalf("%d / %d = %d, want %d", x, y, got, want)
		}
		if got, want := r.toInt64(), x%y; got != want {
			t.Fatalf("%d %% %d = %d, want %d", x, y, got, want)
		}
	}
}

func TestInt128WideDivision(t *testing.T) {
	// Divisors wider than 64 bits exercise the shift-and-subtract path.
	x := int128Of(31_556_952).mul64(1_000_000_000_000_000_000).mul64(3)
	y := int128Of(86_400).mul64(1_000_000_000_000_000_000)
	q, r := x.quoRem(y)
	if got := q.toInt64(); got != 1095 { // 3 * 365.2425 days, truncated
		t.Errorf("quotient = %d, want 1095", got)
	}
	want := int128Of(62_856).mul64(1_000_000_000_000_000_000)
	if r != want {
		t.Errorf("remainder = %v, want %v", r, want)
	}
	if back := mul128(q, y).add(r); back != x {
		t.Errorf("q*y + r = %v, want %v", back, x)
	}
}

func TestInt128FloorCeil(t *testing.T) {
	for _, test := range []struct {
		x, y        int64
		floor, ceil int64
	}{
		{7, 2, 3, 4},
		{-7, 2, -4, -3},
		{7, -2, -4, -3},
		{-7, -2, 3, 4},
		{6, 3, 2, 2},
		{-6, 3, -2, -2},
	} {
		if got := int128Of(test.x).divFloor(int128Of(test.y)).toInt64(); got != test.floor {
			t.Errorf("floor(%d / %d) = %d, want %d", test.x, test.y, got, test.floor)
		}
		if got := int128Of(test.x).divCeil(int128Of(test.y)).toInt64(); got != test.ceil {
			t.Errorf("ceil(%d / %d) = %d, want %d", test.x, test.y, got, test.ceil)
		}
	}
}

func TestInt128Bounds(t *testing.T) {
	// abs of the minimum value must panic rather than wrap.
	func() {
		defer func() {
			if recover() == nil {
				t.Errorf("abs(min) did not panic")
			}
		}()
		minInt128.abs()
	}()
	if m := minInt128.magnitude(); m.hi != 1<<63 || m.lo != 0 {
		t.Errorf("magnitude(min) = %v", m)
	}
	if maxInt128.add(int128Of(-1)).add(int128Of(1)) != maxInt128 {
		t.Errorf("max - 1 + 1 != max")
	}

	func() {
		defer func() {
			if recover() == nil {
				t.Errorf("max + 1 did not panic")
			}
		}()
		maxInt128.add(int128Of(1))
	}()

	if got := int128Of(math.MinInt64).mul64(-1); got != (int128{0, 1 << 63}) {
		t.Errorf("min64 * -1 = %v, want 2^63", got)
	}
}
