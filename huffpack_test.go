// Copyright (c) 2025, Huffpack Authors.
// SPDX-License-Identifier: BSD-3-Clause

package huffpack

import "testing"

func TestSavings(t *testing.T) {
	for _, tc := range []struct {
		original, compressed int
		want                 float64
	}{
		{100, 75, 25},
		{200, 50, 75},
		{100, 100, 0},
		{100, 150, 0},
		{0, 0, 0},
	} {
		if got := Savings(tc.original, tc.compressed); got != tc.want {
			t.Errorf("Savings(%d, %d) = %v, want %v", tc.original, tc.compressed, got, tc.want)
		}
	}
}
