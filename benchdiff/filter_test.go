// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchdiff

import (
	"math"
	"testing"
)

func TestFilterThreshold(t *testing.T) {
	c := Comparison{DiffNs: 5, DiffRatio: 0.05} // a 5% change

	if (Filter{Threshold: 10}).Keep(c) {
		t.Error("5%% change kept with threshold 10")
	}
	if !(Filter{Threshold: 4}).Keep(c) {
		t.Error("5%% change dropped with threshold 4")
	}
	// Truncation toward zero: 5.9% truncates to 5, below threshold 6.
	if (Filter{Threshold: 6}).Keep(Comparison{DiffNs: 1, DiffRatio: 0.059}) {
		t.Error("5.9%% change kept with threshold 6")
	}
	// Negative threshold disables the check entirely.
	if !(Filter{Threshold: -1}).Keep(Comparison{DiffNs: 1, DiffRatio: 0.001}) {
		t.Error("tiny change dropped with thresholding disabled")
	}
}

func TestFilterShowModes(t *testing.T) {
	regression := Comparison{DiffNs: 50, DiffRatio: 0.5}
	improvement := Comparison{DiffNs: -50, DiffRatio: -0.33}
	tie := Comparison{DiffNs: 0, DiffRatio: 0}

	tests := []struct {
		show Show
		c    Comparison
		want bool
	}{
		{ShowBoth, regression, true},
		{ShowBoth, improvement, true},
		{ShowBoth, tie, true},
		{ShowRegressions, regression, true},
		{ShowRegressions, improvement, false},
		{ShowRegressions, tie, false},
		{ShowImprovements, regression, false},
		{ShowImprovements, improvement, true},
		{ShowImprovements, tie, false},
	}
	for _, test := range tests {
		f := Filter{Threshold: -1, Show: test.show}
		if got := f.Keep(test.c); got != test.want {
			t.Errorf("show %v, diff %d: Keep = %v, want %v",
				test.show, test.c.DiffNs, got, test.want)
		}
	}
}

func TestFilterNonFinite(t *testing.T) {
	// +Inf exceeds any threshold.
	inf := Comparison{DiffNs: 10, DiffRatio: math.Inf(1)}
	if !(Filter{Threshold: 100}).Keep(inf) {
		t.Error("+Inf ratio dropped by threshold 100")
	}
	// NaN is never excluded by the threshold alone.
	nan := Comparison{DiffNs: 0, DiffRatio: math.NaN()}
	if !(Filter{Threshold: 100}).Keep(nan) {
		t.Error("NaN ratio dropped by threshold")
	}
	// The zero delta behind a NaN ratio still falls to show modes.
	if (Filter{Threshold: -1, Show: ShowRegressions}).Keep(nan) {
		t.Error("NaN/zero-delta comparison kept under regressions-only")
	}
}
