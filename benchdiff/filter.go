// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchdiff

import "math"

// Show selects which side of a comparison is interesting.
type Show int

const (
	// ShowBoth keeps regressions and improvements alike.
	ShowBoth Show = iota
	// ShowRegressions keeps only comparisons where the candidate is
	// strictly slower.
	ShowRegressions
	// ShowImprovements keeps only comparisons where the candidate is
	// strictly faster.
	ShowImprovements
)

func (s Show) String() string {
	switch s {
	case ShowRegressions:
		return "regressions"
	case ShowImprovements:
		return "improvements"
	}
	return "both"
}

// A Filter decides whether a Comparison is included in final output.
type Filter struct {
	// Threshold is the minimum absolute percentage change, 0 to 100.
	// A negative Threshold disables thresholding.
	Threshold int

	Show Show
}

// Keep reports whether c passes the filter.
//
// The percentage test truncates |DiffRatio|*100 toward zero and stays
// in floating point, so a +Inf ratio passes any threshold and a NaN
// ratio is never excluded by the threshold alone. A zero-delta
// comparison is neither a regression nor an improvement and survives
// only under ShowBoth.
func (f Filter) Keep(c Comparison) bool {
	if f.Threshold >= 0 {
		if math.Trunc(math.Abs(c.DiffRatio)*100) < float64(f.Threshold) {
			return false
		}
	}
	switch f.Show {
	case ShowRegressions:
		if c.DiffNs <= 0 {
			return false
		}
	case ShowImprovements:
		if c.DiffNs >= 0 {
			return false
		}
	}
	return true
}
