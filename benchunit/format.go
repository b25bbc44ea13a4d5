// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchunit formats the numbers this tool deals in: integral
// nanosecond counts with thousands separators and signed percentage
// deltas.
package benchunit

import (
	"fmt"
	"strconv"
)

// Thousands formats n in decimal with "," thousands separators.
func Thousands(n uint64) string {
	s := strconv.FormatUint(n, 10)
	if len(s) <= 3 {
		return s
	}
	buf := make([]byte, 0, len(s)+len(s)/3)
	lead := len(s) % 3
	if lead == 0 {
		lead = 3
	}
	buf = append(buf, s[:lead]...)
	for i := lead; i < len(s); i += 3 {
		buf = append(buf, ',')
		buf = append(buf, s[i:i+3]...)
	}
	return string(buf)
}

// SignedThousands formats n like Thousands, with a leading "-" for
// negative values.
func SignedThousands(n int64) string {
	if n < 0 {
		return "-" + Thousands(uint64(-n))
	}
	return Thousands(uint64(n))
}

// Percent formats ratio as a percentage with two decimal places.
// Non-finite ratios are rendered with Go's literal float spellings:
// "+Inf%", "-Inf%", and "NaN%". They arise from zero-time baselines
// and must round-trip through formatting without panicking.
func Percent(ratio float64) string {
	return fmt.Sprintf("%.2f%%", ratio*100)
}
