// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchfmt parses textual micro-benchmark reports.
//
// A report is a free-form text stream in which some lines carry one
// measured result each, in the form
//
//	test mod::name ... bench: 1,234 ns/iter (+/- 56) = 2,000 MB/s
//
// Lines that do not match that grammar are not errors; they are simply
// not benchmark lines (headers, compiler noise, blank lines) and are
// skipped.
package benchfmt

import (
	"regexp"
	"strconv"
	"strings"
)

// A Record is a single parsed benchmark result.
//
// Records are plain values; the pipeline stages copy them rather than
// sharing them.
type Record struct {
	// Name is the benchmark identifier, conventionally of the form
	// "module::leaf" but not guaranteed to contain a separator.
	Name string

	// Ns is the central measurement in nanoseconds per iteration.
	Ns uint64

	// Variance is the reported +/- spread in nanoseconds.
	Variance uint64

	// Throughput is the measured throughput in MB/s. It is only
	// meaningful if HasThroughput is set; not every report line
	// carries a throughput figure.
	Throughput    uint64
	HasThroughput bool
}

// lineRE recognizes one benchmark line. The line may carry arbitrary
// leading and trailing tokens; numeric fields may use "," as a
// thousands separator.
var lineRE = regexp.MustCompile(
	`test\s+(\S+)\s+\S+\s+bench:\s+([0-9,]+)\s+ns/iter\s+\(\+/-\s+([0-9,]+)\)(?:\s+=\s+([0-9,]+)\s+MB/s)?`)

// ParseLine parses a single line of report text.
// It returns the parsed Record and true, or a zero Record and false if
// the line is not a well-formed benchmark line. A line whose shape
// matches but whose required numeric fields do not parse is rejected
// as a whole; a Record is never partially populated.
func ParseLine(line string) (Record, bool) {
	m := lineRE.FindStringSubmatch(line)
	if m == nil {
		return Record{}, false
	}
	ns, err := parseGrouped(m[2])
	if err != nil {
		return Record{}, false
	}
	variance, err := parseGrouped(m[3])
	if err != nil {
		return Record{}, false
	}
	rec := Record{Name: m[1], Ns: ns, Variance: variance}
	if m[4] != "" {
		tp, err := parseGrouped(m[4])
		if err != nil {
			return Record{}, false
		}
		rec.Throughput, rec.HasThroughput = tp, true
	}
	return rec, true
}

// parseGrouped parses a non-negative integer that may contain ","
// thousands separators.
func parseGrouped(s string) (uint64, error) {
	return strconv.ParseUint(strings.ReplaceAll(s, ",", ""), 10, 64)
}

// A Group is a collection of Records sharing one provenance label:
// the file they were read from or, after regrouping, the module their
// names were qualified with.
//
// A Group makes no uniqueness claim about the names of its Records;
// duplicates are retained.
type Group struct {
	Label   string
	Records []Record
}
