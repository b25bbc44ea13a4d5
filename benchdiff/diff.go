// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchdiff computes pairwise comparisons between benchmark
// records that share a name, and decides which comparisons are worth
// showing.
package benchdiff

import (
	"github.com/benchkit/benchcmp/benchfmt"
	"github.com/benchkit/benchcmp/benchproc"
)

// A Comparison is the computed delta between two records of the same
// benchmark. All differences are reported in terms of the candidate
// relative to the baseline: a positive DiffNs means the candidate is
// slower (a regression), a negative one means it is faster (an
// improvement).
type Comparison struct {
	Name      string
	Baseline  benchfmt.Record
	Candidate benchfmt.Record

	// DiffNs is candidate ns/iter minus baseline ns/iter, signed.
	DiffNs int64

	// DiffRatio is DiffNs divided by the baseline time. When the
	// baseline time is zero this is +/-Inf or NaN; the value is
	// carried as-is and rendered literally, never treated as an
	// error.
	DiffRatio float64
}

// Compare compares a baseline record against a candidate record.
// It is pure and never fails; a non-finite ratio is a valid output.
func Compare(baseline, candidate benchfmt.Record) Comparison {
	diffNs := int64(candidate.Ns) - int64(baseline.Ns)
	return Comparison{
		Name:      baseline.Name,
		Baseline:  baseline,
		Candidate: candidate,
		DiffNs:    diffNs,
		DiffRatio: float64(diffNs) / float64(baseline.Ns),
	}
}

// CompareAt compares the i'th and j'th entries of a joined name set.
// The caller chooses the column indices, which makes the same code
// serve both two-file comparisons and two-modules-out-of-many
// comparisons.
func CompareAt(set benchproc.NameSet, i, j int) Comparison {
	return Compare(set.Assocs[i].Record, set.Assocs[j].Record)
}
