// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchproc

import (
	"sort"

	"github.com/benchkit/benchcmp/benchfmt"
)

// An Assoc pairs a record with the label of the group that
// contributed it.
type Assoc struct {
	Label  string
	Record benchfmt.Record
}

// A NameSet collects every record observed under one benchmark name,
// across all source groups, in source order.
type NameSet struct {
	Name   string
	Assocs []Assoc
}

// ByName pivots source-keyed groups into benchmark-name-keyed sets.
// Each set lists the (label, record) pairs for every group containing
// a record under that name, in the same relative order as groups.
// Sets are returned in lexicographic name order so output is
// reproducible across runs on the same input.
//
// The result is partitioned into matched sets (two or more entries,
// comparable) and unmatched singles, which callers must report, never
// silently drop.
func ByName(groups []benchfmt.Group) (matched, unmatched []NameSet) {
	byName := make(map[string][]Assoc)
	for _, g := range groups {
		for _, rec := range g.Records {
			byName[rec.Name] = append(byName[rec.Name], Assoc{g.Label, rec})
		}
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		set := NameSet{Name: name, Assocs: byName[name]}
		if len(set.Assocs) < 2 {
			unmatched = append(unmatched, set)
		} else {
			matched = append(matched, set)
		}
	}
	return matched, unmatched
}

// A Warning reports the benchmark names that appeared only under one
// source label and were excluded from comparison.
type Warning struct {
	Label string
	Names []string
}

// UnmatchedWarnings folds unmatched sets into one Warning per first
// contributing label, ordered by label.
func UnmatchedWarnings(unmatched []NameSet) []Warning {
	byLabel := make(map[string][]string)
	for _, set := range unmatched {
		label := set.Assocs[0].Label
		byLabel[label] = append(byLabel[label], set.Name)
	}

	labels := make([]string, 0, len(byLabel))
	for label := range byLabel {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	warnings := make([]Warning, 0, len(labels))
	for _, label := range labels {
		warnings = append(warnings, Warning{Label: label, Names: byLabel[label]})
	}
	return warnings
}
