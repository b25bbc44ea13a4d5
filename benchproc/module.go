// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchproc regroups, filters, and joins benchmark records in
// preparation for comparison.
//
// Records arrive grouped by the file they were read from. This package
// can regroup them by the module component of their qualified names,
// strip noise from their names, and pivot file- or module-keyed groups
// into per-benchmark-name sets suitable for pairwise comparison.
package benchproc

import (
	"sort"
	"strings"

	"github.com/benchkit/benchcmp/benchfmt"
)

// Separator is the qualifier separator in benchmark names.
const Separator = "::"

// SplitName splits a qualified benchmark name into its module and leaf
// components at the first occurrence of Separator. A name with no
// separator belongs to the empty-string module and is all leaf.
func SplitName(name string) (module, leaf string) {
	if mod, rest, ok := strings.Cut(name, Separator); ok {
		return mod, rest
	}
	return "", name
}

// ByModule flattens the records of groups into a new sequence of
// Groups keyed by module name. Each record's name is rewritten to its
// leaf component. Resulting groups are ordered lexicographically by
// module; within a group, records keep their original relative order.
//
// A record whose name carries no separator lands in the group labeled
// with the empty string. That is intentional, not an error.
func ByModule(groups []benchfmt.Group) []benchfmt.Group {
	byMod := make(map[string][]benchfmt.Record)
	for _, g := range groups {
		for _, rec := range g.Records {
			mod, leaf := SplitName(rec.Name)
			rec.Name = leaf
			byMod[mod] = append(byMod[mod], rec)
		}
	}

	mods := make([]string, 0, len(byMod))
	for mod := range byMod {
		mods = append(mods, mod)
	}
	sort.Strings(mods)

	out := make([]benchfmt.Group, 0, len(mods))
	for _, mod := range mods {
		out = append(out, benchfmt.Group{Label: mod, Records: byMod[mod]})
	}
	return out
}

// GroupByLabel returns the group in groups labeled label, or an empty
// group with that label if none was discovered. An empty group simply
// means every counterpart benchmark will go unmatched.
func GroupByLabel(groups []benchfmt.Group, label string) benchfmt.Group {
	for _, g := range groups {
		if g.Label == label {
			return g
		}
	}
	return benchfmt.Group{Label: label}
}
