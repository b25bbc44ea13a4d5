// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchproc

import (
	"regexp"

	"github.com/benchkit/benchcmp/benchfmt"
)

// StripNames returns a copy of g in which every record's name has all
// matches of re replaced with the empty string. A nil re is a no-op.
//
// Pattern compilation is the caller's concern: an invalid pattern is a
// configuration error and must be surfaced before any record is
// touched, so this function only accepts already-compiled patterns.
func StripNames(g benchfmt.Group, re *regexp.Regexp) benchfmt.Group {
	if re == nil {
		return g
	}
	out := benchfmt.Group{Label: g.Label, Records: make([]benchfmt.Record, len(g.Records))}
	for i, rec := range g.Records {
		rec.Name = re.ReplaceAllString(rec.Name, "")
		out.Records[i] = rec
	}
	return out
}
