// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchproc

import (
	"reflect"
	"testing"

	"github.com/benchkit/benchcmp/benchfmt"
)

func TestSplitName(t *testing.T) {
	tests := []struct {
		name, module, leaf string
	}{
		{"mod::bench", "mod", "bench"},
		{"mod::sub::bench", "mod", "sub::bench"},
		{"plain", "", "plain"},
		{"::leading", "", "leading"},
	}
	for _, test := range tests {
		mod, leaf := SplitName(test.name)
		if mod != test.module || leaf != test.leaf {
			t.Errorf("SplitName(%q) = %q, %q, want %q, %q",
				test.name, mod, leaf, test.module, test.leaf)
		}
	}
}

func TestByModule(t *testing.T) {
	groups := []benchfmt.Group{
		{Label: "old.txt", Records: []benchfmt.Record{
			{Name: "zeta::b", Ns: 1},
			{Name: "alpha::a", Ns: 2},
			{Name: "loose", Ns: 3},
		}},
		{Label: "new.txt", Records: []benchfmt.Record{
			{Name: "alpha::c", Ns: 4},
		}},
	}

	got := ByModule(groups)
	want := []benchfmt.Group{
		{Label: "", Records: []benchfmt.Record{{Name: "loose", Ns: 3}}},
		{Label: "alpha", Records: []benchfmt.Record{{Name: "a", Ns: 2}, {Name: "c", Ns: 4}}},
		{Label: "zeta", Records: []benchfmt.Record{{Name: "b", Ns: 1}}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ByModule = %+v, want %+v", got, want)
	}
}

func TestByModulePreservesOrder(t *testing.T) {
	// Records of the same module must keep their original relative
	// order even when interleaved with other modules.
	groups := []benchfmt.Group{
		{Label: "f", Records: []benchfmt.Record{
			{Name: "m::first"},
			{Name: "other::x"},
			{Name: "m::second"},
		}},
	}
	got := ByModule(groups)
	if got[0].Label != "m" {
		t.Fatalf("first module = %q, want %q", got[0].Label, "m")
	}
	if got[0].Records[0].Name != "first" || got[0].Records[1].Name != "second" {
		t.Errorf("module m records = %+v, want first then second", got[0].Records)
	}
}

func TestGroupByLabel(t *testing.T) {
	groups := []benchfmt.Group{{Label: "a", Records: []benchfmt.Record{{Name: "x"}}}}
	if g := GroupByLabel(groups, "a"); len(g.Records) != 1 {
		t.Errorf("GroupByLabel(a) = %+v, want the existing group", g)
	}
	if g := GroupByLabel(groups, "missing"); g.Label != "missing" || len(g.Records) != 0 {
		t.Errorf("GroupByLabel(missing) = %+v, want empty group", g)
	}
}
