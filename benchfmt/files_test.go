// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"os"
	"path/filepath"
	"testing"
)

func writeReport(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0666); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFilesRead(t *testing.T) {
	dir := t.TempDir()
	old := writeReport(t, dir, "old.txt", "test a ... bench: 10 ns/iter (+/- 1)\n")
	new_ := writeReport(t, dir, "new.txt", "test a ... bench: 20 ns/iter (+/- 2)\n")

	f := &Files{Paths: []string{old, new_}}
	groups, err := f.Read()
	if err != nil {
		t.Fatal(err)
	}
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if groups[0].Label != old || groups[1].Label != new_ {
		t.Errorf("labels = %q, %q, want paths", groups[0].Label, groups[1].Label)
	}
	if groups[0].Records[0].Ns != 10 || groups[1].Records[0].Ns != 20 {
		t.Errorf("unexpected records: %+v", groups)
	}
}

func TestFilesLabels(t *testing.T) {
	dir := t.TempDir()
	path := writeReport(t, dir, "run.txt", "test a ... bench: 10 ns/iter (+/- 1)\n")

	f := &Files{Paths: []string{"before=" + path, "after=" + path}, AllowLabels: true}
	groups, err := f.Read()
	if err != nil {
		t.Fatal(err)
	}
	if groups[0].Label != "before" || groups[1].Label != "after" {
		t.Errorf("labels = %q, %q, want overridden labels", groups[0].Label, groups[1].Label)
	}
}

func TestFilesDuplicateDisambiguation(t *testing.T) {
	dir := t.TempDir()
	path := writeReport(t, dir, "run.txt", "test a ... bench: 10 ns/iter (+/- 1)\n")

	f := &Files{Paths: []string{path, path}}
	groups, err := f.Read()
	if err != nil {
		t.Fatal(err)
	}
	want0, want1 := path+"#0", path+"#1"
	if groups[0].Label != want0 || groups[1].Label != want1 {
		t.Errorf("labels = %q, %q, want %q, %q", groups[0].Label, groups[1].Label, want0, want1)
	}
}

func TestFilesMissing(t *testing.T) {
	f := &Files{Paths: []string{filepath.Join(t.TempDir(), "nope.txt")}}
	if _, err := f.Read(); err == nil {
		t.Fatal("Read() succeeded on a missing file")
	}
}
