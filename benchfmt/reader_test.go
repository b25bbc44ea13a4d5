// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"testing/iotest"
)

func TestReader(t *testing.T) {
	const report = `
running 2 tests

test alpha::one ... bench: 100 ns/iter (+/- 5)
some compiler warning here
test alpha::two ... bench: 2,000 ns/iter (+/- 30) = 512 MB/s

test result: ok. 0 passed; 0 failed
`
	r := NewReader(strings.NewReader(report), "report.txt")
	var got []Record
	for r.Scan() {
		got = append(got, r.Record())
	}
	if err := r.Err(); err != nil {
		t.Fatalf("Err() = %v, want nil", err)
	}
	want := []Record{
		{Name: "alpha::one", Ns: 100, Variance: 5},
		{Name: "alpha::two", Ns: 2000, Variance: 30, Throughput: 512, HasThroughput: true},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("records = %+v, want %+v", got, want)
	}
}

func TestReaderIOError(t *testing.T) {
	bad := errors.New("disk on fire")
	r := NewReader(iotest.ErrReader(bad), "bad.txt")
	if r.Scan() {
		t.Fatal("Scan() = true, want false")
	}
	if err := r.Err(); !errors.Is(err, bad) {
		t.Errorf("Err() = %v, want wrapped %v", err, bad)
	}
}

func TestReadAll(t *testing.T) {
	g, err := ReadAll(strings.NewReader("test a ... bench: 1 ns/iter (+/- 0)\n"), "lbl")
	if err != nil {
		t.Fatal(err)
	}
	if g.Label != "lbl" {
		t.Errorf("Label = %q, want %q", g.Label, "lbl")
	}
	if len(g.Records) != 1 || g.Records[0].Name != "a" {
		t.Errorf("Records = %+v, want one record named \"a\"", g.Records)
	}
}

func TestReadAllEmpty(t *testing.T) {
	g, err := ReadAll(strings.NewReader("no benchmarks here\n"), "empty")
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Records) != 0 {
		t.Errorf("Records = %+v, want none", g.Records)
	}
}
