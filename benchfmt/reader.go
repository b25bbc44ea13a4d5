// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"bufio"
	"fmt"
	"io"
)

// A Reader reads benchmark records from a report stream.
//
// Its API is modeled on bufio.Scanner: call Scan to advance to the
// next record, Record to retrieve it, and Err to check for I/O errors
// after Scan returns false. Lines that are not benchmark lines are
// skipped silently.
type Reader struct {
	s        *bufio.Scanner
	fileName string
	line     int
	rec      Record
	err      error
}

// NewReader constructs a Reader that parses records from r.
// fileName is used in error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string) *Reader {
	if fileName == "" {
		fileName = "<unknown>"
	}
	return &Reader{s: bufio.NewScanner(r), fileName: fileName}
}

// Scan advances the Reader to the next benchmark record and reports
// whether one was found. It returns false at EOF or on an I/O error;
// the caller should use Err to distinguish the two.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	for r.s.Scan() {
		r.line++
		if rec, ok := ParseLine(r.s.Text()); ok {
			r.rec = rec
			return true
		}
	}
	if err := r.s.Err(); err != nil {
		r.err = fmt.Errorf("%s:%d: %w", r.fileName, r.line, err)
	}
	return false
}

// Record returns the record read by the last successful call to Scan.
func (r *Reader) Record() Record {
	return r.rec
}

// Err returns the first non-EOF I/O error encountered by the Reader.
func (r *Reader) Err() error {
	return r.err
}

// ReadAll reads every benchmark record from r into a Group labeled
// label. The whole input is consumed; an I/O error makes the entire
// read fail rather than returning a truncated Group.
func ReadAll(r io.Reader, label string) (Group, error) {
	g := Group{Label: label}
	br := NewReader(r, label)
	for br.Scan() {
		g.Records = append(g.Records, br.Record())
	}
	if err := br.Err(); err != nil {
		return Group{}, err
	}
	return g, nil
}
