// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"fmt"
	"os"
	"strings"
)

// A Files reads benchmark reports from a sequence of input files,
// producing one Group per input, labeled with the file path.
//
// By default a Group's label is the path itself, except that duplicate
// paths are disambiguated by appending "#N". If AllowLabels is set,
// entries in Paths may be of the form label=path and the label part is
// used verbatim (without disambiguation).
type Files struct {
	// Paths is the list of file names to read in.
	Paths []string

	// AllowStdin indicates that the path "-" should be treated as
	// stdin. This is generally the desired behavior when the file
	// list comes from command-line arguments.
	AllowStdin bool

	// AllowLabels indicates that label=path entries are allowed in
	// Paths, letting users override the provenance label.
	AllowLabels bool
}

type input struct {
	path      string
	label     string
	isStdin   bool
	isLabeled bool
}

func (f *Files) inputs() []input {
	var inputs []input
	pathCount := make(map[string]int)
	for _, path := range f.Paths {
		label := path
		isLabeled := false
		if i := strings.Index(path, "="); f.AllowLabels && i >= 0 {
			label, path = path[:i], path[i+1:]
			isLabeled = true
		} else {
			pathCount[path]++
		}
		isStdin := f.AllowStdin && path == "-"
		inputs = append(inputs, input{path, label, isStdin, isLabeled})
	}

	// If the same path is given multiple times, disambiguate its
	// label. Otherwise the resulting Groups are indistinguishable,
	// which is generally not what users expect. For overridden
	// labels, we do exactly what the user said.
	pathI := make(map[string]int)
	for i := range inputs {
		inp := &inputs[i]
		if inp.isLabeled || pathCount[inp.path] == 1 {
			continue
		}
		inp.label = fmt.Sprintf("%s#%d", inp.path, pathI[inp.path])
		pathI[inp.path]++
	}
	return inputs
}

// Read reads every input fully into memory and returns one Group per
// input, in input order. Any unreadable file aborts the whole read.
func (f *Files) Read() ([]Group, error) {
	var groups []Group
	for _, inp := range f.inputs() {
		var g Group
		if inp.isStdin {
			var err error
			g, err = ReadAll(os.Stdin, inp.label)
			if err != nil {
				return nil, err
			}
		} else {
			file, err := os.Open(inp.path)
			if err != nil {
				return nil, fmt.Errorf("reading benchmarks: %w", err)
			}
			g, err = ReadAll(file, inp.label)
			file.Close()
			if err != nil {
				return nil, err
			}
		}
		groups = append(groups, g)
	}
	return groups, nil
}
