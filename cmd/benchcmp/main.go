// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchcmp compares textual micro-benchmark reports.
//
// Usage:
//
//	benchcmp table [options] <old-file> <new-file>
//	benchcmp table [options] --by-module <mod1>,<mod2> <file>...
//	benchcmp plot [options] <file>...
//
// Each input file contains report lines of the form
//
//	test mod::name ... bench: 1,234 ns/iter (+/- 56) = 2,000 MB/s
//
// mixed with arbitrary other text, which is ignored. Input paths may
// be "-" for stdin and may carry a custom column label as label=path.
//
// The table command joins benchmarks that appear under the same name
// in both inputs and prints one comparison row per joined benchmark:
// the two times, the signed difference in ns/iter, and the relative
// difference in percent. A positive difference means the second input
// is slower (a regression). With --by-module, records from all inputs
// are regrouped by the module component of their names and the two
// named modules are compared instead of the two files.
//
// The plot command draws one bar chart per joined benchmark, one bar
// per source with the reported variance as error bars. The png, svg,
// pdf, and eps formats are rendered in-process; the gnuplot format
// writes a native gnuplot script per benchmark and feeds it to a
// spawned gnuplot, which must be installed.
//
// Benchmarks found in only one source are reported on stderr and
// excluded from comparison; they never abort the run.
//
// Defaults for most options may be supplied through BENCHCMP_*
// environment variables (for example BENCHCMP_TABLE_THRESHOLD=5) or a
// .benchcmp.yaml file in the working directory. Explicit flags win.
package main

import "log"

func main() {
	log.SetPrefix("benchcmp: ")
	log.SetFlags(0)
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
