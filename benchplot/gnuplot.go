// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchplot

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"

	"github.com/benchkit/benchcmp/benchproc"
)

// renderGnuplot writes a native gnuplot script for set to path and
// feeds it to a spawned gnuplot process so the chart shows up
// immediately. Failure to launch gnuplot is an error; there is no
// retry and no fallback.
func renderGnuplot(set benchproc.NameSet, path string, logScale bool) error {
	script := gnuplotScript(set, logScale)
	if err := os.WriteFile(path, script, 0666); err != nil {
		return err
	}

	cmd := exec.Command("gnuplot", "-p")
	cmd.Stdin = bytes.NewReader(script)
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running gnuplot (is it installed and on PATH?): %w", err)
	}
	return nil
}

// gnuplotScript renders one benchmark as a self-contained gnuplot
// script with inline data, one boxerrorbar per source.
func gnuplotScript(set benchproc.NameSet, logScale bool) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "set title '%s'\n", set.Name)
	fmt.Fprintf(&buf, "set ylabel 'ns/iter'\n")
	if logScale {
		fmt.Fprintf(&buf, "set logscale y\n")
	} else {
		var yMax uint64
		for _, assoc := range set.Assocs {
			if top := assoc.Record.Ns + assoc.Record.Variance; top > yMax {
				yMax = top
			}
		}
		fmt.Fprintf(&buf, "set yrange [0:%.2f]\n", float64(yMax)*1.02)
	}
	fmt.Fprintf(&buf, "set boxwidth 0.9\n")
	fmt.Fprintf(&buf, "set style fill solid border -1\n")
	fmt.Fprintf(&buf, "plot '-' using 0:2:3:xtic(1) with boxerrorbars notitle\n")
	for _, assoc := range set.Assocs {
		fmt.Fprintf(&buf, "'%s' %d %d\n", assoc.Label, assoc.Record.Ns, assoc.Record.Variance)
	}
	fmt.Fprintf(&buf, "e\n")
	return buf.Bytes()
}
