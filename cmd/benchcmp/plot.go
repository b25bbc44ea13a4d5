// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/benchkit/benchcmp/benchfmt"
	"github.com/benchkit/benchcmp/benchplot"
	"github.com/benchkit/benchcmp/benchproc"
)

type plotOptions struct {
	by       string
	format   string
	outDir   string
	logScale bool
}

func newPlotCmd() *cobra.Command {
	var opts plotOptions
	cmd := &cobra.Command{
		Use:   "plot [flags] <file>...",
		Short: "Draw one bar chart per joined benchmark",
		Long: `Plot draws one bar chart per benchmark that occurs in at least two
sources, one bar per source, with the reported variance as error bars.
Sources are the input files, or with --by module, the module component
of the benchmark names pooled across all files.

The png, svg, pdf, and eps formats are rendered in-process. The
gnuplot format writes a gnuplot script per benchmark and pipes it to a
spawned gnuplot process, which must be installed and on PATH.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlot(cmd, &opts, args)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&opts.by, "by", "module", "group records by \"file\" or \"module\"")
	fl.StringVar(&opts.format, "format", "png", "chart format: png, svg, pdf, eps, or gnuplot")
	fl.StringVar(&opts.outDir, "out-dir", "benchcmp-out", "write charts into `dir`")
	fl.BoolVar(&opts.logScale, "log-scale", false, "draw the ns/iter axis on a log scale")

	viper.BindPFlag("plot.format", fl.Lookup("format"))
	viper.BindPFlag("plot.out-dir", fl.Lookup("out-dir"))
	viper.BindPFlag("plot.log-scale", fl.Lookup("log-scale"))

	return cmd
}

func runPlot(cmd *cobra.Command, opts *plotOptions, args []string) error {
	opts.format = viper.GetString("plot.format")
	opts.outDir = viper.GetString("plot.out-dir")
	opts.logScale = viper.GetBool("plot.log-scale")

	format, err := benchplot.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	if opts.by != "file" && opts.by != "module" {
		return fmt.Errorf("unknown grouping %q (want file or module)", opts.by)
	}

	files := benchfmt.Files{Paths: args, AllowStdin: true, AllowLabels: true}
	groups, err := files.Read()
	if err != nil {
		return err
	}
	if opts.by == "module" {
		groups = benchproc.ByModule(groups)
	}

	matched, unmatched := benchproc.ByName(groups)
	warnUnmatched(cmd, unmatched)

	n, err := benchplot.Render(matched, benchplot.Options{
		Dir:      opts.outDir,
		Format:   format,
		LogScale: opts.logScale,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d charts to %s\n", n, opts.outDir)
	return nil
}
