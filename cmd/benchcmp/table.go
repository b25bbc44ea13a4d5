// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"os"
	"regexp"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/benchkit/benchcmp/benchdiff"
	"github.com/benchkit/benchcmp/benchfmt"
	"github.com/benchkit/benchcmp/benchproc"
)

type tableOptions struct {
	byModule     []string
	output       string
	format       string
	variance     bool
	threshold    int
	regressions  bool
	improvements bool
	stripFst     string
	stripSnd     string
	noColor      bool
}

func newTableCmd() *cobra.Command {
	var opts tableOptions
	cmd := &cobra.Command{
		Use:   "table [flags] <old-file> <new-file>",
		Short: "Render a pairwise comparison table",
		Long: `Table joins benchmarks that occur under the same name in two
sources and prints one row per joined benchmark: both times in
ns/iter, the signed time difference, and the relative difference in
percent. Positive differences mean the second source is slower.

By default the two sources are exactly two report files. With
--by-module, records from all given files are pooled and regrouped by
the module component of their names (the part before "::"), and the
two named modules are compared instead.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTable(cmd, &opts, args)
		},
	}

	fl := cmd.Flags()
	fl.StringSliceVar(&opts.byModule, "by-module", nil, "compare two modules drawn from all input files, e.g. --by-module old,new")
	fl.StringVarP(&opts.output, "output", "o", "", "write the table to `file` instead of stdout")
	fl.StringVar(&opts.format, "format", "text", "table format: text, csv, or html")
	fl.BoolVar(&opts.variance, "variance", false, "show the reported +/- variance next to each time")
	fl.IntVar(&opts.threshold, "threshold", -1, "only show comparisons whose difference is at least `percent` (0-100)")
	fl.BoolVar(&opts.regressions, "regressions", false, "only show benchmarks that got slower")
	fl.BoolVar(&opts.improvements, "improvements", false, "only show benchmarks that got faster")
	fl.StringVar(&opts.stripFst, "strip-fst", "", "strip names in the first source by `regexp`")
	fl.StringVar(&opts.stripSnd, "strip-snd", "", "strip names in the second source by `regexp`")
	fl.BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	viper.BindPFlag("table.format", fl.Lookup("format"))
	viper.BindPFlag("table.variance", fl.Lookup("variance"))
	viper.BindPFlag("table.threshold", fl.Lookup("threshold"))
	viper.BindPFlag("table.no-color", fl.Lookup("no-color"))

	return cmd
}

func runTable(cmd *cobra.Command, opts *tableOptions, args []string) error {
	opts.format = viper.GetString("table.format")
	opts.variance = viper.GetBool("table.variance")
	opts.threshold = viper.GetInt("table.threshold")
	opts.noColor = viper.GetBool("table.no-color")

	switch opts.format {
	case "text", "csv", "html":
	default:
		return fmt.Errorf("unknown table format %q (want text, csv, or html)", opts.format)
	}
	if opts.threshold != -1 && (opts.threshold < 0 || opts.threshold > 100) {
		return fmt.Errorf("--threshold must be between 0 and 100, got %d", opts.threshold)
	}

	// Bad strip patterns are configuration errors; fail before
	// touching any input.
	stripFst, err := compileStrip("--strip-fst", opts.stripFst)
	if err != nil {
		return err
	}
	stripSnd, err := compileStrip("--strip-snd", opts.stripSnd)
	if err != nil {
		return err
	}

	if len(opts.byModule) > 0 && len(opts.byModule) != 2 {
		return fmt.Errorf("expected exactly two module names with --by-module, got %d", len(opts.byModule))
	}
	if len(opts.byModule) == 0 && len(args) != 2 {
		return fmt.Errorf("expected exactly two report files, got %d", len(args))
	}

	files := benchfmt.Files{Paths: args, AllowStdin: true, AllowLabels: true}
	groups, err := files.Read()
	if err != nil {
		return err
	}

	var fst, snd benchfmt.Group
	if len(opts.byModule) == 2 {
		byMod := benchproc.ByModule(groups)
		fst = benchproc.GroupByLabel(byMod, opts.byModule[0])
		snd = benchproc.GroupByLabel(byMod, opts.byModule[1])
	} else {
		fst, snd = groups[0], groups[1]
	}
	fst = benchproc.StripNames(fst, stripFst)
	snd = benchproc.StripNames(snd, stripSnd)

	matched, unmatched := benchproc.ByName([]benchfmt.Group{fst, snd})
	warnUnmatched(cmd, unmatched)

	filter := benchdiff.Filter{
		Threshold: opts.threshold,
		Show:      showMode(opts.regressions, opts.improvements),
	}
	var comparisons []benchdiff.Comparison
	for _, set := range matched {
		c := benchdiff.CompareAt(set, 0, 1)
		if filter.Keep(c) {
			comparisons = append(comparisons, c)
		}
	}

	// Render fully before writing anything, so a rendering error
	// never leaves a partial output file behind.
	var buf bytes.Buffer
	hdr := tableHeader{Fst: fst.Label, Snd: snd.Label}
	switch opts.format {
	case "text":
		color := opts.output == "" && !opts.noColor
		err = renderText(&buf, hdr, comparisons, opts.variance, color)
	case "csv":
		err = renderCSV(&buf, hdr, comparisons)
	case "html":
		err = renderHTML(&buf, hdr, comparisons, opts.variance)
	}
	if err != nil {
		return err
	}

	if opts.output != "" {
		return os.WriteFile(opts.output, buf.Bytes(), 0666)
	}
	_, err = cmd.OutOrStdout().Write(buf.Bytes())
	return err
}

func compileStrip(flag, pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid %s pattern: %w", flag, err)
	}
	return re, nil
}

func showMode(regressions, improvements bool) benchdiff.Show {
	switch {
	case regressions && !improvements:
		return benchdiff.ShowRegressions
	case improvements && !regressions:
		return benchdiff.ShowImprovements
	}
	return benchdiff.ShowBoth
}

func warnUnmatched(cmd *cobra.Command, unmatched []benchproc.NameSet) {
	for _, w := range benchproc.UnmatchedWarnings(unmatched) {
		fmt.Fprintf(cmd.ErrOrStderr(), "WARNING: ignoring benchmarks %v that were only found in %q\n", w.Names, w.Label)
	}
}
