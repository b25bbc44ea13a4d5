// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/csv"
	"fmt"
	"html/template"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/benchkit/benchcmp/benchdiff"
	"github.com/benchkit/benchcmp/benchfmt"
	"github.com/benchkit/benchcmp/benchunit"
	"github.com/benchkit/benchcmp/cmd/benchcmp/internal/texttab"
)

type tableHeader struct {
	Fst, Snd string
}

var (
	regressionStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	improvementStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

func formatNs(rec benchfmt.Record, variance bool) string {
	s := benchunit.Thousands(rec.Ns)
	if variance {
		s += fmt.Sprintf(" (+/- %s)", benchunit.Thousands(rec.Variance))
	}
	if rec.HasThroughput {
		s += fmt.Sprintf(" (%s MB/s)", benchunit.Thousands(rec.Throughput))
	}
	return s
}

func renderText(w io.Writer, hdr tableHeader, comparisons []benchdiff.Comparison, variance, color bool) error {
	var t texttab.Table
	t.Row().
		Cell("name").
		Cell(hdr.Fst + " ns/iter").
		Cell(hdr.Snd + " ns/iter").
		Cell("diff ns/iter", texttab.Right).
		Cell("diff %", texttab.Right)
	for _, c := range comparisons {
		diffOpts := []texttab.CellOption{texttab.Right}
		if color {
			switch {
			case c.DiffNs > 0:
				diffOpts = append(diffOpts, texttab.Styled(regressionStyle))
			case c.DiffNs < 0:
				diffOpts = append(diffOpts, texttab.Styled(improvementStyle))
			}
		}
		t.Row().
			Cell(c.Name).
			Cell(formatNs(c.Baseline, variance)).
			Cell(formatNs(c.Candidate, variance)).
			Cell(benchunit.SignedThousands(c.DiffNs), diffOpts...).
			Cell(benchunit.Percent(c.DiffRatio), diffOpts...)
	}
	return t.Format(w)
}

// renderCSV writes machine-readable rows: times and differences as
// plain integers and the relative difference in percent without the
// trailing sign.
func renderCSV(w io.Writer, hdr tableHeader, comparisons []benchdiff.Comparison) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"name", hdr.Fst + " ns/iter", hdr.Snd + " ns/iter", "diff ns/iter", "diff %"}); err != nil {
		return err
	}
	for _, c := range comparisons {
		row := []string{
			c.Name,
			strconv.FormatUint(c.Baseline.Ns, 10),
			strconv.FormatUint(c.Candidate.Ns, 10),
			strconv.FormatInt(c.DiffNs, 10),
			strconv.FormatFloat(c.DiffRatio*100, 'f', 2, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

type htmlRow struct {
	Name    string
	FstNs   string
	SndNs   string
	DiffNs  string
	DiffPct string
	Class   string
}

var htmlTemplate = template.Must(template.New("table").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>benchcmp</title>
<style>
table { border-collapse: collapse; font-family: monospace; }
th, td { padding: 0.2em 0.8em; text-align: left; }
td.num { text-align: right; }
tr.worse td.num { color: #c00; }
tr.better td.num { color: #080; }
</style>
</head>
<body>
<table class="benchcmp">
<thead>
<tr><th>name</th><th>{{.Header.Fst}} ns/iter</th><th>{{.Header.Snd}} ns/iter</th><th>diff ns/iter</th><th>diff %</th></tr>
</thead>
<tbody>
{{range .Rows -}}
<tr class="{{.Class}}"><td>{{.Name}}</td><td>{{.FstNs}}</td><td>{{.SndNs}}</td><td class="num">{{.DiffNs}}</td><td class="num">{{.DiffPct}}</td></tr>
{{end -}}
</tbody>
</table>
</body>
</html>
`))

func renderHTML(w io.Writer, hdr tableHeader, comparisons []benchdiff.Comparison, variance bool) error {
	rows := make([]htmlRow, 0, len(comparisons))
	for _, c := range comparisons {
		class := "unchanged"
		switch {
		case c.DiffNs > 0:
			class = "worse"
		case c.DiffNs < 0:
			class = "better"
		}
		rows = append(rows, htmlRow{
			Name:    c.Name,
			FstNs:   formatNs(c.Baseline, variance),
			SndNs:   formatNs(c.Candidate, variance),
			DiffNs:  benchunit.SignedThousands(c.DiffNs),
			DiffPct: benchunit.Percent(c.DiffRatio),
			Class:   class,
		})
	}
	return htmlTemplate.Execute(w, struct {
		Header tableHeader
		Rows   []htmlRow
	}{hdr, rows})
}
