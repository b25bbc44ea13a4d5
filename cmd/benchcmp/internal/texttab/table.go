// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texttab does layout of text-based tables.
package texttab

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// Table lays out rows of aligned, optionally styled cells.
//
// Many of its methods return the Table so callers can chain them to
// build up many cells at once. Styling never affects layout: column
// widths are computed from the plain cell values, and styles are
// applied around them at format time.
type Table struct {
	rows [][]cell
}

type cell struct {
	value string
	right bool
	style *lipgloss.Style
}

// A CellOption adjusts the presentation of a single cell.
type CellOption func(c *cell)

var (
	// Left aligns the cell to the left. This is the default.
	Left CellOption = func(c *cell) { c.right = false }
	// Right aligns the cell to the right.
	Right CellOption = func(c *cell) { c.right = true }
)

// Styled renders the cell value through s. Layout is unaffected.
func Styled(s lipgloss.Style) CellOption {
	return func(c *cell) { c.style = &s }
}

// Row starts a new row in table t.
func (t *Table) Row() *Table {
	t.rows = append(t.rows, nil)
	return t
}

// Cell appends a cell to the current row.
func (t *Table) Cell(value string, opts ...CellOption) *Table {
	if len(t.rows) == 0 {
		t.Row()
	}
	c := cell{value: value}
	for _, o := range opts {
		o(&c)
	}
	row := len(t.rows) - 1
	t.rows[row] = append(t.rows[row], c)
	return t
}

const gutter = "  "

// Format lays out table t and writes it to w.
func (t *Table) Format(w io.Writer) error {
	// Column widths from plain values.
	var ws []int
	for _, row := range t.rows {
		for i, c := range row {
			for len(ws) < i+1 {
				ws = append(ws, 0)
			}
			if n := utf8.RuneCountInString(c.value); n > ws[i] {
				ws[i] = n
			}
		}
	}

	var sb strings.Builder
	for _, row := range t.rows {
		sb.Reset()
		for i, c := range row {
			if i > 0 {
				sb.WriteString(gutter)
			}
			pad := ws[i] - utf8.RuneCountInString(c.value)
			value := c.value
			if c.style != nil {
				value = c.style.Render(value)
			}
			if c.right {
				sb.WriteString(strings.Repeat(" ", pad))
				sb.WriteString(value)
			} else {
				sb.WriteString(value)
				// Pad left-aligned cells only when another cell
				// follows, to avoid trailing spaces.
				if i < len(row)-1 {
					sb.WriteString(strings.Repeat(" ", pad))
				}
			}
		}
		if _, err := fmt.Fprintln(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}
