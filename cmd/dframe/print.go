// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"cogentcore.org/dataframe/logx"
	"cogentcore.org/dataframe/table"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// printTable writes the table to w as aligned text, with numbers
// right aligned and null strings shown as null. At most maxRows rows
// are written if maxRows > 0. Lines are cut to the terminal width
// when w is a terminal, and the header is bold when it supports it.
func printTable(w io.Writer, dt *table.Table, maxRows int) error {
	sn := dt.Snapshot()
	cells := sn.Cells
	if maxRows > 0 && len(cells) > maxRows {
		cells = cells[:maxRows]
	}
	cols := dt.Columns()
	widths := make([]int, len(sn.Names))
	for c, nm := range sn.Names {
		widths[c] = utf8.RuneCountInString(nm)
	}
	for r, row := range cells {
		for c := range row {
			if null, _ := cols[c].IsNull(r); null && sn.Kinds[c] == table.String {
				row[c] = "null"
			}
			widths[c] = max(widths[c], utf8.RuneCountInString(row[c]))
		}
	}

	width := termWidth(w)
	out := termenv.NewOutput(w)
	bold := !logx.NoColor && out.Profile != termenv.Ascii
	header := cut(formatRow(sn.Names, nil, widths), width)
	if bold {
		header = out.String(header).Bold().String()
	}
	var b strings.Builder
	b.WriteString(header + "\n")
	for _, row := range cells {
		b.WriteString(cut(formatRow(row, sn.Kinds, widths), width) + "\n")
	}
	if more := len(sn.Cells) - len(cells); more > 0 {
		fmt.Fprintf(&b, "... %d more rows\n", more)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// formatRow pads the fields to the widths, right aligning numbers.
func formatRow(fields []string, kinds []table.Kind, widths []int) string {
	var b strings.Builder
	for c, s := range fields {
		if c > 0 {
			b.WriteString("  ")
		}
		pad := strings.Repeat(" ", widths[c]-utf8.RuneCountInString(s))
		if kinds != nil && (kinds[c] == table.Float || kinds[c] == table.Int) {
			b.WriteString(pad + s)
		} else {
			b.WriteString(s + pad)
		}
	}
	return strings.TrimRight(b.String(), " ")
}

// termWidth returns the width of the terminal w writes to,
// or 0 if it is not a terminal.
func termWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

// cut shortens s to width runes, marking the cut with an ellipsis.
func cut(s string, width int) string {
	if width <= 0 || utf8.RuneCountInString(s) <= width {
		return s
	}
	rs := []rune(s)
	return string(rs[:width-1]) + "…"
}
