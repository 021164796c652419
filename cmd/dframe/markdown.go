// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"strings"

	"cogentcore.org/dataframe/table"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// markdownTable returns the table as a markdown pipe table,
// with numeric columns right aligned and missing values empty.
func markdownTable(dt *table.Table) []byte {
	sn := dt.Snapshot()
	var b strings.Builder
	row := func(cells []string) {
		b.WriteString("|")
		for _, s := range cells {
			b.WriteString(" " + strings.ReplaceAll(s, "|", `\|`) + " |")
		}
		b.WriteString("\n")
	}
	row(sn.Names)
	rule := make([]string, len(sn.Kinds))
	for c, k := range sn.Kinds {
		rule[c] = "---"
		if k == table.Float || k == table.Int {
			rule[c] = "---:"
		}
	}
	row(rule)
	for _, cells := range sn.Cells {
		for c, s := range cells {
			if sn.Kinds[c] == table.Float && s == "NaN" {
				cells[c] = ""
			}
		}
		row(cells)
	}
	return []byte(b.String())
}

// writeMarkdown writes the table to w as a markdown pipe table.
func writeMarkdown(w io.Writer, dt *table.Table) error {
	_, err := w.Write(markdownTable(dt))
	return err
}

// writeHTML writes the table to w as an HTML table.
func writeHTML(w io.Writer, dt *table.Table) error {
	p := parser.NewWithExtensions(parser.Tables)
	r := html.NewRenderer(html.RendererOptions{Flags: html.FlagsNone})
	_, err := w.Write(markdown.ToHTML(markdownTable(dt), p, r))
	return err
}
