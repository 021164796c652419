// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"cogentcore.org/dataframe/base/fsx"
	"cogentcore.org/dataframe/logx"
	"cogentcore.org/dataframe/table"
	"github.com/spf13/cobra"
)

// options are the flags shared by all commands.
type options struct {
	// delim is the input delimiter name, as for [table.ParseDelims].
	delim string

	noHeaders bool

	// kinds are the kinds of the input columns in order,
	// with auto to infer a kind.
	kinds []string

	// precision is the number of digits after the decimal point
	// when writing floats, -1 for the shortest exact representation.
	precision int

	// format is the output format: text, csv, tsv, markdown or html.
	format string

	// rows limits the rows printed in text format, 0 for all.
	rows int

	verbose bool
	quiet   bool
	debug   bool
	noColor bool
}

func newRootCmd() *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:   "dframe",
		Short: "Filter, order and group delimited data tables",
		Long: `dframe reads a delimited data table (CSV, TSV or space separated)
and writes the result of filtering, ordering, grouping or selecting it.
Several steps can be combined in a TOML or YAML pipeline file with the
run command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.Output = cmd.ErrOrStderr()
			logx.NoColor = o.noColor
			logx.SetLevel(logx.LevelFromFlags(o.debug, o.verbose, o.quiet))
		},
	}
	pf := cmd.PersistentFlags()
	pf.StringVarP(&o.delim, "delim", "d", "detect", "input delimiter: tab, comma, space or detect")
	pf.BoolVar(&o.noHeaders, "no-headers", false, "the input has no header row")
	pf.StringSliceVarP(&o.kinds, "kinds", "k", nil, "kinds of the input columns in order: float, int, string or auto")
	pf.IntVarP(&o.precision, "precision", "p", -1, "digits after the decimal point when writing floats")
	pf.StringVarP(&o.format, "format", "f", "text", "output format: text, csv, tsv, markdown or html")
	pf.IntVarP(&o.rows, "rows", "n", 0, "maximum number of rows to print in text format")
	pf.BoolVarP(&o.verbose, "verbose", "v", false, "print verbose log messages")
	pf.BoolVarP(&o.quiet, "quiet", "q", false, "print only errors")
	pf.BoolVar(&o.debug, "debug", false, "print debug log messages")
	pf.BoolVar(&o.noColor, "no-color", false, "disable colored output")

	cmd.AddCommand(newShowCmd(o), newTypesCmd(o), newFilterCmd(o), newOrderCmd(o), newGroupCmd(o), newRunCmd(o))
	return cmd
}

// open reads the table in the named file according to the options.
func (o *options) open(path string) (*table.Table, error) {
	delim, err := table.ParseDelims(o.delim)
	if err != nil {
		return nil, err
	}
	kinds, err := parseKinds(o.kinds)
	if err != nil {
		return nil, err
	}
	return openTable(path, delim, !o.noHeaders, kinds, o.precision)
}

func parseKinds(names []string) ([]table.Kind, error) {
	kinds := make([]table.Kind, len(names))
	for i, nm := range names {
		k, err := table.ParseKind(nm)
		if err != nil {
			return nil, err
		}
		kinds[i] = k
	}
	return kinds, nil
}

// openTable reads a table from a file, named after the file.
func openTable(path string, delim table.Delims, headers bool, kinds []table.Kind, prec int) (*table.Table, error) {
	fsys, fname, err := fsx.DirFS(path)
	if err != nil {
		return nil, err
	}
	dt, err := table.OpenFS(fsys, fname, delim, headers, kinds...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	dt.Meta.SetName(strings.TrimSuffix(fname, filepath.Ext(fname)))
	if prec >= 0 {
		dt.Meta.SetPrecision(prec)
	}
	slog.Debug("dframe: opened", "table", dt.String())
	return dt, nil
}

// write writes the table to w in the output format.
func (o *options) write(w io.Writer, dt *table.Table) error {
	switch strings.ToLower(o.format) {
	case "", "text":
		return printTable(w, dt, o.rows)
	case "csv":
		return dt.WriteCSV(w, table.Comma, table.Headers)
	case "tsv":
		return dt.WriteCSV(w, table.Tab, table.Headers)
	case "markdown", "md":
		return writeMarkdown(w, dt)
	case "html":
		return writeHTML(w, dt)
	}
	return fmt.Errorf("unknown output format %q", o.format)
}
