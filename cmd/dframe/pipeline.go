// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"log/slog"
	"path/filepath"
	"strings"

	"cogentcore.org/dataframe/table"
	"github.com/mitchellh/go-homedir"
	"golang.org/x/text/language"
)

// Pipeline is a sequence of steps applied to a table read from a file,
// in the order of the fields below. For example, in TOML:
//
//	input = "scores.csv"
//	kinds = ["string", "string", "int", "float"]
//	where = ["Math > 60", "or Class == b"]
//	order = "Math"
//	reverse = true
//	columns = ["Name", "Math"]
//	output = "top.tsv"
type Pipeline struct {
	// Includes are pipeline files whose settings are read first,
	// so that this file overrides them. Includes of includes are
	// read before the files that include them.
	Includes []string `toml:"includes" yaml:"includes"`

	// Input is the file to read. Relative paths are relative
	// to the directory of the pipeline file.
	Input string `toml:"input" yaml:"input"`

	// Delim is the input delimiter: tab, comma, space or detect.
	Delim string `toml:"delim" yaml:"delim"`

	NoHeaders bool `toml:"no_headers" yaml:"no_headers"`

	// Kinds are the kinds of the input columns in order.
	Kinds []table.Kind `toml:"kinds" yaml:"kinds"`

	// FillForward names columns whose missing values
	// are filled with the value before them.
	FillForward []string `toml:"fill_forward" yaml:"fill_forward"`

	// Where are criterion expressions, folded in order.
	Where []string `toml:"where" yaml:"where"`

	// Order is the column to order the rows by.
	Order string `toml:"order" yaml:"order"`

	// Collate is the language used to order strings, if any.
	Collate string `toml:"collate" yaml:"collate"`

	Reverse bool `toml:"reverse" yaml:"reverse"`

	// Columns selects the columns to keep, in order.
	Columns []string `toml:"columns" yaml:"columns"`

	// Group is the column to group by. The result has the count of rows
	// for each of its values, or with Dummy, indicator columns.
	Group string `toml:"group" yaml:"group"`

	Dummy bool `toml:"dummy" yaml:"dummy"`

	// Index adds an Index column numbering the result rows from 0.
	Index bool `toml:"index" yaml:"index"`

	// Output is the file to write, with the result printed if empty.
	Output string `toml:"output" yaml:"output"`

	// OutputDelim is the output delimiter, chosen from the
	// Output extension if empty: tab for .tsv, otherwise comma.
	OutputDelim string `toml:"output_delim" yaml:"output_delim"`

	// Precision is the number of digits after the decimal point
	// when writing floats, -1 for the shortest exact representation.
	Precision int `toml:"precision" yaml:"precision"`

	// dir is the directory of the pipeline file.
	dir string
}

func newPipeline() *Pipeline {
	return &Pipeline{Precision: -1}
}

// IncludesPtr returns a pointer to the Includes field.
func (p *Pipeline) IncludesPtr() *[]string {
	return &p.Includes
}

// path returns the file path relative to the pipeline directory.
func (p *Pipeline) path(file string) string {
	file, err := homedir.Expand(file)
	if err != nil || filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(p.dir, file)
}

// Run reads the input table and applies the steps to it.
func (p *Pipeline) Run() (*table.Table, error) {
	delim, err := table.ParseDelims(p.Delim)
	if err != nil {
		return nil, err
	}
	dt, err := openTable(p.path(p.Input), delim, !p.NoHeaders, p.Kinds, p.Precision)
	if err != nil {
		return nil, err
	}
	for _, col := range p.FillForward {
		if err := dt.FillForward(col); err != nil {
			return nil, err
		}
	}
	for _, expr := range p.Where {
		if err := dt.AddCriterionExpr(expr); err != nil {
			return nil, err
		}
	}
	if p.Order != "" {
		if err := orderBy(dt, p.Order, p.Collate); err != nil {
			return nil, err
		}
	}
	if p.Reverse {
		dt.ReverseOrder()
	}
	if err := dt.ApplyKeys(); err != nil {
		return nil, err
	}
	if len(p.Columns) > 0 {
		if dt, err = dt.ColumnSelect(p.Columns...); err != nil {
			return nil, err
		}
	}
	if p.Group != "" {
		if dt, err = groupBy(dt, p.Group, p.Dummy); err != nil {
			return nil, err
		}
	}
	if p.Index {
		if err := dt.AddIndexColumn(0); err != nil {
			return nil, err
		}
	}
	slog.Info("dframe: pipeline done", "table", dt.String())
	return dt, nil
}

// save writes the table to the output file.
func (p *Pipeline) save(dt *table.Table) error {
	out := p.path(p.Output)
	delim := table.Comma
	if p.OutputDelim != "" {
		d, err := table.ParseDelims(p.OutputDelim)
		if err != nil {
			return err
		}
		delim = d
	} else if strings.EqualFold(filepath.Ext(out), ".tsv") {
		delim = table.Tab
	}
	if p.Precision >= 0 {
		dt.Meta.SetPrecision(p.Precision)
	}
	if err := dt.SaveCSV(out, delim, table.Headers); err != nil {
		return err
	}
	slog.Info("dframe: wrote", "file", out)
	return nil
}

// orderBy sets the order key of the table to the column, with strings
// collated by the given language if it is not empty.
func orderBy(dt *table.Table, column, lang string) error {
	if lang == "" {
		return dt.SetOrderKey(column)
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return err
	}
	return dt.SetOrderKeyCollated(column, tag)
}

// groupBy returns the count of rows for each value of the column,
// or with dummy, the table with the column replaced by indicators.
func groupBy(dt *table.Table, column string, dummy bool) (*table.Table, error) {
	if err := dt.SetGroupKey(column); err != nil {
		return nil, err
	}
	if !dummy {
		return dt.UniqueCount()
	}
	if err := dt.DummyEncode(); err != nil {
		return nil, err
	}
	return dt, nil
}
