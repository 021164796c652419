// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"cogentcore.org/dataframe/base/errors"
)

// Delims are standard CSV delimiter options (Tab, Comma, Space)
type Delims int32

const (
	// Tab is the tab rune delimiter, for TSV tab separated values
	Tab Delims = iota

	// Comma is the comma rune delimiter, for CSV comma separated values
	Comma

	// Space is the space rune delimiter, for SSV space separated value
	Space

	// Detect is used during reading a file: reads the first line and detects tabs or commas
	Detect
)

// Rune returns the delimiter rune, with tab for [Detect].
func (dl Delims) Rune() rune {
	switch dl {
	case Comma:
		return ','
	case Space:
		return ' '
	}
	return '\t'
}

// ParseDelims returns the delimiter for the given name: tab, comma,
// space or detect, or a single delimiter character.
func ParseDelims(s string) (Delims, error) {
	switch strings.ToLower(s) {
	case "tab", "tsv", "\t":
		return Tab, nil
	case "comma", "csv", ",":
		return Comma, nil
	case "space", " ":
		return Space, nil
	case "detect", "":
		return Detect, nil
	}
	return Detect, fmt.Errorf("table.ParseDelims: unknown delimiter %q: %w", s, ErrState)
}

// detectDelim returns the delimiter used by the first line of data:
// tab if it has tabs, otherwise comma if it has commas, otherwise space.
func detectDelim(data []byte) Delims {
	line, _, _ := bytes.Cut(data, []byte("\n"))
	switch {
	case bytes.ContainsRune(line, '\t'):
		return Tab
	case bytes.ContainsRune(line, ','):
		return Comma
	}
	return Space
}

const (
	// Headers is passed to CSV methods for the headers arg, to use headers
	Headers = true

	// NoHeaders is passed to CSV methods for the headers arg, to not use headers
	NoHeaders = false
)

// SaveCSV writes the table to a comma-separated-values (CSV) file
// (where comma = any delimiter, specified in the delim arg).
// If headers = true then the first line has the column names.
func (dt *Table) SaveCSV(filename string, delim Delims, headers bool) error {
	fp, err := os.Create(filename)
	if err != nil {
		return errors.Log(err)
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	err = dt.WriteCSV(bw, delim, headers)
	if err != nil {
		return err
	}
	return errors.Log(bw.Flush())
}

// OpenCSV reads a table from a comma-separated-values (CSV) file,
// as for [ReadCSV].
func OpenCSV(filename string, delim Delims, headers bool, kinds ...Kind) (*Table, error) {
	fp, err := os.Open(filename)
	if err != nil {
		return nil, errors.Log(err)
	}
	defer fp.Close()
	return ReadCSV(bufio.NewReader(fp), delim, headers, kinds...)
}

// OpenFS is the version of [OpenCSV] that uses an [fs.FS] filesystem.
func OpenFS(fsys fs.FS, filename string, delim Delims, headers bool, kinds ...Kind) (*Table, error) {
	fp, err := fsys.Open(filename)
	if err != nil {
		return nil, errors.Log(err)
	}
	defer fp.Close()
	return ReadCSV(bufio.NewReader(fp), delim, headers, kinds...)
}

// ReadCSV reads a table from a comma-separated-values (CSV) file
// (where comma = any delimiter, specified in the delim arg),
// using the Go standard encoding/csv reader conforming to the official CSV standard.
// If headers = true the first row has the column names, otherwise
// columns are named Col1, Col2 and so on. kinds gives the kind of each
// column in order, with [Auto] or a missing entry inferring the kind
// from the values as for [InferKind]. Short rows are padded with
// missing values.
func ReadCSV(r io.Reader, delim Delims, headers bool, kinds ...Kind) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if delim == Detect {
		delim = detectDelim(data)
	}
	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = delim.Rune()
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = delim != Tab
	rec, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("table.ReadCSV: %w", err)
	}
	if len(rec) == 0 {
		return nil, fmt.Errorf("table.ReadCSV: no data: %w", ErrState)
	}
	var names []string
	if headers {
		names, rec = rec[0], rec[1:]
	} else {
		names = colNames(len(rec[0]))
	}
	cols := make([]TextColumn, len(names))
	for c, nm := range names {
		if nm == "" {
			nm = fmt.Sprintf("Col%d", c+1)
		}
		cols[c] = TextColumn{Name: nm, Values: make([]string, len(rec))}
		if c < len(kinds) {
			cols[c].Kind = kinds[c]
		}
		for ri, row := range rec {
			if c < len(row) {
				cols[c].Values[ri] = row[c]
			}
		}
	}
	return FromText(cols...)
}

// WriteCSV writes the table to a comma-separated-values (CSV) file
// (where comma = any delimiter, specified in the delim arg).
// If headers = true then the first line has the column names.
// Missing values are written as empty fields, and floats are written
// with the precision in the table metadata, always with a decimal point.
func (dt *Table) WriteCSV(w io.Writer, delim Delims, headers bool) error {
	cw := csv.NewWriter(w)
	cw.Comma = delim.Rune()
	sn := dt.Snapshot()
	if headers {
		if err := cw.Write(sn.Names); err != nil {
			return errors.Log(err)
		}
	}
	for _, row := range sn.Cells {
		for c, s := range row {
			if sn.Kinds[c] == Float && s == "NaN" {
				row[c] = ""
			}
		}
		if err := cw.Write(row); err != nil {
			return errors.Log(err)
		}
	}
	cw.Flush()
	return errors.Log(cw.Error())
}
