// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
)

// Snapshot is a text rendition of a table, for writers and printers.
type Snapshot struct {
	// Names are the column names.
	Names []string

	// Kinds are the column kinds.
	Kinds []Kind

	// Cells has the text of each value, indexed by row then column.
	// Missing floats are "NaN" and null strings are "".
	Cells [][]string
}

// Snapshot returns the text of the table, with floats written using
// the precision in the table metadata.
func (dt *Table) Snapshot() *Snapshot {
	nc, nr := dt.NumColumns(), dt.NumRows()
	sn := &Snapshot{Names: dt.ColumnNames(), Kinds: make([]Kind, nc), Cells: make([][]string, nr)}
	prec := dt.Meta.Precision()
	for r := range sn.Cells {
		sn.Cells[r] = make([]string, nc)
	}
	for c, cl := range dt.columns.Values {
		sn.Kinds[c] = cl.Kind()
		fs, isFloat := cl.Values.(Floats)
		for r := range nr {
			if isFloat {
				sn.Cells[r][c] = FormatFloat(fs[r], prec)
			} else {
				sn.Cells[r][c] = cl.Values.Text(r)
			}
		}
	}
	return sn
}

// TextColumn is a named column of values as text,
// with the kind to parse them as.
type TextColumn struct {
	Name string

	// Kind is the kind of column to make, or [Auto] to use [InferKind].
	Kind Kind

	Values []string
}

// FromText returns a new table with columns parsed from the given text.
// Empty text is a missing value: NaN for floats and null for strings.
// Int columns cannot have missing values.
func FromText(cols ...TextColumn) (*Table, error) {
	dt := &Table{}
	for _, tc := range cols {
		cl, err := tc.parse()
		if err != nil {
			return nil, err
		}
		if err := dt.AddColumn(cl); err != nil {
			return nil, err
		}
	}
	return dt, nil
}

func (tc *TextColumn) parse() (*Column, error) {
	kind := tc.Kind
	if kind == Auto {
		kind = InferKind(tc.Values)
		if kind == Float && inferValues(tc.Values) == Int {
			slog.Warn("table: integer column has missing values, reading as float", "column", tc.Name)
		}
	}
	switch kind {
	case Float:
		fs := make(Floats, len(tc.Values))
		for i, s := range tc.Values {
			s = strings.TrimSpace(s)
			if s == "" {
				fs[i] = math.NaN()
				continue
			}
			f, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("table: column %q row %d: %q is not a float: %w", tc.Name, i, s, ErrState)
			}
			fs[i] = f
		}
		return NewColumn(tc.Name, fs), nil
	case Int:
		is := make(Ints, len(tc.Values))
		for i, s := range tc.Values {
			v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("table: column %q row %d: %q is not an int: %w", tc.Name, i, s, ErrState)
			}
			is[i] = v
		}
		return NewColumn(tc.Name, is), nil
	}
	ss := NewStrings(make([]string, len(tc.Values))...)
	for i, s := range tc.Values {
		if s == "" {
			if ss.Null == nil {
				ss.Null = make([]bool, len(tc.Values))
			}
			ss.Null[i] = true
			continue
		}
		ss.Values[i] = s
	}
	return NewColumn(tc.Name, ss), nil
}

// InferKind returns the kind of column for the given text values.
// Any value with a character other than digits, a single decimal point
// and a leading sign makes a [String] column. Otherwise a value with a
// decimal point makes a [Float] column, as does an empty value among
// integers, so that NaN can mark it as missing. Integers alone make an
// [Int] column. Values that are all empty make a [String] column.
func InferKind(vals []string) Kind {
	kind := inferValues(vals)
	if kind != Int {
		return kind
	}
	for _, s := range vals {
		if strings.TrimSpace(s) == "" {
			return Float
		}
	}
	return Int
}

// inferValues returns the kind of the non-empty values.
func inferValues(vals []string) Kind {
	kind := Auto
	for _, s := range vals {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		switch inferValue(s) {
		case String:
			return String
		case Float:
			kind = Float
		case Int:
			if kind == Auto {
				kind = Int
			}
		}
	}
	if kind == Auto {
		return String
	}
	return kind
}

// inferValue returns the kind of a single non-empty value.
func inferValue(s string) Kind {
	digits := strings.TrimLeft(s, "+-")
	if len(s)-len(digits) > 1 || digits == "" {
		return String
	}
	dots := 0
	for _, r := range digits {
		switch {
		case r == '.':
			dots++
		case r < '0' || r > '9':
			return String
		}
	}
	switch {
	case dots > 1 || digits == ".":
		return String
	case dots == 1:
		return Float
	}
	if _, err := strconv.ParseInt(s, 10, 64); err != nil {
		return Float
	}
	return Int
}

// colNames returns the default names Col1, Col2, ... for n columns.
func colNames(n int) []string {
	nms := make([]string, n)
	for i := range nms {
		nms[i] = fmt.Sprintf("Col%d", i+1)
	}
	return nms
}

// FromFloats returns a new table with a [Float] column for each
// of the given slices, named Col1, Col2 and so on.
func FromFloats(cols ...[]float64) (*Table, error) {
	nms := colNames(len(cols))
	cl := make([]*Column, len(cols))
	for i, c := range cols {
		cl[i] = NewFloatColumn(nms[i], c...)
	}
	return New(cl...)
}

// FromInts returns a new table with an [Int] column for each
// of the given slices, named Col1, Col2 and so on.
func FromInts(cols ...[]int64) (*Table, error) {
	nms := colNames(len(cols))
	cl := make([]*Column, len(cols))
	for i, c := range cols {
		cl[i] = NewIntColumn(nms[i], c...)
	}
	return New(cl...)
}

// FromStrings returns a new table with a [String] column for each
// of the given slices, named Col1, Col2 and so on.
func FromStrings(cols ...[]string) (*Table, error) {
	nms := colNames(len(cols))
	cl := make([]*Column, len(cols))
	for i, c := range cols {
		cl[i] = NewStringColumn(nms[i], c...)
	}
	return New(cl...)
}
