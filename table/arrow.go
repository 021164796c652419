// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// ToArrow returns the table as an Arrow record, with Float64, Int64
// and nullable String fields. Null strings are Arrow nulls, while NaN
// floats are kept as NaN values. The table name is stored in the
// schema metadata. A nil allocator uses [memory.DefaultAllocator].
// The caller must Release the record.
func (dt *Table) ToArrow(mem memory.Allocator) arrow.Record {
	if mem == nil {
		mem = memory.DefaultAllocator
	}
	fields := make([]arrow.Field, dt.NumColumns())
	arrs := make([]arrow.Array, dt.NumColumns())
	for i, cl := range dt.columns.Values {
		switch vs := cl.Values.(type) {
		case Ints:
			fields[i] = arrow.Field{Name: cl.Name, Type: arrow.PrimitiveTypes.Int64}
			b := array.NewInt64Builder(mem)
			b.AppendValues(vs, nil)
			arrs[i] = b.NewArray()
			b.Release()
		case Strings:
			fields[i] = arrow.Field{Name: cl.Name, Type: arrow.BinaryTypes.String, Nullable: true}
			b := array.NewStringBuilder(mem)
			var valid []bool
			if vs.Null != nil {
				valid = make([]bool, len(vs.Null))
				for j, null := range vs.Null {
					valid[j] = !null
				}
			}
			b.AppendValues(vs.Values, valid)
			arrs[i] = b.NewArray()
			b.Release()
		default:
			fs, _ := cl.Values.(Floats)
			fields[i] = arrow.Field{Name: cl.Name, Type: arrow.PrimitiveTypes.Float64}
			b := array.NewFloat64Builder(mem)
			b.AppendValues(fs, nil)
			arrs[i] = b.NewArray()
			b.Release()
		}
	}
	var md *arrow.Metadata
	if name := dt.Meta.Name(); name != "" {
		m := arrow.NewMetadata([]string{"name"}, []string{name})
		md = &m
	}
	rec := array.NewRecord(arrow.NewSchema(fields, md), arrs, int64(dt.NumRows()))
	for _, a := range arrs {
		a.Release()
	}
	return rec
}

// FromArrow returns a new table with the columns of the Arrow record.
// Floating point fields make [Float] columns, with nulls as NaN.
// Integer fields make [Int] columns, or [Float] columns if they have
// nulls. String fields make [String] columns.
func FromArrow(rec arrow.Record) (*Table, error) {
	dt := &Table{}
	sc := rec.Schema()
	if md := sc.Metadata(); md.FindKey("name") >= 0 {
		dt.Meta.SetName(md.Values()[md.FindKey("name")])
	}
	for i, col := range rec.Columns() {
		name := sc.Field(i).Name
		vals, err := arrowValues(name, col)
		if err != nil {
			return nil, err
		}
		if err := dt.AddColumn(NewColumn(name, vals)); err != nil {
			return nil, err
		}
	}
	return dt, nil
}

// arrowNumber is the set of Arrow numeric array types read as numbers.
type arrowNumber interface {
	Len() int
	IsNull(i int) bool
	NullN() int
}

func arrowValues(name string, col arrow.Array) (Values, error) {
	n := col.Len()
	switch arr := col.(type) {
	case *array.Float64:
		return arrowFloats(arr, arr.Value), nil
	case *array.Float32:
		return arrowFloats(arr, func(i int) float64 { return float64(arr.Value(i)) }), nil
	case *array.Int64:
		return arrowInts(name, arr, arr.Value), nil
	case *array.Int32:
		return arrowInts(name, arr, func(i int) int64 { return int64(arr.Value(i)) }), nil
	case *array.Int16:
		return arrowInts(name, arr, func(i int) int64 { return int64(arr.Value(i)) }), nil
	case *array.Int8:
		return arrowInts(name, arr, func(i int) int64 { return int64(arr.Value(i)) }), nil
	case *array.String:
		ss := NewStrings(make([]string, n)...)
		for i := range n {
			if arr.IsNull(i) {
				if ss.Null == nil {
					ss.Null = make([]bool, n)
				}
				ss.Null[i] = true
				continue
			}
			ss.Values[i] = strings.Clone(arr.Value(i))
		}
		return ss, nil
	}
	return nil, fmt.Errorf("table.FromArrow: field %q has unsupported type %s: %w", name, col.DataType(), ErrState)
}

func arrowFloats(arr arrowNumber, value func(i int) float64) Floats {
	fs := make(Floats, arr.Len())
	for i := range fs {
		if arr.IsNull(i) {
			fs[i] = math.NaN()
			continue
		}
		fs[i] = value(i)
	}
	return fs
}

func arrowInts(name string, arr arrowNumber, value func(i int) int64) Values {
	if arr.NullN() > 0 {
		slog.Warn("table: integer field has nulls, reading as float", "column", name)
		return arrowFloats(arr, func(i int) float64 { return float64(value(i)) })
	}
	is := make(Ints, arr.Len())
	for i := range is {
		is[i] = value(i)
	}
	return is
}
