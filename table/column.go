// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"math"
)

// Column is a named sequence of values of one [Kind].
type Column struct {
	// Name is the column header, unique within a [Table].
	Name string

	// Values has the column data. It is nil for a column without data.
	Values Values
}

// NewColumn returns a new column with the given name and values.
func NewColumn(name string, vals Values) *Column {
	return &Column{Name: name, Values: vals}
}

// NewFloatColumn returns a new [Float] column.
func NewFloatColumn(name string, vals ...float64) *Column {
	return NewColumn(name, Floats(vals))
}

// NewIntColumn returns a new [Int] column.
func NewIntColumn(name string, vals ...int64) *Column {
	return NewColumn(name, Ints(vals))
}

// NewStringColumn returns a new [String] column without nulls.
func NewStringColumn(name string, vals ...string) *Column {
	return NewColumn(name, NewStrings(vals...))
}

// Kind returns the kind of the column values, [Auto] if there are none.
func (cl *Column) Kind() Kind {
	if cl.Values == nil {
		return Auto
	}
	return cl.Values.Kind()
}

// Len returns the number of values in the column.
func (cl *Column) Len() int {
	return lenOf(cl.Values)
}

func (cl *Column) kindError(want Kind) error {
	return fmt.Errorf("table: column %q is %s, not %s: %w", cl.Name, cl.Kind(), want, ErrState)
}

func (cl *Column) index(i int) (int, error) {
	return wrapIndex("row", i, cl.Len())
}

// Floats returns the float values of a [Float] column.
func (cl *Column) Floats() (Floats, error) {
	fs, ok := cl.Values.(Floats)
	if !ok {
		return nil, cl.kindError(Float)
	}
	return fs, nil
}

// Ints returns the int values of an [Int] column.
func (cl *Column) Ints() (Ints, error) {
	is, ok := cl.Values.(Ints)
	if !ok {
		return nil, cl.kindError(Int)
	}
	return is, nil
}

// Strings returns the string values of a [String] column.
func (cl *Column) Strings() (Strings, error) {
	ss, ok := cl.Values.(Strings)
	if !ok {
		return Strings{}, cl.kindError(String)
	}
	return ss, nil
}

// Float returns the value at row i of a [Float] column.
// Negative rows count back from the end.
func (cl *Column) Float(i int) (float64, error) {
	fs, err := cl.Floats()
	if err != nil {
		return math.NaN(), err
	}
	i, err = cl.index(i)
	if err != nil {
		return math.NaN(), err
	}
	return fs[i], nil
}

// SetFloat sets the value at row i of a [Float] column.
func (cl *Column) SetFloat(i int, v float64) error {
	fs, err := cl.Floats()
	if err != nil {
		return err
	}
	i, err = cl.index(i)
	if err != nil {
		return err
	}
	fs[i] = v
	return nil
}

// Int returns the value at row i of an [Int] column.
// Negative rows count back from the end.
func (cl *Column) Int(i int) (int64, error) {
	is, err := cl.Ints()
	if err != nil {
		return 0, err
	}
	i, err = cl.index(i)
	if err != nil {
		return 0, err
	}
	return is[i], nil
}

// SetInt sets the value at row i of an [Int] column.
func (cl *Column) SetInt(i int, v int64) error {
	is, err := cl.Ints()
	if err != nil {
		return err
	}
	i, err = cl.index(i)
	if err != nil {
		return err
	}
	is[i] = v
	return nil
}

// StringValue returns the value at row i of a [String] column,
// which is "" for a null value.
func (cl *Column) StringValue(i int) (string, error) {
	ss, err := cl.Strings()
	if err != nil {
		return "", err
	}
	i, err = cl.index(i)
	if err != nil {
		return "", err
	}
	return ss.Values[i], nil
}

// SetString sets the value at row i of a [String] column,
// clearing any null mark.
func (cl *Column) SetString(i int, v string) error {
	ss, err := cl.Strings()
	if err != nil {
		return err
	}
	i, err = cl.index(i)
	if err != nil {
		return err
	}
	ss.Values[i] = v
	if ss.Null != nil {
		ss.Null[i] = false
	}
	return nil
}

// SetNull marks the value at row i of a [String] column as null.
func (cl *Column) SetNull(i int) error {
	ss, err := cl.Strings()
	if err != nil {
		return err
	}
	i, err = cl.index(i)
	if err != nil {
		return err
	}
	if ss.Null == nil {
		ss.Null = make([]bool, len(ss.Values))
		cl.Values = ss
	}
	ss.Values[i] = ""
	ss.Null[i] = true
	return nil
}

// IsNull returns true if the value at row i is missing:
// null for strings, NaN for floats. Int values are never missing.
func (cl *Column) IsNull(i int) (bool, error) {
	i, err := cl.index(i)
	if err != nil {
		return false, err
	}
	switch vs := cl.Values.(type) {
	case Floats:
		return math.IsNaN(vs[i]), nil
	case Strings:
		return vs.IsNull(i), nil
	}
	return false, nil
}

// Value returns the value at row i as a float64, int64 or string,
// with nil for a null string.
func (cl *Column) Value(i int) (any, error) {
	i, err := cl.index(i)
	if err != nil {
		return nil, err
	}
	switch vs := cl.Values.(type) {
	case Floats:
		return vs[i], nil
	case Ints:
		return vs[i], nil
	case Strings:
		if vs.IsNull(i) {
			return nil, nil
		}
		return vs.Values[i], nil
	}
	return nil, nil
}

// Text returns the text representation of the value at row i.
func (cl *Column) Text(i int) (string, error) {
	i, err := cl.index(i)
	if err != nil {
		return "", err
	}
	return cl.Values.Text(i), nil
}

// SetValues replaces the column values wholesale.
func (cl *Column) SetValues(vals Values) {
	cl.Values = vals
}

// Concat returns a new column with the values of other appended
// to those of this column, which must be of the same kind.
func (cl *Column) Concat(other *Column) (*Column, error) {
	switch {
	case cl.Values == nil:
		return other.Clone(), nil
	case other.Values == nil:
		return cl.Clone(), nil
	}
	vals, err := concatValues(cl.Values, other.Values)
	if err != nil {
		return nil, fmt.Errorf("table: Concat %q: %w", cl.Name, err)
	}
	return NewColumn(cl.Name, vals), nil
}

// Clone returns a deep copy of the column.
func (cl *Column) Clone() *Column {
	cp := &Column{Name: cl.Name}
	if cl.Values != nil {
		cp.Values = cl.Values.Clone()
	}
	return cp
}

// Equal returns true if the two columns have the same name and values.
func (cl *Column) Equal(other *Column) bool {
	return cl.Name == other.Name && equalValues(cl.Values, other.Values)
}

// gather returns a new column with the values at the given rows.
func (cl *Column) gather(rows []int) *Column {
	cp := &Column{Name: cl.Name}
	if cl.Values != nil {
		cp.Values = cl.Values.Gather(rows)
	}
	return cp
}
