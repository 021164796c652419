// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Values is the backing sequence of a [Column]: exactly one of
// [Floats], [Ints] or [Strings]. The interface is sealed so that
// a column can never hold two kinds of data at once.
type Values interface {
	// Kind returns the kind of the values.
	Kind() Kind

	// Len returns the number of values.
	Len() int

	// Clone returns a deep copy of the values.
	Clone() Values

	// Gather returns new values where element i is the
	// element at rows[i] of these values.
	Gather(rows []int) Values

	// Text returns the text representation of element i.
	Text(i int) string

	isValues()
}

// Floats is a sequence of float64 values. NaN marks a missing value.
type Floats []float64

// Ints is a sequence of int64 values.
type Ints []int64

// Strings is a sequence of nullable string values.
type Strings struct {
	// Values has the string values, with "" for null elements.
	Values []string

	// Null marks null elements. It is nil when no element is null,
	// and otherwise has the same length as Values.
	Null []bool
}

// NewStrings returns [Strings] with the given values and no nulls.
func NewStrings(vals ...string) Strings {
	return Strings{Values: vals}
}

func (fs Floats) Kind() Kind         { return Float }
func (fs Floats) Len() int           { return len(fs) }
func (fs Floats) Clone() Values      { return slices.Clone(fs) }
func (fs Floats) Text(i int) string  { return FormatFloat(fs[i], -1) }
func (fs Floats) isValues()          {}
func (is Ints) Kind() Kind           { return Int }
func (is Ints) Len() int             { return len(is) }
func (is Ints) Clone() Values        { return slices.Clone(is) }
func (is Ints) Text(i int) string    { return strconv.FormatInt(is[i], 10) }
func (is Ints) isValues()            {}
func (ss Strings) Kind() Kind        { return String }
func (ss Strings) Len() int          { return len(ss.Values) }
func (ss Strings) isValues()         {}
func (ss Strings) Text(i int) string { return ss.Values[i] }

func (fs Floats) Gather(rows []int) Values {
	out := make(Floats, len(rows))
	for i, r := range rows {
		out[i] = fs[r]
	}
	return out
}

func (is Ints) Gather(rows []int) Values {
	out := make(Ints, len(rows))
	for i, r := range rows {
		out[i] = is[r]
	}
	return out
}

func (ss Strings) Clone() Values {
	return Strings{Values: slices.Clone(ss.Values), Null: slices.Clone(ss.Null)}
}

func (ss Strings) Gather(rows []int) Values {
	out := Strings{Values: make([]string, len(rows))}
	if ss.Null != nil {
		out.Null = make([]bool, len(rows))
	}
	for i, r := range rows {
		out.Values[i] = ss.Values[r]
		if ss.Null != nil {
			out.Null[i] = ss.Null[r]
		}
	}
	return out
}

// IsNull returns true if element i is null.
func (ss Strings) IsNull(i int) bool {
	return ss.Null != nil && ss.Null[i]
}

// FormatFloat formats a float as text that reads back as a float:
// fixed-point notation that always has a decimal point, with prec
// digits after it (-1 for the shortest exact representation).
// NaN is formatted as "NaN".
func FormatFloat(v float64, prec int) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	s := strconv.FormatFloat(v, 'f', prec, 64)
	if math.IsInf(v, 0) || strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}

// concatValues returns new values with b appended to a.
// Both must be of the same kind.
func concatValues(a, b Values) (Values, error) {
	if a.Kind() != b.Kind() {
		return nil, fmt.Errorf("table: cannot concatenate %s values with %s values: %w", a.Kind(), b.Kind(), ErrState)
	}
	switch av := a.(type) {
	case Floats:
		return slices.Concat(av, b.(Floats)), nil
	case Ints:
		return slices.Concat(av, b.(Ints)), nil
	case Strings:
		bv := b.(Strings)
		out := Strings{Values: slices.Concat(av.Values, bv.Values)}
		if av.Null != nil || bv.Null != nil {
			out.Null = make([]bool, len(out.Values))
			for i := range av.Values {
				out.Null[i] = av.IsNull(i)
			}
			for i := range bv.Values {
				out.Null[len(av.Values)+i] = bv.IsNull(i)
			}
		}
		return out, nil
	}
	return nil, fmt.Errorf("table: unknown values type %T: %w", a, ErrState)
}

// equalValues returns true if a and b have the same kind and elements,
// treating NaN as equal to NaN and null as equal to null.
func equalValues(a, b Values) bool {
	if a == nil || b == nil {
		return lenOf(a) == 0 && lenOf(b) == 0
	}
	if a.Kind() != b.Kind() || a.Len() != b.Len() {
		return false
	}
	switch av := a.(type) {
	case Floats:
		bv := b.(Floats)
		for i, v := range av {
			if v != bv[i] && !(math.IsNaN(v) && math.IsNaN(bv[i])) {
				return false
			}
		}
		return true
	case Ints:
		return slices.Equal(av, b.(Ints))
	case Strings:
		bv := b.(Strings)
		for i, v := range av.Values {
			if av.IsNull(i) != bv.IsNull(i) || v != bv.Values[i] {
				return false
			}
		}
		return true
	}
	return false
}

func lenOf(v Values) int {
	if v == nil {
		return 0
	}
	return v.Len()
}
