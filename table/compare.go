// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"cmp"
	"fmt"
	"math"
	"strings"
)

// scalar is a criterion operand converted to one of the column kinds.
type scalar struct {
	kind Kind
	f    float64
	i    int64
	s    string
}

// float returns the numeric value of a Float or Int scalar.
func (sc scalar) float() float64 {
	if sc.kind == Int {
		return float64(sc.i)
	}
	return sc.f
}

func (sc scalar) String() string {
	switch sc.kind {
	case Float:
		return FormatFloat(sc.f, -1)
	case Int:
		return fmt.Sprint(sc.i)
	}
	return sc.s
}

// toScalar converts a Go value to a scalar operand.
func toScalar(v any) (scalar, error) {
	switch x := v.(type) {
	case float64:
		return scalar{kind: Float, f: x}, nil
	case float32:
		return scalar{kind: Float, f: float64(x)}, nil
	case int:
		return scalar{kind: Int, i: int64(x)}, nil
	case int8:
		return scalar{kind: Int, i: int64(x)}, nil
	case int16:
		return scalar{kind: Int, i: int64(x)}, nil
	case int32:
		return scalar{kind: Int, i: int64(x)}, nil
	case int64:
		return scalar{kind: Int, i: x}, nil
	case uint8:
		return scalar{kind: Int, i: int64(x)}, nil
	case uint16:
		return scalar{kind: Int, i: int64(x)}, nil
	case uint32:
		return scalar{kind: Int, i: int64(x)}, nil
	case string:
		return scalar{kind: String, s: x}, nil
	}
	return scalar{}, fmt.Errorf("table: unsupported operand %v of type %T: %w", v, v, ErrState)
}

// compatible returns an error unless the two kinds can be compared:
// numeric kinds compare with each other, strings only with strings.
func compatible(a, b Kind) error {
	if (a == String) != (b == String) || a == Auto || b == Auto {
		return fmt.Errorf("table: cannot compare %s values with %s values: %w", a, b, ErrState)
	}
	return nil
}

// compareScalar compares the value at row i of the column with sc.
// It returns false if the column value is missing, or either is NaN,
// since missing values never satisfy a comparison.
func compareScalar(cl *Column, i int, sc scalar) (int, bool) {
	switch vs := cl.Values.(type) {
	case Floats:
		return compareFloats(vs[i], sc.float())
	case Ints:
		if sc.kind == Int {
			return cmp.Compare(vs[i], sc.i), true
		}
		return compareFloats(float64(vs[i]), sc.f)
	case Strings:
		if vs.IsNull(i) {
			return 0, false
		}
		return strings.Compare(vs.Values[i], sc.s), true
	}
	return 0, false
}

// compareRows compares the values at row i of two compatible columns.
func compareRows(a, b *Column, i int) (int, bool) {
	switch bv := b.Values.(type) {
	case Floats:
		return compareScalar(a, i, scalar{kind: Float, f: bv[i]})
	case Ints:
		return compareScalar(a, i, scalar{kind: Int, i: bv[i]})
	case Strings:
		if bv.IsNull(i) {
			return 0, false
		}
		return compareScalar(a, i, scalar{kind: String, s: bv.Values[i]})
	}
	return 0, false
}

func compareFloats(a, b float64) (int, bool) {
	if math.IsNaN(a) || math.IsNaN(b) {
		return 0, false
	}
	return cmp.Compare(a, b), true
}

// test returns the result of the comparison operator for a
// three-way comparison result c. In and NotIn test equality.
func (op Op) test(c int) bool {
	switch op {
	case Gt:
		return c > 0
	case Lt:
		return c < 0
	case Ge:
		return c >= 0
	case Le:
		return c <= 0
	case Eq, In:
		return c == 0
	case Ne, NotIn:
		return c != 0
	}
	return false
}
