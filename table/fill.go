// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"math"
)

// FillNulls replaces the missing values of the named column, NaN for
// floats and null for strings, with the given value, which must be
// numeric for a numeric column and a string for a string column.
// Int columns have no missing values and are left unchanged.
func (dt *Table) FillNulls(column string, value any) error {
	cl, err := dt.Column(column)
	if err != nil {
		return err
	}
	sc, err := toScalar(value)
	if err != nil {
		return err
	}
	if err := compatible(cl.Kind(), sc.kind); err != nil {
		return fmt.Errorf("table.FillNulls: column %q: %w", column, err)
	}
	switch vs := cl.Values.(type) {
	case Floats:
		for i, v := range vs {
			if math.IsNaN(v) {
				vs[i] = sc.float()
			}
		}
	case Strings:
		for i := range vs.Values {
			if vs.IsNull(i) {
				vs.Values[i] = sc.s
			}
		}
		vs.Null = nil
		cl.Values = vs
	}
	return nil
}

// FillForward replaces each missing value of the named column with the
// value before it. The first value must not be missing.
func (dt *Table) FillForward(column string) error {
	cl, err := dt.Column(column)
	if err != nil {
		return err
	}
	if cl.Len() == 0 {
		return nil
	}
	if null, _ := cl.IsNull(0); null {
		return fmt.Errorf("table.FillForward: first value of column %q is missing: %w", column, ErrState)
	}
	switch vs := cl.Values.(type) {
	case Floats:
		for i := 1; i < len(vs); i++ {
			if math.IsNaN(vs[i]) {
				vs[i] = vs[i-1]
			}
		}
	case Strings:
		for i := 1; i < len(vs.Values); i++ {
			if vs.IsNull(i) {
				vs.Values[i] = vs.Values[i-1]
			}
		}
		vs.Null = nil
		cl.Values = vs
	}
	return nil
}
