// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Matrix returns the named numeric columns, or all columns if none are
// named, as a dense matrix with one row per table row. Int values are
// converted to float64, and NaN is kept.
func (dt *Table) Matrix(columns ...string) (*mat.Dense, error) {
	cols := dt.columns.Values
	if len(columns) > 0 {
		cols = make([]*Column, len(columns))
		for i, nm := range columns {
			cl, err := dt.Column(nm)
			if err != nil {
				return nil, err
			}
			cols[i] = cl
		}
	}
	nr, nc := dt.NumRows(), len(cols)
	if nr == 0 || nc == 0 {
		return nil, fmt.Errorf("table.Matrix: table has no values: %w", ErrEmptyResult)
	}
	m := mat.NewDense(nr, nc, nil)
	for c, cl := range cols {
		switch vs := cl.Values.(type) {
		case Floats:
			m.SetCol(c, vs)
		case Ints:
			for r, v := range vs {
				m.Set(r, c, float64(v))
			}
		default:
			return nil, fmt.Errorf("table.Matrix: column %q is not numeric: %w", cl.Name, ErrState)
		}
	}
	return m, nil
}
