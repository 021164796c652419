// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"slices"
)

// selectMask returns a new table with the rows that are true in mask,
// in their original order, with unset keys.
func (dt *Table) selectMask(mask []bool) (*Table, error) {
	rows := make([]int, 0, len(mask))
	for i, in := range mask {
		if in {
			rows = append(rows, i)
		}
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("table: no rows selected: %w", ErrEmptyResult)
	}
	return dt.gather(rows), nil
}

// RowSelect returns a new table with the given rows, where negative
// rows count back from the end. Rows keep their original order
// regardless of the order given, and the result has no keys.
func (dt *Table) RowSelect(rows ...int) (*Table, error) {
	mask, err := dt.rowMask(rows, true)
	if err != nil {
		return nil, err
	}
	return dt.selectMask(mask)
}

// RowRange returns a new table with the rows in the half-open
// range [from, to), where a negative to counts from one past
// the end, so -1 selects through the last row.
func (dt *Table) RowRange(from, to int) (*Table, error) {
	mask, err := dt.rangeMask(from, to, true)
	if err != nil {
		return nil, err
	}
	return dt.selectMask(mask)
}

// RowsExcept returns a new table without the given rows.
func (dt *Table) RowsExcept(rows ...int) (*Table, error) {
	mask, err := dt.rowMask(rows, false)
	if err != nil {
		return nil, err
	}
	return dt.selectMask(mask)
}

// RowsExceptRange returns a new table without the rows in [from, to).
func (dt *Table) RowsExceptRange(from, to int) (*Table, error) {
	mask, err := dt.rangeMask(from, to, false)
	if err != nil {
		return nil, err
	}
	return dt.selectMask(mask)
}

// selectColumns returns a new table with copies of the columns at the
// given positions, which are known to be valid. The filter and order
// keys still apply to the rows and are copied, and so is the group key
// if its column is selected.
func (dt *Table) selectColumns(idxs []int) (*Table, error) {
	if len(idxs) == 0 {
		return nil, fmt.Errorf("table: no columns selected: %w", ErrEmptyResult)
	}
	cols := make([]*Column, len(idxs))
	seen := map[int]bool{}
	for i, ci := range idxs {
		if seen[ci] {
			return nil, fmt.Errorf("table: column %q selected more than once: %w", dt.columns.Keys[ci], ErrState)
		}
		seen[ci] = true
		cols[i] = dt.columns.Values[ci].Clone()
	}
	nt := dt.derive(cols)
	nt.FilterKey = dt.FilterKey.Clone()
	nt.OrderKey = dt.OrderKey.Clone()
	if nt.columns.IndexByKey(dt.GroupKey.Column) >= 0 {
		nt.GroupKey = dt.GroupKey.Clone()
	}
	return nt, nil
}

// ColumnSelect returns a new table with the named columns, in the given order.
func (dt *Table) ColumnSelect(names ...string) (*Table, error) {
	idxs := make([]int, len(names))
	for i, nm := range names {
		ci, err := dt.ColumnIndex(nm)
		if err != nil {
			return nil, err
		}
		idxs[i] = ci
	}
	return dt.selectColumns(idxs)
}

// ColumnSelectAt returns a new table with the columns at the given
// positions, in the given order. Negative positions count back from the end.
func (dt *Table) ColumnSelectAt(idxs ...int) (*Table, error) {
	norm := make([]int, len(idxs))
	for i, ci := range idxs {
		c, err := dt.columnIndex(ci)
		if err != nil {
			return nil, err
		}
		norm[i] = c
	}
	return dt.selectColumns(norm)
}

// ColumnRange returns a new table with the columns in the half-open
// range [from, to), where a negative to counts from one past the end.
func (dt *Table) ColumnRange(from, to int) (*Table, error) {
	f, t, err := wrapRange("column", from, to, dt.NumColumns())
	if err != nil {
		return nil, err
	}
	idxs := make([]int, 0, t-f)
	for i := f; i < t; i++ {
		idxs = append(idxs, i)
	}
	return dt.selectColumns(idxs)
}

// ColumnMask returns a new table with the columns that are true in mask,
// which must have one value per column.
func (dt *Table) ColumnMask(mask []bool) (*Table, error) {
	if len(mask) != dt.NumColumns() {
		return nil, fmt.Errorf("table.ColumnMask: mask has %d values for %d columns: %w", len(mask), dt.NumColumns(), ErrState)
	}
	var idxs []int
	for i, in := range mask {
		if in {
			idxs = append(idxs, i)
		}
	}
	return dt.selectColumns(idxs)
}

// Loc returns a new table with the rows in [rowFrom, rowTo) and the
// columns in [colFrom, colTo), with ranges as for [Table.RowRange].
func (dt *Table) Loc(rowFrom, rowTo, colFrom, colTo int) (*Table, error) {
	cs, err := dt.ColumnRange(colFrom, colTo)
	if err != nil {
		return nil, err
	}
	return cs.RowRange(rowFrom, rowTo)
}

// columnsEqualNames returns true if both tables have the same column names.
func (dt *Table) columnsEqualNames(other *Table) bool {
	return slices.Equal(dt.columns.Keys, other.columns.Keys)
}
