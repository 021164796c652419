// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
)

// AddColumn appends the column to the table. Its name must not be used
// by another column, and it must have a value for every row.
// The table takes ownership of the column.
func (dt *Table) AddColumn(cl *Column) error {
	return dt.InsertColumn(-1, cl)
}

// InsertColumn inserts the column at position i, where i may equal
// the number of columns to append, and negative positions count back
// from one past the end, so -1 appends.
func (dt *Table) InsertColumn(i int, cl *Column) error {
	i, err := wrapIndex("column", i, dt.NumColumns()+1)
	if err != nil {
		return err
	}
	if err := dt.checkColumn(cl); err != nil {
		return err
	}
	if err := dt.checkNew(cl.Name); err != nil {
		return err
	}
	return dt.columns.Insert(i, cl.Name, cl)
}

// RemoveColumn removes the named column.
// The group key is cleared if it refers to the column.
func (dt *Table) RemoveColumn(name string) error {
	i, err := dt.ColumnIndex(name)
	if err != nil {
		return err
	}
	return dt.RemoveColumnAt(i)
}

// RemoveColumnAt removes the column at position i.
func (dt *Table) RemoveColumnAt(i int) error {
	i, err := dt.columnIndex(i)
	if err != nil {
		return err
	}
	if dt.columns.Keys[i] == dt.GroupKey.Column {
		dt.GroupKey.Clear()
	}
	dt.columns.DeleteByIndex(i, i+1)
	return nil
}

// SetColumn replaces the named column with the given column,
// which takes its position. The new column may have a different
// name as long as it is not used by another column.
func (dt *Table) SetColumn(name string, cl *Column) error {
	i, err := dt.ColumnIndex(name)
	if err != nil {
		return err
	}
	return dt.SetColumnAt(i, cl)
}

// SetColumnAt replaces the column at position i with the given column.
func (dt *Table) SetColumnAt(i int, cl *Column) error {
	i, err := dt.columnIndex(i)
	if err != nil {
		return err
	}
	if cl == nil || cl.Name == "" {
		return fmt.Errorf("table: column must have a name: %w", ErrState)
	}
	old := dt.columns.Keys[i]
	if dt.NumColumns() > 1 && cl.Len() != dt.NumRows() {
		return fmt.Errorf("table: column %q has %d rows, not %d: %w", cl.Name, cl.Len(), dt.NumRows(), ErrState)
	}
	if cl.Name != old {
		if err := dt.checkNew(cl.Name); err != nil {
			return err
		}
		if err := dt.columns.RenameIndex(i, cl.Name); err != nil {
			return err
		}
	}
	dt.columns.SetValue(i, cl)
	if old == dt.GroupKey.Column {
		if k := cl.Kind(); cl.Name == old && (k == Int || k == String) {
			dt.GroupKey.Kind = k
		} else {
			dt.GroupKey.Clear()
		}
	}
	return nil
}

// MoveColumn moves the named column to position to,
// shifting the columns in between by one.
func (dt *Table) MoveColumn(name string, to int) error {
	i, err := dt.ColumnIndex(name)
	if err != nil {
		return err
	}
	return dt.MoveColumnAt(i, to)
}

// MoveColumnAt moves the column at position from to position to,
// shifting the columns in between by one. Negative positions count
// back from the end.
func (dt *Table) MoveColumnAt(from, to int) error {
	f, err := dt.columnIndex(from)
	if err != nil {
		return err
	}
	t, err := dt.columnIndex(to)
	if err != nil {
		return err
	}
	dt.columns.Move(f, t)
	return nil
}

// SwapColumns exchanges the positions of the two named columns.
func (dt *Table) SwapColumns(a, b string) error {
	i, err := dt.ColumnIndex(a)
	if err != nil {
		return err
	}
	j, err := dt.ColumnIndex(b)
	if err != nil {
		return err
	}
	dt.columns.Swap(i, j)
	return nil
}

// SwapColumnsAt exchanges the columns at positions i and j.
func (dt *Table) SwapColumnsAt(i, j int) error {
	i, err := dt.columnIndex(i)
	if err != nil {
		return err
	}
	j, err = dt.columnIndex(j)
	if err != nil {
		return err
	}
	dt.columns.Swap(i, j)
	return nil
}

// Rename renames the column named old to name, which must not
// be used by another column. The group key follows the rename.
func (dt *Table) Rename(old, name string) error {
	i, err := dt.ColumnIndex(old)
	if err != nil {
		return err
	}
	return dt.RenameAt(i, name)
}

// RenameAt renames the column at position i.
func (dt *Table) RenameAt(i int, name string) error {
	i, err := dt.columnIndex(i)
	if err != nil {
		return err
	}
	if name == "" {
		return fmt.Errorf("table: column must have a name: %w", ErrState)
	}
	old := dt.columns.Keys[i]
	if name == old {
		return nil
	}
	if err := dt.columns.RenameIndex(i, name); err != nil {
		return fmt.Errorf("table: column %q already exists: %w", name, ErrState)
	}
	dt.columns.Values[i].Name = name
	if old == dt.GroupKey.Column {
		dt.GroupKey.Column = name
	}
	return nil
}

// AddIndexColumn inserts an [Int] column named Index as the first column,
// numbering the rows from start.
func (dt *Table) AddIndexColumn(start int64) error {
	n := dt.NumRows()
	idx := make(Ints, n)
	for i := range idx {
		idx[i] = start + int64(i)
	}
	return dt.InsertColumn(0, NewColumn("Index", idx))
}

// RowBind returns a new table with the rows of other appended to the rows
// of this table. Both must have the same column names and kinds in the
// same order. The result has no keys.
func (dt *Table) RowBind(other *Table) (*Table, error) {
	if !dt.columnsEqualNames(other) {
		return nil, fmt.Errorf("table.RowBind: columns %v do not match %v: %w", other.columns.Keys, dt.columns.Keys, ErrState)
	}
	cols := make([]*Column, dt.NumColumns())
	for i, cl := range dt.columns.Values {
		cc, err := cl.Concat(other.columns.Values[i])
		if err != nil {
			return nil, err
		}
		cols[i] = cc
	}
	return dt.derive(cols), nil
}

// ColumnBind returns a new table with the columns of other appended to
// the columns of this table. Both must have the same number of rows and
// no column names in common. The result has copies of this table's keys.
func (dt *Table) ColumnBind(other *Table) (*Table, error) {
	if dt.NumColumns() > 0 && other.NumColumns() > 0 && dt.NumRows() != other.NumRows() {
		return nil, fmt.Errorf("table.ColumnBind: table has %d rows, not %d: %w", other.NumRows(), dt.NumRows(), ErrState)
	}
	cols := make([]*Column, 0, dt.NumColumns()+other.NumColumns())
	for _, cl := range dt.columns.Values {
		cols = append(cols, cl.Clone())
	}
	for _, cl := range other.columns.Values {
		if err := dt.checkNew(cl.Name); err != nil {
			return nil, err
		}
		cols = append(cols, cl.Clone())
	}
	nt := dt.derive(cols)
	nt.copyKeys(dt)
	return nt, nil
}
