// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package table provides an in-memory table of named, typed columns
// sharing a common number of rows, with three cooperating keys that
// record a row filter ([FilterKey]), a row order ([OrderKey]) and a
// grouping column ([GroupKey]).
//
// Methods fall into two families. Mutators change the table in place.
// Transforms, such as [Table.Filter], [Table.Order] and the row and
// column selections, return a new table with freshly allocated columns
// and deep copies of the keys, never sharing storage with the source.
package table

import (
	"fmt"
	"slices"

	"cogentcore.org/dataframe/base/keylist"
	"cogentcore.org/dataframe/base/metadata"
)

// Table is an ordered list of uniquely named columns,
// all with the same number of rows.
type Table struct {
	// columns is the ordered list of columns, keyed by name.
	columns keylist.List[string, *Column]

	// FilterKey records the criteria applied by [Table.Filter].
	FilterKey FilterKey

	// OrderKey records the permutation applied by [Table.Order].
	OrderKey OrderKey

	// GroupKey records the column used by [Table.UniqueCount]
	// and [Table.DummyEncode].
	GroupKey GroupKey

	// Meta is misc metadata for the table: name, doc, and
	// the float precision used for writing text.
	Meta metadata.Data
}

// New returns a new table with the given columns, which must have
// unique names and the same number of values.
func New(columns ...*Column) (*Table, error) {
	dt := &Table{}
	for _, cl := range columns {
		if err := dt.AddColumn(cl); err != nil {
			return nil, err
		}
	}
	return dt, nil
}

// NewTable returns a new empty table,
// with an optional name set in its metadata.
func NewTable(name ...string) *Table {
	dt := &Table{}
	if len(name) > 0 {
		dt.Meta.SetName(name[0])
	}
	return dt
}

// NumRows returns the number of rows, which is 0 without columns.
func (dt *Table) NumRows() int {
	if dt.columns.Len() == 0 {
		return 0
	}
	return dt.columns.Values[0].Len()
}

// NumColumns returns the number of columns.
func (dt *Table) NumColumns() int {
	return dt.columns.Len()
}

// ColumnNames returns the column names in order.
func (dt *Table) ColumnNames() []string {
	return slices.Clone(dt.columns.Keys)
}

// Columns returns the columns in order. The columns themselves
// are not copied: changes to their values change the table.
func (dt *Table) Columns() []*Column {
	return slices.Clone(dt.columns.Values)
}

// ColumnIndex returns the index of the named column.
func (dt *Table) ColumnIndex(name string) (int, error) {
	i := dt.columns.IndexByKey(name)
	if i < 0 {
		return -1, notFound(name, dt.columns.Keys)
	}
	return i, nil
}

// Column returns the named column.
func (dt *Table) Column(name string) (*Column, error) {
	cl, ok := dt.columns.AtTry(name)
	if !ok {
		return nil, notFound(name, dt.columns.Keys)
	}
	return cl, nil
}

// columnIndex normalizes a possibly negative column position.
func (dt *Table) columnIndex(i int) (int, error) {
	return wrapIndex("column", i, dt.NumColumns())
}

// rowIndex normalizes a possibly negative row position.
func (dt *Table) rowIndex(i int) (int, error) {
	return wrapIndex("row", i, dt.NumRows())
}

// ColumnAt returns the column at position i,
// where negative positions count back from the end.
func (dt *Table) ColumnAt(i int) (*Column, error) {
	i, err := dt.columnIndex(i)
	if err != nil {
		return nil, err
	}
	return dt.columns.Values[i], nil
}

// ColumnName returns the name of the column at position i.
func (dt *Table) ColumnName(i int) (string, error) {
	i, err := dt.columnIndex(i)
	if err != nil {
		return "", err
	}
	return dt.columns.Keys[i], nil
}

// Value returns the value at the given row and column positions,
// as for [Column.Value].
func (dt *Table) Value(row, col int) (any, error) {
	cl, err := dt.ColumnAt(col)
	if err != nil {
		return nil, err
	}
	return cl.Value(row)
}

// Text returns the text of the value at the given row and column positions.
func (dt *Table) Text(row, col int) (string, error) {
	cl, err := dt.ColumnAt(col)
	if err != nil {
		return "", err
	}
	return cl.Text(row)
}

// Clone returns a deep copy of the table, including its keys.
func (dt *Table) Clone() *Table {
	cols := make([]*Column, dt.NumColumns())
	for i, cl := range dt.columns.Values {
		cols[i] = cl.Clone()
	}
	cp := dt.derive(cols)
	cp.copyKeys(dt)
	return cp
}

// derive returns a new table with the given columns, which are
// known to be consistent, and a copy of the metadata. Keys are unset.
func (dt *Table) derive(cols []*Column) *Table {
	nt := &Table{}
	for _, cl := range cols {
		nt.columns.Add(cl.Name, cl)
	}
	nt.Meta.Copy(dt.Meta)
	return nt
}

// copyKeys sets deep copies of all the keys of src on this table.
func (dt *Table) copyKeys(src *Table) {
	dt.FilterKey = src.FilterKey.Clone()
	dt.OrderKey = src.OrderKey.Clone()
	dt.GroupKey = src.GroupKey.Clone()
}

// gather returns a new table with all columns gathered through rows,
// and unset keys.
func (dt *Table) gather(rows []int) *Table {
	cols := make([]*Column, dt.NumColumns())
	for i, cl := range dt.columns.Values {
		cols[i] = cl.gather(rows)
	}
	return dt.derive(cols)
}

// checkColumn returns an error if the column cannot be added to the
// table: it needs a name, and values for every row.
func (dt *Table) checkColumn(cl *Column) error {
	if cl == nil || cl.Name == "" {
		return fmt.Errorf("table: column must have a name: %w", ErrState)
	}
	if dt.NumColumns() > 0 && cl.Len() != dt.NumRows() {
		return fmt.Errorf("table: column %q has %d rows, not %d: %w", cl.Name, cl.Len(), dt.NumRows(), ErrState)
	}
	return nil
}

// checkNew returns an error if the name is already used by a column.
func (dt *Table) checkNew(name string) error {
	if dt.columns.IndexByKey(name) >= 0 {
		return fmt.Errorf("table: column %q already exists: %w", name, ErrState)
	}
	return nil
}

// ClearKeys clears the filter, order and group keys.
func (dt *Table) ClearKeys() *Table {
	dt.ClearFilterKey()
	dt.ClearOrderKey()
	return dt.ClearGroupKey()
}

// ClearFilterKey removes all filter criteria.
func (dt *Table) ClearFilterKey() *Table {
	dt.FilterKey.Clear()
	return dt
}

// ClearOrderKey removes the row permutation.
func (dt *Table) ClearOrderKey() *Table {
	dt.OrderKey.Clear()
	return dt
}

// ClearGroupKey removes the group column.
func (dt *Table) ClearGroupKey() *Table {
	dt.GroupKey.Clear()
	return dt
}

// Equal returns true if the two tables have equal columns in the same
// order and equal keys. Metadata is not compared.
func (dt *Table) Equal(other *Table) bool {
	if !dt.EqualData(other) {
		return false
	}
	return dt.FilterKey.Equal(&other.FilterKey) && dt.OrderKey.Equal(&other.OrderKey) && dt.GroupKey == other.GroupKey
}

// EqualData returns true if the two tables have equal columns
// in the same order, ignoring the keys.
func (dt *Table) EqualData(other *Table) bool {
	return slices.EqualFunc(dt.columns.Values, other.columns.Values, (*Column).Equal)
}

// String returns a short description of the table.
func (dt *Table) String() string {
	name := dt.Meta.Name()
	if name == "" {
		name = "table"
	}
	return fmt.Sprintf("%s: %d rows x %d columns %v", name, dt.NumRows(), dt.NumColumns(), dt.columns.Keys)
}
