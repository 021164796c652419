// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"math"
)

// SetGroupKey sets the group key to the named column,
// which must be an [Int] or [String] column.
func (dt *Table) SetGroupKey(column string) error {
	cl, err := dt.Column(column)
	if err != nil {
		return err
	}
	return dt.setGroupKey(cl)
}

// SetGroupKeyAt is [Table.SetGroupKey] for the column at position i.
func (dt *Table) SetGroupKeyAt(i int) error {
	cl, err := dt.ColumnAt(i)
	if err != nil {
		return err
	}
	return dt.setGroupKey(cl)
}

func (dt *Table) setGroupKey(cl *Column) error {
	if k := cl.Kind(); k != Int && k != String {
		return fmt.Errorf("table: cannot group by %s column %q: %w", k, cl.Name, ErrState)
	}
	dt.GroupKey = GroupKey{Column: cl.Name, Kind: cl.Kind()}
	return nil
}

// groupColumn returns the column of the group key.
func (dt *Table) groupColumn() (*Column, error) {
	if !dt.GroupKey.IsSet() {
		return nil, fmt.Errorf("table: no group key has been set: %w", ErrState)
	}
	return dt.Column(dt.GroupKey.Column)
}

// nanKey is the distinct key shared by all NaN values.
type nanKey struct{}

// distinctKey returns a comparable key for the value at row i,
// with all NaN values and all null values equal to each other.
func distinctKey(vs Values, i int) any {
	switch x := vs.(type) {
	case Floats:
		if math.IsNaN(x[i]) {
			return nanKey{}
		}
		return x[i]
	case Ints:
		return x[i]
	case Strings:
		if x.IsNull(i) {
			return nil
		}
		return x.Values[i]
	}
	return nil
}

// distinct returns the first row of each distinct value of the column,
// in order of first appearance, and the count of rows having each.
func distinct(cl *Column) (firsts []int, counts []int64) {
	index := map[any]int{}
	for r := range cl.Len() {
		k := distinctKey(cl.Values, r)
		gi, ok := index[k]
		if !ok {
			gi = len(firsts)
			index[k] = gi
			firsts = append(firsts, r)
			counts = append(counts, 0)
		}
		counts[gi]++
	}
	return
}

// UniqueCount returns a table with the distinct values of the group
// column in order of first appearance as a Group column of the same
// kind, and the number of rows with each value as an Int Count column.
func (dt *Table) UniqueCount() (*Table, error) {
	cl, err := dt.groupColumn()
	if err != nil {
		return nil, err
	}
	firsts, counts := distinct(cl)
	grp := cl.gather(firsts)
	grp.Name = "Group"
	nt := NewTable()
	nt.columns.Add(grp.Name, grp)
	nt.columns.Add("Count", NewIntColumn("Count", counts...))
	return nt, nil
}

// Unique returns a one-column table with the distinct values of
// the named column, in order of first appearance.
func (dt *Table) Unique(column string) (*Table, error) {
	cl, err := dt.Column(column)
	if err != nil {
		return nil, err
	}
	firsts, _ := distinct(cl)
	return dt.derive([]*Column{cl.gather(firsts)}), nil
}

// dummyName returns the name of the indicator column for the
// value at row r of the group column.
func dummyName(cl *Column, r int) string {
	if ss, ok := cl.Values.(Strings); ok && ss.IsNull(r) {
		return cl.Name + "-null"
	}
	return cl.Name + "-" + cl.Values.Text(r)
}

// DummyEncode replaces the group column with one [Int] indicator column
// per distinct value, named "{group}-{value}", which is 1 for rows
// having that value and 0 otherwise. The indicator columns are appended
// in order of first appearance, and the group key is cleared.
func (dt *Table) DummyEncode() error {
	cl, err := dt.groupColumn()
	if err != nil {
		return err
	}
	firsts, _ := distinct(cl)
	index := map[any]int{}
	dummies := make([]*Column, len(firsts))
	names := map[string]bool{}
	for gi, r := range firsts {
		nm := dummyName(cl, r)
		if names[nm] || (nm != cl.Name && dt.columns.IndexByKey(nm) >= 0) {
			return fmt.Errorf("table.DummyEncode: indicator column %q already exists: %w", nm, ErrState)
		}
		names[nm] = true
		index[distinctKey(cl.Values, r)] = gi
		dummies[gi] = NewColumn(nm, make(Ints, cl.Len()))
	}
	for r := range cl.Len() {
		gi := index[distinctKey(cl.Values, r)]
		dummies[gi].Values.(Ints)[r] = 1
	}
	dt.columns.DeleteByKey(cl.Name)
	for _, d := range dummies {
		dt.columns.Add(d.Name, d)
	}
	dt.GroupKey.Clear()
	return nil
}
