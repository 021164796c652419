// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"

	"cogentcore.org/dataframe/base/slicesx"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SetOrderKey sets the order key to a stable ascending sort by the
// named column, replacing any existing order. Missing values (NaN and
// null) sort last. Strings compare bytewise: see
// [Table.SetOrderKeyCollated] for locale-aware ordering.
func (dt *Table) SetOrderKey(column string) error {
	cl, err := dt.Column(column)
	if err != nil {
		return err
	}
	return dt.sortBy(cl, strings.Compare)
}

// SetOrderKeyAt is [Table.SetOrderKey] for the column at position i.
func (dt *Table) SetOrderKeyAt(i int) error {
	cl, err := dt.ColumnAt(i)
	if err != nil {
		return err
	}
	return dt.sortBy(cl, strings.Compare)
}

// SetOrderKeyCollated is [Table.SetOrderKey] with string values
// compared by the collation rules of the given language.
func (dt *Table) SetOrderKeyCollated(column string, tag language.Tag) error {
	cl, err := dt.Column(column)
	if err != nil {
		return err
	}
	col := collate.New(tag)
	return dt.sortBy(cl, col.CompareString)
}

// sortBy sets the order key to the stable sort of rows by the column,
// comparing string values with cmpStr.
func (dt *Table) sortBy(cl *Column, cmpStr func(a, b string) int) error {
	perm := slicesx.Identity(dt.NumRows())
	switch vs := cl.Values.(type) {
	case Floats:
		slices.SortStableFunc(perm, func(a, b int) int {
			return missingLast(math.IsNaN(vs[a]), math.IsNaN(vs[b]), func() int { return cmp.Compare(vs[a], vs[b]) })
		})
	case Ints:
		slices.SortStableFunc(perm, func(a, b int) int {
			return cmp.Compare(vs[a], vs[b])
		})
	case Strings:
		slices.SortStableFunc(perm, func(a, b int) int {
			return missingLast(vs.IsNull(a), vs.IsNull(b), func() int { return cmpStr(vs.Values[a], vs.Values[b]) })
		})
	default:
		return fmt.Errorf("table: cannot order by column %q without values: %w", cl.Name, ErrState)
	}
	dt.OrderKey = OrderKey{Label: cl.Name, Perm: perm}
	return nil
}

// missingLast orders missing values after all others,
// and otherwise returns the result of cmpf.
func missingLast(am, bm bool, cmpf func() int) int {
	switch {
	case am && bm:
		return 0
	case am:
		return 1
	case bm:
		return -1
	}
	return cmpf()
}

// SetOrderKeyPerm sets the order key to the given permutation,
// where perm[i] is the source row that becomes row i.
func (dt *Table) SetOrderKeyPerm(perm []int) error {
	if len(perm) != dt.NumRows() || !slicesx.IsPermutation(perm) {
		return fmt.Errorf("table.SetOrderKeyPerm: %v is not a permutation of %d rows: %w", perm, dt.NumRows(), ErrState)
	}
	dt.OrderKey = OrderKey{Label: "Given", Perm: slices.Clone(perm)}
	return nil
}

// SetOrderKeyFrom replaces the order key with a copy of the order key
// of the other table, which must have the same number of rows.
func (dt *Table) SetOrderKeyFrom(other *Table) error {
	if other.NumRows() != dt.NumRows() {
		return fmt.Errorf("table.SetOrderKeyFrom: table has %d rows, not %d: %w", other.NumRows(), dt.NumRows(), ErrState)
	}
	dt.OrderKey = other.OrderKey.Clone()
	return nil
}

// ReverseOrder reverses the current order, or the original
// row order if no order key is set.
func (dt *Table) ReverseOrder() *Table {
	dt.OrderKey.reverse(dt.NumRows())
	return dt
}

// MoveRow moves the row at position from to position to in the current
// order, shifting the rows in between by one. Negative positions count
// back from the end.
func (dt *Table) MoveRow(from, to int) error {
	n := dt.NumRows()
	f, err := wrapIndex("row", from, n)
	if err != nil {
		return err
	}
	t, err := wrapIndex("row", to, n)
	if err != nil {
		return err
	}
	if dt.OrderKey.IsSet() && len(dt.OrderKey.Perm) != n {
		return fmt.Errorf("table.MoveRow: order key has %d rows, not %d: %w", len(dt.OrderKey.Perm), n, ErrState)
	}
	dt.OrderKey.move(n, f, t)
	return nil
}

// Order returns a new table with the rows in the order of the order key.
// If no order is set, the identity order is set on this table and the
// result is a copy. The result has copies of the order and group keys,
// and the filter criteria reordered along with the rows. An [ErrState]
// error is returned if either key was recorded for a different number
// of rows.
func (dt *Table) Order() (*Table, error) {
	n := dt.NumRows()
	if err := dt.FilterKey.checkRows(n); err != nil {
		return nil, fmt.Errorf("table.Order: %w", err)
	}
	if !dt.OrderKey.IsSet() {
		dt.OrderKey.Perm = slicesx.Identity(n)
	}
	perm := dt.OrderKey.Perm
	if len(perm) != n {
		return nil, fmt.Errorf("table.Order: order key has %d rows, not %d: %w", len(perm), n, ErrState)
	}
	nt := dt.gather(perm)
	nt.OrderKey = dt.OrderKey.Clone()
	nt.GroupKey = dt.GroupKey.Clone()
	if dt.FilterKey.IsSet() {
		nt.FilterKey = dt.FilterKey.permuted(perm)
	}
	return nt, nil
}

// ApplyKeys orders and then filters this table in place, according to
// whichever of the order and filter keys are set, and clears them.
// Nothing is changed if an error is returned.
func (dt *Table) ApplyKeys() error {
	res := dt
	if dt.OrderKey.IsSet() {
		nt, err := dt.Order()
		if err != nil {
			return err
		}
		res = nt
	}
	if res.FilterKey.IsSet() {
		nt, err := res.Filter()
		if err != nil {
			return err
		}
		res = nt
	}
	dt.columns = res.columns
	dt.ClearFilterKey()
	dt.ClearOrderKey()
	return nil
}
