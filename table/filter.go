// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"slices"
)

// AddCriterion records a criterion with one value per row, folding it
// into the filter result with the given combinator. An all-false
// criterion is rejected with [ErrEmptyResult].
func (dt *Table) AddCriterion(values []bool, label string, comb Combinator) error {
	if len(values) != dt.NumRows() {
		return fmt.Errorf("table: criterion %q has %d values for %d rows: %w", label, len(values), dt.NumRows(), ErrState)
	}
	if err := dt.FilterKey.checkRows(dt.NumRows()); err != nil {
		return err
	}
	if !slices.Contains(values, true) {
		return fmt.Errorf("table: criterion %q: %w", label, ErrEmptyResult)
	}
	dt.FilterKey.add(Criterion{Label: label, Values: slices.Clone(values), Combinator: comb})
	return nil
}

// Where returns a [Criteria] builder that adds criteria to the
// filter key using the given combinator.
func (dt *Table) Where(comb Combinator) *Criteria {
	return &Criteria{table: dt, comb: comb}
}

// Filter returns a new table with only the rows that pass the filter
// key, in their original order. The result has no filter criteria,
// since they do not apply to the new rows, and copies of the order
// and group keys. A copied order key still has the permutation of
// this table's rows, so clear or reset it before ordering the result.
// An [ErrState] error is returned if the criteria were recorded for a
// different number of rows.
func (dt *Table) Filter() (*Table, error) {
	if !dt.FilterKey.IsSet() {
		return nil, fmt.Errorf("table.Filter: no filter criteria have been set: %w", ErrState)
	}
	if err := dt.FilterKey.checkRows(dt.NumRows()); err != nil {
		return nil, fmt.Errorf("table.Filter: %w", err)
	}
	final := dt.FilterKey.Final
	if len(final) != dt.NumRows() {
		if err := dt.FilterKey.Reset(); err != nil {
			return nil, err
		}
		final = dt.FilterKey.Final
	}
	rows := make([]int, 0, len(final))
	for i, pass := range final {
		if pass {
			rows = append(rows, i)
		}
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("table.Filter: no observations meet the request: %w", ErrEmptyResult)
	}
	nt := dt.gather(rows)
	nt.OrderKey = dt.OrderKey.Clone()
	nt.GroupKey = dt.GroupKey.Clone()
	return nt, nil
}

// SetFilterKeyFrom replaces the filter key with a copy of the filter key
// of the other table, which must have the same number of rows.
// If refold is true the final result is recomputed from the criteria,
// otherwise it is copied as is.
func (dt *Table) SetFilterKeyFrom(other *Table, refold bool) error {
	if other.NumRows() != dt.NumRows() {
		return fmt.Errorf("table.SetFilterKeyFrom: table has %d rows, not %d: %w", other.NumRows(), dt.NumRows(), ErrState)
	}
	fk := other.FilterKey.Clone()
	if refold && fk.IsSet() {
		if err := fk.Reset(); err != nil {
			return err
		}
	}
	dt.FilterKey = fk
	return nil
}
