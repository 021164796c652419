// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"strings"
)

// Criteria adds criteria to the filter key of a table, all folded with
// the same [Combinator]. Get one with [Table.Where]. Each method
// validates its arguments before recording anything, and returns
// [ErrEmptyResult] if no row passes the new criterion.
type Criteria struct {
	table *Table
	comb  Combinator
}

// Combinator returns the combinator used by the criteria.
func (cr *Criteria) Combinator() Combinator {
	return cr.comb
}

func (cr *Criteria) add(values []bool, label string) error {
	return cr.table.AddCriterion(values, label, cr.comb)
}

// compare adds the criterion comparing the column with each operand,
// passing rows for which any operand passes, or for NotIn, all do.
func (cr *Criteria) compare(column string, op Op, operands ...any) error {
	cl, err := cr.table.Column(column)
	if err != nil {
		return err
	}
	scs := make([]scalar, len(operands))
	for i, v := range operands {
		sc, err := toScalar(v)
		if err != nil {
			return err
		}
		if err := compatible(cl.Kind(), sc.kind); err != nil {
			return fmt.Errorf("table: column %q: %w", column, err)
		}
		scs[i] = sc
	}
	values := make([]bool, cr.table.NumRows())
	for r := range values {
		values[r] = matches(cl, r, op, scs)
	}
	return cr.add(values, column+" "+op.String()+" "+operandLabel(op, scs))
}

// matches returns true if the value at row r passes op for any of the
// operands, or for NotIn, is present and equal to none of them.
func matches(cl *Column, r int, op Op, scs []scalar) bool {
	if op == NotIn {
		for _, sc := range scs {
			c, ok := compareScalar(cl, r, sc)
			if !ok || c == 0 {
				return false
			}
		}
		return true
	}
	for _, sc := range scs {
		if c, ok := compareScalar(cl, r, sc); ok && op.test(c) {
			return true
		}
	}
	return false
}

func operandLabel(op Op, scs []scalar) string {
	if op != In && op != NotIn {
		return scs[0].String()
	}
	strs := make([]string, len(scs))
	for i, sc := range scs {
		strs[i] = sc.String()
	}
	return "[" + strings.Join(strs, ", ") + "]"
}

// Gt passes rows where the column value is greater than value.
func (cr *Criteria) Gt(column string, value any) error {
	return cr.compare(column, Gt, value)
}

// Lt passes rows where the column value is less than value.
func (cr *Criteria) Lt(column string, value any) error {
	return cr.compare(column, Lt, value)
}

// Ge passes rows where the column value is greater than or equal to value.
func (cr *Criteria) Ge(column string, value any) error {
	return cr.compare(column, Ge, value)
}

// Le passes rows where the column value is less than or equal to value.
func (cr *Criteria) Le(column string, value any) error {
	return cr.compare(column, Le, value)
}

// Eq passes rows where the column value equals value.
func (cr *Criteria) Eq(column string, value any) error {
	return cr.compare(column, Eq, value)
}

// Ne passes rows where the column value is present and differs from value.
func (cr *Criteria) Ne(column string, value any) error {
	return cr.compare(column, Ne, value)
}

// In passes rows where the column value equals one of the values.
func (cr *Criteria) In(column string, values ...any) error {
	if len(values) == 0 {
		return fmt.Errorf("table: In %q needs at least one value: %w", column, ErrState)
	}
	return cr.compare(column, In, values...)
}

// NotIn passes rows where the column value is present
// and equals none of the values.
func (cr *Criteria) NotIn(column string, values ...any) error {
	if len(values) == 0 {
		return fmt.Errorf("table: NotIn %q needs at least one value: %w", column, ErrState)
	}
	return cr.compare(column, NotIn, values...)
}

// Range passes rows where lo <= value < hi.
func (cr *Criteria) Range(column string, lo, hi any) error {
	cl, err := cr.table.Column(column)
	if err != nil {
		return err
	}
	los, err := toScalar(lo)
	if err != nil {
		return err
	}
	his, err := toScalar(hi)
	if err != nil {
		return err
	}
	for _, sc := range []scalar{los, his} {
		if err := compatible(cl.Kind(), sc.kind); err != nil {
			return fmt.Errorf("table: column %q: %w", column, err)
		}
	}
	values := make([]bool, cr.table.NumRows())
	for r := range values {
		lc, okl := compareScalar(cl, r, los)
		hc, okh := compareScalar(cl, r, his)
		values[r] = okl && okh && lc >= 0 && hc < 0
	}
	return cr.add(values, fmt.Sprintf("%s in [%s, %s)", column, los, his))
}

// compareColumns adds the criterion comparing two columns row by row.
func (cr *Criteria) compareColumns(a string, op Op, b string) error {
	ca, err := cr.table.Column(a)
	if err != nil {
		return err
	}
	cb, err := cr.table.Column(b)
	if err != nil {
		return err
	}
	if err := compatible(ca.Kind(), cb.Kind()); err != nil {
		return fmt.Errorf("table: columns %q and %q: %w", a, b, err)
	}
	values := make([]bool, cr.table.NumRows())
	for r := range values {
		c, ok := compareRows(ca, cb, r)
		values[r] = ok && op.test(c)
	}
	return cr.add(values, a+" "+op.String()+" @"+b)
}

// ColGt passes rows where the value of column a is greater than that of b.
func (cr *Criteria) ColGt(a, b string) error { return cr.compareColumns(a, Gt, b) }

// ColLt passes rows where the value of column a is less than that of b.
func (cr *Criteria) ColLt(a, b string) error { return cr.compareColumns(a, Lt, b) }

// ColGe passes rows where the value of column a is at least that of b.
func (cr *Criteria) ColGe(a, b string) error { return cr.compareColumns(a, Ge, b) }

// ColLe passes rows where the value of column a is at most that of b.
func (cr *Criteria) ColLe(a, b string) error { return cr.compareColumns(a, Le, b) }

// ColEq passes rows where columns a and b have equal values.
func (cr *Criteria) ColEq(a, b string) error { return cr.compareColumns(a, Eq, b) }

// ColNe passes rows where columns a and b have different values.
func (cr *Criteria) ColNe(a, b string) error { return cr.compareColumns(a, Ne, b) }

// Rows passes the given rows, where negative rows count back from the end.
func (cr *Criteria) Rows(rows ...int) error {
	values, err := cr.table.rowMask(rows, true)
	if err != nil {
		return err
	}
	return cr.add(values, fmt.Sprintf("rows %v", rows))
}

// ExceptRows passes all rows other than the given rows.
func (cr *Criteria) ExceptRows(rows ...int) error {
	values, err := cr.table.rowMask(rows, false)
	if err != nil {
		return err
	}
	return cr.add(values, fmt.Sprintf("except rows %v", rows))
}

// RowRange passes the rows in the half-open range [from, to),
// where a negative to counts from one past the end.
func (cr *Criteria) RowRange(from, to int) error {
	values, err := cr.table.rangeMask(from, to, true)
	if err != nil {
		return err
	}
	return cr.add(values, fmt.Sprintf("rows [%d, %d)", from, to))
}

// ExceptRange passes the rows outside the half-open range [from, to).
func (cr *Criteria) ExceptRange(from, to int) error {
	values, err := cr.table.rangeMask(from, to, false)
	if err != nil {
		return err
	}
	return cr.add(values, fmt.Sprintf("except rows [%d, %d)", from, to))
}

// Values adds the given per-row values directly,
// labeled "Given" if label is empty.
func (cr *Criteria) Values(values []bool, label string) error {
	if label == "" {
		label = "Given"
	}
	return cr.add(values, label)
}

// rowMask returns a mask with the given rows set to in,
// and all others to !in.
func (dt *Table) rowMask(rows []int, in bool) ([]bool, error) {
	n := dt.NumRows()
	mask := make([]bool, n)
	if !in {
		for i := range mask {
			mask[i] = true
		}
	}
	for _, r := range rows {
		ri, err := dt.rowIndex(r)
		if err != nil {
			return nil, err
		}
		mask[ri] = in
	}
	return mask, nil
}

// rangeMask returns a mask with the rows in [from, to) set to in,
// and all others to !in.
func (dt *Table) rangeMask(from, to int, in bool) ([]bool, error) {
	n := dt.NumRows()
	f, t, err := wrapRange("row", from, to, n)
	if err != nil {
		return nil, err
	}
	mask := make([]bool, n)
	for i := range mask {
		mask[i] = (i >= f && i < t) == in
	}
	return mask, nil
}
