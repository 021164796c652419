// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"log/slog"
	"slices"
)

// Criterion is one boolean row selection recorded in a [FilterKey].
type Criterion struct {
	// Label describes the criterion, for example "Score > 50".
	Label string

	// Values has one entry per row, true for rows that pass.
	Values []bool

	// Combinator determines how Values folds with the
	// result of the criteria before it.
	Combinator Combinator
}

// FilterKey is an ordered list of criteria together with their fold,
// which determines the rows kept by [Table.Filter].
type FilterKey struct {
	// Criteria are the recorded criteria, in the order added.
	Criteria []Criterion

	// Final is the left fold of Criteria, maintained incrementally
	// as criteria are added. It can only drift from the fold
	// through [FilterKey.SetFinal].
	Final []bool
}

// Combine returns the single fold step combining the previous result
// with the next criterion values. Both must have the same length.
func Combine(prev, next []bool, comb Combinator) []bool {
	out := make([]bool, len(next))
	switch comb {
	case And:
		for i := range out {
			out[i] = prev[i] && next[i]
		}
	case Or:
		for i := range out {
			out[i] = prev[i] || next[i]
		}
	default:
		copy(out, next)
	}
	return out
}

// Len returns the number of criteria.
func (fk *FilterKey) Len() int {
	return len(fk.Criteria)
}

// IsSet returns true if any criteria have been recorded.
func (fk *FilterKey) IsSet() bool {
	return len(fk.Criteria) > 0
}

// Fold returns the left fold of all criteria, computed from scratch.
func (fk *FilterKey) Fold() ([]bool, error) {
	if !fk.IsSet() {
		return nil, fmt.Errorf("table: filter key has no criteria: %w", ErrState)
	}
	if err := fk.checkRows(len(fk.Criteria[0].Values)); err != nil {
		return nil, err
	}
	res := slices.Clone(fk.Criteria[0].Values)
	for _, c := range fk.Criteria[1:] {
		res = Combine(res, c.Values, c.Combinator)
	}
	return res, nil
}

// checkRows returns an [ErrState] error unless every criterion
// has a value for each of n rows. Criteria go stale when a mutator
// changes the number of rows after they were recorded.
func (fk *FilterKey) checkRows(n int) error {
	for _, c := range fk.Criteria {
		if len(c.Values) != n {
			return fmt.Errorf("table: filter criterion %q has %d values for %d rows: %w", c.Label, len(c.Values), n, ErrState)
		}
	}
	return nil
}

// add appends the criterion and folds it into Final.
// If Final is not set, it is recomputed from all criteria.
func (fk *FilterKey) add(c Criterion) {
	fk.Criteria = append(fk.Criteria, c)
	if len(fk.Criteria) == 1 {
		fk.Final = slices.Clone(c.Values)
		return
	}
	if len(fk.Final) != len(c.Values) {
		fk.Final, _ = fk.Fold()
		return
	}
	fk.Final = Combine(fk.Final, c.Values, c.Combinator)
}

// IsConsistent returns true if Final equals the fold of the criteria.
// A key without criteria is consistent when Final is empty.
func (fk *FilterKey) IsConsistent() bool {
	if !fk.IsSet() {
		return len(fk.Final) == 0
	}
	res, err := fk.Fold()
	if err != nil {
		return false
	}
	return slices.Equal(res, fk.Final)
}

// Reset recomputes Final from scratch, repairing any drift.
func (fk *FilterKey) Reset() error {
	res, err := fk.Fold()
	if err != nil {
		return err
	}
	fk.Final = res
	return nil
}

// SetFinal directly sets the final result, without reference to the
// criteria. A warning is logged when the result does not match the fold:
// use [FilterKey.IsConsistent] and [FilterKey.Reset] to check and repair.
func (fk *FilterKey) SetFinal(final []bool) {
	fk.Final = slices.Clone(final)
	if !fk.IsConsistent() {
		slog.Warn("table: final filter values are not consistent with the filter criteria", "criteria", fk.Len())
	}
}

// Delete removes the criterion at index i (negative counts from the end)
// and recomputes Final.
func (fk *FilterKey) Delete(i int) error {
	i, err := wrapIndex("criterion", i, fk.Len())
	if err != nil {
		return err
	}
	fk.Criteria = slices.Delete(fk.Criteria, i, i+1)
	if !fk.IsSet() {
		fk.Final = nil
		return nil
	}
	return fk.Reset()
}

// Clear removes all criteria and the final result.
func (fk *FilterKey) Clear() {
	fk.Criteria = nil
	fk.Final = nil
}

// Clone returns a deep copy of the key.
func (fk *FilterKey) Clone() FilterKey {
	return deepCopy(*fk)
}

// Labels returns the criterion labels, each prefixed by its combinator.
func (fk *FilterKey) Labels() []string {
	lbls := make([]string, len(fk.Criteria))
	for i, c := range fk.Criteria {
		lbls[i] = c.Combinator.String() + " " + c.Label
	}
	return lbls
}

// Equal returns true if both keys have the same criteria and final result.
func (fk *FilterKey) Equal(other *FilterKey) bool {
	if !slices.Equal(fk.Final, other.Final) {
		return false
	}
	return slices.EqualFunc(fk.Criteria, other.Criteria, func(a, b Criterion) bool {
		return a.Label == b.Label && a.Combinator == b.Combinator && slices.Equal(a.Values, b.Values)
	})
}

// permuted returns a copy of the key with every row vector
// gathered through perm, so it remains valid on reordered rows.
func (fk *FilterKey) permuted(perm []int) FilterKey {
	cp := fk.Clone()
	for i := range cp.Criteria {
		cp.Criteria[i].Values = gatherBools(fk.Criteria[i].Values, perm)
	}
	if len(fk.Final) == len(perm) {
		cp.Final = gatherBools(fk.Final, perm)
	}
	return cp
}

func gatherBools(bs []bool, rows []int) []bool {
	out := make([]bool, len(rows))
	for i, r := range rows {
		out[i] = bs[r]
	}
	return out
}
