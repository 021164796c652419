// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(t *testing.T, dt *Table) []string {
	cl, err := dt.Column("Name")
	require.NoError(t, err)
	ss, err := cl.Strings()
	require.NoError(t, err)
	return ss.Values
}

func TestFilterScenario(t *testing.T) {
	dt := scoreTable(t)
	require.NoError(t, dt.Where(First).Gt("Score", 50))
	ft, err := dt.Filter()
	require.NoError(t, err)
	assert.Equal(t, 1, ft.NumRows())
	assert.Equal(t, []string{"Ben"}, names(t, ft))
	sc, err := ft.Column("Score")
	require.NoError(t, err)
	assert.Equal(t, Ints{60}, sc.Values)
	assert.False(t, ft.FilterKey.IsSet())

	require.NoError(t, dt.Where(And).Lt("Score", 100))
	assert.Equal(t, 2, dt.FilterKey.Len())
	ft, err = dt.Filter()
	require.NoError(t, err)
	assert.Equal(t, []string{"Ben"}, names(t, ft))
	assert.Equal(t, []string{"first Score > 50", "and Score < 100"}, dt.FilterKey.Labels())
}

func TestFilterCorrectness(t *testing.T) {
	dt := classTable(t)
	mask := []bool{true, false, true, false, true, true}
	require.NoError(t, dt.AddCriterion(mask, "mask", First))
	ft, err := dt.Filter()
	require.NoError(t, err)
	assert.Equal(t, 4, ft.NumRows())
	for ci, cl := range dt.Columns() {
		fc, err := ft.ColumnAt(ci)
		require.NoError(t, err)
		var want []any
		for r, in := range mask {
			if in {
				v, err := cl.Value(r)
				require.NoError(t, err)
				want = append(want, v)
			}
		}
		for r := range want {
			got, err := fc.Value(r)
			require.NoError(t, err)
			assert.Equal(t, want[r], got)
		}
	}
	mc, err := ft.Column("Math")
	require.NoError(t, err)
	assert.Equal(t, Ints{90, 72, 88, 40}, mc.Values)
}

func TestFilterKeepsKeys(t *testing.T) {
	dt := classTable(t)
	require.NoError(t, dt.SetOrderKey("Math"))
	require.NoError(t, dt.SetGroupKey("Class"))
	require.NoError(t, dt.Where(First).Ge("Math", 60))
	ft, err := dt.Filter()
	require.NoError(t, err)
	assert.False(t, ft.FilterKey.IsSet())
	assert.True(t, ft.OrderKey.Equal(&dt.OrderKey))
	assert.Equal(t, dt.GroupKey, ft.GroupKey)

	ft.OrderKey.Perm[0] = 42
	assert.NotEqual(t, 42, dt.OrderKey.Perm[0])
}

func TestFilterErrors(t *testing.T) {
	dt := scoreTable(t)
	_, err := dt.Filter()
	assert.ErrorIs(t, err, ErrState)

	err = dt.Where(First).Gt("Score", 100)
	assert.ErrorIs(t, err, ErrEmptyResult)
	assert.False(t, dt.FilterKey.IsSet())

	err = dt.AddCriterion([]bool{true}, "short", First)
	assert.ErrorIs(t, err, ErrState)

	require.NoError(t, dt.Where(First).Gt("Score", 50))
	require.NoError(t, dt.Where(And).Lt("Score", 50))
	_, err = dt.Filter()
	assert.ErrorIs(t, err, ErrEmptyResult)
}

func TestFoldConsistency(t *testing.T) {
	dt := classTable(t)
	cr := dt.Where(First)
	require.NoError(t, cr.Gt("Math", 50))
	require.NoError(t, dt.Where(And).Lt("Math", 90))
	require.NoError(t, dt.Where(Or).Eq("Name", "Fay"))
	require.NoError(t, dt.Where(And).Ne("Class", "c"))
	assert.True(t, dt.FilterKey.IsConsistent())

	fold, err := dt.FilterKey.Fold()
	require.NoError(t, err)
	assert.Equal(t, fold, dt.FilterKey.Final)
	assert.Equal(t, []bool{false, true, true, false, true, true}, fold)

	dt.FilterKey.SetFinal([]bool{true, true, true, true, true, true})
	assert.False(t, dt.FilterKey.IsConsistent())
	require.NoError(t, dt.FilterKey.Reset())
	assert.True(t, dt.FilterKey.IsConsistent())
	assert.Equal(t, fold, dt.FilterKey.Final)

	var empty FilterKey
	_, err = empty.Fold()
	assert.ErrorIs(t, err, ErrState)
	assert.True(t, empty.IsConsistent())
}

func TestFirstRestartsFold(t *testing.T) {
	dt := classTable(t)
	require.NoError(t, dt.Where(First).Eq("Class", "a"))
	require.NoError(t, dt.Where(First).Eq("Class", "b"))
	assert.Equal(t, []bool{false, true, false, false, true, false}, dt.FilterKey.Final)
	assert.True(t, dt.FilterKey.IsConsistent())
}

func TestCombine(t *testing.T) {
	a := []bool{true, true, false, false}
	b := []bool{true, false, true, false}
	assert.Equal(t, []bool{true, false, false, false}, Combine(a, b, And))
	assert.Equal(t, []bool{true, true, true, false}, Combine(a, b, Or))
	assert.Equal(t, b, Combine(a, b, First))
}

func TestFilterKeyDelete(t *testing.T) {
	dt := classTable(t)
	require.NoError(t, dt.Where(First).Gt("Math", 50))
	require.NoError(t, dt.Where(And).Lt("Math", 80))
	require.NoError(t, dt.FilterKey.Delete(-1))
	assert.Equal(t, 1, dt.FilterKey.Len())
	assert.Equal(t, []bool{true, true, true, true, true, false}, dt.FilterKey.Final)
	assert.ErrorIs(t, dt.FilterKey.Delete(5), ErrLookup)
	require.NoError(t, dt.FilterKey.Delete(0))
	assert.False(t, dt.FilterKey.IsSet())
	assert.Empty(t, dt.FilterKey.Final)
}

func TestSetFilterKeyFrom(t *testing.T) {
	dt := classTable(t)
	require.NoError(t, dt.Where(First).Gt("Math", 50))
	require.NoError(t, dt.Where(Or).Eq("Name", "Fay"))

	other := classTable(t)
	require.NoError(t, other.SetFilterKeyFrom(dt, true))
	assert.True(t, other.FilterKey.Equal(&dt.FilterKey))
	other.FilterKey.Criteria[0].Values[0] = false
	assert.True(t, dt.FilterKey.Criteria[0].Values[0])

	dt.FilterKey.SetFinal([]bool{true, false, false, false, false, false})
	require.NoError(t, other.SetFilterKeyFrom(dt, false))
	assert.False(t, other.FilterKey.IsConsistent())
	require.NoError(t, other.SetFilterKeyFrom(dt, true))
	assert.True(t, other.FilterKey.IsConsistent())

	assert.ErrorIs(t, scoreTable(t).SetFilterKeyFrom(dt, true), ErrState)
}

func TestStaleFilterKey(t *testing.T) {
	dt, err := New(NewFloatColumn("Score", 10, 20, 30))
	require.NoError(t, err)
	require.NoError(t, dt.Where(First).Gt("Score", 15))
	require.NoError(t, dt.RemoveColumn("Score"))
	require.NoError(t, dt.AddColumn(NewIntColumn("X", 1, 2, 3, 4)))
	assert.NotPanics(t, func() {
		_, err := dt.Filter()
		assert.ErrorIs(t, err, ErrState)
		_, err = dt.Order()
		assert.ErrorIs(t, err, ErrState)
		assert.ErrorIs(t, dt.ApplyKeys(), ErrState)
	})
	assert.Equal(t, 4, dt.NumRows())

	fk := FilterKey{Criteria: []Criterion{
		{Label: "a", Values: []bool{true}},
		{Label: "b", Values: []bool{true, false}, Combinator: And},
	}}
	assert.NotPanics(t, func() {
		_, err := fk.Fold()
		assert.ErrorIs(t, err, ErrState)
		assert.ErrorIs(t, fk.Reset(), ErrState)
		assert.False(t, fk.IsConsistent())
	})
}

func TestFilteredOrderKey(t *testing.T) {
	dt := classTable(t)
	require.NoError(t, dt.SetOrderKey("Math"))
	require.NoError(t, dt.Where(First).Gt("Math", 60))
	ft, err := dt.Filter()
	require.NoError(t, err)
	assert.Equal(t, 6, len(ft.OrderKey.Perm))

	_, err = ft.Order()
	assert.ErrorIs(t, err, ErrState)
	assert.ErrorIs(t, ft.MoveRow(0, 1), ErrState)

	require.NoError(t, ft.ClearOrderKey().SetOrderKey("Math"))
	ot, err := ft.Order()
	require.NoError(t, err)
	assert.Equal(t, []string{"Dee", "Cal", "Eve", "Amy"}, names(t, ot))
}
