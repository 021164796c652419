// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lastCriterion returns the values and label of the last criterion.
func lastCriterion(dt *Table) ([]bool, string) {
	c := dt.FilterKey.Criteria[dt.FilterKey.Len()-1]
	return c.Values, c.Label
}

func TestScalarCriteria(t *testing.T) {
	dt := classTable(t)
	cr := dt.Where(Or)
	assert.Equal(t, Or, cr.Combinator())

	tests := []struct {
		add    func() error
		values []bool
		label  string
	}{
		{func() error { return cr.Gt("Math", 64) }, []bool{true, false, true, false, true, false}, "Math > 64"},
		{func() error { return cr.Ge("Math", 64) }, []bool{true, false, true, true, true, false}, "Math >= 64"},
		{func() error { return cr.Lt("Math", 64.5) }, []bool{false, true, false, true, false, true}, "Math < 64.5"},
		{func() error { return cr.Le("English", 72) }, []bool{false, true, true, false, false, true}, "English <= 72"},
		{func() error { return cr.Eq("Class", "a") }, []bool{true, false, true, false, false, true}, "Class == a"},
		{func() error { return cr.Ne("English", 60) }, []bool{true, false, true, false, true, true}, "English != 60"},
		{func() error { return cr.In("Class", "a", "c") }, []bool{true, false, true, true, false, true}, "Class in [a, c]"},
		{func() error { return cr.NotIn("Math", 90, 40) }, []bool{false, true, true, true, true, false}, "Math notin [90, 40]"},
		{func() error { return cr.Range("English", 60, 81) }, []bool{true, true, true, false, false, false}, "English in [60, 81)"},
		{func() error { return cr.Gt("Name", "Cal") }, []bool{false, false, false, true, true, true}, "Name > Cal"},
	}
	for _, tt := range tests {
		require.NoError(t, tt.add(), tt.label)
		values, label := lastCriterion(dt)
		assert.Equal(t, tt.values, values, tt.label)
		assert.Equal(t, tt.label, label)
	}
	assert.True(t, dt.FilterKey.IsConsistent())
}

func TestCriteriaNulls(t *testing.T) {
	dt := classTable(t)
	cl, err := dt.Column("Class")
	require.NoError(t, err)
	require.NoError(t, cl.SetNull(0))

	require.NoError(t, dt.Where(First).Ne("Class", "b"))
	values, _ := lastCriterion(dt)
	assert.Equal(t, []bool{false, false, true, true, false, true}, values)

	require.NoError(t, dt.Where(First).NotIn("Class", "b"))
	values, _ = lastCriterion(dt)
	assert.Equal(t, []bool{false, false, true, true, false, true}, values)

	// NaN English in row 3 never passes
	require.NoError(t, dt.Where(First).Ne("English", 0))
	values, _ = lastCriterion(dt)
	assert.Equal(t, []bool{true, true, true, false, true, true}, values)
}

func TestCriteriaErrors(t *testing.T) {
	dt := classTable(t)
	cr := dt.Where(First)
	assert.ErrorIs(t, cr.Gt("Nope", 1), ErrLookup)
	assert.ErrorIs(t, cr.Gt("Name", 1), ErrState)
	assert.ErrorIs(t, cr.Eq("Math", "a"), ErrState)
	assert.ErrorIs(t, cr.Eq("Math", struct{}{}), ErrState)
	assert.ErrorIs(t, cr.In("Math"), ErrState)
	assert.ErrorIs(t, cr.ColGt("Name", "Math"), ErrState)
	assert.ErrorIs(t, cr.Rows(6), ErrLookup)
	assert.ErrorIs(t, cr.RowRange(4, 2), ErrLookup)
	assert.ErrorIs(t, cr.Eq("Name", "Zed"), ErrEmptyResult)
	assert.False(t, dt.FilterKey.IsSet())
}

func TestColumnCriteria(t *testing.T) {
	dt := classTable(t)
	cr := dt.Where(First)
	require.NoError(t, cr.ColGt("Math", "English"))
	values, label := lastCriterion(dt)
	assert.Equal(t, []bool{true, false, false, false, false, false}, values)
	assert.Equal(t, "Math > @English", label)

	require.NoError(t, cr.ColLe("Math", "English"))
	values, _ = lastCriterion(dt)
	assert.Equal(t, []bool{false, true, true, false, true, true}, values)

	require.NoError(t, cr.ColNe("Name", "Class"))
	values, _ = lastCriterion(dt)
	assert.Equal(t, []bool{true, true, true, true, true, true}, values)

	require.NoError(t, cr.ColEq("Math", "Math"))
	require.NoError(t, cr.ColGe("English", "Math"))
	require.NoError(t, cr.ColLt("English", "Math"))
	values, _ = lastCriterion(dt)
	assert.Equal(t, []bool{true, false, false, false, false, false}, values)
}

func TestPositionalCriteria(t *testing.T) {
	dt := classTable(t)
	cr := dt.Where(First)
	require.NoError(t, cr.Rows(0, -1))
	values, label := lastCriterion(dt)
	assert.Equal(t, []bool{true, false, false, false, false, true}, values)
	assert.Equal(t, "rows [0 -1]", label)

	require.NoError(t, cr.ExceptRows(1))
	values, _ = lastCriterion(dt)
	assert.Equal(t, []bool{true, false, true, true, true, true}, values)

	require.NoError(t, cr.RowRange(2, -1))
	values, label = lastCriterion(dt)
	assert.Equal(t, []bool{false, false, true, true, true, true}, values)
	assert.Equal(t, "rows [2, -1)", label)

	require.NoError(t, cr.RowRange(-3, -2))
	values, _ = lastCriterion(dt)
	assert.Equal(t, []bool{false, false, false, true, true, false}, values)

	require.NoError(t, cr.ExceptRange(0, 4))
	values, _ = lastCriterion(dt)
	assert.Equal(t, []bool{false, false, false, false, true, true}, values)

	require.NoError(t, cr.Values([]bool{true, false, false, false, false, false}, ""))
	_, label = lastCriterion(dt)
	assert.Equal(t, "Given", label)
}

func TestAddCriterionExpr(t *testing.T) {
	dt := classTable(t)
	require.NoError(t, dt.AddCriterionExpr("Math > 60"))
	assert.Equal(t, First, dt.FilterKey.Criteria[0].Combinator)
	require.NoError(t, dt.AddCriterionExpr("English < 85.5"))
	assert.Equal(t, And, dt.FilterKey.Criteria[1].Combinator)
	require.NoError(t, dt.AddCriterionExpr(`or Name in Fay "Ben"`))
	values, label := lastCriterion(dt)
	assert.Equal(t, []bool{false, true, false, false, false, true}, values)
	assert.Equal(t, "Name in [Fay, Ben]", label)
	assert.Equal(t, []bool{true, true, true, false, false, true}, dt.FilterKey.Final)

	require.NoError(t, dt.AddCriterionExpr("first Math >= @English"))
	values, _ = lastCriterion(dt)
	assert.Equal(t, []bool{true, false, true, false, false, false}, values)

	require.NoError(t, dt.AddCriterionExpr("and Math > 71.5"))
	values, label = lastCriterion(dt)
	assert.Equal(t, []bool{true, false, true, false, true, false}, values)
	assert.Equal(t, "Math > 71.5", label)

	require.NoError(t, dt.AddCriterionExpr(`first Name != "Amy"`))

	assert.ErrorIs(t, dt.AddCriterionExpr("Math >"), ErrState)
	assert.ErrorIs(t, dt.AddCriterionExpr("Math ~ 3"), ErrState)
	assert.ErrorIs(t, dt.AddCriterionExpr("Math > abc"), ErrState)
	assert.ErrorIs(t, dt.AddCriterionExpr("Math > 1 2"), ErrState)
	assert.ErrorIs(t, dt.AddCriterionExpr("Nope == 1"), ErrLookup)
	assert.ErrorIs(t, dt.AddCriterionExpr(`Name == "unterminated`), ErrState)
}
