// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnAccess(t *testing.T) {
	fc := NewFloatColumn("F", 1.5, 2.5, math.NaN())
	ic := NewIntColumn("I", 1, 2, 3)
	sc := NewStringColumn("S", "a", "b", "c")

	assert.Equal(t, Float, fc.Kind())
	assert.Equal(t, Int, ic.Kind())
	assert.Equal(t, String, sc.Kind())
	assert.Equal(t, Auto, NewColumn("E", nil).Kind())
	assert.Equal(t, 0, NewColumn("E", nil).Len())

	v, err := fc.Float(-2)
	require.NoError(t, err)
	assert.Equal(t, 2.5, v)
	_, err = fc.Float(3)
	assert.ErrorIs(t, err, ErrLookup)
	_, err = fc.Int(0)
	assert.ErrorIs(t, err, ErrState)
	_, err = ic.Strings()
	assert.ErrorIs(t, err, ErrState)

	require.NoError(t, ic.SetInt(-1, 30))
	iv, err := ic.Int(2)
	require.NoError(t, err)
	assert.Equal(t, int64(30), iv)
	assert.ErrorIs(t, ic.SetFloat(0, 1), ErrState)

	require.NoError(t, sc.SetNull(1))
	null, err := sc.IsNull(1)
	require.NoError(t, err)
	assert.True(t, null)
	val, err := sc.Value(1)
	require.NoError(t, err)
	assert.Nil(t, val)
	require.NoError(t, sc.SetString(1, "B"))
	null, err = sc.IsNull(1)
	require.NoError(t, err)
	assert.False(t, null)
	s, err := sc.StringValue(1)
	require.NoError(t, err)
	assert.Equal(t, "B", s)

	null, err = fc.IsNull(2)
	require.NoError(t, err)
	assert.True(t, null)
	txt, err := fc.Text(0)
	require.NoError(t, err)
	assert.Equal(t, "1.5", txt)
	txt, err = fc.Text(2)
	require.NoError(t, err)
	assert.Equal(t, "NaN", txt)
}

func TestColumnConcat(t *testing.T) {
	a := NewStringColumn("S", "a", "b")
	b := NewStringColumn("S", "c")
	require.NoError(t, b.SetNull(0))
	c, err := a.Concat(b)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())
	null, err := c.IsNull(2)
	require.NoError(t, err)
	assert.True(t, null)
	null, err = c.IsNull(0)
	require.NoError(t, err)
	assert.False(t, null)

	// result does not share storage
	require.NoError(t, c.SetString(0, "z"))
	s, err := a.StringValue(0)
	require.NoError(t, err)
	assert.Equal(t, "a", s)

	_, err = a.Concat(NewIntColumn("S", 1))
	assert.ErrorIs(t, err, ErrState)

	f, err := NewFloatColumn("F", 1).Concat(NewFloatColumn("F", 2, 3))
	require.NoError(t, err)
	fs, err := f.Floats()
	require.NoError(t, err)
	assert.Equal(t, Floats{1, 2, 3}, fs)
}

func TestColumnCloneEqual(t *testing.T) {
	a := NewFloatColumn("F", 1, math.NaN())
	b := a.Clone()
	assert.True(t, a.Equal(b))
	require.NoError(t, b.SetFloat(0, 5))
	assert.False(t, a.Equal(b))
	v, err := a.Float(0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	assert.False(t, NewIntColumn("A", 1).Equal(NewFloatColumn("A", 1)))
	assert.False(t, NewIntColumn("A", 1).Equal(NewIntColumn("B", 1)))
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "3.0", FormatFloat(3, -1))
	assert.Equal(t, "3.25", FormatFloat(3.25, -1))
	assert.Equal(t, "3.3", FormatFloat(3.26, 1))
	assert.Equal(t, "-2.0", FormatFloat(-2, 0))
	assert.Equal(t, "NaN", FormatFloat(math.NaN(), 2))
	assert.Equal(t, "+Inf", FormatFloat(math.Inf(1), -1))
}
