// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"bytes"
	"math"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const classCSV = `Name,Class,Math,English
Amy,a,90,80.5
Ben,,55,60.0
Cal,a,72,72.0
Dee,c,64,
Eve,b,88,91.0
Fay,a,40,45.5
`

func TestWriteCSV(t *testing.T) {
	dt := classTable(t)
	cl, err := dt.Column("Class")
	require.NoError(t, err)
	require.NoError(t, cl.SetNull(1))

	var b bytes.Buffer
	require.NoError(t, dt.WriteCSV(&b, Comma, Headers))
	assert.Equal(t, classCSV, b.String())

	rt, err := ReadCSV(&b, Comma, Headers)
	require.NoError(t, err)
	assert.True(t, rt.EqualData(dt))

	b.Reset()
	require.NoError(t, scoreTable(t).WriteCSV(&b, Tab, NoHeaders))
	assert.Equal(t, "Amy\t40\nBen\t60\n", b.String())
}

func TestReadCSV(t *testing.T) {
	dt, err := ReadCSV(strings.NewReader("1,a\n2,b\n"), Comma, NoHeaders)
	require.NoError(t, err)
	assert.Equal(t, []string{"Col1", "Col2"}, dt.ColumnNames())
	c1, err := dt.Column("Col1")
	require.NoError(t, err)
	assert.Equal(t, Ints{1, 2}, c1.Values)

	dt, err = ReadCSV(strings.NewReader("x\n1\n2\n"), Comma, Headers, String)
	require.NoError(t, err)
	x, err := dt.Column("x")
	require.NoError(t, err)
	assert.Equal(t, String, x.Kind())

	// short rows are padded with missing values
	dt, err = ReadCSV(strings.NewReader("a,b\n1\n2,3\n"), Comma, Headers)
	require.NoError(t, err)
	b, err := dt.Column("b")
	require.NoError(t, err)
	v, err := b.Float(0)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v))

	_, err = ReadCSV(strings.NewReader("a,a\n1,2\n"), Comma, Headers)
	assert.ErrorIs(t, err, ErrState)
	_, err = ReadCSV(strings.NewReader(""), Comma, Headers)
	assert.ErrorIs(t, err, ErrState)
	_, err = ReadCSV(strings.NewReader("a\n\"1\n"), Comma, Headers)
	assert.Error(t, err)
}

func TestDelims(t *testing.T) {
	assert.Equal(t, Tab, detectDelim([]byte("a\tb,c\n1\t2\n")))
	assert.Equal(t, Comma, detectDelim([]byte("a,b\n1,2\n")))
	assert.Equal(t, Space, detectDelim([]byte("a b\n1 2\n")))

	dt, err := ReadCSV(strings.NewReader("a b\n1 2\n"), Detect, Headers)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, dt.ColumnNames())

	for s, want := range map[string]Delims{"tab": Tab, "CSV": Comma, "space": Space, "": Detect} {
		d, err := ParseDelims(s)
		require.NoError(t, err)
		assert.Equal(t, want, d, s)
	}
	_, err = ParseDelims(";")
	assert.ErrorIs(t, err, ErrState)
}

func TestSaveOpenCSV(t *testing.T) {
	dt := classTable(t)
	fn := filepath.Join(t.TempDir(), "class.tsv")
	require.NoError(t, dt.SaveCSV(fn, Tab, Headers))
	rt, err := OpenCSV(fn, Detect, Headers)
	require.NoError(t, err)
	assert.True(t, rt.EqualData(dt))

	_, err = OpenCSV(filepath.Join(t.TempDir(), "none.csv"), Comma, Headers)
	assert.Error(t, err)
}

func TestOpenFS(t *testing.T) {
	fsys := fstest.MapFS{
		"data/score.csv": {Data: []byte("Name,Score\nAmy,40\nBen,\n")},
	}
	dt, err := OpenFS(fsys, "data/score.csv", Comma, Headers)
	require.NoError(t, err)
	sc, err := dt.Column("Score")
	require.NoError(t, err)
	assert.Equal(t, Float, sc.Kind())
	v, err := sc.Float(0)
	require.NoError(t, err)
	assert.Equal(t, 40.0, v)

	_, err = OpenFS(fsys, "data/none.csv", Comma, Headers)
	assert.Error(t, err)
}
