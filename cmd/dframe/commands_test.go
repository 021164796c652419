// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/dataframe/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const classCSV = `Name,Class,Math,English
Amy,a,90,80.5
Ben,b,55,60
Cal,a,72,72
Dee,c,64,
Eve,b,88,91
Fay,a,40,45.5
`

// writeClass writes the class table to a new directory
// and returns the path of the file.
func writeClass(t *testing.T) string {
	fn := filepath.Join(t.TempDir(), "class.csv")
	require.NoError(t, os.WriteFile(fn, []byte(classCSV), 0o644))
	return fn
}

func execute(args ...string) (string, error) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append(args, "--no-color", "--quiet"))
	err := cmd.Execute()
	return out.String(), err
}

func TestShow(t *testing.T) {
	fn := writeClass(t)
	out, err := execute("show", fn)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "Name  Class  Math  English", lines[0])
	assert.Equal(t, "Amy   a        90     80.5", lines[1])
	assert.True(t, strings.HasSuffix(lines[4], "NaN"))

	out, err = execute("show", fn, "--rows", "2")
	require.NoError(t, err)
	lines = strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "... 4 more rows", lines[3])

	out, err = execute("show", fn, "-f", "tsv", "-p", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Amy\ta\t90\t80.50\n")

	_, err = execute("show", fn, "-f", "json")
	assert.Error(t, err)
	_, err = execute("show", filepath.Join(t.TempDir(), "none.csv"))
	assert.Error(t, err)
}

func TestTypes(t *testing.T) {
	fn := writeClass(t)
	out, err := execute("types", fn, "-f", "csv")
	require.NoError(t, err)
	assert.Equal(t, "Names,Types\nName,string\nClass,string\nMath,int\nEnglish,float\n", out)

	out, err = execute("types", fn, "-f", "csv", "--kinds", "string,string,float")
	require.NoError(t, err)
	assert.Contains(t, out, "Math,float\n")
	_, err = execute("types", fn, "--kinds", "bool")
	assert.ErrorIs(t, err, table.ErrState)
}

func TestFilter(t *testing.T) {
	fn := writeClass(t)
	out, err := execute("filter", fn, "Math > 60", "-f", "csv")
	require.NoError(t, err)
	assert.Equal(t, "Name,Class,Math,English\nAmy,a,90,80.5\nCal,a,72,72.0\nDee,c,64,\nEve,b,88,91.0\n", out)

	out, err = execute("filter", fn, "Math > 60", "or Name in Ben", "and Math < @English", "-f", "csv")
	require.NoError(t, err)
	assert.Equal(t, "Name,Class,Math,English\nBen,b,55,60.0\nEve,b,88,91.0\n", out)

	_, err = execute("filter", fn, "Math > 100")
	assert.ErrorIs(t, err, table.ErrEmptyResult)
	_, err = execute("filter", fn, "Mth > 1")
	assert.ErrorIs(t, err, table.ErrLookup)
	_, err = execute("filter", fn)
	assert.Error(t, err)
}

func TestOrder(t *testing.T) {
	fn := writeClass(t)
	out, err := execute("order", fn, "Math", "--reverse", "-f", "csv")
	require.NoError(t, err)
	var names []string
	for _, ln := range strings.Split(strings.TrimSpace(out), "\n")[1:] {
		nm, _, _ := strings.Cut(ln, ",")
		names = append(names, nm)
	}
	assert.Equal(t, []string{"Amy", "Eve", "Cal", "Dee", "Ben", "Fay"}, names)

	out, err = execute("order", fn, "English", "-f", "csv")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "Dee,c,64,\n"))

	_, err = execute("order", fn, "Name", "--collate", "en")
	assert.NoError(t, err)
	_, err = execute("order", fn, "Name", "--collate", "!!")
	assert.Error(t, err)
}

func TestGroup(t *testing.T) {
	fn := writeClass(t)
	out, err := execute("group", fn, "Class", "-f", "csv")
	require.NoError(t, err)
	assert.Equal(t, "Group,Count\na,3\nb,2\nc,1\n", out)

	out, err = execute("group", fn, "Class", "--dummy", "-f", "csv")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Name,Math,English,Class-a,Class-b,Class-c\nAmy,90,80.5,1,0,0\n"))

	_, err = execute("group", fn, "English")
	assert.ErrorIs(t, err, table.ErrState)
}

func TestFormats(t *testing.T) {
	fn := writeClass(t)
	out, err := execute("show", fn, "-f", "markdown")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "| Name | Class | Math | English |\n| --- | --- | ---: | ---: |\n| Amy | a | 90 | 80.5 |\n"))
	assert.Contains(t, out, "| Dee | c | 64 |  |\n")

	out, err = execute("show", fn, "-f", "html")
	require.NoError(t, err)
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "<th>Name</th>")
	assert.Contains(t, out, `<td align="right">90</td>`)
}
