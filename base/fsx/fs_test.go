// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fsx

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExistsFS(t *testing.T) {
	fsys := fstest.MapFS{"a/b.txt": {Data: []byte("b")}}
	ok, err := FileExistsFS(fsys, "a/b.txt")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = FileExistsFS(fsys, "a")
	require.NoError(t, err)
	assert.False(t, ok)
	ok, err = FileExistsFS(fsys, "c.txt")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFindFilesOnPaths(t *testing.T) {
	d1, d2 := t.TempDir(), t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(d2, "p.toml"), nil, 0o644))
	assert.Equal(t, []string{filepath.Join(d2, "p.toml")}, FindFilesOnPaths([]string{d1, d2}, "p.toml"))
	assert.Empty(t, FindFilesOnPaths([]string{d1}, "p.toml"))
	abs := filepath.Join(d2, "p.toml")
	assert.Equal(t, []string{abs}, FindFilesOnPaths(nil, abs))

	dfs, name, err := DirFS(abs)
	require.NoError(t, err)
	assert.Equal(t, "p.toml", name)
	ok, err := FileExistsFS(dfs, name)
	require.NoError(t, err)
	assert.True(t, ok)
}
