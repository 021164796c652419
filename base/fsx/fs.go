// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fsx provides helpers for finding and opening files
// through the [fs.FS] interface.
package fsx

import (
	"io/fs"
	"os"
	"path/filepath"

	"cogentcore.org/dataframe/base/errors"
	"github.com/mitchellh/go-homedir"
)

// DirFS returns the directory part of given file path as an os.DirFS
// and the filename as a string.  These can then be used to access the file
// using the FS-based interface, consistent with embed and other use-cases.
// A leading ~ is expanded to the home directory.
func DirFS(fpath string) (fs.FS, string, error) {
	fpath, err := homedir.Expand(fpath)
	if err != nil {
		return nil, "", err
	}
	fabs, err := filepath.Abs(fpath)
	if err != nil {
		return nil, "", err
	}
	dir, fname := filepath.Split(fabs)
	dfs := os.DirFS(dir)
	return dfs, fname, nil
}

// FileExistsFS checks whether given file exists, returning true if so,
// false if not, and error if there is an error in accessing the file.
func FileExistsFS(fsys fs.FS, filePath string) (bool, error) {
	if fsys, ok := fsys.(fs.StatFS); ok {
		fileInfo, err := fsys.Stat(filePath)
		if err == nil {
			return !fileInfo.IsDir(), nil
		}
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	fp, err := fsys.Open(filePath)
	if err == nil {
		fp.Close()
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// FindFilesOnPaths returns the paths of the files with the given name
// in each of the given directories, in order. An absolute or home
// relative name is returned as is if the file exists.
func FindFilesOnPaths(paths []string, file string) []string {
	var res []string
	file = errors.Log1(homedir.Expand(file))
	if filepath.IsAbs(file) {
		dfs, fname, err := DirFS(file)
		if err == nil && errors.Log1(FileExistsFS(dfs, fname)) {
			res = append(res, file)
		}
		return res
	}
	for _, path := range paths {
		dfs, fname, err := DirFS(filepath.Join(path, file))
		if err != nil {
			continue
		}
		if errors.Log1(FileExistsFS(dfs, fname)) {
			res = append(res, filepath.Join(path, file))
		}
	}
	return res
}
