// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"log/slog"
	"path/filepath"

	"cogentcore.org/dataframe/logx"
	"github.com/fsnotify/fsnotify"
)

// watch calls fn, and again each time one of the files is written or
// replaced, until ctx is done. Errors from fn are printed, not returned.
func watch(ctx context.Context, files []string, fn func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// directories are watched so that files replaced by editors are seen
	names := map[string]bool{}
	dirs := map[string]bool{}
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return err
		}
		names[abs] = true
		dir := filepath.Dir(abs)
		if !dirs[dir] {
			if err := watcher.Add(dir); err != nil {
				return err
			}
			dirs[dir] = true
		}
	}

	run := func() {
		if err := fn(); err != nil {
			logx.PrintlnError("dframe: ", err)
		}
	}
	run()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !names[filepath.Clean(event.Name)] || !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
				continue
			}
			slog.Info("dframe: file changed", "file", event.Name)
			run()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("dframe: file watcher error: " + err.Error())
		}
	}
}

// watchFiles returns the pipeline file, its includes and its input.
func (p *Pipeline) watchFiles(file string) []string {
	files := []string{file, p.path(p.Input)}
	for _, inc := range p.Includes {
		files = append(files, p.path(inc))
	}
	return files
}
