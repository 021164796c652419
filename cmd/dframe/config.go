// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/dataframe/base/errors"
	"cogentcore.org/dataframe/base/fsx"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// includer is a config with other config files to include.
type includer interface {
	// IncludesPtr returns a pointer to the Includes []string field containing file(s) to include
	// before processing the current config file.
	IncludesPtr() *[]string
}

// openPipeline reads the pipeline file, with any includes it has,
// looking for includes in the directory of the file.
func openPipeline(file string) (*Pipeline, error) {
	p := newPipeline()
	abs, err := filepath.Abs(file)
	if err != nil {
		return nil, err
	}
	p.dir = filepath.Dir(abs)
	if err := openWithIncludes([]string{p.dir}, p, abs); err != nil {
		return nil, err
	}
	return p, nil
}

// openWithIncludes reads the config struct from the given config file,
// looking on paths for the file and its includes.
// It opens any Includes specified in the given config file in the natural
// include order so that includers overwrite included settings.
// Is equivalent to decodeFile if there are no Includes. It returns an error if
// any of the include files cannot be found on paths.
func openWithIncludes(paths []string, cfg includer, file string) error {
	files := fsx.FindFilesOnPaths(paths, file)
	if len(files) == 0 {
		return fmt.Errorf("openWithIncludes: no files found for %q", file)
	}
	if err := decodeFile(cfg, files[0]); err != nil {
		return err
	}
	incs, err := includeStack(paths, cfg)
	if err != nil {
		return err
	}
	if len(incs) == 0 {
		return nil
	}
	for i := len(incs) - 1; i >= 0; i-- {
		if err := decodeFile(cfg, fsx.FindFilesOnPaths(paths, incs[i])[0]); err != nil {
			return err
		}
	}
	// reopen original
	if err := decodeFile(cfg, files[0]); err != nil {
		return err
	}
	*cfg.IncludesPtr() = incs
	return nil
}

// includeStack returns the stack of include files in the natural
// order in which they are encountered (nil if none).
// Files should then be read in reverse order of the slice.
// Returns an error if any of the include files cannot be found on paths,
// or if a file includes itself. Does not alter cfg.
func includeStack(paths []string, cfg includer) ([]string, error) {
	return includeStackImpl(paths, *cfg.IncludesPtr(), nil, map[string]bool{})
}

// includeStackImpl implements includeStack for the given includes,
// with seen holding the files on the current include path.
func includeStackImpl(paths, incs, includes []string, seen map[string]bool) ([]string, error) {
	for i := len(incs) - 1; i >= 0; i-- {
		includes = append(includes, incs[i]) // reverse order so later overwrite earlier
	}
	var errs []error
	for _, inc := range incs {
		if seen[inc] {
			errs = append(errs, fmt.Errorf("includeStack: %q includes itself", inc))
			continue
		}
		files := fsx.FindFilesOnPaths(paths, inc)
		if len(files) == 0 {
			errs = append(errs, fmt.Errorf("includeStack: no files found for %q", inc))
			continue
		}
		var sub struct {
			Includes []string `toml:"includes" yaml:"includes"`
		}
		if err := decodeAny(&sub, files[0], false); err != nil {
			errs = append(errs, err)
			continue
		}
		seen[inc] = true
		var err error
		includes, err = includeStackImpl(paths, sub.Includes, includes, seen)
		if err != nil {
			errs = append(errs, err)
		}
		delete(seen, inc)
	}
	return includes, errors.Join(errs...)
}

// decodeFile decodes the file into cfg, as TOML or YAML
// depending on its extension, rejecting unknown fields.
func decodeFile(cfg any, file string) error {
	return decodeAny(cfg, file, true)
}

func decodeAny(cfg any, file string, strict bool) error {
	f, err := os.Open(file)
	if err != nil {
		return errors.Log(err)
	}
	defer f.Close()
	switch strings.ToLower(filepath.Ext(file)) {
	case ".toml":
		dec := toml.NewDecoder(f)
		if strict {
			dec.DisallowUnknownFields()
		}
		err = dec.Decode(cfg)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(f)
		dec.KnownFields(strict)
		if err = dec.Decode(cfg); errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		return fmt.Errorf("%s: unknown config file type %q: use .toml, .yaml or .yml", file, filepath.Ext(file))
	}
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	return nil
}
