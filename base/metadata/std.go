// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metadata

import "cogentcore.org/dataframe/base/errors"

// SetName sets the "Name" standard key.
func (md *Data) SetName(name string) {
	md.Set("Name", name)
}

// Name returns the "Name" standard key value (empty if not set).
func (md *Data) Name() string {
	return errors.Ignore1(Get[string](*md, "Name"))
}

// SetDoc sets the "Doc" standard key.
func (md *Data) SetDoc(doc string) {
	md.Set("Doc", doc)
}

// Doc returns the "Doc" standard key value (empty if not set).
func (md *Data) Doc() string {
	return errors.Ignore1(Get[string](*md, "Doc"))
}

// SetPrecision sets the "Precision" standard key, the number of
// digits after the decimal point used when writing floating point values as text.
func (md *Data) SetPrecision(prec int) {
	md.Set("Precision", prec)
}

// Precision returns the "Precision" standard key value,
// or -1 (shortest exact representation) if not set.
func (md *Data) Precision() int {
	p, err := Get[int](*md, "Precision")
	if err != nil {
		return -1
	}
	return p
}
