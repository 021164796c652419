// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"cogentcore.org/dataframe/base/errors"
	"github.com/jinzhu/copier"
)

// deepCopy returns a deep copy of the given key value, so that keys
// propagated to a derived table never share storage with the source.
// Empty slices may come back as nil or empty: keys test for an unset
// state by length.
func deepCopy[T any](src T) T {
	var dst T
	errors.Log(copier.CopyWithOption(&dst, &src, copier.Option{DeepCopy: true}))
	return dst
}
