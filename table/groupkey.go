// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

// GroupKey names the column used for grouping, which must be
// an [Int] or [String] column.
type GroupKey struct {
	// Column is the name of the group column.
	Column string

	// Kind is the kind of the group column when the key was set.
	Kind Kind
}

// IsSet returns true if a group column has been set.
func (gk *GroupKey) IsSet() bool {
	return gk.Column != ""
}

// Clear removes the group column.
func (gk *GroupKey) Clear() {
	*gk = GroupKey{}
}

// Clone returns a copy of the key.
func (gk *GroupKey) Clone() GroupKey {
	return deepCopy(*gk)
}
