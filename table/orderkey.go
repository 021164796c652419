// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"slices"

	"cogentcore.org/dataframe/base/slicesx"
)

// OrderKey is a row permutation together with a label
// recording how it was built.
type OrderKey struct {
	// Label accumulates a readable history of the operations
	// that produced Perm, separated by "; ".
	Label string

	// Perm maps each result row to its source row: Perm[i] is
	// the source row that becomes row i. Empty means identity.
	Perm []int
}

// IsSet returns true if a permutation has been set.
func (ky *OrderKey) IsSet() bool {
	return len(ky.Perm) > 0
}

// perm returns the permutation for n rows, identity if not set.
func (ky *OrderKey) perm(n int) []int {
	if ky.IsSet() {
		return slices.Clone(ky.Perm)
	}
	return slicesx.Identity(n)
}

func (ky *OrderKey) appendLabel(s string) {
	if ky.Label == "" {
		ky.Label = s
		return
	}
	ky.Label += "; " + s
}

// reverse reverses the permutation for n rows.
func (ky *OrderKey) reverse(n int) {
	if !ky.IsSet() {
		ky.Perm = slicesx.Identity(n)
		slices.Reverse(ky.Perm)
		ky.Label = "reverse"
		return
	}
	slices.Reverse(ky.Perm)
	ky.appendLabel("reverse")
}

// move moves result row from to position to, for n rows.
// Both must already be normalized.
func (ky *OrderKey) move(n, from, to int) {
	ky.Perm = slicesx.Move(ky.perm(n), from, to)
	ky.appendLabel(fmt.Sprintf("move %d to %d", from, to))
}

// Clear removes the permutation and label.
func (ky *OrderKey) Clear() {
	ky.Label = ""
	ky.Perm = nil
}

// Clone returns a deep copy of the key.
func (ky *OrderKey) Clone() OrderKey {
	return deepCopy(*ky)
}

// Equal returns true if both keys have the same label and permutation.
func (ky *OrderKey) Equal(other *OrderKey) bool {
	return ky.Label == other.Label && slices.Equal(ky.Perm, other.Perm)
}
