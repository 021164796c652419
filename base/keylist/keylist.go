// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package keylist implements an ordered list (slice) of items,
with a map from a key (e.g., names) to indexes,
to support fast lookup by name. Keys are unique:
operations that would introduce a duplicate key return an error.
*/
package keylist

import (
	"fmt"
	"slices"

	"cogentcore.org/dataframe/base/slicesx"
)

// List implements an ordered list (slice) of Values,
// with a map from a key (e.g., names) to indexes,
// to support fast lookup by name.
type List[K comparable, V any] struct {
	// List is the ordered slice of items.
	Values []V

	// Keys is the ordered list of keys, in same order as [List.Values]
	Keys []K

	// indexes is the key-to-index mapping.
	indexes map[K]int
}

// New returns a new [List].  The zero value
// is usable without initialization, so this is
// just a simple standard convenience method.
func New[K comparable, V any]() *List[K, V] {
	return &List[K, V]{}
}

// UpdateIndexes rebuilds the key-to-index map from Keys.
func (kl *List[K, V]) UpdateIndexes() {
	kl.indexes = make(map[K]int, len(kl.Keys))
	for i, k := range kl.Keys {
		kl.indexes[k] = i
	}
}

// initIndexes ensures that the index map exists.
func (kl *List[K, V]) initIndexes() {
	if kl.indexes == nil {
		kl.UpdateIndexes()
	}
}

// Reset resets the list, removing any existing elements.
func (kl *List[K, V]) Reset() {
	kl.Values = nil
	kl.Keys = nil
	kl.indexes = make(map[K]int)
}

// Add adds an item to the end of the list with given key.
// An error is returned if the key is already on the list.
func (kl *List[K, V]) Add(key K, val V) error {
	kl.initIndexes()
	if _, ok := kl.indexes[key]; ok {
		return fmt.Errorf("keylist.Add: key %v is already on the list", key)
	}
	kl.indexes[key] = len(kl.Values)
	kl.Values = append(kl.Values, val)
	kl.Keys = append(kl.Keys, key)
	return nil
}

// Insert inserts the given value with the given key at the given index,
// which may equal Len to append. An error is returned if the key
// already exists. This is relatively slow because it needs to
// regenerate the index map.
func (kl *List[K, V]) Insert(idx int, key K, val V) error {
	kl.initIndexes()
	if _, has := kl.indexes[key]; has {
		return fmt.Errorf("keylist.Insert: key %v is already on the list", key)
	}
	kl.Keys = slices.Insert(kl.Keys, idx, key)
	kl.Values = slices.Insert(kl.Values, idx, val)
	kl.UpdateIndexes()
	return nil
}

// At returns the value corresponding to the given key,
// with a zero value returned for a missing key. See [List.AtTry]
// for one that returns a bool for missing keys.
// For index-based access, use [List.Values] or [List.Keys] slices directly.
func (kl *List[K, V]) At(key K) V {
	v, _ := kl.AtTry(key)
	return v
}

// AtTry returns the value corresponding to the given key,
// with false returned for a missing key, in case the zero value
// is not diagnostic.
func (kl *List[K, V]) AtTry(key K) (V, bool) {
	kl.initIndexes()
	idx, ok := kl.indexes[key]
	if ok {
		return kl.Values[idx], true
	}
	var zv V
	return zv, false
}

// IndexIsValid returns an error if the given index is invalid.
func (kl *List[K, V]) IndexIsValid(idx int) error {
	if idx >= len(kl.Values) || idx < 0 {
		return fmt.Errorf("keylist.List: IndexIsValid: index %d is out of range of a list of length %d", idx, len(kl.Values))
	}
	return nil
}

// IndexByKey returns the index of the given key, with a -1 for missing key.
func (kl *List[K, V]) IndexByKey(key K) int {
	kl.initIndexes()
	idx, ok := kl.indexes[key]
	if !ok {
		return -1
	}
	return idx
}

// Len returns the number of items in the list.
func (kl *List[K, V]) Len() int {
	if kl == nil {
		return 0
	}
	return len(kl.Values)
}

// DeleteByIndex deletes item(s) within the index range [i:j].
// This is relatively slow because it needs to regenerate the
// index map.
func (kl *List[K, V]) DeleteByIndex(i, j int) {
	ndel := j - i
	if ndel <= 0 {
		panic("index range is <= 0")
	}
	kl.Keys = slices.Delete(kl.Keys, i, j)
	kl.Values = slices.Delete(kl.Values, i, j)
	kl.UpdateIndexes()
}

// DeleteByKey deletes the item with the given key,
// returning false if it does not find it.
func (kl *List[K, V]) DeleteByKey(key K) bool {
	idx := kl.IndexByKey(key)
	if idx < 0 {
		return false
	}
	kl.DeleteByIndex(idx, idx+1)
	return true
}

// RenameIndex renames the item at given index to new key,
// returning an error if the new key is used by another item.
func (kl *List[K, V]) RenameIndex(i int, key K) error {
	kl.initIndexes()
	if j, has := kl.indexes[key]; has && j != i {
		return fmt.Errorf("keylist.RenameIndex: key %v is already on the list", key)
	}
	delete(kl.indexes, kl.Keys[i])
	kl.Keys[i] = key
	kl.indexes[key] = i
	return nil
}

// Move moves the item at index from to index to, shifting the
// items in between by one to close the gap.
func (kl *List[K, V]) Move(from, to int) {
	kl.Keys = slicesx.Move(kl.Keys, from, to)
	kl.Values = slicesx.Move(kl.Values, from, to)
	kl.UpdateIndexes()
}

// Swap exchanges the items (keys and values) at the two indexes.
func (kl *List[K, V]) Swap(i, j int) {
	slicesx.Swap(kl.Keys, i, j)
	slicesx.Swap(kl.Values, i, j)
	kl.UpdateIndexes()
}

// SetValue replaces the value at the given index without changing its key.
func (kl *List[K, V]) SetValue(i int, val V) {
	kl.Values[i] = val
}

// Clone returns a new list with copies of the Keys and Values slices.
// The values themselves are copied shallowly.
func (kl *List[K, V]) Clone() *List[K, V] {
	cp := &List[K, V]{Keys: slices.Clone(kl.Keys), Values: slices.Clone(kl.Values)}
	cp.UpdateIndexes()
	return cp
}

// String returns a string representation of the list.
func (kl *List[K, V]) String() string {
	sv := "{"
	for i, v := range kl.Values {
		sv += fmt.Sprintf("%v", kl.Keys[i]) + ": " + fmt.Sprintf("%v", v) + ", "
	}
	sv += "}"
	return sv
}
