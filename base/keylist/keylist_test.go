// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keylist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyList(t *testing.T) {
	kl := New[string, int]()
	assert.NoError(t, kl.Add("key0", 0))
	assert.NoError(t, kl.Add("key1", 1))
	assert.NoError(t, kl.Add("key2", 2))
	assert.Error(t, kl.Add("key1", 11))

	assert.Equal(t, 1, kl.At("key1"))
	assert.Equal(t, 2, kl.IndexByKey("key2"))
	assert.Equal(t, -1, kl.IndexByKey("nope"))
	_, ok := kl.AtTry("nope")
	assert.False(t, ok)
	assert.Equal(t, 3, kl.Len())

	assert.NoError(t, kl.Insert(0, "new0", -1))
	assert.Equal(t, []string{"new0", "key0", "key1", "key2"}, kl.Keys)
	assert.Equal(t, 3, kl.IndexByKey("key2"))
	assert.Error(t, kl.Insert(1, "key0", 5))

	assert.True(t, kl.DeleteByKey("new0"))
	assert.False(t, kl.DeleteByKey("new0"))
	assert.Equal(t, 0, kl.IndexByKey("key0"))

	assert.Error(t, kl.RenameIndex(0, "key1"))
	assert.NoError(t, kl.RenameIndex(0, "first"))
	assert.Equal(t, 0, kl.At("first"))
	assert.Equal(t, -1, kl.IndexByKey("key0"))

	kl.Move(0, 2)
	assert.Equal(t, []string{"key1", "key2", "first"}, kl.Keys)
	assert.Equal(t, []int{1, 2, 0}, kl.Values)
	assert.Equal(t, 2, kl.IndexByKey("first"))

	kl.Swap(0, 2)
	assert.Equal(t, []string{"first", "key2", "key1"}, kl.Keys)
	assert.Equal(t, 2, kl.IndexByKey("key1"))
	kl.Swap(0, 2)

	cp := kl.Clone()
	cp.SetValue(0, 100)
	assert.Equal(t, 1, kl.Values[0])
	assert.Equal(t, 100, cp.At("key1"))

	var zero List[string, int]
	assert.Equal(t, 0, zero.Len())
	assert.Equal(t, -1, zero.IndexByKey("x"))
}
