// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnums(t *testing.T) {
	for s, want := range map[string]Kind{"": Auto, "dbl": Float, "Double": Float, "integer": Int, " str ": String} {
		k, err := ParseKind(s)
		require.NoError(t, err)
		assert.Equal(t, want, k, s)
	}
	_, err := ParseKind("bool")
	assert.ErrorIs(t, err, ErrState)

	for _, op := range []Op{Gt, Lt, Ge, Le, Eq, Ne, In, NotIn} {
		got, err := ParseOp(op.String())
		require.NoError(t, err)
		assert.Equal(t, op, got)
	}
	_, err = ParseOp("=")
	assert.ErrorIs(t, err, ErrState)

	c, err := ParseCombinator("OR")
	require.NoError(t, err)
	assert.Equal(t, Or, c)
	_, err = ParseCombinator("xor")
	assert.ErrorIs(t, err, ErrState)
	assert.Equal(t, "Kind(9)", Kind(9).String())
}

func TestKindText(t *testing.T) {
	b, err := Float.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "float", string(b))
	var k Kind
	require.NoError(t, k.UnmarshalText([]byte("integer")))
	assert.Equal(t, Int, k)
	assert.ErrorIs(t, k.UnmarshalText([]byte("bool")), ErrState)
	assert.Equal(t, Int, k)
}
