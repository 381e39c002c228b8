// Copyright 2026 The cfg Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package index

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/emux/cfg/internal/arena"
	"github.com/emux/cfg/internal/entrytable"
)

func appendString(a *arena.Arena, s string) uint32 {
	off := a.Len()
	for i := 0; i < len(s); i++ {
		a.AppendByte(s[i])
	}
	a.Terminate()
	return off
}

func TestIndex_lookup(t *testing.T) {
	a := arena.New()
	tab := entrytable.New()

	var keys []string
	for i := 0; i < 50; i++ {
		keys = append(keys, "key"+strconv.Itoa(i))
	}
	for _, key := range keys {
		k := appendString(a, key)
		v := appendString(a, "v-"+key)
		tab.Insert(a, entrytable.Entry{Key: k, Val: v})
	}

	idx := Build(a, tab)
	for _, key := range keys {
		i, ok := idx.MaybeLookup([]byte(key))
		require.True(t, ok, "key %q", key)
		require.Equal(t, key, a.String(tab.At(i).Key))
	}

	_, ok := idx.MaybeLookup([]byte("never-inserted"))
	require.False(t, ok)
}

func TestIndex_empty(t *testing.T) {
	a := arena.New()
	idx := Build(a, entrytable.New())
	_, ok := idx.MaybeLookup([]byte("anything"))
	require.False(t, ok)
}
