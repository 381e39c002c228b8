// Copyright 2026 The cfg Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package index provides a hashed lookup accelerator over the sorted
// entry table, built once after a store is fully parsed.
package index

import (
	"github.com/dgryski/go-farm"

	"github.com/emux/cfg/internal/arena"
	"github.com/emux/cfg/internal/entrytable"
)

// collision poisons a slot whose hash is shared by more than one key, so
// lookups for those keys fall back to the sorted table.
const collision = int32(-1)

// Index maps the farm hash of each key to its position in the entry
// table.  It is immutable after Build.
type Index struct {
	slots map[uint64]int32
}

// Build hashes every key in t.  Entries whose keys collide on the 64-bit
// hash are left to binary search.
func Build(a *arena.Arena, t *entrytable.Table) *Index {
	slots := make(map[uint64]int32, t.Len())
	for i := 0; i < t.Len(); i++ {
		h := farm.Hash64(a.Bytes(t.At(i).Key))
		if _, taken := slots[h]; taken {
			slots[h] = collision
			continue
		}
		slots[h] = int32(i)
	}
	return &Index{slots: slots}
}

// MaybeLookup returns the candidate entry position for key.  A false
// result means the caller must search the table itself; a true result is
// only a candidate, and the caller is expected to verify the entry's key
// bytes before trusting it.
func (idx *Index) MaybeLookup(key []byte) (int, bool) {
	i, ok := idx.slots[farm.Hash64(key)]
	if !ok || i == collision {
		return 0, false
	}
	return int(i), true
}
