// Copyright 2026 The cfg Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package entrytable holds the key-sorted table of parsed config entries.
package entrytable

import "github.com/emux/cfg/internal/arena"

const initialCap = 4

// Entry references one key/value pair by offset into the text arena.
type Entry struct {
	Key uint32
	Val uint32
}

// Table is a growable array of entries kept sorted by the dereferenced
// key bytes at all times, the invariant Search depends on.
type Table struct {
	entries []Entry // len(entries) is the capacity
	n       int
}

func New() *Table {
	return &Table{entries: make([]Entry, initialCap)}
}

// Len returns the number of valid entries.
func (t *Table) Len() int {
	return t.n
}

// At returns the entry at position i in key order.
func (t *Table) At(i int) Entry {
	return t.entries[i]
}

// Insert places e so the table stays sorted by key.  The insertion point
// is found by a front scan, which is fine for the tens of entries a
// config file holds.  An equal key overwrites the existing entry's value
// offset in place: last write wins, and the table stays duplicate-free.
func (t *Table) Insert(a *arena.Arena, e Entry) {
	key := a.Bytes(e.Key)
	i := 0
	for i < t.n {
		cmp := a.Compare(t.entries[i].Key, key)
		if cmp == 0 {
			t.entries[i].Val = e.Val
			return
		}
		if cmp > 0 {
			break
		}
		i++
	}

	if t.n == len(t.entries) {
		grown := make([]Entry, 2*len(t.entries))
		copy(grown, t.entries[:t.n])
		t.entries = grown
	}
	copy(t.entries[i+1:t.n+1], t.entries[i:t.n])
	t.entries[i] = e
	t.n++
}

// Search binary-searches the table for key, returning the matching
// entry's position.
func (t *Table) Search(a *arena.Arena, key []byte) (int, bool) {
	lo, hi := 0, t.n-1
	for lo <= hi {
		i := (lo + hi) / 2
		cmp := a.Compare(t.entries[i].Key, key)
		switch {
		case cmp == 0:
			return i, true
		case cmp > 0:
			hi = i - 1
		default:
			lo = i + 1
		}
	}
	return 0, false
}
