// Copyright 2026 The cfg Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package arena provides the append-only byte buffer that holds every
// string parsed out of a config source.  Strings are NUL-terminated and
// referenced by integer offset, so the backing array is free to relocate
// as the arena grows.
package arena

import "bytes"

const initialCap = 16

// Arena is a growable byte buffer with explicit length and capacity.
// Bytes are only ever appended or rolled back from the tail; nothing in
// the used region is removed or overwritten.
type Arena struct {
	buf []byte // len(buf) is the capacity
	n   int    // bytes in use
}

func New() *Arena {
	return &Arena{buf: make([]byte, initialCap)}
}

// Len returns the offset the next appended byte will occupy.
func (a *Arena) Len() uint32 {
	return uint32(a.n)
}

// AppendByte adds one byte at the tail, doubling the capacity when full.
func (a *Arena) AppendByte(c byte) {
	if a.n == len(a.buf) {
		grown := make([]byte, 2*len(a.buf))
		copy(grown, a.buf)
		a.buf = grown
	}
	a.buf[a.n] = c
	a.n++
}

// Terminate ends the current run with a NUL byte.
func (a *Arena) Terminate() {
	a.AppendByte(0)
}

// Truncate rolls the arena back to off, discarding an abandoned run.
// off must have been obtained from Len before the run started.
func (a *Arena) Truncate(off uint32) {
	a.n = int(off)
}

// Bytes returns the NUL-terminated string starting at off, without its
// terminator.  The slice aliases the arena's backing array: it must not
// be retained across a later append.
func (a *Arena) Bytes(off uint32) []byte {
	b := a.buf[off:a.n]
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return b
}

// String returns a copy of the string starting at off.
func (a *Arena) String(off uint32) string {
	return string(a.Bytes(off))
}

// Compare orders the string at off against key, with bytes.Compare
// semantics.
func (a *Arena) Compare(off uint32, key []byte) int {
	return bytes.Compare(a.Bytes(off), key)
}
