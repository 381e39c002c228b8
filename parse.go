// Copyright 2026 The cfg Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package cfg

import (
	"strings"

	"github.com/emux/cfg/internal/arena"
	"github.com/emux/cfg/internal/entrytable"
)

// blank characters inside a line; CR and LF are line terminators, not ws
const ws = " \t\v\f"

// parser walks the raw config bytes with one character of lookahead,
// appending accepted runs to the arena and completed pairs to the entry
// table.  Its only state is the cursor position.
type parser struct {
	src     []byte
	pos     int
	arena   *arena.Arena
	entries *entrytable.Table
}

func (p *parser) eof() bool {
	return p.pos >= len(p.src)
}

// match reports whether the next character is one of set, without
// consuming it.
func (p *parser) match(set string) bool {
	return !p.eof() && strings.IndexByte(set, p.src[p.pos]) >= 0
}

func (p *parser) advance() byte {
	c := p.src[p.pos]
	p.pos++
	return c
}

func (p *parser) skip(set string) {
	for p.match(set) {
		p.pos++
	}
}

func (p *parser) run() {
	for !p.eof() {
		p.line()
	}
}

// line consumes one physical line, recording at most one entry.
func (p *parser) line() {
	p.skip(ws)

	if !p.eof() && !p.match("#\r\n") {
		key := p.arena.Len()
		for !p.eof() && !p.match(ws+":#\r\n") {
			p.arena.AppendByte(p.advance())
		}
		p.arena.Terminate()

		p.skip(ws)

		if p.match(":") {
			p.advance()
			p.skip(ws)

			// the value may be empty: `key: # note` stores ""
			val := p.arena.Len()
			for !p.eof() && !p.match(ws+"#\r\n") {
				p.arena.AppendByte(p.advance())
			}
			p.arena.Terminate()

			p.entries.Insert(p.arena, entrytable.Entry{Key: key, Val: val})
		} else {
			// bare key with no separator: roll its bytes back out
			p.arena.Truncate(key)
		}
	}

	// discard the rest of the line, trailing comment included
	for !p.eof() && !p.match("\r\n") {
		p.pos++
	}
	if !p.eof() {
		p.pos++
	}
}
