// Copyright 2026 The cfg Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package cfg reads line-oriented key/value configuration files into an
// immutable in-memory store with typed lookups.
//
// The format is one statement per line: `key: value`.  A `#` starts a
// comment running to end of line, blank lines are ignored, and a bare key
// with no `:` separator is discarded.  CR and LF both terminate lines.
// Values end at the first whitespace or comment, so trailing annotations
// never leak into lookups.
//
// A Store is built once by Load (or Parse) and is read-only afterward,
// which makes concurrent lookups safe by construction.
package cfg

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/emux/cfg/internal/arena"
	"github.com/emux/cfg/internal/entrytable"
	"github.com/emux/cfg/internal/index"
	"github.com/emux/cfg/internal/mmap"
	"github.com/emux/cfg/internal/unsafestring"
)

// Option configures Load and Parse.
type Option func(*loadOptions)

type loadOptions struct {
	logger *slog.Logger
}

// WithLogger sets an optional logger used to report load progress.  If
// not provided, no logging output will be produced.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *loadOptions) {
		opts.logger = logger
	}
}

// Store is an immutable key/value configuration table.  Lookups never
// mutate it, so any number of goroutines may read concurrently; Close
// must not race with readers.
type Store struct {
	arena   *arena.Arena
	entries *entrytable.Table
	idx     *index.Index
}

// Load opens and fully parses the configuration file at path.  The file
// is a scoped resource: it is released before Load returns, on success
// and failure alike.  Open failures wrap the underlying *os.PathError,
// so the system error code stays reachable through errors.As.
func Load(path string, opts ...Option) (*Store, error) {
	data, release, err := mmap.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mmap.ReadFile(%s): %w", path, err)
	}
	defer func() {
		_ = release()
	}()
	return Parse(data, opts...)
}

// Parse builds a Store from an in-memory configuration source.  Every
// accepted string is copied into the store's own arena, so data may be
// reused or unmapped as soon as Parse returns.
func Parse(data []byte, opts ...Option) (*Store, error) {
	var options loadOptions
	options.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	for _, opt := range opts {
		opt(&options)
	}

	s := &Store{
		arena:   arena.New(),
		entries: entrytable.New(),
	}
	p := parser{src: data, arena: s.arena, entries: s.entries}
	p.run()
	s.idx = index.Build(s.arena, s.entries)

	options.logger.Debug("parsed config store",
		"entries", s.entries.Len(),
		"arenaBytes", s.arena.Len())
	return s, nil
}

// Len returns the number of entries in the store.
func (s *Store) Len() int {
	if s.entries == nil {
		return 0
	}
	return s.entries.Len()
}

// lookup resolves key to its value offset.  The hashed index gives the
// common case in one probe; its candidate is verified against the arena
// before being trusted, and anything else goes to the sorted table.
func (s *Store) lookup(key string) (uint32, bool) {
	if s.entries == nil || s.entries.Len() == 0 {
		return 0, false
	}
	k := unsafestring.ToBytes(key)
	if i, ok := s.idx.MaybeLookup(k); ok {
		e := s.entries.At(i)
		if s.arena.Compare(e.Key, k) == 0 {
			return e.Val, true
		}
	}
	i, ok := s.entries.Search(s.arena, k)
	if !ok {
		return 0, false
	}
	return s.entries.At(i).Val, true
}

// Has reports whether key is present in the store.
func (s *Store) Has(key string) bool {
	_, ok := s.lookup(key)
	return ok
}

// Get returns the value for key, or def when key is absent.
func (s *Store) Get(key, def string) string {
	off, ok := s.lookup(key)
	if !ok {
		return def
	}
	return s.arena.String(off)
}

// GetInt returns the value for key converted to a signed integer, or def
// when key is absent or its value has no leading numeral.  Conversion
// follows strtoll with base 0: the longest valid leading numeral is
// taken, `0x` means hex and a leading `0` means octal, and out-of-range
// numerals clamp.
func (s *Store) GetInt(key string, def int64) int64 {
	off, ok := s.lookup(key)
	if !ok {
		return def
	}
	return parseInt(s.arena.String(off), def)
}

// GetUint is GetInt for unsigned integers.  A value with a leading `-`
// yields def.
func (s *Store) GetUint(key string, def uint64) uint64 {
	off, ok := s.lookup(key)
	if !ok {
		return def
	}
	return parseUint(s.arena.String(off), def)
}

// Close releases the store's entry table and text arena.  Call it once;
// the Store must not be used by other goroutines afterward.  Accessors
// on a closed Store resolve to their defaults.
func (s *Store) Close() error {
	s.arena = nil
	s.entries = nil
	s.idx = nil
	return nil
}
