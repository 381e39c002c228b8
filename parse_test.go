// Copyright 2026 The cfg Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package cfg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const absent = "\x00absent"

func TestParse_grammar(t *testing.T) {
	for _, tc := range []struct {
		name string
		src  string
		want map[string]string
	}{
		{
			name: "simple pair",
			src:  "host: 127.0.0.1\n",
			want: map[string]string{"host": "127.0.0.1"},
		},
		{
			name: "no space after separator",
			src:  "port:8080\n",
			want: map[string]string{"port": "8080"},
		},
		{
			name: "whitespace around separator and trailing comment",
			src:  "  a : 1  # note\n",
			want: map[string]string{"a": "1"},
		},
		{
			name: "comment-only line",
			src:  "# a: 1\n",
			want: map[string]string{},
		},
		{
			name: "empty source",
			src:  "",
			want: map[string]string{},
		},
		{
			name: "blank lines",
			src:  "\n\n  \t\n",
			want: map[string]string{},
		},
		{
			name: "bare key produces nothing",
			src:  "standalone\n",
			want: map[string]string{},
		},
		{
			name: "bare key does not corrupt later lines",
			src:  "standalone\nnext: 1\n",
			want: map[string]string{"next": "1"},
		},
		{
			name: "crlf line endings",
			src:  "a: 1\r\nb: 2\r\n",
			want: map[string]string{"a": "1", "b": "2"},
		},
		{
			name: "cr-only line endings",
			src:  "a: 1\rb: 2\r",
			want: map[string]string{"a": "1", "b": "2"},
		},
		{
			name: "no trailing newline",
			src:  "a: 1",
			want: map[string]string{"a": "1"},
		},
		{
			name: "separator at end of input",
			src:  "key:",
			want: map[string]string{"key": ""},
		},
		{
			name: "empty value before comment",
			src:  "key: # note\n",
			want: map[string]string{"key": ""},
		},
		{
			name: "value stops at whitespace",
			src:  "k: a b c\n",
			want: map[string]string{"k": "a"},
		},
		{
			name: "value stops at comment without space",
			src:  "k:v#c\n",
			want: map[string]string{"k": "v"},
		},
		{
			name: "colon allowed inside value",
			src:  "addr: 127.0.0.1:80\n",
			want: map[string]string{"addr": "127.0.0.1:80"},
		},
		{
			name: "vertical tab and form feed are whitespace",
			src:  "\v\fa\v:\f1\n",
			want: map[string]string{"a": "1"},
		},
		{
			name: "later duplicate wins",
			src:  "k: first\nk: second\n",
			want: map[string]string{"k": "second"},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			store, err := Parse([]byte(tc.src))
			require.NoError(t, err)
			require.Equal(t, len(tc.want), store.Len())
			for k, v := range tc.want {
				require.Equal(t, v, store.Get(k, absent), "key %q", k)
			}
		})
	}
}

func TestParse_sortOrderIsByKeyContentOnly(t *testing.T) {
	// the same pairs in two source orders produce the same store
	a, err := Parse([]byte("b: 2\na: 1\nc: 3\n"))
	require.NoError(t, err)
	b, err := Parse([]byte("c: 3\na: 1\nb: 2\n"))
	require.NoError(t, err)

	require.Equal(t, a.Len(), b.Len())
	for _, key := range []string{"a", "b", "c"} {
		require.Equal(t, a.Get(key, absent), b.Get(key, absent))
	}
}
