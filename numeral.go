// Copyright 2026 The cfg Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package cfg

import (
	"errors"
	"strconv"
	"strings"
)

// numeralEnd returns the length of the longest leading base-prefixed
// numeral in s, in the manner of strtol with base 0: `0x` introduces
// hex, a leading `0` introduces octal, anything else is decimal.  Zero
// means s has no leading numeral.  signed permits a leading '-'.
func numeralEnd(s string, signed bool) int {
	i := 0
	if i < len(s) && (s[i] == '+' || (signed && s[i] == '-')) {
		i++
	}
	start := i

	if i+1 < len(s) && s[i] == '0' && (s[i+1] == 'x' || s[i+1] == 'X') {
		j := i + 2
		for j < len(s) && isHexDigit(s[j]) {
			j++
		}
		if j > i+2 {
			return j
		}
		// `0x` with no digits after it: the numeral is just the 0
		return i + 1
	}

	if i < len(s) && s[i] == '0' {
		j := i + 1
		for j < len(s) && s[j] >= '0' && s[j] <= '7' {
			j++
		}
		return j
	}

	j := i
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	if j == start {
		return 0
	}
	return j
}

func isHexDigit(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

// parseInt converts the leading numeral of s, returning def when there
// is none.  Out-of-range numerals clamp, matching strtoll.
func parseInt(s string, def int64) int64 {
	end := numeralEnd(s, true)
	if end == 0 {
		return def
	}
	n, err := strconv.ParseInt(s[:end], 0, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return def
	}
	return n
}

func parseUint(s string, def uint64) uint64 {
	end := numeralEnd(s, false)
	if end == 0 {
		return def
	}
	// strconv.ParseUint rejects the explicit sign strtoull accepts
	num := strings.TrimPrefix(s[:end], "+")
	n, err := strconv.ParseUint(num, 0, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return def
	}
	return n
}
