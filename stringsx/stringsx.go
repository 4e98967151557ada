// Copyright (c) 2025 Terse-Go and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package stringsx provides string helpers which complement the
// standard [strings] package.
package stringsx

import "strings"

// Reverse returns a new string containing the characters of s in
// reverse order.
//
// Characters are reversed at rune boundaries rather than byte boundaries
// so multi-byte UTF-8 sequences survive intact. No trimming or any other
// transformation is applied; whitespace is preserved and reversed along
// with everything else.
//
// Bytes which do not form valid UTF-8 decode to [unicode/utf8.RuneError] and are
// carried through as such, so Reverse is total over all string input but
// only round-trips valid UTF-8.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// IsBlank reports whether s is empty or consists entirely of whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// DefaultIfBlank returns fallback when s is blank, per [IsBlank], and s
// otherwise.
func DefaultIfBlank(s, fallback string) string {
	if IsBlank(s) {
		return fallback
	}
	return s
}
