// SPDX-License-Identifier: MIT
// Package: rexpr/codegen
//
// escape.go — lexical escaping for literal text and character-class bodies.

package codegen

import "strings"

// textMeta is the reserved metacharacter set escaped inside literals.
const textMeta = `.^$*+?()[]{}|\`

// escapeText returns v with every reserved metacharacter preceded by a
// backslash. Complexity: O(len(v)).
func escapeText(v string) string {
	var sb strings.Builder
	sb.Grow(len(v))
	for _, r := range v {
		if strings.ContainsRune(textMeta, r) {
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}

	return sb.String()
}

// escapeCharSet returns the class body with ], \ and ^ always escaped,
// and each hyphen escaped unless it forms a valid ascending range between
// two same-class alphanumeric neighbors. A leading, trailing or otherwise
// non-range hyphen would silently change meaning inside brackets, so it
// is always escaped. Complexity: O(len(chars)).
func escapeCharSet(chars string) string {
	rs := []rune(chars)

	var sb strings.Builder
	sb.Grow(len(chars))
	for i, r := range rs {
		switch r {
		case ']', '\\', '^':
			sb.WriteByte('\\')
			sb.WriteRune(r)
		case '-':
			if i > 0 && i < len(rs)-1 && ascendingRange(rs[i-1], rs[i+1]) {
				sb.WriteRune(r)
			} else {
				sb.WriteString(`\-`)
			}
		default:
			sb.WriteRune(r)
		}
	}

	return sb.String()
}

// ascendingRange reports whether lo-hi is a well-formed class range:
// both endpoints in the same alphanumeric group (a-z, A-Z or 0-9) with
// lo strictly below hi.
func ascendingRange(lo, hi rune) bool {
	switch {
	case lo >= 'a' && lo <= 'z':
		return hi >= 'a' && hi <= 'z' && lo < hi
	case lo >= 'A' && lo <= 'Z':
		return hi >= 'A' && hi <= 'Z' && lo < hi
	case lo >= '0' && lo <= '9':
		return hi >= '0' && hi <= '9' && lo < hi
	default:
		return false
	}
}
