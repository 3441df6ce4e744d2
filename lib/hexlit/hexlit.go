// Copyright (C) 2026  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Package hexlit decodes hexadecimal literals, such as
//
//	"0xDEADBEEF"
//	"e5 e6 90 92"
//	"0A_0B|0C-0d"
//
// into byte slices of an exactly pre-computed length.
//
// Decoding is done in two passes.  The first pass counts the bytes
// that are not significant digits (separators, and the "0x" prefix
// marker) and thereby sizes the result; a literal with an odd number
// of digits is rejected before anything is allocated.  The second
// pass pairs up the digits and fills the result by index.
//
// Which bytes are separators, and where a prefix marker is
// recognized, is controlled by a Dialect.  The package-level
// functions use the Standard dialect.
//
// For literals that are known when the program is built, see the
// "hexlit gen" command, which does this work at go-generate time and
// emits fixed-size arrays.
package hexlit

import (
	"strings"
)

// Decode decodes text using the Standard dialect.
func Decode(text string) ([]byte, error) {
	return Standard.Decode(text)
}

// MustDecode decodes text using the Standard dialect, and panics if
// text is not a valid literal.
func MustDecode(text string) []byte {
	return Standard.MustDecode(text)
}

// DecodedLen returns the number of bytes that text decodes to using
// the Standard dialect.
func DecodedLen(text string) (int, error) {
	return Standard.DecodedLen(text)
}

// JoinTokens renders a sequence of bare tokens, such as
// command-line arguments, into a single literal.  Tokens are joined
// with a space, so `JoinTokens("0a", "0B")` decodes the same as
// "0a 0B".
func JoinTokens(tokens ...string) string {
	return strings.Join(tokens, " ")
}

// DecodeTokens decodes a sequence of bare tokens using the Standard
// dialect.
func DecodeTokens(tokens ...string) ([]byte, error) {
	return Standard.Decode(JoinTokens(tokens...))
}
