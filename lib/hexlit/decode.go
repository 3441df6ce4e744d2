// Copyright (C) 2026  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package hexlit

import (
	"fmt"
	"io"
)

//nolint:gomnd // Hex conversion.
func digitValue(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	default:
		return 0, false
	}
}

func digitAt(text string, i int) (byte, error) {
	v, ok := digitValue(text[i])
	if !ok {
		return 0, &InvalidDigitError{Char: text[i], Offset: i}
	}
	return v, nil
}

// Decode decodes text into a newly allocated byte slice of exactly
// DecodedLen(text) bytes.  On error, no slice is returned.
func (d Dialect) Decode(text string) ([]byte, error) {
	n, err := d.DecodedLen(text)
	if err != nil {
		return nil, err
	}
	dst := make([]byte, n)
	if err := d.fill(dst, text); err != nil {
		return nil, err
	}
	return dst, nil
}

// DecodeInto decodes text into the front of dst, returning the
// number of bytes written.  If dst is too short, it returns an error
// wrapping io.ErrShortBuffer without writing anything.  If text
// contains an invalid digit, the bytes of dst that were written to are
// zeroed again before returning.
func (d Dialect) DecodeInto(dst []byte, text string) (int, error) {
	n, err := d.DecodedLen(text)
	if err != nil {
		return 0, err
	}
	if len(dst) < n {
		return 0, fmt.Errorf("hexlit: need %d bytes, have %d: %w", n, len(dst), io.ErrShortBuffer)
	}
	if err := d.fill(dst[:n], text); err != nil {
		for i := range dst[:n] {
			dst[i] = 0
		}
		return 0, err
	}
	return n, nil
}

// MustDecode is like Decode, but panics if text is not a valid
// literal.  It is meant for initializing package-level variables, so
// that a bad literal stops the program before the value can be used.
func (d Dialect) MustDecode(text string) []byte {
	dst, err := d.Decode(text)
	if err != nil {
		panic(fmt.Errorf("hexlit: MustDecode(%q): %w", text, err))
	}
	return dst
}

// fill is the second pass: dst must already be exactly
// DecodedLen(text) bytes long.
func (d Dialect) fill(dst []byte, text string) error {
	w := 0
	pairs := 0
	for r := 0; r < len(text); {
		if d.isSeparator(text[r]) {
			r++
			continue
		}
		lo, ok := d.prefixAt(text, r, pairs)
		if !ok {
			lo = d.skipSeparators(text, r+1)
			if lo == len(text) || w == len(dst) {
				panic(fmt.Errorf("should not happen: digit at offset %d has no place in a %d-byte result", r, len(dst)))
			}
			hi, err := digitAt(text, r)
			if err != nil {
				return err
			}
			low, err := digitAt(text, lo)
			if err != nil {
				return err
			}
			dst[w] = hi<<4 | low
			w++
		}
		pairs++
		r = lo + 1
	}
	if w != len(dst) {
		panic(fmt.Errorf("should not happen: filled %d of %d bytes", w, len(dst)))
	}
	return nil
}
