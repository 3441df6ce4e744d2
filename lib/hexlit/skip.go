// Copyright (C) 2026  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package hexlit

// CountSkipped returns the number of bytes of text that are not
// significant digits: every separator, plus the two bytes of each
// recognized prefix marker.  It never fails; bytes that are not valid
// digits are counted as digits here and rejected by the decoder.
func (d Dialect) CountSkipped(text string) int {
	skipped := 0
	pairs := 0
	for i := 0; i < len(text); {
		if d.isSeparator(text[i]) {
			skipped++
			i++
			continue
		}
		// text[i] starts a pair.
		lo := d.skipSeparators(text, i+1)
		skipped += lo - (i + 1)
		if lo == len(text) {
			break
		}
		if _, ok := d.prefixAt(text, i, pairs); ok {
			skipped += 2
		}
		pairs++
		i = lo + 1
	}
	return skipped
}

// CountDigits returns the number of significant digits in text.
func (d Dialect) CountDigits(text string) int {
	return len(text) - d.CountSkipped(text)
}

// DecodedLen returns the exact number of bytes that text decodes to,
// or an *OddLengthError.  It does not check that the digits are
// valid.
func (d Dialect) DecodedLen(text string) (int, error) {
	digits := d.CountDigits(text)
	if err := CheckParity(digits); err != nil {
		return 0, err
	}
	return digits / 2, nil
}
