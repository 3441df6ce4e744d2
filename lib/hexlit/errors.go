// Copyright (C) 2026  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package hexlit

import (
	"fmt"

	"git.lukeshu.com/go/hexlit/lib/textui"
)

// OddLengthError is returned when a literal has an odd number of
// significant digits.  It is detected before any decoding happens.
type OddLengthError struct {
	Digits int
}

func (e *OddLengthError) Error() string {
	return fmt.Sprintf("hexlit: odd number of hex digits: %v", textui.Humanized(e.Digits))
}

// InvalidDigitError is returned when a byte that is neither a
// separator, a recognized prefix, nor a hex digit is found where a
// digit is expected.
type InvalidDigitError struct {
	Char   byte
	Offset int
}

func (e *InvalidDigitError) Error() string {
	return fmt.Sprintf("hexlit: invalid hex digit %q at offset %d", string([]byte{e.Char}), e.Offset)
}
