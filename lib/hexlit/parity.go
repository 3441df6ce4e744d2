// Copyright (C) 2026  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package hexlit

// Parity is whether a digit count is even or odd.
type Parity uint8

const (
	Even = Parity(iota)
	Odd
)

// String implements fmt.Stringer.
func (p Parity) String() string {
	if p == Even {
		return "even"
	}
	return "odd"
}

// ParityOf returns the parity of n.
func ParityOf(n int) Parity {
	return Parity(n & 1)
}

// CheckParity returns an *OddLengthError if digits is odd.  Only an
// even count may be handed to the decoder.
func CheckParity(digits int) error {
	if ParityOf(digits) == Odd {
		return &OddLengthError{Digits: digits}
	}
	return nil
}
