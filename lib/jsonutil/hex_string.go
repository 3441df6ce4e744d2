// Copyright (C) 2023, 2026  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Package jsonutil provides utilities for implementing the interfaces
// consumed by the "git.lukeshu.com/go/lowmemjson" package.
package jsonutil

import (
	"fmt"
	"io"
	"strings"

	"git.lukeshu.com/go/lowmemjson"

	"git.lukeshu.com/go/hexlit/lib/fmtutil"
	"git.lukeshu.com/go/hexlit/lib/hexlit"
)

// EncodeHexString writes str to w as a JSON string of lower-case hex
// digits.
func EncodeHexString[T ~[]byte | ~string](w io.Writer, str T) error {
	buf := make([]byte, 0, len(str)*2+2)
	buf = append(buf, '"')
	buf = hexlit.EncodeConfig{}.Append(buf, []byte(str))
	buf = append(buf, '"')
	_, err := w.Write(buf)
	return err
}

// HexLiteral is a byte string that is represented in JSON as a hex
// literal.  It is always encoded as plain lower-case digits, but any
// literal that the hexlit.Standard dialect accepts ("0xDEAD BEEF",
// "de-ad-be-ef", ...) may be decoded.
type HexLiteral []byte

var (
	_ lowmemjson.Encodable = HexLiteral(nil)
	_ lowmemjson.Decodable = (*HexLiteral)(nil)
	_ fmt.Stringer         = HexLiteral(nil)
	_ fmt.Formatter        = HexLiteral(nil)
)

// EncodeJSON implements lowmemjson.Encodable.
func (o HexLiteral) EncodeJSON(w io.Writer) error {
	return EncodeHexString(w, o)
}

// DecodeJSON implements lowmemjson.Decodable.
func (o *HexLiteral) DecodeJSON(r io.RuneScanner) error {
	var text strings.Builder
	if err := lowmemjson.DecodeString(r, &text); err != nil {
		return err
	}
	dat, err := hexlit.Decode(text.String())
	if err != nil {
		return err
	}
	*o = dat
	return nil
}

// String implements fmt.Stringer.
func (o HexLiteral) String() string {
	return hexlit.Encode(o)
}

// Format implements fmt.Formatter.
func (o HexLiteral) Format(f fmt.State, verb rune) {
	fmtutil.FormatByteArrayStringer(o, o, f, verb)
}
