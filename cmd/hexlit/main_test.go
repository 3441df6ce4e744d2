// Copyright (C) 2026  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.lukeshu.com/go/hexlit/lib/hexlit"
)

func TestWriteDecoded(t *testing.T) {
	t.Parallel()
	dat := []byte{0xde, 0xad, 0xbe, 0xef}
	testcases := map[outputFormat]string{
		formatHex:  "deadbeef\n",
		formatGo:   "[4]byte{0xde, 0xad, 0xbe, 0xef}\n",
		formatJSON: "\"deadbeef\"\n",
		formatRaw:  "\xde\xad\xbe\xef",
	}
	for format, exp := range testcases {
		format, exp := format, exp
		t.Run(string(format), func(t *testing.T) {
			t.Parallel()
			var out bytes.Buffer
			require.NoError(t, writeDecoded(&out, format, dat))
			assert.Equal(t, exp, out.String())
		})
	}
	t.Run("spew", func(t *testing.T) {
		t.Parallel()
		var out bytes.Buffer
		require.NoError(t, writeDecoded(&out, formatSpew, dat))
		assert.Contains(t, out.String(), "([]uint8) (len=4 cap=4)")
		assert.Contains(t, out.String(), "de ad be ef")
	})
	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		var out bytes.Buffer
		require.NoError(t, writeDecoded(&out, formatGo, []byte{}))
		assert.Equal(t, "[0]byte{}\n", out.String())
	})
	t.Run("bogus", func(t *testing.T) {
		t.Parallel()
		var out bytes.Buffer
		assert.EqualError(t, writeDecoded(&out, outputFormat("yaml"), dat), `invalid output format: "yaml"`)
	})
}

func TestOutputFormatFlag(t *testing.T) {
	t.Parallel()
	format := formatHex
	assert.Equal(t, "hex", format.String())
	assert.NoError(t, format.Set("SPEW"))
	assert.Equal(t, formatSpew, format)
	assert.EqualError(t, format.Set("yaml"), `invalid output format: "yaml"`)
	assert.Equal(t, formatSpew, format)
	assert.Contains(t, formatUsage(), "hex|go|json|spew|raw")
}

func TestCheckLiteral(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.NoError(t, checkLiteral(&out, hexlit.Standard, "0xDE AD"))
	assert.Equal(t, ""+
		"dialect: standard\n"+
		"length:  7\n"+
		"skipped: 3\n"+
		"digits:  4 (even)\n"+
		"bytes:   2\n",
		out.String())

	out.Reset()
	var oddErr *hexlit.OddLengthError
	assert.ErrorAs(t, checkLiteral(&out, hexlit.Standard, "abc"), &oddErr)
	assert.Contains(t, out.String(), "digits:  3 (odd)\n")
	assert.NotContains(t, out.String(), "bytes:")

	out.Reset()
	var digitErr *hexlit.InvalidDigitError
	assert.ErrorAs(t, checkLiteral(&out, hexlit.Standard, "0g"), &digitErr)
}

func TestSubcommandsRegistered(t *testing.T) {
	t.Parallel()
	names := make([]string, 0, len(subcommands))
	for _, cmd := range subcommands {
		names = append(names, cmd.Name())
		assert.NotNil(t, cmd.RunE, cmd.Name())
	}
	assert.ElementsMatch(t, []string{"check", "decode", "gen"}, names)
}
