// Copyright (C) 2026  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package hexlit_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.lukeshu.com/go/hexlit/lib/hexlit"
)

func TestCountSkipped(t *testing.T) {
	t.Parallel()
	type TestCase struct {
		Dialect hexlit.Dialect
		Input   string
		Skipped int
	}
	testcases := map[string]TestCase{
		"empty":          {hexlit.Standard, "", 0},
		"plain":          {hexlit.Standard, "0102", 0},
		"spaces":         {hexlit.Standard, "01 02 03", 2},
		"trailing":       {hexlit.Standard, "01 02   ", 4},
		"only-seps":      {hexlit.Standard, ` _|-"` + "\n", 6},
		"prefix":         {hexlit.Standard, "0xDE AD", 3},
		"prefix-only":    {hexlit.Standard, "0x", 2},
		"prefix-split":   {hexlit.Standard, "0 x12", 3},
		"second-prefix":  {hexlit.Standard, "12 0x", 1},
		"dangling-digit": {hexlit.Standard, "012  ", 2},
		"invalid-digits": {hexlit.Standard, "zz yy", 1},
		"legacy-prefix":  {hexlit.Legacy, "12 0x 0X34", 6},
		"basic-prefix":   {hexlit.Basic, "0xDE", 0},
		"basic-pipe":     {hexlit.Basic, "01|02 03", 1},
	}
	for tcName, tc := range testcases {
		tc := tc
		t.Run(tcName, func(t *testing.T) {
			t.Parallel()
			skipped := tc.Dialect.CountSkipped(tc.Input)
			assert.Equal(t, tc.Skipped, skipped)
			assert.LessOrEqual(t, skipped, len(tc.Input))
			assert.Equal(t, len(tc.Input)-tc.Skipped, tc.Dialect.CountDigits(tc.Input))
		})
	}
}

func TestParity(t *testing.T) {
	t.Parallel()
	assert.Equal(t, hexlit.Even, hexlit.ParityOf(0))
	assert.Equal(t, hexlit.Odd, hexlit.ParityOf(1))
	assert.Equal(t, hexlit.Even, hexlit.ParityOf(40))
	assert.Equal(t, "odd", hexlit.ParityOf(7).String())

	assert.NoError(t, hexlit.CheckParity(0))
	assert.NoError(t, hexlit.CheckParity(4))

	err := hexlit.CheckParity(5)
	var oddErr *hexlit.OddLengthError
	require.True(t, errors.As(err, &oddErr))
	assert.Equal(t, 5, oddErr.Digits)
}

func TestDecodedLen(t *testing.T) {
	t.Parallel()

	n, err := hexlit.Standard.DecodedLen("0x 00 11")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = hexlit.Standard.DecodedLen("zz")
	require.NoError(t, err, "digit validity is the decoder's business")
	assert.Equal(t, 1, n)

	_, err = hexlit.Standard.DecodedLen("abc")
	assert.Equal(t, &hexlit.OddLengthError{Digits: 3}, err)
}
