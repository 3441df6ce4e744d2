// Copyright (C) 2026  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package hexlit_test

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.lukeshu.com/go/hexlit/lib/hexlit"
)

func TestByteSet(t *testing.T) {
	t.Parallel()
	set := hexlit.NewByteSet(' ', 0x00, 0xff, 'A')
	assert.True(t, set.Has(' '))
	assert.True(t, set.Has(0x00))
	assert.True(t, set.Has(0xff))
	assert.True(t, set.Has('A'))
	assert.False(t, set.Has('a'))
	assert.False(t, set.Has(0xfe))
	assert.Equal(t, []byte{0x00, ' ', 'A', 0xff}, set.Members())

	assert.Empty(t, hexlit.ByteSet{}.Members())
	assert.Equal(t, []byte{'\n', ' ', '"', '-', '_', '|'}, hexlit.Standard.Separators.Members())
	assert.Equal(t, []byte{' ', '"', '_'}, hexlit.Basic.Separators.Members())
	assert.Equal(t, hexlit.Standard.Separators, hexlit.Legacy.Separators)
}

func TestLookupDialect(t *testing.T) {
	t.Parallel()
	for _, d := range hexlit.Dialects() {
		act, err := hexlit.LookupDialect(d.Name)
		require.NoError(t, err)
		assert.Equal(t, d, act)
	}
	act, err := hexlit.LookupDialect("STANDARD")
	require.NoError(t, err)
	assert.Equal(t, hexlit.Standard, act)

	_, err = hexlit.LookupDialect("rust")
	assert.EqualError(t, err, `hexlit: unknown dialect: "rust"`)
}

func TestDialectFlag(t *testing.T) {
	t.Parallel()
	flag := hexlit.DialectFlag{Dialect: hexlit.Standard}
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Var(&flag, "dialect", "")

	assert.Equal(t, "standard", flags.Lookup("dialect").Value.String())
	require.NoError(t, flags.Parse([]string{"--dialect=legacy"}))
	assert.Equal(t, hexlit.Legacy, flag.Dialect)
	assert.Error(t, flags.Parse([]string{"--dialect=bogus"}))
	assert.Equal(t, hexlit.Legacy, flag.Dialect)
}

func TestPrefixRuleString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "none", hexlit.PrefixNone.String())
	assert.Equal(t, "leading", hexlit.PrefixLeading.String())
	assert.Equal(t, "any-boundary", hexlit.PrefixAnyBoundary.String())
	assert.Equal(t, "PrefixRule(9)", hexlit.PrefixRule(9).String())
}
