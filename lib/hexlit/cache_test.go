// Copyright (C) 2026  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package hexlit_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.lukeshu.com/go/hexlit/lib/hexlit"
)

func TestCache(t *testing.T) {
	t.Parallel()
	cache := &hexlit.Cache{Dialect: hexlit.Standard, Size: 4}

	a, err := cache.Decode("0x0102")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, a)
	assert.Equal(t, 1, cache.Len())

	// Mutating a result must not poison the cache.
	a[0] = 0xff
	b, err := cache.Decode("0x0102")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, b)
	assert.Equal(t, 1, cache.Len())

	_, err = cache.Decode("zz")
	assert.Equal(t, &hexlit.InvalidDigitError{Char: 'z', Offset: 0}, err)
	_, err = cache.Decode("zz")
	assert.Equal(t, &hexlit.InvalidDigitError{Char: 'z', Offset: 0}, err)
	assert.Equal(t, 2, cache.Len())

	empty, err := cache.Decode("")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Len(t, empty, 0)

	cache.Purge()
	assert.Equal(t, 0, cache.Len())
}

func TestCacheConcurrent(t *testing.T) {
	t.Parallel()
	var cache hexlit.Cache
	cache.Dialect = hexlit.Legacy

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				act, err := cache.Decode("12 0x 34")
				assert.NoError(t, err)
				assert.Equal(t, []byte{0x12, 0x34}, act)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, cache.Len())
}
