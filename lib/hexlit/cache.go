// Copyright (C) 2022, 2026  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package hexlit

import (
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/exp/slices"

	"git.lukeshu.com/go/hexlit/lib/textui"
)

type cacheEntry struct {
	val []byte
	err error
}

// A Cache remembers the results of decoding literals, so that a
// literal that is decoded over and over (in a loop, or by many
// goroutines) is only actually decoded once.  Failures are remembered
// too.
//
// A Cache is safe for concurrent use.  The zero Cache is usable, but
// decodes with the zero Dialect, which has no separators; set Dialect
// before first use.
type Cache struct {
	Dialect Dialect
	// Size is the number of literals to remember.  If it is not
	// positive, a default is used.
	Size int

	initOnce sync.Once
	inner    *lru.ARCCache
}

func (c *Cache) init() {
	c.initOnce.Do(func() {
		size := c.Size
		if size <= 0 {
			size = textui.Tunable(128)
		}
		var err error
		c.inner, err = lru.NewARC(size)
		if err != nil {
			panic(fmt.Errorf("should not happen: %w", err))
		}
	})
}

// Decode is like Dialect.Decode, but consults the cache first.  The
// returned slice belongs to the caller.
func (c *Cache) Decode(text string) ([]byte, error) {
	c.init()
	var ent cacheEntry
	if _ent, ok := c.inner.Get(text); ok {
		//nolint:forcetypeassert // Typed wrapper around untyped lib.
		ent = _ent.(cacheEntry)
	} else {
		val, err := c.Dialect.Decode(text)
		ent = cacheEntry{val: val, err: err}
		c.inner.Add(text, ent)
	}
	if ent.err != nil {
		return nil, ent.err
	}
	return slices.Clone(ent.val), nil
}

// Len returns the number of literals currently remembered.
func (c *Cache) Len() int {
	c.init()
	return c.inner.Len()
}

// Purge forgets everything.
func (c *Cache) Purge() {
	c.init()
	c.inner.Purge()
}
