// Copyright (C) 2022-2026  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Package streamio implements utilities for working with streaming
// I/O.
package streamio

import (
	"bufio"
	"context"
	"io"

	"github.com/datawire/dlib/dlog"

	"git.lukeshu.com/go/hexlit/lib/textui"
)

type RuneScanner interface {
	io.RuneScanner
	io.Closer
}

type runeScanner struct {
	ctx       context.Context //nolint:containedctx // For detecting shutdown from methods
	done      <-chan struct{}
	nRead     int64
	unreadCnt uint64
	reader    *bufio.Reader
	closer    io.Closer
}

// NewRuneScanner returns an io.RuneScanner (and io.Closer) that
// buffers r, similar to bufio.NewReader.  The difference is that it
// takes a Context, and causes reads to fail once the Context is
// canceled.  Closing it closes r, and logs (at debug level) how much
// was read.
func NewRuneScanner(ctx context.Context, r io.ReadCloser) RuneScanner {
	return &runeScanner{
		ctx:    ctx,
		done:   ctx.Done(),
		reader: bufio.NewReaderSize(r, textui.Tunable(64*1024)),
		closer: r,
	}
}

func isClosed(ch <-chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}

// ReadRune implements io.RuneReader.
func (rs *runeScanner) ReadRune() (r rune, size int, err error) {
	// According to the profiler, checking if the rs.ctx.Done()
	// channel is closed is faster than checking if rs.ctx.Err()
	// is non-nil.
	if rs.unreadCnt == 0 && isClosed(rs.done) {
		return 0, 0, rs.ctx.Err()
	}
	r, size, err = rs.reader.ReadRune()
	if rs.unreadCnt > 0 {
		rs.unreadCnt--
	} else {
		rs.nRead += int64(size)
	}
	return
}

// UnreadRune implements io.RuneScanner.
func (rs *runeScanner) UnreadRune() error {
	if err := rs.reader.UnreadRune(); err != nil {
		return err
	}
	rs.unreadCnt++
	return nil
}

// Close implements io.Closer.
func (rs *runeScanner) Close() error {
	dlog.Debugf(rs.ctx, "read %d bytes", rs.nRead)
	return rs.closer.Close()
}
