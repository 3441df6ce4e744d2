// Copyright (C) 2026  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Package hexgen turns a manifest of hex literals into Go source that
// declares each literal as a fixed-size byte array.
//
// All of the decoding happens when the generator runs (typically from
// a `//go:generate` line), so a malformed literal breaks the build
// instead of the program.  As a second line of defense, the generated
// file also asserts, in a way that the compiler evaluates, that each
// literal's digit count is even.
package hexgen

import (
	"bytes"
	"context"
	"fmt"
	"go/format"
	"io"

	"github.com/datawire/dlib/dlog"
	"github.com/dchest/safefile"

	"git.lukeshu.com/go/hexlit/lib/textui"
)

// Header is the first line of every generated file.
const Header = "// Code generated by hexlit gen; DO NOT EDIT."

var bytesPerLine = textui.Tunable(12)

// Render returns gofmt-formatted Go source declaring the given
// literals, in order.
func Render(pkg string, lits []Compiled) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s\n\npackage %s\n", Header, pkg)
	for _, lit := range lits {
		buf.WriteString(textui.Sprintf("\n// %s is %q (%d bytes).\n", lit.Name, lit.Text, len(lit.Bytes)))
		fmt.Fprintf(&buf, "const %s = %d\n\n", lit.digitsConst(), lit.Digits)
		fmt.Fprintf(&buf, "var _ [%s %% 2]struct{} = [0]struct{}{}\n\n", lit.digitsConst())
		fmt.Fprintf(&buf, "var %s = [%s / 2]byte{", lit.Name, lit.digitsConst())
		for i, b := range lit.Bytes {
			if i%bytesPerLine == 0 {
				buf.WriteString("\n\t")
			} else {
				buf.WriteString(" ")
			}
			fmt.Fprintf(&buf, "0x%02x,", b)
		}
		if len(lit.Bytes) > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString("}\n")
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("should not happen: generated invalid Go: %w", err)
	}
	return src, nil
}

func generate(ctx context.Context, manifestFile string) (src []byte, nLits int, err error) {
	manifest, err := ReadManifest(ctx, manifestFile)
	if err != nil {
		return nil, 0, err
	}
	lits, err := manifest.Compile(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", manifestFile, err)
	}
	src, err = Render(manifest.Package, lits)
	if err != nil {
		return nil, 0, err
	}
	return src, len(lits), nil
}

// Generate reads the manifest at manifestFile and writes the
// generated Go source to outFile.  The output file is replaced
// atomically, and only if every literal in the manifest is valid; on
// failure, any existing outFile is left untouched.
func Generate(ctx context.Context, manifestFile, outFile string) error {
	ctx = dlog.WithField(ctx, "hexlit.gen.manifest", manifestFile)
	src, n, err := generate(ctx, manifestFile)
	if err != nil {
		return err
	}
	fh, err := safefile.Create(outFile, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		_ = fh.Close()
	}()
	if _, err := fh.Write(src); err != nil {
		return err
	}
	if err := fh.Commit(); err != nil {
		return err
	}
	dlog.Infof(ctx, "wrote %d literals to %q", n, outFile)
	return nil
}

// GenerateTo is like Generate, but writes to w instead of a file.
// Nothing is written if the manifest has any problems.
func GenerateTo(ctx context.Context, manifestFile string, w io.Writer) error {
	ctx = dlog.WithField(ctx, "hexlit.gen.manifest", manifestFile)
	src, _, err := generate(ctx, manifestFile)
	if err != nil {
		return err
	}
	_, err = w.Write(src)
	return err
}
