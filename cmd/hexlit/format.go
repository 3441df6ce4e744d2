// Copyright (C) 2026  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"git.lukeshu.com/go/lowmemjson"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/pflag"

	"git.lukeshu.com/go/hexlit/lib/hexlit"
	"git.lukeshu.com/go/hexlit/lib/jsonutil"
)

type outputFormat string

const (
	formatHex  outputFormat = "hex"
	formatGo   outputFormat = "go"
	formatJSON outputFormat = "json"
	formatSpew outputFormat = "spew"
	formatRaw  outputFormat = "raw"
)

var outputFormats = []outputFormat{
	formatHex,
	formatGo,
	formatJSON,
	formatSpew,
	formatRaw,
}

var _ pflag.Value = (*outputFormat)(nil)

// Type implements pflag.Value.
func (*outputFormat) Type() string { return "format" }

// String implements pflag.Value.
func (f *outputFormat) String() string { return string(*f) }

// Set implements pflag.Value.
func (f *outputFormat) Set(str string) error {
	for _, known := range outputFormats {
		if strings.EqualFold(str, string(known)) {
			*f = known
			return nil
		}
	}
	return fmt.Errorf("invalid output format: %q", str)
}

func formatUsage() string {
	names := make([]string, len(outputFormats))
	for i, f := range outputFormats {
		names[i] = string(f)
	}
	return "how to print the decoded bytes; one of " + strings.Join(names, "|")
}

func writeDecoded(w io.Writer, format outputFormat, dat []byte) (err error) {
	buf := bufio.NewWriter(w)
	defer func() {
		if _err := buf.Flush(); err == nil && _err != nil {
			err = _err
		}
	}()
	switch format {
	case formatHex:
		_, err = fmt.Fprintln(buf, hexlit.Encode(dat))
	case formatGo:
		_, err = fmt.Fprintf(buf, "[%d]byte{", len(dat))
		for i, b := range dat {
			if i > 0 {
				_, _ = buf.WriteString(", ")
			}
			_, _ = fmt.Fprintf(buf, "0x%02x", b)
		}
		if err == nil {
			_, err = buf.WriteString("}\n")
		}
	case formatJSON:
		if err = lowmemjson.NewEncoder(buf).Encode(jsonutil.HexLiteral(dat)); err == nil {
			err = buf.WriteByte('\n')
		}
	case formatSpew:
		cfg := spew.NewDefaultConfig()
		cfg.DisablePointerAddresses = true
		cfg.Fdump(buf, dat)
	case formatRaw:
		_, err = buf.Write(dat)
	default:
		err = fmt.Errorf("invalid output format: %q", string(format))
	}
	return err
}
