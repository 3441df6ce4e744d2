// Copyright (C) 2026  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"os"

	"github.com/datawire/dlib/dlog"
	"github.com/datawire/ocibuild/pkg/cliutil"
	"github.com/spf13/cobra"

	"git.lukeshu.com/go/hexlit/lib/hexlit"
)

func init() {
	dialectFlag := hexlit.DialectFlag{Dialect: hexlit.Standard}
	format := formatHex
	cmd := subcommand{
		Command: cobra.Command{
			Use:   "decode [flags] TOKEN...",
			Short: "Decode a hex literal and print the bytes",
			Long: "" +
				"The TOKENs are joined with spaces before decoding, so a literal\n" +
				"may be given either as one quoted argument or as several bare\n" +
				"ones.",
			Args: cliutil.WrapPositionalArgs(cobra.MinimumNArgs(1)),
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			text := hexlit.JoinTokens(args...)
			dat, err := dialectFlag.Dialect.Decode(text)
			if err != nil {
				return err
			}
			dlog.Debugf(ctx, "decoded %d bytes using the %s dialect", len(dat), dialectFlag.Dialect.Name)
			return writeDecoded(os.Stdout, format, dat)
		},
	}
	cmd.Flags().Var(&dialectFlag, "dialect", "which separators and prefix rule to use")
	cmd.Flags().Var(&format, "format", formatUsage())
	subcommands = append(subcommands, cmd)
}
