// Copyright (C) 2026  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"io"
	"os"

	"github.com/datawire/ocibuild/pkg/cliutil"
	"github.com/spf13/cobra"

	"git.lukeshu.com/go/hexlit/lib/hexlit"
	"git.lukeshu.com/go/hexlit/lib/textui"
)

func init() {
	dialectFlag := hexlit.DialectFlag{Dialect: hexlit.Standard}
	cmd := subcommand{
		Command: cobra.Command{
			Use:   "check [flags] TOKEN...",
			Short: "Check that a hex literal is well-formed, and report its size",
			Args:  cliutil.WrapPositionalArgs(cobra.MinimumNArgs(1)),
		},
		RunE: func(_ *cobra.Command, args []string) error {
			return checkLiteral(os.Stdout, dialectFlag.Dialect, hexlit.JoinTokens(args...))
		},
	}
	cmd.Flags().Var(&dialectFlag, "dialect", "which separators and prefix rule to use")
	subcommands = append(subcommands, cmd)
}

func checkLiteral(w io.Writer, d hexlit.Dialect, text string) error {
	skipped := d.CountSkipped(text)
	digits := len(text) - skipped
	textui.Fprintf(w, "dialect: %s\n", d.Name)
	textui.Fprintf(w, "length:  %d\n", len(text))
	textui.Fprintf(w, "skipped: %d\n", skipped)
	textui.Fprintf(w, "digits:  %d (%v)\n", digits, hexlit.ParityOf(digits))
	if err := hexlit.CheckParity(digits); err != nil {
		return err
	}
	dat, err := d.Decode(text)
	if err != nil {
		return err
	}
	textui.Fprintf(w, "bytes:   %d\n", len(dat))
	return nil
}
