// Copyright (C) 2026  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"os"

	"github.com/datawire/ocibuild/pkg/cliutil"
	"github.com/spf13/cobra"

	"git.lukeshu.com/go/hexlit/lib/hexgen"
)

func init() {
	var outFlag string
	cmd := subcommand{
		Command: cobra.Command{
			Use:   "gen [flags] MANIFEST.json",
			Short: "Generate Go source declaring the literals in a manifest",
			Long: "" +
				"Every literal in the manifest is checked before anything is\n" +
				"written; if any is malformed, all of the problems are reported\n" +
				"and the output file is left alone.  Intended for use as\n" +
				"\n" +
				"    //go:generate hexlit gen -o literals.go literals.json",
			Args: cliutil.WrapPositionalArgs(cobra.ExactArgs(1)),
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if outFlag == "" || outFlag == "-" {
				return hexgen.GenerateTo(ctx, args[0], os.Stdout)
			}
			return hexgen.Generate(ctx, args[0], outFlag)
		},
	}
	cmd.Flags().StringVarP(&outFlag, "output", "o", "", "write the generated source to `file.go` instead of stdout")
	if err := cmd.MarkFlagFilename("output", "go"); err != nil {
		panic(err)
	}
	subcommands = append(subcommands, cmd)
}
