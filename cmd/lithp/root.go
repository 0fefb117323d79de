//-----------------------------------------------------------------------------
// Copyright (c) 2024-present the Lithp contributors
//
// This file is part of lithp.
//
// lithp is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and
// obligations under this license.
//
// SPDX-License-Identifier: EUPL-1.2
//-----------------------------------------------------------------------------

package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool
var noColor bool

// rootCmd implements the CLI contract of §6: no arguments starts the REPL;
// one or more arguments are each evaluated via `import`.
var rootCmd = &cobra.Command{
	Use:   "lithp [file...]",
	Short: "Lithp, a small Lisp-family interpreter",
	Long: `Lithp reads S-expression source text, evaluates it against a global
environment, and prints each top-level result.

With no arguments it starts an interactive REPL. With one or more file
arguments, each is loaded and evaluated via the 'import' builtin, in order.`,
	RunE: runRoot,
}

func init() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log each top-level REPL form's input and output")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable ANSI colors in error output")
}

func runRoot(_ *cobra.Command, args []string) error {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if len(args) == 0 {
		return runREPL()
	}
	return runFiles(args)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
