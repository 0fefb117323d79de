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
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"

	"github.com/lithp-lang/lithp"
	"github.com/lithp-lang/lithp/builtins"
	"github.com/lithp-lang/lithp/eval"
	"github.com/lithp-lang/lithp/reader"
)

const banner = `Lithp version 0.1, press Ctrl+C to exit`

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".lithp_history"
	}
	return filepath.Join(home, ".lithp_history")
}

// runREPL prints a banner, then reads a line, parses, evaluates, and prints
// the result, looping until Ctrl-C or Ctrl-D, per the CLI contract of §6.
func runREPL() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "lithp> ",
		HistoryFile:     historyPath(),
		InterruptPrompt: "^C",
		EOFPrompt:       "^D",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	fmt.Println(banner)

	env := eval.NewEnvironment(nil)
	builtins.BindAll(env)

	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) || err == io.EOF {
				return nil
			}
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		evalLine(env, line)
	}
}

func evalLine(env *eval.Environment, line string) {
	rd := reader.MakeReader(strings.NewReader(line), "<repl>")
	forms, err := rd.ReadAll()
	if err != nil {
		fmt.Println(colorizeError(lithp.MakeError(err.Error()).String()))
		return
	}
	for _, form := range forms {
		if verbose {
			slog.Debug("eval", "input", form.String())
		}
		result, err := eval.Eval(env, form)
		if err != nil {
			fmt.Println(err)
			continue
		}
		if verbose {
			slog.Debug("eval", "output", result.String())
		}
		if ev, ok := result.(lithp.ErrVal); ok {
			fmt.Println(colorizeError(ev.String()))
			continue
		}
		lithp.Println(os.Stdout, result)
	}
}
