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
	"fmt"
	"os"

	"github.com/lithp-lang/lithp"
	"github.com/lithp-lang/lithp/builtins"
	"github.com/lithp-lang/lithp/eval"
)

func runFiles(paths []string) error {
	env := eval.NewEnvironment(nil)
	builtins.BindAll(env)

	importFn, _ := env.Get(lithp.Symbol("import"))

	for _, path := range paths {
		result, err := eval.Eval(env, lithp.MakeSExpr(importFn, lithp.MakeStr(path)))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		if ev, ok := result.(lithp.ErrVal); ok {
			fmt.Fprintln(os.Stderr, colorizeError(ev.String()))
		}
	}
	return nil
}
