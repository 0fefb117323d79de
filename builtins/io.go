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

package builtins

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lithp-lang/lithp"
	"github.com/lithp-lang/lithp/eval"
	"github.com/lithp-lang/lithp/reader"
)

// Stdout is where `print` writes; overridable for tests.
var Stdout io.Writer = os.Stdout

// Print implements `print v1 v2 ...`: prints each value separated by
// spaces, ending with a newline.
var Print = &eval.Builtin{
	Doc:      "(print v...) prints its arguments separated by spaces",
	MinArity: 0, MaxArity: -1,
	Fn: func(_ *eval.Environment, args []lithp.Value) (lithp.Value, error) {
		for i, v := range args {
			if i > 0 {
				fmt.Fprint(Stdout, " ")
			}
			lithp.Print(Stdout, v)
		}
		fmt.Fprintln(Stdout)
		return lithp.MakeSExpr(), nil
	},
}

// Error implements `error s`: turns a String into an Error value.
var Error = &eval.Builtin{
	Doc:      "(error s) builds an Error value from a string",
	MinArity: 1, MaxArity: 1,
	Fn: func(_ *eval.Environment, args []lithp.Value) (lithp.Value, error) {
		s, errv := GetStr("error", args, 0)
		if errv != nil {
			return *errv, nil
		}
		return lithp.MakeError(s.Value()), nil
	},
}

// Import implements `import s`: parses the named file and evaluates each
// top-level form against the environment `import` is called from (the
// global environment when called at top level). Errors encountered while
// evaluating a form are printed but do not stop the remaining forms in the
// file, per §4.4/§7.
var Import = &eval.Builtin{
	Doc:      "(import s) loads and evaluates a source file",
	MinArity: 1, MaxArity: 1,
	Fn: func(env *eval.Environment, args []lithp.Value) (lithp.Value, error) {
		s, errv := GetStr("import", args, 0)
		if errv != nil {
			return *errv, nil
		}
		path := s.Value()
		data, err := os.ReadFile(path)
		if err != nil {
			slog.Error("import failed", "path", path, "err", err)
			return lithp.Errorf("could not load library %s: %s", path, err), nil
		}

		forms, err := reader.MakeReader(strings.NewReader(string(data)), path).ReadAll()
		if err != nil {
			return lithp.Errorf("Invalid number or malformed expression in %s: %s", path, err), nil
		}

		for _, form := range forms {
			result, err := eval.Eval(env, form)
			if err != nil {
				slog.Error("evaluation failed", "path", path, "err", err)
				continue
			}
			if ev, ok := result.(lithp.ErrVal); ok {
				fmt.Fprintln(Stdout, ev.String())
			}
		}
		return lithp.MakeSExpr(), nil
	},
}

// BindIO installs the I/O builtins into env.
func BindIO(env *eval.Environment) {
	bind(env, "print", Print)
	bind(env, "error", Error)
	bind(env, "import", Import)
}
