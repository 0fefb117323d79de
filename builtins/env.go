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
	"github.com/lithp-lang/lithp"
	"github.com/lithp-lang/lithp/eval"
)

// Env implements the supplemental `env` builtin: a Q-expression of
// {symbol value} pairs bound in the current layer, for REPL introspection.
var Env = &eval.Builtin{
	Doc:      "(env) lists bindings in the current scope",
	MinArity: 0, MaxArity: 0,
	Fn: func(env *eval.Environment, _ []lithp.Value) (lithp.Value, error) {
		names, values := env.Bindings()
		out := make(lithp.QExpr, len(names))
		for i, n := range names {
			out[i] = lithp.MakeQExpr(n, values[i])
		}
		return out, nil
	},
}

// BindEnv installs the introspection builtin into env.
func BindEnv(env *eval.Environment) {
	bind(env, "env", Env)
}
