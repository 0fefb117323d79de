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

// If implements `if n {then} {else}`.
var If = &eval.Builtin{
	Doc:      "(if n {then} {else}) evaluates one branch",
	MinArity: 3, MaxArity: 3,
	Fn: func(env *eval.Environment, args []lithp.Value) (lithp.Value, error) {
		n, errv := GetNumber("if", args, 0)
		if errv != nil {
			return *errv, nil
		}
		branch, errv := GetQExpr("if", args, 1)
		if errv != nil {
			return *errv, nil
		}
		elseBranch, errv := GetQExpr("if", args, 2)
		if errv != nil {
			return *errv, nil
		}
		if n == 0 {
			branch = elseBranch
		}
		return eval.Eval(env, lithp.MakeSExpr(branch...))
	},
}

// BindCond installs the conditional builtin into env.
func BindCond(env *eval.Environment) {
	bind(env, "if", If)
}
