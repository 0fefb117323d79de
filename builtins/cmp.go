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

func boolNumber(b bool) lithp.Number {
	if b {
		return lithp.MakeNumber(1)
	}
	return lithp.MakeNumber(0)
}

// Eq implements `==`: structural equality.
var Eq = &eval.Builtin{
	Doc:      "(== x y) 1 if structurally equal, else 0",
	MinArity: 2, MaxArity: 2,
	Fn: func(_ *eval.Environment, args []lithp.Value) (lithp.Value, error) {
		return boolNumber(args[0].IsEqual(args[1])), nil
	},
}

// Ne implements `!=`: structural inequality.
var Ne = &eval.Builtin{
	Doc:      "(!= x y) 1 if not structurally equal, else 0",
	MinArity: 2, MaxArity: 2,
	Fn: func(_ *eval.Environment, args []lithp.Value) (lithp.Value, error) {
		return boolNumber(!args[0].IsEqual(args[1])), nil
	},
}

func numCmp(name string, op func(a, b lithp.Number) bool) *eval.Builtin {
	return &eval.Builtin{
		Doc:      "(" + name + " n m) numeric comparison",
		MinArity: 2, MaxArity: 2,
		Fn: func(_ *eval.Environment, args []lithp.Value) (lithp.Value, error) {
			a, errv := GetNumber(name, args, 0)
			if errv != nil {
				return *errv, nil
			}
			b, errv := GetNumber(name, args, 1)
			if errv != nil {
				return *errv, nil
			}
			return boolNumber(op(a, b)), nil
		},
	}
}

var (
	Lt = numCmp("<", func(a, b lithp.Number) bool { return a < b })
	Le = numCmp("<=", func(a, b lithp.Number) bool { return a <= b })
	Gt = numCmp(">", func(a, b lithp.Number) bool { return a > b })
	Ge = numCmp(">=", func(a, b lithp.Number) bool { return a >= b })
)

// BindCompare installs the comparison builtins into env.
func BindCompare(env *eval.Environment) {
	bind(env, "==", Eq)
	bind(env, "!=", Ne)
	bind(env, "<", Lt)
	bind(env, "<=", Le)
	bind(env, ">", Gt)
	bind(env, ">=", Ge)
}
