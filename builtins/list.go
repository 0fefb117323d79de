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

// List implements `list`: retag the argument list as a Q-expression.
var List = &eval.Builtin{
	Doc:      "(list a b ...) builds a Q-expression from its arguments",
	MinArity: 0, MaxArity: -1,
	Fn: func(_ *eval.Environment, args []lithp.Value) (lithp.Value, error) {
		return lithp.MakeQExpr(args...), nil
	},
}

// Head implements `head`: the first element of a non-empty Q-expression.
var Head = &eval.Builtin{
	Doc:      "(head {a b ...}) the first element",
	MinArity: 1, MaxArity: 1,
	Fn: func(_ *eval.Environment, args []lithp.Value) (lithp.Value, error) {
		q, errv := GetNonEmptyQExpr("head", args, 0)
		if errv != nil {
			return *errv, nil
		}
		return lithp.MakeQExpr(q[0]), nil
	},
}

// Tail implements `tail`: all but the first element of a non-empty
// Q-expression.
var Tail = &eval.Builtin{
	Doc:      "(tail {a b ...}) every element but the first",
	MinArity: 1, MaxArity: 1,
	Fn: func(_ *eval.Environment, args []lithp.Value) (lithp.Value, error) {
		q, errv := GetNonEmptyQExpr("tail", args, 0)
		if errv != nil {
			return *errv, nil
		}
		return lithp.MakeQExpr(q[1:]...), nil
	},
}

// Join implements `join`: concatenates any number of Q-expressions.
var Join = &eval.Builtin{
	Doc:      "(join {a} {b} ...) concatenates Q-expressions",
	MinArity: 1, MaxArity: -1,
	Fn: func(_ *eval.Environment, args []lithp.Value) (lithp.Value, error) {
		var out lithp.QExpr
		for i := range args {
			q, errv := GetQExpr("join", args, i)
			if errv != nil {
				return *errv, nil
			}
			out = lithp.Join(out, q)
		}
		return out, nil
	},
}

// Eval implements `eval`: retag a Q-expression as an S-expression and
// reduce it.
var Eval = &eval.Builtin{
	Doc:      "(eval {a b ...}) evaluates a Q-expression as code",
	MinArity: 1, MaxArity: 1,
	Fn: func(env *eval.Environment, args []lithp.Value) (lithp.Value, error) {
		q, errv := GetQExpr("eval", args, 0)
		if errv != nil {
			return *errv, nil
		}
		return eval.Eval(env, lithp.MakeSExpr(q...))
	},
}

// Len implements the supplemental `len` builtin: the length of a
// Q-expression.
var Len = &eval.Builtin{
	Doc:      "(len {a b ...}) the number of elements",
	MinArity: 1, MaxArity: 1,
	Fn: func(_ *eval.Environment, args []lithp.Value) (lithp.Value, error) {
		q, errv := GetQExpr("len", args, 0)
		if errv != nil {
			return *errv, nil
		}
		return lithp.MakeNumber(int64(len(q))), nil
	},
}

// Cons implements the supplemental `cons`: prepend one value onto a
// Q-expression.
var Cons = &eval.Builtin{
	Doc:      "(cons x {a b ...}) prepends x onto a Q-expression",
	MinArity: 2, MaxArity: 2,
	Fn: func(_ *eval.Environment, args []lithp.Value) (lithp.Value, error) {
		q, errv := GetQExpr("cons", args, 1)
		if errv != nil {
			return *errv, nil
		}
		out := lithp.MakeQExpr(args[0])
		for _, v := range q {
			out = lithp.Add(out, v)
		}
		return out, nil
	},
}

// BindList installs the list-operation builtins into env.
func BindList(env *eval.Environment) {
	bind(env, "list", List)
	bind(env, "head", Head)
	bind(env, "tail", Tail)
	bind(env, "join", Join)
	bind(env, "eval", Eval)
	bind(env, "len", Len)
	bind(env, "cons", Cons)
}
