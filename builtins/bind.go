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
	"t73f.de/r/zero/set"
)

// restMarker is the reserved formals-list symbol that introduces the rest
// parameter, per §3/§4.4.
const restMarker = lithp.Symbol(":")

func doDef(global bool) func(*eval.Environment, []lithp.Value) (lithp.Value, error) {
	name := "="
	if global {
		name = "def"
	}
	return func(env *eval.Environment, args []lithp.Value) (lithp.Value, error) {
		syms, errv := GetQExpr(name, args, 0)
		if errv != nil {
			return *errv, nil
		}
		values := args[1:]
		if len(syms) != len(values) {
			return lithp.Errorf("'%s' cannot define %d symbols with %d values", name, len(syms), len(values)), nil
		}
		for i, s := range syms {
			sym, ok := lithp.GetSymbol(s)
			if !ok {
				return lithp.Errorf("'%s' expected type %s at %d, but got %s.", name, lithp.KindSymbol, i, lithp.TypeName(s)), nil
			}
			if global {
				env.PutGlobal(sym, values[i])
			} else {
				env.Put(sym, values[i])
			}
		}
		return lithp.MakeSExpr(), nil
	}
}

// Def implements `def {s...} v...`: installs bindings at the global scope.
var Def = &eval.Builtin{
	Doc:      "(def {s...} v...) binds symbols at global scope",
	MinArity: 1, MaxArity: -1,
	Fn: doDef(true),
}

// SetLocal implements `= {s...} v...`: installs bindings at the current
// scope.
var SetLocal = &eval.Builtin{
	Doc:      "(= {s...} v...) binds symbols at the current scope",
	MinArity: 1, MaxArity: -1,
	Fn: doDef(false),
}

// Lambda implements `\ {formals...} {body...}`: constructs a user-defined
// Function. Parsing the rest marker here, at construction time, rather
// than re-scanning the formals list on every call is this repository's
// chosen realization of the ':' convention described in §3/§4.4.
var Lambda = &eval.Builtin{
	Doc:      "(\\ {formals} {body}) builds a lambda",
	MinArity: 2, MaxArity: 2,
	Fn: func(_ *eval.Environment, args []lithp.Value) (lithp.Value, error) {
		formals, errv := GetQExpr("\\", args, 0)
		if errv != nil {
			return *errv, nil
		}
		body, errv := GetQExpr("\\", args, 1)
		if errv != nil {
			return *errv, nil
		}

		var params []lithp.Symbol
		var rest lithp.Symbol
		hasVar := false
		for i := 0; i < len(formals); i++ {
			sym, ok := lithp.GetSymbol(formals[i])
			if !ok {
				return lithp.Errorf("'\\' expected type %s at %d, but got %s.", lithp.KindSymbol, i, lithp.TypeName(formals[i])), nil
			}
			if sym == restMarker {
				if i != len(formals)-2 {
					return lithp.MakeError("':' must be followed by exactly one symbol"), nil
				}
				restSym, ok := lithp.GetSymbol(formals[i+1])
				if !ok {
					return lithp.MakeError("':' must be followed by exactly one symbol"), nil
				}
				rest = restSym
				hasVar = true
				break
			}
			params = append(params, sym)
		}

		if set.New(params...).Length() != len(params) {
			return lithp.MakeError("'\\' formals must not repeat a symbol"), nil
		}

		return eval.NewLambda(params, rest, hasVar, body), nil
	},
}

// BindForms installs the binding and lambda builtins into env.
func BindForms(env *eval.Environment) {
	bind(env, "def", Def)
	bind(env, "=", SetLocal)
	bind(env, "\\", Lambda)
}
