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

package eval

import "github.com/lithp-lang/lithp"

// Eval reduces v against env, per §4.3:
//
//   - Symbol resolves through the environment chain; an unbound symbol
//     yields an Error value.
//   - QExpr, Number, String, Error and Function are self-evaluating.
//   - An empty SExpr evaluates to itself.
//   - A non-empty SExpr has every child evaluated left to right, in full,
//     before anything else happens; only once every child has been
//     evaluated is the result scanned for the first Error, which is
//     returned if present. Otherwise the first evaluated child must be a
//     Function, which is then called against the rest.
func Eval(env *Environment, v lithp.Value) (lithp.Value, error) {
	switch val := v.(type) {
	case lithp.Symbol:
		if bound, ok := env.Get(val); ok {
			return bound.Copy(), nil
		}
		return lithp.Errorf("Unbound symbol '%s'!", val), nil

	case lithp.SExpr:
		return evalSExpr(env, val)

	default:
		return v, nil
	}
}

func evalSExpr(env *Environment, s lithp.SExpr) (lithp.Value, error) {
	if len(s) == 0 {
		return s, nil
	}

	evaluated := make([]lithp.Value, len(s))
	for i, child := range s {
		r, err := Eval(env, child)
		if err != nil {
			return nil, err
		}
		evaluated[i] = r
	}

	for i, r := range evaluated {
		if _, ok := r.(lithp.ErrVal); ok {
			return lithp.Take(evaluated, i), nil
		}
	}

	if len(evaluated) == 1 {
		return lithp.Take(evaluated, 0), nil
	}

	head := evaluated[0]
	fn, ok := head.(Function)
	if !ok {
		return lithp.MakeError("First element is not a function!"), nil
	}
	return Apply(env, fn, evaluated[1:])
}

// Apply calls fn against args with env as the call-site environment, per
// the call protocol of §4.4. A Lambda given fewer arguments than it still
// has formals for returns a new, partially-applied Function instead of
// evaluating its body.
func Apply(env *Environment, fn Function, args []lithp.Value) (lithp.Value, error) {
	return fn.Call(env, args)
}
