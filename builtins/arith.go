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

func numbers(name string, args []lithp.Value) ([]lithp.Number, lithp.Value) {
	out := make([]lithp.Number, len(args))
	for i := range args {
		n, ok := lithp.GetNumber(args[i])
		if !ok {
			return nil, lithp.MakeError("Can only operate on numbers!")
		}
		out[i] = n
	}
	return out, nil
}

func foldArith(name string, args []lithp.Value, unary func(lithp.Number) lithp.Number, op func(a, b lithp.Number) lithp.Number) (lithp.Value, error) {
	nums, errv := numbers(name, args)
	if errv != nil {
		return errv, nil
	}
	if len(nums) == 1 {
		if unary != nil {
			return unary(nums[0]), nil
		}
		return nums[0], nil
	}
	acc := nums[0]
	for _, n := range nums[1:] {
		acc = op(acc, n)
	}
	return acc, nil
}

// Add implements `+`: fold-left sum, unary no-op.
var Add = &eval.Builtin{
	Doc:      "(+ n...) sums its arguments",
	MinArity: 1, MaxArity: -1,
	Fn: func(_ *eval.Environment, args []lithp.Value) (lithp.Value, error) {
		return foldArith("+", args, func(n lithp.Number) lithp.Number { return n },
			func(a, b lithp.Number) lithp.Number { return a + b })
	},
}

// Sub implements `-`: fold-left subtraction, unary negation.
var Sub = &eval.Builtin{
	Doc:      "(- n...) subtracts left to right; unary negates",
	MinArity: 1, MaxArity: -1,
	Fn: func(_ *eval.Environment, args []lithp.Value) (lithp.Value, error) {
		return foldArith("-", args, func(n lithp.Number) lithp.Number { return -n },
			func(a, b lithp.Number) lithp.Number { return a - b })
	},
}

// Mul implements `*`: fold-left product, unary no-op.
var Mul = &eval.Builtin{
	Doc:      "(* n...) multiplies its arguments",
	MinArity: 1, MaxArity: -1,
	Fn: func(_ *eval.Environment, args []lithp.Value) (lithp.Value, error) {
		return foldArith("*", args, func(n lithp.Number) lithp.Number { return n },
			func(a, b lithp.Number) lithp.Number { return a * b })
	},
}

// Div implements `/`: fold-left truncating integer division, unary no-op.
var Div = &eval.Builtin{
	Doc:      "(/ n...) divides left to right (truncating)",
	MinArity: 1, MaxArity: -1,
	Fn: func(_ *eval.Environment, args []lithp.Value) (lithp.Value, error) {
		nums, errv := numbers("/", args)
		if errv != nil {
			return errv, nil
		}
		if len(nums) == 1 {
			return nums[0], nil
		}
		acc := nums[0]
		for _, n := range nums[1:] {
			if n == 0 {
				return lithp.MakeError("Division by Zero!"), nil
			}
			acc /= n
		}
		return acc, nil
	},
}

// Mod implements the supplemental `%` (truncating remainder).
var Mod = &eval.Builtin{
	Doc:      "(% n m) truncating remainder of n divided by m",
	MinArity: 2, MaxArity: 2,
	Fn: func(_ *eval.Environment, args []lithp.Value) (lithp.Value, error) {
		a, errv := GetNumber("%", args, 0)
		if errv != nil {
			return *errv, nil
		}
		b, errv := GetNumber("%", args, 1)
		if errv != nil {
			return *errv, nil
		}
		if b == 0 {
			return lithp.MakeError("Division by Zero!"), nil
		}
		return a % b, nil
	},
}

// BindArith installs the arithmetic builtins into env.
func BindArith(env *eval.Environment) {
	bind(env, "+", Add)
	bind(env, "-", Sub)
	bind(env, "*", Mul)
	bind(env, "/", Div)
	bind(env, "%", Mod)
}
