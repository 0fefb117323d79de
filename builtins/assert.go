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

// Package builtins binds the primitive operator table into the global
// environment, grounded on sxbuiltins' per-concern file layout (number.go,
// lambda.go, define.go, if.go, errors.go, sxbuiltins.go) and positional
// type-assertion helper pattern.
package builtins

import (
	"github.com/lithp-lang/lithp"
	"github.com/lithp-lang/lithp/eval"
)

// GetNumber returns args[i] as a Number, or a wrong-type Error formatted per
// the required "'<name>' expected type <T> at <i>, but got <U>." shape.
func GetNumber(name string, args []lithp.Value, i int) (lithp.Number, *lithp.ErrVal) {
	n, ok := lithp.GetNumber(args[i])
	if !ok {
		return 0, wrongType(name, args, i, lithp.KindNumber)
	}
	return n, nil
}

// GetStr returns args[i] as a Str, or a wrong-type Error.
func GetStr(name string, args []lithp.Value, i int) (lithp.Str, *lithp.ErrVal) {
	s, ok := lithp.GetStr(args[i])
	if !ok {
		return lithp.Str{}, wrongType(name, args, i, lithp.KindString)
	}
	return s, nil
}

// GetQExpr returns args[i] as a QExpr, or a wrong-type Error.
func GetQExpr(name string, args []lithp.Value, i int) (lithp.QExpr, *lithp.ErrVal) {
	q, ok := lithp.GetQExpr(args[i])
	if !ok {
		return nil, wrongType(name, args, i, lithp.KindQExpr)
	}
	return q, nil
}

// GetNonEmptyQExpr returns args[i] as a non-empty QExpr, or an Error.
func GetNonEmptyQExpr(name string, args []lithp.Value, i int) (lithp.QExpr, *lithp.ErrVal) {
	q, errv := GetQExpr(name, args, i)
	if errv != nil {
		return nil, errv
	}
	if len(q) == 0 {
		e := lithp.Errorf("'%s' can't work on empty lists", name)
		return nil, &e
	}
	return q, nil
}

func wrongType(name string, args []lithp.Value, i int, want lithp.Kind) *lithp.ErrVal {
	e := lithp.Errorf("'%s' expected type %s at %d, but got %s.", name, want, i, lithp.TypeName(args[i]))
	return &e
}

// bind registers a Builtin under name in env (the global environment at
// startup).
func bind(env *eval.Environment, name string, b *eval.Builtin) {
	b.Name = name
	env.PutGlobal(lithp.Symbol(name), b)
}
