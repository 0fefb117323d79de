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

package builtins_test

import (
	"testing"

	"github.com/lithp-lang/lithp"
	"github.com/lithp-lang/lithp/builtins"
	"github.com/lithp-lang/lithp/eval"
)

func call(t *testing.T, b *eval.Builtin, env *eval.Environment, args ...lithp.Value) lithp.Value {
	t.Helper()
	v, err := b.Call(env, args)
	if err != nil {
		t.Fatalf("unexpected Go error: %v", err)
	}
	return v
}

func TestArithmeticTypeError(t *testing.T) {
	t.Parallel()
	env := eval.NewEnvironment(nil)
	got := call(t, builtins.Add, env, lithp.MakeNumber(1), lithp.MakeSymbol("x"))
	ev, ok := got.(lithp.ErrVal)
	if !ok || ev.Message != "Can only operate on numbers!" {
		t.Fatalf("got %v, want a 'Can only operate on numbers!' Error", got)
	}
}

func TestHeadOnEmptyList(t *testing.T) {
	t.Parallel()
	env := eval.NewEnvironment(nil)
	got := call(t, builtins.Head, env, lithp.MakeQExpr())
	ev, ok := got.(lithp.ErrVal)
	if !ok {
		t.Fatalf("got %v, want an Error", got)
	}
	if want := "'head' can't work on empty lists"; ev.Message != want {
		t.Fatalf("got %q, want %q", ev.Message, want)
	}
}

func TestConsPrepends(t *testing.T) {
	t.Parallel()
	env := eval.NewEnvironment(nil)
	got := call(t, builtins.Cons, env, lithp.MakeNumber(0), lithp.MakeQExpr(lithp.MakeNumber(1)))
	want := lithp.MakeQExpr(lithp.MakeNumber(0), lithp.MakeNumber(1))
	if !got.IsEqual(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestLenCountsElements(t *testing.T) {
	t.Parallel()
	env := eval.NewEnvironment(nil)
	got := call(t, builtins.Len, env, lithp.MakeQExpr(lithp.MakeNumber(1), lithp.MakeNumber(2)))
	if !got.IsEqual(lithp.MakeNumber(2)) {
		t.Fatalf("got %v, want 2", got)
	}
}

func TestDivisionByZero(t *testing.T) {
	t.Parallel()
	env := eval.NewEnvironment(nil)
	got := call(t, builtins.Div, env, lithp.MakeNumber(10), lithp.MakeNumber(0))
	ev, ok := got.(lithp.ErrVal)
	if !ok || ev.Message != "Division by Zero!" {
		t.Fatalf("got %v, want Division by Zero!", got)
	}
}

func TestBindAllRegistersCoreNames(t *testing.T) {
	t.Parallel()
	env := eval.NewEnvironment(nil)
	builtins.BindAll(env)
	for _, name := range []string{"+", "-", "*", "/", "%", "list", "head", "tail", "join", "eval",
		"def", "=", "\\", "if", "==", "!=", "<", "<=", ">", ">=", "print", "error", "import", "env", "len", "cons"} {
		if _, ok := env.Get(lithp.Symbol(name)); !ok {
			t.Errorf("builtin %q was not bound", name)
		}
	}
}
