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

package eval_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lithp-lang/lithp"
	"github.com/lithp-lang/lithp/builtins"
	"github.com/lithp-lang/lithp/eval"
	"github.com/lithp-lang/lithp/reader"
)

// evalProgram runs every top-level form in src against a fresh environment
// and returns the printed form of each result, one string per form, matching
// the "Output" column of the end-to-end scenario table (§8).
func evalProgram(t *testing.T, src string) []string {
	t.Helper()
	env := eval.NewEnvironment(nil)
	builtins.BindAll(env)

	forms, err := reader.MakeReader(strings.NewReader(src), "<test>").ReadAll()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	var out []string
	for _, form := range forms {
		result, err := eval.Eval(env, form)
		if err != nil {
			t.Fatalf("eval error: %v", err)
		}
		out = append(out, result.String())
	}
	return out
}

func TestEndToEndScenarios(t *testing.T) {
	t.Parallel()
	tests := []struct {
		src  string
		want []string
	}{
		{"(+ 1 2 3)", []string{"6"}},
		{"(/ 10 0)", []string{"Error: Division by Zero!"}},
		{"(head {1 2 3})", []string{"{1}"}},
		{"(eval (tail {+ 1 2 3}))", []string{"3"}},
		{"(def {x} 10) (+ x 5)", []string{"()", "15"}},
		{"(= {f} (\\ {a b} {+ a b})) (f 2 3)", []string{"()", "5"}},
		{"((\\ {a : rest} {rest}) 1 2 3 4)", []string{"{2 3 4}"}},
		{"(if (== 1 1) {head {7 8}} {head {9 0}})", []string{"{7}"}},
		{"(def {f} (\\ {a : rest} {rest})) (f 1)", []string{"()", "(\\ {: rest} {rest})"}},
		{"(def {add} (\\ {a b} {+ a b})) (add 1)", []string{"()", "(\\ {b} {+ a b})"}},
	}
	for _, tc := range tests {
		got := evalProgram(t, tc.src)
		if len(got) != len(tc.want) {
			t.Fatalf("%s: got %v, want %v", tc.src, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("%s: result[%d] = %q, want %q", tc.src, i, got[i], tc.want[i])
			}
		}
	}
}

func TestUnboundSymbolIsError(t *testing.T) {
	t.Parallel()
	env := eval.NewEnvironment(nil)
	result, err := eval.Eval(env, lithp.MakeSymbol("nope"))
	if err != nil {
		t.Fatalf("unexpected Go error: %v", err)
	}
	if _, ok := result.(lithp.ErrVal); !ok {
		t.Fatalf("result = %v, want an Error value", result)
	}
}

func TestErrorChildShortCircuits(t *testing.T) {
	t.Parallel()
	env := eval.NewEnvironment(nil)
	builtins.BindAll(env)
	s := lithp.MakeSExpr(lithp.MakeSymbol("+"), lithp.MakeSymbol("missing"), lithp.MakeNumber(1))
	result, err := eval.Eval(env, s)
	if err != nil {
		t.Fatalf("unexpected Go error: %v", err)
	}
	ev, ok := result.(lithp.ErrVal)
	if !ok {
		t.Fatalf("result = %v, want an Error value", result)
	}
	if !strings.Contains(ev.Message, "Unbound") {
		t.Fatalf("message = %q, want it to mention the unbound symbol", ev.Message)
	}
}

func TestPartialApplication(t *testing.T) {
	t.Parallel()
	env := eval.NewEnvironment(nil)
	builtins.BindAll(env)

	forms, err := reader.MakeReader(strings.NewReader("(def {add} (\\ {a b} {+ a b})) ((add 1) 2)"), "<test>").ReadAll()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	var last lithp.Value
	for _, f := range forms {
		last, err = eval.Eval(env, f)
		if err != nil {
			t.Fatalf("eval error: %v", err)
		}
	}
	if !last.IsEqual(lithp.MakeNumber(3)) {
		t.Fatalf("(add 1) 2 = %v, want 3", last)
	}
}

// TestAllChildrenEvaluatedBeforeErrorShortCircuit checks that every child
// of an SExpr is evaluated, for its side effects, before the result is
// scanned for the first Error - not that evaluation stops at the first
// Error encountered.
func TestAllChildrenEvaluatedBeforeErrorShortCircuit(t *testing.T) {
	t.Parallel()
	env := eval.NewEnvironment(nil)
	builtins.BindAll(env)

	var buf bytes.Buffer
	old := builtins.Stdout
	builtins.Stdout = &buf
	defer func() { builtins.Stdout = old }()

	got := evalProgram(t, `(+ (error 'boom') (print 99))`)
	if len(got) != 1 || got[0] != "Error: boom" {
		t.Fatalf("got %v, want [\"Error: boom\"]", got)
	}
	if buf.String() != "99\n" {
		t.Fatalf("print side effect = %q, want %q", buf.String(), "99\n")
	}
}

func TestQExprSelfEvaluates(t *testing.T) {
	t.Parallel()
	env := eval.NewEnvironment(nil)
	q := lithp.MakeQExpr(lithp.MakeNumber(1), lithp.MakeSymbol("x"))
	result, err := eval.Eval(env, q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsEqual(q) {
		t.Fatalf("eval(q) = %v, want %v unchanged", result, q)
	}
}
