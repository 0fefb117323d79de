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

import (
	"fmt"
	"io"
	"strings"

	"github.com/lithp-lang/lithp"
)

// Function is the Function variant of lithp.Value: either a Builtin or a
// Lambda, both callable against an already-evaluated argument list.
type Function interface {
	lithp.Value

	// Call invokes the function against args, with env as the call-site
	// environment (used by a Lambda as its temporary enclosing scope, per
	// §4.4). Fewer arguments than a Lambda still expects yields a new,
	// partially-applied Function rather than an evaluation of the body.
	Call(env *Environment, args []lithp.Value) (lithp.Value, error)
}

// Builtin is a primitive operator implemented in Go. Grounded on
// sxeval.Builtin's Name/MinArity/MaxArity/Fn shape, simplified to this
// language's fixed-or-variadic arity model (no separate Fn2 fast path,
// since this evaluator has no constant-folding pass to make it worthwhile).
type Builtin struct {
	Name string

	// MinArity and MaxArity bound the argument count. MaxArity < 0 means
	// unlimited (variadic).
	MinArity, MaxArity int

	// Doc is an optional docstring, printed by `print` per the
	// supplemental doc-string feature.
	Doc string

	Fn func(env *Environment, args []lithp.Value) (lithp.Value, error)
}

func (b *Builtin) Kind() lithp.Kind { return lithp.KindFunction }

func (b *Builtin) IsEqual(other lithp.Value) bool {
	ob, ok := other.(*Builtin)
	return ok && b.Name == ob.Name
}

// Copy returns the builtin itself; Builtins are stateless and shared.
func (b *Builtin) Copy() lithp.Value { return b }

func (b *Builtin) String() string { return "<builtin:" + b.Name + ">" }

func (b *Builtin) Print(w io.Writer) (int, error) {
	if b.Doc == "" {
		return io.WriteString(w, b.String())
	}
	return io.WriteString(w, fmt.Sprintf("%s ; %s", b.String(), b.Doc))
}

// Call checks arity and invokes Fn, wrapping any arity failure as an
// lithp.ErrVal per §7 rather than a bare Go error.
func (b *Builtin) Call(env *Environment, args []lithp.Value) (lithp.Value, error) {
	n := len(args)
	if n < b.MinArity || (b.MaxArity >= 0 && n > b.MaxArity) {
		return lithp.Errorf("'%s' expected %s arguments, but got %d.", b.Name, arityDesc(b.MinArity, b.MaxArity), n), nil
	}
	return b.Fn(env, args)
}

func arityDesc(minA, maxA int) string {
	switch {
	case maxA < 0:
		return fmt.Sprintf("at least %d", minA)
	case minA == maxA:
		return fmt.Sprintf("%d", minA)
	default:
		return fmt.Sprintf("between %d and %d", minA, maxA)
	}
}

// Lambda is a user-defined function value: a formals list, a body (a
// Q-expression, evaluated as an SExpr when called), and an owned
// environment that accumulates bound parameters across partial
// applications. Grounded directly on the original's lval_lambda/lval_call:
// the environment starts empty at creation (no capture of the defining
// scope) and is given the call-site environment as its parent only for the
// duration of a full call (§4.4, §5) — free variables inside a lambda body
// resolve through whichever environment is active at the call site, not at
// definition site; only explicitly-bound parameters are truly closed over.
type Lambda struct {
	// Params is the full formals list; the leading Bound of them are
	// already satisfied (by a prior partial application) and bound in Env.
	Params []lithp.Symbol
	Bound  int

	Rest   lithp.Symbol // valid only if HasVar
	HasVar bool

	Body lithp.QExpr
	Env  *Environment
}

// NewLambda constructs a Lambda with a fresh, empty captured environment.
func NewLambda(params []lithp.Symbol, rest lithp.Symbol, hasVar bool, body lithp.QExpr) *Lambda {
	return &Lambda{Params: params, Rest: rest, HasVar: hasVar, Body: body, Env: NewEnvironment(nil)}
}

func (l *Lambda) Kind() lithp.Kind { return lithp.KindFunction }

// IsEqual compares structurally by remaining (unbound) formals and body,
// per §4.1: "user lambdas by structural equality of formals and body",
// ignoring captured environment contents (an explicit Open Question
// decision preserved here). Two lambdas partially applied to a different
// number of arguments differ in their remaining formals even if they both
// derive from the same original Lambda, so Bound already-satisfied formals
// are excluded from the comparison rather than the full Params.
func (l *Lambda) IsEqual(other lithp.Value) bool {
	ol, ok := other.(*Lambda)
	if !ok || l.HasVar != ol.HasVar || l.Rest != ol.Rest {
		return false
	}
	lp, op := l.Params[l.Bound:], ol.Params[ol.Bound:]
	if len(lp) != len(op) {
		return false
	}
	for i := range lp {
		if lp[i] != op[i] {
			return false
		}
	}
	return lithp.SExpr(l.Body).IsEqual(lithp.SExpr(ol.Body))
}

// Copy returns a value with an independent captured environment, so
// mutating the copy's bindings (via further partial application or a call)
// never affects the original, per §3's "deep-copied on every copy" rule.
func (l *Lambda) Copy() lithp.Value {
	nl := &Lambda{
		Params: l.Params,
		Bound:  l.Bound,
		Rest:   l.Rest,
		HasVar: l.HasVar,
		Body:   l.Body.Copy().(lithp.QExpr),
		Env:    NewEnvironment(l.Env.Parent),
	}
	names, values := l.Env.Bindings()
	for i, n := range names {
		nl.Env.Put(n, values[i].Copy())
	}
	return nl
}

// String prints the lambda's remaining (unbound) formals, not its full
// formals list, so a partially-applied Function value's printed form
// reflects what is still expected, per Testable Property 6 (§8).
func (l *Lambda) String() string {
	var sb strings.Builder
	sb.WriteString("(\\ {")
	remaining := l.Params[l.Bound:]
	for i, p := range remaining {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(string(p))
	}
	if l.HasVar {
		if len(remaining) > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(": " + string(l.Rest))
	}
	sb.WriteString("} ")
	sb.WriteString(l.Body.String())
	sb.WriteByte(')')
	return sb.String()
}

// Call binds as many remaining formals as args supplies. If that exhausts
// every named formal, and either the lambda is not variadic or at least
// one argument is left over to trigger the rest parameter, the body is
// evaluated in Env with env as its temporary parent. Otherwise a copy of
// the lambda is returned with the given arguments already bound (partial
// application), per §4.4. Binding happens on a copy of the lambda, so the
// receiver itself is left unchanged by the call.
//
// The ':'/rest formal is only consumed when a triggering argument is
// actually present, exactly as the original's lval_call pops ':' and the
// rest symbol off the formals list inside its `while (a->count)` loop:
// if args run out right as the named formals are satisfied, ':' and the
// rest symbol are left unpopped, and the call stays partially applied
// with those two as its only remaining formals.
func (l *Lambda) Call(env *Environment, args []lithp.Value) (lithp.Value, error) {
	l = l.Copy().(*Lambda)
	remaining := l.Params[l.Bound:]
	if !l.HasVar && len(args) > len(remaining) {
		return lithp.MakeError("function passed too many arguments"), nil
	}

	n := len(args)
	if n > len(remaining) {
		n = len(remaining)
	}
	for i := 0; i < n; i++ {
		l.Env.Put(remaining[i], args[i])
	}
	l.Bound += n

	triggersRest := l.HasVar && len(args) > n
	if l.Bound < len(l.Params) || (l.HasVar && !triggersRest) {
		return l.Copy(), nil
	}

	if l.HasVar {
		rest := append([]lithp.Value(nil), args[n:]...)
		l.Env.Put(l.Rest, lithp.MakeQExpr(rest...))
	}

	l.Env.Parent = env
	body := l.Body.Copy().(lithp.QExpr)
	return Eval(l.Env, lithp.SExpr(append([]lithp.Value(nil), body...)))
}
