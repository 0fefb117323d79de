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

package lithp

import (
	"io"
	"strings"
)

// SExpr is a growable ordered sequence of owned child values that the
// evaluator reduces: a bare SExpr is evaluated by evaluating every child and
// then calling the result of the first against the rest, per §4.3. Realized
// as a slice, the way sx.Vector backs a growable Object sequence.
type SExpr []Value

// QExpr is a growable ordered sequence with the same shape as SExpr, but the
// evaluator treats it as opaque data: its children are never evaluated.
type QExpr []Value

// MakeSExpr creates an SExpr from the given children.
func MakeSExpr(children ...Value) SExpr { return SExpr(children) }

// MakeQExpr creates a QExpr from the given children.
func MakeQExpr(children ...Value) QExpr { return QExpr(children) }

func (SExpr) Kind() Kind { return KindSExpr }
func (QExpr) Kind() Kind { return KindQExpr }

func (s SExpr) IsEqual(other Value) bool {
	os, ok := other.(SExpr)
	return ok && seqEqual(s, os)
}

func (q QExpr) IsEqual(other Value) bool {
	oq, ok := other.(QExpr)
	return ok && seqEqual(q, oq)
}

func seqEqual(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].IsEqual(b[i]) {
			return false
		}
	}
	return true
}

// Copy returns a deep copy: every child is itself copied, so mutating the
// copy (or further popping/adding children) never affects the original,
// matching the ownership semantics of the value model.
func (s SExpr) Copy() Value { return SExpr(copyChildren(s)) }
func (q QExpr) Copy() Value { return QExpr(copyChildren(q)) }

func copyChildren(vs []Value) []Value {
	if vs == nil {
		return nil
	}
	out := make([]Value, len(vs))
	for i, v := range vs {
		out[i] = v.Copy()
	}
	return out
}

func (s SExpr) String() string { return seqString(s, "(", ")") }
func (q QExpr) String() string { return seqString(q, "{", "}") }

func (s SExpr) Print(w io.Writer) (int, error) { return printSeq(w, s, "(", ")") }
func (q QExpr) Print(w io.Writer) (int, error) { return printSeq(w, q, "{", "}") }

func seqString(vs []Value, open, close string) string {
	var sb strings.Builder
	sb.WriteString(open)
	for i, v := range vs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(v.String())
	}
	sb.WriteString(close)
	return sb.String()
}

func printSeq(w io.Writer, vs []Value, open, close string) (int, error) {
	var sb strings.Builder
	sb.WriteString(open)
	for i, v := range vs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		var child strings.Builder
		if _, err := Print(&child, v); err != nil {
			return 0, err
		}
		sb.WriteString(child.String())
	}
	sb.WriteString(close)
	return io.WriteString(w, sb.String())
}

// Len reports the number of children.
func (s SExpr) Len() int { return len(s) }

// Len reports the number of children.
func (q QExpr) Len() int { return len(q) }

// Pop removes and returns the child at index i, leaving the remainder.
// Mirrors lval_pop from the original implementation.
func Pop[T ~[]Value](vs T, i int) (Value, T) {
	v := vs[i]
	out := make(T, 0, len(vs)-1)
	out = append(out, vs[:i]...)
	out = append(out, vs[i+1:]...)
	return v, out
}

// Take removes and returns the child at index i, discarding the remainder.
// Mirrors lval_take.
func Take[T ~[]Value](vs T, i int) Value { return vs[i] }

// Join appends every child of b onto a, producing a new sequence. Mirrors
// lval_join.
func Join[T ~[]Value](a, b T) T {
	out := make(T, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

// Add appends v onto vs, producing a new sequence. Mirrors lval_add.
func Add[T ~[]Value](vs T, v Value) T { return append(vs, v) }

// GetSExpr returns v as an SExpr, if possible.
func GetSExpr(v Value) (SExpr, bool) { s, ok := v.(SExpr); return s, ok }

// GetQExpr returns v as a QExpr, if possible.
func GetQExpr(v Value) (QExpr, bool) { q, ok := v.(QExpr); return q, ok }
