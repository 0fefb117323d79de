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

package reader_test

import (
	"strings"
	"testing"

	"github.com/lithp-lang/lithp"
	"github.com/lithp-lang/lithp/reader"
)

func readOne(t *testing.T, src string) lithp.Value {
	t.Helper()
	v, err := reader.MakeReader(strings.NewReader(src), "<test>").Read()
	if err != nil {
		t.Fatalf("Read(%q): %v", src, err)
	}
	return v
}

func TestReadNumber(t *testing.T) {
	t.Parallel()
	if got := readOne(t, "42"); !got.IsEqual(lithp.MakeNumber(42)) {
		t.Fatalf("got %v", got)
	}
	if got := readOne(t, "-7"); !got.IsEqual(lithp.MakeNumber(-7)) {
		t.Fatalf("got %v", got)
	}
}

func TestReadSymbol(t *testing.T) {
	t.Parallel()
	if got := readOne(t, "foo-bar!"); !got.IsEqual(lithp.MakeSymbol("foo-bar!")) {
		t.Fatalf("got %v", got)
	}
}

func TestReadString(t *testing.T) {
	t.Parallel()
	got := readOne(t, `'hello\nworld'`)
	if !got.IsEqual(lithp.MakeStr("hello\nworld")) {
		t.Fatalf("got %v", got)
	}
}

func TestReadSExprAndQExpr(t *testing.T) {
	t.Parallel()
	got := readOne(t, "(+ 1 2)")
	want := lithp.MakeSExpr(lithp.MakeSymbol("+"), lithp.MakeNumber(1), lithp.MakeNumber(2))
	if !got.IsEqual(want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	got = readOne(t, "{1 2 3}")
	wantQ := lithp.MakeQExpr(lithp.MakeNumber(1), lithp.MakeNumber(2), lithp.MakeNumber(3))
	if !got.IsEqual(wantQ) {
		t.Fatalf("got %v, want %v", got, wantQ)
	}
}

func TestCommentsAreSkipped(t *testing.T) {
	t.Parallel()
	forms, err := reader.MakeReader(strings.NewReader("; a comment\n42"), "<test>").ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(forms) != 1 || !forms[0].IsEqual(lithp.MakeNumber(42)) {
		t.Fatalf("got %v", forms)
	}
}

func TestReadAllStopsAtEOF(t *testing.T) {
	t.Parallel()
	forms, err := reader.MakeReader(strings.NewReader("1 2 3"), "<test>").ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(forms) != 3 {
		t.Fatalf("got %d forms, want 3", len(forms))
	}
}
